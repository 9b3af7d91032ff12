// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glstate runs render state scenarios and encodes toggle words.
//
// Usage:
//
//	glstate run scenario.yaml           # print the device call trace
//	glstate run --metrics scenario.yaml # also print Prometheus counters
//	glstate encode --toggle=blend --toggle=depth-test
//	glstate devices
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/backend"
	"github.com/gogpu/glstate/internal/scenario"
	"github.com/gogpu/glstate/metrics"
)

// Global is passed to every command's Run method.
type Global struct {
	Out io.Writer
}

// CLI is the command line definition.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Run     RunCmd     `cmd:"" help:"Run a scenario file and print the device call trace"`
	Encode  EncodeCmd  `cmd:"" help:"Print the state word for a set of toggles"`
	Devices DevicesCmd `cmd:"" help:"List registered devices"`
}

// AfterApply sets up logging once flags are parsed.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	glstate.SetLogger(logger)
	return nil
}

// RunCmd implements the 'run' command.
type RunCmd struct {
	File    string `arg:"" type:"existingfile" help:"Scenario file"`
	Device  string `short:"d" help:"Override the scenario device"`
	Metrics bool   `short:"m" help:"Print metrics after the trace"`
}

// Run executes the run command.
func (cmd *RunCmd) Run(g *Global) error {
	sc, err := scenario.LoadFile(cmd.File)
	if err != nil {
		return err
	}
	if cmd.Device != "" {
		sc.Device = cmd.Device
	}

	var opts []glstate.Option
	reg := prometheus.NewRegistry()
	if cmd.Metrics {
		opts = append(opts, glstate.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	res, runErr := scenario.Run(sc, opts...)
	if res != nil {
		printResult(g.Out, sc, res)
	}
	if runErr != nil {
		return runErr
	}

	if cmd.Metrics {
		return printMetrics(g.Out, reg)
	}
	return nil
}

func printResult(w io.Writer, sc *scenario.Scenario, res *scenario.Result) {
	if sc.Name != "" {
		fmt.Fprintf(w, "# %s\n", sc.Name)
	}
	rec, traced := res.Recording()
	next := 0
	for _, s := range res.Steps {
		fmt.Fprintf(w, "step %d: %s -> %v\n", s.Index, s.Op, s.Word)
		if !traced {
			continue
		}
		for _, c := range rec.Commands()[next : next+s.Calls] {
			fmt.Fprintf(w, "  %v\n", c)
		}
		next += s.Calls
	}
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// EncodeCmd implements the 'encode' command.
type EncodeCmd struct {
	Toggles []string `name:"toggle" short:"t" help:"Toggle to switch on (repeatable)"`
}

// Run executes the encode command.
func (cmd *EncodeCmd) Run(g *Global) error {
	values := make(map[glstate.Toggle]bool, len(cmd.Toggles))
	for _, name := range cmd.Toggles {
		t, err := glstate.ParseToggle(name)
		if err != nil {
			return err
		}
		values[t] = true
	}
	w := glstate.Encode(values)
	fmt.Fprintf(g.Out, "%d 0b%05b %v\n", uint32(w), uint32(w), w)
	return nil
}

// DevicesCmd implements the 'devices' command.
type DevicesCmd struct{}

// Run executes the devices command.
func (cmd *DevicesCmd) Run(g *Global) error {
	for _, name := range backend.Available() {
		fmt.Fprintln(g.Out, name)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("glstate"),
		kong.Description("Render state diffing tools."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&Global{Out: os.Stdout}); err != nil {
		slog.Error("glstate failed", "error", err)
		os.Exit(1)
	}
}
