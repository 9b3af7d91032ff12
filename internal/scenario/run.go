// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenario

import (
	"fmt"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/backend"
	"github.com/gogpu/glstate/recording"
)

// callCounter is implemented by devices that count the calls they receive.
type callCounter interface {
	Len() int
}

// StepResult reports what one step did.
type StepResult struct {
	Index int // 1-based
	Op    string
	Calls int // device calls issued, -1 if the device cannot count
	Word  glstate.Word
}

// Result is the outcome of Run.
type Result struct {
	Device  glstate.Device
	Manager *glstate.Manager
	Steps   []StepResult
}

// Recording returns the recorder when the scenario ran on the recording
// device.
func (r *Result) Recording() (*recording.Recorder, bool) {
	rec, ok := r.Device.(*recording.Recorder)
	return rec, ok
}

// OpenDevice opens the scenario's device. With MaxVertexAttributes set,
// only the built-in devices can be opened.
func (sc *Scenario) OpenDevice() (glstate.Device, error) {
	name := sc.Device
	if name == "" {
		name = backend.DeviceRecording
	}
	if sc.MaxVertexAttributes == 0 {
		return backend.Open(name)
	}

	caps := glstate.DefaultCapabilities()
	caps.Limits.MaxVertexAttributes = sc.MaxVertexAttributes
	switch name {
	case backend.DeviceRecording:
		return recording.NewRecorder(caps), nil
	case backend.DeviceNull:
		return backend.NewNullDevice(caps), nil
	default:
		return nil, fmt.Errorf("%w: max_vertex_attributes is not supported by device %q",
			ErrInvalidStep, name)
	}
}

// Run opens the scenario's device, creates a Manager with opts and runs
// every step in order. It stops at the first failing step.
func Run(sc *Scenario, opts ...glstate.Option) (*Result, error) {
	dev, err := sc.OpenDevice()
	if err != nil {
		return nil, err
	}
	return RunOn(sc, dev, opts...)
}

// RunOn runs the scenario on dev instead of the device it names.
func RunOn(sc *Scenario, dev glstate.Device, opts ...glstate.Option) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	m := glstate.New(dev, opts...)
	res := &Result{Device: dev, Manager: m, Steps: make([]StepResult, 0, len(sc.Steps))}
	counter, counting := dev.(callCounter)

	for i := range sc.Steps {
		step := &sc.Steps[i]
		before := 0
		if counting {
			before = counter.Len()
		}

		if err := runStep(m, step); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}

		sr := StepResult{Index: i + 1, Op: step.Op, Calls: -1, Word: m.Word()}
		if counting {
			sr.Calls = counter.Len() - before
		}
		res.Steps = append(res.Steps, sr)

		glstate.Logger().Debug("scenario: step", "scenario", sc.Name, "index", sr.Index,
			"op", sr.Op, "calls", sr.Calls, "word", sr.Word.String())

		if step.Expect == nil {
			continue
		}
		if !counting {
			return res, fmt.Errorf("step %d (%s): %w: device %T cannot count calls",
				i+1, step.Op, ErrExpectation, dev)
		}
		if sr.Calls != *step.Expect {
			return res, fmt.Errorf("step %d (%s): %w: %d device calls, want %d",
				i+1, step.Op, ErrExpectation, sr.Calls, *step.Expect)
		}
	}
	return res, nil
}

func runStep(m *glstate.Manager, step *Step) error {
	switch step.Op {
	case OpApply, OpForce:
		s, err := step.State()
		if err != nil {
			return err
		}
		if s.Blend() {
			if err := checkBlendMode(m, s.BlendMode); err != nil {
				return err
			}
		}
		if step.Op == OpApply {
			m.Apply(s)
		} else {
			m.ForceApply(s)
		}
	case OpBlendMode:
		if err := checkBlendMode(m, step.BlendMode); err != nil {
			return err
		}
		m.SetBlendMode(step.BlendMode)
	case OpPolygonOffset:
		m.SetPolygonOffset(step.Factor, step.Units)
	case OpResetAttributes:
		m.ResetAttributes()
	case OpResetToDefault:
		m.ResetToDefault()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

// checkBlendMode turns the Manager's panic on an unsupported mode into an
// error before any device call.
func checkBlendMode(m *glstate.Manager, mode glstate.BlendMode) error {
	if _, ok := m.BlendTable().Lookup(mode); !ok {
		return fmt.Errorf("%w: blend mode %v not supported by device", ErrInvalidStep, mode)
	}
	return nil
}
