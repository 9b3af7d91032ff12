// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenario loads and runs scripted sequences of render state
// requests against a glstate device.
//
// A scenario file is YAML:
//
//	name: blend then depth
//	device: recording
//	max_vertex_attributes: 4
//	steps:
//	  - op: apply
//	    toggles: [blend]
//	    blend_mode: add
//	    expect: 2
//	  - op: apply
//	    toggles: [blend, depth-test]
//	    blend_mode: add
//	    expect: 1
//	  - op: reset-to-default
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glstate"
)

// Step operations.
const (
	OpApply           = "apply"
	OpForce           = "force"
	OpBlendMode       = "blend-mode"
	OpPolygonOffset   = "polygon-offset"
	OpResetAttributes = "reset-attributes"
	OpResetToDefault  = "reset-to-default"
)

var (
	// ErrUnknownOp is returned for a step whose op is not one of the Op constants.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrInvalidStep is returned for a step whose fields do not fit its op.
	ErrInvalidStep = errors.New("scenario: invalid step")

	// ErrExpectation is returned when a step issues a different number of
	// device calls than its expect field.
	ErrExpectation = errors.New("scenario: expectation failed")
)

// Scenario is a named sequence of steps run against one device.
type Scenario struct {
	Name   string `yaml:"name"`
	Device string `yaml:"device,omitempty"` // backend device name, "recording" if empty
	// MaxVertexAttributes overrides the device limit. Only built-in devices
	// honor it.
	MaxVertexAttributes uint32 `yaml:"max_vertex_attributes,omitempty"`
	Steps               []Step `yaml:"steps"`
}

// Step is one manager operation.
type Step struct {
	Op string `yaml:"op"`

	// Toggles lists the toggles that are on, for apply and force.
	Toggles []string `yaml:"toggles,omitempty"`

	// BlendMode is the requested mode for apply, force and blend-mode.
	BlendMode glstate.BlendMode `yaml:"blend_mode,omitempty"`

	// Factor and Units are the polygon-offset parameters.
	Factor float32 `yaml:"factor,omitempty"`
	Units  float32 `yaml:"units,omitempty"`

	// Expect is the number of device calls the step must issue.
	Expect *int `yaml:"expect,omitempty"`
}

// State builds the requested state of an apply or force step.
func (s *Step) State() (*glstate.State, error) {
	st := glstate.NewState().SetBlendMode(s.BlendMode)
	for _, name := range s.Toggles {
		t, err := glstate.ParseToggle(name)
		if err != nil {
			return nil, err
		}
		st.Set(t, true)
	}
	return st, nil
}

func (s *Step) validate() error {
	switch s.Op {
	case OpApply, OpForce:
		if _, err := s.State(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
	case OpBlendMode, OpPolygonOffset, OpResetAttributes, OpResetToDefault:
		if len(s.Toggles) > 0 {
			return fmt.Errorf("%w: %s takes no toggles", ErrInvalidStep, s.Op)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	if s.Expect != nil && *s.Expect < 0 {
		return fmt.Errorf("%w: negative expect %d", ErrInvalidStep, *s.Expect)
	}
	return nil
}

// Validate checks every step.
func (sc *Scenario) Validate() error {
	for i := range sc.Steps {
		if err := sc.Steps[i].validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Load decodes and validates a scenario. Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario: empty document")
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile loads the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
