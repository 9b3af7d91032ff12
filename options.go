// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import "github.com/gogpu/glstate/metrics"

// Option configures a Manager during creation.
//
// Example:
//
//	// Defaults: blend table from the device, no metrics, all toggles off.
//	m := glstate.New(dev)
//
//	// Prometheus metrics and a device already in a known state.
//	m := glstate.New(dev,
//	    glstate.WithRecorder(metrics.NewPrometheusRecorder(reg)),
//	    glstate.WithInitialWord(glstate.For2D().Word()),
//	)
type Option func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	recorder    metrics.Recorder
	blendTable  *BlendTable
	initialWord Word
}

func defaultOptions() managerOptions {
	return managerOptions{
		recorder:   metrics.NoopRecorder{},
		blendTable: nil, // built from device capabilities if nil
	}
}

// WithRecorder sets the metrics recorder. nil keeps the no-op recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *managerOptions) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithBlendTable replaces the blend table that New would build from the
// device's supported factors.
func WithBlendTable(t *BlendTable) Option {
	return func(o *managerOptions) {
		o.blendTable = t
	}
}

// WithInitialWord tells the Manager the device already holds w. The
// first Apply then diffs against w instead of the all-off word. Bits
// beyond the defined toggles are dropped.
func WithInitialWord(w Word) Option {
	return func(o *managerOptions) {
		o.initialWord = w & validMask
	}
}
