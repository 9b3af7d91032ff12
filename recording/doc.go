// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides a glstate.Device that records device calls.
//
// Every primitive call is captured as a typed command instead of reaching
// a driver. The recorded stream shows exactly what a glstate.Manager sent,
// which makes it the device of choice for tests, traces and the glstate
// command. A Recording can be replayed onto any other device.
//
// Design follows typed command structs for inspectability rather than a
// binary encoding.
//
// # Example
//
//	rec := recording.NewRecorder(glstate.DefaultCapabilities())
//	m := glstate.New(rec)
//	m.Apply(glstate.For2D())
//	for _, c := range rec.Commands() {
//	    fmt.Println(c)
//	}
//
//	// Replay onto the real device.
//	rec.FinishRecording().Playback(dev)
package recording
