// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a registry of named glstate devices.
//
// Devices are registered with a factory and selected at runtime, by name
// or by priority. Two devices are registered on import:
//
//   - "recording": a recording.Recorder with default capabilities
//   - "null": a NullDevice that discards every call
//
// Host applications register their real device the same way:
//
//	func init() {
//	    backend.Register("webgl", func() glstate.Device { return newWebGLDevice(canvas) })
//	}
//
// # Device Selection
//
//	dev, err := backend.Open("recording")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := glstate.New(dev)
//
//	// Or the best available device:
//	m = glstate.New(backend.MustDefault())
package backend
