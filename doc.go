// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glstate tracks fixed-function GPU render state and applies
// requested states with the fewest device calls.
//
// # Overview
//
// A render state is a small set of on/off toggles (blending, polygon
// offset fill, face culling, depth testing, front-face winding) packed
// into a Word, one bit per Toggle. A Manager remembers the last word it
// applied. Applying a new word XORs the two and runs one handler per
// changed bit, in ascending bit order. Applying the same word again does
// nothing.
//
// # Quick Start
//
//	dev := backend.MustDefault() // or any glstate.Device
//	m := glstate.New(dev)
//
//	s := glstate.For2D().SetDepthTest(true)
//	m.Apply(s) // Enable(BLEND), Enable(DEPTH_TEST), BlendFunc(One, OneMinusSrcAlpha)
//	m.Apply(s) // no calls
//
// # Derived Checks
//
// Some parameters only matter while a toggle is on. A Check is run after
// every non-trivial apply while it is active. Turning Blend on activates
// BlendModeCheck, which sends the blend factors of State.BlendMode only
// when the mode differs from the last one sent.
//
// # Devices
//
// Device is the narrow set of driver calls the Manager issues. Package
// recording provides a Device that records typed commands for tests and
// tools, and package backend provides a registry of named devices.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route its log/slog
// output to a handler of your choice.
package glstate
