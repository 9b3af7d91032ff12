// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate"
	"github.com/gogpu/glstate/recording"
)

// init registers the built-in devices on package import.
func init() {
	Register(DeviceRecording, func() glstate.Device {
		return recording.NewRecorder(glstate.DefaultCapabilities())
	})
	Register(DeviceNull, func() glstate.Device {
		return NewNullDevice(glstate.DefaultCapabilities())
	})
}

// NullDevice is a glstate.Device that discards every call. It is useful
// for benchmarking the manager without driver cost.
type NullDevice struct {
	caps glstate.Capabilities
}

var _ glstate.Device = (*NullDevice)(nil)

// NewNullDevice returns a NullDevice reporting caps.
func NewNullDevice(caps glstate.Capabilities) *NullDevice {
	return &NullDevice{caps: caps}
}

func (*NullDevice) Enable(glstate.Cap)                                   {}
func (*NullDevice) Disable(glstate.Cap)                                  {}
func (*NullDevice) BlendFunc(gputypes.BlendFactor, gputypes.BlendFactor) {}
func (*NullDevice) PolygonOffset(float32, float32)                       {}
func (*NullDevice) FrontFace(gputypes.FrontFace)                         {}
func (*NullDevice) DisableVertexAttribArray(uint32)                      {}
func (*NullDevice) PixelStoreUnpackFlipY(bool)                           {}

// Capabilities returns the capabilities given to NewNullDevice.
func (d *NullDevice) Capabilities() glstate.Capabilities { return d.caps }
