// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Cap identifies a device capability that is switched with Enable and
// Disable.
type Cap uint8

const (
	CapBlend Cap = iota
	CapPolygonOffsetFill
	CapCullFace
	CapDepthTest
)

var capNames = [...]string{
	CapBlend:             "BLEND",
	CapPolygonOffsetFill: "POLYGON_OFFSET_FILL",
	CapCullFace:          "CULL_FACE",
	CapDepthTest:         "DEPTH_TEST",
}

// String returns the capability name.
func (c Cap) String() string {
	if int(c) < len(capNames) {
		return capNames[c]
	}
	return fmt.Sprintf("Cap(%d)", uint8(c))
}

// Device is the graphics context the Manager drives. Every method is a
// primitive state call; none of them can fail.
//
// Device is owned by the host application. glstate never creates one.
type Device interface {
	// Enable switches a capability on.
	Enable(c Cap)

	// Disable switches a capability off.
	Disable(c Cap)

	// BlendFunc sets the source and destination blend factors.
	BlendFunc(src, dst gputypes.BlendFactor)

	// PolygonOffset sets the depth offset factor and units.
	PolygonOffset(factor, units float32)

	// FrontFace selects the winding order of front-facing polygons.
	FrontFace(face gputypes.FrontFace)

	// DisableVertexAttribArray disables the vertex attribute at index.
	DisableVertexAttribArray(index uint32)

	// PixelStoreUnpackFlipY sets whether uploaded pixels are flipped vertically.
	PixelStoreUnpackFlipY(flip bool)

	// Capabilities describes the device. It is queried once by New.
	Capabilities() Capabilities
}

// VertexArrayBinder is implemented by devices that support vertex array
// objects. ResetToDefault unbinds the current one when available.
type VertexArrayBinder interface {
	UnbindVertexArray()
}

// Capabilities describes what a device supports.
type Capabilities struct {
	// Adapter identifies the physical adapter, for logging.
	Adapter gpucontext.AdapterInfo

	// Limits carries MaxVertexAttributes, which sizes attribute bookkeeping.
	Limits gputypes.Limits

	// BlendFactors lists the blend factors the device accepts. Blend modes
	// needing other factors are left out of the blend table.
	BlendFactors FactorSet
}

// DefaultCapabilities returns the capabilities of a WebGPU-baseline device:
// default limits and every blend factor.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Adapter:      gpucontext.AdapterInfo{Name: "default", Type: gpucontext.AdapterTypeUnknown},
		Limits:       gputypes.DefaultLimits(),
		BlendFactors: AllFactors,
	}
}

// toggleCaps maps the enable/disable toggles to their capability.
var toggleCaps = [...]Cap{
	ToggleBlend:             CapBlend,
	TogglePolygonOffsetFill: CapPolygonOffsetFill,
	ToggleCullFace:          CapCullFace,
	ToggleDepthTest:         CapDepthTest,
}

func setCap(d Device, c Cap, on bool) {
	if on {
		d.Enable(c)
	} else {
		d.Disable(c)
	}
}
