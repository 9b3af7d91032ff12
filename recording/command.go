// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate"
)

// CommandType identifies the device call a command captured.
type CommandType uint8

const (
	CmdEnable              CommandType = iota // Enable a capability
	CmdDisable                                // Disable a capability
	CmdBlendFunc                              // Set blend factors
	CmdPolygonOffset                          // Set polygon offset factor and units
	CmdFrontFace                              // Select front face winding
	CmdDisableVertexAttrib                    // Disable a vertex attribute slot
	CmdUnbindVertexArray                      // Unbind the current vertex array object
	CmdPixelStore                             // Set the unpack flip-Y flag
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdEnable:              "Enable",
	CmdDisable:             "Disable",
	CmdBlendFunc:           "BlendFunc",
	CmdPolygonOffset:       "PolygonOffset",
	CmdFrontFace:           "FrontFace",
	CmdDisableVertexAttrib: "DisableVertexAttrib",
	CmdUnbindVertexArray:   "UnbindVertexArray",
	CmdPixelStore:          "PixelStore",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// String formats the command as a call, e.g. "Enable(BLEND)".
	String() string
}

// EnableCommand records Device.Enable.
type EnableCommand struct {
	Cap glstate.Cap
}

func (EnableCommand) Type() CommandType { return CmdEnable }
func (c EnableCommand) String() string  { return fmt.Sprintf("Enable(%v)", c.Cap) }

// DisableCommand records Device.Disable.
type DisableCommand struct {
	Cap glstate.Cap
}

func (DisableCommand) Type() CommandType { return CmdDisable }
func (c DisableCommand) String() string  { return fmt.Sprintf("Disable(%v)", c.Cap) }

// BlendFuncCommand records Device.BlendFunc.
type BlendFuncCommand struct {
	Src, Dst gputypes.BlendFactor
}

func (BlendFuncCommand) Type() CommandType { return CmdBlendFunc }
func (c BlendFuncCommand) String() string {
	return fmt.Sprintf("BlendFunc(%v, %v)", c.Src, c.Dst)
}

// PolygonOffsetCommand records Device.PolygonOffset.
type PolygonOffsetCommand struct {
	Factor, Units float32
}

func (PolygonOffsetCommand) Type() CommandType { return CmdPolygonOffset }
func (c PolygonOffsetCommand) String() string {
	return fmt.Sprintf("PolygonOffset(%g, %g)", c.Factor, c.Units)
}

// FrontFaceCommand records Device.FrontFace.
type FrontFaceCommand struct {
	Face gputypes.FrontFace
}

func (FrontFaceCommand) Type() CommandType { return CmdFrontFace }
func (c FrontFaceCommand) String() string  { return fmt.Sprintf("FrontFace(%v)", c.Face) }

// DisableVertexAttribCommand records Device.DisableVertexAttribArray.
type DisableVertexAttribCommand struct {
	Index uint32
}

func (DisableVertexAttribCommand) Type() CommandType { return CmdDisableVertexAttrib }
func (c DisableVertexAttribCommand) String() string {
	return fmt.Sprintf("DisableVertexAttrib(%d)", c.Index)
}

// UnbindVertexArrayCommand records VertexArrayBinder.UnbindVertexArray.
type UnbindVertexArrayCommand struct{}

func (UnbindVertexArrayCommand) Type() CommandType { return CmdUnbindVertexArray }
func (UnbindVertexArrayCommand) String() string    { return "UnbindVertexArray()" }

// PixelStoreCommand records Device.PixelStoreUnpackFlipY.
type PixelStoreCommand struct {
	FlipY bool
}

func (PixelStoreCommand) Type() CommandType { return CmdPixelStore }
func (c PixelStoreCommand) String() string {
	return fmt.Sprintf("PixelStore(UNPACK_FLIP_Y=%t)", c.FlipY)
}
