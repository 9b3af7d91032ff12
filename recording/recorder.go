// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate"
)

// Recorder is a glstate.Device that records every call as a Command.
// It also implements glstate.VertexArrayBinder.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	caps     glstate.Capabilities
	commands []Command
}

var (
	_ glstate.Device            = (*Recorder)(nil)
	_ glstate.VertexArrayBinder = (*Recorder)(nil)
)

// NewRecorder creates a Recorder reporting caps from Capabilities.
func NewRecorder(caps glstate.Capabilities) *Recorder {
	return &Recorder{
		caps:     caps,
		commands: make([]Command, 0, 64),
	}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) Enable(c glstate.Cap)  { r.record(EnableCommand{Cap: c}) }
func (r *Recorder) Disable(c glstate.Cap) { r.record(DisableCommand{Cap: c}) }

func (r *Recorder) BlendFunc(src, dst gputypes.BlendFactor) {
	r.record(BlendFuncCommand{Src: src, Dst: dst})
}

func (r *Recorder) PolygonOffset(factor, units float32) {
	r.record(PolygonOffsetCommand{Factor: factor, Units: units})
}

func (r *Recorder) FrontFace(face gputypes.FrontFace) {
	r.record(FrontFaceCommand{Face: face})
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record(DisableVertexAttribCommand{Index: index})
}

func (r *Recorder) PixelStoreUnpackFlipY(flip bool) {
	r.record(PixelStoreCommand{FlipY: flip})
}

func (r *Recorder) UnbindVertexArray() { r.record(UnbindVertexArrayCommand{}) }

// Capabilities returns the capabilities given to NewRecorder.
func (r *Recorder) Capabilities() glstate.Capabilities { return r.caps }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Commands returns the recorded commands. The slice is shared with the
// Recorder until the next call.
func (r *Recorder) Commands() []Command { return r.commands }

// CommandsSince returns the commands recorded after the first n.
func (r *Recorder) CommandsSince(n int) []Command {
	if n >= len(r.commands) {
		return nil
	}
	return r.commands[n:]
}

// Count returns how many recorded commands have type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording of the commands so far
// and resets the Recorder.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	r.Reset()
	return &Recording{commands: cmds}
}

// Recording is an immutable sequence of recorded device calls.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording onto dev. UnbindVertexArray commands are
// dropped for devices that do not implement glstate.VertexArrayBinder.
func (r *Recording) Playback(dev glstate.Device) {
	vao, hasVAO := dev.(glstate.VertexArrayBinder)
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case EnableCommand:
			dev.Enable(c.Cap)
		case DisableCommand:
			dev.Disable(c.Cap)
		case BlendFuncCommand:
			dev.BlendFunc(c.Src, c.Dst)
		case PolygonOffsetCommand:
			dev.PolygonOffset(c.Factor, c.Units)
		case FrontFaceCommand:
			dev.FrontFace(c.Face)
		case DisableVertexAttribCommand:
			dev.DisableVertexAttribArray(c.Index)
		case UnbindVertexArrayCommand:
			if hasVAO {
				vao.UnbindVertexArray()
			}
		case PixelStoreCommand:
			dev.PixelStoreUnpackFlipY(c.FlipY)
		}
	}
}
