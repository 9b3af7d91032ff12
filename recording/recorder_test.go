// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate"
)

func TestNewRecorder(t *testing.T) {
	caps := glstate.DefaultCapabilities()
	rec := NewRecorder(caps)

	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.Capabilities().Limits.MaxVertexAttributes != caps.Limits.MaxVertexAttributes {
		t.Errorf("Capabilities().Limits.MaxVertexAttributes = %d, want %d",
			rec.Capabilities().Limits.MaxVertexAttributes, caps.Limits.MaxVertexAttributes)
	}
}

func TestRecorderRecordsEveryCall(t *testing.T) {
	rec := NewRecorder(glstate.DefaultCapabilities())

	rec.Enable(glstate.CapBlend)
	rec.Disable(glstate.CapDepthTest)
	rec.BlendFunc(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha)
	rec.PolygonOffset(1.5, 2)
	rec.FrontFace(gputypes.FrontFaceCW)
	rec.DisableVertexAttribArray(3)
	rec.UnbindVertexArray()
	rec.PixelStoreUnpackFlipY(false)

	want := []string{
		"Enable(BLEND)",
		"Disable(DEPTH_TEST)",
		"BlendFunc(One, OneMinusSrcAlpha)",
		"PolygonOffset(1.5, 2)",
		"FrontFace(CW)",
		"DisableVertexAttrib(3)",
		"UnbindVertexArray()",
		"PixelStore(UNPACK_FLIP_Y=false)",
	}
	var got []string
	for _, c := range rec.Commands() {
		got = append(got, c.String())
	}
	if !slices.Equal(got, want) {
		t.Errorf("commands =\n%v\nwant\n%v", got, want)
	}

	types := []CommandType{
		CmdEnable, CmdDisable, CmdBlendFunc, CmdPolygonOffset,
		CmdFrontFace, CmdDisableVertexAttrib, CmdUnbindVertexArray, CmdPixelStore,
	}
	for i, c := range rec.Commands() {
		if c.Type() != types[i] {
			t.Errorf("command %d Type() = %v, want %v", i, c.Type(), types[i])
		}
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdEnable, "Enable"},
		{CmdBlendFunc, "BlendFunc"},
		{CmdPixelStore, "PixelStore"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRecorderCountAndSince(t *testing.T) {
	rec := NewRecorder(glstate.DefaultCapabilities())
	rec.Enable(glstate.CapBlend)
	rec.Enable(glstate.CapCullFace)
	mark := rec.Len()
	rec.Disable(glstate.CapBlend)

	if n := rec.Count(CmdEnable); n != 2 {
		t.Errorf("Count(CmdEnable) = %d, want 2", n)
	}
	since := rec.CommandsSince(mark)
	if len(since) != 1 || since[0] != (DisableCommand{Cap: glstate.CapBlend}) {
		t.Errorf("CommandsSince(%d) = %v, want [Disable(BLEND)]", mark, since)
	}
	if got := rec.CommandsSince(rec.Len()); got != nil {
		t.Errorf("CommandsSince(Len()) = %v, want nil", got)
	}
}

func TestFinishRecordingResets(t *testing.T) {
	rec := NewRecorder(glstate.DefaultCapabilities())
	rec.Enable(glstate.CapBlend)

	r := rec.FinishRecording()
	if len(r.Commands()) != 1 {
		t.Errorf("recording has %d commands, want 1", len(r.Commands()))
	}
	if rec.Len() != 0 {
		t.Errorf("Len() after FinishRecording = %d, want 0", rec.Len())
	}

	// The recording must not alias the recorder's buffer.
	rec.Disable(glstate.CapDepthTest)
	if r.Commands()[0] != (EnableCommand{Cap: glstate.CapBlend}) {
		t.Errorf("recording changed after recorder reuse: %v", r.Commands()[0])
	}
}

// plainDevice forwards to a Recorder but has no vertex array support.
type plainDevice struct{ rec *Recorder }

func (d plainDevice) Enable(c glstate.Cap)                { d.rec.Enable(c) }
func (d plainDevice) Disable(c glstate.Cap)               { d.rec.Disable(c) }
func (d plainDevice) BlendFunc(s, t gputypes.BlendFactor) { d.rec.BlendFunc(s, t) }
func (d plainDevice) PolygonOffset(f, u float32)          { d.rec.PolygonOffset(f, u) }
func (d plainDevice) FrontFace(f gputypes.FrontFace)      { d.rec.FrontFace(f) }
func (d plainDevice) DisableVertexAttribArray(i uint32)   { d.rec.DisableVertexAttribArray(i) }
func (d plainDevice) PixelStoreUnpackFlipY(flip bool)     { d.rec.PixelStoreUnpackFlipY(flip) }
func (d plainDevice) Capabilities() glstate.Capabilities  { return d.rec.Capabilities() }

func TestPlaybackReproducesCalls(t *testing.T) {
	src := NewRecorder(glstate.DefaultCapabilities())
	src.Enable(glstate.CapBlend)
	src.BlendFunc(gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrcAlpha)
	src.FrontFace(gputypes.FrontFaceCCW)
	src.UnbindVertexArray()
	src.PixelStoreUnpackFlipY(true)
	r := src.FinishRecording()

	dst := NewRecorder(glstate.DefaultCapabilities())
	r.Playback(dst)

	if !slices.Equal(dst.Commands(), r.Commands()) {
		t.Errorf("playback =\n%v\nwant\n%v", dst.Commands(), r.Commands())
	}
}

func TestManagerTraceThroughRecorder(t *testing.T) {
	rec := NewRecorder(glstate.DefaultCapabilities())
	m := glstate.New(rec)

	m.Apply(glstate.NewState().SetBlend(true).SetDepthTest(true).SetBlendMode(glstate.BlendAdd))

	want := []Command{
		EnableCommand{Cap: glstate.CapBlend},
		EnableCommand{Cap: glstate.CapDepthTest},
		BlendFuncCommand{Src: gputypes.BlendFactorOne, Dst: gputypes.BlendFactorDstAlpha},
	}
	if !slices.Equal(rec.Commands(), want) {
		t.Errorf("trace =\n%v\nwant\n%v", rec.Commands(), want)
	}
}

func TestPlaybackSkipsVertexArrayWithoutBinder(t *testing.T) {
	src := NewRecorder(glstate.DefaultCapabilities())
	src.UnbindVertexArray()
	src.DisableVertexAttribArray(1)
	r := src.FinishRecording()

	dst := NewRecorder(glstate.DefaultCapabilities())
	r.Playback(plainDevice{rec: dst})

	want := []Command{DisableVertexAttribCommand{Index: 1}}
	if !slices.Equal(dst.Commands(), want) {
		t.Errorf("playback = %v, want %v", dst.Commands(), want)
	}
}
