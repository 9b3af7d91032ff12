// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

// State is a requested render state: the packed toggles plus the
// parameters derived checks read while their toggle is on.
//
// A State is built by the caller per draw batch. The Manager reads it
// during one apply and keeps no reference afterwards.
//
// Setters return the State for chaining:
//
//	s := glstate.NewState().SetBlend(true).SetDepthTest(true).SetBlendMode(glstate.BlendAdd)
type State struct {
	word Word

	// BlendMode is pushed by BlendModeCheck while blending is on.
	BlendMode BlendMode

	// PolygonOffset and PolygonOffsetUnits are carried for callers that
	// apply them with Manager.SetPolygonOffset. The diff loop never sends them.
	PolygonOffset      float32
	PolygonOffsetUnits float32
}

// NewState returns a state with every toggle off and BlendNormal.
func NewState() *State {
	return &State{BlendMode: BlendNormal}
}

// For2D returns the usual state for 2D drawing: blending on with
// BlendNormal, no depth test, no culling, counter-clockwise front faces.
func For2D() *State {
	return NewState().SetBlend(true)
}

// StateFromWord returns a state holding w with BlendNormal. Bits beyond
// the defined toggles are dropped.
func StateFromWord(w Word) *State {
	return &State{word: w & validMask, BlendMode: BlendNormal}
}

// Word returns the packed toggles.
func (s *State) Word() Word { return s.word }

// Enabled reports whether toggle t is on.
func (s *State) Enabled(t Toggle) bool { return s.word.Has(t) }

// Set switches toggle t.
func (s *State) Set(t Toggle, on bool) *State {
	s.word = s.word.With(t, on)
	return s
}

// SetBlend switches blending.
func (s *State) SetBlend(on bool) *State { return s.Set(ToggleBlend, on) }

// SetPolygonOffsetFill switches polygon offset fill.
func (s *State) SetPolygonOffsetFill(on bool) *State { return s.Set(TogglePolygonOffsetFill, on) }

// SetCullFace switches face culling.
func (s *State) SetCullFace(on bool) *State { return s.Set(ToggleCullFace, on) }

// SetDepthTest switches depth testing.
func (s *State) SetDepthTest(on bool) *State { return s.Set(ToggleDepthTest, on) }

// SetClockwiseFrontFace selects clockwise (true) or counter-clockwise
// (false) front faces.
func (s *State) SetClockwiseFrontFace(cw bool) *State { return s.Set(ToggleFrontFaceWinding, cw) }

// SetBlendMode sets the mode BlendModeCheck pushes. It does not switch
// blending on.
func (s *State) SetBlendMode(m BlendMode) *State {
	s.BlendMode = m
	return s
}

// SetPolygonOffset records polygon offset parameters.
func (s *State) SetPolygonOffset(factor, units float32) *State {
	s.PolygonOffset = factor
	s.PolygonOffsetUnits = units
	return s
}

func (s *State) Blend() bool              { return s.Enabled(ToggleBlend) }
func (s *State) PolygonOffsetFill() bool  { return s.Enabled(TogglePolygonOffsetFill) }
func (s *State) CullFace() bool           { return s.Enabled(ToggleCullFace) }
func (s *State) DepthTest() bool          { return s.Enabled(ToggleDepthTest) }
func (s *State) ClockwiseFrontFace() bool { return s.Enabled(ToggleFrontFaceWinding) }
