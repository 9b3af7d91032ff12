// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glstate/metrics"
)

// Manager applies requested render states to a Device, issuing only the
// calls needed to move the device from the last applied state.
//
// A Manager is not safe for concurrent use. It belongs to the single
// render loop that drives the device.
type Manager struct {
	dev      Device
	caps     Capabilities
	blend    *BlendTable
	recorder metrics.Recorder

	// word is the last applied state.
	word Word

	// checks are the active derived checks in registration order.
	checks []*Check

	// blendMode is the last mode sent with BlendFunc.
	blendMode BlendMode

	// Vertex attribute bookkeeping, sized to Limits.MaxVertexAttributes.
	tempAttribState []uint32
	attribState     []uint32
}

// handlers is the dispatch table: bit index to toggle handler.
var handlers = [NumToggles]func(m *Manager, on bool){
	ToggleBlend:             (*Manager).setBlend,
	TogglePolygonOffsetFill: (*Manager).setPolygonOffsetFill,
	ToggleCullFace:          (*Manager).setCullFace,
	ToggleDepthTest:         (*Manager).setDepthTest,
	ToggleFrontFaceWinding:  (*Manager).setFrontFace,
}

// New creates a Manager for dev. The device capabilities are queried once
// and the blend table is built from them unless WithBlendTable is given.
//
// New assumes the device holds the all-off state (or the WithInitialWord
// state); use ForceApply when that is not known.
func New(dev Device, opts ...Option) *Manager {
	if dev == nil {
		panic("glstate: New called with nil device")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	caps := dev.Capabilities()
	if o.blendTable == nil {
		o.blendTable = NewBlendTable(caps.BlendFactors)
	}

	maxAttribs := int(caps.Limits.MaxVertexAttributes)
	m := &Manager{
		dev:             dev,
		caps:            caps,
		blend:           o.blendTable,
		recorder:        o.recorder,
		word:            o.initialWord,
		blendMode:       blendModeUnset,
		tempAttribState: make([]uint32, maxAttribs),
		attribState:     make([]uint32, maxAttribs),
	}
	if m.word.Has(ToggleBlend) {
		m.SetCheckActive(BlendModeCheck, true)
	}

	Logger().Info("glstate: manager created",
		"adapter", caps.Adapter.Name,
		"adapterType", caps.Adapter.Type.String(),
		"maxVertexAttributes", maxAttribs,
		"blendModes", len(m.blend.Modes()))
	return m
}

// Word returns the last applied state word.
func (m *Manager) Word() Word { return m.word }

// Capabilities returns the device capabilities queried by New.
func (m *Manager) Capabilities() Capabilities { return m.caps }

// Apply applies s. It is ApplyState(s.Word(), s). A nil s applies the
// all-off state.
func (m *Manager) Apply(s *State) {
	if s == nil {
		s = NewState()
	}
	m.ApplyState(s.Word(), s)
}

// ApplyState moves the device from the last applied word to word.
//
// If word equals the last applied word nothing happens: no device calls
// and no derived checks. Callers must not rely on derived checks running
// for such an apply; a blend mode change alone is not applied.
//
// Otherwise the handler of every toggle that differs runs once, in
// ascending bit order, with the toggle's new value. Then the word is
// recorded and every active derived check runs in registration order,
// reading its parameters from aux. A nil aux reads as StateFromWord(word).
//
// A word with bits beyond the defined toggles panics before any device call.
func (m *Manager) ApplyState(word Word, aux *State) {
	if !word.Valid() {
		panic(fmt.Sprintf("glstate: state word %#x has bits beyond the %d defined toggles",
			uint32(word), NumToggles))
	}
	if word == m.word {
		m.recorder.IncApply(metrics.ApplySkipped)
		return
	}

	prev := m.word
	diff := prev ^ word
	changed := 0
	for i := 0; diff != 0; i++ {
		if diff&1 != 0 {
			m.dispatch(Toggle(i), word&(1<<uint(i)) != 0)
			changed++
		}
		diff >>= 1
	}
	m.word = word

	if debugEnabled() {
		Logger().Debug("glstate: apply", "from", prev.String(), "to", word.String(), "changed", changed)
	}
	m.recorder.IncApply(metrics.ApplyApplied)
	m.recorder.ObserveChangedToggles(changed)

	if aux == nil {
		aux = StateFromWord(word)
	}
	m.runChecks(aux)
}

// ForceApply sends every toggle of s to the device regardless of the
// last applied word, forgets the last blend mode sent, and runs the
// derived checks. Use it after the device state was changed behind the
// Manager's back, e.g. after context loss. A nil s forces the all-off
// state.
func (m *Manager) ForceApply(s *State) {
	if s == nil {
		s = NewState()
	}
	word := s.Word()
	for i := range NumToggles {
		m.dispatch(Toggle(i), word&(1<<uint(i)) != 0)
	}
	m.word = word
	m.blendMode = blendModeUnset

	if debugEnabled() {
		Logger().Debug("glstate: force apply", "to", word.String())
	}
	m.recorder.IncApply(metrics.ApplyForced)

	m.runChecks(s)
}

// dispatch invokes the handler of toggle t. t must be a defined toggle.
func (m *Manager) dispatch(t Toggle, on bool) {
	mustValidToggle(int(t))
	handlers[t](m, on)
	m.recorder.IncToggleChange(t.String(), on)
}

func (m *Manager) setBlend(on bool) {
	m.SetCheckActive(BlendModeCheck, on)
	setCap(m.dev, toggleCaps[ToggleBlend], on)
}

func (m *Manager) setPolygonOffsetFill(on bool) {
	setCap(m.dev, toggleCaps[TogglePolygonOffsetFill], on)
}

func (m *Manager) setCullFace(on bool) {
	setCap(m.dev, toggleCaps[ToggleCullFace], on)
}

func (m *Manager) setDepthTest(on bool) {
	setCap(m.dev, toggleCaps[ToggleDepthTest], on)
}

// setFrontFace selects a winding order; it is not an enable/disable pair.
func (m *Manager) setFrontFace(cw bool) {
	if cw {
		m.dev.FrontFace(gputypes.FrontFaceCW)
	} else {
		m.dev.FrontFace(gputypes.FrontFaceCCW)
	}
}

// SetBlendMode sends the blend factors of mode unless mode was the last
// mode sent. A mode missing from the blend table panics before any device
// call; callers may only use modes the device supports.
func (m *Manager) SetBlendMode(mode BlendMode) {
	if mode == m.blendMode {
		return
	}
	f := m.blend.mustLookup(mode)
	m.dev.BlendFunc(f.Src, f.Dst)
	m.blendMode = mode
	m.recorder.IncBlendFunc(mode.String())
}

// SetPolygonOffset sends polygon offset parameters. The diff loop never
// calls it, not even when PolygonOffsetFill turns on; callers that enable
// the toggle send the parameters themselves.
func (m *Manager) SetPolygonOffset(factor, units float32) {
	m.dev.PolygonOffset(factor, units)
}

// BlendTable returns the blend table in use.
func (m *Manager) BlendTable() *BlendTable { return m.blend }
