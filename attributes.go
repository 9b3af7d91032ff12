// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

// ResetAttributes zeroes the attribute bookkeeping and disables every
// vertex attribute from slot 1 up to the device maximum.
//
// Slot 0 is never disabled: it is assumed to be in use by every draw,
// and skipping it saves a driver call per reset. This is fixed policy.
func (m *Manager) ResetAttributes() {
	clear(m.tempAttribState)
	clear(m.attribState)

	for i := 1; i < len(m.attribState); i++ {
		m.dev.DisableVertexAttribArray(uint32(i))
	}
	m.recorder.IncAttributeReset()
}

// ResetToDefault unbinds the current vertex array object when the device
// supports them, resets the vertex attributes, and turns off vertical
// flipping of unpacked pixels. The toggle word is left alone.
func (m *Manager) ResetToDefault() {
	if vao, ok := m.dev.(VertexArrayBinder); ok {
		vao.UnbindVertexArray()
	}
	m.ResetAttributes()
	m.dev.PixelStoreUnpackFlipY(false)
}

// AttributeState returns copies of the two attribute bookkeeping arrays.
func (m *Manager) AttributeState() (temp, current []uint32) {
	temp = make([]uint32, len(m.tempAttribState))
	copy(temp, m.tempAttribState)
	current = make([]uint32, len(m.attribState))
	copy(current, m.attribState)
	return temp, current
}
