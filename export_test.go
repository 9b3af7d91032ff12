// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

// SetAttribForTest fills attribute bookkeeping slot i.
func (m *Manager) SetAttribForTest(i int, temp, current uint32) {
	m.tempAttribState[i] = temp
	m.attribState[i] = current
}
