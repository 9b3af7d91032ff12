// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import "slices"

// CheckFunc pushes a derived parameter to the device. It runs after the
// toggle handlers of every non-trivial apply while its check is active.
type CheckFunc func(m *Manager, s *State)

// Check is a derived check. Its identity is its pointer: the same *Check
// is active at most once per Manager.
type Check struct {
	name string
	fn   CheckFunc
}

// NewCheck returns a derived check. Keep the result and reuse it; two
// calls with the same arguments are two distinct checks.
func NewCheck(name string, fn CheckFunc) *Check {
	return &Check{name: name, fn: fn}
}

// Name returns the check name.
func (c *Check) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Check) String() string { return c.name }

// BlendModeCheck pushes the requested blend mode while blending is on.
// The Blend toggle handler activates and deactivates it.
var BlendModeCheck = NewCheck("blend-mode", func(m *Manager, s *State) {
	m.SetBlendMode(s.BlendMode)
})

// SetCheckActive adds c to the end of the active list when active is
// true and c is absent, and removes it when active is false and c is
// present. Other checks keep their order. Repeated calls are no-ops.
func (m *Manager) SetCheckActive(c *Check, active bool) {
	i := slices.Index(m.checks, c)
	switch {
	case active && i < 0:
		m.checks = append(m.checks, c)
	case !active && i >= 0:
		m.checks = slices.Delete(m.checks, i, i+1)
	default:
		return
	}
	if debugEnabled() {
		Logger().Debug("glstate: derived check", "check", c.name, "active", active)
	}
}

// ActiveChecks returns the active checks in execution order.
func (m *Manager) ActiveChecks() []*Check {
	return slices.Clone(m.checks)
}

// runChecks runs every check active when it is called, in registration
// order. A check may change the active list; the change applies from the
// next apply on.
func (m *Manager) runChecks(s *State) {
	switch len(m.checks) {
	case 0:
		return
	case 1:
		m.checks[0].fn(m, s)
		return
	}
	for _, c := range slices.Clone(m.checks) {
		c.fn(m, s)
	}
}
