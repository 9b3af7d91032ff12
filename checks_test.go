// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"slices"
	"testing"
)

func TestSetCheckActiveIdempotent(t *testing.T) {
	m := New(newFakeDevice())
	a := NewCheck("a", func(*Manager, *State) {})

	m.SetCheckActive(a, true)
	m.SetCheckActive(a, true)
	if got := m.ActiveChecks(); len(got) != 1 || got[0] != a {
		t.Fatalf("ActiveChecks() = %v, want [a]", got)
	}

	m.SetCheckActive(a, false)
	m.SetCheckActive(a, false)
	if got := m.ActiveChecks(); len(got) != 0 {
		t.Fatalf("ActiveChecks() = %v, want []", got)
	}
}

func TestSetCheckActivePreservesOrder(t *testing.T) {
	m := New(newFakeDevice())
	a := NewCheck("a", func(*Manager, *State) {})
	b := NewCheck("b", func(*Manager, *State) {})
	c := NewCheck("c", func(*Manager, *State) {})

	m.SetCheckActive(a, true)
	m.SetCheckActive(b, true)
	m.SetCheckActive(c, true)
	m.SetCheckActive(b, false)
	m.SetCheckActive(b, true)

	want := []*Check{a, c, b}
	if got := m.ActiveChecks(); !slices.Equal(got, want) {
		t.Errorf("ActiveChecks() = %v, want %v", got, want)
	}
}

func TestChecksWithSameNameAreDistinct(t *testing.T) {
	m := New(newFakeDevice())
	x := NewCheck("dup", func(*Manager, *State) {})
	y := NewCheck("dup", func(*Manager, *State) {})

	m.SetCheckActive(x, true)
	m.SetCheckActive(y, true)
	if n := len(m.ActiveChecks()); n != 2 {
		t.Errorf("len(ActiveChecks()) = %d, want 2", n)
	}
}

func TestActiveChecksReturnsCopy(t *testing.T) {
	m := New(newFakeDevice())
	m.SetCheckActive(BlendModeCheck, true)

	got := m.ActiveChecks()
	got[0] = nil
	if m.ActiveChecks()[0] != BlendModeCheck {
		t.Error("mutating ActiveChecks() result changed the manager")
	}
}

func TestChecksRunInRegistrationOrderAfterHandlers(t *testing.T) {
	dev := newFakeDevice()
	m := New(dev)

	var order []string
	first := NewCheck("first", func(m *Manager, s *State) {
		order = append(order, "first:"+s.Word().String())
	})
	second := NewCheck("second", func(m *Manager, s *State) {
		order = append(order, "second")
	})
	m.SetCheckActive(second, true)
	m.SetCheckActive(first, true)

	m.Apply(NewState().SetDepthTest(true))

	want := []string{"second", "first:DepthTest"}
	if !slices.Equal(order, want) {
		t.Errorf("check order = %v, want %v", order, want)
	}
	if !slices.Equal(dev.calls, []string{"enable DEPTH_TEST"}) {
		t.Errorf("device calls = %v", dev.calls)
	}

	// No-op apply runs nothing.
	order = nil
	m.Apply(NewState().SetDepthTest(true))
	if len(order) != 0 {
		t.Errorf("checks ran on a no-op apply: %v", order)
	}
}

func TestBlendModeCheckName(t *testing.T) {
	if BlendModeCheck.Name() != "blend-mode" || BlendModeCheck.String() != "blend-mode" {
		t.Errorf("BlendModeCheck name = %q", BlendModeCheck.Name())
	}
}

func TestCheckRemovingItselfDoesNotSkipNext(t *testing.T) {
	m := New(newFakeDevice())
	var ran []string
	var a *Check
	a = NewCheck("a", func(m *Manager, _ *State) {
		ran = append(ran, "a")
		m.SetCheckActive(a, false)
	})
	b := NewCheck("b", func(*Manager, *State) { ran = append(ran, "b") })
	m.SetCheckActive(a, true)
	m.SetCheckActive(b, true)

	m.Apply(NewState().SetCullFace(true))
	if want := []string{"a", "b"}; !slices.Equal(ran, want) {
		t.Errorf("checks run = %v, want %v", ran, want)
	}
	if got := m.ActiveChecks(); len(got) != 1 || got[0] != b {
		t.Errorf("ActiveChecks() = %v, want [b]", got)
	}

	ran = nil
	m.Apply(NewState())
	if want := []string{"b"}; !slices.Equal(ran, want) {
		t.Errorf("checks run on next apply = %v, want %v", ran, want)
	}
}

func TestCheckAddedDuringRunStartsNextApply(t *testing.T) {
	m := New(newFakeDevice())
	var ran []string
	late := NewCheck("late", func(*Manager, *State) { ran = append(ran, "late") })
	early := NewCheck("early", func(m *Manager, _ *State) {
		ran = append(ran, "early")
		m.SetCheckActive(late, true)
	})
	m.SetCheckActive(early, true)

	m.Apply(NewState().SetDepthTest(true))
	if want := []string{"early"}; !slices.Equal(ran, want) {
		t.Errorf("checks run = %v, want %v", ran, want)
	}

	ran = nil
	m.Apply(NewState())
	if want := []string{"early", "late"}; !slices.Equal(ran, want) {
		t.Errorf("checks run on next apply = %v, want %v", ran, want)
	}
}
