// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToggle is returned by ParseToggle for names that do not
// match any toggle.
var ErrUnknownToggle = errors.New("glstate: unknown toggle")

// Toggle identifies one boolean pipeline switch. The value of a Toggle is
// its bit position inside a Word.
//
// The order is significant: toggles are applied in ascending order, and
// Blend comes first so that the blend mode check it registers runs in the
// same apply.
type Toggle uint8

const (
	ToggleBlend             Toggle = iota // blending on/off
	TogglePolygonOffsetFill               // polygon offset fill on/off
	ToggleCullFace                        // face culling on/off
	ToggleDepthTest                       // depth testing on/off
	ToggleFrontFaceWinding                // clockwise (1) or counter-clockwise (0) front faces

	// NumToggles is the number of defined toggles. Only the low NumToggles
	// bits of a Word are meaningful.
	NumToggles int = iota
)

var toggleNames = [...]string{
	ToggleBlend:             "Blend",
	TogglePolygonOffsetFill: "PolygonOffsetFill",
	ToggleCullFace:          "CullFace",
	ToggleDepthTest:         "DepthTest",
	ToggleFrontFaceWinding:  "FrontFaceWinding",
}

// String returns the toggle name.
func (t Toggle) String() string {
	if int(t) < len(toggleNames) {
		return toggleNames[t]
	}
	return fmt.Sprintf("Toggle(%d)", uint8(t))
}

// Valid reports whether t is a defined toggle.
func (t Toggle) Valid() bool {
	return int(t) < NumToggles
}

// mask returns the single-bit Word for t.
func (t Toggle) mask() Word {
	mustValidToggle(int(t))
	return 1 << t
}

// ParseToggle returns the toggle with the given name. Matching ignores
// case, dashes and underscores, so "depth-test" and "DepthTest" are the same.
func ParseToggle(name string) (Toggle, error) {
	key := normalizeName(name)
	for i, n := range toggleNames {
		if normalizeName(n) == key {
			return Toggle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToggle, name)
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func mustValidToggle(i int) {
	if i < 0 || i >= NumToggles {
		panic(fmt.Sprintf("glstate: toggle index %d out of range [0, %d)", i, NumToggles))
	}
}
