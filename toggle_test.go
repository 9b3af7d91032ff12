// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"errors"
	"testing"
)

func TestToggleBitPositions(t *testing.T) {
	// Bit positions are part of the Word encoding and must not move.
	tests := []struct {
		tg   Toggle
		bit  int
		name string
	}{
		{ToggleBlend, 0, "Blend"},
		{TogglePolygonOffsetFill, 1, "PolygonOffsetFill"},
		{ToggleCullFace, 2, "CullFace"},
		{ToggleDepthTest, 3, "DepthTest"},
		{ToggleFrontFaceWinding, 4, "FrontFaceWinding"},
	}
	if NumToggles != len(tests) {
		t.Fatalf("NumToggles = %d, want %d", NumToggles, len(tests))
	}
	for _, tt := range tests {
		if int(tt.tg) != tt.bit {
			t.Errorf("%s bit = %d, want %d", tt.name, int(tt.tg), tt.bit)
		}
		if got := tt.tg.String(); got != tt.name {
			t.Errorf("Toggle(%d).String() = %q, want %q", tt.bit, got, tt.name)
		}
		if !tt.tg.Valid() {
			t.Errorf("%s.Valid() = false", tt.name)
		}
	}
	if Toggle(NumToggles).Valid() {
		t.Error("Toggle(NumToggles).Valid() = true")
	}
	if got := Toggle(7).String(); got != "Toggle(7)" {
		t.Errorf("Toggle(7).String() = %q", got)
	}
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in   string
		want Toggle
	}{
		{"Blend", ToggleBlend},
		{"blend", ToggleBlend},
		{"depth-test", ToggleDepthTest},
		{"depth_test", ToggleDepthTest},
		{"CULLFACE", ToggleCullFace},
		{"polygon-offset-fill", TogglePolygonOffsetFill},
		{"front-face-winding", ToggleFrontFaceWinding},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseToggle(tt.in)
			if err != nil {
				t.Fatalf("ParseToggle(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseToggle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseToggle("stencil"); !errors.Is(err, ErrUnknownToggle) {
		t.Errorf("ParseToggle(stencil) error = %v, want ErrUnknownToggle", err)
	}
}
