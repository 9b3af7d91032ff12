// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"math/bits"
	"strings"
)

// Word is a packed toggle set: bit i is 1 iff Toggle(i) is enabled.
// Two words describe the same state iff they are numerically equal.
type Word uint32

// validMask covers the meaningful low bits of a Word.
const validMask Word = 1<<NumToggles - 1

// Encode packs a toggle mapping into a Word. Toggles missing from values
// are off. A key that is not a defined toggle panics.
func Encode(values map[Toggle]bool) Word {
	var w Word
	for t, on := range values {
		if on {
			w |= t.mask()
		} else {
			mustValidToggle(int(t))
		}
	}
	return w
}

// Decode returns bit i of w. i must be a defined toggle index.
func Decode(w Word, i int) bool {
	mustValidToggle(i)
	return w&(1<<uint(i)) != 0
}

// Has reports whether toggle t is enabled in w.
func (w Word) Has(t Toggle) bool {
	return w&t.mask() != 0
}

// With returns w with toggle t set to on.
func (w Word) With(t Toggle, on bool) Word {
	if on {
		return w | t.mask()
	}
	return w &^ t.mask()
}

// Valid reports whether only defined toggle bits are set.
func (w Word) Valid() bool {
	return w&^validMask == 0
}

// Toggles returns the enabled toggles in ascending bit order.
func (w Word) Toggles() []Toggle {
	out := make([]Toggle, 0, bits.OnesCount32(uint32(w&validMask)))
	for i := range NumToggles {
		if w&(1<<uint(i)) != 0 {
			out = append(out, Toggle(i))
		}
	}
	return out
}

// String returns the enabled toggle names joined by "|", or "None".
func (w Word) String() string {
	ts := w.Toggles()
	if len(ts) == 0 {
		return "None"
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return strings.Join(names, "|")
}
