// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnknownBlendMode is returned when a blend mode name cannot be parsed.
var ErrUnknownBlendMode = errors.New("glstate: unknown blend mode")

// BlendMode identifies a blend equation as seen by callers. The device
// factors behind each mode come from a BlendTable.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendNormalNPM // non-premultiplied alpha
	BlendAddNPM
	BlendScreenNPM
	BlendNone

	numBlendModes int = iota
)

// blendModeUnset marks that no blend function has been sent yet.
const blendModeUnset BlendMode = -1

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendAdd:        "add",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
	BlendNormalNPM:  "normal-npm",
	BlendAddNPM:     "add-npm",
	BlendScreenNPM:  "screen-npm",
	BlendNone:       "none",
}

// String returns the mode name used in scenario files and on the CLI.
func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode returns the mode with the given name. Matching ignores
// case, dashes and underscores.
func ParseBlendMode(name string) (BlendMode, error) {
	key := normalizeName(name)
	for i, n := range blendModeNames {
		if normalizeName(n) == key {
			return BlendMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= numBlendModes {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBlendMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	v, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// FactorSet is a set of supported blend factors, one bit per
// gputypes.BlendFactor value.
type FactorSet uint32

// AllFactors contains every factor from BlendFactorZero to
// BlendFactorOneMinusConstant.
const AllFactors FactorSet = (1<<(gputypes.BlendFactorOneMinusConstant+1) - 1) &^ (1 << gputypes.BlendFactorUndefined)

// NewFactorSet returns a set holding the given factors.
func NewFactorSet(factors ...gputypes.BlendFactor) FactorSet {
	var s FactorSet
	for _, f := range factors {
		s |= 1 << f
	}
	return s
}

// Contains reports whether f is in the set.
func (s FactorSet) Contains(f gputypes.BlendFactor) bool {
	return f < 32 && s&(1<<f) != 0
}

// BlendFactors is a source/destination factor pair for one blend mode.
type BlendFactors struct {
	Src gputypes.BlendFactor
	Dst gputypes.BlendFactor
}

// blendModeFactors is the full translation before capability filtering.
var blendModeFactors = [...]BlendFactors{
	BlendNormal:     {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendAdd:        {gputypes.BlendFactorOne, gputypes.BlendFactorDstAlpha},
	BlendMultiply:   {gputypes.BlendFactorDst, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendScreen:     {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc},
	BlendOverlay:    {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendDarken:     {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendLighten:    {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendColorDodge: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendColorBurn:  {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendHardLight:  {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendSoftLight:  {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendDifference: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendExclusion:  {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendHue:        {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendSaturation: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendColor:      {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendLuminosity: {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendNormalNPM:  {gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	BlendAddNPM:     {gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorDstAlpha},
	BlendScreenNPM:  {gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrc},
	BlendNone:       {gputypes.BlendFactorZero, gputypes.BlendFactorZero},
}

// BlendTable maps blend modes to device factor pairs. It is built once
// from the device's supported factors; modes the device cannot express
// are absent.
type BlendTable struct {
	factors [numBlendModes]BlendFactors
	present [numBlendModes]bool
}

// NewBlendTable builds the table for a device supporting the given factors.
func NewBlendTable(supported FactorSet) *BlendTable {
	t := &BlendTable{}
	for i, f := range blendModeFactors {
		if supported.Contains(f.Src) && supported.Contains(f.Dst) {
			t.factors[i] = f
			t.present[i] = true
		}
	}
	return t
}

// Lookup returns the factor pair for mode and whether the mode is present.
func (t *BlendTable) Lookup(mode BlendMode) (BlendFactors, bool) {
	if mode < 0 || int(mode) >= numBlendModes || !t.present[mode] {
		return BlendFactors{}, false
	}
	return t.factors[mode], true
}

// Modes returns the modes present in the table in ascending order.
func (t *BlendTable) Modes() []BlendMode {
	var out []BlendMode
	for i, ok := range t.present {
		if ok {
			out = append(out, BlendMode(i))
		}
	}
	return out
}

// mustLookup is Lookup for the apply path, where a missing mode is a
// programmer error.
func (t *BlendTable) mustLookup(mode BlendMode) BlendFactors {
	f, ok := t.Lookup(mode)
	if !ok {
		panic(fmt.Sprintf("glstate: blend mode %v not supported by device", mode))
	}
	return f
}
