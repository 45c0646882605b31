// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements FontParser using go-text/typesetting.
// Advances come from HarfBuzz shaping, so ligatures and kerning apply.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("native: failed to parse font: %w", err)
	}
	return &gotextFont{face: face}, nil
}

// gotextFont implements ParsedFont using a go-text font.Face.
// font.Face and HarfbuzzShaper are not safe for concurrent use.
type gotextFont struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// Name implements ParsedFont.Name.
// go-text does not expose the name table through font.Face.
func (f *gotextFont) Name() string { return "" }

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextFont) HasGlyph(r rune) bool {
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// Advance implements ParsedFont.Advance.
func (f *gotextFont) Advance(s string, ppem float64, lang string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.Int26_6(ppem * 64),
		Script:    detectScript(runes),
		Language:  gtlanguage.NewLanguage(lang),
	}
	out := f.shaper.Shape(input)

	var total fixed.Int26_6
	for _, g := range out.Glyphs {
		total += g.Advance
	}
	return fixedToFloat(total)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) gtlanguage.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return gtlanguage.LookupScript(r)
	}
	return gtlanguage.Latin
}
