// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("native: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont using sfnt.Font.
type ximageFont struct {
	font *opentype.Font
	buf  sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageFont) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// Advance implements ParsedFont.Advance. Pairs are kerned when the font
// has a kern table; lang is unused.
func (f *ximageFont) Advance(s string, ppem float64, _ string) float64 {
	size := fixed.Int26_6(ppem * 64)

	var total fixed.Int26_6
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range s {
		idx, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			if k, err := f.font.Kern(&f.buf, prev, idx, size, font.HintingNone); err == nil {
				total += k
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				slogger().Debug("native: kern lookup failed", "err", err)
			}
		}
		adv, err := f.font.GlyphAdvance(&f.buf, idx, size, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
		prev, hasPrev = idx, true
	}
	return fixedToFloat(total)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
