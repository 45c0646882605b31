// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"sync"

	"golang.org/x/text/language"
)

// FontContext is the native resource behind a fontctx.Context: a parsed font
// plus the language it is shaped for. It belongs to the Pool that allocated
// it and becomes unusable once the pool releases its resources.
//
// FontContext is safe for concurrent use.
type FontContext struct {
	id     uint64
	family string
	upem   int
	lang   language.Tag

	mu       sync.Mutex
	parsed   ParsedFont
	released bool
}

// newFontContext wraps a parsed font.
func newFontContext(id uint64, parsed ParsedFont, lang language.Tag) *FontContext {
	family := parsed.Name()
	if family == "" {
		family = "Unknown Font"
	}
	return &FontContext{
		id:     id,
		family: family,
		upem:   parsed.UnitsPerEm(),
		lang:   lang,
		parsed: parsed,
	}
}

// ID implements fontctx.Context.
func (c *FontContext) ID() uint64 { return c.id }

// Family returns the font family name.
func (c *FontContext) Family() string { return c.family }

// UnitsPerEm returns the units per em of the font.
func (c *FontContext) UnitsPerEm() int { return c.upem }

// Language returns the language tag the context shapes text for.
func (c *FontContext) Language() language.Tag { return c.lang }

// Released reports whether the owning pool has released this context.
func (c *FontContext) Released() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

// HasGlyph reports whether the font maps r to a glyph.
// Returns false after release.
func (c *FontContext) HasGlyph(r rune) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return false
	}
	return c.parsed.HasGlyph(r)
}

// Advance returns the horizontal advance of r at size pixels per em.
// Returns 0 after release.
func (c *FontContext) Advance(r rune, size float64) float64 {
	w, _ := c.MeasureErr(string(r), size)
	return w
}

// Measure returns the horizontal advance of s at size pixels per em.
// Returns 0 after release.
func (c *FontContext) Measure(s string, size float64) float64 {
	w, _ := c.MeasureErr(s, size)
	return w
}

// MeasureErr is like Measure but reports ErrContextReleased after release.
func (c *FontContext) MeasureErr(s string, size float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return 0, ErrContextReleased
	}
	if size <= 0 {
		return 0, nil
	}
	return c.parsed.Advance(s, size, c.lang.String()), nil
}

// release drops the parsed font. Called by the owning pool.
func (c *FontContext) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parsed = nil
	c.released = true
}
