// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library behind a pool.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a parsed font owned by a single FontContext.
// Implementations need not be safe for concurrent use; FontContext
// serializes access.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Advance returns the horizontal advance of s at the given size in
	// pixels per em. lang is a BCP 47 tag that backends may use for shaping.
	Advance(s string, ppem float64, lang string) float64
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": ximageParser{},
		"gotext": gotextParser{},
	}
)

// RegisterParser registers a custom font parser.
// A parser registered under an existing name replaces it.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// lookupParser returns the parser registered under name.
func lookupParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
