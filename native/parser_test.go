// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func parseGoRegular(t *testing.T, name string) ParsedFont {
	t.Helper()
	p, ok := lookupParser(name)
	if !ok {
		t.Fatalf("parser %q not registered", name)
	}
	f, err := p.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("%s Parse() error = %v", name, err)
	}
	return f
}

func TestParsers(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			f := parseGoRegular(t, name)

			if f.UnitsPerEm() <= 0 {
				t.Errorf("UnitsPerEm() = %d, want > 0", f.UnitsPerEm())
			}
			if !f.HasGlyph('A') {
				t.Error("HasGlyph('A') = false, want true")
			}
			if f.HasGlyph('\U0001F600') {
				t.Error("HasGlyph(U+1F600) = true, Go Regular has no emoji")
			}

			one := f.Advance("A", 16, "en")
			if one <= 0 {
				t.Fatalf("Advance(%q) = %v, want > 0", "A", one)
			}
			if got := f.Advance("AAAA", 16, "en"); got <= one {
				t.Errorf("Advance(%q) = %v, want > %v", "AAAA", got, one)
			}
			if got := f.Advance("A", 32, "en"); got <= one {
				t.Errorf("Advance at 32ppem = %v, want > %v at 16ppem", got, one)
			}
			if got := f.Advance("", 16, "en"); got != 0 {
				t.Errorf("Advance(\"\") = %v, want 0", got)
			}
		})
	}
}

func TestParsersAgree(t *testing.T) {
	x := parseGoRegular(t, "ximage")
	g := parseGoRegular(t, "gotext")

	if x.UnitsPerEm() != g.UnitsPerEm() {
		t.Errorf("UnitsPerEm: ximage = %d, gotext = %d", x.UnitsPerEm(), g.UnitsPerEm())
	}

	// A single glyph has no kerning or ligatures, so both backends must
	// report the same advance up to fixed-point rounding.
	xa := x.Advance("M", 24, "en")
	ga := g.Advance("M", 24, "en")
	if diff := xa - ga; diff > 1 || diff < -1 {
		t.Errorf("Advance(%q): ximage = %v, gotext = %v", "M", xa, ga)
	}
}

func TestXimageFamilyName(t *testing.T) {
	f := parseGoRegular(t, "ximage")
	if f.Name() == "" {
		t.Error("Name() = \"\", want family name")
	}
}

// stubParser implements FontParser for registry tests.
type stubParser struct{ font ParsedFont }

func (s stubParser) Parse([]byte) (ParsedFont, error) { return s.font, nil }

// stubFont implements ParsedFont.
type stubFont struct{}

func (stubFont) Name() string       { return "" }
func (stubFont) UnitsPerEm() int    { return 1000 }
func (stubFont) HasGlyph(rune) bool { return true }

func (stubFont) Advance(s string, ppem float64, _ string) float64 {
	return float64(len(s)) * ppem / 2
}

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{font: stubFont{}})
	t.Cleanup(func() {
		parserMu.Lock()
		delete(parserRegistry, "stub")
		parserMu.Unlock()
	})

	p := newTestPool(t, WithParser("stub"), WithFontData([]byte{1}))
	ctx, err := p.Allocate()
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if ctx.Family() != "Unknown Font" {
		t.Errorf("Family() = %q, want %q", ctx.Family(), "Unknown Font")
	}
	if got := ctx.Measure("abcd", 10); got != 20 {
		t.Errorf("Measure() = %v, want 20", got)
	}
}
