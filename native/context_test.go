// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"testing"
)

func TestFontContextMetadata(t *testing.T) {
	p := newTestPool(t, WithLanguage("de-CH"))
	ctx, err := p.Allocate()
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	if ctx.Family() == "" {
		t.Error("Family() = \"\"")
	}
	if got := ctx.Language().String(); got != "de-CH" {
		t.Errorf("Language() = %q, want %q", got, "de-CH")
	}
	if ctx.Released() {
		t.Error("Released() = true for a fresh context")
	}
}

func TestFontContextMeasure(t *testing.T) {
	for _, parser := range []string{"ximage", "gotext"} {
		t.Run(parser, func(t *testing.T) {
			p := newTestPool(t, WithParser(parser))
			ctx, err := p.Allocate()
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}

			if !ctx.HasGlyph('g') {
				t.Error("HasGlyph('g') = false")
			}
			if got := ctx.Advance('g', 16); got <= 0 {
				t.Errorf("Advance('g') = %v, want > 0", got)
			}
			if got := ctx.Measure("Hello, World!", 16); got <= ctx.Advance('H', 16) {
				t.Errorf("Measure() = %v, want wider than a single glyph", got)
			}
			if got := ctx.Measure("Hello", 0); got != 0 {
				t.Errorf("Measure at size 0 = %v, want 0", got)
			}
			if got := ctx.Measure("Hello", -4); got != 0 {
				t.Errorf("Measure at negative size = %v, want 0", got)
			}
		})
	}
}

func TestFontContextAfterRelease(t *testing.T) {
	p := newTestPool(t)
	ctx, err := p.Allocate()
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := p.ReleaseAllResources(); err != nil {
		t.Fatalf("ReleaseAllResources() error = %v", err)
	}

	if !ctx.Released() {
		t.Fatal("Released() = false after pool release")
	}
	if ctx.HasGlyph('A') {
		t.Error("HasGlyph() = true after release")
	}
	if got := ctx.Measure("A", 16); got != 0 {
		t.Errorf("Measure() = %v after release, want 0", got)
	}
	if _, err := ctx.MeasureErr("A", 16); !errors.Is(err, ErrContextReleased) {
		t.Errorf("MeasureErr() error = %v, want ErrContextReleased", err)
	}
	if ctx.Family() == "" || ctx.ID() == 0 {
		t.Error("metadata cleared by release")
	}
}
