package main

import (
	"errors"
	"testing"

	"github.com/gogpu/fontctx"
	"golang.org/x/text/language"
)

func TestOpenPoolFromRegistry(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			pool, err := openPool(name, "", "en")
			if err != nil {
				t.Fatalf("openPool(%q) error = %v", name, err)
			}
			if got := pool.Parser(); got != name {
				t.Errorf("Parser() = %q, want %q", got, name)
			}
		})
	}
}

func TestOpenPoolUnknownEngine(t *testing.T) {
	_, err := openPool("freetype", "", "en")
	if !errors.Is(err, fontctx.ErrEngineNotAvailable) {
		t.Errorf("openPool() error = %v, want ErrEngineNotAvailable", err)
	}
}

func TestOpenPoolCustomLanguage(t *testing.T) {
	pool, err := openPool("gotext", "", "ja")
	if err != nil {
		t.Fatalf("openPool() error = %v", err)
	}
	ctx, err := pool.Allocate()
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if ctx.Language() != language.Japanese {
		t.Errorf("Language() = %v, want ja", ctx.Language())
	}
	if pool.Parser() != "gotext" {
		t.Errorf("Parser() = %q, want gotext", pool.Parser())
	}
}
