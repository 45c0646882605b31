// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"os"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// PoolOption configures Pool creation.
type PoolOption func(*poolConfig) error

// poolConfig holds configuration for a Pool.
type poolConfig struct {
	data       []byte
	parserName string
	language   language.Tag
	provider   gpucontext.DeviceProvider
}

// defaultPoolConfig returns the default pool configuration.
func defaultPoolConfig() poolConfig {
	return poolConfig{
		data:       goregular.TTF,
		parserName: defaultParserName,
		language:   language.English,
	}
}

// WithFontData sets the TTF or OTF data every context is parsed from.
// The data is copied. The default is Go Regular.
func WithFontData(data []byte) PoolOption {
	return func(c *poolConfig) error {
		if len(data) == 0 {
			return ErrEmptyFontData
		}
		c.data = append([]byte(nil), data...)
		return nil
	}
}

// WithFontFile reads the font data from a file.
func WithFontFile(path string) PoolOption {
	return func(c *poolConfig) error {
		// #nosec G304 -- Font file path is provided by the user
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("native: failed to read font file: %w", err)
		}
		if len(data) == 0 {
			return ErrEmptyFontData
		}
		c.data = data
		return nil
	}
}

// WithParser selects the font parser backend by name.
// The default is "ximage".
func WithParser(name string) PoolOption {
	return func(c *poolConfig) error {
		if _, ok := lookupParser(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParser, name)
		}
		c.parserName = name
		return nil
	}
}

// WithLanguage sets the BCP 47 language tag attached to every context
// (e.g., "en", "ja", "ar"). The default is English.
func WithLanguage(tag string) PoolOption {
	return func(c *poolConfig) error {
		t, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, tag, err)
		}
		c.language = t
		return nil
	}
}

// WithDeviceProvider shares a GPU device with the pool. When the provider's
// device is a *wgpu.Device, the pool waits for it to go idle before it
// releases its contexts.
func WithDeviceProvider(provider gpucontext.DeviceProvider) PoolOption {
	return func(c *poolConfig) error {
		c.provider = provider
		return nil
	}
}
