// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "errors"

// Sentinel errors for the native package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("native: empty font data")

	// ErrUnknownParser is returned when a parser name is not registered.
	ErrUnknownParser = errors.New("native: unknown font parser")

	// ErrInvalidLanguage is returned when a language tag cannot be parsed.
	ErrInvalidLanguage = errors.New("native: invalid language tag")

	// ErrPoolClaimed is returned when a pool already has an owner.
	ErrPoolClaimed = errors.New("native: resource pool already claimed")

	// ErrDeviceBusy is returned when the shared GPU device fails to go idle
	// before a pool release.
	ErrDeviceBusy = errors.New("native: GPU device did not go idle")

	// ErrContextReleased is returned when a released context is used.
	ErrContextReleased = errors.New("native: font context released")
)
