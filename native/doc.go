// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native provides the font engine behind fontctx: a process-wide
// pool of font contexts parsed from TrueType/OpenType data.
//
// # Pool
//
// A [Pool] implements [fontctx.Engine]. AllocateContext parses the configured
// font into a new [FontContext] and records it as outstanding;
// ReleaseAllResources closes every outstanding context at once, whoever
// allocated it. [Default] returns the process-wide pool; [NewPool] builds an
// isolated one.
//
//	pool, err := native.NewPool(
//	    native.WithFontFile("/usr/share/fonts/TTF/DejaVuSans.ttf"),
//	    native.WithParser("gotext"),
//	    native.WithLanguage("de"),
//	)
//
// # Parsers
//
// Two parser backends are built in:
//   - "ximage" (default): golang.org/x/image/font/opentype
//   - "gotext": github.com/go-text/typesetting with HarfBuzz shaping
//
// Custom backends can be added with [RegisterParser].
//
// # GPU Device Sharing
//
// When a pool is given a gpucontext.DeviceProvider via [WithDeviceProvider]
// whose device is a *wgpu.Device, ReleaseAllResources calls WaitIdle before
// closing contexts, so no queued GPU work still refers to them. If the wait
// fails, the pool is not released and the error wraps [ErrDeviceBusy].
//
// # Registration
//
// Importing this package registers the engines "ximage" and "gotext" with
// fontctx. Each registered engine is a fresh pool using that parser and the
// default Go Regular font.
package native
