// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"log/slog"

	"github.com/gogpu/fontctx"
)

// slogger returns the logger shared with the fontctx package.
func slogger() *slog.Logger { return fontctx.Logger() }
