// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "github.com/gogpu/fontctx"

func init() {
	for _, name := range []string{"ximage", "gotext"} {
		fontctx.RegisterEngine(name, func() (fontctx.Engine, error) {
			p, err := NewPool(WithParser(name))
			if err != nil {
				return nil, err
			}
			return p, nil
		})
	}
}
