// Package fontctx manages the lifecycle of a single vector-font rendering
// context backed by a native rasterization engine.
//
// # Overview
//
// A host application treats font rendering as a feature that can be switched
// on and off at runtime. A [Manager] owns at most one live [Context] and keeps
// the enabled state equal to whether that context exists. Turning the feature
// off drops the context and asks the engine to release its whole resource
// pool; turning it on again allocates a brand-new context.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontctx"
//	    "github.com/gogpu/fontctx/native"
//	)
//
//	m, err := fontctx.NewManager(native.Default())
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	if err := m.Initialize(); err != nil {
//	    return err
//	}
//
//	// Later, from a UI toggle:
//	if err := m.Toggle(); err != nil {
//	    return err
//	}
//
//	if ctx, ok := m.Context(); ok {
//	    // render text with ctx
//	}
//
// # Engines
//
// The engine is injected at construction. Any type that implements [Engine]
// works; the native sub-package provides one backed by pluggable font parsers
// and registers it under the names "ximage" and "gotext":
//
//	import _ "github.com/gogpu/fontctx/native" // registers native engines
//
//	e, err := fontctx.NewEngine("gotext")
//
// # Resource Pool
//
// [Engine.ReleaseAllResources] frees every context the engine handed out, not
// only the ones a particular manager created. Engines that implement
// [PoolClaimer] let a manager claim the pool so that a second manager on the
// same pool fails fast instead of silently destroying the first one's
// resources. Use [WithSharedPool] to opt out.
package fontctx
