// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/fontctx"
	"github.com/gogpu/wgpu"
)

// Compile-time interface checks.
var (
	_ fontctx.Engine      = (*Pool)(nil)
	_ fontctx.PoolClaimer = (*Pool)(nil)
	_ fontctx.Context     = (*FontContext)(nil)
)

// deviceWaiter is implemented by GPU devices that can block until all
// submitted work has completed. gpucontext.Device is an opaque token, so the
// pool type-asserts the provider's device to this interface.
type deviceWaiter interface {
	WaitIdle() error
}

var _ deviceWaiter = (*wgpu.Device)(nil)

// contextIDs hands out context IDs. IDs are unique across all pools in the
// process.
var contextIDs atomic.Uint64

// Pool is a resource pool of font contexts. It implements fontctx.Engine:
// every context it allocates stays outstanding until ReleaseAllResources,
// which closes all of them regardless of who allocated them.
//
// Pool is safe for concurrent use.
type Pool struct {
	config poolConfig
	parser FontParser

	mu          sync.Mutex
	contexts    map[uint64]*FontContext
	allocations uint64
	releases    uint64
	claimed     bool
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool, created on first use with the
// default configuration (Go Regular, "ximage" parser, English).
func Default() *Pool {
	defaultOnce.Do(func() {
		p, err := NewPool()
		if err != nil {
			panic(fmt.Sprintf("native: default pool: %v", err))
		}
		defaultPool = p
	})
	return defaultPool
}

// NewPool creates an isolated pool. Options are applied in order and the
// first failing option is returned.
func NewPool(opts ...PoolOption) (*Pool, error) {
	config := defaultPoolConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	parser, ok := lookupParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	if config.provider != nil {
		slogger().Debug("native: sharing GPU device", "format", config.provider.SurfaceFormat())
	}

	return &Pool{
		config:   config,
		parser:   parser,
		contexts: make(map[uint64]*FontContext),
	}, nil
}

// Allocate parses the pool's font into a new FontContext and records it as
// outstanding. Every call parses afresh; nothing is shared between contexts.
func (p *Pool) Allocate() (*FontContext, error) {
	parsed, err := p.parser.Parse(p.config.data)
	if err != nil {
		return nil, err
	}

	ctx := newFontContext(contextIDs.Add(1), parsed, p.config.language)

	p.mu.Lock()
	p.contexts[ctx.id] = ctx
	p.allocations++
	outstanding := len(p.contexts)
	p.mu.Unlock()

	slogger().Debug("native: context allocated",
		"context", ctx.id,
		"family", ctx.family,
		"parser", p.config.parserName,
		"outstanding", outstanding)
	return ctx, nil
}

// AllocateContext implements fontctx.Engine.
func (p *Pool) AllocateContext() (fontctx.Context, error) {
	ctx, err := p.Allocate()
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// ReleaseAllResources implements fontctx.Engine. It releases every
// outstanding context in the pool. With no outstanding contexts it only
// counts the call.
//
// If a GPU device provider is attached and its device is a *wgpu.Device (or
// anything else with WaitIdle), the pool first waits for the device to go
// idle. A failed wait is returned and the pool is left untouched.
func (p *Pool) ReleaseAllResources() error {
	if err := p.waitDeviceIdle(); err != nil {
		slogger().Warn("native: device wait failed, pool not released", "err", err)
		return err
	}

	p.mu.Lock()
	released := p.contexts
	p.contexts = make(map[uint64]*FontContext)
	p.releases++
	p.mu.Unlock()

	for _, ctx := range released {
		ctx.release()
	}

	slogger().Debug("native: pool released", "contexts", len(released))
	return nil
}

// waitDeviceIdle blocks until the shared GPU device has no queued work.
// Devices that cannot wait are skipped.
func (p *Pool) waitDeviceIdle() error {
	if p.config.provider == nil {
		return nil
	}
	dev, ok := p.config.provider.Device().(deviceWaiter)
	if !ok {
		return nil
	}
	if err := dev.WaitIdle(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceBusy, err)
	}
	return nil
}

// Outstanding returns the number of contexts allocated since the last release.
func (p *Pool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.contexts)
}

// Allocations returns the total number of contexts allocated.
func (p *Pool) Allocations() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocations
}

// Releases returns the total number of ReleaseAllResources calls.
func (p *Pool) Releases() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.releases
}

// Parser returns the name of the pool's parser backend.
func (p *Pool) Parser() string { return p.config.parserName }

// Claim implements fontctx.PoolClaimer.
// Returns ErrPoolClaimed if the pool already has an owner.
func (p *Pool) Claim() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.claimed {
		return ErrPoolClaimed
	}
	p.claimed = true
	return nil
}

// Unclaim implements fontctx.PoolClaimer.
func (p *Pool) Unclaim() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.claimed = false
}

// Claimed reports whether the pool has an owner.
func (p *Pool) Claimed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claimed
}
