package fontctx

import (
	"fmt"
	"sync"
)

// State is the enabled/disabled state of a Manager.
type State uint8

const (
	// StateDisabled means the manager holds no context.
	StateDisabled State = iota

	// StateEnabled means the manager holds a live context.
	StateEnabled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Manager owns at most one live Context and keeps the engine's resource pool
// release synchronized with its enabled state.
//
// The enabled state is never stored: it is computed from whether the manager
// currently holds a context, so the two cannot drift apart.
//
// Manager is safe for concurrent use, though hosts normally drive it from a
// single update loop.
type Manager struct {
	engine  Engine
	config  managerConfig
	claimer PoolClaimer // non-nil while this manager holds the pool claim

	mu          sync.Mutex
	ctx         Context
	initialized bool
	closed      bool
}

// NewManager composes a Manager around an injected engine.
// The manager starts disabled; call Initialize before first use.
//
// If the engine implements PoolClaimer, the pool is claimed here and a
// failed claim is returned as is. WithSharedPool skips the claim.
func NewManager(engine Engine, opts ...Option) (*Manager, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	config := defaultManagerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	m := &Manager{
		engine: engine,
		config: config,
	}

	if !config.sharedPool {
		if pc, ok := engine.(PoolClaimer); ok {
			if err := pc.Claim(); err != nil {
				return nil, err
			}
			m.claimer = pc
		}
	}

	return m, nil
}

// Initialize allocates the first context and enters the enabled state.
// It may be called once; later calls return ErrAlreadyInitialized.
//
// If allocation fails the manager stays disabled, is still considered
// initialized, and the error wraps ErrAllocationFailed. A later Toggle
// attempts allocation again.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.initialized {
		m.mu.Unlock()
		return ErrAlreadyInitialized
	}
	m.initialized = true
	err := m.enableLocked()
	enabled := m.ctx != nil
	m.mu.Unlock()

	m.notify(enabled)
	return err
}

// IsEnabled reports whether the manager currently holds a context.
// It never calls into the engine.
func (m *Manager) IsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx != nil
}

// State returns StateEnabled if the manager holds a context.
func (m *Manager) State() State {
	if m.IsEnabled() {
		return StateEnabled
	}
	return StateDisabled
}

// Context returns the current context, or (nil, false) when disabled.
// Absence is an expected state: text rendering is only available while
// the manager is enabled.
func (m *Manager) Context() (Context, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx, m.ctx != nil
}

// Toggle performs exactly one transition.
//
// From enabled it drops the context and releases the engine's whole resource
// pool. A release failure is returned wrapped in ErrReleaseFailed and the
// manager is still disabled afterwards.
//
// From disabled it allocates a brand-new context. An allocation failure is
// returned wrapped in ErrAllocationFailed and the manager stays disabled.
func (m *Manager) Toggle() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if !m.initialized {
		m.mu.Unlock()
		return ErrNotInitialized
	}

	var err error
	if m.ctx != nil {
		err = m.disableLocked()
	} else {
		err = m.enableLocked()
	}
	enabled := m.ctx != nil
	m.mu.Unlock()

	m.notify(enabled)
	return err
}

// Close tears the manager down. If it is enabled, the context is dropped and
// the pool released. The pool claim, if any, is given back.
//
// Close is idempotent. After Close the manager is disabled and Initialize
// and Toggle return ErrClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true

	var err error
	if m.ctx != nil {
		err = m.disableLocked()
	}
	if m.claimer != nil {
		m.claimer.Unclaim()
		m.claimer = nil
	}
	m.mu.Unlock()

	Logger().Info("fontctx: manager closed")
	m.notify(false)
	return err
}

// enableLocked allocates a new context. m.mu must be held.
func (m *Manager) enableLocked() error {
	ctx, err := m.engine.AllocateContext()
	if err != nil {
		Logger().Warn("fontctx: context allocation failed", "err", err)
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if ctx == nil {
		Logger().Warn("fontctx: engine returned nil context")
		return fmt.Errorf("%w: engine returned nil context", ErrAllocationFailed)
	}

	m.ctx = ctx
	Logger().Info("fontctx: font rendering enabled", "context", ctx.ID())
	return nil
}

// disableLocked drops the current context and releases the pool.
// m.mu must be held and m.ctx must be non-nil.
func (m *Manager) disableLocked() error {
	id := m.ctx.ID()
	m.ctx = nil

	if err := m.engine.ReleaseAllResources(); err != nil {
		Logger().Warn("fontctx: resource release failed", "context", id, "err", err)
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}

	Logger().Info("fontctx: font rendering disabled", "context", id)
	return nil
}

// notify passes the enabled projection to every observer.
func (m *Manager) notify(enabled bool) {
	for _, fn := range m.config.observers {
		fn(enabled)
	}
}
