package fontctx

import "errors"

// Sentinel errors for the fontctx package.
var (
	// ErrNilEngine is returned when a Manager is composed without an engine.
	ErrNilEngine = errors.New("fontctx: engine must not be nil")

	// ErrAllocationFailed is returned when the engine fails to allocate a
	// context or returns a nil context without an error.
	ErrAllocationFailed = errors.New("fontctx: context allocation failed")

	// ErrReleaseFailed is returned when the engine fails to release its
	// resource pool.
	ErrReleaseFailed = errors.New("fontctx: resource release failed")

	// ErrNotInitialized is returned when Toggle is called before Initialize.
	ErrNotInitialized = errors.New("fontctx: manager not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("fontctx: manager already initialized")

	// ErrClosed is returned when operations are attempted on a closed manager.
	ErrClosed = errors.New("fontctx: manager is closed")

	// ErrEngineNotAvailable is returned when a requested engine is not registered.
	ErrEngineNotAvailable = errors.New("fontctx: engine not available")
)
