package fontctx

// Context is an opaque handle into the engine resources needed to render
// vector text. A Manager owns its Context exclusively while it holds one.
type Context interface {
	// ID returns an identifier that is unique among the contexts an engine
	// has allocated. It exists for diagnostics; managers never branch on it.
	ID() uint64
}

// Engine is the native rasterization engine as seen by a Manager.
//
// Preconditions a Manager relies on:
//   - AllocateContext returns a fresh, non-nil Context on success. A nil
//     Context with a nil error is a contract violation and is reported as
//     ErrAllocationFailed.
//   - ReleaseAllResources frees every Context the engine has handed out,
//     including ones owned by other managers. A Manager only calls it while
//     it holds a Context.
//
// Neither operation is retried on failure.
type Engine interface {
	// AllocateContext creates a new Context.
	AllocateContext() (Context, error)

	// ReleaseAllResources frees all outstanding contexts in the engine's
	// process-wide pool.
	ReleaseAllResources() error
}

// PoolClaimer is an optional interface for engines whose resource pool
// must have a single owner. When the engine implements it, NewManager claims
// the pool and Close gives it back, unless WithSharedPool is set.
type PoolClaimer interface {
	// Claim marks the pool as owned. It fails if another owner holds it.
	Claim() error

	// Unclaim gives up ownership of the pool.
	Unclaim()
}
