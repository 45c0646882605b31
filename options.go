package fontctx

// Option configures a Manager.
type Option func(*managerConfig)

// managerConfig holds configuration for a Manager.
type managerConfig struct {
	observers  []func(enabled bool)
	sharedPool bool
}

// defaultManagerConfig returns the default manager configuration.
func defaultManagerConfig() managerConfig {
	return managerConfig{}
}

// WithObserver registers a function that receives the enabled projection
// after Initialize, after every Toggle (successful or not) and after Close.
// Hosts use it to mirror the state into a UI field.
//
// Observers are called synchronously, outside the manager's lock, so they
// may query the manager. Multiple observers are called in registration order.
func WithObserver(fn func(enabled bool)) Option {
	return func(c *managerConfig) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithSharedPool disables pool claiming. The manager still releases the
// whole pool when it is disabled, which also destroys contexts held by
// other users of the same engine.
func WithSharedPool() Option {
	return func(c *managerConfig) {
		c.sharedPool = true
	}
}
