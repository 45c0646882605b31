package fontctx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels, so
// the manager's lifecycle messages are never formatted unless a host opts in.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by Manager and the native engine.
// A host may swap it while a Manager is toggling on another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes fontctx diagnostics to l. Until it is called, the manager
// and the native engine log nothing. Passing nil silences them again.
//
// What is logged, by level:
//   - [slog.LevelDebug]: native pool activity. A context was allocated (with
//     its id, family and parser), the pool was released (with the number of
//     contexts closed), a GPU device provider was attached.
//   - [slog.LevelInfo]: Manager transitions. Font rendering enabled (with the
//     new context id), disabled (with the dropped id), manager closed.
//   - [slog.LevelWarn]: engine failures surfaced by the Manager. Allocation
//     failed, the engine returned a nil context, or ReleaseAllResources failed.
//     The native pool also warns when the GPU device does not go idle and the
//     pool is left unreleased.
//
// To follow every transition of a command-line host:
//
//	fontctx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
// The native package logs through it, so one SetLogger call covers both.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
