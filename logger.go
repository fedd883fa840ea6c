package paint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; never nil after init.
var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(newNopLogger()) }

// SetLogger routes engine events to l. Until it is called the engine is
// silent. Passing nil silences it again. SetLogger may be called while
// engines on other goroutines are logging.
//
// Events by level:
//   - [slog.LevelDebug]: stroke begin/end/cancel, flood fill pixel counts,
//     history pushes with the command ID and snapshot size
//   - [slog.LevelInfo]: clear, clear to black, imports
//   - [slog.LevelWarn]: abandoned strokes, superseded stencil loads, dropped
//     undo steps
//
// A level variable lets an application turn stroke tracing on and off
// without swapping handlers:
//
//	var level slog.LevelVar
//	level.Set(slog.LevelWarn)
//	paint.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: &level})))
//	...
//	level.Set(slog.LevelDebug) // trace the next strokes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a disabled one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
