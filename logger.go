package uipaint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled
// reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can race with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for uipaint and its sub-packages.
// By default no output is produced. Pass nil to restore the silent
// default.
//
// Levels used:
//   - [slog.LevelDebug]: per-frame diagnostics (draw call counts,
//     scissor rejections, pipeline cache hits)
//   - [slog.LevelWarn]: recoverable issues (texture update clipped to
//     bounds, empty mesh skipped)
//   - [slog.LevelError]: failures surfaced to the caller
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger for use by sub-packages.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
