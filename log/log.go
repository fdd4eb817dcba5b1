// Package log provides the internal trace logging hook for sshconf.
package log

import (
	"context"
	"log/slog"
	"sync"
)

// Null is a logger that discards everything.
var Null = slog.New(NopHandler)

var trace = sync.OnceValue(func() TraceLogger {
	return Null
})

// SetTraceLogger installs the logger that receives sshconf's internal trace
// events. Until one is installed, tracing is a no-op.
func SetTraceLogger(l TraceLogger) {
	trace = sync.OnceValue(func() TraceLogger { return l })
}

// Trace logs an internal trace event. Keys and values are key-value pairs.
func Trace(ctx context.Context, msg string, keysAndValues ...any) {
	trace().Log(ctx, slog.LevelDebug, msg, keysAndValues...)
}

// TraceLogger receives trace events. It is implemented by slog.Logger.
type TraceLogger interface {
	Log(ctx context.Context, level slog.Level, msg string, keysAndValues ...any)
}
