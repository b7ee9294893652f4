// Package logging defines the structured-logging interface used across the
// project, backed by log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key-value
// pairs, e.g. log.Info(ctx, "listening", "addr", addr).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
