package toolcall

import (
	"context"
	"log/slog"
	"time"
)

// ExecFunc executes a resolved tool with ordered string-encoded arguments.
// Executor.Execute is the innermost ExecFunc of every handler.
type ExecFunc func(ctx context.Context, t *Tool, args []string) (string, error)

// Middleware wraps an ExecFunc with cross-cutting behavior (logging, metrics, deadlines).
type Middleware func(ExecFunc) ExecFunc

// WithLogging returns a middleware that logs start, end, duration, and errors with their kind.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, t *Tool, args []string) (string, error) {
			logger.InfoContext(ctx, "tool start", "tool", t.Name(), "args", len(args))
			start := time.Now()
			res, err := next(ctx, t, args)
			dur := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "tool error", "tool", t.Name(), "duration", dur, "kind", KindOf(err), "error", err)
				return "", err
			}
			logger.InfoContext(ctx, "tool end", "tool", t.Name(), "duration", dur)
			return res, nil
		}
	}
}

// WithTimeoutMiddleware returns a middleware that bounds every execution by d. When the
// tool or handler sets its own deadline as well, the earlier deadline wins.
func WithTimeoutMiddleware(d time.Duration) Middleware {
	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, t *Tool, args []string) (string, error) {
			if d <= 0 {
				return next(ctx, t, args)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, t, args)
		}
	}
}

func chain(inner ExecFunc, middlewares []Middleware) ExecFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		inner = middlewares[i](inner)
	}
	return inner
}
