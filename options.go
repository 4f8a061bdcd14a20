package toolcall

import (
	"log/slog"
	"time"
)

// toolOptions hold optional per-tool settings.
type toolOptions struct {
	timeout time.Duration
}

// ToolOption configures a tool (e.g. WithTimeout).
type ToolOption func(*toolOptions)

// WithTimeout sets a per-tool deadline. It overrides the handler default (WithDefaultTimeout).
func WithTimeout(d time.Duration) ToolOption {
	return func(o *toolOptions) {
		o.timeout = d
	}
}

// Option configures a Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	logger      *slog.Logger
	timeout     time.Duration
	offload     bool
	middlewares []Middleware
}

// WithLogger sets the logger used for panic reports. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *handlerOptions) {
		o.logger = logger
	}
}

// WithDefaultTimeout sets the execution deadline for tools without their own WithTimeout.
// Zero (the default) means no deadline.
func WithDefaultTimeout(d time.Duration) Option {
	return func(o *handlerOptions) {
		o.timeout = d
	}
}

// WithOffload runs synchronous tools on their own goroutine so a context deadline
// releases the caller even if the tool ignores ctx. The tool goroutine keeps running
// until it returns.
func WithOffload(enable bool) Option {
	return func(o *handlerOptions) {
		o.offload = enable
	}
}

// WithMiddleware sets the execution middleware chain. The first middleware is outermost.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(o *handlerOptions) {
		o.middlewares = middlewares
	}
}
