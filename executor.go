package toolcall

import (
	"context"
	"log/slog"
	"time"
)

// Executor runs a tool's callable with string-encoded positional arguments. It hides
// whether the tool is synchronous (Func) or asynchronous (AsyncFunc): both shapes
// are checked, parsed and supervised the same way and return the same error kinds.
type Executor struct {
	logger  *slog.Logger
	timeout time.Duration
	offload bool
}

// NewExecutor creates an Executor. Only WithLogger, WithDefaultTimeout and WithOffload apply.
func NewExecutor(opts ...Option) *Executor {
	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return newExecutor(o)
}

func newExecutor(o handlerOptions) *Executor {
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger, timeout: o.timeout, offload: o.offload}
}

// Execute checks the argument count, parses each supplied argument into its declared
// type (omitted optional parameters get their default or nil) and invokes the tool.
// A panic inside the tool is returned as ExecutionError("panic in tool").
func (e *Executor) Execute(ctx context.Context, t *Tool, raw []string) (string, error) {
	args, err := t.bind(raw)
	if err != nil {
		return "", err
	}

	timeout := e.timeout
	if t.Timeout() > 0 {
		timeout = t.Timeout()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch fn := t.callable.(type) {
	case AsyncFunc:
		var ch <-chan Result
		if _, err := guard(e.logger, t.name, func() (string, error) {
			ch = fn(ctx, args)
			return "", nil
		}); err != nil {
			return "", err
		}
		return await(ctx, ch)
	default:
		call := func() (string, error) { return fn.Call(ctx, args) }
		if !e.offload {
			return guard(e.logger, t.name, call)
		}
		ch := make(chan Result, 1)
		go func() {
			v, err := guard(e.logger, t.name, call)
			ch <- Result{Value: v, Err: err}
		}()
		return await(ctx, ch)
	}
}
