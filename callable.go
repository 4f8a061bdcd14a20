package toolcall

import (
	"context"
	"log/slog"
	"runtime/debug"
)

// Callable is the executable part of a Tool. Func and AsyncFunc are the two
// variants the Executor knows how to supervise; any other implementation is
// treated like a synchronous Func.
type Callable interface {
	Call(ctx context.Context, args Args) (string, error)
}

// Func is a synchronous tool implementation. It runs to completion on the
// calling goroutine unless the handler is configured WithOffload.
type Func func(ctx context.Context, args Args) (string, error)

// Call runs f directly. Panic recovery is the Executor's job.
func (f Func) Call(ctx context.Context, args Args) (string, error) {
	return f(ctx, args)
}

// Result is the deferred outcome of an AsyncFunc.
type Result struct {
	Value string
	Err   error
}

// AsyncFunc is an asynchronous tool implementation. It must return promptly with
// a channel that later delivers exactly one Result. Use Go to build one from a Func
// with panics routed back through the channel.
type AsyncFunc func(ctx context.Context, args Args) <-chan Result

// Call starts f and waits for its result or for ctx to be done.
func (f AsyncFunc) Call(ctx context.Context, args Args) (string, error) {
	return await(ctx, f(ctx, args))
}

// Go runs fn on its own goroutine. A panic inside fn is delivered as an
// ExecutionError on the returned channel instead of crashing the process.
func Go(fn Func) AsyncFunc {
	return func(ctx context.Context, args Args) <-chan Result {
		ch := make(chan Result, 1)
		go func() {
			v, err := guard(nil, "", func() (string, error) { return fn(ctx, args) })
			ch <- Result{Value: v, Err: err}
		}()
		return ch
	}
}

func await(ctx context.Context, ch <-chan Result) (string, error) {
	if ch == nil {
		return "", &ExecutionError{Reason: "async tool returned no result channel"}
	}
	select {
	case r, ok := <-ch:
		if !ok {
			return "", &ExecutionError{Reason: "async tool finished without a result"}
		}
		if r.Err != nil {
			return "", classify(r.Err)
		}
		return r.Value, nil
	case <-ctx.Done():
		return "", &ExecutionError{Reason: "tool execution interrupted: " + ctx.Err().Error(), Err: ctx.Err()}
	}
}

// guard runs fn and converts a panic into ExecutionError("panic in tool").
// logger may be nil (no report); tool names the panicking tool in the report.
func guard(logger *slog.Logger, tool string, fn func() (string, error)) (res string, err error) {
	defer func() {
		if p := recover(); p != nil {
			if logger != nil {
				logger.Error("tool panicked", "tool", tool, "panic", p, "stack", string(debug.Stack()))
			}
			res = ""
			err = &ExecutionError{Reason: "panic in tool", Err: &panicError{p: p}}
		}
	}()
	res, err = fn()
	if err != nil {
		return "", classify(err)
	}
	return res, nil
}

var (
	_ Callable = Func(nil)
	_ Callable = AsyncFunc(nil)
)
