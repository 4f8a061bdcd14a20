package toolcall

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, e *Executor, tool *Tool, raw ...string) (string, error) {
	t.Helper()
	return e.Execute(context.Background(), tool, raw)
}

func TestExecutor_Sync_PassesTypedArgs(t *testing.T) {
	var got Args
	tool := mustTool(t, "typed", []Param{
		reqParam("i", Integer),
		reqParam("f", Number),
		reqParam("b", Boolean),
		reqParam("s", String),
		optParam("o", String, `"dflt"`),
		optParam("n", Integer, ""),
	}, Func(func(_ context.Context, a Args) (string, error) {
		got = a
		return "ok", nil
	}))
	res, err := execute(t, NewExecutor(WithLogger(discard)), tool, "-7", "1e3", "false", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, Args{int64(-7), 1000.0, false, "hello world", "dflt", nil}, got)
	assert.False(t, got.Has(5))
}

func TestExecutor_Sync_PanicIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tool := mustTool(t, "boom", nil, Func(func(context.Context, Args) (string, error) {
		panic("kaboom")
	}))
	_, err := execute(t, NewExecutor(WithLogger(logger)), tool)
	var ex *ExecutionError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, "panic in tool", ex.Reason)
	assert.Contains(t, buf.String(), "tool panicked")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestExecutor_Async_Panics(t *testing.T) {
	e := NewExecutor(WithLogger(discard))

	inBody := mustTool(t, "async_boom", nil, Go(func(context.Context, Args) (string, error) {
		panic("later")
	}))
	_, err := execute(t, e, inBody)
	var ex *ExecutionError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, "panic in tool", ex.Reason)

	atStart := mustTool(t, "start_boom", nil, AsyncFunc(func(context.Context, Args) <-chan Result {
		panic("now")
	}))
	_, err = execute(t, e, atStart)
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, "panic in tool", ex.Reason)
}

func TestExecutor_Async_BrokenChannels(t *testing.T) {
	e := NewExecutor(WithLogger(discard))

	nilCh := mustTool(t, "nil_ch", nil, AsyncFunc(func(context.Context, Args) <-chan Result { return nil }))
	_, err := execute(t, e, nilCh)
	assert.True(t, IsExecution(err))

	closed := mustTool(t, "closed_ch", nil, AsyncFunc(func(context.Context, Args) <-chan Result {
		ch := make(chan Result)
		close(ch)
		return ch
	}))
	_, err = execute(t, e, closed)
	assert.True(t, IsExecution(err))
	assert.Contains(t, err.Error(), "without a result")
}

func TestExecutor_Async_Error(t *testing.T) {
	tool := mustTool(t, "async_err", nil, Go(func(context.Context, Args) (string, error) {
		return "", errors.New("backend down")
	}))
	_, err := execute(t, NewExecutor(), tool)
	var ex *ExecutionError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, "backend down", ex.Reason)
}

func TestExecutor_Async_ContextCancel(t *testing.T) {
	tool := mustTool(t, "never", nil, AsyncFunc(func(context.Context, Args) <-chan Result {
		return make(chan Result)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewExecutor().Execute(ctx, tool, nil)
	assert.True(t, IsExecution(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_ToolTimeoutOverridesDefault(t *testing.T) {
	tool := mustTool(t, "slow", nil, Func(func(ctx context.Context, _ Args) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), WithTimeout(10*time.Millisecond))
	e := NewExecutor(WithDefaultTimeout(time.Hour))

	start := time.Now()
	_, err := execute(t, e, tool)
	assert.Less(t, time.Since(start), time.Minute)
	assert.True(t, IsExecution(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExecutor_Offload_ReleasesCallerOnDeadline(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	tool := mustTool(t, "stubborn", nil, Func(func(context.Context, Args) (string, error) {
		defer close(done)
		<-release // ignores ctx
		return "late", nil
	}))
	e := NewExecutor(WithLogger(discard), WithOffload(true), WithDefaultTimeout(10*time.Millisecond))

	_, err := execute(t, e, tool)
	assert.True(t, IsExecution(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-done
}

func TestExecutor_Offload_Success(t *testing.T) {
	tool := mustTool(t, "quick", []Param{reqParam("s", String)}, Func(func(_ context.Context, a Args) (string, error) {
		return a.String(0) + "!", nil
	}))
	res, err := execute(t, NewExecutor(WithOffload(true)), tool, "hey")
	require.NoError(t, err)
	assert.Equal(t, "hey!", res)
}

type upperCallable struct{}

func (upperCallable) Call(_ context.Context, a Args) (string, error) {
	return "custom:" + a.String(0), nil
}

func TestExecutor_CustomCallable(t *testing.T) {
	tool := mustTool(t, "custom", []Param{reqParam("s", String)}, upperCallable{})
	res, err := execute(t, NewExecutor(), tool, "x")
	require.NoError(t, err)
	assert.Equal(t, "custom:x", res)
}
