package toolcallprom

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/toolcall"
	tctest "github.com/skosovsky/toolcall/testutil"
)

func TestMiddleware_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	echo := tctest.MustTool(t, "echo", "", []toolcall.Param{{Name: "s", Type: toolcall.String}},
		toolcall.Func(func(_ context.Context, a toolcall.Args) (string, error) { return a.String(0), nil }))
	boom := tctest.MustTool(t, "boom", "", nil,
		toolcall.Func(func(context.Context, toolcall.Args) (string, error) { panic("x") }))
	h := tctest.NewTestHandler(t, []*toolcall.Tool{echo, boom}, toolcall.WithMiddleware(m.Middleware()))

	ctx := context.Background()
	_, err = h.CallWithArgs(ctx, "echo", []string{"a"})
	require.NoError(t, err)
	_, err = h.CallWithArgs(ctx, "echo", []string{"a"})
	require.NoError(t, err)
	_, err = h.CallWithArgs(ctx, "echo", nil)
	require.Error(t, err)
	_, err = h.CallWithArgs(ctx, "boom", nil)
	require.Error(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(m.calls.WithLabelValues("echo", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.calls.WithLabelValues("echo", "bad_args")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.calls.WithLabelValues("boom", "execution")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}
