package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/skosovsky/toolcall"
)

// NewTestHandler returns a Handler over tools with a discarding logger,
// failing the test if the registry does not build.
func NewTestHandler(t testing.TB, tools []*toolcall.Tool, opts ...toolcall.Option) *toolcall.Handler {
	t.Helper()
	factories := make([]toolcall.Factory, len(tools))
	for i, tool := range tools {
		factories[i] = toolcall.Static(tool)
	}
	opts = append([]toolcall.Option{toolcall.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	h, err := toolcall.NewHandler(toolcall.NewRegistry(factories...), opts...)
	if err != nil {
		t.Fatalf("testutil: build handler: %v", err)
	}
	return h
}

// MustTool builds a tool or fails the test.
func MustTool(t testing.TB, name, description string, params []toolcall.Param, fn toolcall.Callable) *toolcall.Tool {
	t.Helper()
	tool, err := toolcall.NewTool(name, description, params, fn)
	if err != nil {
		t.Fatalf("testutil: build tool %q: %v", name, err)
	}
	return tool
}
