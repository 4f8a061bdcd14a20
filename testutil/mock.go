// Package testutil provides test helpers for toolcall (e.g. MockCallable, NewTestHandler).
package testutil

import (
	"context"
	"sync"

	"github.com/skosovsky/toolcall"
)

// MockCallable is a configurable Callable that records every call it receives.
type MockCallable struct {
	CallFn func(ctx context.Context, args toolcall.Args) (string, error)

	mu    sync.Mutex
	calls []toolcall.Args
}

// Call records args and runs CallFn if set, otherwise returns "".
func (m *MockCallable) Call(ctx context.Context, args toolcall.Args) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, args)
	m.mu.Unlock()
	if m.CallFn != nil {
		return m.CallFn(ctx, args)
	}
	return "", nil
}

// Calls returns the typed arguments of every call so far.
func (m *MockCallable) Calls() []toolcall.Args {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]toolcall.Args(nil), m.calls...)
}

// Ensure MockCallable implements Callable.
var _ toolcall.Callable = (*MockCallable)(nil)
