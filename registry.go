package toolcall

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory produces one Tool descriptor when the registry is built.
type Factory func() (*Tool, error)

// Static returns a Factory for an already constructed tool.
func Static(t *Tool) Factory {
	return func() (*Tool, error) { return t, nil }
}

// Registry is a read-only-after-build set of tools indexed by unique name.
// Build runs the factories exactly once, even under concurrent callers; after
// that all reads are lock-free and never mutate.
type Registry struct {
	factories []Factory

	once   sync.Once
	tools  map[string]*Tool
	sorted []*Tool
	err    error
}

// NewRegistry returns an unbuilt registry. Call Build at startup (NewHandler does)
// to surface descriptor errors before serving calls.
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{factories: slices.Clone(factories)}
}

// Build runs all factories once and indexes the tools. A factory error, a nil tool
// or a duplicate name fails the whole build; the registry then stays empty and
// every Build call returns the same error.
func (r *Registry) Build() error {
	r.once.Do(r.build)
	return r.err
}

func (r *Registry) build() {
	tools := make(map[string]*Tool, len(r.factories))
	for i, factory := range r.factories {
		if factory == nil {
			r.err = fmt.Errorf("registry: factory %d is nil", i)
			return
		}
		t, err := factory()
		if err != nil {
			r.err = fmt.Errorf("registry: factory %d: %w", i, err)
			return
		}
		if t == nil {
			r.err = fmt.Errorf("registry: factory %d returned nil tool", i)
			return
		}
		if _, dup := tools[t.Name()]; dup {
			r.err = fmt.Errorf("registry: duplicate tool name %q", t.Name())
			return
		}
		tools[t.Name()] = t
	}
	sorted := make([]*Tool, 0, len(tools))
	for _, t := range tools {
		sorted = append(sorted, t)
	}
	slices.SortFunc(sorted, func(a, b *Tool) int { return strings.Compare(a.Name(), b.Name()) })
	r.tools = tools
	r.sorted = sorted
}

// Lookup returns the tool registered under name. It builds the registry on first use;
// a failed build behaves like an empty registry.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	if r.Build() != nil {
		return nil, false
	}
	t, ok := r.tools[name]
	return t, ok
}

// Tools returns all registered tools sorted by name.
func (r *Registry) Tools() []*Tool {
	if r.Build() != nil {
		return nil
	}
	return slices.Clone(r.sorted)
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	if r.Build() != nil {
		return 0
	}
	return len(r.sorted)
}
