package toolcall

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Type is the JSON Schema type of a tool parameter. Only scalars are supported.
type Type string

const (
	Integer Type = "integer"
	Number  Type = "number"
	Boolean Type = "boolean"
	String  Type = "string"
)

func (t Type) valid() bool {
	switch t {
	case Integer, Number, Boolean, String:
		return true
	}
	return false
}

// Param declares one positional parameter. Order in a parameter list is significant:
// it is the order in which the callable receives its Args.
type Param struct {
	Name        string
	Description string
	Type        Type
	// Optional parameters may be omitted by the caller; their schema type becomes [Type, "null"].
	Optional bool
	// Default is a JSON literal used when an optional parameter is omitted (e.g. `42` or `"!"`).
	Default json.RawMessage
}

// Tool is an immutable descriptor: name, description, ordered parameter schema and callable.
// Build it with NewTool or NewToolFromSchema and hand it to a Registry.
type Tool struct {
	name        string
	description string
	params      []Param
	defaults    []any // parsed Default per param, nil when absent
	required    int
	schema      json.RawMessage
	callable    Callable
	validator   *validator
	opts        toolOptions
}

// NewTool builds a Tool from an explicit parameter list. The parameter schema is rendered
// from params in declaration order. Required parameters must precede optional ones.
func NewTool(name, description string, params []Param, fn Callable, opts ...ToolOption) (*Tool, error) {
	schema, err := renderSchema(params)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", name, err)
	}
	return newTool(name, description, params, schema, fn, opts)
}

// NewToolFromSchema builds a Tool from a descriptor produced elsewhere (e.g. a code generator).
// schemaJSON must be an object schema with ordered "properties" and a "required" list;
// property order in the JSON text defines positional order.
func NewToolFromSchema(name, description string, schemaJSON []byte, fn Callable, opts ...ToolOption) (*Tool, error) {
	params, err := parseSchema(schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", name, err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, schemaJSON); err != nil {
		return nil, fmt.Errorf("tool %q: %w", name, err)
	}
	return newTool(name, description, params, compact.Bytes(), fn, opts)
}

func newTool(name, description string, params []Param, schema json.RawMessage, fn Callable, opts []ToolOption) (*Tool, error) {
	if name == "" {
		return nil, errors.New("tool name must not be empty")
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %q: callable must not be nil", name)
	}
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tool{
		name:        name,
		description: description,
		params:      slices.Clone(params),
		defaults:    make([]any, len(params)),
		schema:      schema,
		callable:    fn,
		opts:        o,
	}
	seen := make(map[string]struct{}, len(params))
	for i, p := range t.params {
		if p.Name == "" {
			return nil, fmt.Errorf("tool %q: parameter %d has no name", name, i)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("tool %q: duplicate parameter %q", name, p.Name)
		}
		seen[p.Name] = struct{}{}
		if !p.Type.valid() {
			return nil, fmt.Errorf("tool %q: parameter %q has unsupported type %q", name, p.Name, p.Type)
		}
		if !p.Optional {
			if i > t.required {
				return nil, fmt.Errorf("tool %q: required parameter %q follows an optional parameter", name, p.Name)
			}
			t.required++
			continue
		}
		if len(p.Default) > 0 {
			v, err := parseDefault(p)
			if err != nil {
				return nil, fmt.Errorf("tool %q: %w", name, err)
			}
			t.defaults[i] = v
		}
	}
	t.validator = newValidator(name, schema)
	return t, nil
}

func (t *Tool) Name() string        { return t.name }
func (t *Tool) Description() string { return t.description }

// Parameters returns a copy of the parameter schema JSON with property order preserved.
func (t *Tool) Parameters() json.RawMessage { return bytes.Clone(t.schema) }

// Params returns a copy of the ordered parameter list.
func (t *Tool) Params() []Param { return slices.Clone(t.params) }

// RequiredCount is the number of leading required parameters.
func (t *Tool) RequiredCount() int { return t.required }

// Timeout is the per-tool deadline set WithTimeout, or zero.
func (t *Tool) Timeout() time.Duration { return t.opts.timeout }

// Callable returns the tool implementation.
func (t *Tool) Callable() Callable { return t.callable }

func parseDefault(p Param) (any, error) {
	raw, err := decodeLiteral(p.Default)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: invalid default %s: %w", p.Name, p.Default, err)
	}
	v, err := p.Type.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: default %s is not a valid %s", p.Name, p.Default, p.Type)
	}
	return v, nil
}

// decodeLiteral turns a JSON literal into the same string form the marshaler produces.
func decodeLiteral(lit json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(lit))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	return encodeValue(v)
}
