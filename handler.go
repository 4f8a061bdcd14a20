package toolcall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ToolSpec is one entry of the capability export sent to an LLM.
type ToolSpec struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec describes a tool by name, description and parameter schema.
type FunctionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// Handler is the dispatch facade: lookup, positional calls, JSON tool calls and
// the schema catalog. It is safe for concurrent use; calls share only the
// read-only registry and its compiled schemas.
type Handler struct {
	reg  *Registry
	exec ExecFunc
}

// NewHandler builds reg (so descriptor errors abort startup) and returns a Handler for it.
func NewHandler(reg *Registry, opts ...Option) (*Handler, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry must not be nil")
	}
	if err := reg.Build(); err != nil {
		return nil, err
	}
	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Handler{
		reg:  reg,
		exec: chain(newExecutor(o).Execute, o.middlewares),
	}, nil
}

// GetTool returns the tool registered under name.
func (h *Handler) GetTool(name string) (*Tool, bool) {
	return h.reg.Lookup(name)
}

// CallWithArgs executes a tool with positional arguments already in schema order.
// Schema validation and marshaling are skipped; the count check and typed parse are not.
func (h *Handler) CallWithArgs(ctx context.Context, name string, args []string) (string, error) {
	t, ok := h.reg.Lookup(name)
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return h.exec(ctx, t, args)
}

// AllToolsSchema exports every registered tool, sorted by name, as
// {"type":"function","function":{name, description, parameters}}.
func (h *Handler) AllToolsSchema() []ToolSpec {
	tools := h.reg.Tools()
	out := make([]ToolSpec, 0, len(tools))
	for _, t := range tools {
		out = append(out, ToolSpec{
			Type: "function",
			Function: FunctionSpec{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return out
}

// CallTool runs the full pipeline for a JSON tool call request:
//
//	{"type":"function","function":{"name":"...","arguments":{...}}}
//
// Any "parameters" schema embedded in the request is ignored; arguments are always
// validated against the registered schema. The first failing stage returns its error.
func (h *Handler) CallTool(ctx context.Context, payload []byte) (string, error) {
	name, arguments, err := parseCall(payload)
	if err != nil {
		return "", err
	}
	return h.CallFunction(ctx, name, arguments)
}

// CallFunction is CallTool without the request envelope, for transports that
// already carry the tool name and the arguments object separately.
func (h *Handler) CallFunction(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	t, ok := h.reg.Lookup(name)
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	args, err := decodeArguments(arguments)
	if err != nil {
		return "", err
	}
	violations, err := t.validator.Violations(arguments)
	if err != nil {
		return "", err
	}
	if len(violations) > 0 {
		return "", badArgsf("Argument validation failed for tool '%s': %s", name, strings.Join(violations, "; "))
	}
	ordered, err := t.marshalArgs(args)
	if err != nil {
		return "", err
	}
	return h.exec(ctx, t, ordered)
}

func parseCall(payload []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil || obj == nil {
		return "", nil, &BadArgsError{Reason: "Expected JSON object", Err: err}
	}
	typ, ok := jsonString(obj["type"])
	if !ok {
		return "", nil, badArgsf("Missing or invalid 'type' field")
	}
	if typ != "function" {
		return "", nil, badArgsf("Invalid input type: expected 'function', got '%s'", typ)
	}
	var fn map[string]json.RawMessage
	if err := json.Unmarshal(obj["function"], &fn); err != nil || fn == nil {
		return "", nil, &BadArgsError{Reason: "Missing or invalid 'function' field", Err: err}
	}
	name, ok := jsonString(fn["name"])
	if !ok {
		return "", nil, badArgsf("Missing or invalid 'function.name'")
	}
	arguments := bytes.TrimSpace(fn["arguments"])
	// OpenAI-style providers send arguments as a JSON-encoded string.
	if s, ok := jsonString(arguments); ok {
		arguments = bytes.TrimSpace([]byte(s))
	}
	if len(arguments) == 0 || arguments[0] != '{' {
		return "", nil, badArgsf("Missing or invalid 'arguments' field")
	}
	return name, arguments, nil
}

// jsonString decodes raw if it is a JSON string (not null or any other kind).
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeArguments decodes an arguments object keeping numbers as json.Number so
// they reach the tool in the exact text the caller sent.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil || args == nil {
		return nil, &BadArgsError{Reason: "Missing or invalid 'arguments' field", Err: err}
	}
	return args, nil
}
