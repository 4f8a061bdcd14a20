package toolcall

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nop = Func(func(context.Context, Args) (string, error) { return "", nil })

func TestNewTool_RendersOrderedSchema(t *testing.T) {
	tool, err := NewTool("greet", "Greets someone", []Param{
		{Name: "name", Type: String, Description: "Who to greet"},
		{Name: "times", Type: Integer},
		{Name: "punctuation", Type: String, Optional: true, Default: json.RawMessage(`"!"`)},
	}, nop, WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "greet", tool.Name())
	assert.Equal(t, "Greets someone", tool.Description())
	assert.Equal(t, 2, tool.RequiredCount())
	assert.Equal(t, time.Second, tool.Timeout())

	schema := string(tool.Parameters())
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "description": "Who to greet"},
			"times": {"type": "integer"},
			"punctuation": {"type": ["string", "null"], "default": "!"}
		},
		"required": ["name", "times"]
	}`, schema)
	assert.Less(t, strings.Index(schema, `"name":`), strings.Index(schema, `"times":`))
	assert.Less(t, strings.Index(schema, `"times":`), strings.Index(schema, `"punctuation":`))
}

func TestNewTool_NoParams(t *testing.T) {
	tool, err := NewTool("noop", "", nil, nop)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{},"required":[]}`, string(tool.Parameters()))
	assert.Empty(t, tool.Params())
}

func TestNewTool_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		params   []Param
		fn       Callable
		contains string
	}{
		{"empty name", "", nil, nop, "name must not be empty"},
		{"nil callable", "x", nil, nil, "callable must not be nil"},
		{"unnamed param", "x", []Param{{Type: String}}, nop, "has no name"},
		{"duplicate param", "x", []Param{reqParam("a", String), reqParam("a", Integer)}, nop, `duplicate parameter "a"`},
		{"bad type", "x", []Param{reqParam("a", "array")}, nop, "unsupported type"},
		{"required after optional", "x", []Param{optParam("a", String, ""), reqParam("b", String)}, nop, "follows an optional"},
		{"bad default", "x", []Param{optParam("a", Integer, `"abc"`)}, nop, "not a valid integer"},
		{"malformed default", "x", []Param{optParam("a", Integer, `{`)}, nop, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTool(tt.tool, "", tt.params, tt.fn)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNewToolFromSchema_KeepsPropertyOrder(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"zeta": {"type": "string", "description": "last letter"},
			"alpha": {"type": "integer"},
			"mid": {"type": ["number", "null"], "default": 1.5}
		},
		"required": ["zeta", "alpha"]
	}`)
	tool, err := NewToolFromSchema("ordered", "desc", schema, nop)
	require.NoError(t, err)

	params := tool.Params()
	require.Len(t, params, 3)
	assert.Equal(t, Param{Name: "zeta", Type: String, Description: "last letter"}, params[0])
	assert.Equal(t, Param{Name: "alpha", Type: Integer}, params[1])
	assert.Equal(t, "mid", params[2].Name)
	assert.Equal(t, Number, params[2].Type)
	assert.True(t, params[2].Optional)
	assert.JSONEq(t, `1.5`, string(params[2].Default))
	assert.Equal(t, 2, tool.RequiredCount())

	var compact map[string]any
	require.NoError(t, json.Unmarshal(tool.Parameters(), &compact))
	out := string(tool.Parameters())
	assert.NotContains(t, out, "\n")
	assert.Less(t, strings.Index(out, `"zeta"`), strings.Index(out, `"alpha"`))
}

func TestNewToolFromSchema_NoRequiredList(t *testing.T) {
	tool, err := NewToolFromSchema("loose", "", []byte(`{"type":"object","properties":{"q":{"type":"string"}}}`), nop)
	require.NoError(t, err)
	assert.Equal(t, 0, tool.RequiredCount())
	assert.True(t, tool.Params()[0].Optional)
}

func TestNewToolFromSchema_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"not json", `{`},
		{"not object type", `{"type":"array","items":{"type":"string"}}`},
		{"missing type", `{"properties":{}}`},
		{"required not declared", `{"type":"object","properties":{"a":{"type":"string"}},"required":["b"]}`},
		{"property without type", `{"type":"object","properties":{"a":{}},"required":[]}`},
		{"union of two types", `{"type":"object","properties":{"a":{"type":["string","integer"]}},"required":[]}`},
		{"object property", `{"type":"object","properties":{"a":{"type":"object"}},"required":["a"]}`},
		{"required after optional", `{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}},"required":["b"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewToolFromSchema("bad", "", []byte(tt.schema), nop)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `tool "bad"`)
		})
	}
}

func TestTool_ParametersIsCopy(t *testing.T) {
	tool := mustTool(t, "copy", []Param{reqParam("a", String)}, nop)
	p := tool.Parameters()
	p[0] = 'X'
	assert.Equal(t, byte('{'), tool.Parameters()[0])
}
