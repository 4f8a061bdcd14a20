package toolcall

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalArgs(t *testing.T) {
	tool := mustTool(t, "m", []Param{
		reqParam("a", String),
		reqParam("b", Integer),
		optParam("c", Boolean, ""),
		optParam("d", Number, ""),
	}, nop)

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{
			name: "all present in any key order",
			args: map[string]any{"d": json.Number("2.50"), "c": true, "b": json.Number("7"), "a": "x"},
			want: []string{"x", "7", "true", "2.50"},
		},
		{
			name: "strings taken verbatim",
			args: map[string]any{"a": `he said "hi"`, "b": json.Number("-1")},
			want: []string{`he said "hi"`, "-1"},
		},
		{
			name: "trailing optionals omitted",
			args: map[string]any{"a": "x", "b": json.Number("1")},
			want: []string{"x", "1"},
		},
		{
			name: "null optional counts as absent",
			args: map[string]any{"a": "x", "b": json.Number("1"), "c": nil},
			want: []string{"x", "1"},
		},
		{
			name: "unknown keys ignored",
			args: map[string]any{"a": "x", "b": json.Number("1"), "zzz": "?"},
			want: []string{"x", "1"},
		},
		{
			name: "float64 values use shortest form",
			args: map[string]any{"a": "x", "b": 3.0},
			want: []string{"x", "3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.marshalArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalArgs_MissingRequired(t *testing.T) {
	tool := mustTool(t, "m", []Param{reqParam("a", String), reqParam("b", String)}, nop)
	_, err := tool.marshalArgs(map[string]any{"a": "x"})
	var ba *BadArgsError
	require.ErrorAs(t, err, &ba)
	assert.Equal(t, "Missing argument for parameter 'b'", ba.Reason)
}

func TestMarshalArgs_OptionalGap(t *testing.T) {
	tool := mustTool(t, "m", []Param{optParam("first", String, ""), optParam("second", String, "")}, nop)
	_, err := tool.marshalArgs(map[string]any{"second": "y"})
	var ba *BadArgsError
	require.ErrorAs(t, err, &ba)
	assert.Equal(t, "Missing argument for parameter 'first' required by later parameter 'second'", ba.Reason)
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{json.Number("1e3"), "1e3"},
		{false, "false"},
		{1.25, "1.25"},
		{[]any{"a", json.Number("1")}, `["a",1]`},
		{map[string]any{"k": "v"}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		got, err := encodeValue(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
