package toolcall

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaResource = "parameters.json"

var violationPrinter = message.NewPrinter(language.English)

// validator compiles a tool's parameter schema on first use and caches the result
// (compiled schema or compile error). Safe for concurrent use.
type validator struct {
	tool   string
	schema json.RawMessage

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func newValidator(tool string, schema json.RawMessage) *validator {
	return &validator{tool: tool, schema: schema}
}

func (v *validator) compile() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(v.schema))
	if err != nil {
		v.err = err
		return
	}
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	if err := c.AddResource(schemaResource, doc); err != nil {
		v.err = err
		return
	}
	v.compiled, v.err = c.Compile(schemaResource)
}

// Violations validates argsJSON against the tool schema and returns one
// human-readable message per violated constraint; an empty slice means valid.
// A schema that does not compile is reported as an ExecutionError naming the tool.
func (v *validator) Violations(argsJSON []byte) ([]string, error) {
	v.once.Do(v.compile)
	if v.err != nil {
		return nil, &ExecutionError{
			Reason: fmt.Sprintf("Failed to compile schema for tool '%s': %v", v.tool, v.err),
			Err:    v.err,
		}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(argsJSON))
	if err != nil {
		return nil, &BadArgsError{Reason: "Missing or invalid 'arguments' field", Err: err}
	}
	err = v.compiled.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}, nil
	}
	return leafViolations(ve), nil
}

func leafViolations(root *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, fmt.Sprintf("at '%s': %s",
				instancePointer(e.InstanceLocation), e.ErrorKind.LocalizedString(violationPrinter)))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(root)
	return out
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func instancePointer(loc []string) string {
	var b strings.Builder
	for _, tok := range loc {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(tok))
	}
	return b.String()
}
