package toolcall

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const typeNull = "null"

// renderSchema produces the object schema for params, keeping declaration order
// for "properties". Optional parameters get the union type [base, "null"].
func renderSchema(params []Param) (json.RawMessage, error) {
	props := orderedmap.New[string, any]()
	required := make([]string, 0, len(params))
	for _, p := range params {
		prop := orderedmap.New[string, any]()
		if p.Optional {
			prop.Set("type", []string{string(p.Type), typeNull})
		} else {
			prop.Set("type", string(p.Type))
			required = append(required, p.Name)
		}
		if p.Description != "" {
			prop.Set("description", p.Description)
		}
		if len(p.Default) > 0 {
			prop.Set("default", p.Default)
		}
		props.Set(p.Name, prop)
	}
	root := orderedmap.New[string, any]()
	root.Set("type", "object")
	root.Set("properties", props)
	root.Set("required", required)
	return json.Marshal(root)
}

// parseSchema decodes an externally supplied parameter schema into ordered Params.
// The typed view comes from jsonschema-go (which also resolves the schema to catch
// malformed descriptors); the order of "properties" is read separately because Go
// maps do not keep it.
func parseSchema(data []byte) ([]Param, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode parameter schema: %w", err)
	}
	if _, err := s.Resolve(nil); err != nil {
		return nil, fmt.Errorf("resolve parameter schema: %w", err)
	}
	if s.Type != "object" {
		return nil, fmt.Errorf("parameter schema type must be %q, got %q", "object", s.Type)
	}

	var raw struct {
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode parameter schema: %w", err)
	}
	order := orderedmap.New[string, json.RawMessage]()
	if len(raw.Properties) > 0 {
		if err := json.Unmarshal(raw.Properties, order); err != nil {
			return nil, fmt.Errorf("decode properties: %w", err)
		}
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			return nil, fmt.Errorf("required parameter %q is not declared in properties", name)
		}
		required[name] = true
	}

	params := make([]Param, 0, order.Len())
	for pair := order.Oldest(); pair != nil; pair = pair.Next() {
		prop := s.Properties[pair.Key]
		if prop == nil {
			return nil, fmt.Errorf("parameter %q has no schema", pair.Key)
		}
		typ, err := baseType(prop)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", pair.Key, err)
		}
		params = append(params, Param{
			Name:        pair.Key,
			Description: prop.Description,
			Type:        typ,
			Optional:    !required[pair.Key],
			Default:     prop.Default,
		})
	}
	return params, nil
}

var errNoType = errors.New("schema declares no type")

// baseType returns the single non-null type of a property schema.
func baseType(prop *jsonschema.Schema) (Type, error) {
	types := prop.Types
	if prop.Type != "" {
		types = []string{prop.Type}
	}
	var base []string
	for _, t := range types {
		if t != typeNull {
			base = append(base, t)
		}
	}
	switch len(base) {
	case 0:
		return "", errNoType
	case 1:
		return Type(base[0]), nil
	default:
		return "", fmt.Errorf("union type %v is not supported", types)
	}
}
