package toolcall

import (
	"encoding/json"
	"strconv"
)

// marshalArgs orders a named arguments object into string-encoded positional
// arguments following the tool's declared parameter order. The key order of
// args is irrelevant. Omitted (or null) optional parameters are left out; a gap
// followed by a supplied parameter is rejected because it would shift positions.
func (t *Tool) marshalArgs(args map[string]any) ([]string, error) {
	out := make([]string, 0, len(t.params))
	gap := ""
	for _, p := range t.params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if !p.Optional {
				return nil, badArgsf("Missing argument for parameter '%s'", p.Name)
			}
			if gap == "" {
				gap = p.Name
			}
			continue
		}
		if gap != "" {
			return nil, badArgsf("Missing argument for parameter '%s' required by later parameter '%s'", gap, p.Name)
		}
		s, err := encodeValue(v)
		if err != nil {
			return nil, &BadArgsError{Reason: "Failed to encode argument for parameter '" + p.Name + "'", Err: err}
		}
		out = append(out, s)
	}
	return out, nil
}

// encodeValue renders a decoded JSON value as a positional argument: strings
// verbatim, numbers in the exact text they were sent in (json.Number), and
// everything else in canonical JSON form.
func encodeValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
