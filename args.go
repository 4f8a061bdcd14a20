package toolcall

import (
	"strconv"
)

// Args are the typed positional arguments passed to a Callable, one per declared
// parameter in schema order. Values are int64, float64, bool or string; an omitted
// optional parameter without a default is nil.
type Args []any

// Len returns the number of declared parameters.
func (a Args) Len() int { return len(a) }

// Has reports whether argument i is present (supplied or defaulted).
func (a Args) Has(i int) bool { return i >= 0 && i < len(a) && a[i] != nil }

// Int returns argument i as int64, or 0 if it is absent or not an integer.
func (a Args) Int(i int) int64 {
	v, _ := a.get(i).(int64)
	return v
}

// Float returns argument i as float64, or 0 if it is absent or not a number.
func (a Args) Float(i int) float64 {
	v, _ := a.get(i).(float64)
	return v
}

// Bool returns argument i as bool, or false if it is absent or not a boolean.
func (a Args) Bool(i int) bool {
	v, _ := a.get(i).(bool)
	return v
}

// String returns argument i as string, or "" if it is absent or not a string.
func (a Args) String(i int) string {
	v, _ := a.get(i).(string)
	return v
}

func (a Args) get(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// parse converts one string-encoded argument into the Go value for t.
func (t Type) parse(raw string) (any, error) {
	switch t {
	case Integer:
		return strconv.ParseInt(raw, 10, 64)
	case Number:
		return strconv.ParseFloat(raw, 64)
	case Boolean:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, strconv.ErrSyntax
	default:
		return raw, nil
	}
}

// bind checks the argument count and parses the supplied prefix of raw into typed
// Args. Parameters past the prefix take their default, or nil.
func (t *Tool) bind(raw []string) (Args, error) {
	n, total := len(raw), len(t.params)
	if n < t.required || n > total {
		return nil, badArgsf("Expected between %d and %d arguments, got %d", t.required, total, n)
	}
	out := make(Args, total)
	for i, p := range t.params {
		if i >= n {
			out[i] = t.defaults[i]
			continue
		}
		v, err := p.Type.parse(raw[i])
		if err != nil {
			return nil, &BadArgsError{
				Reason: "Failed to parse argument '" + raw[i] + "' for parameter '" + p.Name + "'",
				Err:    err,
			}
		}
		out[i] = v
	}
	return out, nil
}
