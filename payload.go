package gdsvalidation

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Payload holds submitted answers keyed by input name. Values are strings,
// string lists, or the numbers and booleans produced by JSON decoding.
type Payload map[string]any

// Clone copies the payload, including list values, so coercion never writes
// into the caller's map.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	maps.Copy(out, p)
	for k, v := range out {
		switch list := v.(type) {
		case []string:
			out[k] = append([]string(nil), list...)
		case []any:
			out[k] = append([]any(nil), list...)
		}
	}
	return out
}

// Has reports whether key was submitted at all.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the answer under key as text. A single element list is
// unwrapped; longer lists and absent keys yield "".
func (p Payload) String(key string) string {
	return stringify(p[key])
}

// Strings returns the answer under key as a list. A non-empty scalar becomes
// a one element list.
func (p Payload) Strings(key string) []string {
	return listify(p[key])
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		if len(val) == 1 {
			return val[0]
		}
		return ""
	case []any:
		if len(val) == 1 {
			return stringify(val[0])
		}
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func listify(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, stringify(item))
		}
		return out
	default:
		s := stringify(val)
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []string{s}
	}
}
