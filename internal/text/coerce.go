// Tolerant scalar coercion for untyped persisted payloads. Legacy snapshots
// carry years of accumulated shapes; these helpers turn whatever a JSON
// decode produced into the target scalar type without ever failing.
// Implements: prd002-migration-engine R3 (field coercion).
package text

import (
	"encoding/json"
	"strconv"
	"strings"
)

// String coerces v to a string. Numbers are stringified (integral floats
// without the trailing ".0"), booleans render as "true"/"false", and
// anything non-scalar degrades to the empty string.
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// truthyStrings and falsyStrings are the spellings the tolerant boolean
// parser recognizes explicitly.
var (
	truthyStrings = map[string]bool{"true": true, "1": true, "yes": true, "y": true, "on": true}
	falsyStrings  = map[string]bool{"false": true, "0": true, "no": true, "n": true, "off": true, "": true}
)

// Bool coerces v to a boolean. Strings go through the tolerant parser
// ("true"/"1"/"yes"/"y" and their negations); anything else falls back to
// JavaScript truthiness, which is what the values were originally tested
// with in the browser client.
func Bool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if truthyStrings[s] {
			return true
		}
		if falsyStrings[s] {
			return false
		}
		return true // non-empty string is truthy
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case nil:
		return false
	default:
		return true // objects and arrays are truthy
	}
}

// Int coerces v to an integer, parsing numeric strings. The ok result is
// false when v carries no parsable number.
func Int(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(t)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
