package engine

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// Raw is an untrusted form value. It decodes from JSON strings, numbers,
// booleans and null so API callers may send either representation.
type Raw string

// UnmarshalJSON accepts any JSON scalar.
func (r *Raw) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*r = ""
	case string:
		*r = Raw(val)
	case float64:
		*r = Raw(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		*r = Raw(strconv.FormatBool(val))
	default:
		// Objects and arrays are not form values.
		*r = ""
	}
	return nil
}

// ParseFloatOrDefault reads the longest leading decimal number in raw. Empty,
// non-numeric, zero and out of range values yield def. Negative values are
// kept.
func ParseFloatOrDefault(raw string, def float64) float64 {
	match := leadingFloat.FindString(strings.TrimSpace(raw))
	if match == "" {
		return def
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return def
	}
	return v
}

// ParseIntOrDefault reads the longest leading decimal integer in raw, so "4.9"
// is 4 and "0x10" is 0. Empty, non-numeric, zero and out of range values yield
// def. Negative values are kept.
func ParseIntOrDefault(raw string, def int) int {
	match := leadingInt.FindString(strings.TrimSpace(raw))
	if match == "" {
		return def
	}
	v, err := strconv.Atoi(match)
	if err != nil || v == 0 {
		return def
	}
	return v
}

// ParsePositiveIntOrDefault is ParseIntOrDefault with negative values also
// yielding def.
func ParsePositiveIntOrDefault(raw string, def int) int {
	if v := ParseIntOrDefault(raw, def); v > 0 {
		return v
	}
	return def
}
