package jsonvalue

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AsBoolean converts v the way JavaScript's ToBoolean does for scalars: an
// empty string and zero numbers are false. Undefined, arrays and objects
// give def.
func (v *Value) AsBoolean(def bool) bool {
	switch v.Type() {
	case Boolean:
		return v.value.(bool)
	case String:
		return v.value.(string) != ""
	case Integer:
		return v.value.(int64) != 0
	case Number:
		return v.value.(float64) != 0
	default:
		return def
	}
}

// AsNumber converts v to a float64. Booleans give 1 or 0 and strings are
// parsed; a string that is not a number, Undefined, arrays and objects
// give def.
func (v *Value) AsNumber(def float64) float64 {
	if f, ok := v.toNumber(); ok {
		return f
	}
	return def
}

// AsInteger converts v to an int64. Numbers are truncated; strings are
// parsed as integers first and then as truncated floats. Anything that does
// not convert, including NaN and infinities, gives def.
func (v *Value) AsInteger(def int64) int64 {
	if i, ok := v.toInteger(); ok {
		return i
	}
	return def
}

// AsString converts v to text. Arrays and objects give the fixed strings
// "Array[]" and "Object{}", never their content. Undefined gives def.
func (v *Value) AsString(def string) string {
	switch v.Type() {
	case Array:
		return "Array[]"
	case Object:
		return "Object{}"
	case Boolean:
		if v.value.(bool) {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(v.value.(int64), 10)
	case Number:
		return formatNumber(v.value.(float64))
	case String:
		return v.value.(string)
	default:
		return def
	}
}

// AsEscapedString is AsString with JSON string escaping applied.
func (v *Value) AsEscapedString(def string) string {
	return escape(v.AsString(def))
}

func (v *Value) toNumber() (float64, bool) {
	switch v.Type() {
	case Boolean:
		if v.value.(bool) {
			return 1, true
		}
		return 0, true
	case Integer:
		return float64(v.value.(int64)), true
	case Number:
		return v.value.(float64), true
	case String:
		return parseFloat(strings.TrimSpace(v.value.(string)))
	default:
		return 0, false
	}
}

func (v *Value) toInteger() (int64, bool) {
	switch v.Type() {
	case Boolean:
		if v.value.(bool) {
			return 1, true
		}
		return 0, true
	case Integer:
		return v.value.(int64), true
	case Number:
		return truncate(v.value.(float64))
	case String:
		s := strings.TrimSpace(v.value.(string))
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, ok := parseFloat(s); ok {
			return truncate(f)
		}
		return 0, false
	default:
		return 0, false
	}
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// parseFloat accepts decimal JSON-like numbers only; hexadecimal floats,
// underscores and the words inf and nan are refused. Out of range input
// gives the infinity strconv reports.
func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c == '.', c == '-', c == '+', c == 'e', c == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
