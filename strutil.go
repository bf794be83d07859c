package jsonvalue

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const epsilon = 2.220446049250313e-16 // distance from 1.0 to the next float64

// formatNumber renders a float the way Number values are written:
// NaN and infinities are null, magnitudes above 1e9 or below 1e-6 use
// exponent notation, integral values get a single decimal and everything
// else is fixed point without trailing zeros.
func formatNumber(d float64) string {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return "null"
	}
	abs := math.Abs(d)
	if abs > 1e9 || (abs < 1e-6 && d != 0) {
		return fmt.Sprintf("%e", d)
	}
	if math.Abs(math.Trunc(d)-d) <= epsilon && abs < 1e60 {
		return strconv.FormatFloat(d, 'f', 1, 64)
	}
	s := strconv.FormatFloat(d, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// escape writes s as the content of a JSON string literal. The solidus is
// escaped too.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescape decodes the escape sequences of a JSON string literal's content
// into UTF-8. Surrogate pairs are joined; lone surrogates become U+FFFD.
// Unknown escapes are kept as written.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b = append(b, c)
			continue
		}
		i++
		switch s[i] {
		case '"', '\\', '/':
			b = append(b, s[i])
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			r, n := decodeU(s[i+1:])
			if n == 0 {
				b = append(b, '\\', 'u')
				continue
			}
			i += n
			if utf16.IsSurrogate(r) {
				r2, n2 := rune(-1), 0
				if strings.HasPrefix(s[i+1:], `\u`) {
					r2, n2 = decodeU(s[i+3:])
				}
				if d := utf16.DecodeRune(r, r2); d != utf8.RuneError {
					r = d
					i += 2 + n2
				} else {
					r = utf8.RuneError
				}
			}
			b = utf8.AppendRune(b, r)
		default:
			b = append(b, '\\', s[i])
		}
	}
	return string(b)
}

// decodeU reads four hex digits.
func decodeU(s string) (rune, int) {
	if len(s) < 4 {
		return 0, 0
	}
	n, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0
	}
	return rune(n), 4
}

// EscapeToken escapes a member name for use as a JSON Pointer segment.
func EscapeToken(key string) string {
	if !strings.ContainsAny(key, "~/") {
		return key
	}
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}

// UnescapeToken decodes ~1 and ~0 in a JSON Pointer segment.
func UnescapeToken(seg string) string {
	if !strings.Contains(seg, "~") {
		return seg
	}
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}

// SplitPointer returns the raw segments of a JSON Pointer. A leading '#'
// is ignored, the empty pointer has no segments and "/" has one empty
// segment.
func SplitPointer(ptr string) []string {
	ptr = strings.TrimPrefix(ptr, "#")
	if ptr == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(ptr, "/"), "/")
}
