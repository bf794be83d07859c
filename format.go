package jsonvalue

import (
	"io"
	"sort"
	"strconv"
)

// Format controls how a value is written.
// Indent is added per nesting level, BaseIndent precedes the closing
// bracket of the outermost container and FirstIndent precedes its
// elements. EOL follows opening brackets and elements. Sorted writes object
// members in byte order of their names instead of insertion order.
type Format struct {
	Indent      string
	BaseIndent  string
	FirstIndent string
	EOL         string
	Sorted      bool
}

// Compact writes JSON without any whitespace.
var Compact = Format{}

// Pretty writes JSON indented by two spaces.
var Pretty = Format{Indent: "  ", FirstIndent: "  ", EOL: "\n"}

// Stringify formats v as JSON with no whitespace.
func Stringify(v *Value, sorted bool) string {
	return PrettyStringify(v, Format{Sorted: sorted})
}

// PrettyStringify formats v as JSON according to f.
func PrettyStringify(v *Value, f Format) string {
	buf := make([]byte, 0, 64)
	return string(f.append(buf, v, f.BaseIndent, f.FirstIndent))
}

// WriteFormatted writes v as JSON to w according to f.
func (v *Value) WriteFormatted(w io.Writer, f Format) (int, error) {
	buf := make([]byte, 0, 64)
	return w.Write(f.append(buf, v, f.BaseIndent, f.FirstIndent))
}

// String formats v as JSON with no whitespace, members in insertion order.
func (v *Value) String() string {
	return Stringify(v, false)
}

// WriteJSON writes v to w with the same representation as v.String().
func (v *Value) WriteJSON(w io.Writer) (int, error) {
	return v.WriteFormatted(w, Compact)
}

// WriteIndent writes v to w with the given indent (preferably spaces or a
// tab) and a newline after every element.
func (v *Value) WriteIndent(w io.Writer, indent string) (int, error) {
	return v.WriteFormatted(w, Format{Indent: indent, FirstIndent: indent, EOL: "\n"})
}

// append renders v into buf. outer precedes closing brackets, inner the
// elements of v.
func (f Format) append(buf []byte, v *Value, outer, inner string) []byte {
	switch v.Type() {
	case Undefined:
		return append(buf, "null"...)
	case Boolean:
		return strconv.AppendBool(buf, v.value.(bool))
	case Integer:
		return strconv.AppendInt(buf, v.value.(int64), 10)
	case Number:
		return append(buf, formatNumber(v.value.(float64))...)
	case String:
		buf = append(buf, '"')
		buf = append(buf, escape(v.value.(string))...)
		return append(buf, '"')
	case Array:
		a := v.array()
		if a.Len() == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		buf = append(buf, f.EOL...)
		for i, c := range a.All() {
			if i > 0 {
				buf = append(buf, ',')
				buf = append(buf, f.EOL...)
			}
			buf = append(buf, inner...)
			buf = f.append(buf, c, inner, inner+f.Indent)
		}
		buf = append(buf, f.EOL...)
		buf = append(buf, outer...)
		return append(buf, ']')
	case Object:
		o := v.object()
		if o.Len() == 0 {
			return append(buf, "{}"...)
		}
		keys := o.Keys()
		if f.Sorted {
			sort.Strings(keys)
		}
		buf = append(buf, '{')
		buf = append(buf, f.EOL...)
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
				buf = append(buf, f.EOL...)
			}
			c, _ := o.Get(k)
			buf = append(buf, inner...)
			buf = append(buf, '"')
			buf = append(buf, escape(k)...)
			buf = append(buf, `":`...)
			buf = f.append(buf, c, inner, inner+f.Indent)
		}
		buf = append(buf, f.EOL...)
		buf = append(buf, outer...)
		return append(buf, '}')
	default:
		return append(buf, "<error>"...)
	}
}
