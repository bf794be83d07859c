package jsonvalue

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Parse builds a value tree from JSON text. Malformed text gives an
// Undefined value; use ReadJSON to learn what is wrong with it.
func Parse(text string) *Value {
	v, err := decode(text)
	if err != nil {
		return &Value{}
	}
	return v
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte) *Value {
	return Parse(string(data))
}

// ParseFile parses the JSON file at path. A file that cannot be read or
// parsed gives an Undefined value.
func ParseFile(path string) *Value {
	v, err := ReadFile(path)
	if err != nil {
		return &Value{}
	}
	return v
}

// ReadJSON reads all of r and parses it. Syntax errors are returned as
// *ParseError.
func ReadJSON(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "jsonvalue: read")
	}
	return decode(string(data))
}

// ReadFile reads and parses the JSON file at path.
func ReadFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "jsonvalue")
	}
	v, err := decode(string(data))
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return v, nil
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	_, err := parse(lex(string(data)))
	return err == nil
}

func decode(text string) (*Value, error) {
	spans, err := parse(lex(text))
	if err != nil {
		return nil, err
	}
	v := &Value{}
	build(v, spans, 0)
	return v, nil
}

// build fills v from the subtree starting at spans[i] and returns the index
// after it. A repeated object key replaces the earlier value in place.
func build(v *Value, spans []span, i int) int {
	s := spans[i]
	i++
	v.reset()
	switch s.kind {
	case primitiveSpan, stringSpan:
		t := FromToken(s.text, s.kind == stringSpan)
		v.install(t.jsonType, t.value)
	case arraySpan:
		v.install(Array, zeroOf(Array))
		for n := 0; n < s.count; n++ {
			i = build(v.Elem(n), spans, i)
		}
	case objectSpan:
		v.install(Object, zeroOf(Object))
		for n := 0; n < s.count; n++ {
			key := unescape(spans[i].text)
			i = build(v.Member(key), spans, i+1)
		}
	}
	return i
}
