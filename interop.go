package jsonvalue

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MarshalJSON writes v in compact form. Undefined is written as null.
func (v *Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON replaces v with the tree parsed from data. v keeps its
// place in its tree.
func (v *Value) UnmarshalJSON(data []byte) error {
	n, err := decode(string(data))
	if err != nil {
		return err
	}
	v.Move(n)
	return nil
}

// NewJSONGo builds a tree from a Go value the way encoding/json would
// encode it: struct fields keep their declaration order, map keys come out
// sorted.
func NewJSONGo(x interface{}) (*Value, error) {
	data, err := json.Marshal(x)
	if err != nil {
		return nil, errors.Wrap(err, "jsonvalue: encode Go value")
	}
	return decode(string(data))
}

// JSON2Go stores v in the Go value pointed to by dst, following the rules
// of encoding/json's Unmarshal.
func (v *Value) JSON2Go(dst interface{}) error {
	if err := json.Unmarshal([]byte(v.String()), dst); err != nil {
		return errors.Wrapf(err, "jsonvalue: decode %s into %T", v.Pointer(), dst)
	}
	return nil
}

// Interface returns v as plain Go data: nil, bool, int64, float64, string,
// []interface{} and map[string]interface{}. Member order is lost.
func (v *Value) Interface() interface{} {
	switch v.Type() {
	case Array:
		out := make([]interface{}, 0, v.Len())
		for _, c := range v.array().All() {
			out = append(out, c.Interface())
		}
		return out
	case Object:
		out := make(map[string]interface{}, v.Len())
		for k, c := range v.object().All() {
			out[k] = c.Interface()
		}
		return out
	case Undefined:
		return nil
	default:
		return v.value
	}
}
