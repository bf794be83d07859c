package jsonvalue

import (
	"strconv"

	"github.com/d1ced/jsonvalue/internal/linkedmap"
	"github.com/d1ced/jsonvalue/internal/sequence"
)

// Type is an enum for the tags a Value can carry.
type Type uint8

// Types to compare values with. The zero value is Undefined, which also
// stands in for JSON null.
const (
	Undefined Type = iota
	Boolean
	Number
	Integer
	String
	Array
	Object
)

var typeNames = [...]string{
	Undefined: "Undefined",
	Boolean:   "Boolean",
	Number:    "Number",
	Integer:   "Integer",
	String:    "String",
	Array:     "Array",
	Object:    "Object",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

type arrayContainer = sequence.List[*Value]
type objectContainer = linkedmap.Map[string, *Value]

// Value is one node of a JSON tree.
// Depending on its type it holds a different value:
//     Type	ValueType
//     Undefined	nil
//     Boolean	bool
//     Number	float64
//     Integer	int64
//     String	string
//     Array	*arrayContainer
//     Object	*objectContainer
//
// A Value owns its children. parent points at the container value holding
// it and is nil for roots and freestanding values. Values must not be copied
// by dereference; use Assign, Move or Clone, which keep parent pointers
// right.
type Value struct {
	jsonType Type
	value    interface{}
	parent   *Value
}

// New returns a freestanding value of type t holding the zero value of that
// type: false, 0, 0.0, "", an empty array or an empty object.
func New(t Type) *Value {
	v := &Value{}
	v.install(t, zeroOf(t))
	return v
}

// Bool returns a Boolean value.
func Bool(b bool) *Value {
	return &Value{jsonType: Boolean, value: b}
}

// Int returns an Integer value.
func Int(i int64) *Value {
	return &Value{jsonType: Integer, value: i}
}

// Float returns a Number value.
func Float(f float64) *Value {
	return &Value{jsonType: Number, value: f}
}

// Str returns a String value.
func Str(s string) *Value {
	return &Value{jsonType: String, value: s}
}

// NewArray returns an array holding copies of vv.
func NewArray(vv ...*Value) *Value {
	a := New(Array)
	for _, v := range vv {
		a.Append(v)
	}
	return a
}

// NewObject returns an empty object.
func NewObject() *Value {
	return New(Object)
}

// FromToken builds a value from the raw text of a single JSON token.
// If isString is set the text is the escaped content of a string literal.
// Otherwise the text is tried as an integer, a floating point number, and
// the literals true, false and null (null gives Undefined), in that order;
// anything else is taken as an escaped string.
func FromToken(text string, isString bool) *Value {
	if !isString {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i)
		}
		if f, ok := parseFloat(text); ok {
			return Float(f)
		}
		switch text {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		case "null":
			return &Value{}
		}
	}
	return Str(unescape(text))
}

func zeroOf(t Type) interface{} {
	switch t {
	case Boolean:
		return false
	case Number:
		return float64(0)
	case Integer:
		return int64(0)
	case String:
		return ""
	case Array:
		return &arrayContainer{}
	case Object:
		return linkedmap.New[string, *Value]()
	default:
		return nil
	}
}

// Type returns the type of v. A nil value is Undefined.
func (v *Value) Type() Type {
	if v == nil {
		return Undefined
	}
	return v.jsonType
}

// IsUndefined reports whether v is Undefined or nil.
func (v *Value) IsUndefined() bool { return v.Type() == Undefined }

// IsBoolean reports whether v is a Boolean.
func (v *Value) IsBoolean() bool { return v.Type() == Boolean }

// IsNumber reports whether v is a Number or an Integer.
func (v *Value) IsNumber() bool { return v.Type() == Number || v.Type() == Integer }

// IsInteger reports whether v is an Integer.
func (v *Value) IsInteger() bool { return v.Type() == Integer }

// IsString reports whether v is a String.
func (v *Value) IsString() bool { return v.Type() == String }

// IsArray reports whether v is an Array.
func (v *Value) IsArray() bool { return v.Type() == Array }

// IsObject reports whether v is an Object.
func (v *Value) IsObject() bool { return v.Type() == Object }

func (v *Value) array() *arrayContainer {
	if v == nil || v.jsonType != Array {
		return nil
	}
	return v.value.(*arrayContainer)
}

func (v *Value) object() *objectContainer {
	if v == nil || v.jsonType != Object {
		return nil
	}
	return v.value.(*objectContainer)
}

// reset releases the current representation and leaves v Undefined.
// Released children are detached so they no longer report v as parent.
func (v *Value) reset() {
	switch v.jsonType {
	case Array:
		for _, c := range v.array().All() {
			if c.parent == v {
				c.parent = nil
			}
		}
	case Object:
		for _, c := range v.object().All() {
			if c.parent == v {
				c.parent = nil
			}
		}
	}
	v.jsonType = Undefined
	v.value = nil
}

// install sets a representation on an Undefined v and adopts its children.
func (v *Value) install(t Type, value interface{}) {
	v.jsonType = t
	v.value = value
	v.adoptChildren()
}

func (v *Value) adoptChildren() {
	switch v.jsonType {
	case Array:
		for _, c := range v.array().All() {
			c.parent = v
		}
	case Object:
		for _, c := range v.object().All() {
			c.parent = v
		}
	}
}

// repr returns a deep copy of the representation of v. Container copies
// are not parented yet.
func (v *Value) repr() (Type, interface{}) {
	switch v.Type() {
	case Undefined:
		return Undefined, nil
	case Array:
		return Array, v.array().Clone(func(c *Value) *Value { return c.Clone() })
	case Object:
		return Object, v.object().Clone(func(c *Value) *Value { return c.Clone() })
	default:
		return v.jsonType, v.value
	}
}

// Clone returns a freestanding deep copy of v.
func (v *Value) Clone() *Value {
	c := &Value{}
	c.install(v.repr())
	return c
}

// Assign replaces the content of v with a deep copy of src and returns v.
// v keeps its own place in its tree. src may live inside v.
func (v *Value) Assign(src *Value) *Value {
	if src == v {
		return v
	}
	t, value := src.repr()
	v.reset()
	v.install(t, value)
	return v
}

// Move hands the content of src over to v without copying and returns v.
// src is left Undefined in place. If src is an ancestor of v the content is
// copied instead and src is reset, which leaves v outside of src's tree.
func (v *Value) Move(src *Value) *Value {
	if src == nil {
		v.reset()
		return v
	}
	if src == v {
		return v
	}
	if src.isAncestorOf(v) {
		v.Assign(src)
		src.reset()
		return v
	}
	t, value := src.jsonType, src.value
	src.jsonType, src.value = Undefined, nil
	v.reset()
	v.install(t, value)
	return v
}

func (v *Value) isAncestorOf(n *Value) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == v {
			return true
		}
	}
	return false
}

// adopt makes the freestanding c a child of v, no copy is taken.
func (v *Value) adopt(c *Value) *Value {
	c.parent = v
	return c
}
