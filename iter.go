package jsonvalue

import (
	"iter"

	"github.com/d1ced/jsonvalue/internal/linkedmap"
)

// KeyValue pairs an element with the key holding it: a String for object
// members, an Integer for array elements and nil for scalars.
type KeyValue struct {
	Key   *Value
	Value *Value
}

type iterKind uint8

const (
	iterUndefined iterKind = iota
	iterArray
	iterObject
	iterBasic
)

// Iterator walks the elements of a value. Arrays yield their elements with
// an Integer key, objects their members with a String key and any other
// defined value yields itself once without a key. Undefined and empty
// containers yield nothing.
//
// The zero Iterator is exhausted. Mutating the container while iterating
// is allowed as long as the current element is not removed.
type Iterator struct {
	owner *Value
	kind  iterKind
	pos   int // array position or object slot id
	done  bool
	cur   KeyValue
}

// Iter returns an iterator positioned before the first element of v.
func (v *Value) Iter() *Iterator {
	it := &Iterator{owner: v, pos: -1}
	switch v.Type() {
	case Undefined:
		it.kind = iterUndefined
	case Array:
		it.kind = iterArray
	case Object:
		it.kind = iterObject
	default:
		it.kind = iterBasic
	}
	return it
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.done || it.owner == nil {
		return false
	}
	switch it.kind {
	case iterArray:
		it.pos++
		if c, ok := it.owner.array().At(it.pos); ok {
			it.cur = KeyValue{Key: Int(int64(it.pos)), Value: c}
			return true
		}
	case iterObject:
		o := it.owner.object()
		if it.pos < 0 {
			it.pos = o.First()
		} else {
			it.pos = o.Next(it.pos)
		}
		if it.pos != linkedmap.End {
			it.cur = KeyValue{Key: Str(o.Key(it.pos)), Value: o.Value(it.pos)}
			return true
		}
	case iterBasic:
		if it.pos < 0 {
			it.pos = 0
			it.cur = KeyValue{Value: it.owner}
			return true
		}
	}
	it.done = true
	it.cur = KeyValue{}
	return false
}

// Key returns the key of the current element, nil for scalars.
func (it *Iterator) Key() *Value { return it.cur.Key }

// Value returns the current element.
func (it *Iterator) Value() *Value { return it.cur.Value }

// Pair returns key and value of the current element.
func (it *Iterator) Pair() KeyValue { return it.cur }

// All yields the same key/value pairs as Iter.
func (v *Value) All() iter.Seq2[*Value, *Value] {
	return func(yield func(*Value, *Value) bool) {
		it := v.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
