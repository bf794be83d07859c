package jsonvalue

import (
	"github.com/pkg/errors"

	"github.com/d1ced/jsonvalue/internal/linkedmap"
)

// Len gives the number of elements of an array or object, and 0 for
// anything else.
func (v *Value) Len() int {
	switch v.Type() {
	case Array:
		return v.array().Len()
	case Object:
		return v.object().Len()
	default:
		return 0
	}
}

// Has reports whether v is an object holding key.
func (v *Value) Has(key string) bool {
	o := v.object()
	return o != nil && o.Has(key)
}

// Get returns the member key of the object v. It is nil if v is not an
// object or has no such key. Get never changes v.
func (v *Value) Get(key string) *Value {
	if o := v.object(); o != nil {
		if c, ok := o.Get(key); ok {
			return c
		}
	}
	return nil
}

// At returns the element at position pos of an array or object, objects
// counted in key order. It is nil when pos is out of range.
func (v *Value) At(pos int) *Value {
	switch v.Type() {
	case Array:
		c, _ := v.array().At(pos)
		return c
	case Object:
		o := v.object()
		if id := o.Nth(pos); id >= 0 {
			return o.Value(id)
		}
	}
	return nil
}

// Keys returns the member names of an object in order. It is nil for
// anything else.
func (v *Value) Keys() []string {
	if o := v.object(); o != nil {
		return o.Keys()
	}
	return nil
}

// Member returns the member key of v, creating it as Undefined when missing.
// If v is not an object it is reset to an empty object first.
func (v *Value) Member(key string) *Value {
	if v.jsonType != Object {
		v.reset()
		v.install(Object, zeroOf(Object))
	}
	c, _ := v.object().GetOrInsert(key, func() *Value { return &Value{parent: v} })
	c.parent = v
	return c
}

// Elem returns the element i of v. If v is not an array it is reset to an
// empty array first; if i is past the end the array grows and the new
// positions are Undefined. Elem panics if i is negative.
func (v *Value) Elem(i int) *Value {
	if i < 0 {
		panic(errors.Errorf("jsonvalue: negative index %d", i))
	}
	if v.jsonType != Array {
		v.reset()
		v.install(Array, zeroOf(Array))
	}
	return v.array().Index(i, func() *Value { return &Value{parent: v} })
}

// Set stores a copy of val under key and returns the stored value.
func (v *Value) Set(key string, val *Value) *Value {
	return v.Member(key).Assign(val)
}

// Append adds a copy of val at the end of the array v and returns the new
// element. A non-array v becomes an empty array first.
func (v *Value) Append(val *Value) *Value {
	n := 0
	if a := v.array(); a != nil {
		n = a.Len()
	}
	return v.Elem(n).Assign(val)
}

// Insert puts a copy of val before position pos of the array v. It reports
// false and does nothing if v is not an array or pos is past the end.
func (v *Value) Insert(pos int, val *Value) bool {
	a := v.array()
	if a == nil || pos < 0 || pos > a.Len() {
		return false
	}
	return a.Insert(pos, v.adopt(val.Clone()))
}

// InsertMember puts a copy of val under key before position pos of the
// object v. An existing key is removed first. It reports false and does
// nothing if v is not an object or pos is past the end.
func (v *Value) InsertMember(pos int, key string, val *Value) bool {
	o := v.object()
	if o == nil || pos < 0 || pos > o.Len() {
		return false
	}
	if old, ok := o.Get(key); ok {
		old.parent = nil
	}
	o.InsertAt(pos, key, v.adopt(val.Clone()))
	return true
}

// Put stores a copy of val under key as the last member of v and returns
// it. An existing key is moved to the end and its old value detached, unlike
// Set which keeps the position. If v is not an object it is reset to an
// empty object first.
func (v *Value) Put(key string, val *Value) *Value {
	c := val.Clone()
	if v.jsonType != Object {
		v.reset()
		v.install(Object, zeroOf(Object))
	}
	o := v.object()
	if old, ok := o.Get(key); ok {
		old.parent = nil
	}
	o.Set(key, v.adopt(c))
	return c
}

// Delete removes key from the object v. The removed value is detached.
func (v *Value) Delete(key string) bool {
	o := v.object()
	if o == nil {
		return false
	}
	id := o.Find(key)
	if id == linkedmap.End {
		return false
	}
	o.Value(id).parent = nil
	o.DeleteSlot(id)
	return true
}

// DeleteAt removes the element at position i of the array v.
func (v *Value) DeleteAt(i int) bool {
	a := v.array()
	if a == nil {
		return false
	}
	c, ok := a.Delete(i)
	if ok {
		c.parent = nil
	}
	return ok
}

// Erase removes the element named by key: an index for arrays (key is
// coerced with AsInteger) and a member name for objects (AsString).
func (v *Value) Erase(key *Value) bool {
	switch v.Type() {
	case Array:
		return v.DeleteAt(int(key.AsInteger(-1)))
	case Object:
		return v.Delete(key.AsString(""))
	default:
		return false
	}
}

// Clear removes all elements of an array or object. Other values are left
// as they are.
func (v *Value) Clear() {
	switch v.Type() {
	case Array:
		a := v.array()
		for _, c := range a.All() {
			c.parent = nil
		}
		a.Clear()
	case Object:
		o := v.object()
		for _, c := range o.All() {
			c.parent = nil
		}
		o.Clear()
	}
}
