package jsonvalue

// Equal implements the loose equality of JavaScript's == for v and w.
// Values of the same type compare by content, arrays and objects by their
// compact text, so member order matters. For differing scalar types w is
// converted to the type of v first, which makes the relation asymmetric:
// Equal(Int(1), Str("1.5")) holds while Equal(Str("1.5"), Int(1)) does not.
// Containers never equal a value of another type, nor does Undefined.
func Equal(v, w *Value) bool {
	vt, wt := v.Type(), w.Type()
	if vt == wt {
		switch vt {
		case Undefined:
			return true
		case Array, Object:
			return v.String() == w.String()
		default:
			return v.value == w.value
		}
	}
	switch {
	case vt == Array, vt == Object, wt == Array, wt == Object:
		return false
	case vt == Undefined, wt == Undefined:
		return false
	}
	switch vt {
	case Boolean:
		return v.value.(bool) == w.AsBoolean(false)
	case Integer:
		i, ok := w.toInteger()
		return ok && v.value.(int64) == i
	case Number:
		f, ok := w.toNumber()
		return ok && v.value.(float64) == f
	case String:
		return v.value.(string) == w.AsString("")
	}
	return false
}

// Equal is the method form of Equal(v, w).
func (v *Value) Equal(w *Value) bool {
	return Equal(v, w)
}

// Plus merges w into a copy of v and returns the result.
// Undefined yields w. Booleans combine with a logical and, numbers add w
// converted to the type of v and strings concatenate. Arrays concatenate
// with arrays and take any other defined value as a new element. Objects
// are merged member by member with Plus; a scalar w is merged into the
// member named by w's text.
func Plus(v, w *Value) *Value {
	switch v.Type() {
	case Undefined:
		return w.Clone()
	case Boolean:
		return Bool(v.value.(bool) && w.AsBoolean(false))
	case Integer:
		return Int(v.value.(int64) + w.AsInteger(0))
	case Number:
		return Float(v.value.(float64) + w.AsNumber(0))
	case String:
		return Str(v.value.(string) + w.AsString(""))
	}
	return merge(v, w, Plus)
}

// Or is Plus with a preference for v: defined scalars on the left win.
// Arrays still concatenate and objects are merged member by member with Or.
func Or(v, w *Value) *Value {
	switch v.Type() {
	case Undefined:
		return w.Clone()
	case Array, Object:
		return merge(v, w, Or)
	}
	return v.Clone()
}

// Plus is the method form of Plus(v, w).
func (v *Value) Plus(w *Value) *Value { return Plus(v, w) }

// Or is the method form of Or(v, w).
func (v *Value) Or(w *Value) *Value { return Or(v, w) }

func merge(v, w *Value, op func(v, w *Value) *Value) *Value {
	rv := v.Clone()
	if w.IsUndefined() {
		return rv
	}
	switch rv.Type() {
	case Array:
		if wa := w.array(); wa != nil {
			for _, c := range wa.All() {
				rv.Append(c)
			}
			return rv
		}
		rv.Append(w)
	case Object:
		if wo := w.object(); wo != nil {
			for k, c := range wo.All() {
				rv.Member(k).Move(op(rv.Get(k), c))
			}
			return rv
		}
		k := w.AsString("")
		rv.Member(k).Move(op(rv.Get(k), w))
	}
	return rv
}
