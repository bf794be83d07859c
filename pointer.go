package jsonvalue

import (
	"strconv"
	"strings"
)

// Parent returns the container holding v, nil for roots.
func (v *Value) Parent() *Value {
	if v == nil {
		return nil
	}
	return v.parent
}

// Root returns the outermost container above v, or v itself.
func (v *Value) Root() *Value {
	if v == nil {
		return nil
	}
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Key returns the key holding v in its parent: a String for object members
// and an Integer for array elements. It is nil for roots.
func (v *Value) Key() *Value {
	p := v.Parent()
	switch p.Type() {
	case Array:
		for i, c := range p.array().All() {
			if c == v {
				return Int(int64(i))
			}
		}
	case Object:
		for k, c := range p.object().All() {
			if c == v {
				return Str(k)
			}
		}
	}
	return nil
}

// Pos returns the position of v in its parent, objects counted in key
// order, and -1 for roots.
func (v *Value) Pos() int {
	p := v.Parent()
	n := 0
	for _, c := range p.All() {
		if c == v {
			return n
		}
		n++
	}
	return -1
}

// Pointer returns the JSON Pointer of v relative to its root. Member names
// are escaped, so the root's EvalPointer always finds v again. The root has
// the empty pointer.
func (v *Value) Pointer() string {
	var segs []string
	for n := v; n.Parent() != nil; n = n.parent {
		k := n.Key()
		if k.IsString() {
			segs = append(segs, EscapeToken(k.value.(string)))
		} else {
			segs = append(segs, k.AsString(""))
		}
	}
	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

// EvalPointer resolves ptr starting at the root of v's tree. Member names
// are unescaped per RFC 6901 and array segments are decimal indexes; with
// zeroIndexOnly set every valid array segment selects element 0. It returns
// nil as soon as a segment does not resolve.
func (v *Value) EvalPointer(ptr string, zeroIndexOnly bool) *Value {
	return v.Root().walk(SplitPointer(ptr), zeroIndexOnly)
}

// Find resolves ptr relative to v instead of its root.
func (v *Value) Find(ptr string) *Value {
	return v.walk(SplitPointer(ptr), false)
}

func (v *Value) walk(segs []string, zeroIndexOnly bool) *Value {
	cur := v
	for _, seg := range segs {
		switch cur.Type() {
		case Array:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 {
				return nil
			}
			if zeroIndexOnly {
				i = 0
			}
			c, ok := cur.array().At(i)
			if !ok {
				return nil
			}
			cur = c
		case Object:
			c := cur.Get(UnescapeToken(seg))
			if c == nil {
				return nil
			}
			cur = c
		default:
			return nil
		}
	}
	return cur
}

// IsReference reports whether v is a String holding a pointer other than
// its own.
func (v *Value) IsReference() bool {
	if !v.IsString() {
		return false
	}
	s := v.value.(string)
	return strings.HasPrefix(s, "/") && s != v.Pointer()
}

// Reference follows a chain of references from v and returns the first
// value that is not a reference. A chain that runs into a cycle or into a
// pointer that does not resolve gives v.
func (v *Value) Reference() *Value {
	seen := map[*Value]bool{}
	cur := v
	for cur.IsReference() {
		if seen[cur] {
			return v
		}
		seen[cur] = true
		cur = cur.EvalPointer(cur.value.(string), false)
		if cur == nil {
			return v
		}
	}
	return cur
}
