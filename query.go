package jsonvalue

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/theory/jsonpath"
)

// Query evaluates the RFC 9535 JSONPath expression expr against v and
// returns the matching values of v's own tree in document order, object
// members in member order. A value selected more than once is repeated.
func (v *Value) Query(expr string) ([]*Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "jsonvalue: invalid JSONPath %s", expr)
	}
	type located struct {
		val *Value
		pos []int
	}
	var found []located
	for _, n := range path.SelectLocated(v.Interface()) {
		if c := v.Find(n.Path.Pointer()); c != nil {
			found = append(found, located{c, positions(v, c)})
		}
	}
	// The selection runs over Go maps, so members come back unordered.
	slices.SortStableFunc(found, func(a, b located) int {
		return slices.Compare(a.pos, b.pos)
	})
	out := make([]*Value, len(found))
	for i, l := range found {
		out[i] = l.val
	}
	return out, nil
}

// positions lists the Pos of c and each of its ancestors below root,
// outermost first.
func positions(root, c *Value) []int {
	var pos []int
	for ; c != root && c.Parent() != nil; c = c.Parent() {
		pos = append(pos, c.Pos())
	}
	slices.Reverse(pos)
	return pos
}
