// Package sequence implements a position indexed list that grows on demand.
//
// Elements are meant to be pointers: the backing slice may be reallocated on
// growth, but the pointed-to elements never move.
package sequence

import "iter"

// List is an indexed sequence. The zero value is an empty list.
type List[T any] struct {
	items []T
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at n.
func (l *List[T]) At(n int) (T, bool) {
	if n < 0 || n >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[n], true
}

// Index returns the element at n. When n is past the end the list grows to
// n+1 elements, padding every new position with mk().
func (l *List[T]) Index(n int, mk func() T) T {
	for len(l.items) <= n {
		l.items = append(l.items, mk())
	}
	return l.items[n]
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Insert puts v before position pos. pos may equal Len.
func (l *List[T]) Insert(pos int, v T) bool {
	if pos < 0 || pos > len(l.items) {
		return false
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = v
	return true
}

// Delete removes the element at pos and returns it.
func (l *List[T]) Delete(pos int) (T, bool) {
	var zero T
	if pos < 0 || pos >= len(l.items) {
		return zero, false
	}
	v := l.items[pos]
	copy(l.items[pos:], l.items[pos+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, true
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// All yields index and element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.items); i++ {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}

// Clone returns a list holding cp applied to every element.
func (l *List[T]) Clone(cp func(T) T) *List[T] {
	c := &List[T]{items: make([]T, len(l.items))}
	for i, v := range l.items {
		c.items[i] = cp(v)
	}
	return c
}
