// Package linkedmap implements an insertion ordered map whose stored values
// keep their slot when other keys are inserted or deleted.
//
// Slots live in a growable arena and are chained by a doubly linked order
// list over slot ids. Deleted slots go to a free list and are reused by later
// inserts. The key index only serves lookups; iteration always follows the
// order list.
package linkedmap

import "iter"

// End is the slot id returned when a walk runs past the last element.
const End = -1

type slot[K comparable, V any] struct {
	key        K
	value      V
	prev, next int
	used       bool
}

// Map is an ordered map. The zero value is not usable, call New.
type Map[K comparable, V any] struct {
	index      map[K]int
	slots      []slot[K, V]
	free       []int
	head, tail int
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int),
		head:  End,
		tail:  End,
	}
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int {
	return len(m.index)
}

// Has reports whether key is stored.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	id, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.slots[id].value, true
}

// Find returns the slot id holding key or End.
func (m *Map[K, V]) Find(key K) int {
	if id, ok := m.index[key]; ok {
		return id
	}
	return End
}

// GetOrInsert returns the value for key. A missing key is appended with the
// value produced by mk and inserted is true.
func (m *Map[K, V]) GetOrInsert(key K, mk func() V) (v V, inserted bool) {
	if id, ok := m.index[key]; ok {
		return m.slots[id].value, false
	}
	id := m.alloc(key, mk())
	m.link(id, End)
	return m.slots[id].value, true
}

// Set stores value under key at the end of the order. An existing key is
// deleted first, so setting it again moves it to the back.
func (m *Map[K, V]) Set(key K, value V) int {
	m.Delete(key)
	id := m.alloc(key, value)
	m.link(id, End)
	return id
}

// InsertAt deletes key if present and then inserts it before the element at
// ordinal pos. A pos at or past Len appends.
func (m *Map[K, V]) InsertAt(pos int, key K, value V) int {
	m.Delete(key)
	before := m.Nth(pos)
	id := m.alloc(key, value)
	m.link(id, before)
	return id
}

// Delete removes key and reports whether it was stored.
func (m *Map[K, V]) Delete(key K) bool {
	id, ok := m.index[key]
	if !ok {
		return false
	}
	m.DeleteSlot(id)
	return true
}

// DeleteSlot removes the element stored at slot id and returns the id of the
// element that followed it.
func (m *Map[K, V]) DeleteSlot(id int) int {
	if id < 0 || id >= len(m.slots) || !m.slots[id].used {
		return End
	}
	s := &m.slots[id]
	next := s.next
	if s.prev != End {
		m.slots[s.prev].next = s.next
	} else {
		m.head = s.next
	}
	if s.next != End {
		m.slots[s.next].prev = s.prev
	} else {
		m.tail = s.prev
	}
	delete(m.index, s.key)
	*s = slot[K, V]{prev: End, next: End}
	m.free = append(m.free, id)
	return next
}

// Clear removes all elements.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]int)
	m.slots = m.slots[:0]
	m.free = m.free[:0]
	m.head, m.tail = End, End
}

// Keys returns the keys in order.
func (m *Map[K, V]) Keys() []K {
	kk := make([]K, 0, m.Len())
	for id := m.head; id != End; id = m.slots[id].next {
		kk = append(kk, m.slots[id].key)
	}
	return kk
}

// Nth returns the slot id of the element at ordinal n or End.
func (m *Map[K, V]) Nth(n int) int {
	if n < 0 {
		return End
	}
	id := m.head
	for ; id != End && n > 0; n-- {
		id = m.slots[id].next
	}
	return id
}

// First returns the slot id of the first element or End.
func (m *Map[K, V]) First() int {
	return m.head
}

// Next returns the slot id following id or End.
func (m *Map[K, V]) Next(id int) int {
	if id < 0 || id >= len(m.slots) {
		return End
	}
	return m.slots[id].next
}

// Key returns the key stored at slot id.
func (m *Map[K, V]) Key(id int) K {
	return m.slots[id].key
}

// Value returns the value stored at slot id.
func (m *Map[K, V]) Value(id int) V {
	return m.slots[id].value
}

// All yields key and value pairs in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for id := m.head; id != End; {
			next := m.slots[id].next
			if !yield(m.slots[id].key, m.slots[id].value) {
				return
			}
			id = next
		}
	}
}

// Clone returns a map with the same order whose values are produced by cp.
func (m *Map[K, V]) Clone(cp func(V) V) *Map[K, V] {
	c := New[K, V]()
	c.slots = make([]slot[K, V], 0, m.Len())
	for id := m.head; id != End; id = m.slots[id].next {
		nid := c.alloc(m.slots[id].key, cp(m.slots[id].value))
		c.link(nid, End)
	}
	return c
}

func (m *Map[K, V]) alloc(key K, value V) int {
	var id int
	if n := len(m.free); n > 0 {
		id = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		id = len(m.slots)
		m.slots = append(m.slots, slot[K, V]{})
	}
	m.slots[id] = slot[K, V]{key: key, value: value, prev: End, next: End, used: true}
	m.index[key] = id
	return id
}

// link places id before the slot before, or at the tail when before is End.
func (m *Map[K, V]) link(id, before int) {
	s := &m.slots[id]
	if before == End {
		s.prev = m.tail
		if m.tail != End {
			m.slots[m.tail].next = id
		} else {
			m.head = id
		}
		m.tail = id
		return
	}
	b := &m.slots[before]
	s.next = before
	s.prev = b.prev
	if b.prev != End {
		m.slots[b.prev].next = id
	} else {
		m.head = id
	}
	b.prev = id
}
