package art

import (
	"bytes"
	"iter"

	"github.com/npillmayer/art/arena"
)

// All returns a sequence over all entries in ascending key order.
//
// The entry just yielded may be erased during iteration.
func (t *Tree[V]) All() iter.Seq2[[]byte, V] {
	return t.ascendFrom(func() arena.Ref { return t.Begin().ref }, nil)
}

// Ascend returns a sequence over all entries with keys not less than from,
// in ascending key order.
func (t *Tree[V]) Ascend(from []byte) iter.Seq2[[]byte, V] {
	f := bytes.Clone(from)
	return t.ascendFrom(func() arena.Ref { return t.LowerBound(f).ref }, nil)
}

// ScanPrefix returns a sequence over all entries whose keys start with
// prefix, in ascending key order.
func (t *Tree[V]) ScanPrefix(prefix []byte) iter.Seq2[[]byte, V] {
	p := bytes.Clone(prefix)
	return t.ascendFrom(func() arena.Ref { return t.LowerBound(p).ref }, func(key []byte) bool {
		return bytes.HasPrefix(key, p)
	})
}

func (t *Tree[V]) ascendFrom(start func() arena.Ref, while func([]byte) bool) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for ref := start(); ref != t.sentinel; {
			n := t.node(ref)
			if while != nil && !while(n.key) {
				return
			}
			next := n.next
			if !yield(n.key, n.value) {
				return
			}
			ref = next
		}
	}
}

// Backward returns a sequence over all entries in descending key order.
//
// The entry just yielded may be erased during iteration.
func (t *Tree[V]) Backward() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for ref := t.Last().ref; ref != t.sentinel; {
			n := t.node(ref)
			prev := n.prev
			if !yield(n.key, n.value) {
				return
			}
			ref = prev
		}
	}
}
