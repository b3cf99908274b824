package art

import "github.com/npillmayer/art/arena"

// Iterator is a position within the ordered sequence of entries of a tree.
//
// Iterators are small values and are meant to be passed by value. An
// iterator stays valid until the entry it is positioned at is erased, or the
// tree is cleared or swapped. Inserting or erasing other entries does not
// affect it.
type Iterator[V any] struct {
	tree *Tree[V]
	ref  arena.Ref
}

// IsEnd reports whether the iterator is positioned past the last entry.
func (it Iterator[V]) IsEnd() bool {
	return it.tree == nil || it.ref == it.tree.sentinel
}

func (it Iterator[V]) entry() *node[V] {
	assert(!it.IsEnd(), "accessing entry of end iterator")
	n := it.tree.node(it.ref)
	assert(n.hasValue, "iterator positioned at erased entry")
	return n
}

// Key returns the key of the entry. The returned slice must not be modified.
func (it Iterator[V]) Key() []byte {
	return it.entry().key
}

// Value returns the value of the entry.
func (it Iterator[V]) Value() V {
	return it.entry().value
}

// SetValue replaces the value of the entry.
func (it Iterator[V]) SetValue(value V) {
	it.entry().value = value
}

// Next returns an iterator positioned at the following entry. Advancing the
// end iterator wraps around to the first entry.
func (it Iterator[V]) Next() Iterator[V] {
	if it.tree == nil || it.ref == arena.Nil {
		return it
	}
	return Iterator[V]{tree: it.tree, ref: it.tree.node(it.ref).next}
}

// Prev returns an iterator positioned at the preceding entry. Moving back
// from the end iterator yields the last entry.
func (it Iterator[V]) Prev() Iterator[V] {
	if it.tree == nil || it.ref == arena.Nil {
		return it
	}
	return Iterator[V]{tree: it.tree, ref: it.tree.node(it.ref).prev}
}

// Equal reports whether two iterators are positioned at the same entry of
// the same tree.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.tree == other.tree && it.ref == other.ref
}
