package art

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/art/arena"
)

// Tree is an ordered map from byte-string keys to values of type V, organized
// as an Adaptive Radix Tree.
//
// A tree created by
//
//	Tree[V]{}
//
// is a valid, empty tree.
//
// Keys are copied on insertion. Keys handed out by a tree (from iterators or
// sequences) refer to internal storage and must not be modified by clients.
type Tree[V any] struct {
	cfg      Config
	nodes    arena.Pool[node[V]]
	tables   tables
	root     arena.Ref
	sentinel arena.Ref // anchor of the ordered list, never a data node
	size     int
}

// New creates an empty tree with default configuration.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[V any](cfg Config) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[V]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config {
	return t.cfg.normalized()
}

// init allocates the sentinel node on first use.
func (t *Tree[V]) init() {
	if t.sentinel != arena.Nil {
		return
	}
	if t.nodes.Cap() == 0 {
		size := t.cfg.normalized().PageSize
		err := t.nodes.SetPageSize(size)
		assert(err == nil, "cannot configure node arena")
		err = t.tables.setPageSize(size)
		assert(err == nil, "cannot configure table arenas")
	}
	ref, s := t.nodes.Alloc()
	s.prev, s.next = ref, ref
	t.sentinel = ref
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// NodeCount returns the number of nodes the tree currently allocates,
// including structural nodes. It is meant for diagnostics.
func (t *Tree[V]) NodeCount() int {
	if t == nil || t.sentinel == arena.Nil {
		return 0
	}
	return t.nodes.Len() - 1
}

// Insert adds key with value to the tree, if the key is not yet present.
// It returns an iterator positioned at the entry for key, and whether an
// insertion took place. An existing entry is left untouched.
func (t *Tree[V]) Insert(key []byte, value V) (Iterator[V], bool) {
	ref, inserted := t.insert(key, value, false)
	return Iterator[V]{tree: t, ref: ref}, inserted
}

// Set inserts key with value or replaces the value of an existing entry.
// It returns whether a new entry has been created.
func (t *Tree[V]) Set(key []byte, value V) (Iterator[V], bool) {
	ref, inserted := t.insert(key, value, true)
	return Iterator[V]{tree: t, ref: ref}, inserted
}

// InsertAll inserts all key/value pairs from seq, skipping keys already
// present. It returns the number of entries inserted.
func (t *Tree[V]) InsertAll(seq iter.Seq2[[]byte, V]) int {
	count := 0
	for k, v := range seq {
		if _, ok := t.insert(k, v, false); ok {
			count++
		}
	}
	return count
}

// Find looks up key. If key is not present, the end iterator and false are
// returned.
func (t *Tree[V]) Find(key []byte) (Iterator[V], bool) {
	if t.root == arena.Nil {
		return t.End(), false
	}
	res := t.findLastNode(key)
	if res.consumed != len(key) || !t.subfixDone(res) || !t.node(res.node).hasValue {
		return t.End(), false
	}
	return Iterator[V]{tree: t, ref: res.node}, true
}

// Get returns the value stored for key.
func (t *Tree[V]) Get(key []byte) (V, bool) {
	if it, ok := t.Find(key); ok {
		return it.Value(), true
	}
	var zero V
	return zero, false
}

// Erase removes the entry for key. It returns false if key is not present.
func (t *Tree[V]) Erase(key []byte) bool {
	it, ok := t.Find(key)
	if !ok {
		return false
	}
	t.eraseNode(it.ref)
	return true
}

// EraseAt removes the entry an iterator is positioned at, and returns an
// iterator positioned at the following entry.
// The iterator must belong to t and must not be the end iterator.
func (t *Tree[V]) EraseAt(it Iterator[V]) Iterator[V] {
	assert(it.tree == t, "iterator does not belong to tree")
	assert(!it.IsEnd(), "erasing at end iterator")
	next := t.node(it.ref).next
	t.eraseNode(it.ref)
	return Iterator[V]{tree: t, ref: next}
}

// LowerBound returns an iterator positioned at the first entry with a key
// not less than key, or the end iterator.
func (t *Tree[V]) LowerBound(key []byte) Iterator[V] {
	return Iterator[V]{tree: t, ref: t.bound(key, false)}
}

// UpperBound returns an iterator positioned at the first entry with a key
// greater than key, or the end iterator.
func (t *Tree[V]) UpperBound(key []byte) Iterator[V] {
	return Iterator[V]{tree: t, ref: t.bound(key, true)}
}

// bound locates the divergence point of key and derives the first entry
// not less than (or, with strict set, greater than) key from it.
func (t *Tree[V]) bound(key []byte, strict bool) arena.Ref {
	if t.root == arena.Nil {
		return t.sentinel
	}
	res := t.findLastNode(key)
	n := t.node(res.node)
	if !t.subfixDone(res) {
		// key diverges inside the subfix: the whole subtree is either
		// greater or smaller than key
		if res.consumed == len(key) || key[res.consumed] < n.subfix[res.matched] {
			return t.minData(res.node)
		}
		return t.node(t.maxData(res.node)).next
	}
	if res.consumed == len(key) {
		if !n.hasValue {
			return t.minData(res.node)
		}
		if strict {
			return n.next
		}
		return res.node
	}
	// no child for the next key byte
	tab := t.table(n)
	if _, pos, ok := tab.findGEQChild(key[res.consumed]); ok {
		return t.minData(tab.childAt(pos))
	}
	return t.node(t.maxData(res.node)).next
}

// Begin returns an iterator positioned at the smallest entry, or the end
// iterator for an empty tree.
func (t *Tree[V]) Begin() Iterator[V] {
	if t.sentinel == arena.Nil {
		return t.End()
	}
	return Iterator[V]{tree: t, ref: t.node(t.sentinel).next}
}

// Last returns an iterator positioned at the greatest entry, or the end
// iterator for an empty tree.
func (t *Tree[V]) Last() Iterator[V] {
	if t.sentinel == arena.Nil {
		return t.End()
	}
	return Iterator[V]{tree: t, ref: t.node(t.sentinel).prev}
}

// End returns the iterator past the greatest entry.
func (t *Tree[V]) End() Iterator[V] {
	return Iterator[V]{tree: t, ref: t.sentinel}
}

// Clear removes all entries and releases all nodes.
func (t *Tree[V]) Clear() {
	t.nodes.Reset()
	t.tables.reset()
	t.root, t.sentinel = arena.Nil, arena.Nil
	t.size = 0
	T().Debugf("art: tree cleared")
}

// Clone returns a deep copy of the tree structure. Values are copied by
// assignment. Iterators of t do not apply to the clone.
func (t *Tree[V]) Clone() *Tree[V] {
	if t == nil {
		return nil
	}
	return &Tree[V]{
		cfg:      t.cfg,
		nodes:    *t.nodes.Clone(),
		tables:   t.tables.clone(),
		root:     t.root,
		sentinel: t.sentinel,
		size:     t.size,
	}
}

// Swap exchanges the contents of two trees. Existing iterators of both trees
// are invalidated.
func (t *Tree[V]) Swap(other *Tree[V]) {
	*t, *other = *other, *t
}

func (t *Tree[V]) checkAfterMutation(op string) {
	if !t.cfg.CheckInvariants {
		return
	}
	if err := t.Check(); err != nil {
		T().Errorf("art: invariants violated after %s: %v", op, err)
		panic(err)
	}
}
