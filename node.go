package art

import (
	"bytes"

	"github.com/npillmayer/art/arena"
)

// node is the shared header of all fanout classes. The class-specific child
// table lives in a separate pool and is addressed by (kind, table).
type node[V any] struct {
	kind  nodeKind
	table arena.Ref
	// subfix labels the edge from the parent to this node, without the
	// discriminating byte. For data nodes it is the tail of key, otherwise
	// it is owned by the node. Subfixes are never appended to in place.
	subfix   []byte
	hasValue bool
	key      []byte
	value    V
	parent   arena.Ref
	pbyte    byte // discriminating byte selecting this node in parent
	prev     arena.Ref
	next     arena.Ref
}

// setSubfix sets the edge label of n. A data node re-points its subfix into
// its own key, a structural node stores a private copy.
func (n *node[V]) setSubfix(b []byte) {
	if n.hasValue {
		l := len(b)
		assert(l <= len(n.key), "subfix longer than key of data node")
		tail := n.key[len(n.key)-l : len(n.key) : len(n.key)]
		assert(bytes.Equal(tail, b), "subfix of data node is not a tail of its key")
		n.subfix = tail
		return
	}
	n.subfix = bytes.Clone(b)
}

// setValue turns n into a data node for key.
func (n *node[V]) setValue(key []byte, value V) {
	n.key = bytes.Clone(key)
	if n.key == nil {
		n.key = []byte{}
	}
	n.value = value
	n.hasValue = true
	n.setSubfix(n.subfix)
}

// unsetValue turns n into a structural node.
func (n *node[V]) unsetValue() {
	assert(n.hasValue, "unsetting value of a node without value")
	var zero V
	n.hasValue = false
	n.value = zero
	n.key = nil
	n.setSubfix(n.subfix)
}

// --- Node allocation -------------------------------------------------------

func (t *Tree[V]) node(ref arena.Ref) *node[V] {
	return t.nodes.At(ref)
}

func (t *Tree[V]) table(n *node[V]) childTable {
	return t.tables.at(n.kind, n.table)
}

// newNode allocates a structural node of class kind4 with an owned subfix.
func (t *Tree[V]) newNode(subfix []byte) arena.Ref {
	ref, n := t.nodes.Alloc()
	n.kind = kind4
	n.table = t.tables.alloc(kind4)
	n.setSubfix(subfix)
	return ref
}

// newDataNode allocates a node4 holding key and value. Its subfix is the
// trailing subfixLen bytes of key.
func (t *Tree[V]) newDataNode(key []byte, value V, subfixLen int) arena.Ref {
	ref, n := t.nodes.Alloc()
	n.kind = kind4
	n.table = t.tables.alloc(kind4)
	n.setValue(key, value)
	n.subfix = n.key[len(n.key)-subfixLen : len(n.key) : len(n.key)]
	return ref
}

func (t *Tree[V]) freeNode(ref arena.Ref) {
	n := t.node(ref)
	assert(!n.hasValue, "freeing a data node")
	t.tables.free(n.kind, n.table)
	t.nodes.Free(ref)
}

// --- Child slots -----------------------------------------------------------

// slotOf returns the slot in which ref hangs.
func (t *Tree[V]) slotOf(ref arena.Ref) childSlot {
	n := t.node(ref)
	if n.parent == arena.Nil {
		return rootSlot
	}
	pos, ok := t.table(t.node(n.parent)).findChild(n.pbyte)
	assert(ok, "node is not registered with its parent")
	return childSlot{owner: n.parent, c: n.pbyte, pos: pos}
}

// replaceInSlot makes ref the occupant of slot, taking over the parent link.
func (t *Tree[V]) replaceInSlot(slot childSlot, ref arena.Ref) {
	n := t.node(ref)
	if slot.owner == arena.Nil {
		t.root = ref
		n.parent, n.pbyte = arena.Nil, 0
		return
	}
	t.table(t.node(slot.owner)).setChildAt(slot.pos, ref)
	n.parent, n.pbyte = slot.owner, slot.c
}

// attachChild inserts child under parent for byte c. The parent must have
// room for it.
func (t *Tree[V]) attachChild(parent arena.Ref, c byte, child arena.Ref) {
	_, ok := t.table(t.node(parent)).tryInsertChild(c, child)
	assert(ok, "attaching child to a full node")
	n := t.node(child)
	n.parent, n.pbyte = parent, c
}

// onlyChild returns the single child of a node with exactly one child.
func (t *Tree[V]) onlyChild(n *node[V]) childEntry {
	tab := t.table(n)
	assert(tab.count() == 1, "node does not have exactly one child")
	c, pos, ok := tab.findGEQChild(0)
	assert(ok, "child count mismatch")
	return childEntry{c: c, ref: tab.childAt(pos)}
}
