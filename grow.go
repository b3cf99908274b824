package art

import "github.com/npillmayer/art/arena"

// grow moves the children of a full node into a table of the next fanout
// class. The node keeps its handle, therefore neither its parent slot nor its
// list links have to be rewritten.
func (t *Tree[V]) grow(ref arena.Ref) {
	n := t.node(ref)
	assert(n.kind != kind256, "node256 cannot grow")
	t.retable(ref, n.kind+1)
	T().Debugf("art: grew node %d to %s", ref, n.kind)
}

// Shrink thresholds. A node shrinks when its child count drops to half the
// capacity of the next smaller class, which keeps a node at a class boundary
// from oscillating between two classes.
var shrinkAt = [...]int{
	kind16:  2,
	kind48:  8,
	kind256: 24,
}

// maybeShrink moves the children of a sparse node into a table of the next
// smaller fanout class.
func (t *Tree[V]) maybeShrink(ref arena.Ref) {
	n := t.node(ref)
	if n.kind == kind4 {
		return
	}
	if t.table(n).count() > shrinkAt[n.kind] {
		return
	}
	t.retable(ref, n.kind-1)
	T().Debugf("art: shrunk node %d to %s", ref, n.kind)
}

func (t *Tree[V]) retable(ref arena.Ref, kind nodeKind) {
	n := t.node(ref)
	old := t.table(n)
	tref := t.tables.alloc(kind)
	tab := t.tables.at(kind, tref)
	var buf [256]childEntry
	for _, e := range old.appendChildren(buf[:0]) {
		_, ok := tab.tryInsertChild(e.c, e.ref)
		assert(ok, "children do not fit into new node class")
	}
	t.tables.free(n.kind, n.table)
	n.kind, n.table = kind, tref
}
