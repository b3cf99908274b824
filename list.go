package art

import "github.com/npillmayer/art/arena"

// The data nodes of a tree form a circular, doubly linked list in ascending
// key order. The sentinel node anchors the list: sentinel.next is the
// smallest entry, sentinel.prev the largest.

// linkBefore inserts ref into the list immediately before at.
func (t *Tree[V]) linkBefore(ref, at arena.Ref) {
	n, succ := t.node(ref), t.node(at)
	pred := t.node(succ.prev)
	n.prev, n.next = succ.prev, at
	pred.next = ref
	succ.prev = ref
}

// linkAfter inserts ref into the list immediately after at.
func (t *Tree[V]) linkAfter(ref, at arena.Ref) {
	t.linkBefore(ref, t.node(at).next)
}

func (t *Tree[V]) unlink(ref arena.Ref) {
	n := t.node(ref)
	t.node(n.prev).next = n.next
	t.node(n.next).prev = n.prev
	n.prev, n.next = arena.Nil, arena.Nil
}

// minData returns the data node with the smallest key in the subtree at ref.
func (t *Tree[V]) minData(ref arena.Ref) arena.Ref {
	for {
		n := t.node(ref)
		if n.hasValue {
			return ref
		}
		tab := t.table(n)
		_, pos, ok := tab.findGEQChild(0)
		assert(ok, "structural node without children")
		ref = tab.childAt(pos)
	}
}

// maxData returns the data node with the greatest key in the subtree at ref.
func (t *Tree[V]) maxData(ref arena.Ref) arena.Ref {
	for {
		n := t.node(ref)
		tab := t.table(n)
		_, pos, ok := tab.findLEQChild(0xff)
		if !ok {
			assert(n.hasValue, "leaf node without value")
			return ref
		}
		ref = tab.childAt(pos)
	}
}
