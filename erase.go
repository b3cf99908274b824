package art

import "github.com/npillmayer/art/arena"

// eraseNode removes the value of a data node and restores path compression.
func (t *Tree[V]) eraseNode(ref arena.Ref) {
	n := t.node(ref)
	assert(n.hasValue, "erasing a node without value")
	t.unlink(ref)
	n.unsetValue()
	t.size--
	t.compact(ref)
	t.checkAfterMutation("erase")
}

// compact walks upward from ref and removes structural nodes with fewer than
// two children. A childless node is removed from its parent, which may leave
// the parent degenerate in turn. A node with a single child is merged into
// that child.
func (t *Tree[V]) compact(ref arena.Ref) {
	for ref != arena.Nil {
		n := t.node(ref)
		if n.hasValue {
			return
		}
		switch t.table(n).count() {
		case 0:
			parent := n.parent
			if parent == arena.Nil {
				t.root = arena.Nil
				t.freeNode(ref)
				T().Debugf("art: tree became empty")
				return
			}
			t.table(t.node(parent)).eraseChild(n.pbyte)
			t.freeNode(ref)
			t.maybeShrink(parent)
			ref = parent
		case 1:
			t.mergeIntoChild(ref)
			return
		default:
			return
		}
	}
}

// mergeIntoChild replaces a structural node with its only child, prepending
// the node's subfix and the discriminating byte to the child's subfix.
func (t *Tree[V]) mergeIntoChild(ref arena.Ref) {
	n := t.node(ref)
	only := t.onlyChild(n)
	child := t.node(only.ref)
	merged := make([]byte, 0, len(n.subfix)+1+len(child.subfix))
	merged = append(merged, n.subfix...)
	merged = append(merged, only.c)
	merged = append(merged, child.subfix...)
	child.setSubfix(merged)
	t.replaceInSlot(t.slotOf(ref), only.ref)
	t.freeNode(ref)
}
