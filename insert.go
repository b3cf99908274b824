package art

import "github.com/npillmayer/art/arena"

// insert adds key to the tree. If the key is already present, it returns the
// existing node and false; with assign set, the existing value is replaced.
func (t *Tree[V]) insert(key []byte, value V, assign bool) (arena.Ref, bool) {
	t.init()
	if t.root == arena.Nil {
		ref := t.newDataNode(key, value, len(key))
		t.replaceInSlot(rootSlot, ref)
		t.linkBefore(ref, t.sentinel)
		t.size++
		t.checkAfterMutation("insert")
		return ref, true
	}
	res := t.findLastNode(key)
	n := t.node(res.node)
	subfixDone := t.subfixDone(res)
	keyDone := res.consumed == len(key)
	var ref arena.Ref
	switch {
	case subfixDone && keyDone && n.hasValue:
		if assign {
			n.value = value
		}
		return res.node, false
	case subfixDone && keyDone:
		ref = t.attachValue(res, key, value)
	case !subfixDone && !keyDone:
		ref = t.splitWithSibling(res, key, value)
	case subfixDone && !keyDone:
		ref = t.insertChild(res, key, value)
	case !subfixDone && keyDone:
		ref = t.splitWithValue(res, key, value)
	default:
		panic("art: unreachable insert case")
	}
	t.size++
	t.checkAfterMutation("insert")
	return ref, true
}

// attachValue turns the structural node at which the key ends into a data
// node. It becomes the smallest key of its own subtree.
func (t *Tree[V]) attachValue(res findResult, key []byte, value V) arena.Ref {
	succ := t.minData(res.node)
	t.node(res.node).setValue(key, value)
	t.linkBefore(res.node, succ)
	return res.node
}

// splitWithSibling splits the subfix of the stop node at the point of
// divergence. A new structural node takes the common part, with the old node
// and a new data node as its two children.
func (t *Tree[V]) splitWithSibling(res findResult, key []byte, value V) arena.Ref {
	old := t.node(res.node)
	m, k := res.matched, res.consumed
	oc, nc := old.subfix[m], key[k]
	split := t.newNode(old.subfix[:m])
	t.replaceInSlot(res.slot, split)
	old.setSubfix(old.subfix[m+1:])
	t.attachChild(split, oc, res.node)
	leaf := t.newDataNode(key, value, len(key)-k-1)
	t.attachChild(split, nc, leaf)
	if oc > nc {
		t.linkBefore(leaf, t.minData(res.node))
	} else {
		t.linkAfter(leaf, t.maxData(res.node))
	}
	return leaf
}

// splitWithValue handles a key ending inside the subfix of the stop node.
// The new data node takes the common part and adopts the old node.
func (t *Tree[V]) splitWithValue(res findResult, key []byte, value V) arena.Ref {
	old := t.node(res.node)
	m := res.matched
	oc := old.subfix[m]
	split := t.newDataNode(key, value, m)
	t.replaceInSlot(res.slot, split)
	old.setSubfix(old.subfix[m+1:])
	t.attachChild(split, oc, res.node)
	t.linkBefore(split, t.minData(res.node))
	return split
}

// insertChild adds a new data node as a child of the stop node, growing the
// stop node if it is full.
func (t *Tree[V]) insertChild(res findResult, key []byte, value V) arena.Ref {
	c := key[res.consumed]
	leaf := t.newDataNode(key, value, len(key)-res.consumed-1)
	for {
		if _, ok := t.table(t.node(res.node)).tryInsertChild(c, leaf); ok {
			break
		}
		t.grow(res.node)
	}
	l := t.node(leaf)
	l.parent, l.pbyte = res.node, c
	tab := t.table(t.node(res.node))
	if c < 0xff {
		if _, pos, ok := tab.findGEQChild(c + 1); ok {
			t.linkBefore(leaf, t.minData(tab.childAt(pos)))
			return leaf
		}
	}
	if c > 0 {
		if _, pos, ok := tab.findLEQChild(c - 1); ok {
			t.linkAfter(leaf, t.maxData(tab.childAt(pos)))
			return leaf
		}
	}
	assert(t.node(res.node).hasValue, "only child of a structural node")
	t.linkAfter(leaf, res.node)
	return leaf
}
