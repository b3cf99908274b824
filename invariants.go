package art

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/art/arena"
)

// Check validates the structural invariants of a tree:
//
//   - the key of every data node is the concatenation of subfixes and
//     discriminating bytes on its path,
//   - parent links and child tables agree, child counts are within the
//     capacity of a node's class,
//   - no node without value has fewer than two children,
//   - the ordered list holds exactly the data nodes, in strictly
//     ascending key order, in both directions,
//   - the element count equals the number of data nodes, and no node is
//     leaked.
//
// Check walks the complete tree and is meant to be used in tests.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.sentinel == arena.Nil {
		if t.root != arena.Nil || t.size != 0 {
			return fmt.Errorf("%w: uninitialized tree has content", ErrCorrupted)
		}
		return nil
	}
	if s := t.node(t.sentinel); s.hasValue {
		return fmt.Errorf("%w: sentinel holds a value", ErrCorrupted)
	}
	var data []arena.Ref
	nodes := 0
	if t.root != arena.Nil {
		if p := t.node(t.root).parent; p != arena.Nil {
			return fmt.Errorf("%w: root has parent %d", ErrCorrupted, p)
		}
		var err error
		data, nodes, err = t.checkNode(t.root, nil, data)
		if err != nil {
			return err
		}
	}
	if len(data) != t.size {
		return fmt.Errorf("%w: size is %d, found %d data nodes", ErrCorrupted, t.size, len(data))
	}
	if nodes != t.NodeCount() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupted, nodes, t.NodeCount())
	}
	if tabs := t.tables.live(); tabs != nodes {
		return fmt.Errorf("%w: %d child tables for %d nodes", ErrCorrupted, tabs, nodes)
	}
	return t.checkList(data)
}

// checkNode verifies the subtree at ref, whose path from the root is path.
// It appends the data nodes of the subtree in pre-order, which is key order.
func (t *Tree[V]) checkNode(ref arena.Ref, path []byte, data []arena.Ref) ([]arena.Ref, int, error) {
	n := t.node(ref)
	path = append(path[:len(path):len(path)], n.subfix...)
	if n.hasValue {
		if !bytes.Equal(n.key, path) {
			return data, 0, fmt.Errorf("%w: node %d has key %q, path is %q", ErrCorrupted, ref, n.key, path)
		}
		data = append(data, ref)
	}
	tab := t.table(n)
	if tab.kind() != n.kind {
		return data, 0, fmt.Errorf("%w: node %d is %s with table of %s", ErrCorrupted, ref, n.kind, tab.kind())
	}
	children := tab.appendChildren(nil)
	if len(children) != tab.count() || tab.count() > tab.capacity() {
		return data, 0, fmt.Errorf("%w: node %d counts %d children, holds %d, capacity %d",
			ErrCorrupted, ref, tab.count(), len(children), tab.capacity())
	}
	if !n.hasValue && len(children) < 2 {
		return data, 0, fmt.Errorf("%w: structural node %d has %d children", ErrCorrupted, ref, len(children))
	}
	nodes := 1
	for i, e := range children {
		if i > 0 && children[i-1].c >= e.c {
			return data, 0, fmt.Errorf("%w: node %d has duplicate or unordered child bytes", ErrCorrupted, ref)
		}
		if e.ref == arena.Nil {
			return data, 0, fmt.Errorf("%w: node %d has nil child for %#x", ErrCorrupted, ref, e.c)
		}
		child := t.node(e.ref)
		if child.parent != ref || child.pbyte != e.c {
			return data, 0, fmt.Errorf("%w: child %d of node %d has parent link (%d, %#x)",
				ErrCorrupted, e.ref, ref, child.parent, child.pbyte)
		}
		var cnt int
		var err error
		data, cnt, err = t.checkNode(e.ref, append(path, e.c), data)
		if err != nil {
			return data, 0, err
		}
		nodes += cnt
	}
	return data, nodes, nil
}

// checkList compares the ordered list against the data nodes found by the
// tree walk.
func (t *Tree[V]) checkList(data []arena.Ref) error {
	ref := t.node(t.sentinel).next
	for i, want := range data {
		if ref != want {
			return fmt.Errorf("%w: list entry %d is node %d, expected %d", ErrCorrupted, i, ref, want)
		}
		n := t.node(ref)
		if i > 0 && bytes.Compare(t.node(data[i-1]).key, n.key) >= 0 {
			return fmt.Errorf("%w: list not strictly ascending at entry %d", ErrCorrupted, i)
		}
		if t.node(n.next).prev != ref {
			return fmt.Errorf("%w: broken backward link at node %d", ErrCorrupted, n.next)
		}
		ref = n.next
	}
	if ref != t.sentinel {
		return fmt.Errorf("%w: list longer than %d entries", ErrCorrupted, len(data))
	}
	if t.node(t.node(t.sentinel).next).prev != t.sentinel {
		return fmt.Errorf("%w: broken backward link at sentinel", ErrCorrupted)
	}
	return nil
}
