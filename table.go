package art

import "github.com/npillmayer/art/arena"

// nodeKind is the fanout class of a node.
type nodeKind uint8

const (
	kind4 nodeKind = iota
	kind16
	kind48
	kind256
)

func (k nodeKind) String() string {
	switch k {
	case kind4:
		return "Node4"
	case kind16:
		return "Node16"
	case kind48:
		return "Node48"
	case kind256:
		return "Node256"
	}
	return "Node?"
}

// childEntry is a discriminating byte together with the child it selects.
type childEntry struct {
	c   byte
	ref arena.Ref
}

// childSlot locates a child reference within its parent's child table.
// owner == arena.Nil denotes the root slot of the tree.
//
// Slots are transient: erasing a child from a table may move other entries.
type childSlot struct {
	owner arena.Ref
	c     byte
	pos   int
}

var rootSlot = childSlot{owner: arena.Nil}

// childTable is the common contract of the four fanout classes.
// It is implemented by *node4, *node16, *node48 and *node256 only.
type childTable interface {
	kind() nodeKind
	capacity() int
	count() int
	// findChild returns the table position of the child selected by c.
	findChild(c byte) (int, bool)
	// findLEQChild returns the child with the greatest byte <= c.
	findLEQChild(c byte) (byte, int, bool)
	// findGEQChild returns the child with the smallest byte >= c.
	findGEQChild(c byte) (byte, int, bool)
	childAt(pos int) arena.Ref
	setChildAt(pos int, ref arena.Ref)
	// tryInsertChild fails if the table is full. c must not be present.
	tryInsertChild(c byte, ref arena.Ref) (int, bool)
	// eraseChild removes the child for c, which must be present.
	eraseChild(c byte)
	// appendChildren appends all children to buf, ordered by byte.
	appendChildren(buf []childEntry) []childEntry
}

// tables holds one pool per fanout class. This is the per-size-class
// allocator the mutation engine draws child tables from.
type tables struct {
	t4   arena.Pool[node4]
	t16  arena.Pool[node16]
	t48  arena.Pool[node48]
	t256 arena.Pool[node256]
}

func (ts *tables) setPageSize(size int) error {
	for _, err := range []error{
		ts.t4.SetPageSize(size),
		ts.t16.SetPageSize(size),
		ts.t48.SetPageSize(size),
		ts.t256.SetPageSize(size),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (ts *tables) alloc(k nodeKind) arena.Ref {
	var ref arena.Ref
	switch k {
	case kind4:
		ref, _ = ts.t4.Alloc()
	case kind16:
		ref, _ = ts.t16.Alloc()
	case kind48:
		ref, _ = ts.t48.Alloc()
	case kind256:
		ref, _ = ts.t256.Alloc()
	default:
		panic("art: unknown node kind")
	}
	return ref
}

func (ts *tables) free(k nodeKind, ref arena.Ref) {
	switch k {
	case kind4:
		ts.t4.Free(ref)
	case kind16:
		ts.t16.Free(ref)
	case kind48:
		ts.t48.Free(ref)
	case kind256:
		ts.t256.Free(ref)
	default:
		panic("art: unknown node kind")
	}
}

func (ts *tables) at(k nodeKind, ref arena.Ref) childTable {
	switch k {
	case kind4:
		return ts.t4.At(ref)
	case kind16:
		return ts.t16.At(ref)
	case kind48:
		return ts.t48.At(ref)
	case kind256:
		return ts.t256.At(ref)
	}
	panic("art: unknown node kind")
}

// live returns the number of allocated tables over all classes.
func (ts *tables) live() int {
	return ts.t4.Len() + ts.t16.Len() + ts.t48.Len() + ts.t256.Len()
}

func (ts *tables) reset() {
	ts.t4.Reset()
	ts.t16.Reset()
	ts.t48.Reset()
	ts.t256.Reset()
}

func (ts *tables) clone() tables {
	return tables{
		t4:   *ts.t4.Clone(),
		t16:  *ts.t16.Clone(),
		t48:  *ts.t48.Clone(),
		t256: *ts.t256.Clone(),
	}
}

// sortEntries sorts a small slice of child entries by byte (insertion sort).
func sortEntries(entries []childEntry) {
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		j := i - 1
		for ; j >= 0 && entries[j].c > e.c; j-- {
			entries[j+1] = entries[j]
		}
		entries[j+1] = e
	}
}
