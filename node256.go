package art

import "github.com/npillmayer/art/arena"

// node256 addresses children directly by byte. It is the terminal class.
type node256 struct {
	n     uint16
	child [256]arena.Ref
}

func (t *node256) kind() nodeKind { return kind256 }
func (t *node256) capacity() int  { return len(t.child) }
func (t *node256) count() int     { return int(t.n) }

func (t *node256) findChild(c byte) (int, bool) {
	if t.child[c] != arena.Nil {
		return int(c), true
	}
	return -1, false
}

func (t *node256) findLEQChild(c byte) (byte, int, bool) {
	for b := int(c); b >= 0; b-- {
		if t.child[b] != arena.Nil {
			return byte(b), b, true
		}
	}
	return 0, -1, false
}

func (t *node256) findGEQChild(c byte) (byte, int, bool) {
	for b := int(c); b < len(t.child); b++ {
		if t.child[b] != arena.Nil {
			return byte(b), b, true
		}
	}
	return 0, -1, false
}

func (t *node256) childAt(pos int) arena.Ref {
	assert(pos >= 0 && pos < len(t.child) && t.child[pos] != arena.Nil,
		"node256: no child at position")
	return t.child[pos]
}

func (t *node256) setChildAt(pos int, ref arena.Ref) {
	assert(pos >= 0 && pos < len(t.child) && t.child[pos] != arena.Nil,
		"node256: no child at position")
	t.child[pos] = ref
}

// tryInsertChild never fails for lack of space.
func (t *node256) tryInsertChild(c byte, ref arena.Ref) (int, bool) {
	assert(t.child[c] == arena.Nil, "node256: duplicate discriminating byte")
	t.child[c] = ref
	t.n++
	return int(c), true
}

func (t *node256) eraseChild(c byte) {
	assert(t.child[c] != arena.Nil, "node256: erasing absent child")
	t.child[c] = arena.Nil
	t.n--
}

func (t *node256) appendChildren(buf []childEntry) []childEntry {
	for b, ref := range t.child {
		if ref != arena.Nil {
			buf = append(buf, childEntry{c: byte(b), ref: ref})
		}
	}
	return buf
}
