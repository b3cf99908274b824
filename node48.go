package art

import "github.com/npillmayer/art/arena"

// node48 maps bytes to compact child slots through a 256-entry index.
// Index entries are 1-based; 0 marks an unused byte, which keeps the zero
// value of node48 a valid empty table.
type node48 struct {
	n     uint8
	index [256]uint8
	child [48]arena.Ref
}

func (t *node48) kind() nodeKind { return kind48 }
func (t *node48) capacity() int  { return len(t.child) }
func (t *node48) count() int     { return int(t.n) }

func (t *node48) findChild(c byte) (int, bool) {
	if i := t.index[c]; i > 0 {
		return int(i) - 1, true
	}
	return -1, false
}

func (t *node48) findLEQChild(c byte) (byte, int, bool) {
	for b := int(c); b >= 0; b-- {
		if i := t.index[b]; i > 0 {
			return byte(b), int(i) - 1, true
		}
	}
	return 0, -1, false
}

func (t *node48) findGEQChild(c byte) (byte, int, bool) {
	for b := int(c); b < len(t.index); b++ {
		if i := t.index[b]; i > 0 {
			return byte(b), int(i) - 1, true
		}
	}
	return 0, -1, false
}

func (t *node48) childAt(pos int) arena.Ref {
	assert(pos >= 0 && pos < int(t.n), "node48: child position out of range")
	return t.child[pos]
}

func (t *node48) setChildAt(pos int, ref arena.Ref) {
	assert(pos >= 0 && pos < int(t.n), "node48: child position out of range")
	t.child[pos] = ref
}

func (t *node48) tryInsertChild(c byte, ref arena.Ref) (int, bool) {
	assert(t.index[c] == 0, "node48: duplicate discriminating byte")
	if int(t.n) == len(t.child) {
		return -1, false
	}
	pos := int(t.n)
	t.child[pos] = ref
	t.index[c] = uint8(pos + 1)
	t.n++
	return pos, true
}

// eraseChild moves the last compact slot into the freed one and repairs the
// index entry which pointed at the moved slot.
func (t *node48) eraseChild(c byte) {
	i := t.index[c]
	assert(i > 0, "node48: erasing absent child")
	pos, last := int(i)-1, int(t.n)-1
	if pos != last {
		t.child[pos] = t.child[last]
		for b := range t.index {
			if int(t.index[b]) == last+1 {
				t.index[b] = uint8(pos + 1)
				break
			}
		}
	}
	t.child[last] = arena.Nil
	t.index[c] = 0
	t.n--
}

func (t *node48) appendChildren(buf []childEntry) []childEntry {
	for b, i := range t.index {
		if i > 0 {
			buf = append(buf, childEntry{c: byte(b), ref: t.child[i-1]})
		}
	}
	return buf
}
