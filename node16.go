package art

import "github.com/npillmayer/art/arena"

// node16 holds up to 16 children, unordered like node4.
type node16 struct {
	n     uint8
	keys  [16]byte
	child [16]arena.Ref
}

func (t *node16) kind() nodeKind { return kind16 }
func (t *node16) capacity() int  { return len(t.child) }
func (t *node16) count() int     { return int(t.n) }

func (t *node16) findChild(c byte) (int, bool) {
	for i := 0; i < int(t.n); i++ {
		if t.keys[i] == c {
			return i, true
		}
	}
	return -1, false
}

func (t *node16) findLEQChild(c byte) (byte, int, bool) {
	return scanLEQ(t.keys[:t.n], c)
}

func (t *node16) findGEQChild(c byte) (byte, int, bool) {
	return scanGEQ(t.keys[:t.n], c)
}

func (t *node16) childAt(pos int) arena.Ref {
	assert(pos >= 0 && pos < int(t.n), "node16: child position out of range")
	return t.child[pos]
}

func (t *node16) setChildAt(pos int, ref arena.Ref) {
	assert(pos >= 0 && pos < int(t.n), "node16: child position out of range")
	t.child[pos] = ref
}

func (t *node16) tryInsertChild(c byte, ref arena.Ref) (int, bool) {
	_, dup := t.findChild(c)
	assert(!dup, "node16: duplicate discriminating byte")
	if int(t.n) == len(t.child) {
		return -1, false
	}
	pos := int(t.n)
	t.keys[pos], t.child[pos] = c, ref
	t.n++
	return pos, true
}

func (t *node16) eraseChild(c byte) {
	pos, ok := t.findChild(c)
	assert(ok, "node16: erasing absent child")
	last := int(t.n) - 1
	t.keys[pos], t.child[pos] = t.keys[last], t.child[last]
	t.keys[last], t.child[last] = 0, arena.Nil
	t.n--
}

func (t *node16) appendChildren(buf []childEntry) []childEntry {
	start := len(buf)
	for i := 0; i < int(t.n); i++ {
		buf = append(buf, childEntry{c: t.keys[i], ref: t.child[i]})
	}
	sortEntries(buf[start:])
	return buf
}
