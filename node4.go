package art

import "github.com/npillmayer/art/arena"

// node4 is the smallest fanout class. Entries are kept unordered in
// keys[:n]/child[:n].
type node4 struct {
	n     uint8
	keys  [4]byte
	child [4]arena.Ref
}

func (t *node4) kind() nodeKind { return kind4 }
func (t *node4) capacity() int  { return len(t.child) }
func (t *node4) count() int     { return int(t.n) }

func (t *node4) findChild(c byte) (int, bool) {
	for i := 0; i < int(t.n); i++ {
		if t.keys[i] == c {
			return i, true
		}
	}
	return -1, false
}

func (t *node4) findLEQChild(c byte) (byte, int, bool) {
	return scanLEQ(t.keys[:t.n], c)
}

func (t *node4) findGEQChild(c byte) (byte, int, bool) {
	return scanGEQ(t.keys[:t.n], c)
}

func (t *node4) childAt(pos int) arena.Ref {
	assert(pos >= 0 && pos < int(t.n), "node4: child position out of range")
	return t.child[pos]
}

func (t *node4) setChildAt(pos int, ref arena.Ref) {
	assert(pos >= 0 && pos < int(t.n), "node4: child position out of range")
	t.child[pos] = ref
}

func (t *node4) tryInsertChild(c byte, ref arena.Ref) (int, bool) {
	_, dup := t.findChild(c)
	assert(!dup, "node4: duplicate discriminating byte")
	if int(t.n) == len(t.child) {
		return -1, false
	}
	pos := int(t.n)
	t.keys[pos], t.child[pos] = c, ref
	t.n++
	return pos, true
}

func (t *node4) eraseChild(c byte) {
	pos, ok := t.findChild(c)
	assert(ok, "node4: erasing absent child")
	last := int(t.n) - 1
	t.keys[pos], t.child[pos] = t.keys[last], t.child[last]
	t.keys[last], t.child[last] = 0, arena.Nil
	t.n--
}

func (t *node4) appendChildren(buf []childEntry) []childEntry {
	start := len(buf)
	for i := 0; i < int(t.n); i++ {
		buf = append(buf, childEntry{c: t.keys[i], ref: t.child[i]})
	}
	sortEntries(buf[start:])
	return buf
}

// scanLEQ finds the position of the greatest key <= c in an unordered key slice.
func scanLEQ(keys []byte, c byte) (byte, int, bool) {
	best, pos := byte(0), -1
	for i, k := range keys {
		if k <= c && (pos < 0 || k > best) {
			best, pos = k, i
		}
	}
	return best, pos, pos >= 0
}

// scanGEQ finds the position of the smallest key >= c in an unordered key slice.
func scanGEQ(keys []byte, c byte) (byte, int, bool) {
	best, pos := byte(0), -1
	for i, k := range keys {
		if k >= c && (pos < 0 || k < best) {
			best, pos = k, i
		}
	}
	return best, pos, pos >= 0
}
