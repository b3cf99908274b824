package art

import (
	"encoding/binary"
	"math/bits"

	"github.com/npillmayer/art/arena"
)

// findResult describes where a key diverges from the tree.
type findResult struct {
	node     arena.Ref // last node visited, Nil for an empty tree
	matched  int       // number of subfix bytes of node matched
	consumed int       // number of key bytes consumed, including node's subfix
	slot     childSlot // slot in which node hangs
}

func (t *Tree[V]) subfixDone(res findResult) bool {
	return res.matched == len(t.node(res.node).subfix)
}

// findLastNode descends from the root as long as the key matches.
//
// The descent stops at a node if either its subfix does not fully match the
// remaining key, or the key is exhausted, or there is no child for the next
// key byte.
func (t *Tree[V]) findLastNode(key []byte) findResult {
	ref, slot := t.root, rootSlot
	consumed := 0
	for ref != arena.Nil {
		n := t.node(ref)
		m := commonPrefix(n.subfix, key[consumed:])
		consumed += m
		if m == len(n.subfix) && consumed < len(key) {
			c := key[consumed]
			tab := t.table(n)
			if pos, ok := tab.findChild(c); ok {
				slot = childSlot{owner: ref, c: c, pos: pos}
				ref = tab.childAt(pos)
				consumed++
				continue
			}
		}
		return findResult{node: ref, matched: m, consumed: consumed, slot: slot}
	}
	return findResult{node: arena.Nil, slot: rootSlot}
}

// commonPrefix returns the length of the longest common prefix of a and b,
// comparing 8 bytes at a time where possible.
func commonPrefix(a, b []byte) int {
	l := min(len(a), len(b))
	i := 0
	for ; i+8 <= l; i += 8 {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
	}
	for ; i < l && a[i] == b[i]; i++ {
	}
	return i
}
