package art

import (
	"errors"
	"iter"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func keysOf[V any](tree *Tree[V]) []string {
	var out []string
	for k := range tree.All() {
		out = append(out, string(k))
	}
	return out
}

func keysBackward[V any](tree *Tree[V]) []string {
	var out []string
	for k := range tree.Backward() {
		out = append(out, string(k))
	}
	return out
}

func mustCheck[V any](t *testing.T, tree *Tree[V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func buildTree(t *testing.T, keys ...string) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for i, k := range keys {
		tree.Insert([]byte(k), i)
	}
	mustCheck(t, tree)
	return tree
}

func TestZeroTreeIsEmpty(t *testing.T) {
	var tree Tree[string]
	if !tree.IsEmpty() || tree.Len() != 0 || tree.NodeCount() != 0 {
		t.Fatalf("zero tree not empty")
	}
	if _, ok := tree.Find([]byte("x")); ok {
		t.Errorf("found key in empty tree")
	}
	if !tree.Begin().IsEnd() || !tree.Last().IsEnd() || !tree.LowerBound(nil).IsEnd() {
		t.Errorf("expected end iterators on empty tree")
	}
	if tree.Erase([]byte("x")) {
		t.Errorf("erase succeeded on empty tree")
	}
	if len(keysOf(&tree)) != 0 {
		t.Errorf("iteration over empty tree yielded entries")
	}
	mustCheck(t, &tree)
}

func TestInsertFindEraseScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[int]()
	tree.Insert([]byte("ab"), 1)
	tree.Insert([]byte("abc"), 2)
	tree.Insert([]byte("abd"), 3)
	mustCheck(t, tree)
	if v, ok := tree.Get([]byte("ab")); !ok || v != 1 {
		t.Errorf("find(ab) = %d, %v", v, ok)
	}
	lb := tree.LowerBound([]byte("abc"))
	if lb.IsEnd() || string(lb.Key()) != "abc" || lb.Value() != 2 {
		t.Errorf("lower_bound(abc) wrong")
	}
	ub := tree.UpperBound([]byte("abc"))
	if ub.IsEnd() || string(ub.Key()) != "abd" || ub.Value() != 3 {
		t.Errorf("upper_bound(abc) wrong")
	}
	if !tree.Erase([]byte("abc")) {
		t.Fatalf("erase(abc) failed")
	}
	mustCheck(t, tree)
	if _, ok := tree.Find([]byte("abc")); ok {
		t.Errorf("abc still present after erase")
	}
	if v, ok := tree.Get([]byte("ab")); !ok || v != 1 {
		t.Errorf("lost ab after erase")
	}
	if v, ok := tree.Get([]byte("abd")); !ok || v != 3 {
		t.Errorf("lost abd after erase")
	}
	root := tree.node(tree.root)
	if string(root.subfix) != "ab" || tree.table(root).count() != 1 || tree.NodeCount() != 2 {
		t.Errorf("expected ab with a single d-edge, have %d nodes", tree.NodeCount())
	}
}

func TestEraseCollapsesStructuralRoot(t *testing.T) {
	tree := buildTree(t, "abc", "abd")
	if tree.NodeCount() != 3 || tree.node(tree.root).hasValue {
		t.Fatalf("expected structural root with two children")
	}
	tree.Erase([]byte("abc"))
	mustCheck(t, tree)
	root := tree.node(tree.root)
	if tree.NodeCount() != 1 || string(root.subfix) != "abd" || !root.hasValue {
		t.Fatalf("expected single node with compressed subfix abd, have %q", root.subfix)
	}
	tree.Erase([]byte("abd"))
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.NodeCount() != 0 {
		t.Fatalf("expected empty tree")
	}
}

func TestEraseCascadesUpward(t *testing.T) {
	tree := buildTree(t, "a", "ab", "abc", "abcd", "abce", "abx", "b")
	for _, k := range []string{"abce", "abc", "ab", "abcd", "a", "abx"} {
		if !tree.Erase([]byte(k)) {
			t.Fatalf("erase(%s) failed", k)
		}
		mustCheck(t, tree)
	}
	if got := keysOf(tree); len(got) != 1 || got[0] != "b" {
		t.Fatalf("unexpected keys %v", got)
	}
	if tree.NodeCount() != 1 {
		t.Fatalf("expected a single node, have %d", tree.NodeCount())
	}
}

func TestInsertCases(t *testing.T) {
	tree := New[int]()
	steps := []struct {
		key  string
		keys []string
	}{
		{"romane", []string{"romane"}},
		{"romanus", []string{"romane", "romanus"}},             // split with sibling
		{"roman", []string{"roman", "romane", "romanus"}},      // key ends at structural node
		{"rom", []string{"rom", "roman", "romane", "romanus"}}, // key ends inside subfix
		{"romulus", []string{"rom", "roman", "romane", "romanus", "romulus"}},
		{"rubens", []string{"rom", "roman", "romane", "romanus", "romulus", "rubens"}},
		{"ro", []string{"ro", "rom", "roman", "romane", "romanus", "romulus", "rubens"}},
		{"rom0", []string{"ro", "rom", "rom0", "roman", "romane", "romanus", "romulus", "rubens"}},
	}
	for i, s := range steps {
		if _, ok := tree.Insert([]byte(s.key), i); !ok {
			t.Fatalf("insert(%s) reported duplicate", s.key)
		}
		mustCheck(t, tree)
		if got := strings.Join(keysOf(tree), ","); got != strings.Join(s.keys, ",") {
			t.Fatalf("after insert(%s): keys %s", s.key, got)
		}
	}
	for i, s := range steps {
		if v, ok := tree.Get([]byte(s.key)); !ok || v != i {
			t.Errorf("get(%s) = %d, %v", s.key, v, ok)
		}
	}
}

func TestInsertDuplicateAndSet(t *testing.T) {
	tree := buildTree(t, "key")
	it, ok := tree.Insert([]byte("key"), 7)
	if ok || it.Value() != 0 {
		t.Fatalf("duplicate insert changed entry: ok=%v value=%d", ok, it.Value())
	}
	it, ok = tree.Set([]byte("key"), 7)
	if ok || it.Value() != 7 {
		t.Fatalf("set did not overwrite: ok=%v value=%d", ok, it.Value())
	}
	if _, ok = tree.Set([]byte("other"), 8); !ok || tree.Len() != 2 {
		t.Fatalf("set did not insert new key")
	}
}

func TestInsertCopiesKey(t *testing.T) {
	tree := New[int]()
	key := []byte("mutable")
	tree.Insert(key, 1)
	key[0] = 'M'
	if _, ok := tree.Find([]byte("mutable")); !ok {
		t.Fatalf("tree key changed with caller's buffer")
	}
	mustCheck(t, tree)
}

func TestEmptyAndSingleByteKeys(t *testing.T) {
	tree := buildTree(t, "a", "", "\x00", "\xff", "\x00\x00")
	want := []string{"", "\x00", "\x00\x00", "a", "\xff"}
	if got := keysOf(tree); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("keys = %q", got)
	}
	if it := tree.LowerBound(nil); it.IsEnd() || len(it.Key()) != 0 {
		t.Errorf("lower_bound(\"\") should yield the empty key")
	}
	if it := tree.UpperBound(nil); it.IsEnd() || string(it.Key()) != "\x00" {
		t.Errorf("upper_bound(\"\") should yield \\x00")
	}
	if !tree.Erase([]byte{}) {
		t.Fatalf("erase of empty key failed")
	}
	mustCheck(t, tree)
	if _, ok := tree.Find(nil); ok {
		t.Errorf("empty key still present")
	}
}

func TestGrowthAndShrinkBoundaries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	key := func(i int) []byte { return []byte{'p', byte(i)} }
	tree := New[int]()
	for i := 0; i < 256; i++ {
		if _, ok := tree.Insert(key(i), i); !ok {
			t.Fatalf("insert %d failed", i)
		}
		if i == 0 {
			continue
		}
		children := i + 1
		want := kind4
		switch {
		case children > 48:
			want = kind256
		case children > 16:
			want = kind48
		case children > 4:
			want = kind16
		}
		root := tree.node(tree.root)
		if root.kind != want || tree.table(root).count() != children {
			t.Fatalf("with %d children: root is %s with %d children, want %s",
				children, root.kind, tree.table(root).count(), want)
		}
	}
	mustCheck(t, tree)
	if tree.Len() != 256 || len(keysOf(tree)) != 256 {
		t.Fatalf("expected 256 distinct entries")
	}
	for i := 255; i > 0; i-- {
		tree.Erase(key(i))
		children := i
		if children == 1 {
			break
		}
		want := kind4
		switch {
		case children > 24:
			want = kind256
		case children > 8:
			want = kind48
		case children > 2:
			want = kind16
		}
		if root := tree.node(tree.root); root.kind != want {
			t.Fatalf("with %d children: root is %s, want %s", children, root.kind, want)
		}
	}
	mustCheck(t, tree)
	root := tree.node(tree.root)
	if tree.NodeCount() != 1 || !root.hasValue || string(root.subfix) != "p\x00" {
		t.Fatalf("expected single remaining node p\\x00")
	}
}

func TestIteratorSurvivesGrowth(t *testing.T) {
	tree := New[int]()
	it, _ := tree.Insert([]byte("p"), -1)
	for i := 0; i < 100; i++ {
		tree.Insert([]byte{'p', byte(i)}, i)
	}
	mustCheck(t, tree)
	if tree.node(it.ref).kind != kind256 {
		t.Fatalf("expected p to have grown to node256")
	}
	if string(it.Key()) != "p" || it.Value() != -1 {
		t.Fatalf("iterator invalidated by growth")
	}
	if string(it.Next().Key()) != "p\x00" {
		t.Errorf("successor of p should be p\\x00")
	}
}

func sortedRef(keys []string) []string {
	uniq := map[string]bool{}
	for _, k := range keys {
		uniq[k] = true
	}
	out := make([]string, 0, len(uniq))
	for k := range uniq {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestBoundsAgainstSortedKeys(t *testing.T) {
	keys := []string{"a", "abc", "abd", "abde", "b", "ba", "bab", "c", "cz", "d\x00", "d\xff", "xyzzy"}
	tree := buildTree(t, keys...)
	ref := sortedRef(keys)
	probes := []string{"", "a", "a\x00", "ab", "abc", "abcd", "abd", "abdd", "abdf", "abe",
		"b", "b\x00", "baa", "bac", "bb", "c", "cy", "czz", "d", "d\x00\x00", "d\x80", "e", "xyz", "xyzzyx", "z"}
	for _, p := range probes {
		i := sort.SearchStrings(ref, p)
		lb := tree.LowerBound([]byte(p))
		if i == len(ref) {
			if !lb.IsEnd() {
				t.Errorf("lower_bound(%q) = %q, want end", p, lb.Key())
			}
		} else if lb.IsEnd() || string(lb.Key()) != ref[i] {
			t.Errorf("lower_bound(%q) wrong, want %q", p, ref[i])
		}
		j := sort.Search(len(ref), func(x int) bool { return ref[x] > p })
		ub := tree.UpperBound([]byte(p))
		if j == len(ref) {
			if !ub.IsEnd() {
				t.Errorf("upper_bound(%q) = %q, want end", p, ub.Key())
			}
		} else if ub.IsEnd() || string(ub.Key()) != ref[j] {
			t.Errorf("upper_bound(%q) wrong, want %q", p, ref[j])
		}
	}
}

func TestLongKeysWithRuns(t *testing.T) {
	base := strings.Repeat("x", 1025)
	keys := []string{
		base,
		base + "a",
		base[:500] + "y" + base[501:],
		base[:1024] + "w",
		base[:7] + "z",
		base[:8] + "z",
		base[:9],
		strings.Repeat("ab", 600),
		strings.Repeat("ab", 600) + "\x00",
		strings.Repeat("ab", 599),
	}
	tree := buildTree(t, keys...)
	ref := sortedRef(keys)
	if got := keysOf(tree); strings.Join(got, "|") != strings.Join(ref, "|") {
		t.Fatalf("long keys out of order")
	}
	for i, k := range keys {
		if v, ok := tree.Get([]byte(k)); !ok || v != i {
			t.Fatalf("lost long key %d", i)
		}
	}
	for _, k := range keys[:5] {
		tree.Erase([]byte(k))
		mustCheck(t, tree)
	}
	if tree.Len() != len(keys)-5 {
		t.Fatalf("unexpected size %d", tree.Len())
	}
}

func TestIteratorNavigation(t *testing.T) {
	tree := buildTree(t, "b", "a", "c")
	it := tree.Begin()
	var forward []string
	for ; !it.IsEnd(); it = it.Next() {
		forward = append(forward, string(it.Key()))
	}
	if strings.Join(forward, "") != "abc" {
		t.Fatalf("forward = %v", forward)
	}
	if !it.Equal(tree.End()) {
		t.Fatalf("expected to end at End()")
	}
	if last := tree.End().Prev(); !last.Equal(tree.Last()) || string(last.Key()) != "c" {
		t.Fatalf("End().Prev() should be last entry")
	}
	if first := tree.End().Next(); string(first.Key()) != "a" {
		t.Fatalf("End().Next() should wrap to first entry")
	}
	it, _ = tree.Find([]byte("b"))
	it.SetValue(42)
	if v, _ := tree.Get([]byte("b")); v != 42 {
		t.Fatalf("SetValue not visible through tree")
	}
	mustPanic(t, "value of end iterator", func() { tree.End().Value() })
	if got := strings.Join(keysBackward(tree), ""); got != "cba" {
		t.Fatalf("backward = %s", got)
	}
}

func TestEraseAtReturnsSuccessor(t *testing.T) {
	tree := buildTree(t, "a", "ab", "abc", "b")
	it := tree.Begin()
	var erased []string
	for !it.IsEnd() {
		erased = append(erased, string(it.Key()))
		it = tree.EraseAt(it)
		mustCheck(t, tree)
	}
	if strings.Join(erased, ",") != "a,ab,abc,b" || !tree.IsEmpty() {
		t.Fatalf("erase sequence %v", erased)
	}
}

func TestEraseWhileRanging(t *testing.T) {
	tree := buildTree(t, "k1", "k2", "k3", "x", "y")
	for k := range tree.All() {
		if strings.HasPrefix(string(k), "k") {
			tree.Erase(k)
		}
	}
	mustCheck(t, tree)
	if got := strings.Join(keysOf(tree), ","); got != "x,y" {
		t.Fatalf("keys after erase = %s", got)
	}
}

func TestScanPrefixAndAscend(t *testing.T) {
	tree := buildTree(t, "app", "apple", "applet", "apply", "apt", "b", "ap")
	var got []string
	for k := range tree.ScanPrefix([]byte("appl")) {
		got = append(got, string(k))
	}
	if strings.Join(got, ",") != "apple,applet,apply" {
		t.Errorf("ScanPrefix(appl) = %v", got)
	}
	got = got[:0]
	for k := range tree.ScanPrefix([]byte("zz")) {
		got = append(got, string(k))
	}
	if len(got) != 0 {
		t.Errorf("ScanPrefix(zz) = %v", got)
	}
	got = got[:0]
	for k := range tree.Ascend([]byte("applez")) {
		got = append(got, string(k))
	}
	if strings.Join(got, ",") != "apply,apt,b" {
		t.Errorf("Ascend(applez) = %v", got)
	}
}

func pairs(kv ...string) iter.Seq2[[]byte, int] {
	return func(yield func([]byte, int) bool) {
		for i, k := range kv {
			if !yield([]byte(k), i) {
				return
			}
		}
	}
}

func TestInsertAllCloneSwapClear(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := New[int]()
	if n := tree.InsertAll(pairs("x", "y", "x", "z")); n != 3 {
		t.Fatalf("InsertAll inserted %d entries, want 3", n)
	}
	clone := tree.Clone()
	mustCheck(t, clone)
	clone.Erase([]byte("x"))
	clone.Insert([]byte("w"), 9)
	if strings.Join(keysOf(tree), "") != "xyz" || strings.Join(keysOf(clone), "") != "wyz" {
		t.Fatalf("clone not independent: %v / %v", keysOf(tree), keysOf(clone))
	}
	mustCheck(t, tree)
	mustCheck(t, clone)
	other := buildTree(t, "q")
	tree.Swap(other)
	if strings.Join(keysOf(tree), "") != "q" || strings.Join(keysOf(other), "") != "xyz" {
		t.Fatalf("swap did not exchange contents")
	}
	other.Clear()
	mustCheck(t, other)
	if !other.IsEmpty() || other.NodeCount() != 0 {
		t.Fatalf("clear left entries")
	}
	other.Insert([]byte("again"), 1)
	mustCheck(t, other)
	if other.Len() != 1 {
		t.Fatalf("tree unusable after clear")
	}
}

func TestConfig(t *testing.T) {
	if _, err := NewWithConfig[int](Config{PageSize: 3}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	tree, err := NewWithConfig[int](Config{PageSize: 4, CheckInvariants: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 300; i++ {
		tree.Insert([]byte{byte(i % 7), byte(i), byte(i / 3)}, i)
	}
	for i := 0; i < 300; i += 2 {
		tree.Erase([]byte{byte(i % 7), byte(i), byte(i / 3)})
	}
	if tree.Len() != 150 || tree.Config().PageSize != 4 {
		t.Fatalf("unexpected tree state len=%d", tree.Len())
	}
	if New[int]().Config().PageSize == 0 {
		t.Fatalf("expected default page size")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := buildTree(t, "abc", "abd", "x")
	n := tree.node(tree.minData(tree.root))
	n.prev, n.next = n.next, n.prev
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected corrupted list to be detected, got %v", err)
	}
	tree = buildTree(t, "abc", "abd", "x")
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected size mismatch to be detected, got %v", err)
	}
}
