package wordtree

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type entry struct {
	key string
	tag string
}

func entryKey(e entry) string { return e.key }

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for zero ordering, got %v", err)
	}
	_, err = New(Config[int]{Ordering: ByComparator(func(a, b int) int { return a - b })})
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrMissingMerge) {
		t.Fatalf("expected ErrMissingMerge for comparator without merge, got %v", err)
	}
	if _, err = New(Config[string]{Ordering: ByKey[string, int](nil)}); err == nil {
		t.Fatalf("expected error for nil key projection")
	}
}

func TestNewAcceptsNaturalWithoutMerge(t *testing.T) {
	tree, err := New(Config[int]{Ordering: Natural[int]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected state of new tree: len=%d height=%d", tree.Len(), tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("empty tree should be valid, got %v", err)
	}
}

func TestInsertIntoEmptyTreeSetsRoot(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(42)
	if tree.root == nil || tree.root.value != 42 || tree.root.height != 1 {
		t.Fatalf("expected single root 42 with height 1")
	}
	if tree.Len() != 1 || tree.Height() != 1 {
		t.Errorf("len=%d height=%d, expected 1/1", tree.Len(), tree.Height())
	}
}

func TestEndToEndNaturalOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewOrdered[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(k)
		if err := tree.Check(); err != nil {
			t.Fatalf("after inserting %d: %v", k, err)
		}
	}
	got := tree.Values()
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !slices.Equal(got, want) {
		t.Errorf("in-order = %v, want %v", got, want)
	}
	if tree.Height() != 4 {
		t.Errorf("height = %d, want 4", tree.Height())
	}
	t.Logf("\n%s", tree.Sketch(nil))
}

func TestRotationCases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		name string
		keys []int
	}{
		{"left", []int{1, 2, 3}},
		{"right", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}
	for _, c := range cases {
		tree := NewOrdered[int]()
		for _, k := range c.keys {
			tree.Insert(k)
		}
		if err := tree.Check(); err != nil {
			t.Errorf("%s rotation: %v", c.name, err)
			continue
		}
		r := tree.root
		if r.value != 2 || r.left == nil || r.right == nil || r.left.value != 1 || r.right.value != 3 {
			t.Errorf("%s rotation: expected root=2, left=1, right=3, got\n%s", c.name, tree.Sketch(nil))
			continue
		}
		if r.height != 2 || r.left.height != 1 || r.right.height != 1 {
			t.Errorf("%s rotation: stale heights %d/%d/%d", c.name, r.height, r.left.height, r.right.height)
		}
	}
}

func insertChecked(t *testing.T, keys ...int) *Tree[int] {
	t.Helper()
	tree := NewOrdered[int]()
	for _, k := range keys {
		tree.Insert(k)
		if err := tree.Check(); err != nil {
			t.Fatalf("after inserting %d: %v", k, err)
		}
	}
	return tree
}

func TestRotationReplacesRoot(t *testing.T) {
	tree := insertChecked(t, 50, 25, 75, 10, 30, 5)
	if tree.root.value != 25 {
		t.Errorf("expected 25 to become root, got %d", tree.root.value)
	}
	tree = insertChecked(t, 50, 25, 75, 60, 80, 70, 90, 65)
	if got := tree.Values(); !slices.IsSorted(got) || len(got) != 8 {
		t.Errorf("unexpected in-order sequence %v", got)
	}
}

func TestRotationBelowRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// right rotation at 10, linked to the left of grandparent 25
	tree := insertChecked(t, 50, 25, 75, 10, 30, 60, 80, 5, 1)
	r := tree.root
	if r.value != 50 || r.left.value != 25 {
		t.Fatalf("rotation should not reach the upper levels:\n%s", tree.Sketch(nil))
	}
	sub := r.left.left
	if sub.value != 5 || sub.left.value != 1 || sub.right.value != 10 || sub.height != 2 {
		t.Errorf("expected 5 with children 1 and 10 left of 25, got\n%s", tree.Sketch(nil))
	}
	// left rotation at 80, linked to the right of grandparent 75
	tree = insertChecked(t, 50, 25, 75, 10, 30, 60, 80, 90, 95)
	r = tree.root
	if r.value != 50 || r.right.value != 75 {
		t.Fatalf("rotation should not reach the upper levels:\n%s", tree.Sketch(nil))
	}
	sub = r.right.right
	if sub.value != 90 || sub.left.value != 80 || sub.right.value != 95 || sub.height != 2 {
		t.Errorf("expected 90 with children 80 and 95 right of 75, got\n%s", tree.Sketch(nil))
	}
}

func TestDuplicateIsMergedOnce(t *testing.T) {
	var calls [][2]string
	merge := func(existing *entry, incoming entry) {
		calls = append(calls, [2]string{existing.tag, incoming.tag})
	}
	tree, err := New(Config[entry]{Ordering: ByKey(entryKey), Merge: merge})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(entry{"dog", "x"})
	tree.Insert(entry{"cat", "first"})
	tree.Insert(entry{"cat", "second"})
	if tree.Len() != 2 {
		t.Errorf("expected 2 elements, have %d", tree.Len())
	}
	if len(calls) != 1 {
		t.Fatalf("expected merge to be called once, was called %d times", len(calls))
	}
	if calls[0] != [2]string{"first", "second"} {
		t.Errorf("merge called with (%s, %s), expected (existing, incoming)", calls[0][0], calls[0][1])
	}
	e, ok := tree.Find(entry{key: "cat"})
	if !ok || e.tag != "first" {
		t.Errorf("expected existing element to stay in tree, found %v", e)
	}
}

func TestDuplicateDroppedWithoutMerge(t *testing.T) {
	tree := NewOrdered[string]()
	for _, s := range []string{"b", "a", "b", "c", "a"} {
		tree.Insert(s)
	}
	if got := tree.Values(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected a b c, got %v", got)
	}
	if tree.Len() != 3 {
		t.Errorf("expected len 3, got %d", tree.Len())
	}
}

type attributed struct {
	word   string
	people []string
}

func TestDuplicateAttributionByComparator(t *testing.T) {
	compare := func(a, b *attributed) int { return strings.Compare(a.word, b.word) }
	merge := func(existing **attributed, incoming *attributed) {
		(*existing).people = append((*existing).people, incoming.people...)
	}
	tree, err := New(Config[*attributed]{Ordering: ByComparator(compare), Merge: merge})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(&attributed{"cat", []string{"Aaron"}})
	tree.Insert(&attributed{"cat", []string{"Berta"}})
	if tree.Len() != 1 {
		t.Fatalf("expected one node for 'cat', have %d", tree.Len())
	}
	cat := tree.Values()[0]
	if !slices.Equal(cat.people, []string{"Aaron", "Berta"}) {
		t.Errorf("expected attribution [Aaron Berta], got %v", cat.people)
	}
}

func TestInsertWithValidatesPerCall(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	err := tree.InsertWith(2, ByComparator(func(a, b int) int { return a - b }), nil)
	if !errors.Is(err, ErrMissingMerge) {
		t.Fatalf("expected ErrMissingMerge, got %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("failed call must not touch the tree, len=%d", tree.Len())
	}
	if err = tree.InsertWith(2, ByKey(func(i int) int { return i }), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	merged := 0
	err = tree.InsertWith(2, ByComparator(func(a, b int) int { return a - b }),
		func(existing *int, incoming int) { merged++ })
	if err != nil || merged != 1 || tree.Len() != 2 {
		t.Errorf("expected merge of duplicate 2, err=%v merged=%d len=%d", err, merged, tree.Len())
	}
}

func TestKeyProjectionOrdering(t *testing.T) {
	byLen := ByKey(func(s string) int { return len(s) })
	tree, err := New(Config[string]{Ordering: byLen})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"ccc", "a", "bb", "dddd", "xx"} {
		tree.Insert(s)
	}
	if got := tree.Values(); !slices.Equal(got, []string{"a", "bb", "ccc", "dddd"}) {
		t.Errorf("unexpected order by length: %v", got)
	}
	if s, ok := tree.Find("zz"); !ok || *s != "bb" {
		t.Errorf("expected to find 'bb' under length ordering")
	}
}

func TestRandomInsertionsKeepInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		tree := NewOrdered[int]()
		model := make(map[int]struct{})
		n := 1 + r.Intn(500)
		for i := 0; i < n; i++ {
			k := r.Intn(300)
			tree.Insert(k)
			model[k] = struct{}{}
			if err := tree.Check(); err != nil {
				t.Fatalf("round %d, insert %d: %v", round, k, err)
			}
		}
		if tree.Len() != len(model) {
			t.Fatalf("round %d: len=%d, model has %d keys", round, tree.Len(), len(model))
		}
		values := tree.Values()
		for i := 1; i < len(values); i++ {
			if values[i-1] >= values[i] {
				t.Fatalf("round %d: in-order not strictly ascending at %d: %v", round, i, values[i-1:i+1])
			}
		}
	}
}

func TestSortedInsertionsStayLogarithmic(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 1023; i++ {
		tree.Insert(i)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	// AVL worst case is about 1.44*log2(n); ascending input yields a perfect tree
	if tree.Height() != 10 {
		t.Errorf("expected height 10 for 1023 ascending keys, got %d", tree.Height())
	}
}

func TestRandomComparatorInsertionsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	merges := 0
	compare := func(a, b entry) int { return strings.Compare(a.key, b.key) }
	tree, err := New(Config[entry]{
		Ordering: ByComparator(compare),
		Merge:    func(*entry, entry) { merges++ },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inserted := 0
	for i := 0; i < 2000; i++ {
		tree.Insert(entry{key: randomWord(r)})
		inserted++
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len()+merges != inserted {
		t.Errorf("len %d + merges %d != %d insertions", tree.Len(), merges, inserted)
	}
}

func TestClear(t *testing.T) {
	tree := NewOrdered[int]()
	for i := range 10 {
		tree.Insert(i)
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("expected empty tree after Clear")
	}
	tree.Insert(3)
	if tree.Len() != 1 {
		t.Errorf("expected tree to be usable after Clear")
	}
}

func randomWord(r *rand.Rand) string {
	n := r.Intn(3) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(8))
	}
	return string(b)
}
