package arbor

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// example tree: 1 → {2, 3}, 3 → {4, 5}
func buildExampleTree(t *testing.T) *Node[int] {
	root := Root(1)
	if _, err := root.Insert(2); err != nil {
		t.Fatal(err)
	}
	child2, err := root.Insert(3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := child2.Insert(4); err != nil {
		t.Fatal(err)
	}
	if _, err := child2.Insert(5); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestWalkLevelOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	w := root.Walk()
	count := 1
	for node, ok := w.Next(); ok; node, ok = w.Next() {
		v, err := node.Value()
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("walk yields %d", v)
		if v != count {
			t.Errorf("expected value %d at position %d, got %d", count, count, v)
		}
		count++
	}
	if count != 6 {
		t.Errorf("expected walk to yield 5 nodes, yielded %d", count-1)
	}
}

func TestWalkSingleNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	leaf := Leaf(7)
	w := leaf.Walk()
	node, ok := w.Next()
	if !ok || node != leaf {
		t.Fatalf("expected the walk to yield the start node itself")
	}
	if _, ok := w.Next(); ok {
		t.Errorf("expected the walk to be exhausted after one node")
	}
}

func TestWalkIsSinglePass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	w := root.Walk()
	for _, ok := w.Next(); ok; _, ok = w.Next() {
	}
	if _, ok := w.Next(); ok {
		t.Errorf("expected an exhausted walker to stay exhausted")
	}
}

func TestRangeMatchesWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	var fromRange []int
	for node := range root.Range() {
		v, err := node.Value()
		if err != nil {
			t.Fatal(err)
		}
		fromRange = append(fromRange, v)
	}
	var fromWalk []int
	w := root.Walk()
	for node, ok := w.Next(); ok; node, ok = w.Next() {
		v, _ := node.Value()
		fromWalk = append(fromWalk, v)
	}
	if len(fromRange) != len(fromWalk) {
		t.Fatalf("range and walk disagree on length: %d vs %d", len(fromRange), len(fromWalk))
	}
	for i := range fromRange {
		if fromRange[i] != fromWalk[i] {
			t.Errorf("range and walk disagree at %d: %d vs %d", i, fromRange[i], fromWalk[i])
		}
	}
}

func TestRangeStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	count := 0
	for range root.Range() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected early break after 2 nodes, got %d", count)
	}
}

func TestEachDepths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	wantDepth := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2}
	err := root.Each(func(node *Node[int], depth int) error {
		v, err := node.Value()
		if err != nil {
			return err
		}
		if depth != wantDepth[v] {
			t.Errorf("expected node %d at depth %d, got %d", v, wantDepth[v], depth)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestEachStopsOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	boom := errors.New("boom")
	visited := 0
	err := root.Each(func(node *Node[int], depth int) error {
		visited++
		if visited == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error to propagate, got %v", err)
	}
	if visited != 3 {
		t.Errorf("expected iteration to stop at the failing callback, visited %d", visited)
	}
}

func TestWalkSeesPoppedNodeAsDetached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := buildExampleTree(t)
	children, err := root.Children()
	if err != nil {
		t.Fatal(err)
	}
	child2 := children[1]
	w := root.Walk()
	if _, ok := w.Next(); !ok { // root dequeued, children queued
		t.Fatal("unexpected end of walk")
	}
	if err := root.Pop(child2); err != nil {
		t.Fatal(err)
	}
	// The queued handle stays valid and reflects the node's state at
	// dequeue time: child2 is now detached and its subtree still walks.
	var rest []int
	for node, ok := w.Next(); ok; node, ok = w.Next() {
		v, _ := node.Value()
		rest = append(rest, v)
	}
	want := []int{2, 3, 4, 5}
	if len(rest) != len(want) {
		t.Fatalf("expected %v after pop, got %v", want, rest)
	}
	if child2.Parent() != nil {
		t.Errorf("expected popped node to be detached")
	}
}
