//go:build arbor_rc

package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStaleBackReferenceResolvesNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := Root(1)
	child, err := root.Insert(2)
	if err != nil {
		t.Fatal(err)
	}
	Release(root) // drop the last hold on the parent
	if p := child.Parent(); p != nil {
		t.Errorf("expected stale back-reference to resolve to nil, got %v", p)
	}
	if _, err := child.ExpectParent(); err == nil {
		t.Errorf("expected ExpectParent to fail for a released parent")
	}
}

func TestRetainKeepsParentAlive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := Root(1)
	child, err := root.Insert(2)
	if err != nil {
		t.Fatal(err)
	}
	extra := Retain(root)
	Release(root)
	if child.Parent() != extra {
		t.Errorf("expected retained parent to stay resolvable")
	}
	Release(extra)
	if child.Parent() != nil {
		t.Errorf("expected parent to be gone after the last release")
	}
}

func TestOwnershipCountsAsHold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	root := Root(1)
	child, err := root.Insert(2)
	if err != nil {
		t.Fatal(err)
	}
	grand, err := child.Insert(3)
	if err != nil {
		t.Fatal(err)
	}
	Release(child) // external hold gone, but root still owns child
	if grand.Parent() != child {
		t.Errorf("expected owned child to stay alive without external holds")
	}
	if err := root.Pop(child); err != nil {
		t.Fatal(err)
	}
	// Popping dropped the owning hold, which was the last one.
	if grand.Parent() != nil {
		t.Errorf("expected child storage to be reclaimed after pop")
	}
}
