package arbor

import "fmt"

// Check validates structural invariants for the tree rooted at n:
//
//   - a node is a parent exactly if it owns at least one child,
//   - every child's back-reference resolves to its owning parent,
//   - no node appears twice (no sharing of subtrees, no cycles).
//
// This checker is intentionally strict and meant for use in tests.
func Check[T any](n *Node[T]) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrBrokenInvariant)
	}
	seen := make(map[*Node[T]]bool)
	return checkNode(n, seen)
}

func checkNode[T any](n *Node[T], seen map[*Node[T]]bool) error {
	if seen[n] {
		return fmt.Errorf("%w: node reachable twice", ErrBrokenInvariant)
	}
	seen[n] = true
	isParent := n.IsParent()
	count := n.ChildCount()
	if isParent != (count > 0) {
		return fmt.Errorf("%w: parent flag %v with %d children", ErrBrokenInvariant, isParent, count)
	}
	if !isParent {
		return nil
	}
	children, err := n.Children()
	if err != nil {
		return fmt.Errorf("%w: cannot read children: %v", ErrBrokenInvariant, err)
	}
	for i, child := range children {
		if child == nil {
			return fmt.Errorf("%w: nil child at %d", ErrBrokenInvariant, i)
		}
		if child.Parent() != n {
			return fmt.Errorf("%w: child %d back-reference does not resolve to its parent", ErrBrokenInvariant, i)
		}
		if err := checkNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}
