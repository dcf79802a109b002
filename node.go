package arbor

/*
BSD 3-Clause License

Copyright (c) 2025–26, the treelight authors

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Node is a shared tree element holding a value of type T. A node is either
// a leaf (no children) or a parent (one or more children); the identity
// follows from the child count and changes automatically as children are
// attached and removed.
//
// A *Node[T] is a handle: any number of holders may reference the same node,
// and mutations through one handle are visible through all of them. Children
// are owned by their parent; the child's link back to the parent is
// non-owning (see backref_weak.go and backref_rc.go for the two backends).
type Node[T any] struct {
	cell cell
	life nodeLife
	self variant[T]
}

// variant is the sum type behind a node: exactly one of leaf or parent.
// Access to a node's variant happens under the node's cell guard.
type variant[T any] interface {
	isLeaf() bool
	val() *T
	up() parentRef[T]
	setUp(parentRef[T])
}

type leaf[T any] struct {
	value T
	prev  parentRef[T]
}

func (l *leaf[T]) isLeaf() bool         { return true }
func (l *leaf[T]) val() *T              { return &l.value }
func (l *leaf[T]) up() parentRef[T]     { return l.prev }
func (l *leaf[T]) setUp(r parentRef[T]) { l.prev = r }

type parent[T any] struct {
	value    T
	prev     parentRef[T]
	children []*Node[T]
}

func (p *parent[T]) isLeaf() bool         { return false }
func (p *parent[T]) val() *T              { return &p.value }
func (p *parent[T]) up() parentRef[T]     { return p.prev }
func (p *parent[T]) setUp(r parentRef[T]) { p.prev = r }

// Root creates a standalone, parentless node holding value. The node starts
// out as a leaf and is promoted once it receives its first child.
func Root[T any](value T) *Node[T] {
	n := &Node[T]{}
	n.self = &leaf[T]{value: value}
	n.life.init()
	return n
}

// Leaf creates a detached leaf node holding value. A detached leaf is
// indistinguishable from a fresh root until it is attached somewhere with
// InsertNode or Promote.
func Leaf[T any](value T) *Node[T] {
	return Root(value)
}

// Insert attaches a new leaf child holding value as the last child of n and
// returns a handle to it. If n is currently a leaf it is promoted to a
// parent as part of the call.
//
// Fails with ErrAlreadyBorrowed if n's interior is exclusively borrowed,
// e.g. when called re-entrantly from within UpdateValue.
func (n *Node[T]) Insert(value T) (*Node[T], error) {
	child := Root(value)
	child.self.setUp(makeParentRef(n))
	if err := n.cell.borrowMut(); err != nil {
		return nil, err
	}
	defer n.cell.releaseMut()
	n.attachLocked(child)
	return child, nil
}

// InsertNode attaches an existing detached node as the last child of n.
// The child must not currently have a parent; attaching an attached node
// fails with ErrExpectedRoot.
func (n *Node[T]) InsertNode(child *Node[T]) error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	// Guard order is parent first, child second; a self-insert trips the
	// child borrow and fails with ErrAlreadyBorrowed.
	if err := child.cell.borrowMut(); err != nil {
		return err
	}
	defer child.cell.releaseMut()
	if child.self.up().get() != nil {
		return fmt.Errorf("%w: child is already attached", ErrExpectedRoot)
	}
	child.self.setUp(makeParentRef(n))
	n.attachLocked(child)
	return nil
}

// attachLocked appends child under n's exclusive borrow, promoting n if it
// is a leaf. The child's back-reference has been set by the caller.
func (n *Node[T]) attachLocked(child *Node[T]) {
	assert(child != nil, "attach called with nil child")
	switch v := n.self.(type) {
	case *leaf[T]:
		n.self = &parent[T]{
			value:    v.value,
			prev:     v.prev,
			children: []*Node[T]{child},
		}
		tracer().Debugf("arbor: node promoted to parent")
	case *parent[T]:
		v.children = append(v.children, child)
	}
	child.life.retain() // the parent's owning hold
}

// Pop removes child from n's children. The child is identified by handle
// identity, not by value: two children holding equal values are distinct.
//
// Fails with ErrNotAParent if n is a leaf and with ErrParentNotFound if
// child is not currently among n's children. On success the child's
// back-reference is cleared; if n lost its last child it is demoted to a
// leaf in the same step.
func (n *Node[T]) Pop(child *Node[T]) error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	p, ok := n.self.(*parent[T])
	if !ok {
		return ErrNotAParent
	}
	pos := -1
	for i, c := range p.children {
		if c == child {
			pos = i
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: node is not a child of this parent", ErrParentNotFound)
	}
	if err := child.cell.borrowMut(); err != nil {
		return err
	}
	defer child.cell.releaseMut()
	// Point of no return: removal, back-reference clearing and a possible
	// demotion happen as one step.
	p.children = append(p.children[:pos], p.children[pos+1:]...)
	if len(p.children) == 0 {
		n.self = &leaf[T]{value: p.value, prev: p.prev}
		tracer().Debugf("arbor: node demoted to leaf")
	}
	child.self.setUp(noParentRef[T]())
	child.life.release() // drop the owning hold
	return nil
}

// Promote explicitly turns leaf node n into a parent with child as its only
// child. Fails with ErrParentUpgrade if n is already a parent. The child's
// back-reference is set to n.
//
// Insert performs this transition implicitly; Promote exists for callers
// that manage detached nodes themselves.
func (n *Node[T]) Promote(child *Node[T]) error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	v, ok := n.self.(*leaf[T])
	if !ok {
		return ErrParentUpgrade
	}
	if err := child.cell.borrowMut(); err != nil {
		return err
	}
	defer child.cell.releaseMut()
	if child.self.up().get() != nil {
		return fmt.Errorf("%w: child is already attached", ErrExpectedRoot)
	}
	n.self = &parent[T]{
		value:    v.value,
		prev:     v.prev,
		children: []*Node[T]{child},
	}
	child.self.setUp(makeParentRef(n))
	child.life.retain()
	return nil
}

// Demote explicitly turns parent node n back into a leaf. The operation is
// rejected for every node that could not legally be a leaf: a parentless
// node fails with ErrRootDowngrade, a node still owning children fails with
// a DowngradeError carrying the count, and a node that already is a leaf
// fails with ErrDowngradeNotParent.
//
// Pop performs the demotion implicitly when a node loses its last child;
// an explicit Demote on a well-formed tree therefore always reports why it
// is not applicable.
func (n *Node[T]) Demote() error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	if n.self.up().get() == nil {
		return ErrRootDowngrade
	}
	p, ok := n.self.(*parent[T])
	if !ok {
		return ErrDowngradeNotParent
	}
	if cnt := len(p.children); cnt > 0 {
		return DowngradeError{Children: cnt}
	}
	n.self = &leaf[T]{value: p.value, prev: p.prev}
	return nil
}

// Value returns the stored value. Fails with ErrAlreadyBorrowed while the
// node's interior is exclusively borrowed.
func (n *Node[T]) Value() (T, error) {
	var zero T
	if err := n.cell.borrow(); err != nil {
		return zero, err
	}
	defer n.cell.release()
	return *n.self.val(), nil
}

// SetValue replaces the stored value. The change is visible through every
// handle aliasing the node.
func (n *Node[T]) SetValue(value T) error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	*n.self.val() = value
	return nil
}

// UpdateValue mutates the stored value in place. The exclusive borrow is
// held for the duration of f; accessing the same node from within f fails
// with ErrAlreadyBorrowed.
func (n *Node[T]) UpdateValue(f func(*T)) error {
	if err := n.cell.borrowMut(); err != nil {
		return err
	}
	defer n.cell.releaseMut()
	f(n.self.val())
	return nil
}

// Children returns the node's children in insertion order. The returned
// slice is a snapshot; later topology changes do not write through.
// Fails with ErrNotAParent if n is a leaf.
func (n *Node[T]) Children() ([]*Node[T], error) {
	if err := n.cell.borrow(); err != nil {
		return nil, err
	}
	defer n.cell.release()
	p, ok := n.self.(*parent[T])
	if !ok {
		return nil, ErrNotAParent
	}
	children := make([]*Node[T], len(p.children))
	copy(children, p.children)
	return children, nil
}

// ExpectChildren returns the node's children and fails with
// ErrExpectedChildren if there are none.
func (n *Node[T]) ExpectChildren() ([]*Node[T], error) {
	children, err := n.Children()
	if err != nil {
		if err == ErrNotAParent {
			return nil, ErrExpectedChildren
		}
		return nil, err
	}
	if len(children) == 0 {
		return nil, ErrExpectedChildren
	}
	return children, nil
}

// ChildCount returns the number of children, 0 for leaves. Returns 0 as well
// while the node's interior is exclusively borrowed.
func (n *Node[T]) ChildCount() int {
	if err := n.cell.borrow(); err != nil {
		return 0
	}
	defer n.cell.release()
	if p, ok := n.self.(*parent[T]); ok {
		return len(p.children)
	}
	return 0
}

// HasChildren reports whether the node currently owns children.
func (n *Node[T]) HasChildren() bool {
	return n.ChildCount() > 0
}

// IsLeaf reports whether the node currently is a leaf. Reports false while
// the node's interior is exclusively borrowed.
func (n *Node[T]) IsLeaf() bool {
	if err := n.cell.borrow(); err != nil {
		return false
	}
	defer n.cell.release()
	return n.self.isLeaf()
}

// IsParent reports whether the node currently owns at least one child.
func (n *Node[T]) IsParent() bool {
	if err := n.cell.borrow(); err != nil {
		return false
	}
	defer n.cell.release()
	return !n.self.isLeaf()
}

// IsRoot reports whether the node has no (living) parent.
func (n *Node[T]) IsRoot() bool {
	return n.Parent() == nil
}

// Parent resolves the node's back-reference to a handle on the parent.
// Returns nil for roots, and nil if the parent has been destroyed even
// though the back-reference is still set: stale references resolve to nil,
// never to a dangling node.
func (n *Node[T]) Parent() *Node[T] {
	if err := n.cell.borrow(); err != nil {
		return nil
	}
	defer n.cell.release()
	return n.self.up().get()
}

// ExpectParent resolves the back-reference and fails with ErrParentNotFound
// if the node has no living parent.
func (n *Node[T]) ExpectParent() (*Node[T], error) {
	if p := n.Parent(); p != nil {
		return p, nil
	}
	return nil, ErrParentNotFound
}

// ExpectLeaf fails with ErrExpectedLeaf if the node is a parent.
func (n *Node[T]) ExpectLeaf() error {
	if n.IsLeaf() {
		return nil
	}
	return ErrExpectedLeaf
}

// ExpectRoot fails with ErrExpectedRoot if the node has a parent.
func (n *Node[T]) ExpectRoot() error {
	if n.IsRoot() {
		return nil
	}
	return ErrExpectedRoot
}

// String renders the node for debugging.
func (n *Node[T]) String() string {
	if err := n.cell.borrow(); err != nil {
		return "Node(borrowed)"
	}
	defer n.cell.release()
	if p, ok := n.self.(*parent[T]); ok {
		up := "none"
		if p.prev.get() != nil {
			up = "set"
		}
		return fmt.Sprintf("Parent(value=%v, parent=%s, children=%d)", p.value, up, len(p.children))
	}
	return fmt.Sprintf("Leaf(%v)", *n.self.val())
}
