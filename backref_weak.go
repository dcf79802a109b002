//go:build !arbor_rc

package arbor

import "weak"

// The default back-reference backend stores a GC-weak pointer to the parent.
// The reference never keeps the parent alive; once the parent becomes
// unreachable and is collected, resolution yields nil.

type parentRef[T any] struct {
	p weak.Pointer[Node[T]]
}

func makeParentRef[T any](n *Node[T]) parentRef[T] {
	return parentRef[T]{p: weak.Make(n)}
}

func noParentRef[T any]() parentRef[T] {
	return parentRef[T]{}
}

// get resolves the back-reference to a strong handle, or nil if the
// reference is unset or the parent is gone.
func (r parentRef[T]) get() *Node[T] {
	return r.p.Value()
}

// nodeLife is empty under the weak backend; node lifetime is entirely up to
// the garbage collector.
type nodeLife struct{}

func (l *nodeLife) init()      {}
func (l *nodeLife) retain()    {}
func (l *nodeLife) release()   {}
func (l *nodeLife) dead() bool { return false }

// Retain marks an additional external hold on a node. Under the weak backend
// this is a no-op and merely returns the handle; it exists so client code is
// source-compatible with the arbor_rc build.
func Retain[T any](n *Node[T]) *Node[T] {
	return n
}

// Release drops an external hold on a node. A no-op under the weak backend;
// see Retain.
func Release[T any](n *Node[T]) {
}
