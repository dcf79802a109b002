//go:build arbor_rc

package arbor

import "sync/atomic"

// The arbor_rc backend counts references manually instead of relying on
// GC-weak pointers. A node starts with one hold (the constructing handle);
// a parent's ownership of a child and every Retain add one more. When the
// count drops to zero the storage is considered dead and back-references to
// it resolve to nil.

type parentRef[T any] struct {
	p *Node[T]
}

func makeParentRef[T any](n *Node[T]) parentRef[T] {
	return parentRef[T]{p: n}
}

func noParentRef[T any]() parentRef[T] {
	return parentRef[T]{}
}

// get resolves the back-reference to a strong handle, or nil if the
// reference is unset or the parent's count has reached zero. The stored
// pointer itself holds no count.
func (r parentRef[T]) get() *Node[T] {
	if r.p == nil || r.p.life.dead() {
		return nil
	}
	return r.p
}

type nodeLife struct {
	refs atomic.Int32
	gone atomic.Bool
}

func (l *nodeLife) init() {
	l.refs.Store(1)
}

func (l *nodeLife) retain() {
	l.refs.Add(1)
}

func (l *nodeLife) release() {
	if l.refs.Add(-1) <= 0 {
		l.gone.Store(true)
	}
}

func (l *nodeLife) dead() bool {
	return l.gone.Load()
}

// Retain registers an additional external hold on a node and returns the
// handle.
func Retain[T any](n *Node[T]) *Node[T] {
	n.life.retain()
	return n
}

// Release drops an external hold on a node. Once the last hold—owning or
// external—is gone, back-references to the node resolve to nil.
func Release[T any](n *Node[T]) {
	n.life.release()
}
