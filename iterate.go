package arbor

import "iter"

// Walker is a lazy breadth-first iterator over a node and its descendants.
// Nodes are emitted level by level, siblings in insertion order. A walker is
// single-pass and not restartable.
//
// The walk is not synchronized against mutation: a node mutated while queued
// is observed in whatever state it has when it is dequeued. Queued handles
// stay valid either way.
type Walker[T any] struct {
	queue []queued[T]
}

type queued[T any] struct {
	node  *Node[T]
	depth int
}

// Walk starts a breadth-first walk at n. The walk yields at least n itself.
func (n *Node[T]) Walk() *Walker[T] {
	return &Walker[T]{queue: []queued[T]{{node: n}}}
}

// Next returns the next node in level order, or false when the walk is done.
func (w *Walker[T]) Next() (*Node[T], bool) {
	n, _, ok := w.step()
	return n, ok
}

func (w *Walker[T]) step() (*Node[T], int, bool) {
	if len(w.queue) == 0 {
		return nil, 0, false
	}
	front := w.queue[0]
	w.queue = w.queue[1:]
	assert(front.node != nil, "walk queue contains a nil node")
	children, err := front.node.Children()
	if err == ErrAlreadyBorrowed {
		// The node is mid-mutation; yield it without descending.
		tracer().Debugf("arbor: walker skips borrowed node's children")
	}
	for _, child := range children {
		w.queue = append(w.queue, queued[T]{node: child, depth: front.depth + 1})
	}
	return front.node, front.depth, true
}

// Range returns an iterator over the breadth-first sequence starting at n,
// for use with a range statement.
func (n *Node[T]) Range() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		w := n.Walk()
		for node, ok := w.Next(); ok; node, ok = w.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// Each visits the breadth-first sequence starting at n. The callback
// receives each node and its depth below n (n itself has depth 0).
// Iteration stops at the first callback error and returns that error.
func (n *Node[T]) Each(f func(node *Node[T], depth int) error) error {
	w := n.Walk()
	for {
		node, depth, ok := w.step()
		if !ok {
			return nil
		}
		if err := f(node, depth); err != nil {
			return err
		}
	}
}
