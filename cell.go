package arbor

import "sync"

// cell guards a node's interior. Acquisition never blocks: a conflicting
// borrow—typically a re-entrant access through an aliasing handle—fails
// with ErrAlreadyBorrowed right away.
//
// The guard allows any number of concurrent shared borrows, or exactly one
// exclusive borrow. Every acquire must be paired with its release on all
// exit paths.
type cell struct {
	mu sync.RWMutex
}

// borrowMut acquires the exclusive borrow.
func (c *cell) borrowMut() error {
	if !c.mu.TryLock() {
		return ErrAlreadyBorrowed
	}
	return nil
}

func (c *cell) releaseMut() {
	c.mu.Unlock()
}

// borrow acquires a shared borrow.
func (c *cell) borrow() error {
	if !c.mu.TryRLock() {
		return ErrAlreadyBorrowed
	}
	return nil
}

func (c *cell) release() {
	c.mu.RUnlock()
}
