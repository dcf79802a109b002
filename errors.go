package arbor

import (
	"errors"
	"fmt"
)

var (
	// ErrDowngradeNotParent signals a demotion request for a node that is
	// already a leaf.
	ErrDowngradeNotParent = errors.New("arbor: downgrade target is not a parent")
	// ErrRootDowngrade signals a demotion request for a node without a parent.
	// Root nodes are never demoted on request.
	ErrRootDowngrade = errors.New("arbor: root node cannot be downgraded")
	// ErrDowngradeWithChildren signals a demotion request for a parent that
	// still owns children. Errors wrapping this sentinel are of type
	// DowngradeError and carry the child count.
	ErrDowngradeWithChildren = errors.New("arbor: downgrade target still owns children")
	// ErrParentUpgrade signals a promotion request for a node that is already
	// a parent.
	ErrParentUpgrade = errors.New("arbor: upgrade target is already a parent")
	// ErrExpectedLeaf signals that an operation required a leaf but got a parent.
	ErrExpectedLeaf = errors.New("arbor: expected a leaf node")
	// ErrExpectedRoot signals that an operation required a parentless node but
	// the node is attached.
	ErrExpectedRoot = errors.New("arbor: expected a root node")
	// ErrNotAParent signals that an operation required a parent but got a leaf.
	ErrNotAParent = errors.New("arbor: expected a parent node")
	// ErrAlreadyBorrowed signals that a node's interior guard could not be
	// acquired. Conflicts are reported immediately, never waited out.
	ErrAlreadyBorrowed = errors.New("arbor: node interior is already borrowed")
	// ErrParentNotFound signals a missing parent link, or a child that is not
	// present under the stated parent.
	ErrParentNotFound = errors.New("arbor: parent node not found")
	// ErrExpectedChildren signals a children request on a node without any.
	ErrExpectedChildren = errors.New("arbor: expected the node to have children")
	// ErrBrokenInvariant is a diagnostic error reported by Check. It is not
	// returned by mutators.
	ErrBrokenInvariant = errors.New("arbor: broken structural invariant")
)

// DowngradeError reports a rejected demotion of a parent that still owns
// children. It wraps ErrDowngradeWithChildren, so callers may either match
// with errors.Is or retrieve the exact count with errors.As.
type DowngradeError struct {
	Children int
}

func (e DowngradeError) Error() string {
	return fmt.Sprintf("arbor: downgrade target still owns %d children", e.Children)
}

// Unwrap links the error to the ErrDowngradeWithChildren sentinel.
func (e DowngradeError) Unwrap() error {
	return ErrDowngradeWithChildren
}
