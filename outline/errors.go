package outline

import "errors"

var (
	// ErrEmptyOutline signals input without a single outline entry.
	ErrEmptyOutline = errors.New("outline: no entries")
	// ErrBadIndent signals an entry that does not fit under the root entry,
	// e.g. a second top-level line.
	ErrBadIndent = errors.New("outline: entry cannot be indented under the root")
	// ErrNoList signals HTML input without a list element.
	ErrNoList = errors.New("outline: no list element found")
)
