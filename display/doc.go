/*
Package display renders arbor trees for humans.

The console renderer prints one node per line, children indented under their
parent with box-drawing branch glyphs, and node labels colored by role
(root, inner parent, leaf). Labels are measured in terminal cells—grapheme
by grapheme, respecting East Asian width—and clipped to the available line
width, so a render never wraps.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2025–26, the treelight authors

Please refer to the License file in the repository root.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
