/*
Package outline constructs arbor trees from tree-shaped external text.

Two input shapes are supported: indented outline text, where each line is a
node and leading whitespace depth determines parentage, and HTML lists,
where nested <ul>/<ol> elements determine parentage. In both shapes the
resulting tree holds the entries' text as node values.

Large outline files may be loaded asynchronously. Loading publishes every
attached node on a broadcast channel, so clients can observe progress; the
finished tree is handed over at a single synchronization point (Loader.Tree)
and must not be touched before that.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2025–26, the treelight authors

Please refer to the License file in the repository root.
*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
