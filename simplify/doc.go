/*
Package simplify implements the term-rewrite engine for GA expression
trees: a set of local rewrite passes and a driver cycling them until the
tree reaches a fixed point.

Each pass is a Manipulator. The shared walking strategy is depth-first
and deepest-first: a pass descends into children before attempting a
rewrite of the node itself, so subtrees are as simple as possible before
a rewrite (such as distribution) deep-copies them. A pass performs at
most one rewrite per invocation and communicates only by returning a
replacement subtree.

The driver invokes the passes in a fixed priority order. The first pass
to make progress wins the iteration; the resulting tree is validated,
checked against a size limit, and its canonical text is checked against
the set of previously seen forms. A repeated form or an exceeded size
limit terminates simplification with an error. When no pass makes
progress the tree is the fixed point and is returned.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package simplify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamath.simplify'.
func tracer() tracing.Trace {
	return tracing.Select("gamath.simplify")
}
