/*
Package gamath implements the expression tree model for a symbolic
simplifier of Geometric Algebra (GA) expressions, together with the
grade calculus and blade decomposition on such trees.

The algebra is the 3-dimensional conformal model with basis vectors
e1, e2 and e3, extended by the two null vectors no (origin) and
ni (infinity). Expressions are free-form trees built from scalar
literals, symbolic scalars ("$"-prefixed), symbolic vectors, and the
operators +, -, * (geometric product), . (inner product), ^ (outer
product), /, inv and rev.

Trees are homogenous: every node carries a tagged Atom payload and an
ordered list of children. No node object may appear twice within the
same tree; all sharing is resolved by deep copies. The simplification
passes working on these trees live in package simplify.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package gamath

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamath.tree'.
func tracer() tracing.Trace {
	return tracing.Select("gamath.tree")
}
