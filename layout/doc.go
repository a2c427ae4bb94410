/*
Package layout computes plane positions and bounding rectangles for the
nodes of an expression tree. It serves graphical tree renderers, which
consume target positions laid out bottom-up (children centered under
their parent), animated current positions converging toward the targets,
and per-node and per-subtree bounding rectangles.

The engine itself never depends on this package; positions are kept in
side tables so that expression trees stay pure.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamath.layout'.
func tracer() tracing.Trace {
	return tracing.Select("gamath.layout")
}
