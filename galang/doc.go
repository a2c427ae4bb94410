/*
Package galang reads GA expression text and produces expression trees.

The surface language is small: scalar literals ("2.0"), symbolic scalars
("$a"), vector symbols ("e1", "no", "ni", or any other identifier), the
infix operators + - * / ^ and . (with | accepted as an alias for the
inner product), parentheses, and call syntax for inv and rev. Sums bind
loosest; all products share one precedence level and associate left.

Scanning is done with a lexmachine DFA, parsing with a hand-written
recursive-descent parser. The parser builds gamath.Node trees directly.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package galang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamath.lang'.
func tracer() tracing.Trace {
	return tracing.Select("gamath.lang")
}
