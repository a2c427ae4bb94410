/*
Package gacalc/main provides a command line tool for simplifying GA
expressions. It offers a one-shot mode ("gacalc simplify <expr>") and an
interactive REPL ("gacalc repl") for entering expressions line by line.
The REPL serves as a sandbox for experiments with the rewrite engine.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamath.simplify'
func tracer() tracing.Trace {
	return tracing.Select("gamath.simplify")
}
