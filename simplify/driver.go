package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gamath"
)

// Options configure a simplification run. The zero value means: no
// iteration limit, no size limit, the built-in conformal metric, and no
// log sink (trace output only).
type Options struct {
	MaxIters    int                 // stop after this many rewrites; 0 = unlimited
	MaxTreeSize int                 // fatal node-count limit; 0 = unlimited
	Form        gamath.BilinearForm // nil = conformal metric
	Log         func(string)        // event sink: pass names and tree sizes
}

// Passes returns the standard simplification pipeline around a bilinear
// form (nil selects the conformal metric). The order of passes has been
// carefully chosen. In some cases the order may not matter; in others,
// very much so.
func Passes(form gamath.BilinearForm) []Manipulator {
	return []Manipulator{
		NewInnerProductHandler(form),
		Associator{},
		DegenerateCaseHandler{},
		Inverter{},
		GeometricProductHandler{},
		Adder{},
		Multiplier{},
		OuterProductHandler{},
		Distributor{},
	}
}

// SimplifyTree rewrites an expression tree with the standard pipeline
// until it reaches a fixed point, the iteration limit, or a fatal
// condition. The caller's tree is left untouched; the result is a fresh
// tree.
func SimplifyTree(root *gamath.Node, opts *Options) (*gamath.Node, error) {
	var form gamath.BilinearForm
	if opts != nil {
		form = opts.Form
	}
	return ManipulateTree(root, Passes(form), opts)
}

// ManipulateTree is the lower-level entry point with a caller-supplied
// pass list. Passes are tried in list order on every iteration; the
// first pass returning a replacement wins the iteration. Every accepted
// replacement is validated, size-checked and recorded under its
// canonical text; a repeated text is a cycle and fatal. When no pass
// makes progress, the tree is the fixed point. Reaching MaxIters is not
// an error: the current tree is returned as-is.
func ManipulateTree(root *gamath.Node, passes []Manipulator, opts *Options) (*gamath.Node, error) {
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Log
	if log == nil {
		log = func(string) {}
	}
	node := root.Copy() // the caller keeps ownership of the original
	seen := treeset.NewWith(utils.StringComparator)
	seen.Add(node.ExpressionText())
	iter := 0
	for opts.MaxIters == 0 || iter < opts.MaxIters {
		iter++
		progress := false
		for _, pass := range passes {
			repl, err := pass.ManipulateTree(node)
			if err != nil {
				return nil, err
			}
			if repl == nil {
				continue
			}
			log(pass.Name())
			if !repl.IsValid() {
				return nil, fmt.Errorf("%w (after %s)", ErrInvalidTree, pass.Name())
			}
			size := repl.Size()
			log(fmt.Sprintf("Tree size: %d", size))
			if opts.MaxTreeSize > 0 && size > opts.MaxTreeSize {
				return nil, fmt.Errorf("%w: size %d, limit %d", ErrSizeExceeded, size, opts.MaxTreeSize)
			}
			node = repl
			text := node.ExpressionText()
			tracer().Debugf("%s %s ⟼ %s", pass.Name(), fingerprint(text), text)
			if seen.Contains(text) {
				dumpHistory(seen)
				return nil, fmt.Errorf("%w: %s", ErrCycleDetected, text)
			}
			seen.Add(text)
			progress = true
			break
		}
		if !progress {
			break // fixed point
		}
	}
	return node, nil
}

func dumpHistory(seen *treeset.Set) {
	tracer().Debugf("expression history (%d forms):", seen.Size())
	for _, text := range seen.Values() {
		tracer().Debugf("   %s", text)
	}
}

// --- Helpers ---------------------------------------------------------------

// fingerprint condenses a canonical expression text for trace output.
func fingerprint(text string) string {
	hash, err := structhash.Hash(struct {
		expr string
	}{ // put it in an anonymous struct
		expr: text,
	}, 1)
	if err != nil { // no reason for this to happen, but the API demands it
		panic(err)
	}
	return hash
}
