package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/gamath"
)

// GeometricProductHandler expands an adjacent pair of blade factors
// inside a geometric product. A pair with a vector on either side uses
// the identity a·B + a∧B; two higher blades peel a vector off the
// smaller side. Two sweeps are made over the adjacent pairs: the first
// restricted to pairs of different grades, the second admitting equal
// grades as well. The restriction lets grade-separating expansions
// settle before same-grade pairs (whose expansion grows the tree) are
// attacked.
type GeometricProductHandler struct{}

// Name is part of the Manipulator interface.
func (g GeometricProductHandler) Name() string { return "GeometricProductHandler" }

// ManipulateTree is part of the Manipulator interface.
func (g GeometricProductHandler) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, g.manipulateSubtree)
}

func (g GeometricProductHandler) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	repl, err := g.expandPair(node, false)
	if err != nil || repl != nil {
		return repl, err
	}
	return g.expandPair(node, true)
}

func (g GeometricProductHandler) expandPair(node *gamath.Node, allowSameGrade bool) (*gamath.Node, error) {
	if !node.Atom.IsOp(gamath.OpMul) {
		return nil, nil
	}
	for i := 0; i+1 < len(node.Children); i++ {
		scalarsA, vectorsA, okA, err := gamath.ParseBlade(node.Children[i])
		if err != nil {
			return nil, err
		}
		scalarsB, vectorsB, okB, err := gamath.ParseBlade(node.Children[i+1])
		if err != nil {
			return nil, err
		}
		if !okA || !okB || len(vectorsA) == 0 || len(vectorsB) == 0 {
			continue
		}
		if len(vectorsA) == len(vectorsB) && !allowSameGrade {
			continue
		}
		var sum *gamath.Node
		switch {
		case len(vectorsA) == 1 || len(vectorsB) == 1:
			// a·B + a∧B
			sum = gamath.NewNode(gamath.OpAdd,
				gamath.NewNode(gamath.OpInner,
					wedgeOf(vectorsA), wedgeOf(vectorsB)),
				gamath.NewNode(gamath.OpWedge,
					wedgeOf(vectorsA), wedgeOf(vectorsB)),
			)
		case len(vectorsA) <= len(vectorsB):
			sum = gamath.NewNode(gamath.OpAdd,
				gamath.NewNode(gamath.OpMul,
					vectorsA[0].Copy(),
					wedgeOf(vectorsA[1:]),
					wedgeOf(vectorsB)),
				gamath.NewNode(gamath.OpMul,
					gamath.NewNum(-1.0),
					gamath.NewNode(gamath.OpInner,
						vectorsA[0].Copy(),
						wedgeOf(vectorsA[1:])),
					wedgeOf(vectorsB)),
			)
		default:
			last := len(vectorsB) - 1
			sum = gamath.NewNode(gamath.OpAdd,
				gamath.NewNode(gamath.OpMul,
					wedgeOf(vectorsA),
					wedgeOf(vectorsB[:last]),
					vectorsB[last].Copy()),
				gamath.NewNode(gamath.OpMul,
					gamath.NewNum(-1.0),
					wedgeOf(vectorsA),
					gamath.NewNode(gamath.OpInner,
						wedgeOf(vectorsB[:last]),
						vectorsB[last].Copy())),
			)
		}
		// the scalar factors of both operands move out to the parent
		node.Children = append(node.Children, scalarsA...)
		node.Children = append(node.Children, scalarsB...)
		node.Children = removeAt(node.Children, i)
		node.Children = removeAt(node.Children, i)
		node.Children = insertAt(node.Children, i, sum)
		return node, nil
	}
	return nil, nil
}

// wedgeOf builds an outer product over copies of the given vectors.
func wedgeOf(vectors []*gamath.Node) *gamath.Node {
	wedge := gamath.NewNode(gamath.OpWedge)
	for _, vec := range vectors {
		wedge.Children = append(wedge.Children, vec.Copy())
	}
	return wedge
}
