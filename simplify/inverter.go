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

// Inverter eliminates subtraction and division in favor of scaled sums
// and inverses, and resolves inverses and reverses where the algebra
// admits it:
//
//	a - b        ⟼  a + (-1)·b
//	a / b        ⟼  a · inv(b)
//	inv(x1·…·xn) ⟼  inv(xn)·…·inv(x1)
//	rev(x1·…·xn) ⟼  rev(xn)·…·rev(x1)   (also across outer products)
//	inv(s)       ⟼  1/s                  for a scalar literal s
//	inv(B)       ⟼  inv(S·(V·V)) · rev(V) for a blade B = S·∧V
//	rev(x)       ⟼  x                    for grade 0 or 1
//
// Inversion of a general multivector that is neither scalar nor blade is
// outside this pass's competence; it declines.
type Inverter struct{}

// Name is part of the Manipulator interface.
func (v Inverter) Name() string { return "Inverter" }

// ManipulateTree is part of the Manipulator interface.
func (v Inverter) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, v.manipulateSubtree)
}

func (v Inverter) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if node.Atom.IsOp(gamath.OpSub) && len(node.Children) == 2 {
		return gamath.NewNode(gamath.OpAdd,
			node.Children[0].Copy(),
			gamath.NewNode(gamath.OpMul,
				gamath.NewNum(-1.0),
				node.Children[1].Copy(),
			),
		), nil
	}
	if node.Atom.IsOp(gamath.OpDiv) && len(node.Children) == 2 {
		return gamath.NewNode(gamath.OpMul,
			node.Children[0].Copy(),
			gamath.NewNode(gamath.OpInv, node.Children[1].Copy()),
		), nil
	}
	if !node.Atom.IsAnyOp(gamath.OpInv, gamath.OpRev) || len(node.Children) != 1 {
		return nil, nil
	}
	op, _ := node.Atom.OpName()
	arg := node.Children[0]
	// unwrap over a product: invert/reverse the factors in reverse order.
	// The reverse additionally passes through outer products, since
	// rev(A∧B) = rev(B)∧rev(A).
	if argOp, isOp := arg.Atom.OpName(); isOp && len(arg.Children) > 1 {
		if argOp == gamath.OpMul || (op == gamath.OpRev && argOp == gamath.OpWedge) {
			product := gamath.NewNode(argOp)
			for i := len(arg.Children) - 1; i >= 0; i-- {
				product.Children = append(product.Children,
					gamath.NewNode(op, arg.Children[i].Copy()))
			}
			return product, nil
		}
	}
	if op == gamath.OpInv {
		if s, isNum := arg.Atom.NumValue(); isNum {
			if s == 0 {
				return nil, nil // inv(0.0) has no value; decline
			}
			return gamath.NewNum(1.0 / s), nil
		}
		scalars, vectors, isBlade, err := gamath.ParseBlade(arg)
		if err != nil {
			return nil, err
		}
		if isBlade {
			// inverse of a blade: reverse over squared magnitude
			square := func() *gamath.Node {
				p := gamath.NewNode(gamath.OpMul)
				for _, vec := range vectors {
					p.Children = append(p.Children, vec.Copy())
				}
				return p
			}
			magnitude := gamath.NewNode(gamath.OpInner)
			magnitude.Children = append(magnitude.Children, scalars...)
			magnitude.Children = append(magnitude.Children, square(), square())
			reversed := gamath.NewNode(gamath.OpWedge)
			for i := len(vectors) - 1; i >= 0; i-- {
				reversed.Children = append(reversed.Children, vectors[i].Copy())
			}
			return gamath.NewNode(gamath.OpMul,
				gamath.NewNode(gamath.OpInv, magnitude),
				reversed,
			), nil
		}
	}
	if op == gamath.OpRev {
		g, known, err := arg.Grade()
		if err != nil {
			return nil, err
		}
		if known && (g == 0 || g == 1) {
			return arg, nil
		}
	}
	return nil, nil
}
