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

// Multiplier folds pairs of scalar literals under a product into their
// arithmetic product, pulls scalar factors out of nested products up to
// the surrounding product, and moves scalar factors to the front.
// Scalars commute with everything; the relative order of the remaining
// factors is preserved by the stable sort, since the products are not
// generally commutative.
type Multiplier struct{}

// Name is part of the Manipulator interface.
func (m Multiplier) Name() string { return "Multiplier" }

// ManipulateTree is part of the Manipulator interface.
func (m Multiplier) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, m.manipulateSubtree)
}

func (m Multiplier) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if !node.Atom.IsAnyOp(gamath.OpMul, gamath.OpInner, gamath.OpWedge) {
		return nil, nil
	}
	for i := 0; i < len(node.Children); i++ {
		x, xok := node.Children[i].Atom.NumValue()
		if !xok {
			continue
		}
		for j := i + 1; j < len(node.Children); j++ {
			y, yok := node.Children[j].Atom.NumValue()
			if !yok {
				continue
			}
			node.Children = removeAt(node.Children, j)
			node.Children = removeAt(node.Children, i)
			node.Children = insertAt(node.Children, 0, gamath.NewNum(x*y))
			return node, nil
		}
	}
	for _, child := range node.Children {
		if !child.Atom.IsAnyOp(gamath.OpMul, gamath.OpInner, gamath.OpWedge) {
			continue
		}
		for i, factor := range child.Children {
			g, known, err := factor.Grade()
			if err != nil {
				return nil, err
			}
			if known && g == 0 {
				child.Children = removeAt(child.Children, i)
				node.Children = insertAt(node.Children, 0, factor)
				return node, nil
			}
		}
	}
	keys := make([]int, len(node.Children))
	for i, child := range node.Children {
		g, known, err := child.Grade()
		if err != nil {
			return nil, err
		}
		if known && g == 0 {
			keys[i] = 0
		} else {
			keys[i] = 1
		}
	}
	if sortByIntKeys(node.Children, keys) > 0 {
		return node, nil
	}
	return nil, nil
}
