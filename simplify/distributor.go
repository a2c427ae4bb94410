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

// Distributor expands a product over a sum appearing among its factors:
// every term of the sum yields one copy of the surrounding product with
// the sum replaced by that term. Applies to all three products and to
// the reverse.
type Distributor struct{}

// Name is part of the Manipulator interface.
func (d Distributor) Name() string { return "Distributor" }

// ManipulateTree is part of the Manipulator interface.
func (d Distributor) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, d.manipulateSubtree)
}

func (d Distributor) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if !node.Atom.IsAnyOp(gamath.OpInner, gamath.OpWedge, gamath.OpMul, gamath.OpRev) {
		return nil, nil
	}
	for i, child := range node.Children {
		if !child.Atom.IsOp(gamath.OpAdd) || len(child.Children) < 2 {
			continue
		}
		sum := gamath.NewNode(gamath.OpAdd)
		for _, term := range child.Children {
			product := &gamath.Node{Atom: node.Atom}
			for _, sibling := range node.Children[:i] {
				product.Children = append(product.Children, sibling.Copy())
			}
			product.Children = append(product.Children, term.Copy())
			for _, sibling := range node.Children[i+1:] {
				product.Children = append(product.Children, sibling.Copy())
			}
			sum.Children = append(sum.Children, product)
		}
		return sum, nil
	}
	return nil, nil
}
