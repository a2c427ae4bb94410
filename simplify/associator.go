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

// Associator flattens nested sums, geometric products and outer products
// into their parent node. The inner product and subtraction are not
// generally associative and are left alone.
type Associator struct{}

// Name is part of the Manipulator interface.
func (a Associator) Name() string { return "Associator" }

// ManipulateTree is part of the Manipulator interface.
func (a Associator) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, a.manipulateSubtree)
}

func (a Associator) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if !node.Atom.IsAnyOp(gamath.OpAdd, gamath.OpMul, gamath.OpWedge) {
		return nil, nil
	}
	for i, child := range node.Children {
		if child.Atom != node.Atom {
			continue
		}
		flat := &gamath.Node{Atom: node.Atom}
		for _, sibling := range node.Children[:i] {
			flat.Children = append(flat.Children, sibling.Copy())
		}
		for _, grandchild := range child.Children {
			flat.Children = append(flat.Children, grandchild.Copy())
		}
		for _, sibling := range node.Children[i+1:] {
			flat.Children = append(flat.Children, sibling.Copy())
		}
		return flat, nil
	}
	return nil, nil
}
