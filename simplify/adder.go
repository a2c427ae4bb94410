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

// Adder folds pairs of scalar literals under a sum into their arithmetic
// sum and keeps the summands sorted by display-text length. The sort
// order is a display heuristic; for the engine only the progress signal
// matters, so a sorted sum counts as a rewrite only if the order
// actually changed.
type Adder struct{}

// Name is part of the Manipulator interface.
func (a Adder) Name() string { return "Adder" }

// ManipulateTree is part of the Manipulator interface.
func (a Adder) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, a.manipulateSubtree)
}

func (a Adder) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if !node.Atom.IsOp(gamath.OpAdd) {
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
			node.Children = insertAt(node.Children, 0, gamath.NewNum(x+y))
			return node, nil
		}
	}
	keys := make([]int, len(node.Children))
	for i, child := range node.Children {
		keys[i] = len(child.DisplayText())
	}
	if sortByIntKeys(node.Children, keys) > 0 {
		return node, nil
	}
	return nil, nil
}
