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

// OuterProductHandler normalizes the vector factors of a blade. A
// repeated vector symbol annihilates the blade. Otherwise the vectors
// are brought into lexicographic order by adjacent transpositions; an
// odd number of transpositions contributes a factor of −1. The swap
// count of the stable bubble sort is exactly the transposition count,
// which makes the sign correct.
type OuterProductHandler struct{}

// Name is part of the Manipulator interface.
func (o OuterProductHandler) Name() string { return "OuterProductHandler" }

// ManipulateTree is part of the Manipulator interface.
func (o OuterProductHandler) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, o.manipulateSubtree)
}

func (o OuterProductHandler) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	scalars, vectors, ok, err := gamath.ParseBlade(node)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	for i := 0; i < len(vectors); i++ {
		a, aok := vectors[i].Atom.SymName()
		if !aok {
			continue
		}
		for j := i + 1; j < len(vectors); j++ {
			if b, bok := vectors[j].Atom.SymName(); bok && a == b {
				return gamath.NewNum(0.0), nil
			}
		}
	}
	sorted := append([]*gamath.Node(nil), vectors...)
	keys := make([]string, len(sorted))
	for i, vec := range sorted {
		keys[i] = vec.DisplayText()
	}
	swaps := sortByStringKeys(sorted, keys)
	if swaps == 0 {
		return nil, nil
	}
	blade := gamath.NewNode(gamath.OpWedge)
	blade.Children = append(blade.Children, scalars...)
	blade.Children = append(blade.Children, sorted...)
	if swaps%2 == 1 {
		blade.Children = insertAt(blade.Children, 0, gamath.NewNum(-1.0))
	}
	return blade, nil
}
