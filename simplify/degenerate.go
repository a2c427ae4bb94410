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

// DegenerateCaseHandler removes degenerate operator applications:
// empty and single-operand products and sums, factors of 1, terms of 0,
// products annihilated by a 0 factor. It also commutes the unit product
// types: a geometric product whose only non-scalar factor is an outer
// product is retagged as an outer product, and vice versa.
type DegenerateCaseHandler struct{}

// Name is part of the Manipulator interface.
func (h DegenerateCaseHandler) Name() string { return "DegenerateCaseHandler" }

// ManipulateTree is part of the Manipulator interface.
func (h DegenerateCaseHandler) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, h.manipulateSubtree)
}

func (h DegenerateCaseHandler) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if node.Atom.IsAnyOp(gamath.OpMul, gamath.OpInner, gamath.OpWedge, gamath.OpAdd) {
		if len(node.Children) == 1 {
			return node.Children[0], nil
		}
	}
	if node.Atom.IsAnyOp(gamath.OpMul, gamath.OpInner, gamath.OpWedge) {
		if len(node.Children) == 0 {
			return gamath.NewNum(1.0), nil
		}
		for _, child := range node.Children {
			if child.Atom.IsNum(0.0) {
				return gamath.NewNum(0.0), nil
			}
		}
		for i, child := range node.Children {
			if child.Atom.IsNum(1.0) {
				node.Children = removeAt(node.Children, i)
				return node, nil
			}
		}
	}
	if node.Atom.IsOp(gamath.OpAdd) {
		if len(node.Children) == 0 {
			return gamath.NewNum(0.0), nil
		}
		for i, child := range node.Children {
			if child.Atom.IsNum(0.0) {
				node.Children = removeAt(node.Children, i)
				return node, nil
			}
		}
	}
	// commutation of the unit product types
	opList := [2]gamath.Op{gamath.OpMul, gamath.OpWedge}
	for i := 0; i < 2; i++ {
		if !node.Atom.IsOp(opList[i]) {
			continue
		}
		other := opList[(i+1)%2]
		for j, child := range node.Children {
			if !child.Atom.IsOp(other) {
				continue
			}
			scalarSiblings := true
			for k, sibling := range node.Children {
				if k == j {
					continue
				}
				g, known, err := sibling.Grade()
				if err != nil {
					return nil, err
				}
				if !known || g != 0 {
					scalarSiblings = false
					break
				}
			}
			if scalarSiblings {
				node.Atom = gamath.Atomize(other)
				return node, nil
			}
			break
		}
	}
	return nil, nil
}
