package simplify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/gamath"
)

// InnerProductHandler contracts inner products of blades. Vector-vector
// pairings are resolved through the bilinear form; a vector against a
// higher blade expands into the alternating-sign contraction sum; two
// higher blades are peeled one vector at a time. At most two operands of
// nonzero grade are admissible.
type InnerProductHandler struct {
	form gamath.BilinearForm
}

// NewInnerProductHandler creates the pass around a bilinear form. A nil
// form selects the built-in conformal metric.
func NewInnerProductHandler(form gamath.BilinearForm) InnerProductHandler {
	if form == nil {
		form = gamath.ConformalMetric
	}
	return InnerProductHandler{form: form}
}

// Name is part of the Manipulator interface.
func (h InnerProductHandler) Name() string { return "InnerProductHandler" }

// ManipulateTree is part of the Manipulator interface.
func (h InnerProductHandler) ManipulateTree(node *gamath.Node) (*gamath.Node, error) {
	return walk(node, h.manipulateSubtree)
}

func (h InnerProductHandler) manipulateSubtree(node *gamath.Node) (*gamath.Node, error) {
	if !node.Atom.IsOp(gamath.OpInner) {
		return nil, nil
	}
	var scalarsA, scalarsB, vectorsA, vectorsB []*gamath.Node
	haveA, haveB := false, false
	var others []*gamath.Node
	for _, child := range node.Children {
		scalars, vectors, ok, err := gamath.ParseBlade(child)
		if err != nil {
			return nil, err
		}
		if ok && len(vectors) > 0 {
			switch {
			case !haveA:
				scalarsA, vectorsA = scalars, vectors
				haveA = true
			case !haveB:
				scalarsB, vectorsB = scalars, vectors
				haveB = true
			default:
				return nil, fmt.Errorf("%w: %s", gamath.ErrAmbiguousInnerProduct, node.ExpressionText())
			}
		} else {
			others = append(others, child)
		}
	}
	if !haveA || !haveB {
		return nil, nil
	}
	switch {
	case len(vectorsA) == 1 && len(vectorsB) == 1:
		symA, _ := vectorsA[0].Atom.SymName()
		symB, _ := vectorsB[0].Atom.SymName()
		if scalar, known := h.form(symA, symB); known {
			product := gamath.NewNode(gamath.OpMul, gamath.NewNum(scalar))
			product.Children = append(product.Children, others...)
			product.Children = append(product.Children, scalarsA...)
			product.Children = append(product.Children, scalarsB...)
			return product, nil
		}
		if symA > symB {
			// normalize operand order of an undetermined pairing
			inner := gamath.NewNode(gamath.OpInner)
			inner.Children = append(inner.Children, others...)
			inner.Children = append(inner.Children, scalarsA...)
			inner.Children = append(inner.Children, scalarsB...)
			inner.Children = append(inner.Children, vectorsB...)
			inner.Children = append(inner.Children, vectorsA...)
			return inner, nil
		}
	case len(vectorsA) == 1 && len(vectorsB) > 1:
		sum := expandVectorWithBlade(vectorsA[0], vectorsB, 1)
		return wrapScaled(others, scalarsA, scalarsB, sum), nil
	case len(vectorsA) > 1 && len(vectorsB) == 1:
		j := 0
		if len(vectorsA)%2 == 1 {
			j = 1
		}
		sum := expandVectorWithBlade(vectorsB[0], vectorsA, j)
		return wrapScaled(others, scalarsA, scalarsB, sum), nil
	case len(vectorsA) > 1 && len(vectorsB) > 1:
		product := gamath.NewNode(gamath.OpMul)
		product.Children = append(product.Children, others...)
		product.Children = append(product.Children, scalarsA...)
		product.Children = append(product.Children, scalarsB...)
		if len(vectorsA) >= len(vectorsB) {
			last := vectorsA[len(vectorsA)-1]
			vectorsA = vectorsA[:len(vectorsA)-1]
			product.Children = append(product.Children,
				gamath.NewNode(gamath.OpInner,
					gamath.NewNode(gamath.OpWedge, vectorsA...),
					gamath.NewNode(gamath.OpInner,
						last,
						gamath.NewNode(gamath.OpWedge, vectorsB...),
					),
				))
		} else {
			first := vectorsB[0]
			vectorsB = vectorsB[1:]
			product.Children = append(product.Children,
				gamath.NewNode(gamath.OpInner,
					gamath.NewNode(gamath.OpInner,
						gamath.NewNode(gamath.OpWedge, vectorsA...),
						first,
					),
					gamath.NewNode(gamath.OpWedge, vectorsB...),
				))
		}
		return product, nil
	}
	return nil, nil
}

// expandVectorWithBlade expands v · (b_0∧…∧b_{n-1}) into the alternating
// contraction sum Σ_i ±(v·b_i) ∧ (blade without b_i). The parity offset j
// selects which side the vector is contracted from.
func expandVectorWithBlade(vector *gamath.Node, blade []*gamath.Node, j int) *gamath.Node {
	sum := gamath.NewNode(gamath.OpAdd)
	for i := range blade {
		pairing := gamath.NewNode(gamath.OpInner)
		if i%2 == j {
			pairing.Children = append(pairing.Children, gamath.NewNum(-1.0))
		}
		pairing.Children = append(pairing.Children, vector.Copy(), blade[i].Copy())
		rest := gamath.NewNode(gamath.OpWedge, pairing)
		for _, vec := range blade[:i] {
			rest.Children = append(rest.Children, vec.Copy())
		}
		for _, vec := range blade[i+1:] {
			rest.Children = append(rest.Children, vec.Copy())
		}
		sum.Children = append(sum.Children, rest)
	}
	return sum
}

func wrapScaled(others, scalarsA, scalarsB []*gamath.Node, sum *gamath.Node) *gamath.Node {
	product := gamath.NewNode(gamath.OpMul)
	product.Children = append(product.Children, others...)
	product.Children = append(product.Children, scalarsA...)
	product.Children = append(product.Children, scalarsB...)
	product.Children = append(product.Children, sum)
	return product
}
