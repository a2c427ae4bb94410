package gamath

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// GradeBuckets partitions the children of a node by grade: scalars
// (grade 0), vectors (grade 1), and everything else, including children
// of unknown grade. Child order is preserved within each bucket.
func GradeBuckets(n *Node) (scalars, vectors, others []*Node, err error) {
	for _, child := range n.Children {
		g, known, err := child.Grade()
		if err != nil {
			return nil, nil, nil, err
		}
		switch {
		case known && g == 0:
			scalars = append(scalars, child)
		case known && g == 1:
			vectors = append(vectors, child)
		default:
			others = append(others, child)
		}
	}
	return scalars, vectors, others, nil
}

// ParseBlade classifies a subtree as a blade, i.e. a scalar multiple of
// an outer product of vectors. A product node (*, . or ^) is a blade if
// its children partition into scalars and vectors with no residue, where
// only ^ may carry more than one vector. A plain scalar or vector atom
// is a blade by itself. The returned slices reference the original child
// nodes; callers rebuilding trees from them own the references.
func ParseBlade(n *Node) (scalars, vectors []*Node, ok bool, err error) {
	if n.Atom.IsAnyOp(OpInner, OpWedge, OpMul) {
		scalars, vectors, others, err := GradeBuckets(n)
		if err != nil {
			return nil, nil, false, err
		}
		if len(others) > 0 {
			return nil, nil, false, nil
		}
		if len(vectors) > 1 && !n.Atom.IsOp(OpWedge) {
			return nil, nil, false, nil
		}
		return scalars, vectors, true, nil
	}
	g, known, err := n.Grade()
	if err != nil {
		return nil, nil, false, err
	}
	if known && g == 0 {
		return []*Node{n}, nil, true, nil
	}
	if known && g == 1 {
		return nil, []*Node{n}, true, nil
	}
	return nil, nil, false, nil
}
