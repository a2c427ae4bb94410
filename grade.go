package gamath

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Grade computes the GA grade of a subtree, where defined.
//
// Scalar literals and "$"-prefixed symbols have grade 0. A symbol
// starting with a letter and carrying no children is a vector atom of
// grade 1 (with children it denotes a function application, which has no
// grade). For sums the grade is defined only if all summands agree; for
// outer products it is the sum of the operand grades. An inner product
// with two operands of nonzero grade has the absolute grade difference;
// with a single such operand it has that operand's grade. Three or more
// nonzero-grade operands of an inner product are rejected with
// ErrAmbiguousInnerProduct. Geometric products and inversions of more
// than one operand are mixed multivectors in general, so their grade is
// unknown. Unknown propagates upward.
//
// known reports whether the grade is defined at all; err is non-nil only
// for the ambiguous inner product.
func (n *Node) Grade() (grade int, known bool, err error) {
	switch n.Atom.Type() {
	case NumType:
		return 0, true, nil
	case SymbolType:
		name, _ := n.Atom.SymName()
		if len(name) == 0 {
			return 0, false, nil
		}
		if name[0] == '$' {
			return 0, true, nil
		}
		if isAlpha(name[0]) && len(n.Children) == 0 {
			return 1, true, nil
		}
		return 0, false, nil
	case OperatorType:
		op, _ := n.Atom.OpName()
		if op != OpAdd && op != OpWedge && op != OpInner && op != OpMul && op != OpInv {
			return 0, false, nil
		}
		if len(n.Children) == 0 {
			return 0, true, nil
		}
		grades := make([]int, len(n.Children))
		for i, child := range n.Children {
			g, ok, err := child.Grade()
			if err != nil {
				return 0, false, err
			}
			if !ok {
				return 0, false, nil
			}
			grades[i] = g
		}
		if len(grades) == 1 {
			return grades[0], true, nil
		}
		switch op {
		case OpAdd:
			for _, g := range grades[1:] {
				if g != grades[0] {
					return 0, false, nil
				}
			}
			return grades[0], true, nil
		case OpWedge:
			sum := 0
			for _, g := range grades {
				sum += g
			}
			return sum, true, nil
		case OpInner:
			var nonzero []int
			for _, g := range grades {
				if g != 0 {
					nonzero = append(nonzero, g)
				}
			}
			switch len(nonzero) {
			case 0:
				return 0, true, nil
			case 1:
				return nonzero[0], true, nil
			case 2:
				d := nonzero[0] - nonzero[1]
				if d < 0 {
					d = -d
				}
				return d, true, nil
			default:
				return 0, false, ErrAmbiguousInnerProduct
			}
		}
		// geometric product or inversion of several operands
		return 0, false, nil
	}
	return 0, false, nil
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
