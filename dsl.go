package gamath

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Constructors for building expression trees in client code and tests.
// Operand subtrees are deep-copied on construction, which keeps the
// no-node-appears-twice invariant even when a client reuses a variable
// in several places of an expression.

// Num builds a scalar literal leaf.
func Num(x float64) *Node {
	return NewNum(x)
}

// Sym builds a symbol leaf. Names starting with '$' denote symbolic
// scalars, names starting with a letter denote vectors.
func Sym(name string) *Node {
	return NewNode(name)
}

// The conformal basis vectors. Each call yields a fresh leaf.

func E1() *Node { return Sym("e1") }
func E2() *Node { return Sym("e2") }
func E3() *Node { return Sym("e3") }
func No() *Node { return Sym("no") }
func Ni() *Node { return Sym("ni") }

// V builds the Euclidean vector x·e1 + y·e2 + z·e3.
func V(x, y, z float64) *Node {
	return NewNode(OpAdd,
		NewNode(OpMul, Num(x), E1()),
		NewNode(OpMul, Num(y), E2()),
		NewNode(OpMul, Num(z), E3()),
	)
}

// Add builds a sum.
func Add(terms ...*Node) *Node {
	return NewNode(OpAdd, copyAll(terms)...)
}

// Sub builds a difference a − b.
func Sub(a, b *Node) *Node {
	return NewNode(OpSub, a.Copy(), b.Copy())
}

// Mul builds a geometric product.
func Mul(factors ...*Node) *Node {
	return NewNode(OpMul, copyAll(factors)...)
}

// Div builds a quotient a / b.
func Div(a, b *Node) *Node {
	return NewNode(OpDiv, a.Copy(), b.Copy())
}

// Inner builds an inner product.
func Inner(factors ...*Node) *Node {
	return NewNode(OpInner, copyAll(factors)...)
}

// Wedge builds an outer product.
func Wedge(factors ...*Node) *Node {
	return NewNode(OpWedge, copyAll(factors)...)
}

// Inv builds the inverse of x.
func Inv(x *Node) *Node {
	return NewNode(OpInv, x.Copy())
}

// Rev builds the reverse of x.
func Rev(x *Node) *Node {
	return NewNode(OpRev, x.Copy())
}

func copyAll(nodes []*Node) []*Node {
	copies := make([]*Node, len(nodes))
	for i, n := range nodes {
		copies[i] = n.Copy()
	}
	return copies
}
