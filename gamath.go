package gamath

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
)

// Op is an operator tag for internal tree nodes.
type Op string

// The operators of the algebra. Mul is the geometric product, Inner the
// (symmetric) inner product, Wedge the outer product. Inv and Rev are the
// unary inverse and reverse.
const (
	OpAdd   Op = "+"
	OpSub   Op = "-"
	OpMul   Op = "*"
	OpDiv   Op = "/"
	OpInner Op = "."
	OpWedge Op = "^"
	OpInv   Op = "inv"
	OpRev   Op = "rev"
)

// AtomType is a type specifier for a node payload.
type AtomType int

// Payloads are numbers (scalar literals), symbols (symbolic scalars and
// vectors) or operators. Code interpreting atoms switches exhaustively
// over these types.
const (
	NoType AtomType = iota
	NumType
	SymbolType
	OperatorType
)

// Atom is the tagged payload of a tree node.
type Atom struct {
	typ  AtomType
	Data interface{}
}

// NilAtom is a zero value for atoms.
var NilAtom Atom = Atom{}

// Atomize creates an Atom from an untyped value. Numeric values become
// NumType atoms (normalized to float64), strings become SymbolType atoms,
// and Op values become OperatorType atoms.
func Atomize(thing interface{}) Atom {
	if thing == nil {
		return NilAtom
	}
	if a, ok := thing.(Atom); ok {
		return a
	}
	atom := Atom{Data: thing}
	switch v := thing.(type) {
	case float64:
		atom.typ = NumType
	case float32:
		atom.typ = NumType
		atom.Data = float64(v)
	case int:
		atom.typ = NumType
		atom.Data = float64(v)
	case Op:
		atom.typ = OperatorType
	case string:
		atom.typ = SymbolType
	default:
		panic(fmt.Errorf("gamath: cannot atomize %T (%v)", thing, thing))
	}
	return atom
}

// Type returns an atom's type.
func (a Atom) Type() AtomType {
	return a.typ
}

// NumValue returns the numeric payload of a NumType atom.
func (a Atom) NumValue() (float64, bool) {
	if a.typ != NumType {
		return 0, false
	}
	return a.Data.(float64), true
}

// SymName returns the name of a SymbolType atom.
func (a Atom) SymName() (string, bool) {
	if a.typ != SymbolType {
		return "", false
	}
	return a.Data.(string), true
}

// OpName returns the operator of an OperatorType atom.
func (a Atom) OpName() (Op, bool) {
	if a.typ != OperatorType {
		return "", false
	}
	return a.Data.(Op), true
}

// IsNum checks an atom for being a specific scalar literal.
func (a Atom) IsNum(x float64) bool {
	return a.typ == NumType && a.Data == x
}

// IsOp checks an atom for being a specific operator.
func (a Atom) IsOp(op Op) bool {
	return a.typ == OperatorType && a.Data == op
}

// IsAnyOp checks an atom for being one of a set of operators.
func (a Atom) IsAnyOp(ops ...Op) bool {
	if a.typ != OperatorType {
		return false
	}
	for _, op := range ops {
		if a.Data == op {
			return true
		}
	}
	return false
}

func (a Atom) String() string {
	if a == NilAtom {
		return "nil"
	}
	switch a.typ {
	case NumType:
		return fmt.Sprintf("%1.2f", a.Data)
	case SymbolType:
		return a.Data.(string)
	case OperatorType:
		return string(a.Data.(Op))
	}
	return fmt.Sprintf("%d[%v]", a.typ, a.Data)
}

// ---------------------------------------------------------------------------

// Node is a node of an expression tree. Children are ordered; order is
// semantically significant for every operator except addition (where it
// is preserved anyway). A Node must not appear twice within one tree.
type Node struct {
	Atom     Atom
	Children []*Node
}

// NewNode creates a node from an untyped payload (see Atomize) and a
// list of children.
func NewNode(data interface{}, children ...*Node) *Node {
	return &Node{Atom: Atomize(data), Children: children}
}

// NewNum creates a scalar literal leaf.
func NewNum(x float64) *Node {
	return &Node{Atom: Atomize(x)}
}

// Copy returns a deep copy of a subtree.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	node := &Node{Atom: n.Atom}
	if len(n.Children) > 0 {
		node.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			node.Children[i] = child.Copy()
		}
	}
	return node
}

// Size returns the number of nodes in a subtree.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// Each walks a subtree in depth-first pre-order, left to right.
func (n *Node) Each(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Each(visit)
	}
}

// IsValid checks the structural uniqueness invariant: no node object is
// reachable twice within the subtree.
func (n *Node) IsValid() bool {
	seen := make(map[*Node]struct{})
	valid := true
	n.Each(func(node *Node) {
		if _, dup := seen[node]; dup {
			valid = false
		}
		seen[node] = struct{}{}
	})
	if !valid {
		tracer().Errorf("node appears twice in tree %s", n.ExpressionText())
	}
	return valid
}

// DisplayText returns the text for a node's payload: scalars in "%1.2f"
// format, symbols and operators verbatim.
func (n *Node) DisplayText() string {
	return n.Atom.String()
}

// ExpressionText returns the canonical text of a subtree. Internal nodes
// with a single-character operator print as "(" + op-joined children + ")",
// named operators and function applications print as prefix calls.
// Leaves print their display text.
// The canonical text doubles as the cycle-detection key during
// simplification, so it has to be deterministic.
func (n *Node) ExpressionText() string {
	if len(n.Children) == 0 {
		return n.DisplayText()
	}
	display := n.DisplayText()
	var b bytes.Buffer
	if len(display) == 1 && n.Atom.Type() == OperatorType {
		b.WriteString("(")
		for i, child := range n.Children {
			if i > 0 {
				b.WriteString(display)
			}
			b.WriteString(child.ExpressionText())
		}
		b.WriteString(")")
	} else {
		b.WriteString(display)
		b.WriteString("(")
		for i, child := range n.Children {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(child.ExpressionText())
		}
		b.WriteString(")")
	}
	return b.String()
}

func (n *Node) String() string {
	return n.ExpressionText()
}
