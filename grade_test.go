package gamath

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func grade(t *testing.T, n *Node) (int, bool) {
	g, known, err := n.Grade()
	if err != nil {
		t.Fatalf("unexpected grade error: %v", err)
	}
	return g, known
}

func TestGradeAtoms(t *testing.T) {
	if g, known := grade(t, NewNum(2)); !known || g != 0 {
		t.Errorf("expected scalar literal to have grade 0, got %d/%v", g, known)
	}
	if g, known := grade(t, Sym("$a")); !known || g != 0 {
		t.Errorf("expected symbolic scalar to have grade 0, got %d/%v", g, known)
	}
	if g, known := grade(t, Sym("e1")); !known || g != 1 {
		t.Errorf("expected vector symbol to have grade 1, got %d/%v", g, known)
	}
	// a symbol with children is a function application, not a vector
	if _, known := grade(t, NewNode("f", Sym("e1"))); known {
		t.Errorf("expected function application to have unknown grade")
	}
}

func TestGradeSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamath.tree")
	defer teardown()
	if g, known := grade(t, NewNode(OpAdd, Sym("e1"), Sym("e2"))); !known || g != 1 {
		t.Errorf("expected homogenous sum to have grade 1, got %d/%v", g, known)
	}
	if _, known := grade(t, NewNode(OpAdd, Sym("e1"), NewNum(2))); known {
		t.Errorf("expected mixed sum to have unknown grade")
	}
}

func TestGradeWedge(t *testing.T) {
	tree := NewNode(OpWedge, Sym("e1"), Sym("e2"), Sym("e3"))
	if g, known := grade(t, tree); !known || g != 3 {
		t.Errorf("expected trivector to have grade 3, got %d/%v", g, known)
	}
}

func TestGradeInner(t *testing.T) {
	if g, known := grade(t, NewNode(OpInner, NewNode(OpWedge, Sym("e1"), Sym("e2")), Sym("e3"))); !known || g != 1 {
		t.Errorf("expected bivector·vector to have grade 1, got %d/%v", g, known)
	}
	// a single nonzero-grade operand keeps its grade
	if g, known := grade(t, NewNode(OpInner, NewNum(2), Sym("e1"))); !known || g != 1 {
		t.Errorf("expected scalar·vector inner product to have grade 1, got %d/%v", g, known)
	}
	if g, known := grade(t, NewNode(OpInner, NewNum(2), NewNum(3))); !known || g != 0 {
		t.Errorf("expected scalar-only inner product to have grade 0, got %d/%v", g, known)
	}
}

func TestGradeInnerAmbiguous(t *testing.T) {
	tree := NewNode(OpInner, Sym("e1"), Sym("e2"), Sym("e3"))
	_, _, err := tree.Grade()
	if !errors.Is(err, ErrAmbiguousInnerProduct) {
		t.Errorf("expected ambiguous inner product error, got %v", err)
	}
}

func TestGradeUnknowns(t *testing.T) {
	if _, known := grade(t, NewNode(OpMul, Sym("e1"), Sym("e2"))); known {
		t.Errorf("expected geometric product to have unknown grade")
	}
	if _, known := grade(t, NewNode(OpRev, Sym("e1"))); known {
		t.Errorf("expected reverse to have unknown grade")
	}
	// inv and single-operand products take the grade of their operand
	if g, known := grade(t, NewNode(OpInv, Sym("e1"))); !known || g != 1 {
		t.Errorf("expected unary inversion to keep grade 1, got %d/%v", g, known)
	}
	if g, known := grade(t, NewNode(OpMul, Sym("e1"))); !known || g != 1 {
		t.Errorf("expected single-operand product to keep grade 1, got %d/%v", g, known)
	}
	if g, known := grade(t, NewNode(OpWedge)); !known || g != 0 {
		t.Errorf("expected empty product to have grade 0, got %d/%v", g, known)
	}
}
