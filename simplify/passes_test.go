package simplify

import (
	"errors"
	"testing"

	"github.com/npillmayer/gamath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustRewrite(t *testing.T, pass Manipulator, tree *gamath.Node) *gamath.Node {
	t.Helper()
	repl, err := pass.ManipulateTree(tree)
	if err != nil {
		t.Fatalf("%s failed: %v", pass.Name(), err)
	}
	if repl == nil {
		t.Fatalf("%s made no progress on %s", pass.Name(), tree.ExpressionText())
	}
	return repl
}

func mustDecline(t *testing.T, pass Manipulator, tree *gamath.Node) {
	t.Helper()
	repl, err := pass.ManipulateTree(tree)
	if err != nil {
		t.Fatalf("%s failed: %v", pass.Name(), err)
	}
	if repl != nil {
		t.Fatalf("%s unexpectedly rewrote to %s", pass.Name(), repl.ExpressionText())
	}
}

// --- DegenerateCaseHandler -------------------------------------------------

func TestDegenerateSingleOperand(t *testing.T) {
	repl := mustRewrite(t, DegenerateCaseHandler{}, gamath.NewNode(gamath.OpAdd, gamath.Sym("e1")))
	if repl.ExpressionText() != "e1" {
		t.Errorf("expected sole child, got %s", repl.ExpressionText())
	}
}

func TestDegenerateEmptyProduct(t *testing.T) {
	repl := mustRewrite(t, DegenerateCaseHandler{}, gamath.NewNode(gamath.OpMul))
	if repl.ExpressionText() != "1.00" {
		t.Errorf("expected empty product to collapse to 1.00, got %s", repl.ExpressionText())
	}
	repl = mustRewrite(t, DegenerateCaseHandler{}, gamath.NewNode(gamath.OpAdd))
	if repl.ExpressionText() != "0.00" {
		t.Errorf("expected empty sum to collapse to 0.00, got %s", repl.ExpressionText())
	}
}

func TestDegenerateAnnihilation(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul, gamath.NewNum(2), gamath.NewNum(0), gamath.Sym("e1"))
	repl := mustRewrite(t, DegenerateCaseHandler{}, tree)
	if repl.ExpressionText() != "0.00" {
		t.Errorf("expected zero factor to annihilate, got %s", repl.ExpressionText())
	}
}

func TestDegenerateUnitRemoval(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul, gamath.NewNum(1), gamath.Sym("e1"), gamath.Sym("e2"))
	repl := mustRewrite(t, DegenerateCaseHandler{}, tree)
	if repl.ExpressionText() != "(e1*e2)" {
		t.Errorf("expected unit factor removed, got %s", repl.ExpressionText())
	}
	tree = gamath.NewNode(gamath.OpAdd, gamath.NewNum(0), gamath.Sym("e1"), gamath.Sym("e2"))
	repl = mustRewrite(t, DegenerateCaseHandler{}, tree)
	if repl.ExpressionText() != "(e1+e2)" {
		t.Errorf("expected zero term removed, got %s", repl.ExpressionText())
	}
}

func TestDegenerateCommutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamath.simplify")
	defer teardown()
	tree := gamath.NewNode(gamath.OpMul,
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e1"), gamath.Sym("e2")),
		gamath.NewNum(2),
	)
	repl := mustRewrite(t, DegenerateCaseHandler{}, tree)
	if !repl.Atom.IsOp(gamath.OpWedge) {
		t.Errorf("expected scalar-only geometric product to retag as outer product, got %s",
			repl.ExpressionText())
	}
	// a non-scalar sibling blocks the retag
	tree = gamath.NewNode(gamath.OpMul,
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e1"), gamath.Sym("e2")),
		gamath.Sym("e3"),
	)
	mustDecline(t, DegenerateCaseHandler{}, tree)
}

// --- Adder -----------------------------------------------------------------

func TestAdderFoldsLiterals(t *testing.T) {
	tree := gamath.NewNode(gamath.OpAdd, gamath.NewNum(2), gamath.Sym("e1"), gamath.NewNum(3))
	repl := mustRewrite(t, Adder{}, tree)
	if repl.ExpressionText() != "(5.00+e1)" {
		t.Errorf("expected literals folded to front, got %s", repl.ExpressionText())
	}
}

func TestAdderSortsByDisplayLength(t *testing.T) {
	tree := gamath.NewNode(gamath.OpAdd, gamath.Sym("aaa"), gamath.Sym("b"))
	repl := mustRewrite(t, Adder{}, tree)
	if repl.ExpressionText() != "(b+aaa)" {
		t.Errorf("expected shorter term first, got %s", repl.ExpressionText())
	}
	// an already sorted sum is not progress
	mustDecline(t, Adder{}, gamath.NewNode(gamath.OpAdd, gamath.Sym("b"), gamath.Sym("aaa")))
}

// --- Multiplier ------------------------------------------------------------

func TestMultiplierFoldsLiterals(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul, gamath.NewNum(2), gamath.Sym("e1"), gamath.NewNum(3))
	repl := mustRewrite(t, Multiplier{}, tree)
	if repl.ExpressionText() != "(6.00*e1)" {
		t.Errorf("expected literals folded to front, got %s", repl.ExpressionText())
	}
}

func TestMultiplierPullsScalarOut(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul,
		gamath.Sym("e1"),
		gamath.NewNode(gamath.OpMul, gamath.NewNum(2), gamath.Sym("e2")),
	)
	repl := mustRewrite(t, Multiplier{}, tree)
	if repl.ExpressionText() != "(2.00*e1*(e2))" {
		t.Errorf("expected nested scalar pulled to front, got %s", repl.ExpressionText())
	}
}

func TestMultiplierMovesScalarsFirst(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul, gamath.Sym("e1"), gamath.NewNum(2))
	repl := mustRewrite(t, Multiplier{}, tree)
	if repl.ExpressionText() != "(2.00*e1)" {
		t.Errorf("expected scalar factor first, got %s", repl.ExpressionText())
	}
	// non-scalar factors keep their relative order
	tree = gamath.NewNode(gamath.OpMul, gamath.Sym("e2"), gamath.Sym("e1"), gamath.NewNum(2))
	repl = mustRewrite(t, Multiplier{}, tree)
	if repl.ExpressionText() != "(2.00*e2*e1)" {
		t.Errorf("expected stable order among vectors, got %s", repl.ExpressionText())
	}
}

// --- Inverter --------------------------------------------------------------

func TestInverterSubtraction(t *testing.T) {
	tree := gamath.NewNode(gamath.OpSub, gamath.Sym("a"), gamath.Sym("b"))
	repl := mustRewrite(t, Inverter{}, tree)
	if repl.ExpressionText() != "(a+(-1.00*b))" {
		t.Errorf("expected subtraction eliminated, got %s", repl.ExpressionText())
	}
}

func TestInverterDivision(t *testing.T) {
	tree := gamath.NewNode(gamath.OpDiv, gamath.Sym("a"), gamath.Sym("b"))
	repl := mustRewrite(t, Inverter{}, tree)
	if repl.ExpressionText() != "(a*inv(b))" {
		t.Errorf("expected division eliminated, got %s", repl.ExpressionText())
	}
}

func TestInverterScalar(t *testing.T) {
	repl := mustRewrite(t, Inverter{}, gamath.NewNode(gamath.OpInv, gamath.NewNum(2)))
	if repl.ExpressionText() != "0.50" {
		t.Errorf("expected 0.50, got %s", repl.ExpressionText())
	}
}

func TestInverterProductReversal(t *testing.T) {
	tree := gamath.NewNode(gamath.OpInv,
		gamath.NewNode(gamath.OpMul, gamath.Sym("a"), gamath.Sym("b")))
	repl := mustRewrite(t, Inverter{}, tree)
	if repl.ExpressionText() != "(inv(b)*inv(a))" {
		t.Errorf("expected reversed inverses, got %s", repl.ExpressionText())
	}
	tree = gamath.NewNode(gamath.OpRev,
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e1"), gamath.Sym("e2")))
	repl = mustRewrite(t, Inverter{}, tree)
	if repl.ExpressionText() != "(rev(e2)^rev(e1))" {
		t.Errorf("expected reverse to pass through outer product, got %s", repl.ExpressionText())
	}
	// the inverse does not pass through outer products factor-wise;
	// blades take the reverse-over-magnitude route instead
	tree = gamath.NewNode(gamath.OpInv,
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e1"), gamath.Sym("e2")))
	repl = mustRewrite(t, Inverter{}, tree)
	if repl.ExpressionText() != "(inv(((e1*e2).(e1*e2)))*(e2^e1))" {
		t.Errorf("expected blade inverse form, got %s", repl.ExpressionText())
	}
}

func TestInverterReverseOfLowGrades(t *testing.T) {
	repl := mustRewrite(t, Inverter{}, gamath.NewNode(gamath.OpRev, gamath.Sym("e1")))
	if repl.ExpressionText() != "e1" {
		t.Errorf("expected rev of a vector to vanish, got %s", repl.ExpressionText())
	}
	repl = mustRewrite(t, Inverter{}, gamath.NewNode(gamath.OpRev, gamath.NewNum(3)))
	if repl.ExpressionText() != "3.00" {
		t.Errorf("expected rev of a scalar to vanish, got %s", repl.ExpressionText())
	}
}

func TestInverterDeclinesGeneralMultivector(t *testing.T) {
	// inversion of a non-blade multivector is outside this pass
	tree := gamath.NewNode(gamath.OpInv,
		gamath.NewNode(gamath.OpAdd, gamath.Sym("e1"), gamath.NewNum(2)))
	mustDecline(t, Inverter{}, tree)
}

// --- Associator ------------------------------------------------------------

func TestAssociatorFlattens(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul,
		gamath.Sym("a"),
		gamath.NewNode(gamath.OpMul, gamath.Sym("b"), gamath.Sym("c")),
		gamath.Sym("d"),
	)
	repl := mustRewrite(t, Associator{}, tree)
	if repl.ExpressionText() != "(a*b*c*d)" {
		t.Errorf("expected flattened product, got %s", repl.ExpressionText())
	}
}

func TestAssociatorSkipsInnerProduct(t *testing.T) {
	tree := gamath.NewNode(gamath.OpInner,
		gamath.NewNode(gamath.OpInner, gamath.Sym("a"), gamath.Sym("b")),
		gamath.Sym("c"),
	)
	mustDecline(t, Associator{}, tree)
}

// --- Distributor -----------------------------------------------------------

func TestDistributorExpands(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul,
		gamath.Sym("a"),
		gamath.NewNode(gamath.OpAdd, gamath.Sym("b"), gamath.Sym("c")),
	)
	repl := mustRewrite(t, Distributor{}, tree)
	if repl.ExpressionText() != "((a*b)+(a*c))" {
		t.Errorf("expected distributed product, got %s", repl.ExpressionText())
	}
}

func TestDistributorSkipsSingletonSum(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul,
		gamath.Sym("a"),
		gamath.NewNode(gamath.OpAdd, gamath.Sym("b")),
	)
	mustDecline(t, Distributor{}, tree)
}

// --- OuterProductHandler ---------------------------------------------------

func TestOuterAnnihilatesRepeatedVector(t *testing.T) {
	tree := gamath.NewNode(gamath.OpWedge, gamath.Sym("e1"), gamath.Sym("e1"))
	repl := mustRewrite(t, OuterProductHandler{}, tree)
	if repl.ExpressionText() != "0.00" {
		t.Errorf("expected repeated vector to annihilate, got %s", repl.ExpressionText())
	}
}

func TestOuterSortsWithSign(t *testing.T) {
	tree := gamath.NewNode(gamath.OpWedge, gamath.Sym("e2"), gamath.Sym("e1"))
	repl := mustRewrite(t, OuterProductHandler{}, tree)
	if repl.ExpressionText() != "(-1.00^e1^e2)" {
		t.Errorf("expected odd swap parity to negate, got %s", repl.ExpressionText())
	}
	tree = gamath.NewNode(gamath.OpWedge, gamath.Sym("e3"), gamath.Sym("e1"), gamath.Sym("e2"))
	repl = mustRewrite(t, OuterProductHandler{}, tree)
	if repl.ExpressionText() != "(e1^e2^e3)" {
		t.Errorf("expected even swap parity to keep sign, got %s", repl.ExpressionText())
	}
}

func TestOuterKeepsScalarFactors(t *testing.T) {
	tree := gamath.NewNode(gamath.OpWedge, gamath.NewNum(2), gamath.Sym("e2"), gamath.Sym("e1"))
	repl := mustRewrite(t, OuterProductHandler{}, tree)
	if repl.ExpressionText() != "(-1.00^2.00^e1^e2)" {
		t.Errorf("expected scalars carried along, got %s", repl.ExpressionText())
	}
}

// --- InnerProductHandler ---------------------------------------------------

func TestInnerResolvesMetric(t *testing.T) {
	handler := NewInnerProductHandler(nil)
	repl := mustRewrite(t, handler, gamath.NewNode(gamath.OpInner, gamath.Sym("no"), gamath.Sym("ni")))
	if repl.ExpressionText() != "(-1.00)" {
		t.Errorf("expected no·ni = -1, got %s", repl.ExpressionText())
	}
	repl = mustRewrite(t, handler, gamath.NewNode(gamath.OpInner, gamath.Sym("e1"), gamath.Sym("e2")))
	if repl.ExpressionText() != "(0.00)" {
		t.Errorf("expected e1·e2 = 0, got %s", repl.ExpressionText())
	}
}

func TestInnerNormalizesUnknownPair(t *testing.T) {
	handler := NewInnerProductHandler(nil)
	repl := mustRewrite(t, handler, gamath.NewNode(gamath.OpInner, gamath.Sym("b"), gamath.Sym("a")))
	if repl.ExpressionText() != "(a.b)" {
		t.Errorf("expected operands normalized, got %s", repl.ExpressionText())
	}
	mustDecline(t, handler, gamath.NewNode(gamath.OpInner, gamath.Sym("a"), gamath.Sym("b")))
}

func TestInnerExpandsVectorAgainstBlade(t *testing.T) {
	handler := NewInnerProductHandler(nil)
	tree := gamath.NewNode(gamath.OpInner,
		gamath.Sym("e1"),
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e2"), gamath.Sym("e3")),
	)
	repl := mustRewrite(t, handler, tree)
	if !repl.Atom.IsOp(gamath.OpMul) {
		t.Fatalf("expected a product wrapper, got %s", repl.ExpressionText())
	}
	if len(repl.Children) != 1 || !repl.Children[0].Atom.IsOp(gamath.OpAdd) {
		t.Fatalf("expected a contraction sum, got %s", repl.ExpressionText())
	}
	if terms := len(repl.Children[0].Children); terms != 2 {
		t.Errorf("expected 2 contraction terms, got %d", terms)
	}
}

func TestInnerAmbiguous(t *testing.T) {
	handler := NewInnerProductHandler(nil)
	tree := gamath.NewNode(gamath.OpInner, gamath.Sym("e1"), gamath.Sym("e2"), gamath.Sym("e3"))
	_, err := handler.ManipulateTree(tree)
	if !errors.Is(err, gamath.ErrAmbiguousInnerProduct) {
		t.Errorf("expected ambiguous inner product error, got %v", err)
	}
}

// --- GeometricProductHandler -----------------------------------------------

func TestGeometricExpandsVectorPair(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul, gamath.Sym("e1"), gamath.Sym("e2"))
	repl := mustRewrite(t, GeometricProductHandler{}, tree)
	if !repl.Atom.IsOp(gamath.OpMul) || len(repl.Children) != 1 {
		t.Fatalf("expected product around the expansion, got %s", repl.ExpressionText())
	}
	sum := repl.Children[0]
	if !sum.Atom.IsOp(gamath.OpAdd) || len(sum.Children) != 2 {
		t.Fatalf("expected inner+outer expansion, got %s", sum.ExpressionText())
	}
	if !sum.Children[0].Atom.IsOp(gamath.OpInner) || !sum.Children[1].Atom.IsOp(gamath.OpWedge) {
		t.Errorf("expected a·b + a∧b shape, got %s", sum.ExpressionText())
	}
}

func TestGeometricPrefersDifferentGrades(t *testing.T) {
	// adjacent same-grade pair first, different-grade pair second:
	// the first sweep must pick the different-grade pair
	tree := gamath.NewNode(gamath.OpMul,
		gamath.Sym("e1"),
		gamath.Sym("e2"),
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e2"), gamath.Sym("e3")),
	)
	repl := mustRewrite(t, GeometricProductHandler{}, tree)
	if len(repl.Children) != 2 {
		t.Fatalf("expected pair replaced by expansion, got %s", repl.ExpressionText())
	}
	if name, _ := repl.Children[0].Atom.SymName(); name != "e1" {
		t.Errorf("expected the leading vector untouched, got %s", repl.ExpressionText())
	}
}

func TestGeometricKeepsScalars(t *testing.T) {
	tree := gamath.NewNode(gamath.OpMul,
		gamath.NewNode(gamath.OpMul, gamath.NewNum(2), gamath.Sym("e1")),
		gamath.NewNode(gamath.OpWedge, gamath.Sym("e2"), gamath.Sym("e3")),
	)
	repl := mustRewrite(t, GeometricProductHandler{}, tree)
	// the scalar factor moves out to the surrounding product
	found := false
	for _, child := range repl.Children {
		if child.Atom.IsNum(2.0) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected scalar factor reattached to parent, got %s", repl.ExpressionText())
	}
}
