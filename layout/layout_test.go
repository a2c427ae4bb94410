package layout

import (
	"math"
	"testing"

	"github.com/npillmayer/gamath"
)

func TestLeafLayout(t *testing.T) {
	sheet := NewSheet(gamath.NewNum(1))
	if target := sheet.Target(sheet.root); target != (Vec{}) {
		t.Errorf("expected root target at origin, got %v", target)
	}
	rect := sheet.NodeRect(sheet.root, true)
	if rect.Width() != 1.0 || rect.Height() != 1.0 {
		t.Errorf("expected unit node box, got %vx%v", rect.Width(), rect.Height())
	}
	if !sheet.IsSettled() {
		t.Errorf("expected a single leaf to start settled")
	}
}

func TestChildrenCenteredUnderParent(t *testing.T) {
	tree := gamath.NewNode(gamath.OpAdd, gamath.Sym("e1"), gamath.Sym("e2"))
	sheet := NewSheet(tree)
	left := sheet.Target(tree.Children[0])
	right := sheet.Target(tree.Children[1])
	if left.Y != -2.0 || right.Y != -2.0 {
		t.Errorf("expected children one level below, got %v %v", left, right)
	}
	if math.Abs(left.X+0.75) > 1e-9 || math.Abs(right.X-0.75) > 1e-9 {
		t.Errorf("expected children at ±0.75, got %v %v", left.X, right.X)
	}
	if left.X+right.X != 0 {
		t.Errorf("expected children centered, got %v %v", left.X, right.X)
	}
}

func TestSubtreeRect(t *testing.T) {
	tree := gamath.NewNode(gamath.OpAdd, gamath.Sym("e1"), gamath.Sym("e2"))
	sheet := NewSheet(tree)
	rect := sheet.SubtreeRect(tree, true)
	if w := rect.Width(); math.Abs(w-2.5) > 1e-9 {
		t.Errorf("expected subtree width 2.5, got %v", w)
	}
	if h := rect.Height(); math.Abs(h-3.0) > 1e-9 {
		t.Errorf("expected subtree height 3.0, got %v", h)
	}
}

func TestAdvanceConverges(t *testing.T) {
	tree := gamath.NewNode(gamath.OpAdd, gamath.Sym("e1"), gamath.Sym("e2"))
	sheet := NewSheet(tree)
	if sheet.IsSettled() {
		t.Fatalf("expected children to start at the parent position")
	}
	for i := 0; i < 100 && !sheet.IsSettled(); i++ {
		sheet.AdvancePositions(0.5)
	}
	if !sheet.IsSettled() {
		t.Errorf("expected positions to converge to their targets")
	}
	if pos := sheet.Position(tree.Children[0]); pos != sheet.Target(tree.Children[0]) {
		t.Errorf("expected left child settled, got %v", pos)
	}
}
