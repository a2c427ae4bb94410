package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/gamath"
)

// Vec is a point or translation in the drawing plane.
type Vec struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Sub returns v − w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Length returns the Euclidean norm.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// GrowFor extends a rectangle to contain another one.
func (r *Rect) GrowFor(other Rect) {
	if other.Min.X < r.Min.X {
		r.Min.X = other.Min.X
	}
	if other.Min.Y < r.Min.Y {
		r.Min.Y = other.Min.Y
	}
	if other.Max.X > r.Max.X {
		r.Max.X = other.Max.X
	}
	if other.Max.Y > r.Max.Y {
		r.Max.Y = other.Max.Y
	}
}

// padding between sibling subtrees, and half the extent of a node box
const (
	padding  = 0.5
	halfNode = 0.5
	levelGap = 2.0
	eps      = 1e-2
)

// Sheet carries the drawing state for one tree: a current and a target
// position per node. Current positions converge toward the targets
// frame by frame, which animates re-layout after a rewrite.
type Sheet struct {
	root      *gamath.Node
	positions map[*gamath.Node]Vec
	targets   map[*gamath.Node]Vec
	started   map[*gamath.Node]bool
}

// NewSheet creates the drawing state for a tree and computes the initial
// target layout.
func NewSheet(root *gamath.Node) *Sheet {
	s := &Sheet{
		root:      root,
		positions: make(map[*gamath.Node]Vec),
		targets:   make(map[*gamath.Node]Vec),
		started:   make(map[*gamath.Node]bool),
	}
	s.CalculateTargetPositions()
	s.AssignInitialPositions()
	return s
}

// Position returns a node's current position.
func (s *Sheet) Position(n *gamath.Node) Vec {
	return s.positions[n]
}

// Target returns a node's target position.
func (s *Sheet) Target(n *gamath.Node) Vec {
	return s.targets[n]
}

// CalculateTargetPositions lays the tree out bottom-up: every node sits
// at the origin of its own subtree, children are placed one level below,
// centered as a group, each child subtree centered within its bounding
// rectangle.
func (s *Sheet) CalculateTargetPositions() {
	s.calcTargets(s.root)
	tracer().Debugf("layout of %d nodes done", s.root.Size())
}

func (s *Sheet) calcTargets(node *gamath.Node) {
	s.targets[node] = Vec{}
	for _, child := range node.Children {
		s.calcTargets(child)
	}
	if len(node.Children) == 0 {
		return
	}
	rects := make([]Rect, len(node.Children))
	total := 0.0
	for i, child := range node.Children {
		rects[i] = s.SubtreeRect(child, true)
		total += rects[i].Width()
	}
	total += float64(len(node.Children)-1) * padding
	position := Vec{-total / 2.0, -levelGap}
	for i, child := range node.Children {
		w := rects[i].Width()
		position.X += w / 2.0
		s.translateTargets(child, position)
		position.X += w/2.0 + padding
	}
}

func (s *Sheet) translateTargets(node *gamath.Node, translation Vec) {
	node.Each(func(n *gamath.Node) {
		s.targets[n] = s.targets[n].Add(translation)
	})
}

// NodeRect returns the bounding rectangle of a single node box, around
// the target position if targets is set, around the current position
// otherwise.
func (s *Sheet) NodeRect(n *gamath.Node, targets bool) Rect {
	center := s.positions[n]
	if targets {
		center = s.targets[n]
	}
	return Rect{
		Min: center.Sub(Vec{halfNode, halfNode}),
		Max: center.Add(Vec{halfNode, halfNode}),
	}
}

// SubtreeRect returns the bounding rectangle of a whole subtree.
func (s *Sheet) SubtreeRect(n *gamath.Node, targets bool) Rect {
	rect := s.NodeRect(n, targets)
	n.Each(func(m *gamath.Node) {
		rect.GrowFor(s.NodeRect(m, targets))
	})
	return rect
}

// AssignInitialPositions seeds current positions for nodes that do not
// have one yet: a new node starts out at its parent's position and
// drifts to its own target from there.
func (s *Sheet) AssignInitialPositions() {
	s.assignInitial(s.root, Vec{})
}

func (s *Sheet) assignInitial(node *gamath.Node, parent Vec) {
	if !s.started[node] {
		s.positions[node] = parent
		s.started[node] = true
	}
	for _, child := range node.Children {
		s.assignInitial(child, s.positions[node])
	}
}

// AdvancePositions moves every current position toward its target by the
// given interpolation fraction. Positions within eps snap to the target.
func (s *Sheet) AdvancePositions(lerp float64) {
	s.root.Each(func(n *gamath.Node) {
		pos := s.positions[n]
		target := s.targets[n]
		delta := target.Sub(pos)
		if delta.Length() < eps {
			s.positions[n] = target
			return
		}
		s.positions[n] = pos.Add(delta.Scale(lerp))
	})
}

// IsSettled reports whether every node has reached its target.
func (s *Sheet) IsSettled() bool {
	settled := true
	s.root.Each(func(n *gamath.Node) {
		if s.positions[n] != s.targets[n] {
			settled = false
		}
	})
	return settled
}
