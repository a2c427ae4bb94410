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

// Manipulator is a single rewrite pass over an expression tree.
// ManipulateTree returns a replacement tree when the pass made progress
// at some node, nil otherwise. A pass must not communicate with the
// driver through any channel other than the returned replacement.
type Manipulator interface {
	Name() string
	ManipulateTree(node *gamath.Node) (*gamath.Node, error)
}

// subtreeRewriter is the local rewrite attempt of a concrete pass.
type subtreeRewriter func(node *gamath.Node) (*gamath.Node, error)

// walk drives a pass over a subtree: children first, left to right, and
// only if no descendant rewrote, the node itself. We go as deep into the
// tree as possible before manipulating anything, so that sub-trees are
// fully simplified before something like distribution copies them.
// The first rewrite wins; the replacement is threaded back into the
// parent's child slot and the walk stops.
func walk(node *gamath.Node, rewrite subtreeRewriter) (*gamath.Node, error) {
	for i, child := range node.Children {
		repl, err := walk(child, rewrite)
		if err != nil {
			return nil, err
		}
		if repl != nil {
			node.Children[i] = repl
			return node, nil
		}
	}
	return rewrite(node)
}

// sortByIntKeys bubble-sorts list in place, keeping keys parallel, and
// returns the number of adjacent swaps performed. The sort is stable;
// the swap count is exactly the number of adjacent transpositions, which
// the outer-product pass relies on for sign parity.
func sortByIntKeys(list []*gamath.Node, keys []int) int {
	swaps := 0
	if len(list) < 2 {
		return 0
	}
	for {
		swapped := false
		for i := 0; i < len(list)-1; i++ {
			if keys[i] > keys[i+1] {
				list[i], list[i+1] = list[i+1], list[i]
				keys[i], keys[i+1] = keys[i+1], keys[i]
				swaps++
				swapped = true
			}
		}
		if !swapped {
			return swaps
		}
	}
}

// sortByStringKeys is sortByIntKeys for string keys.
func sortByStringKeys(list []*gamath.Node, keys []string) int {
	swaps := 0
	if len(list) < 2 {
		return 0
	}
	for {
		swapped := false
		for i := 0; i < len(list)-1; i++ {
			if keys[i] > keys[i+1] {
				list[i], list[i+1] = list[i+1], list[i]
				keys[i], keys[i+1] = keys[i+1], keys[i]
				swaps++
				swapped = true
			}
		}
		if !swapped {
			return swaps
		}
	}
}

func removeAt(list []*gamath.Node, i int) []*gamath.Node {
	return append(list[:i], list[i+1:]...)
}

func insertAt(list []*gamath.Node, i int, n *gamath.Node) []*gamath.Node {
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = n
	return list
}
