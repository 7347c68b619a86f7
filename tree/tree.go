package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a traversal is called with a nil predicate
// or action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// SkipChildren may be returned by an Action to prevent a traversal from
// descending into the children of the current node. It is not reported
// as an error.
var SkipChildren = errors.New("skip children")

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various navigation functions to
// collect a selection of nodes.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node. If no ancestor matches,
// nil is returned.
func (node *Node[T]) AncestorWith(predicate Predicate[T]) *Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// AncestorsWith collects all ancestors matching the given predicate, the
// nearest ancestor first and the topmost one last.
// The search does not include the start node.
func (node *Node[T]) AncestorsWith(predicate Predicate[T]) []*Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	var ancestors []*Node[T]
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			ancestors = append(ancestors, anc)
		}
	}
	return ancestors
}

// DescendentsWith finds descendents matching a predicate, in tree order
// (depth first, parents before children).
// The search does not include the start node.
func (node *Node[T]) DescendentsWith(predicate Predicate[T]) []*Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	var selection []*Node[T]
	for _, ch := range node.Children() {
		ch.TopDown(func(n *Node[T], parent *Node[T], position int) error {
			if predicate(n) {
				selection = append(selection, n)
			}
			return nil
		})
	}
	return selection
}

// Action is a function type to operate on tree nodes.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal is depth first and guarantees that parents are always
// processed before their children, i.e. nodes are visited in tree order.
//
// If the action function returns SkipChildren, descending the branch below
// this node is skipped. Any other error aborts the traversal and is returned.
func (node *Node[T]) TopDown(action Action[T]) error {
	if action == nil {
		return ErrInvalidFilter
	}
	if node == nil {
		return nil
	}
	parent := node.Parent()
	position := 0
	if parent != nil {
		position = parent.IndexOfChild(node)
	}
	return topDown(node, parent, position, action)
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	err := action(node, parent, position)
	if err == SkipChildren {
		return nil
	} else if err != nil {
		tracer().Debugf("action for node %s returned error: %v", node, err)
		return err
	}
	for i, ch := range node.Children() { // snapshot: action may isolate ch
		if err := topDown(ch, node, i, action); err != nil {
			return err
		}
	}
	return nil
}
