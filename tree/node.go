package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"slices"
	"sync"
)

// Node is a node of a mutable, ordered tree. Stylesheet nodes and markup
// elements embed a Node and let Payload point back to themselves, so
// tree operations return the embedding value by way of Payload.
//
// Children are kept gap-free and in insertion order. Changes to the list of
// children of a node are guarded by a lock, but a tree as a whole is not:
// clients moving nodes between parents concurrently must synchronize.
type Node[T comparable] struct {
	parent  *Node[T]
	kids    childList[T]
	Payload T
}

// NewNode creates a detached node carrying payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends ch as the last child of node. A node can have only one
// parent, so ch is detached from its current parent first.
// AddChild returns node, to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	return node.InsertChildAt(-1, ch)
}

// InsertChildAt inserts ch as child number i of node, shifting later
// children. i < 0 or i beyond the last child appends.
// InsertChildAt returns node, to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	node.kids.insert(i, ch)
	ch.parent = node
	return node
}

// Parent returns the parent node, or nil for a root or a detached node.
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Root returns the topmost ancestor of node, which may be node itself.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r != nil && r.parent != nil {
		r = r.parent
	}
	return r
}

// Isolate detaches node from its parent, together with its subtree.
// Siblings following node move up by one position.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	node.parent.kids.remove(node)
	node.parent = nil
	return node
}

// ChildCount returns the number of children of node.
func (node *Node[T]) ChildCount() int {
	return node.kids.len()
}

// Child returns child number n, if present.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	return node.kids.at(n)
}

// Children returns the children of node. The slice is a snapshot, so clients
// may change the tree while iterating over it.
func (node *Node[T]) Children() []*Node[T] {
	return node.kids.snapshot()
}

// IndexOfChild returns the position of ch among the children of node,
// or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	return node.kids.index(ch)
}

// childList is a lock-guarded list of child nodes.
type childList[T comparable] struct {
	mx    sync.RWMutex
	nodes []*Node[T]
}

func (l *childList[T]) len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return len(l.nodes)
}

func (l *childList[T]) insert(i int, ch *Node[T]) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if i < 0 || i > len(l.nodes) {
		i = len(l.nodes)
	}
	l.nodes = slices.Insert(l.nodes, i, ch)
}

func (l *childList[T]) remove(ch *Node[T]) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if i := slices.Index(l.nodes, ch); i >= 0 {
		l.nodes = slices.Delete(l.nodes, i, i+1)
	}
}

func (l *childList[T]) at(n int) (*Node[T], bool) {
	l.mx.RLock()
	defer l.mx.RUnlock()
	if n < 0 || n >= len(l.nodes) {
		return nil, false
	}
	return l.nodes[n], true
}

func (l *childList[T]) index(ch *Node[T]) int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return slices.Index(l.nodes, ch)
}

func (l *childList[T]) snapshot() []*Node[T] {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return slices.Clone(l.nodes)
}
