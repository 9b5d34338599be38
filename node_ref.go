package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/arbor/fp"
)

// NodeRef is an immutable cursor on one node of a tree. It is a small
// value (tree pointer plus slot pointer); copy it freely. A cursor must
// not outlive its tree, and must not be used across a mutation that may
// have removed its node; cache a NodeIdx instead when in doubt.
type NodeRef[T any] struct {
	tree *Tree[T]
	s    *slot[T]
}

func (n NodeRef[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", n.NumChildren(), n.s.data)
}

// Data returns the node's payload.
func (n NodeRef[T]) Data() T {
	return *n.s.dataRef()
}

// Idx mints a stable index for this node, valid until the node is removed
// or the tree reorganizes its arena.
func (n NodeRef[T]) Idx() NodeIdx[T] {
	return n.tree.mintIdx(n.s)
}

// Parent returns a cursor on the parent node; ok is false on the root.
func (n NodeRef[T]) Parent() (NodeRef[T], bool) {
	if n.s.parent == nil {
		return NodeRef[T]{}, false
	}
	return NodeRef[T]{tree: n.tree, s: n.s.parent}, true
}

// Child returns a cursor on the i-th child; ok is false if out of range.
func (n NodeRef[T]) Child(i int) (NodeRef[T], bool) {
	ch := n.s.children.at(i)
	if ch == nil {
		return NodeRef[T]{}, false
	}
	return NodeRef[T]{tree: n.tree, s: ch}, true
}

// Children returns cursors on all children, in order.
func (n NodeRef[T]) Children() []NodeRef[T] {
	out := make([]NodeRef[T], n.s.children.length())
	for i := range out {
		out[i] = NodeRef[T]{tree: n.tree, s: n.s.children.at(i)}
	}
	return out
}

// NumChildren returns the number of children.
func (n NodeRef[T]) NumChildren() int {
	return n.s.children.length()
}

// IsLeaf reports whether the node has no children.
func (n NodeRef[T]) IsLeaf() bool {
	return n.NumChildren() == 0
}

// SiblingIdx returns the node's position among its parent's children; the
// root is at position 0.
func (n NodeRef[T]) SiblingIdx() int {
	if n.s.parent == nil {
		return 0
	}
	i := n.s.parent.children.indexOf(n.s)
	assertThat(i >= 0, "node missing from its parent's child-list")
	return i
}

// NumSiblings returns the size of the node's sibling group, including the
// node itself; 1 for the root.
func (n NodeRef[T]) NumSiblings() int {
	if n.s.parent == nil {
		return 1
	}
	return n.s.parent.children.length()
}

// Ancestors yields the node's ancestors, nearest first, root last.
func (n NodeRef[T]) Ancestors() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for p := n.s.parent; p != nil; p = p.parent {
			if !yield(NodeRef[T]{tree: n.tree, s: p}) {
				return
			}
		}
	}
}

// IsAncestorOf reports whether n is a proper ancestor of other. A node is
// not its own ancestor.
func (n NodeRef[T]) IsAncestorOf(other NodeRef[T]) bool {
	if n.tree != other.tree {
		return false
	}
	for p := other.s.parent; p != nil; p = p.parent {
		if p == n.s {
			return true
		}
	}
	return false
}

// Depth returns the number of edges between the node and the tree root.
func (n NodeRef[T]) Depth() int {
	d := 0
	for p := n.s.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Height returns the length of the longest downward path from the node to
// a leaf; 0 for a leaf.
func (n NodeRef[T]) Height() int {
	tr := NewBFS[T]()
	max := 0
	for v := range tr.steps(n.s) {
		if v.Depth > max {
			max = v.Depth
		}
	}
	return max
}

// NumLeaves returns the number of leaves in the subtree rooted at n.
func (n NodeRef[T]) NumLeaves() int {
	count := 0
	tr := NewDFS[T]()
	for _, s := range tr.steps(n.s) {
		if s.children.length() == 0 {
			count++
		}
	}
	return count
}

// CustomWalk yields nodes by repeatedly applying next, starting at n,
// until next reports no successor. The walk direction is entirely up to
// next: climb with Parent, descend with Child, or anything built with
// fp.ComposeSteps from those.
func (n NodeRef[T]) CustomWalk(next fp.Step[NodeRef[T]]) iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		cur, ok := n, true
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = next(cur)
		}
	}
}
