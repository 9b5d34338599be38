package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Cloneable is satisfied by payload types with an explicit deep-copy
// operation. ClonedSubtree requires it; AsCopiedSubtree relies on plain
// value copies instead and works for any T.
type Cloneable[T any] interface {
	Clone() T
}

// dfPair is one step of a subtree's depth-first stream: the payload plus
// the node's depth below the subtree root. Grafting replays the stream
// through the same descend/ascend automaton the linear deserializer uses.
type dfPair[T any] struct {
	depth int
	data  T
}

// Subtree is a graftable unit: a node and all of its descendants, detached
// from their positional context. Cloned, copied, and moved-out subtrees
// are materialized (depth, data) streams; a within-tree move is lazy and
// performs its surgery when grafted, so that the cycle check can run
// against the tree's state at that moment.
type Subtree[T any] struct {
	pairs []dfPair[T]
	src   *Tree[T] // within-tree move only
	root  *slot[T] // within-tree move only
}

// ClonedSubtree captures the subtree rooted at n as a graftable value,
// deep-copying every payload through its Clone method. The source tree is
// left untouched.
func ClonedSubtree[T Cloneable[T]](n NodeRef[T]) Subtree[T] {
	tr := NewDFS[T]()
	var pairs []dfPair[T]
	for v, s := range tr.steps(n.s) {
		pairs = append(pairs, dfPair[T]{depth: v.Depth, data: s.data.Clone()})
	}
	return Subtree[T]{pairs: pairs}
}

// AsCopiedSubtree captures the subtree rooted at n as a graftable value
// using plain value copies of the payloads. The source tree is left
// untouched. For payloads holding references this is a shallow copy; use
// ClonedSubtree with a Cloneable payload for deep copies.
func (n NodeRef[T]) AsCopiedSubtree() Subtree[T] {
	tr := NewDFS[T]()
	var pairs []dfPair[T]
	for v, s := range tr.steps(n.s) {
		pairs = append(pairs, dfPair[T]{depth: v.Depth, data: s.data})
	}
	return Subtree[T]{pairs: pairs}
}

// IntoMovedSubtree detaches the subtree rooted at m from its tree,
// consuming it: the source nodes are closed immediately and their payloads
// captured into the returned graftable value. The cursor must not be used
// afterwards. Meant for grafting into a *different* tree; for moving
// within one tree use IntoSubtreeWithin, which keeps the cycle check
// intact.
func (m NodeMut[T]) IntoMovedSubtree() Subtree[T] {
	m.detach()
	pairs := m.tree.drainSubtree(m.s)
	m.tree.maybeReclaim()
	return Subtree[T]{pairs: pairs}
}

// IntoSubtreeWithin marks the subtree rooted at m for transplantation
// within the same tree. Nothing happens until the subtree is grafted with
// AppendChildTree, at which point the source is detached and its nodes
// moved below the target. Grafting it under itself or under one of its own
// descendants is a programmer error and panics.
func (m NodeMut[T]) IntoSubtreeWithin() Subtree[T] {
	return Subtree[T]{src: m.tree, root: m.s}
}

// drainSubtree closes every slot of the already-detached subtree rooted at
// s, collecting the depth-first (depth, data) stream.
func (t *Tree[T]) drainSubtree(s *slot[T]) []dfPair[T] {
	tr := NewDFS[T]()
	var pairs []dfPair[T]
	for v, sl := range tr.steps(s) {
		pairs = append(pairs, dfPair[T]{depth: v.Depth, data: t.closeSlot(sl)})
	}
	return pairs
}

// AppendChildTree grafts sub as the new last child of this node and
// returns the index of the grafted subtree's root.
//
// A materialized subtree (cloned, copied, or moved out of another tree) is
// replayed through the depth automaton: each (depth, data) pair pushes a
// node under the most recent node one level up. A within-tree move skips
// the stream entirely and relinks the existing slots in place: no node is
// closed or copied, so no reclaim can run and outstanding indices stay
// valid; only the subtree's position changes.
func (m NodeMut[T]) AppendChildTree(sub Subtree[T]) NodeIdx[T] {
	if sub.src != nil {
		return sub.relinkUnder(m)
	}
	assertThat(len(sub.pairs) > 0, "grafting an empty subtree")
	return m.tree.buildFromPairs(m.s, sub.pairs)
}

// relinkUnder performs a lazy within-tree move: cycle check against the
// target, then detach and reattach the subtree root's links.
func (sub Subtree[T]) relinkUnder(target NodeMut[T]) NodeIdx[T] {
	assertThat(sub.src == target.tree,
		"within-tree subtree grafted into a different tree")
	src := NodeMut[T]{NodeRef[T]{tree: sub.src, s: sub.root}}
	assertThat(src.s != target.s, "moving a node under itself")
	assertThat(!src.IsAncestorOf(target.NodeRef),
		"moving a node under one of its own descendants")
	tracer().Debugf("moving subtree %v within tree", src)
	src.detach()
	src.s.parent = target.s
	target.s.children.push(src.s)
	return target.tree.mintIdx(src.s)
}

// buildFromPairs replays a depth-first stream below parent. The stream's
// first pair has depth 0 and becomes a new child of parent; later pairs
// attach below the most recently built node at the next-shallower depth.
// Streams produced by this package are well-formed by construction; the
// automaton asserts rather than returning errors (wire input with real
// error reporting goes through the dfseq package instead).
func (t *Tree[T]) buildFromPairs(parent *slot[T], pairs []dfPair[T]) NodeIdx[T] {
	assertThat(pairs[0].depth == 0, "subtree stream must start at depth 0")
	// path[d] is the parent a depth-d node attaches to
	path := []*slot[T]{parent}
	var first *slot[T]
	for _, p := range pairs {
		assertThat(p.depth >= 0 && p.depth < len(path),
			"malformed subtree stream: depth %d after %d levels", p.depth, len(path)-1)
		at := path[p.depth]
		s := t.push(p.data, at)
		at.children.push(s)
		if first == nil {
			first = s
		}
		path = path[:p.depth+1]
		path = append(path, s)
	}
	return t.mintIdx(first)
}

// PushRootTree plants a whole subtree as the root of an empty tree and
// returns the root's index.
func (t *Tree[T]) PushRootTree(sub Subtree[T]) NodeIdx[T] {
	assertThat(t.root == nil, "PushRootTree called on a non-empty tree")
	assertThat(sub.src == nil, "a within-tree subtree cannot become a root")
	pairs := sub.pairs
	assertThat(len(pairs) > 0, "grafting an empty subtree")
	idx := t.PushRoot(pairs[0].data)
	if len(pairs) > 1 {
		rest := make([]dfPair[T], len(pairs)-1)
		for i, p := range pairs[1:] {
			rest[i] = dfPair[T]{depth: p.depth - 1, data: p.data}
		}
		t.buildFromPairs(t.root, rest)
	}
	return idx
}
