package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/arbor/maybe"
)

// Variant selects the shape of each node's children container.
type Variant int8

const (
	// Dynamic nodes hold a growable, unbounded list of children.
	Dynamic Variant = iota
	// Dary nodes hold at most Options.Arity children; pushing past the
	// capacity is a programmer error and panics.
	Dary
)

// Options parameterize tree construction. The zero value is a dynamic tree
// with the default memory policy.
type Options struct {
	Variant  Variant
	Arity    int          // child capacity per node, Dary variant only
	Policy   MemoryPolicy // nil selects DefaultPolicy()
	Capacity int          // arena pre-allocation hint, in slots
}

// Tree is a rooted tree of nodes carrying payloads of type T. Nodes live
// in a pinned arena owned by the tree; all edges are raw addresses into
// that arena. A tree is a single-writer resource: mutation goes through
// one NodeMut cursor at a time (or through sibling down-only cursors, see
// ChildrenMut), reads through any number of NodeRef cursors.
type Tree[T any] struct {
	arena      pinnedArena[T]
	root       *slot[T]
	generation uint64
	policy     MemoryPolicy
	variant    Variant
	arity      int
}

// New creates an empty dynamic tree with the default memory policy.
func New[T any]() *Tree[T] {
	return NewTree[T](Options{})
}

// NewDary creates an empty tree whose nodes hold at most arity children.
func NewDary[T any](arity int) *Tree[T] {
	return NewTree[T](Options{Variant: Dary, Arity: arity})
}

// NewTree creates an empty tree from opts.
func NewTree[T any](opts Options) *Tree[T] {
	assertThat(opts.Variant != Dary || opts.Arity > 0,
		"D-ary tree constructed with non-positive arity %d", opts.Arity)
	t := &Tree[T]{
		policy:  opts.Policy,
		variant: opts.Variant,
		arity:   opts.Arity,
	}
	if t.policy == nil {
		t.policy = DefaultPolicy()
	}
	for c := 0; c < (opts.Capacity+arenaChunkSize-1)/arenaChunkSize; c++ {
		t.arena.chunks = append(t.arena.chunks, new([arenaChunkSize]slot[T]))
	}
	return t
}

// Len returns the number of active nodes.
func (t *Tree[T]) Len() int {
	return t.arena.active
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("(Tree #nodes=%d gen=%d)", t.Len(), t.generation)
}

// --- Root access -----------------------------------------------------------

// PushRoot plants the root node of an empty tree and returns its index.
func (t *Tree[T]) PushRoot(data T) NodeIdx[T] {
	assertThat(t.root == nil, "PushRoot called on a non-empty tree")
	t.root = t.push(data, nil)
	return t.mintIdx(t.root)
}

// Root returns a cursor on the root node. Calling Root on an empty tree is
// a programmer error and panics; use GetRoot for the optional form.
func (t *Tree[T]) Root() NodeRef[T] {
	assertThat(t.root != nil, "Root called on an empty tree")
	return NodeRef[T]{tree: t, s: t.root}
}

// GetRoot returns a cursor on the root node, or Nothing for an empty tree.
func (t *Tree[T]) GetRoot() maybe.Maybe[NodeRef[T]] {
	if t.root == nil {
		return maybe.Nothing[NodeRef[T]]()
	}
	return maybe.Just(NodeRef[T]{tree: t, s: t.root})
}

// RootMut returns a mutating cursor on the root node; panics on an empty
// tree.
func (t *Tree[T]) RootMut() NodeMut[T] {
	assertThat(t.root != nil, "RootMut called on an empty tree")
	return NodeMut[T]{NodeRef[T]{tree: t, s: t.root}}
}

// GetRootMut returns a mutating root cursor, or Nothing for an empty tree.
func (t *Tree[T]) GetRootMut() maybe.Maybe[NodeMut[T]] {
	if t.root == nil {
		return maybe.Nothing[NodeMut[T]]()
	}
	return maybe.Just(t.RootMut())
}

// --- Index access ----------------------------------------------------------

// Node resolves idx to a cursor, panicking if the index is invalid.
func (t *Tree[T]) Node(idx NodeIdx[T]) NodeRef[T] {
	n, err := t.TryNode(idx)
	assertThat(err == nil, "Node called with invalid index: %v", err)
	return n
}

// GetNode resolves idx to a cursor, or Nothing if the index is invalid.
func (t *Tree[T]) GetNode(idx NodeIdx[T]) maybe.Maybe[NodeRef[T]] {
	n, err := t.TryNode(idx)
	if err != nil {
		return maybe.Nothing[NodeRef[T]]()
	}
	return maybe.Just(n)
}

// TryNode resolves idx to a cursor, or reports why it cannot: the index
// may belong to a different tree (ErrOutOfBounds), its node may have been
// removed (ErrRemovedNode), or the arena may have been compacted since the
// index was minted (ErrReorganizedCollection).
func (t *Tree[T]) TryNode(idx NodeIdx[T]) (NodeRef[T], error) {
	if e := idx.errorIn(t); e != 0 {
		return NodeRef[T]{}, e
	}
	return NodeRef[T]{tree: t, s: idx.ptr}, nil
}

// NodeMutOf resolves idx to a mutating cursor, panicking if invalid.
func (t *Tree[T]) NodeMutOf(idx NodeIdx[T]) NodeMut[T] {
	m, err := t.TryNodeMut(idx)
	assertThat(err == nil, "NodeMutOf called with invalid index: %v", err)
	return m
}

// GetNodeMut resolves idx to a mutating cursor, or Nothing if invalid.
func (t *Tree[T]) GetNodeMut(idx NodeIdx[T]) maybe.Maybe[NodeMut[T]] {
	m, err := t.TryNodeMut(idx)
	if err != nil {
		return maybe.Nothing[NodeMut[T]]()
	}
	return maybe.Just(m)
}

// TryNodeMut resolves idx to a mutating cursor, or reports why it cannot.
func (t *Tree[T]) TryNodeMut(idx NodeIdx[T]) (NodeMut[T], error) {
	if e := idx.errorIn(t); e != 0 {
		return NodeMut[T]{}, e
	}
	return NodeMut[T]{NodeRef[T]{tree: t, s: idx.ptr}}, nil
}

func (t *Tree[T]) mintIdx(s *slot[T]) NodeIdx[T] {
	gen, _ := t.memoryState()
	return NodeIdx[T]{owner: t, gen: gen, ptr: s}
}

// memoryState snapshots the arena state an index mint captures: the
// generation it will be validated against, and the arena length at that
// moment.
func (t *Tree[T]) memoryState() (generation uint64, size int) {
	return t.generation, t.arena.len()
}

// --- Mutation primitives (collection façade) -------------------------------

// push allocates a slot holding data and links it to parent (one way; the
// parent's child-list is the caller's responsibility).
func (t *Tree[T]) push(data T, parent *slot[T]) *slot[T] {
	s := t.arena.push(data)
	s.parent = parent
	s.children = newChildList[T](t.variant, t.arity)
	return s
}

// closeSlot tombstones s and extracts its data. Neighbor links are not
// touched here; bulk removal closes whole subtrees and detaches only the
// subtree root from its parent.
func (t *Tree[T]) closeSlot(s *slot[T]) T {
	v := s.close()
	t.arena.active--
	return v
}

// closeIfActive is the idempotent variant used by bulk prune.
func (t *Tree[T]) closeIfActive(s *slot[T]) {
	if s.isActive() {
		t.closeSlot(s)
	}
}

// --- Subtree swap ----------------------------------------------------------

// SwapNodes exchanges the positions of the two subtrees rooted at a and b.
// The subtrees must be independent: if one root is an ancestor of the
// other the swap would tear the tree, which is a programmer error and
// panics. Use TrySwapNodes for the checked form.
func (t *Tree[T]) SwapNodes(a, b NodeIdx[T]) {
	if err := t.TrySwapNodes(a, b); err != nil {
		panic(fmt.Sprintf("arbor: SwapNodes: %v", err))
	}
}

// TrySwapNodes exchanges the positions of the two subtrees rooted at a and
// b, or returns a NodeSwapError if the subtrees intersect (one root is an
// ancestor of the other), or a NodeIdxError if either index is invalid.
// Swapping a node with itself is a no-op.
func (t *Tree[T]) TrySwapNodes(a, b NodeIdx[T]) error {
	na, err := t.TryNode(a)
	if err != nil {
		return err
	}
	nb, err := t.TryNode(b)
	if err != nil {
		return err
	}
	if na.s == nb.s {
		return nil
	}
	if na.IsAncestorOf(nb) {
		return ErrFirstNodeIsAncestorOfSecond
	}
	if nb.IsAncestorOf(na) {
		return ErrSecondNodeIsAncestorOfFirst
	}
	sa, sb := na.s, nb.s
	pa, pb := sa.parent, sb.parent
	if pa == pb {
		// siblings: both entries live in one child-list, so swap them by
		// position; parents are unaffected
		found := pa.children.swapByPointer(sa, sb)
		assertThat(found, "sibling nodes missing from their parent's child-list")
		return nil
	}
	switch {
	case pa == nil:
		t.root = sb
	case pb == nil:
		t.root = sa
	}
	if pa != nil {
		pa.children.replaceByPointer(sa, sb)
	}
	if pb != nil {
		pb.children.replaceByPointer(sb, sa)
	}
	sa.parent, sb.parent = pb, pa
	return nil
}

// --- Equality --------------------------------------------------------------

// Equal reports whether the subtrees rooted at a and b carry equal data in
// equal shape: same payload at each position, same child arity per node,
// compared pre-order.
func Equal[T comparable](a, b NodeRef[T]) bool {
	if a.Data() != b.Data() || a.NumChildren() != b.NumChildren() {
		return false
	}
	for i := 0; i < a.NumChildren(); i++ {
		ca, _ := a.Child(i)
		cb, _ := b.Child(i)
		if !Equal(ca, cb) {
			return false
		}
	}
	return true
}
