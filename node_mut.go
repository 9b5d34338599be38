package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "iter"

// Side selects where PushSibling places a new node relative to the cursor.
type Side int8

const (
	Before Side = iota
	After
)

// NodeMut is a mutating cursor on one node. It embeds NodeRef, so every
// read accessor is available on it as well. A tree is single-writer: hold
// one NodeMut at a time, except for the sibling group handed out by
// ChildrenMut, whose down-only cursors cannot reach their shared parent
// and therefore cannot alias each other.
type NodeMut[T any] struct {
	NodeRef[T]
}

// DataMut returns a mutable pointer to the node's payload.
func (m NodeMut[T]) DataMut() *T {
	return m.s.dataRef()
}

// SetData replaces the node's payload and returns the cursor for chaining.
func (m NodeMut[T]) SetData(v T) NodeMut[T] {
	*m.s.dataRef() = v
	return m
}

// --- Growing ---------------------------------------------------------------

// PushChild appends a new child holding v and returns its index.
func (m NodeMut[T]) PushChild(v T) NodeIdx[T] {
	s := m.tree.push(v, m.s)
	m.s.children.push(s)
	return m.tree.mintIdx(s)
}

// PushChildren appends one child per value, left to right, returning their
// indices in the same order.
func (m NodeMut[T]) PushChildren(vs ...T) []NodeIdx[T] {
	out := make([]NodeIdx[T], len(vs))
	for i, v := range vs {
		out[i] = m.PushChild(v)
	}
	return out
}

// ExtendChildren appends a child per value of seq, lazily: a child is
// pushed only as the returned sequence is consumed, and stopping early
// stops pushing.
func (m NodeMut[T]) ExtendChildren(seq iter.Seq[T]) iter.Seq[NodeIdx[T]] {
	return func(yield func(NodeIdx[T]) bool) {
		for v := range seq {
			if !yield(m.PushChild(v)) {
				return
			}
		}
	}
}

// InsertChild inserts a new child holding v at position pos, shifting
// later children right, and returns its index.
func (m NodeMut[T]) InsertChild(pos int, v T) NodeIdx[T] {
	s := m.tree.push(v, m.s)
	m.s.children.insertAt(pos, s)
	return m.tree.mintIdx(s)
}

// PushSibling inserts a new node holding v directly before or after this
// node in its parent's child-list. The root has no sibling position, so
// calling this on the root is a programmer error.
func (m NodeMut[T]) PushSibling(side Side, v T) NodeIdx[T] {
	assertThat(m.s.parent != nil, "PushSibling called on the root")
	pos := m.SiblingIdx()
	if side == After {
		pos++
	}
	s := m.tree.push(v, m.s.parent)
	m.s.parent.children.insertAt(pos, s)
	return m.tree.mintIdx(s)
}

// PushSiblings inserts one node per value as a contiguous run before or
// after this node, preserving the given order.
func (m NodeMut[T]) PushSiblings(side Side, vs ...T) []NodeIdx[T] {
	assertThat(m.s.parent != nil, "PushSiblings called on the root")
	base := m.SiblingIdx()
	if side == After {
		base++
	}
	out := make([]NodeIdx[T], len(vs))
	for i, v := range vs {
		s := m.tree.push(v, m.s.parent)
		m.s.parent.children.insertAt(base+i, s)
		out[i] = m.tree.mintIdx(s)
	}
	return out
}

// --- Pruning ---------------------------------------------------------------

// Remove detaches the subtree rooted at this node, closes every node in it
// (descendants in post-order), and returns this node's payload. The cursor
// must not be used afterwards. The memory policy may compact afterwards.
func (m NodeMut[T]) Remove() T {
	m.detach()
	var v T
	tr := NewPostOrder[T]()
	for _, s := range tr.steps(m.s) {
		if s == m.s {
			v = m.tree.closeSlot(s)
		} else {
			m.tree.closeIfActive(s)
		}
	}
	m.tree.maybeReclaim()
	return v
}

// Prune is Remove discarding the payload.
func (m NodeMut[T]) Prune() {
	m.Remove()
}

// detach unlinks this node from its parent (or clears the tree root),
// leaving the subtree's internal links intact.
func (m NodeMut[T]) detach() {
	if m.s.parent != nil {
		found := m.s.parent.children.removeByPointer(m.s)
		assertThat(found, "node missing from its parent's child-list")
		m.s.parent = nil
	} else {
		m.tree.root = nil
	}
}

// --- In-place updates ------------------------------------------------------

// RecursiveSet recomputes every payload in the subtree rooted at this node
// bottom-up: f receives a node's current payload and the already-updated
// payloads of its children, and returns the node's new payload. The pass
// is driven by a post-order traverser, not by call recursion, so arbitrary
// depths are safe. The children slice passed to f is only valid during
// that call.
func (m NodeMut[T]) RecursiveSet(f func(data T, children []T) T) {
	tr := NewPostOrder[T]()
	var buf []T
	for _, s := range tr.steps(m.s) {
		buf = buf[:0]
		for i := 0; i < s.children.length(); i++ {
			buf = append(buf, s.children.at(i).data)
		}
		s.data = f(s.data, buf)
	}
}

// SwapDataWith exchanges this node's payload with the node behind idx,
// which must be a valid index into the same tree. Swapping a node's
// payload with itself is a no-op.
func (m NodeMut[T]) SwapDataWith(idx NodeIdx[T]) {
	other, err := m.tree.TryNodeMut(idx)
	assertThat(err == nil, "SwapDataWith called with invalid index: %v", err)
	if other.s == m.s {
		return
	}
	m.s.data, other.s.data = other.s.data, m.s.data
}

// --- Navigation ------------------------------------------------------------

// ParentMut returns a mutating cursor on the parent; ok is false on the
// root. The receiving cursor must not be used concurrently with it.
func (m NodeMut[T]) ParentMut() (NodeMut[T], bool) {
	p, ok := m.Parent()
	if !ok {
		return NodeMut[T]{}, false
	}
	return NodeMut[T]{p}, true
}

// ChildMut returns a mutating cursor on the i-th child.
func (m NodeMut[T]) ChildMut(i int) (NodeMut[T], bool) {
	c, ok := m.Child(i)
	if !ok {
		return NodeMut[T]{}, false
	}
	return NodeMut[T]{c}, true
}

// ChildrenMut returns a down-only mutating cursor per child. Down-only
// cursors cannot ascend, so the whole group may be used side by side:
// no cursor can climb to the shared parent and alias another's subtree.
func (m NodeMut[T]) ChildrenMut() []NodeMutDown[T] {
	out := make([]NodeMutDown[T], m.NumChildren())
	for i := range out {
		c, _ := m.ChildMut(i)
		out[i] = NodeMutDown[T]{m: c}
	}
	return out
}

// NodeMutDown is a mutating cursor restricted to descending moves. It has
// no parent accessor of any kind, which is what makes a sibling group of
// them safe to hold simultaneously (see NodeMut.ChildrenMut).
type NodeMutDown[T any] struct {
	m NodeMut[T]
}

// Data returns the node's payload.
func (d NodeMutDown[T]) Data() T { return d.m.Data() }

// DataMut returns a mutable pointer to the node's payload.
func (d NodeMutDown[T]) DataMut() *T { return d.m.DataMut() }

// SetData replaces the node's payload.
func (d NodeMutDown[T]) SetData(v T) NodeMutDown[T] {
	d.m.SetData(v)
	return d
}

// Idx mints a stable index for the node.
func (d NodeMutDown[T]) Idx() NodeIdx[T] { return d.m.Idx() }

// NumChildren returns the number of children.
func (d NodeMutDown[T]) NumChildren() int { return d.m.NumChildren() }

// PushChild appends a new child holding v.
func (d NodeMutDown[T]) PushChild(v T) NodeIdx[T] { return d.m.PushChild(v) }

// PushChildren appends one child per value, left to right.
func (d NodeMutDown[T]) PushChildren(vs ...T) []NodeIdx[T] {
	return d.m.PushChildren(vs...)
}

// ChildMut descends to the i-th child, staying down-only.
func (d NodeMutDown[T]) ChildMut(i int) (NodeMutDown[T], bool) {
	c, ok := d.m.ChildMut(i)
	if !ok {
		return NodeMutDown[T]{}, false
	}
	return NodeMutDown[T]{m: c}, true
}

// ChildrenMut returns a down-only cursor per child.
func (d NodeMutDown[T]) ChildrenMut() []NodeMutDown[T] {
	return d.m.ChildrenMut()
}

// WalkMut yields a mutable payload pointer per node of the subtree.
func (d NodeMutDown[T]) WalkMut(tr Traverser[T]) iter.Seq[*T] {
	return d.m.WalkMut(tr)
}

// RecursiveSet recomputes the subtree's payloads bottom-up; see
// NodeMut.RecursiveSet.
func (d NodeMutDown[T]) RecursiveSet(f func(data T, children []T) T) {
	d.m.RecursiveSet(f)
}
