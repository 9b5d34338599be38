/*
Package dfseq converts trees to and from their linear depth-first wire
form: an ordered sequence of (depth, data) pairs in pre-order. The package
is a thin collaborator of the core tree type; it only speaks through the
public cursor and traverser API.

A valid sequence starts at depth 0 and, between consecutive pairs, either
descends by exactly one level, stays on the same level (next sibling), or
ascends any number of levels before the next sibling. A depth increase of
more than one has no tree reading and is rejected, as is a second depth-0
pair, which would denote a second root.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dfseq

import (
	"errors"
	"fmt"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.dfseq'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.dfseq")
}

// Pair is one element of the wire form: a payload together with its node's
// depth below the root.
type Pair[T any] struct {
	Depth int
	Data  T
}

// ErrNonZeroRootDepth is returned for a non-empty sequence whose first
// pair does not sit at depth 0.
var ErrNonZeroRootDepth = errors.New("dfseq: first pair of a non-empty sequence must have depth 0")

// ErrMultipleRoots is returned when a later pair returns to depth 0, which
// would start a second root.
var ErrMultipleRoots = errors.New("dfseq: sequence continues after the root's subtree is complete")

// DepthIncreaseError is returned when consecutive pairs descend by more
// than one level, which no tree can produce.
type DepthIncreaseError struct {
	Depth           int
	SucceedingDepth int
}

func (e DepthIncreaseError) Error() string {
	return fmt.Sprintf("dfseq: depth may increase by at most one, got %d after %d",
		e.SucceedingDepth, e.Depth)
}

// Encode emits the depth-first wire form of the subtree rooted at n.
// Decode(Encode(n)) reconstructs a tree equal to that subtree.
func Encode[T any](n arbor.NodeRef[T]) []Pair[T] {
	var out []Pair[T]
	for v, data := range n.WalkVisits(arbor.NewDFS[T]()) {
		out = append(out, Pair[T]{Depth: v.Depth, Data: data})
	}
	return out
}

// EncodeTree is Encode from the tree root; an empty tree encodes to an
// empty sequence.
func EncodeTree[T any](t *arbor.Tree[T]) []Pair[T] {
	if t.IsEmpty() {
		return nil
	}
	return Encode(t.Root())
}

// Decode reconstructs a tree from its depth-first wire form into a fresh
// tree built by newTree (pass arbor.New[T] for a dynamic tree with the
// default policy). An empty sequence yields an empty tree.
//
// The reconstructor keeps a write cursor: for each pair it ascends back to
// the pair's parent level if needed, pushes a child with the pair's data,
// and makes that child the cursor.
func Decode[T any](pairs []Pair[T], newTree func() *arbor.Tree[T]) (*arbor.Tree[T], error) {
	t := newTree()
	if len(pairs) == 0 {
		return t, nil
	}
	if pairs[0].Depth != 0 {
		return nil, ErrNonZeroRootDepth
	}
	cur := t.NodeMutOf(t.PushRoot(pairs[0].Data))
	depth := 0
	for _, p := range pairs[1:] {
		if p.Depth > depth+1 {
			tracer().Errorf("rejecting depth-first sequence: %d after %d", p.Depth, depth)
			return nil, DepthIncreaseError{Depth: depth, SucceedingDepth: p.Depth}
		}
		if p.Depth == 0 {
			return nil, ErrMultipleRoots
		}
		for up := depth - p.Depth + 1; up > 0; up-- {
			parent, ok := cur.ParentMut()
			if !ok {
				return nil, ErrMultipleRoots
			}
			cur = parent
		}
		cur = t.NodeMutOf(cur.PushChild(p.Data))
		depth = p.Depth
	}
	return t, nil
}
