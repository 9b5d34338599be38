/*
Package prettyprint renders trees with Unicode box-drawing, one line per
node, continuation rules for every ancestor that still has siblings to
come. The rendering itself is delegated to the treeprint library; this
package only adapts a depth-first walk of the tree into treeprint's branch
builder. It is a thin collaborator of the core tree type and only speaks
through the public cursor and traverser API.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package prettyprint

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	tp "github.com/xlab/treeprint"
)

// Sprint renders the subtree rooted at n, formatting each payload with
// str. Pass nil for str to fall back to fmt.Sprint.
func Sprint[T any](n arbor.NodeRef[T], str func(T) string) string {
	if str == nil {
		str = func(v T) string { return fmt.Sprint(v) }
	}
	p := tp.New()
	p.SetValue(str(n.Data()))
	// branches[d] is the treeprint node the depth-d+1 children attach to
	branches := []tp.Tree{p}
	first := true
	for v, data := range n.WalkVisits(arbor.NewDFS[T]()) {
		if first {
			first = false
			continue
		}
		b := branches[v.Depth-1].AddBranch(str(data))
		branches = branches[:v.Depth]
		branches = append(branches, b)
	}
	return p.String()
}

// SprintTree is Sprint from the tree root; an empty tree renders as an
// empty string.
func SprintTree[T any](t *arbor.Tree[T], str func(T) string) string {
	if t.IsEmpty() {
		return ""
	}
	return Sprint(t.Root(), str)
}

// Print writes the rendering of the subtree rooted at n to w.
func Print[T any](w io.Writer, n arbor.NodeRef[T], str func(T) string) error {
	_, err := io.WriteString(w, Sprint(n, str))
	return err
}
