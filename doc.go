/*
Package arbor implements a generic, in-memory, arena-backed rooted tree.

Nodes live in a pinned slab arena; edges are plain pointers into that arena,
never owning references, which sidesteps the cycle that a parent/child
owning-pointer tree would otherwise form. Removing a node tombstones its
slot lazily; a MemoryPolicy decides when a compaction pass should swap
active slots into the resulting gaps to keep the arena dense. Stable
handles (NodeIdx) detect node removal and arena reorganization separately
via a per-tree generation counter.

Three reusable traversers (pre-order, level-order, post-order) hold their
own scratch buffers so that repeated traversal of the same or a different
tree does not reallocate. Subtrees are grafted between trees by replaying a
cloned, copied or moved-out depth-first (depth, data) stream; a move within
one tree relinks the existing nodes in place instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package arbor

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("arbor: "+msg, msgargs...)
		panic(msg)
	}
}
