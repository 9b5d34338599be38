package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// MemoryPolicy decides, after a node has been closed, whether the tree
// should compact the gaps out of its arena. Compaction relocates slots and
// therefore invalidates every outstanding NodeIdx; clients who cache
// indices across removals choose Lazy (or Threshold with D = 0) to keep
// them stable, at the price of a sparser arena.
type MemoryPolicy interface {
	shouldReclaim(utilization float64) bool
}

// Lazy never reclaims. Only removing a node itself invalidates that node's
// index; no implicit invalidation ever happens.
type Lazy struct{}

func (Lazy) shouldReclaim(float64) bool { return false }

// Threshold reclaims when utilization falls strictly below 1 − 1/2^D.
// D = 0 disables reclaim entirely; D = 2 (the default policy) keeps the
// arena at least 75% utilized.
type Threshold struct {
	D uint
}

func (p Threshold) shouldReclaim(u float64) bool {
	if p.D == 0 {
		return false
	}
	return u < 1.0-1.0/float64(uint64(1)<<p.D)
}

// DefaultPolicy is the policy trees are constructed with unless Options
// says otherwise.
func DefaultPolicy() MemoryPolicy { return Threshold{D: 2} }

// SetPolicy switches the tree's memory policy in place. Promoting to a
// Threshold policy evaluates the threshold condition immediately, so a
// sparse tree compacts at the transition point; demoting to Lazy only
// changes future behavior.
func (t *Tree[T]) SetPolicy(next MemoryPolicy) {
	t.policy = next
	if next.shouldReclaim(t.arena.utilization()) {
		t.compact()
	}
}

// maybeReclaim runs after every close; it consults the policy and compacts
// when asked to.
func (t *Tree[T]) maybeReclaim() {
	if t.policy.shouldReclaim(t.arena.utilization()) {
		t.compact()
	}
}

// compact sweeps the arena with two pointers: v walks forward over closed
// slots, o walks backward over active ones. Each time an active slot is
// found to the right of a closed one, the active slot's record is moved
// into the hole and every pointer that referenced its old address is
// repaired: the specific entry in its parent's child-list (found by
// pointer identity), each child's parent pointer, and the tree root if the
// slot was the root. The generation counter is bumped exactly once per
// compaction that changed anything, no matter how many slots moved, so a
// single removal invalidates cached indices once rather than k times.
//
// Returns whether the arena was reorganized (some slot moved or the
// logical end shifted), i.e. whether callers must refresh cached indices.
func (t *Tree[T]) compact() bool {
	moved := false
	v, o := 0, t.arena.len()-1
	for v < o {
		for v < o && t.arena.at(v).isActive() {
			v++
		}
		for o > v && !t.arena.at(o).isActive() {
			o--
		}
		if v >= o {
			break
		}
		src := t.arena.at(o)
		dst := t.arena.at(v)
		if src.parent != nil {
			found := src.parent.children.replaceByPointer(src, dst)
			assertThat(found, "compaction found a child missing from its parent's child-list")
		}
		for k := 0; k < src.children.length(); k++ {
			src.children.at(k).parent = dst
		}
		if t.root == src {
			t.root = dst
		}
		t.arena.swap(v, o)
		moved = true
		v++
		o--
	}
	before := t.arena.len()
	t.arena.truncate()
	reorganized := moved || t.arena.len() != before
	if reorganized {
		t.generation++
		tracer().Debugf("compacted arena: len %d -> %d, generation now %d",
			before, t.arena.len(), t.generation)
	}
	return reorganized
}
