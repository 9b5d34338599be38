package arbor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// The arena is a chunked slab: slots live inside fixed-size chunk arrays
// which are allocated once and never relocated. The outer chunk slice may
// grow, but growing it only copies chunk pointers, so the address of a slot
// handed out once is stable for the lifetime of the tree. Addresses change
// only under an explicit swap, which the compactor performs deliberately.

const arenaChunkSize = 64

type pinnedArena[T any] struct {
	chunks []*[arenaChunkSize]slot[T]
	size   int // logical slot count; slots past size are reusable spares
	active int // slots currently holding a node
}

// push appends a slot holding data and returns its stable address. A slot
// past the logical end (left over from a previous truncation) is reused
// before a new chunk is allocated.
func (a *pinnedArena[T]) push(data T) *slot[T] {
	i := a.size
	if i/arenaChunkSize >= len(a.chunks) {
		a.chunks = append(a.chunks, new([arenaChunkSize]slot[T]))
	}
	s := a.at(i)
	s.open(data)
	a.size++
	a.active++
	return s
}

// at returns the slot at logical position i. Callers never index past the
// allocated chunks; position size is valid only from push.
func (a *pinnedArena[T]) at(i int) *slot[T] {
	return &a.chunks[i/arenaChunkSize][i%arenaChunkSize]
}

func (a *pinnedArena[T]) len() int {
	return a.size
}

// utilization is the ratio of active slots to logical length. An empty
// arena counts as fully utilized, so that a fresh tree never looks like a
// reclaim candidate.
func (a *pinnedArena[T]) utilization() float64 {
	if a.size == 0 {
		return 1.0
	}
	return float64(a.active) / float64(a.size)
}

// swap physically exchanges the two slot records at positions i and j.
// Link fixups are the caller's job; see the compactor in policy.go.
func (a *pinnedArena[T]) swap(i, j int) {
	si, sj := a.at(i), a.at(j)
	*si, *sj = *sj, *si
}

// truncate drops the trailing run of closed slots from the logical length.
// The chunks stay allocated; push will reopen the slots in place.
func (a *pinnedArena[T]) truncate() {
	for a.size > 0 && !a.at(a.size-1).isActive() {
		a.size--
	}
}

// iterSlots calls f for each logical slot position in ascending order,
// stopping early if f returns false.
func (a *pinnedArena[T]) iterSlots(f func(i int, s *slot[T]) bool) {
	for i := 0; i < a.size; i++ {
		if !f(i, a.at(i)) {
			return
		}
	}
}

// iterSlotsRev is iterSlots in descending position order.
func (a *pinnedArena[T]) iterSlotsRev(f func(i int, s *slot[T]) bool) {
	for i := a.size - 1; i >= 0; i-- {
		if !f(i, a.at(i)) {
			return
		}
	}
}
