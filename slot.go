package arbor

// slot is a single fixed-location record in the arena. A slot is active
// while set is true; closing a slot clears set and the parent/children
// links. The payload is stored as a plain T (not maybe.Maybe[T]) so that
// DataMut can hand back a genuine *T into the slot; maybe.Maybe[T] is
// reserved for the public optional-accessor boundary (Tree.GetNode and
// friends), where there is no mutation to support.
type slot[T any] struct {
	set      bool
	data     T
	parent   *slot[T]
	children childList[T]
}

func (s *slot[T]) isActive() bool {
	return s != nil && s.set
}

// open (re)initializes a freshly-allocated or freshly-truncated slot as an
// active node holding data, with no parent and no children yet.
func (s *slot[T]) open(data T) {
	s.set = true
	s.data = data
	s.parent = nil
	s.children = childList[T]{}
}

// close tombstones the slot, extracting and returning its data. It does not
// touch neighbor links (parent's child-list, children's parent-pointers);
// that is the caller's responsibility.
func (s *slot[T]) close() T {
	assertThat(s.set, "close called on an already-closed slot")
	v := s.data
	var zero T
	s.set = false
	s.data = zero
	s.parent = nil
	s.children = childList[T]{}
	return v
}

func (s *slot[T]) dataRef() *T {
	assertThat(s.isActive(), "data accessed on a closed slot")
	return &s.data
}
