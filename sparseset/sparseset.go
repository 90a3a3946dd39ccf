package sparseset

import "fmt"

// ErrFull is returned by InsertAny when the set already contains every
// element of [0, capacity) — the one recoverable failure mode spec.md §7(b)
// calls out explicitly ("SparseIndexSet.insert_any on a full set"). Callers
// handle it by calling Reserve.
var ErrFull = fmt.Errorf("sparseset: set is full")

// Set is a dense/sparse index set over [0, capacity). The zero value is not
// usable; construct with New.
type Set struct {
	values  []int // values[0:n] are the members, in no particular required order
	indices []int // indices[x] is the position of x within values
	n       int   // number of members
}

// New constructs an empty Set with the given initial capacity.
func New(capacity int) *Set {
	s := &Set{}
	s.Reserve(capacity)

	return s
}

// Capacity returns the current capacity (the exclusive upper bound on
// members); it only ever grows, via Reserve.
func (s *Set) Capacity() int {
	return len(s.values)
}

// Len returns the number of members currently in the set.
func (s *Set) Len() int {
	return s.n
}

// Contains reports whether x is a member. Complexity: O(1).
func (s *Set) Contains(x int) bool {
	s.checkRange(x)
	return s.indices[x] < s.n
}

// Clear empties the set while keeping its backing arrays, so a caller that
// reuses a Set across many runs pays no further allocation than Reserve
// already did.
func (s *Set) Clear() {
	s.n = 0
}

// Members returns the live prefix of the backing array as a read-only view
// of the current membership — the set's own storage, not a copy, so it is
// invalidated by any subsequent mutation. A convenience for callers that want
// to range over the set, matching diag.ComponentGraph.Vertices()'s
// read-accessor style.
func (s *Set) Members() []int {
	return s.values[:s.n]
}

// InsertAny allocates and returns an element of [0, capacity) that is not
// currently a member, adding it to the set. Returns ErrFull if every index
// is already a member. Complexity: O(1).
func (s *Set) InsertAny() (int, error) {
	if s.n >= len(s.values) {
		return 0, ErrFull
	}
	x := s.values[s.n]
	s.n++

	return x, nil
}

// Insert adds x to the set. Inserting an already-present x is a no-op.
// Complexity: O(1).
func (s *Set) Insert(x int) {
	s.checkRange(x)
	if s.Contains(x) {
		return
	}
	s.swapToPosition(x, s.n)
	s.n++
}

// EraseUnordered removes x from the set, possibly reordering another member
// into its slot (the last member is swapped into the vacated position).
// Complexity: O(1). Erasing a non-member is a no-op.
func (s *Set) EraseUnordered(x int) {
	s.checkRange(x)
	if !s.Contains(x) {
		return
	}
	s.n--
	s.swapToPosition(x, s.n)
}

// EraseOrdered removes x from the set while preserving the relative order
// of every other member (a left-shift of everything after x's slot).
// Complexity: O(n). Erasing a non-member is a no-op.
func (s *Set) EraseOrdered(x int) {
	s.checkRange(x)
	if !s.Contains(x) {
		return
	}
	pos := s.indices[x]
	for i := pos; i < s.n-1; i++ {
		moved := s.values[i+1]
		s.values[i] = moved
		s.indices[moved] = i
	}
	s.n--
	s.values[s.n] = x
	s.indices[x] = s.n
}

// Reserve grows capacity to newCap, extending both backing arrays with the
// identity mapping (values[i] = indices[i] = i for i in [old, newCap)).
// Capacity may only grow; Reserve with newCap <= current capacity is a
// no-op. Complexity: O(newCap), since both arrays are reallocated and the
// old entries copied over.
func (s *Set) Reserve(newCap int) {
	old := len(s.values)
	if newCap <= old {
		return
	}
	values := make([]int, newCap)
	indices := make([]int, newCap)
	copy(values, s.values)
	copy(indices, s.indices)
	for i := old; i < newCap; i++ {
		values[i] = i
		indices[i] = i
	}
	s.values = values
	s.indices = indices
}

// swapToPosition swaps x into slot pos of values/indices, maintaining the
// values<->indices mutual-inverse invariant.
func (s *Set) swapToPosition(x, pos int) {
	xPos := s.indices[x]
	other := s.values[pos]
	s.values[xPos], s.values[pos] = s.values[pos], s.values[xPos]
	s.indices[x], s.indices[other] = pos, xPos
}

func (s *Set) checkRange(x int) {
	if x < 0 || x >= len(s.values) {
		panic(fmt.Sprintf("sparseset: index %d out of range [0,%d)", x, len(s.values)))
	}
}
