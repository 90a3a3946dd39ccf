package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariant checks the mutual-inverse invariant and that values[0:n]
// are exactly the members, per spec.md §8's SparseIndexSet invariant.
func assertInvariant(t *testing.T, s *Set) {
	t.Helper()
	for x := 0; x < s.Capacity(); x++ {
		assert.Equal(t, x, s.values[s.indices[x]], "values[indices[%d]] != %d", x, x)
	}
	for i := 0; i < s.Capacity(); i++ {
		assert.Equal(t, i, s.indices[s.values[i]], "indices[values[%d]] != %d", i, i)
	}
	for i := 0; i < s.n; i++ {
		assert.True(t, s.Contains(s.values[i]))
	}
}

func TestInsertAnyAndContains(t *testing.T) {
	s := New(4)
	assertInvariant(t, s)

	got := make(map[int]bool)
	for i := 0; i < 4; i++ {
		x, err := s.InsertAny()
		require.NoError(t, err)
		assert.False(t, got[x], "InsertAny returned %d twice", x)
		got[x] = true
		assert.True(t, s.Contains(x))
	}
	assert.Equal(t, 4, s.Len())
	assertInvariant(t, s)

	_, err := s.InsertAny()
	assert.ErrorIs(t, err, ErrFull)
}

func TestInsertIdempotent(t *testing.T) {
	s := New(8)
	s.Insert(3)
	s.Insert(3)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(3))
	assertInvariant(t, s)
}

func TestEraseUnordered(t *testing.T) {
	s := New(5)
	for _, x := range []int{0, 1, 2, 3, 4} {
		s.Insert(x)
	}
	s.EraseUnordered(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 4, s.Len())
	for _, x := range []int{0, 1, 3, 4} {
		assert.True(t, s.Contains(x))
	}
	assertInvariant(t, s)

	// Erasing a non-member is a no-op.
	s.EraseUnordered(2)
	assert.Equal(t, 4, s.Len())
}

func TestEraseOrderedPreservesOrder(t *testing.T) {
	s := New(5)
	for _, x := range []int{4, 3, 2, 1, 0} {
		s.Insert(x)
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, append([]int{}, s.Members()...))

	s.EraseOrdered(2)
	assert.Equal(t, []int{4, 3, 1, 0}, append([]int{}, s.Members()...))
	assertInvariant(t, s)
}

func TestReserveGrowsAndPreservesMembership(t *testing.T) {
	s := New(2)
	s.Insert(0)
	s.Insert(1)
	assert.Equal(t, 2, s.Len())

	s.Reserve(6)
	assert.Equal(t, 6, s.Capacity())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assertInvariant(t, s)

	// Shrinking is a no-op: capacity may only grow.
	s.Reserve(3)
	assert.Equal(t, 6, s.Capacity())
}

func TestClearPreservesCapacity(t *testing.T) {
	s := New(4)
	s.Insert(0)
	s.Insert(2)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Capacity())
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(2))

	s.Insert(1)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(1))
	assertInvariant(t, s)
}

func TestCheckRangePanics(t *testing.T) {
	s := New(2)
	assert.Panics(t, func() { s.Contains(-1) })
	assert.Panics(t, func() { s.Contains(2) })
}
