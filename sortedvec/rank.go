package sortedvec

import "github.com/forestrie/go-sortedvec/tri"

// Rank returns the 0-based position of v in ascending order and true if v is
// present. Otherwise it returns the position v would take if inserted, and
// false.
func (s *SortedVec[T]) Rank(v T) (int, bool) {
	pos := s.locate(v)
	return pos.rank, pos.found
}

// Select returns the value with the given rank in O(1).
func (s *SortedVec[T]) Select(rank int) (T, bool) {
	if rank < 0 || rank >= len(s.data) {
		var zero T
		return zero, false
	}
	return s.data[s.physical(rank)], true
}

// physical translates a logical rank, which must be in range, to a physical
// offset. Ranks [T(i), T(i+1)) all live in subarray i, so only the rotation
// needs undoing.
func (s *SortedVec[T]) physical(rank int) int {
	i := tri.Index(rank)
	start := tri.Start(i)
	return start + (s.pivots[i]+rank-start)%s.subLen(i)
}
