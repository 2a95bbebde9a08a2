package sortedvec

import (
	"github.com/forestrie/go-sortedvec/tri"
)

// Truncate keeps the n smallest values and drops the rest, in O(√n). If n is
// zero or less the set is cleared; if n is at least Len nothing happens.
func (s *SortedVec[T]) Truncate(n int) {
	if n >= len(s.data) {
		return
	}
	if n <= 0 {
		s.Clear()
		return
	}

	// Subarrays before q are kept whole. The kept prefix of q is its
	// smallest values, which are contiguous once q is unrotated.
	q := tri.Index(n - 1)
	start := tri.Start(q)
	rotateLeft(s.data[start:start+s.subLen(q)], s.pivots[q])

	clear(s.data[n:])
	s.data = s.data[:n]
	s.pivots = s.pivots[:q+1]
	s.pivots[q] = 0
	clear(s.mins[q+1:])
	s.mins = s.mins[:q+1]
	s.mins[q] = s.data[start]
	s.debugf("sortedvec.Truncate: n=%d subarrays=%d", n, q+1)
}

// SplitOff moves every value >= v into a new set, which is returned, leaving
// the values < v in s. O(n).
func (s *SortedVec[T]) SplitOff(v T) *SortedVec[T] {
	at, _ := s.Rank(v)
	tail := make([]T, 0, len(s.data)-at)
	it := s.span(at, len(s.data))
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		tail = append(tail, x)
	}
	s.Truncate(at)

	other := s.derive(tail)
	s.debugf("sortedvec.SplitOff: kept=%d moved=%d", s.Len(), other.Len())
	return other
}

// Append moves every value of other into s, leaving other empty. Values
// present in both are kept once. O(n).
func (s *SortedVec[T]) Append(other *SortedVec[T]) {
	if other == nil || other == s || other.IsEmpty() {
		return
	}
	merged := make([]T, 0, s.Len()+other.Len())
	merged = s.Union(other).appendTo(merged)
	other.Clear()

	s.data = merged
	s.reindex()
	s.debugf("sortedvec.Append: n=%d", s.Len())
}
