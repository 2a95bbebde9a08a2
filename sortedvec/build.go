package sortedvec

import (
	"cmp"
	"iter"
	"slices"

	"github.com/forestrie/go-sortedvec/tri"
	"golang.org/x/exp/constraints"
)

// FromSlice returns a set holding the distinct values of values, which may be
// in any order. The input is copied, never aliased. O(n log n).
func FromSlice[T constraints.Ordered](values []T, opts ...Option) *SortedVec[T] {
	return FromSliceFunc(values, cmp.Compare[T], opts...)
}

// FromSliceFunc is FromSlice for a set ordered by compare.
func FromSliceFunc[T any](values []T, compare func(a, b T) int, opts ...Option) *SortedVec[T] {
	s := NewFunc(compare, opts...)
	s.data = append(s.data, values...)
	s.build()
	return s
}

// Collect returns a set holding the distinct values yielded by seq.
func Collect[T constraints.Ordered](seq iter.Seq[T], opts ...Option) *SortedVec[T] {
	s := New[T](opts...)
	for v := range seq {
		s.data = append(s.data, v)
	}
	s.build()
	return s
}

// IntoSlice returns the values in ascending order, reusing the set's storage.
// Every subarray is unrotated in place, O(n), and ownership of the storage
// passes to the caller: the set is left empty and allocation free.
func (s *SortedVec[T]) IntoSlice() []T {
	for i, pivot := range s.pivots {
		start := tri.Start(i)
		rotateLeft(s.data[start:start+s.subLen(i)], pivot)
	}
	out := s.data
	s.data, s.pivots, s.mins = nil, nil, nil
	return out
}

// Slice returns a new slice of the values in ascending order. The set is
// unchanged.
func (s *SortedVec[T]) Slice() []T {
	out := make([]T, 0, len(s.data))
	for i, pivot := range s.pivots {
		start := tri.Start(i)
		end := start + s.subLen(i)
		out = append(out, s.data[start+pivot:end]...)
		out = append(out, s.data[start:start+pivot]...)
	}
	return out
}

// build sorts and dedupes data, which holds arbitrary values, then indexes it.
func (s *SortedVec[T]) build() {
	slices.SortFunc(s.data, s.cmp)
	s.data = slices.CompactFunc(s.data, func(a, b T) bool {
		return s.cmp(a, b) == 0
	})
	s.reindex()
	s.debugf("sortedvec.build: n=%d subarrays=%d", len(s.data), len(s.pivots))
}

// reindex rebuilds pivots and mins for data, which must be strictly ascending.
// Every subarray starts out unrotated.
func (s *SortedVec[T]) reindex() {
	k := tri.Count(len(s.data))
	s.pivots = slices.Grow(s.pivots[:0], k)[:k]
	clear(s.pivots)
	clear(s.mins)
	s.mins = s.mins[:0]
	for i := 0; i < k; i++ {
		s.mins = append(s.mins, s.data[tri.Start(i)])
	}
}

// derive returns a set with the ordering and options of s over sorted, which
// must be strictly ascending and is taken over, not copied.
func (s *SortedVec[T]) derive(sorted []T) *SortedVec[T] {
	d := &SortedVec[T]{cmp: s.cmp, data: sorted, opts: s.opts}
	d.reindex()
	return d
}
