package sortedvec

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/forestrie/go-sortedvec/tri"
	"golang.org/x/exp/constraints"
)

// SortedVec is an ordered set of unique values backed by a single slice. See
// the package documentation for the layout.
//
// Use New or NewFunc to create one. The zero value has no comparator and
// panics with ErrNilComparator on the first lookup or insert.
type SortedVec[T any] struct {
	cmp func(a, b T) int

	data   []T
	pivots []int
	mins   []T

	opts Options
}

// New returns an empty set ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option) *SortedVec[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty set ordered by compare, which must return a
// negative number when a < b, a positive number when a > b and zero when they
// are equal, and must define a strict weak ordering.
//
// Values that compare equal are the same set member, so compare can order
// records by a key field and Get will return the stored record.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *SortedVec[T] {
	if compare == nil {
		panic(ErrNilComparator)
	}
	o := newOptions(opts...)
	s := &SortedVec[T]{cmp: compare, opts: o}
	if o.Capacity > 0 {
		s.data = make([]T, 0, o.Capacity)
		k := tri.Count(o.Capacity)
		s.pivots = make([]int, 0, k)
		s.mins = make([]T, 0, k)
	}
	return s
}

// Clear removes all values, retaining the allocated storage.
func (s *SortedVec[T]) Clear() {
	clear(s.data)
	clear(s.mins)
	s.data = s.data[:0]
	s.pivots = s.pivots[:0]
	s.mins = s.mins[:0]
}

// Len returns the number of values in the set.
func (s *SortedVec[T]) Len() int {
	return len(s.data)
}

// IsEmpty returns true if the set has no values.
func (s *SortedVec[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Contains returns true if the set holds a value equal to v.
func (s *SortedVec[T]) Contains(v T) bool {
	return s.locate(v).found
}

// Get returns the stored value equal to v.
func (s *SortedVec[T]) Get(v T) (T, bool) {
	pos := s.locate(v)
	if !pos.found {
		var zero T
		return zero, false
	}
	return s.data[pos.phys], true
}

// Min returns the smallest value.
func (s *SortedVec[T]) Min() (T, bool) {
	if len(s.mins) == 0 {
		var zero T
		return zero, false
	}
	return s.mins[0], true
}

// Max returns the largest value.
func (s *SortedVec[T]) Max() (T, bool) {
	return s.Select(len(s.data) - 1)
}

// Clone returns an independent copy of s with the same ordering and options.
func (s *SortedVec[T]) Clone() *SortedVec[T] {
	return &SortedVec[T]{
		cmp:    s.cmp,
		data:   slices.Clone(s.data),
		pivots: slices.Clone(s.pivots),
		mins:   slices.Clone(s.mins),
		opts:   s.opts,
	}
}

// Equal returns true if s and other hold the same values, using the ordering
// of s. The physical layouts need not match.
func (s *SortedVec[T]) Equal(other *SortedVec[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.Iter(), other.Iter()
	for {
		x, ok := a.Next()
		if !ok {
			return true
		}
		y, _ := b.Next()
		if s.cmp(x, y) != 0 {
			return false
		}
	}
}

func (s *SortedVec[T]) String() string {
	return fmt.Sprint(s.Slice())
}

// subLen returns the current length of subarray i, accounting for a partial
// last subarray.
func (s *SortedVec[T]) subLen(i int) int {
	if i == len(s.pivots)-1 {
		return len(s.data) - tri.Start(i)
	}
	return tri.Len(i)
}

func (s *SortedVec[T]) lastFull() bool {
	return len(s.data) == tri.Start(len(s.pivots))
}

// maxOffset returns the offset of the largest value in a rotated run of the
// given length: the slot just before the pivot, wrapping.
func maxOffset(pivot, length int) int {
	if pivot == 0 {
		return length - 1
	}
	return pivot - 1
}

// rotateLeft rotates x left by k in place, so x[k] becomes x[0].
func rotateLeft[T any](x []T, k int) {
	if k == 0 || k == len(x) {
		return
	}
	slices.Reverse(x[:k])
	slices.Reverse(x[k:])
	slices.Reverse(x)
}

func (s *SortedVec[T]) debugf(format string, args ...any) {
	if s.opts.Log == nil {
		return
	}
	s.opts.Log.Debugf(format, args...)
}
