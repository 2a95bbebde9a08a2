package sortedvec

import (
	"slices"

	"github.com/forestrie/go-sortedvec/tri"
)

// position is the result of locating a value.
type position struct {
	// phys is the physical offset of the value if found, otherwise the
	// offset it would be inserted at. Equal to len(data) when a new subarray
	// is implied.
	phys int
	// sub is the subarray that owns phys.
	sub int
	// rank is the logical rank of the value, or the rank it would have.
	rank  int
	found bool
}

// locate finds v, or where v belongs, in O(log n).
//
// The binary search over mins picks two candidate subarrays: the one whose
// minimum is the first above v, and its predecessor. Comparing v against the
// predecessor's maximum decides between them, so a value is only ever
// inserted into a subarray whose current range covers it.
func (s *SortedVec[T]) locate(v T) position {
	if s.cmp == nil {
		panic(ErrNilComparator)
	}
	return s.locateFunc(v, s.cmp)
}

// locateFunc is locate using compare in place of the set's own comparator.
// compare must order values the same way.
func (s *SortedVec[T]) locateFunc(v T, compare func(a, b T) int) position {
	n := len(s.data)
	if n == 0 {
		return position{}
	}
	k := len(s.pivots)

	idx, found := slices.BinarySearchFunc(s.mins, v, compare)
	if found {
		start := tri.Start(idx)
		return position{phys: start + s.pivots[idx], sub: idx, rank: start, found: true}
	}

	sub := idx
	switch {
	case idx == 0:
	case idx == k && !tri.Full(n):
		// Past the last minimum, but the last subarray still has room.
		sub = k - 1
	default:
		// The predecessor is full so its length is nominal.
		prev := idx - 1
		prevMax := tri.Start(prev) + maxOffset(s.pivots[prev], tri.Len(prev))
		if compare(v, s.data[prevMax]) <= 0 {
			sub = prev
		}
	}

	start := tri.Start(sub)
	if start == n {
		return position{phys: n, sub: sub, rank: n}
	}
	end := min(tri.End(sub), n)
	pivot := s.pivots[sub]

	// left holds the larger values, right the smaller.
	left := s.data[start : start+pivot]
	right := s.data[start+pivot : end]

	li, found := slices.BinarySearchFunc(left, v, compare)
	if found {
		return position{phys: start + li, sub: sub, rank: start + len(right) + li, found: true}
	}
	ri, found := slices.BinarySearchFunc(right, v, compare)
	if found {
		return position{phys: start + pivot + ri, sub: sub, rank: start + ri, found: true}
	}
	if ri == len(right) && len(left) > 0 {
		return position{phys: start + li, sub: sub, rank: start + len(right) + li}
	}
	return position{phys: start + pivot + ri, sub: sub, rank: start + ri}
}
