package sortedvec

import (
	"slices"

	"github.com/forestrie/go-sortedvec/tri"
)

// Insert adds v to the set in O(√n). It returns false, leaving the set
// untouched, if an equal value is already present.
func (s *SortedVec[T]) Insert(v T) bool {
	pos := s.locate(v)
	if pos.found {
		return false
	}

	sub := pos.sub
	if sub == len(s.pivots) {
		s.pivots = append(s.pivots, 0)
		s.mins = append(s.mins, v)
		s.debugf("sortedvec.Insert: opened subarray %d at n=%d", sub, len(s.data))
	}
	last := len(s.pivots) - 1
	full := s.lastFull()
	start := tri.Start(sub)

	// A partial last subarray is never rotated, so a plain ordered insert
	// keeps it sorted.
	if sub == last && !full {
		s.data = slices.Insert(s.data, pos.phys, v)
		s.mins[sub] = s.data[start]
		return true
	}

	// From here the target subarray is full. Make room for v by evicting
	// its maximum.
	//
	// 	 pivot = 5, max = 4
	// 	+----+----+----+----+----+---+---+---+---+---+---+
	// 	| 12 | 13 | 14 | 15 | 16 | 6 | 7 | 8 | 9 | 10| 11|
	// 	+----+----+----+----+----+---+---+---+---+---+---+
	//
	// A value between 8 and 9 shifts [6 7 8] left over the max and the pivot
	// moves back one. A value between 13 and 14 shifts [14 15] right over the
	// max instead.
	length := tri.Len(sub)
	sa := s.data[start : start+length]
	pivot := s.pivots[sub]
	o := pos.phys - start
	m := maxOffset(pivot, length)
	carry := sa[m]
	if pivot > 0 && o >= pivot {
		copy(sa[m:o-1], sa[pivot:o])
		sa[o-1] = v
		s.pivots[sub] = m
		s.mins[sub] = sa[m]
	} else {
		copy(sa[o+1:m+1], sa[o:m])
		sa[o] = v
		if o == pivot {
			s.mins[sub] = v
		}
	}

	// Each following full subarray takes the carried value as its new minimum
	// in place of its maximum, which is carried on.
	for j := sub + 1; j <= last; j++ {
		if j == last && !full {
			break
		}
		js := tri.Start(j)
		jm := js + maxOffset(s.pivots[j], tri.Len(j))
		carry, s.data[jm] = s.data[jm], carry
		s.pivots[j] = jm - js
		s.mins[j] = s.data[jm]
	}

	if full {
		s.data = append(s.data, carry)
		s.pivots = append(s.pivots, 0)
		s.mins = append(s.mins, carry)
		s.debugf("sortedvec.Insert: opened subarray %d at n=%d", last+1, len(s.data)-1)
		return true
	}

	// carry is below everything in the partial last subarray.
	ls := tri.Start(last)
	s.data = slices.Insert(s.data, ls, carry)
	s.mins[last] = carry
	return true
}
