package sortedvec

import (
	"slices"

	"github.com/forestrie/go-sortedvec/tri"
)

// Remove deletes the value equal to v in O(√n). It returns false, leaving the
// set untouched, if there is no such value.
func (s *SortedVec[T]) Remove(v T) bool {
	pos := s.locate(v)
	if !pos.found {
		return false
	}
	s.removeAt(pos)
	return true
}

// Take removes and returns the stored value equal to v.
func (s *SortedVec[T]) Take(v T) (T, bool) {
	pos := s.locate(v)
	if !pos.found {
		var zero T
		return zero, false
	}
	taken := s.data[pos.phys]
	s.removeAt(pos)
	return taken, true
}

func (s *SortedVec[T]) removeAt(pos position) {
	last := len(s.pivots) - 1
	ls := tri.Start(last)
	r := pos.phys

	// The last subarray donates its minimum to the exchange below and loses a
	// slot, both of which need it unrotated. Only a full subarray can be
	// rotated.
	if p := s.pivots[last]; p != 0 {
		length := len(s.data) - ls
		rotateLeft(s.data[ls:], p)
		s.pivots[last] = 0
		if pos.sub == last {
			r = ls + (r-ls-p+length)%length
		}
		s.debugf("sortedvec.Remove: normalized subarray %d (pivot was %d)", last, p)
	}

	del := r
	if pos.sub != last {
		s.exchange(pos.sub, r, last)
		del = ls
	}
	s.data = slices.Delete(s.data, del, del+1)

	if len(s.data) == ls {
		s.pivots = s.pivots[:last]
		s.mins = slices.Delete(s.mins, last, last+1)
		s.debugf("sortedvec.Remove: closed subarray %d at n=%d", last, len(s.data))
		return
	}
	s.mins[last] = s.data[ls]
}

// exchange removes the value at physical offset r from the full subarray sub
// and closes the gap by pulling one value forward out of each following
// subarray. The minimum of the last subarray fills the final hole; deleting
// its original slot is left to the caller.
func (s *SortedVec[T]) exchange(sub, r, last int) {
	start := tri.Start(sub)
	length := tri.Len(sub)
	sa := s.data[start : start+length]
	pivot := s.pivots[sub]
	o := r - start

	// After the shift, hole is the offset of the free slot, which is always
	// the slot just before the pivot.
	var hole int
	if pivot > 0 && o >= pivot {
		copy(sa[pivot+1:o+1], sa[pivot:o])
		hole = pivot
		s.pivots[sub] = (pivot + 1) % length
	} else {
		m := maxOffset(pivot, length)
		copy(sa[o:m], sa[o+1:m+1])
		hole = m
	}

	prev, prevStart := sub, start
	for j := sub + 1; j < last; j++ {
		js := tri.Start(j)
		p := s.pivots[j]
		s.data[prevStart+hole] = s.data[js+p]
		s.mins[prev] = s.data[prevStart+s.pivots[prev]]

		hole = p
		s.pivots[j] = (p + 1) % tri.Len(j)
		prev, prevStart = j, js
	}
	s.data[prevStart+hole] = s.data[tri.Start(last)]
	s.mins[prev] = s.data[prevStart+s.pivots[prev]]
}
