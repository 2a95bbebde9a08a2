package sortedvec

import "iter"

type setOp uint8

const (
	opDifference setOp = iota
	opIntersection
	opUnion
	opSymmetricDifference
)

// cursor is a lazily primed, peekable view of an Iter.
type cursor[T any] struct {
	it     *Iter[T]
	head   T
	ok     bool
	primed bool
}

func (c *cursor[T]) peek() (T, bool) {
	if !c.primed {
		c.head, c.ok = c.it.Next()
		c.primed = true
	}
	return c.head, c.ok
}

func (c *cursor[T]) pop() (T, bool) {
	v, ok := c.peek()
	c.primed = false
	return v, ok
}

// SetIter lazily yields the result of a set operation over two sets in
// ascending order, without duplicates. It is single pass: once Next returns
// false it always will.
//
// Both sets must order values the same way. Every comparison, including
// lookups into the other set, uses the receiver's comparator. Both sets are
// borrowed and must not be modified while the SetIter is in use.
type SetIter[T any] struct {
	op  setOp
	cmp func(a, b T) int
	a   cursor[T]
	b   cursor[T]

	// When probe is set, a is walked alone and each of its values is looked
	// up in probe. fromProbe yields the value stored in probe rather than the
	// one from a.
	probe     *SortedVec[T]
	fromProbe bool

	done bool
}

// Difference yields the values in s that are not in other.
func (s *SortedVec[T]) Difference(other *SortedVec[T]) *SetIter[T] {
	return s.setIter(opDifference, s, other)
}

// Intersection yields the values in both s and other. Values come from s.
func (s *SortedVec[T]) Intersection(other *SortedVec[T]) *SetIter[T] {
	return s.setIter(opIntersection, s, other)
}

// Union yields the values in s or other. Values present in both come from s.
func (s *SortedVec[T]) Union(other *SortedVec[T]) *SetIter[T] {
	return s.setIter(opUnion, s, other)
}

// SymmetricDifference yields the values in exactly one of s and other.
func (s *SortedVec[T]) SymmetricDifference(other *SortedVec[T]) *SetIter[T] {
	return s.setIter(opSymmetricDifference, s, other)
}

// IsDisjoint returns true if s and other have no values in common.
func (s *SortedVec[T]) IsDisjoint(other *SortedVec[T]) bool {
	_, ok := s.setIter(opIntersection, s, other).Next()
	return !ok
}

// IsSubset returns true if every value in s is also in other.
func (s *SortedVec[T]) IsSubset(other *SortedVec[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	_, ok := s.setIter(opDifference, s, other).Next()
	return !ok
}

// IsSuperset returns true if every value in other is also in s.
func (s *SortedVec[T]) IsSuperset(other *SortedVec[T]) bool {
	if other.Len() > s.Len() {
		return false
	}
	_, ok := s.setIter(opDifference, other, s).Next()
	return !ok
}

// setIter builds the iterator for op over a and b, ordered by the comparator
// of s. Difference and intersection probe the larger side when the sizes are
// lopsided enough, per ProbeRatio.
func (s *SortedVec[T]) setIter(op setOp, a, b *SortedVec[T]) *SetIter[T] {
	si := &SetIter[T]{
		op:  op,
		cmp: s.cmp,
		a:   cursor[T]{it: a.Iter()},
		b:   cursor[T]{it: b.Iter()},
	}
	ratio := s.opts.ProbeRatio
	if ratio <= 0 {
		return si
	}
	lopsided := func(small, large int) bool {
		return small*ratio <= large
	}

	switch op {
	case opDifference:
		if lopsided(a.Len(), b.Len()) {
			si.probe = b
		}
	case opIntersection:
		switch {
		case lopsided(a.Len(), b.Len()):
			si.probe = b
		case lopsided(b.Len(), a.Len()):
			si.a, si.b = si.b, si.a
			si.probe = a
			si.fromProbe = true
		}
	}
	if si.probe != nil {
		s.debugf("sortedvec.setIter: op=%d probing %d values against %d",
			op, si.a.it.Len(), si.probe.Len())
	}
	return si
}

// Next returns the next value of the result.
func (si *SetIter[T]) Next() (T, bool) {
	var zero T
	if si.done {
		return zero, false
	}

	var v T
	var ok bool
	if si.probe != nil {
		v, ok = si.nextProbe()
	} else {
		v, ok = si.nextMerge()
	}
	if !ok {
		si.done = true
		return zero, false
	}
	return v, true
}

func (si *SetIter[T]) nextProbe() (T, bool) {
	for {
		x, ok := si.a.pop()
		if !ok {
			return x, false
		}
		pos := si.probe.locateFunc(x, si.cmp)
		found := pos.found
		switch {
		case si.op == opDifference && !found:
			return x, true
		case si.op == opIntersection && found && si.fromProbe:
			return si.probe.data[pos.phys], true
		case si.op == opIntersection && found:
			return x, true
		}
	}
}

func (si *SetIter[T]) nextMerge() (T, bool) {
	for {
		x, okA := si.a.peek()
		y, okB := si.b.peek()

		if !okA {
			switch si.op {
			case opUnion, opSymmetricDifference:
				return si.b.pop()
			}
			return x, false
		}
		if !okB {
			switch si.op {
			case opDifference, opUnion, opSymmetricDifference:
				return si.a.pop()
			}
			return y, false
		}

		c := si.cmp(x, y)
		switch {
		case c < 0:
			si.a.pop()
			if si.op != opIntersection {
				return x, true
			}
		case c > 0:
			si.b.pop()
			if si.op == opUnion || si.op == opSymmetricDifference {
				return y, true
			}
		default:
			si.a.pop()
			si.b.pop()
			if si.op == opIntersection || si.op == opUnion {
				return x, true
			}
		}
	}
}

// All consumes the iterator.
func (si *SetIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := si.Next(); ok; v, ok = si.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect consumes the iterator and returns the remaining values.
func (si *SetIter[T]) Collect() []T {
	return si.appendTo(nil)
}

func (si *SetIter[T]) appendTo(dst []T) []T {
	for v, ok := si.Next(); ok; v, ok = si.Next() {
		dst = append(dst, v)
	}
	return dst
}
