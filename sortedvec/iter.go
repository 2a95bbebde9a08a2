package sortedvec

import (
	"fmt"
	"iter"

	"github.com/forestrie/go-sortedvec/tri"
)

// Iter is a bidirectional cursor over a span of logical ranks [front, back).
// Next consumes from the front and NextBack from the back; once the two meet
// the iterator is exhausted and stays that way.
//
// An Iter borrows its set. The set must not be modified while the Iter is in
// use.
type Iter[T any] struct {
	s     *SortedVec[T]
	front int
	back  int
}

// Iter returns a cursor over every value in ascending order.
func (s *SortedVec[T]) Iter() *Iter[T] {
	return s.span(0, len(s.data))
}

func (s *SortedVec[T]) span(front, back int) *Iter[T] {
	return &Iter[T]{s: s, front: front, back: back}
}

// Range returns a cursor over the values between lo and hi. It returns
// ErrInvertedRange if lo is above hi, or if they are equal and both excluded.
func (s *SortedVec[T]) Range(lo, hi Bound[T]) (*Iter[T], error) {
	if lo.Kind != BoundUnbounded && hi.Kind != BoundUnbounded {
		c := s.cmp(lo.Value, hi.Value)
		if c > 0 || (c == 0 && lo.Kind == BoundExcluded && hi.Kind == BoundExcluded) {
			return nil, fmt.Errorf("%w: %v %v, %v %v",
				ErrInvertedRange, lo.Kind, lo.Value, hi.Kind, hi.Value)
		}
	}

	front := 0
	if lo.Kind != BoundUnbounded {
		r, found := s.Rank(lo.Value)
		if found && lo.Kind == BoundExcluded {
			r++
		}
		front = r
	}
	back := len(s.data)
	if hi.Kind != BoundUnbounded {
		r, found := s.Rank(hi.Value)
		if found && hi.Kind == BoundIncluded {
			r++
		}
		back = r
	}
	return s.span(front, max(front, back)), nil
}

// Len returns the number of values not yet consumed.
func (it *Iter[T]) Len() int {
	return it.back - it.front
}

// Next returns the smallest unconsumed value and advances past it.
func (it *Iter[T]) Next() (T, bool) {
	v, ok := it.Peek()
	if ok {
		it.front++
	}
	return v, ok
}

// NextBack returns the largest unconsumed value and retreats past it.
func (it *Iter[T]) NextBack() (T, bool) {
	v, ok := it.PeekBack()
	if ok {
		it.back--
	}
	return v, ok
}

// Peek returns the value Next would return without consuming it.
func (it *Iter[T]) Peek() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	return it.s.data[it.s.physical(it.front)], true
}

// PeekBack returns the value NextBack would return without consuming it.
func (it *Iter[T]) PeekBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	return it.s.data[it.s.physical(it.back-1)], true
}

// Nth skips n values from the front and returns the next one. If fewer than
// n+1 values remain the iterator is exhausted. A negative n returns false and
// consumes nothing.
func (it *Iter[T]) Nth(n int) (T, bool) {
	if n < 0 {
		var zero T
		return zero, false
	}
	if n >= it.Len() {
		it.front = it.back
		var zero T
		return zero, false
	}
	it.front += n
	return it.Next()
}

// NthBack is Nth from the back.
func (it *Iter[T]) NthBack(n int) (T, bool) {
	if n < 0 {
		var zero T
		return zero, false
	}
	if n >= it.Len() {
		it.back = it.front
		var zero T
		return zero, false
	}
	it.back -= n
	return it.NextBack()
}

// All consumes the iterator from the front.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a sequence of every value in ascending order.
func (s *SortedVec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, pivot := range s.pivots {
			start := tri.Start(i)
			end := start + s.subLen(i)
			for _, v := range s.data[start+pivot : end] {
				if !yield(v) {
					return
				}
			}
			for _, v := range s.data[start : start+pivot] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward returns a sequence of every value in descending order.
func (s *SortedVec[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.pivots) - 1; i >= 0; i-- {
			start := tri.Start(i)
			end := start + s.subLen(i)
			split := start + s.pivots[i]
			for j := split - 1; j >= start; j-- {
				if !yield(s.data[j]) {
					return
				}
			}
			for j := end - 1; j >= split; j-- {
				if !yield(s.data[j]) {
					return
				}
			}
		}
	}
}
