package sortedvectesting

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const modelDegree = 8

func less[T constraints.Ordered](a, b T) bool { return a < b }

// Model is a reference ordered set that randomized tests check a SortedVec
// against.
type Model[T constraints.Ordered] struct {
	tree *btree.BTreeG[T]
}

func NewModel[T constraints.Ordered](values ...T) *Model[T] {
	m := &Model[T]{tree: btree.NewG(modelDegree, less[T])}
	for _, v := range values {
		m.tree.ReplaceOrInsert(v)
	}
	return m
}

// Insert returns true if v was not already present.
func (m *Model[T]) Insert(v T) bool {
	_, found := m.tree.ReplaceOrInsert(v)
	return !found
}

// Remove returns true if v was present.
func (m *Model[T]) Remove(v T) bool {
	_, found := m.tree.Delete(v)
	return found
}

func (m *Model[T]) Contains(v T) bool {
	return m.tree.Has(v)
}

func (m *Model[T]) Len() int {
	return m.tree.Len()
}

// Rank returns the number of values below v and whether v is present.
func (m *Model[T]) Rank(v T) (int, bool) {
	rank := 0
	m.tree.AscendLessThan(v, func(T) bool {
		rank++
		return true
	})
	return rank, m.tree.Has(v)
}

// Slice returns the values in ascending order.
func (m *Model[T]) Slice() []T {
	values := make([]T, 0, m.tree.Len())
	m.tree.Ascend(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Between returns the values in [lo, hi) in ascending order.
func (m *Model[T]) Between(lo, hi T) []T {
	var values []T
	m.tree.AscendRange(lo, hi, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Difference returns the values of m not in other.
func (m *Model[T]) Difference(other *Model[T]) []T {
	var values []T
	m.tree.Ascend(func(v T) bool {
		if !other.tree.Has(v) {
			values = append(values, v)
		}
		return true
	})
	return values
}

// Intersection returns the values in both m and other.
func (m *Model[T]) Intersection(other *Model[T]) []T {
	var values []T
	m.tree.Ascend(func(v T) bool {
		if other.tree.Has(v) {
			values = append(values, v)
		}
		return true
	})
	return values
}

// Union returns the values in either m or other.
func (m *Model[T]) Union(other *Model[T]) []T {
	u := m.tree.Clone()
	other.tree.Ascend(func(v T) bool {
		u.ReplaceOrInsert(v)
		return true
	})
	values := make([]T, 0, u.Len())
	u.Ascend(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// SymmetricDifference returns the values in exactly one of m and other.
func (m *Model[T]) SymmetricDifference(other *Model[T]) []T {
	u := btree.NewG(modelDegree, less[T])
	m.tree.Ascend(func(v T) bool {
		if !other.tree.Has(v) {
			u.ReplaceOrInsert(v)
		}
		return true
	})
	other.tree.Ascend(func(v T) bool {
		if !m.tree.Has(v) {
			u.ReplaceOrInsert(v)
		}
		return true
	})
	values := make([]T, 0, u.Len())
	u.Ascend(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}
