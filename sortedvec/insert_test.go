package sortedvec

import (
	"testing"

	"github.com/forestrie/go-sortedvec/sortedvectesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLayout(t *testing.T) {
	tests := []struct {
		name       string
		inserts    []int
		wantData   []int
		wantPivots []int
		wantMins   []int
	}{
		{
			name:       "ascending appends",
			inserts:    []int{1, 2, 3, 4},
			wantData:   []int{1, 2, 3, 4},
			wantPivots: []int{0, 0, 0},
			wantMins:   []int{1, 2, 4},
		},
		{
			// The carry out of subarray 0 lands on the max slot of
			// subarray 1, which becomes its pivot.
			name:       "descending rotates",
			inserts:    []int{6, 5, 4, 3},
			wantData:   []int{3, 5, 4, 6},
			wantPivots: []int{0, 1, 0},
			wantMins:   []int{3, 4, 6},
		},
		{
			name:       "ten descending",
			inserts:    []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
			wantData:   []int{0, 2, 1, 4, 5, 3, 6, 7, 8, 9},
			wantPivots: []int{0, 1, 2, 0},
			wantMins:   []int{0, 1, 3, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int]()
			for _, v := range tt.inserts {
				require.True(t, s.Insert(v))
				requireInvariants(t, s)
			}
			assert.Equal(t, tt.wantData, s.data)
			assert.Equal(t, tt.wantPivots, s.pivots)
			assert.Equal(t, tt.wantMins, s.mins)
		})
	}
}

func TestInsertIntoRotatedSubarray(t *testing.T) {
	// Descending inserts leave subarrays 3 and 4 rotated. The inserts below
	// land in both halves of them.
	s := New[int]()
	for v := 100; v >= 0; v -= 5 {
		s.Insert(v)
	}
	requireInvariants(t, s)
	require.Equal(t, []int{0, 0, 0, 1, 4, 0}, s.pivots)

	for _, v := range []int{1, 51, 99, 33, 67, 12} {
		require.True(t, s.Insert(v))
		requireInvariants(t, s)
	}
	for _, v := range []int{1, 51, 99, 33, 67, 12, 0, 50, 100} {
		assert.True(t, s.Contains(v), "missing %d", v)
	}
}

func TestInsertMatchesModel(t *testing.T) {
	tc := sortedvectesting.NewTestContext(t, sortedvectesting.TestConfig{
		Seed: 1729, TestLabelPrefix: "TestInsertMatchesModel"})

	s := New[int](WithLogger(tc.GetLog()))
	model := sortedvectesting.NewModel[int]()
	for _, v := range tc.Ints(2000, 1500) {
		require.Equal(t, model.Insert(v), s.Insert(v), "insert %d", v)
	}
	requireInvariants(t, s)
	requireValues(t, model.Slice(), s.Slice())
}

func TestInsertRemoveDuality(t *testing.T) {
	tc := sortedvectesting.NewTestContext(t, sortedvectesting.TestConfig{
		Seed: 7, TestLabelPrefix: "TestInsertRemoveDuality"})

	s := FromSlice(tc.Ints(300, 1000))
	for _, v := range tc.DistinctInts(200, 2000) {
		before := s.Slice()
		if s.Insert(v) {
			require.True(t, s.Remove(v))
		} else {
			taken, ok := s.Take(v)
			require.True(t, ok)
			require.Equal(t, v, taken)
			require.True(t, s.Insert(v))
		}
		requireInvariants(t, s)
		requireValues(t, before, s.Slice())
	}
}

func TestInsertPresentIsIdempotent(t *testing.T) {
	s := New[int]()
	for v := 20; v > 0; v-- {
		s.Insert(v * 3)
	}
	data, pivots, mins := s.Slice(), append([]int(nil), s.pivots...), append([]int(nil), s.mins...)

	for v := 3; v <= 60; v += 3 {
		assert.False(t, s.Insert(v))
	}
	assert.Equal(t, data, s.Slice())
	assert.Equal(t, pivots, s.pivots)
	assert.Equal(t, mins, s.mins)
}
