package sortedvec

import (
	"testing"

	"github.com/forestrie/go-sortedvec/sortedvectesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSelectDense(t *testing.T) {
	s := FromSlice(seq(0, 256))

	rank, found := s.Rank(128)
	assert.Equal(t, 128, rank)
	assert.True(t, found)

	v, ok := s.Select(128)
	require.True(t, ok)
	assert.Equal(t, 128, v)
}

func TestRankAbsent(t *testing.T) {
	// Odd values only, built by descending inserts so some subarrays are
	// rotated.
	s := New[int]()
	for v := 41; v > 0; v -= 2 {
		s.Insert(v)
	}

	tests := []struct {
		v        int
		wantRank int
	}{
		{-5, 0},
		{0, 0},
		{2, 1},
		{10, 5},
		{22, 11},
		{40, 20},
		{42, 21},
		{1000, 21},
	}
	for _, tt := range tests {
		rank, found := s.Rank(tt.v)
		assert.False(t, found, "rank(%d)", tt.v)
		assert.Equal(t, tt.wantRank, rank, "rank(%d)", tt.v)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	for _, rank := range []int{-1, 3, 100} {
		_, ok := s.Select(rank)
		assert.False(t, ok, "select(%d)", rank)
	}
}

func TestRankSelectInverse(t *testing.T) {
	tc := sortedvectesting.NewTestContext(t, sortedvectesting.TestConfig{
		Seed: 99, TestLabelPrefix: "TestRankSelectInverse"})

	s := New[int]()
	model := sortedvectesting.NewModel[int]()
	for _, op := range tc.Ops(1500, 400) {
		if op.Insert {
			s.Insert(op.Value)
			model.Insert(op.Value)
		} else {
			s.Remove(op.Value)
			model.Remove(op.Value)
		}
	}
	requireInvariants(t, s)

	for i := 0; i < s.Len(); i++ {
		v, ok := s.Select(i)
		require.True(t, ok)
		rank, found := s.Rank(v)
		require.True(t, found)
		require.Equal(t, i, rank)
	}
	for v := -1; v <= 401; v++ {
		wantRank, wantFound := model.Rank(v)
		rank, found := s.Rank(v)
		require.Equal(t, wantFound, found, "rank(%d)", v)
		require.Equal(t, wantRank, rank, "rank(%d)", v)
		if found {
			got, _ := s.Select(rank)
			require.Equal(t, v, got)
		}
	}
}
