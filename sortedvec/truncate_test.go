package sortedvec

import (
	"testing"

	"github.com/forestrie/go-sortedvec/sortedvectesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"negative clears", -1, nil},
		{"zero clears", 0, nil},
		{"one", 1, []int{0}},
		{"subarray boundary", 6, seq(0, 6)},
		{"inside rotated subarray", 13, seq(0, 13)},
		{"all but one", 39, seq(0, 39)},
		{"no change", 40, seq(0, 40)},
		{"beyond length", 100, seq(0, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rotatedSet(40)
			s.Truncate(tt.n)
			requireInvariants(t, s)
			requireValues(t, tt.want, s.Slice())

			// Still usable afterwards.
			require.True(t, s.Insert(1000))
			requireInvariants(t, s)
		})
	}
}

func TestSplitOff(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 17, 41})
	other := s.SplitOff(3)
	requireValues(t, []int{1, 2}, s.Slice())
	requireValues(t, []int{3, 17, 41}, other.Slice())
	requireInvariants(t, s)
	requireInvariants(t, other)
}

func TestSplitOffBounds(t *testing.T) {
	tests := []struct {
		name      string
		at        int
		wantKept  []int
		wantMoved []int
	}{
		{"below all", -5, nil, seqStep(0, 60, 2)},
		{"first", 0, nil, seqStep(0, 60, 2)},
		{"absent middle", 15, seqStep(0, 15, 2), seqStep(16, 60, 2)},
		{"present middle", 30, seqStep(0, 30, 2), seqStep(30, 60, 2)},
		{"last", 58, seqStep(0, 58, 2), []int{58}},
		{"above all", 59, seqStep(0, 60, 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int]()
			for v := 58; v >= 0; v -= 2 {
				s.Insert(v)
			}
			other := s.SplitOff(tt.at)
			requireInvariants(t, s)
			requireInvariants(t, other)
			requireValues(t, tt.wantKept, s.Slice())
			requireValues(t, tt.wantMoved, other.Slice())
		})
	}
}

func TestSplitOffKeepsOptions(t *testing.T) {
	s := FromSlice(seq(0, 10), WithProbeRatio(3))
	other := s.SplitOff(5)
	assert.Equal(t, 3, other.opts.ProbeRatio)
}

func TestAppend(t *testing.T) {
	a := rotatedSet(20)
	b := FromSlice(seq(10, 35))
	a.Append(b)
	requireInvariants(t, a)
	requireValues(t, seq(0, 35), a.Slice())
	assert.True(t, b.IsEmpty())
	requireInvariants(t, b)
}

func TestAppendEdgeCases(t *testing.T) {
	s := FromSlice(seq(0, 5))
	s.Append(nil)
	s.Append(s)
	s.Append(New[int]())
	requireValues(t, seq(0, 5), s.Slice())

	empty := New[int]()
	empty.Append(s)
	requireValues(t, seq(0, 5), empty.Slice())
	assert.True(t, s.IsEmpty())
	requireInvariants(t, empty)
}

func TestSplitOffAppendRoundTrip(t *testing.T) {
	tc := sortedvectesting.NewTestContext(t, sortedvectesting.TestConfig{
		Seed: 5, TestLabelPrefix: "TestSplitOffAppendRoundTrip"})

	s := New[int]()
	for _, v := range tc.Ints(500, 2000) {
		s.Insert(v)
	}
	want := s.Slice()

	for _, at := range tc.Ints(20, 2000) {
		tail := s.SplitOff(at)
		requireInvariants(t, s)
		requireInvariants(t, tail)
		s.Append(tail)
		requireInvariants(t, s)
		requireValues(t, want, s.Slice())
	}
}
