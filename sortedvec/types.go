package sortedvec

import "errors"

// DefaultProbeRatio is the size ratio at which Difference and Intersection
// stop merging both sides and instead walk the smaller side, probing the
// larger with point lookups.
const DefaultProbeRatio = 16

var (
	ErrInvertedRange = errors.New("sortedvec: range lower bound above upper bound")
	ErrNilComparator = errors.New("sortedvec: comparator must not be nil")
)
