package tri

import "math"

// Index returns the window containing offset. That is, the largest i such that
// Start(i) <= offset.
//
// Solving offset = i(i+1)/2 for i gives
//
//	i = (sqrt(8*offset + 1) - 1) / 2
//
// The floating point root is only an estimate. For large offsets the rounding
// can land one either side of the true window, so the result is always
// corrected with integer arithmetic before it is returned.
func Index(offset int) int {
	if offset <= 0 {
		return 0
	}
	i := int((math.Sqrt(8*float64(offset)+1) - 1) / 2)
	for i > 0 && Start(i) > offset {
		i--
	}
	for Start(i+1) <= offset {
		i++
	}
	return i
}

// Count returns the number of windows needed to hold n slots. The last window
// may be partially filled.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return Index(n-1) + 1
}

// Full returns true if n slots exactly fill Count(n) windows, so the next slot
// would open a new window.
func Full(n int) bool {
	return Start(Count(n)) == n
}
