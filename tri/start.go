package tri

// Start returns the offset of the first slot of window i, which is the i'th
// triangular number.
//
//	Start(0) = 0, Start(1) = 1, Start(2) = 3, Start(3) = 6
func Start(i int) int {
	return i * (i + 1) / 2
}

// Len returns the nominal length of window i. Only the final window of a
// store may hold fewer.
func Len(i int) int {
	return i + 1
}

// End returns the offset one past the last slot of window i. It is also the
// start of window i+1.
func End(i int) int {
	return Start(i + 1)
}
