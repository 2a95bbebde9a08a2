// Package tri provides the partition arithmetic for triangular layouts: a
// contiguous store split into consecutive windows of length 1, 2, 3, ...
//
// Window i starts at the triangular number T(i) = i(i+1)/2 and has nominal
// length i+1:
//
//	window   0   1       2           3
//	offset | 0 | 1  2 | 3  4  5 | 6  7  8  9 | 10 ...
//
// Everything here is a small, pure, O(1) function over offsets. Nothing is
// allocated and nothing is validated beyond what the arithmetic needs. Callers
// pass non negative offsets.
package tri
