package sortedvec

/*

# SortedVec: an ordered set in one rotated, triangular array

This package provides an ordered set that keeps every element in a single
contiguous slice. There are no tree nodes and no per element allocation; all
navigation is index arithmetic, in the same spirit as the `tri` package it
builds on.

	operation              cost
	---------------------  ------------------
	Insert, Remove         O(√n)
	Contains, Get, Rank    O(log n)
	Select, Min, Max       O(1)
	ordered iteration      O(1) amortized per element
	FromSlice              O(n log n)
	IntoSlice, SplitOff    O(n)

## Layout

The backing slice is cut into consecutive subarrays of length 1, 2, 3, ... so
subarray i lives at [T(i), T(i+1)) where T(i) = i(i+1)/2. Only the final
subarray may be partially filled.

Every subarray is a sorted run that has been rotated left by its pivot. The
pivot is the offset of the subarray's minimum; reading from the pivot and
wrapping around visits the subarray in ascending order:

	pivot = 5
	+----+----+----+----+----+---+---+---+---+---+---+
	| 12 | 13 | 14 | 15 | 16 | 6 | 7 | 8 | 9 | 10| 11|
	+----+----+----+----+----+---+---+---+---+---+---+
	  \_____ larger half ___/  \____ smaller half ____/

The subarrays partition the global order: every value in subarray i is less
than every value in subarray i+1. So the logical rank of a value determines
its subarray directly (tri.Index), and its slot follows from the pivot. That
is why Select is O(1).

Two auxiliary slices, with one entry per subarray, make searching cheap:

- pivots[i]: the rotation of subarray i
- mins[i]:   a copy of the minimum of subarray i

A lookup binary searches mins to find the one subarray that can hold the
value, then binary searches the two sorted halves of that subarray.

## Why rotation makes updates O(√n)

Inserting into subarray i makes it one too long. Its maximum is evicted and
has to move into subarray i+1, where it is smaller than everything present.
Because the subarray is rotated, "make x the new minimum and evict the
maximum" is a single write: x overwrites the max slot, which is exactly the
slot before the pivot, and the pivot steps back onto it. Each of the O(√n)
following subarrays costs O(1), and only the subarray that received the new
value pays for a shift, bounded by its length.

Remove is the mirror image. The hole left in subarray i is closed by a shift
within i, then each following subarray donates its minimum to fill its
predecessor's hole, and the pivot steps forward. The last subarray is kept
unrotated while it is the donor of last resort, so its minimum is always at
its first slot.

## Ownership and concurrency

A SortedVec is a plain single threaded value. It does no locking; guard the
whole container if it is shared. Iterators read the container live, so the
container must not be mutated while an iterator is in use.

*/
