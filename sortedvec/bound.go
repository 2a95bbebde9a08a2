package sortedvec

// BoundKind says how a Bound limits a range.
type BoundKind uint8

const (
	// BoundUnbounded places no limit; Value is ignored.
	BoundUnbounded BoundKind = iota
	// BoundIncluded limits the range to values at or inside Value.
	BoundIncluded
	// BoundExcluded limits the range to values strictly inside Value.
	BoundExcluded
)

func (k BoundKind) String() string {
	switch k {
	case BoundIncluded:
		return "included"
	case BoundExcluded:
		return "excluded"
	default:
		return "unbounded"
	}
}

// Bound is one end of a range passed to SortedVec.Range.
type Bound[T any] struct {
	Kind  BoundKind
	Value T
}

// Included returns a bound that admits v.
func Included[T any](v T) Bound[T] {
	return Bound[T]{Kind: BoundIncluded, Value: v}
}

// Excluded returns a bound that stops just short of v.
func Excluded[T any](v T) Bound[T] {
	return Bound[T]{Kind: BoundExcluded, Value: v}
}

// Unbounded returns a bound that places no limit on its end of a range.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}
