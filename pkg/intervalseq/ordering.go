package intervalseq

import "github.com/henderiw/interval/pkg/interval"

// Ordering is a three-way comparison of intervals used to keep a Sequence
// sorted.
type Ordering[T any] func(a, b interval.Interval[T]) int

// Natural is the order of interval.Interval.Compare: empty intervals first,
// then by upper limit, narrower intervals first on a tie.
func Natural[T any]() Ordering[T] {
	return interval.Interval[T].Compare
}

// UpperLower puts empty intervals first, then orders by upper limit, then by
// lower limit. Each key sorts ascending unless its inverse flag is set.
func UpperLower[T any](inverseLower, inverseUpper bool) Ordering[T] {
	return func(a, b interval.Interval[T]) int {
		if c, ok := emptyFirst(a, b); ok {
			return c
		}
		if c := direction(a.Upper().Compare(b.Upper()), inverseUpper); c != 0 {
			return c
		}
		return direction(a.Lower().Compare(b.Lower()), inverseLower)
	}
}

// LowerUpper puts empty intervals first, then orders by lower limit, then by
// upper limit. Each key sorts ascending unless its inverse flag is set.
func LowerUpper[T any](inverseLower, inverseUpper bool) Ordering[T] {
	return func(a, b interval.Interval[T]) int {
		if c, ok := emptyFirst(a, b); ok {
			return c
		}
		if c := direction(a.Lower().Compare(b.Lower()), inverseLower); c != 0 {
			return c
		}
		return direction(a.Upper().Compare(b.Upper()), inverseUpper)
	}
}

// emptyFirst decides the order when a or b is empty, independent of the
// inverse flags.
func emptyFirst[T any](a, b interval.Interval[T]) (int, bool) {
	ae, be := a.IsEmpty(), b.IsEmpty()
	switch {
	case ae && be:
		return 0, true
	case ae:
		return -1, true
	case be:
		return 1, true
	}
	return 0, false
}

func direction(c int, inverse bool) int {
	if inverse {
		return -c
	}
	return c
}
