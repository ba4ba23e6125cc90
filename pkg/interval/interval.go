// Package interval implements intervals over any totally ordered type:
// closed, open, half-open and unbounded ranges and their set algebra.
package interval

import (
	"fmt"
	"strings"
)

// Interval is the set of values between a lower and an upper Limit.
// Intervals are immutable values and may be shared freely.
//
// The zero Interval is not valid: build intervals with a Domain or with the
// package level constructors.
type Interval[T any] struct {
	lower Limit[T]
	upper Limit[T]
}

// IsValid reports whether i was built by a constructor.
func (i Interval[T]) IsValid() bool {
	return i.lower.side == SideLower && i.upper.side == SideUpper &&
		i.lower.compare != nil && i.upper.compare != nil
}

func (i Interval[T]) mustBeValid(op string) {
	if !i.IsValid() {
		panic(fmt.Errorf("%w: zero Interval passed to %s", ErrInvalidArgument, op))
	}
}

func (i Interval[T]) compare(a, b T) int { return i.lower.compare(a, b) }

// Lower returns the lower limit, for display.
func (i Interval[T]) Lower() Limit[T] { return i.lower }

// Upper returns the upper limit, for display.
func (i Interval[T]) Upper() Limit[T] { return i.upper }

// LowerLimit returns the lower value and false when i is unbounded below.
func (i Interval[T]) LowerLimit() (T, bool) { return i.lower.Value() }

// UpperLimit returns the upper value and false when i is unbounded above.
func (i Interval[T]) UpperLimit() (T, bool) { return i.upper.Value() }

func (i Interval[T]) HasLowerLimit() bool      { return i.lower.bounded }
func (i Interval[T]) HasUpperLimit() bool      { return i.upper.bounded }
func (i Interval[T]) IncludesLowerLimit() bool { return i.lower.closed }
func (i Interval[T]) IncludesUpperLimit() bool { return i.upper.closed }

// IsOpen reports whether neither side is inclusive. Unbounded sides count
// as open.
func (i Interval[T]) IsOpen() bool { return !i.lower.closed && !i.upper.closed }

// IsClosed reports whether both sides are inclusive.
func (i Interval[T]) IsClosed() bool { return i.lower.closed && i.upper.closed }

// IsHalfOpen reports whether exactly one side is inclusive.
func (i Interval[T]) IsHalfOpen() bool { return i.lower.closed != i.upper.closed }

// IsUnbounded reports whether i has no value on at least one side.
func (i Interval[T]) IsUnbounded() bool { return !i.lower.bounded || !i.upper.bounded }

func (i Interval[T]) degenerate() bool {
	return i.lower.bounded && i.upper.bounded &&
		i.compare(i.lower.value, i.upper.value) == 0
}

// IsEmpty reports whether i contains no value, as in (5, 5).
func (i Interval[T]) IsEmpty() bool {
	return i.degenerate() && !i.lower.closed && !i.upper.closed
}

// IsSingleElement reports whether i contains exactly one value, as in [5, 5].
func (i Interval[T]) IsSingleElement() bool {
	return i.degenerate() && !i.IsEmpty()
}

// IsBelow reports whether every value of i is below x.
func (i Interval[T]) IsBelow(x T) bool {
	if !i.upper.bounded {
		return false
	}
	c := i.compare(i.upper.value, x)
	return c < 0 || (c == 0 && !i.upper.closed)
}

// IsAbove reports whether every value of i is above x.
func (i Interval[T]) IsAbove(x T) bool {
	if !i.lower.bounded {
		return false
	}
	c := i.compare(i.lower.value, x)
	return c > 0 || (c == 0 && !i.lower.closed)
}

// Includes reports whether x lies in i.
func (i Interval[T]) Includes(x T) bool {
	return !i.IsBelow(x) && !i.IsAbove(x)
}

// Covers reports whether other lies entirely within i. A boundary shared by
// both intervals counts as inside when other leaves it open.
func (i Interval[T]) Covers(other Interval[T]) bool {
	other.mustBeValid("Covers")

	var lowerPass bool
	if !other.lower.bounded {
		lowerPass = !i.lower.bounded
	} else {
		lowerPass = i.Includes(other.lower.value) ||
			(i.lower.bounded && i.compare(i.lower.value, other.lower.value) == 0 && !other.lower.closed)
	}

	var upperPass bool
	if !other.upper.bounded {
		upperPass = !i.upper.bounded
	} else {
		upperPass = i.Includes(other.upper.value) ||
			(i.upper.bounded && i.compare(i.upper.value, other.upper.value) == 0 && !other.upper.closed)
	}
	return lowerPass && upperPass
}

// NewOfSameType returns a finite interval carrying the comparator of i.
func (i Interval[T]) NewOfSameType(lower T, lowerIncluded bool, upper T, upperIncluded bool) (Interval[T], error) {
	return Between(
		newLimit(i.lower.compare, SideLower, lowerIncluded, lower),
		newLimit(i.lower.compare, SideUpper, upperIncluded, upper),
	)
}

// EmptyOfSameType returns the open zero-width interval at the lower value
// of i. It is what the algebra returns instead of "no interval". When i is
// unbounded below the upper value is used, and the zero value of T when i
// is unbounded on both sides.
func (i Interval[T]) EmptyOfSameType() Interval[T] {
	var v T
	switch {
	case i.lower.bounded:
		v = i.lower.value
	case i.upper.bounded:
		v = i.upper.value
	}
	return build(
		newLimit(i.lower.compare, SideLower, false, v),
		newLimit(i.lower.compare, SideUpper, false, v),
	)
}

func (i Interval[T]) String() string {
	var b strings.Builder
	b.WriteString(i.lower.String())
	b.WriteString(", ")
	b.WriteString(i.upper.String())
	return b.String()
}
