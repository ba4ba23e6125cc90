package interval

import (
	"cmp"
	"fmt"
)

// Must returns i or panics with err. It is meant for literal intervals in
// tables and tests.
func Must[T any](i Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return i
}

// Between returns the interval from lower to upper. It fails with
// ErrInvalidArgument when the limits sit on the wrong sides, carry no
// comparator, or when lower is above upper.
func Between[T any](lower, upper Limit[T]) (Interval[T], error) {
	if lower.side != SideLower {
		return Interval[T]{}, fmt.Errorf("%w: lower limit %s is an upper limit", ErrInvalidArgument, lower)
	}
	if upper.side != SideUpper {
		return Interval[T]{}, fmt.Errorf("%w: upper limit %s is a lower limit", ErrInvalidArgument, upper)
	}
	if lower.compare == nil || upper.compare == nil {
		return Interval[T]{}, fmt.Errorf("%w: limit without comparator", ErrInvalidArgument)
	}
	if lower.Compare(upper) > 0 {
		return Interval[T]{}, fmt.Errorf("%w: lower limit %s is greater than upper limit %s", ErrInvalidArgument, lower, upper)
	}
	return build(lower, upper), nil
}

// build assigns the raw pair and promotes a single-element interval given
// with one open side to a closed one. The caller guarantees lower <= upper.
func build[T any](lower, upper Limit[T]) Interval[T] {
	lower = lower.with(SideLower, lower.closed)
	upper = upper.with(SideUpper, upper.closed)
	if lower.bounded && upper.bounded &&
		lower.compare(lower.value, upper.value) == 0 &&
		(lower.closed || upper.closed) {
		lower.closed, upper.closed = true, true
	}
	return Interval[T]{lower: lower, upper: upper}
}

// The functions below build intervals over types with a built-in order.
// Use a Domain for any other T.

func Lower[T cmp.Ordered](closed bool, v T) Limit[T] { return Ordered[T]().Lower(closed, v) }
func Upper[T cmp.Ordered](closed bool, v T) Limit[T] { return Ordered[T]().Upper(closed, v) }
func UnboundedLower[T cmp.Ordered]() Limit[T]        { return Ordered[T]().UnboundedLower() }
func UnboundedUpper[T cmp.Ordered]() Limit[T]        { return Ordered[T]().UnboundedUpper() }

func Over[T cmp.Ordered](lower T, lowerIncluded bool, upper T, upperIncluded bool) (Interval[T], error) {
	return Ordered[T]().Over(lower, lowerIncluded, upper, upperIncluded)
}

func Closed[T cmp.Ordered](lower, upper T) (Interval[T], error) {
	return Ordered[T]().Closed(lower, upper)
}

func Open[T cmp.Ordered](lower, upper T) (Interval[T], error) {
	return Ordered[T]().Open(lower, upper)
}

func SingleElement[T cmp.Ordered](v T) Interval[T] { return Ordered[T]().SingleElement(v) }
func AndMore[T cmp.Ordered](lower T) Interval[T]   { return Ordered[T]().AndMore(lower) }
func MoreThan[T cmp.Ordered](lower T) Interval[T]  { return Ordered[T]().MoreThan(lower) }
func Under[T cmp.Ordered](upper T) Interval[T]     { return Ordered[T]().Under(upper) }
func UpTo[T cmp.Ordered](upper T) Interval[T]      { return Ordered[T]().UpTo(upper) }
func All[T cmp.Ordered]() Interval[T]              { return Ordered[T]().All() }
