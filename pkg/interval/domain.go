package interval

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, or used as panic value, when an interval
// is built from limits that do not describe an interval or when a zero
// Interval is handed to an operation.
var ErrInvalidArgument = errors.New("invalid argument")

// CompareFn is a three-way comparison defining a total order over T: it
// returns a negative number when a < b, zero when a == b and a positive
// number when a > b. cmp.Compare, netip.Addr.Compare and time.Time.Compare
// all fit.
type CompareFn[T any] func(a, b T) int

// Domain builds limits and intervals over T ordered by a CompareFn. Every
// interval built by a Domain, and every interval derived from one through
// the algebra, carries the same comparator.
type Domain[T any] struct {
	compare CompareFn[T]
}

// NewDomain returns the Domain ordered by compare. It panics with an error
// wrapping ErrInvalidArgument when compare is nil.
func NewDomain[T any](compare CompareFn[T]) Domain[T] {
	if compare == nil {
		panic(fmt.Errorf("%w: nil compare func", ErrInvalidArgument))
	}
	return Domain[T]{compare: compare}
}

// Ordered returns the Domain of a type with a built-in order.
func Ordered[T cmp.Ordered]() Domain[T] {
	return Domain[T]{compare: cmp.Compare[T]}
}

// Compare exposes the comparator of the domain.
func (d Domain[T]) Compare(a, b T) int { return d.compare(a, b) }

func (d Domain[T]) Lower(closed bool, v T) Limit[T] {
	return newLimit(d.compare, SideLower, closed, v)
}

func (d Domain[T]) Upper(closed bool, v T) Limit[T] {
	return newLimit(d.compare, SideUpper, closed, v)
}

func (d Domain[T]) UnboundedLower() Limit[T] {
	return unboundedLimit(d.compare, SideLower)
}

func (d Domain[T]) UnboundedUpper() Limit[T] {
	return unboundedLimit(d.compare, SideUpper)
}

// Between returns the interval from lower to upper.
func (d Domain[T]) Between(lower, upper Limit[T]) (Interval[T], error) {
	return Between(lower, upper)
}

// Over returns the interval between two finite values, each side inclusive
// as requested. A single-element interval given with one open side is
// promoted to [v, v].
func (d Domain[T]) Over(lower T, lowerIncluded bool, upper T, upperIncluded bool) (Interval[T], error) {
	return Between(d.Lower(lowerIncluded, lower), d.Upper(upperIncluded, upper))
}

// Closed returns [lower, upper].
func (d Domain[T]) Closed(lower, upper T) (Interval[T], error) {
	return d.Over(lower, true, upper, true)
}

// Open returns (lower, upper).
func (d Domain[T]) Open(lower, upper T) (Interval[T], error) {
	return d.Over(lower, false, upper, false)
}

// SingleElement returns [v, v].
func (d Domain[T]) SingleElement(v T) Interval[T] {
	return build(d.Lower(true, v), d.Upper(true, v))
}

// AndMore returns [lower, +∞).
func (d Domain[T]) AndMore(lower T) Interval[T] {
	return build(d.Lower(true, lower), d.UnboundedUpper())
}

// MoreThan returns (lower, +∞).
func (d Domain[T]) MoreThan(lower T) Interval[T] {
	return build(d.Lower(false, lower), d.UnboundedUpper())
}

// Under returns (-∞, upper).
func (d Domain[T]) Under(upper T) Interval[T] {
	return build(d.UnboundedLower(), d.Upper(false, upper))
}

// UpTo returns (-∞, upper].
func (d Domain[T]) UpTo(upper T) Interval[T] {
	return build(d.UnboundedLower(), d.Upper(true, upper))
}

// All returns (-∞, +∞).
func (d Domain[T]) All() Interval[T] {
	return build(d.UnboundedLower(), d.UnboundedUpper())
}
