package interval

import "fmt"

// Side tells whether a Limit bounds an interval from below or from above.
type Side uint8

const (
	SideLower Side = iota
	SideUpper
)

func (s Side) String() string {
	if s == SideUpper {
		return "upper"
	}
	return "lower"
}

// Limit is one endpoint of an interval: a value, or no value when the
// interval is unbounded on that side, plus an inclusive flag and a side.
//
// Limits are ordered by position only. Two finite limits compare by value,
// ignoring both the closed flag and the side, so [5 and 5) are equal limits.
// An unbounded lower limit is below every finite limit, an unbounded upper
// limit is above every finite limit. Whether a boundary value belongs to an
// interval depends on the closed flag as well and is answered by
// Interval.Includes, IsBelow and IsAbove; do not derive it from Compare.
//
// The zero Limit is an unbounded lower limit without a comparator and is
// rejected by every interval constructor.
type Limit[T any] struct {
	value   T
	bounded bool
	closed  bool
	side    Side
	compare CompareFn[T]
}

func newLimit[T any](compare CompareFn[T], side Side, closed bool, v T) Limit[T] {
	return Limit[T]{
		value:   v,
		bounded: true,
		closed:  closed,
		side:    side,
		compare: compare,
	}
}

func unboundedLimit[T any](compare CompareFn[T], side Side) Limit[T] {
	return Limit[T]{
		side:    side,
		compare: compare,
	}
}

// with returns a copy of l moved to the given side with the given closed
// flag. Unbounded limits are never closed.
func (l Limit[T]) with(side Side, closed bool) Limit[T] {
	l.side = side
	l.closed = closed && l.bounded
	return l
}

// Compare orders l and other by position, see Limit.
func (l Limit[T]) Compare(other Limit[T]) int {
	switch {
	case !l.bounded && !other.bounded:
		if l.side == other.side {
			return 0
		}
		if l.side == SideLower {
			return -1
		}
		return 1
	case !l.bounded:
		if l.side == SideLower {
			return -1
		}
		return 1
	case !other.bounded:
		if other.side == SideLower {
			return 1
		}
		return -1
	}
	return l.compare(l.value, other.value)
}

// Equal reports whether l and other sit at the same position. The closed
// flag is not consulted.
func (l Limit[T]) Equal(other Limit[T]) bool {
	return l.Compare(other) == 0
}

// The accessors below are meant for display and for adjacent packages.
// Boundary inclusion must be computed with the Interval predicates.

// Value returns the limit value and false when the limit is unbounded.
func (l Limit[T]) Value() (T, bool) { return l.value, l.bounded }

func (l Limit[T]) IsBounded() bool { return l.bounded }
func (l Limit[T]) IsClosed() bool  { return l.closed }
func (l Limit[T]) IsOpen() bool    { return !l.closed }
func (l Limit[T]) IsLower() bool   { return l.side == SideLower }
func (l Limit[T]) IsUpper() bool   { return l.side == SideUpper }
func (l Limit[T]) Side() Side      { return l.side }

func (l Limit[T]) String() string {
	if !l.bounded {
		if l.side == SideLower {
			return "(-∞"
		}
		return "+∞)"
	}
	if l.side == SideLower {
		if l.closed {
			return fmt.Sprintf("[%v", l.value)
		}
		return fmt.Sprintf("(%v", l.value)
	}
	if l.closed {
		return fmt.Sprintf("%v]", l.value)
	}
	return fmt.Sprintf("%v)", l.value)
}
