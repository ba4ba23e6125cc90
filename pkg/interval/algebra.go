package interval

func (i Interval[T]) greaterOfLowerLimits(other Interval[T]) Limit[T] {
	if i.lower.Compare(other.lower) >= 0 {
		return i.lower
	}
	return other.lower
}

func (i Interval[T]) lesserOfUpperLimits(other Interval[T]) Limit[T] {
	if i.upper.Compare(other.upper) <= 0 {
		return i.upper
	}
	return other.upper
}

// includedInIntersection reports whether the finite limit l belongs to both
// i and other.
func (i Interval[T]) includedInIntersection(other Interval[T], l Limit[T]) bool {
	return l.bounded && i.Includes(l.value) && other.Includes(l.value)
}

// includedInUnion reports whether the finite limit l belongs to i or other.
func (i Interval[T]) includedInUnion(other Interval[T], l Limit[T]) bool {
	return l.bounded && (i.Includes(l.value) || other.Includes(l.value))
}

// Intersects reports whether i and other share at least one value.
func (i Interval[T]) Intersects(other Interval[T]) bool {
	other.mustBeValid("Intersects")

	lower := i.greaterOfLowerLimits(other)
	upper := i.lesserOfUpperLimits(other)
	switch c := lower.Compare(upper); {
	case c < 0:
		return true
	case c > 0:
		return false
	}
	// Both limits are finite and share a value; it has to be in both.
	return i.includedInIntersection(other, lower) && i.includedInIntersection(other, upper)
}

// Intersect returns the values shared by i and other. Each side of the
// result is closed only when both intervals include that boundary value.
// Disjoint intervals yield an empty interval.
func (i Interval[T]) Intersect(other Interval[T]) Interval[T] {
	other.mustBeValid("Intersect")

	lower := i.greaterOfLowerLimits(other)
	upper := i.lesserOfUpperLimits(other)
	if lower.Compare(upper) > 0 {
		return i.EmptyOfSameType()
	}
	return build(
		lower.with(SideLower, i.includedInIntersection(other, lower)),
		upper.with(SideUpper, i.includedInIntersection(other, upper)),
	)
}

// Gap returns the values strictly between two disjoint intervals, from the
// lesser upper limit to the greater lower limit. Each side of the gap is open
// when either interval already owns that boundary value. Intersecting
// intervals have an empty gap. An empty interval counts by its position, so
// the gap of (25, 25) and [10, 20] is (20, 25].
func (i Interval[T]) Gap(other Interval[T]) Interval[T] {
	other.mustBeValid("Gap")

	if i.Intersects(other) {
		return i.EmptyOfSameType()
	}
	// Disjoint: the lesser upper and the greater lower limit are finite and
	// ordered.
	lower := i.lesserOfUpperLimits(other)
	upper := i.greaterOfLowerLimits(other)
	return build(
		lower.with(SideLower, !i.includedInUnion(other, lower)),
		upper.with(SideUpper, !i.includedInUnion(other, upper)),
	)
}

// ComplementRelativeTo returns the parts of other not covered by i, in
// ascending order: other itself when the two are disjoint, nothing when i
// covers other, otherwise one piece per side of other that sticks out of i.
func (i Interval[T]) ComplementRelativeTo(other Interval[T]) []Interval[T] {
	other.mustBeValid("ComplementRelativeTo")

	if !i.Intersects(other) {
		return []Interval[T]{other}
	}
	var pieces []Interval[T]
	if left, ok := i.leftComplementRelativeTo(other); ok {
		pieces = append(pieces, left)
	}
	if right, ok := i.rightComplementRelativeTo(other); ok {
		pieces = append(pieces, right)
	}
	return pieces
}

func (i Interval[T]) leftComplementRelativeTo(other Interval[T]) (Interval[T], bool) {
	switch c := other.lower.Compare(i.lower); {
	case c < 0:
	case c == 0 && other.lower.bounded && other.lower.closed && !i.lower.closed:
		// other owns the shared boundary value, i does not.
	default:
		return Interval[T]{}, false
	}
	left := build(other.lower, i.lower.with(SideUpper, !i.lower.closed))
	if left.IsEmpty() {
		return Interval[T]{}, false
	}
	return left, true
}

func (i Interval[T]) rightComplementRelativeTo(other Interval[T]) (Interval[T], bool) {
	switch c := i.upper.Compare(other.upper); {
	case c < 0:
	case c == 0 && other.upper.bounded && other.upper.closed && !i.upper.closed:
	default:
		return Interval[T]{}, false
	}
	right := build(i.upper.with(SideLower, !i.upper.closed), other.upper)
	if right.IsEmpty() {
		return Interval[T]{}, false
	}
	return right, true
}

// Compare orders intervals by upper limit first. Empty intervals sort below
// everything else and equal to each other. Among intervals with equal upper
// limits the one with the greater lower limit, the narrower one, sorts
// first. Limits compare by position only, so [1, 5] and (1, 5) compare
// equal.
func (i Interval[T]) Compare(other Interval[T]) int {
	other.mustBeValid("Compare")

	ie, oe := i.IsEmpty(), other.IsEmpty()
	switch {
	case ie && oe:
		return 0
	case ie:
		return -1
	case oe:
		return 1
	}
	if c := i.upper.Compare(other.upper); c != 0 {
		return c
	}
	return -i.lower.Compare(other.lower)
}

// Equal reports whether i and other denote the same interval: all empty
// intervals are equal, single-element intervals are equal when their values
// are, and anything else is equal when Compare returns zero.
func (i Interval[T]) Equal(other Interval[T]) bool {
	other.mustBeValid("Equal")

	ie, oe := i.IsEmpty(), other.IsEmpty()
	switch {
	case ie && oe:
		return true
	case ie || oe:
		return false
	}
	is, os := i.IsSingleElement(), other.IsSingleElement()
	switch {
	case is && os:
		return i.compare(i.lower.value, other.lower.value) == 0
	case is || os:
		return false
	}
	return i.Compare(other) == 0
}
