// Package intervalseq keeps intervals in a sorted sequence and answers
// aggregate questions about it: extent, gaps and overlaps between
// neighbours.
package intervalseq

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/henderiw/interval/pkg/interval"
)

// ErrEmptySequence is returned when an aggregate needs at least one
// interval.
var ErrEmptySequence = errors.New("empty interval sequence")

// Sequence is a collection of intervals kept sorted by an Ordering.
// Duplicates and overlapping intervals are kept as they are.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	intervals []interval.Interval[T]
	ordering  Ordering[T]
}

// New returns an empty sequence in Natural order.
func New[T any]() *Sequence[T] {
	return NewWithOrdering(Natural[T]())
}

// NewWithOrdering returns an empty sequence sorted by o.
func NewWithOrdering[T any](o Ordering[T]) *Sequence[T] {
	return &Sequence[T]{ordering: o}
}

// Add inserts i and re-sorts the sequence.
func (r *Sequence[T]) Add(i interval.Interval[T]) error {
	if !i.IsValid() {
		return fmt.Errorf("%w: cannot add a zero interval to a sequence", interval.ErrInvalidArgument)
	}
	r.intervals = append(r.intervals, i)
	slices.SortStableFunc(r.intervals, r.ordering)
	return nil
}

func (r *Sequence[T]) IsEmpty() bool { return len(r.intervals) == 0 }

func (r *Sequence[T]) Len() int { return len(r.intervals) }

// All iterates over the intervals in their current order. The sequence
// must not be changed while iterating.
func (r *Sequence[T]) All() iter.Seq[interval.Interval[T]] {
	return func(yield func(interval.Interval[T]) bool) {
		for _, i := range r.intervals {
			if !yield(i) {
				return
			}
		}
	}
}

// Intervals returns a copy of the intervals in their current order.
func (r *Sequence[T]) Intervals() []interval.Interval[T] {
	return slices.Clone(r.intervals)
}

// Extent returns the interval from the lower limit of the first interval to
// the upper limit of the last one. This is the smallest interval spanning
// the sequence only when the ordering sorts both limits ascending; no
// min/max scan is done.
func (r *Sequence[T]) Extent() (interval.Interval[T], error) {
	if r.IsEmpty() {
		return interval.Interval[T]{}, fmt.Errorf("extent: %w", ErrEmptySequence)
	}
	first := r.intervals[0]
	last := r.intervals[len(r.intervals)-1]
	extent, err := interval.Between(first.Lower(), last.Upper())
	if err != nil {
		return interval.Interval[T]{}, fmt.Errorf("extent from %s to %s: %w", first, last, err)
	}
	return extent, nil
}

// Gaps returns the non-empty gaps between neighbouring intervals. Only
// neighbours are compared, not every pair.
func (r *Sequence[T]) Gaps() *Sequence[T] {
	return r.adjacent(interval.Interval[T].Gap)
}

// Intersections returns the non-empty intersections of neighbouring
// intervals. Only neighbours are compared, not every pair.
func (r *Sequence[T]) Intersections() *Sequence[T] {
	return r.adjacent(interval.Interval[T].Intersect)
}

func (r *Sequence[T]) adjacent(combine func(left, right interval.Interval[T]) interval.Interval[T]) *Sequence[T] {
	out := NewWithOrdering(r.ordering)
	for idx := 1; idx < len(r.intervals); idx++ {
		combined := combine(r.intervals[idx-1], r.intervals[idx])
		if !combined.IsEmpty() {
			out.intervals = append(out.intervals, combined)
		}
	}
	slices.SortStableFunc(out.intervals, out.ordering)
	return out
}
