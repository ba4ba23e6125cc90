package intervalmap

import (
	"fmt"
	"iter"
	"slices"

	"github.com/henderiw/interval/pkg/interval"
)

// New returns a Map that scans its entries linearly. Entries are kept ordered
// by their lower limit. It is not safe for concurrent use.
func New[K, V any]() Map[K, V] {
	return &linearMap[K, V]{}
}

type linearMap[K, V any] struct {
	entries []entry[K, V]
}

func (r *linearMap[K, V]) Put(key interval.Interval[K], v V) error {
	if err := r.Remove(key); err != nil {
		return err
	}
	// an empty key maps nothing
	if key.IsEmpty() {
		return nil
	}
	r.entries = append(r.entries, entry[K, V]{key: key, value: v})
	r.sort()
	return nil
}

func (r *linearMap[K, V]) Remove(key interval.Interval[K]) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: cannot remove a zero interval", interval.ErrInvalidArgument)
	}
	entries := make([]entry[K, V], 0, len(r.entries)+1)
	for _, e := range r.entries {
		if !e.key.Intersects(key) {
			entries = append(entries, e)
			continue
		}
		for _, rest := range key.ComplementRelativeTo(e.key) {
			entries = append(entries, entry[K, V]{key: rest, value: e.value})
		}
	}
	r.entries = entries
	r.sort()
	return nil
}

func (r *linearMap[K, V]) sort() {
	slices.SortFunc(r.entries, func(a, b entry[K, V]) int {
		return lowerOrder(a.key, b.key)
	})
}

// lowerOrder orders disjoint keys. Two of them can share a lower value only
// when one includes it and the other does not, as in [5, 5] and (5, 8].
func lowerOrder[K any](a, b interval.Interval[K]) int {
	if c := a.Lower().Compare(b.Lower()); c != 0 {
		return c
	}
	switch {
	case a.IncludesLowerLimit() == b.IncludesLowerLimit():
		return 0
	case a.IncludesLowerLimit():
		return -1
	}
	return 1
}

func (r *linearMap[K, V]) find(k K) (entry[K, V], bool) {
	for _, e := range r.entries {
		if e.key.Includes(k) {
			return e, true
		}
	}
	return entry[K, V]{}, false
}

func (r *linearMap[K, V]) Get(k K) (V, bool) {
	e, ok := r.find(k)
	return e.value, ok
}

func (r *linearMap[K, V]) ContainsKey(k K) bool {
	_, ok := r.find(k)
	return ok
}

func (r *linearMap[K, V]) ContainsIntersectingKey(key interval.Interval[K]) bool {
	for _, e := range r.entries {
		if e.key.Intersects(key) {
			return true
		}
	}
	return false
}

func (r *linearMap[K, V]) Len() int { return len(r.entries) }

func (r *linearMap[K, V]) Keys() []interval.Interval[K] {
	keys := make([]interval.Interval[K], 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func (r *linearMap[K, V]) Entries() Entries[K, V] {
	entries := make(Entries[K, V], 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries
}

func (r *linearMap[K, V]) Iterate() *Iterator[K, V] {
	return &Iterator[K, V]{current: -1, entries: slices.Clone(r.entries)}
}

func (r *linearMap[K, V]) All() iter.Seq2[interval.Interval[K], V] {
	return func(yield func(interval.Interval[K], V) bool) {
		for _, e := range r.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
