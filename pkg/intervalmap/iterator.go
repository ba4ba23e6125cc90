package intervalmap

import "github.com/henderiw/interval/pkg/interval"

// Iterator walks a snapshot of the map entries in key order.
type Iterator[K, V any] struct {
	current int
	entries []entry[K, V]
}

func (r *Iterator[K, V]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}

func (r *Iterator[K, V]) Key() interval.Interval[K] {
	return r.entries[r.current].key
}

func (r *Iterator[K, V]) Value() V {
	return r.entries[r.current].value
}

func (r *Iterator[K, V]) Entry() Entry[K, V] {
	return r.entries[r.current]
}

// IsAdjacent reports whether the current key starts where the previous one
// ends, leaving no gap between them.
func (r *Iterator[K, V]) IsAdjacent() bool {
	if r.current < 1 {
		return false
	}
	prev := r.entries[r.current-1].key
	return prev.Gap(r.entries[r.current].key).IsEmpty()
}
