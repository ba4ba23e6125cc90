// Package intervalmap maps disjoint key intervals to values.
package intervalmap

import (
	"iter"

	"github.com/henderiw/interval/pkg/interval"
)

// Map is a mapping from pairwise disjoint key intervals to values. Every
// mutation keeps the keys disjoint: an existing key overlapping the
// argument of Put or Remove is trimmed to the parts outside of it, each part
// keeping the old value.
type Map[K, V any] interface {
	// Put maps every value of key to v, overwriting whatever overlapped.
	Put(key interval.Interval[K], v V) error
	// Remove unmaps every value of key.
	Remove(key interval.Interval[K]) error
	// Get returns the value mapped at k. The boolean tells a missing key
	// apart from a stored zero value.
	Get(k K) (V, bool)
	ContainsKey(k K) bool
	ContainsIntersectingKey(key interval.Interval[K]) bool

	Len() int
	Keys() []interval.Interval[K]
	Entries() Entries[K, V]
	Iterate() *Iterator[K, V]
	All() iter.Seq2[interval.Interval[K], V]
}
