package intervalmap

import (
	"fmt"

	"github.com/henderiw/interval/pkg/interval"
)

type Entry[K, V any] interface {
	Key() interval.Interval[K]
	Value() V
	String() string
}

type entry[K, V any] struct {
	key   interval.Interval[K]
	value V
}

type Entries[K, V any] []Entry[K, V]

func (r entry[K, V]) Key() interval.Interval[K] { return r.key }
func (r entry[K, V]) Value() V                  { return r.value }
func (r entry[K, V]) String() string            { return fmt.Sprintf("%s: %v", r.key, r.value) }

func NewEntry[K, V any](key interval.Interval[K], v V) Entry[K, V] {
	return entry[K, V]{
		key:   key,
		value: v,
	}
}
