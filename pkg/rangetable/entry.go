package rangetable

import (
	"fmt"

	"github.com/henderiw/interval/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[T any] interface {
	Range() interval.Interval[T]
	Labels() labels.Set
	String() string
}

type entry[T any] struct {
	rng    interval.Interval[T]
	labels labels.Set
}

func (r entry[T]) Range() interval.Interval[T] { return r.rng }
func (r entry[T]) Labels() labels.Set          { return r.labels }
func (r entry[T]) String() string              { return fmt.Sprintf("%s %s", r.rng, r.labels) }

func NewEntry[T any](rng interval.Interval[T], d labels.Set) Entry[T] {
	return entry[T]{
		rng:    rng,
		labels: d,
	}
}
