// Package rangetable allocates labeled ranges out of a bounded interval.
// Claimed ranges never overlap. A table is safe for concurrent use.
package rangetable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervalmap"
	"k8s.io/apimachinery/pkg/labels"
)

var (
	ErrOutOfBounds = errors.New("range out of bounds")
	ErrClaimed     = errors.New("range already claimed")
	ErrNotFound    = errors.New("no claim found")
)

type Table[T any] interface {
	Get(v T) (Entry[T], error)
	Claim(rng interval.Interval[T], d labels.Set) error
	Update(rng interval.Interval[T], d labels.Set) error
	Release(rng interval.Interval[T]) error

	Iterate() *intervalmap.Iterator[T, labels.Set]

	Count() int
	Has(v T) bool

	IsFree(rng interval.Interval[T]) bool
	FreeRanges() []interval.Interval[T]

	GetAll() []Entry[T]
	GetByLabel(selector labels.Selector) []Entry[T]
}

func New[T any](name string, bounds interval.Interval[T], opts ...Option[T]) (Table[T], error) {
	if !bounds.IsValid() || bounds.IsEmpty() {
		return nil, fmt.Errorf("table %s: %w: bounds must be a non-empty interval", name, interval.ErrInvalidArgument)
	}
	r := &table[T]{
		m:      new(sync.RWMutex),
		name:   name,
		bounds: bounds,
		table:  intervalmap.New[T, labels.Set](),
		log:    logr.Discard(),
	}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.WithValues("table", name)

	var errm error
	for _, e := range r.initEntries {
		if err := r.add(e.Range(), e.Labels(), true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	r.initEntries = nil

	return r, errm
}

type table[T any] struct {
	m           *sync.RWMutex
	name        string
	bounds      interval.Interval[T]
	table       intervalmap.Map[T, labels.Set]
	log         logr.Logger
	validateFn  ValidationFn[T]
	initEntries []Entry[T]
}

func (r *table[T]) validate(rng interval.Interval[T], init bool) error {
	if !rng.IsValid() {
		return fmt.Errorf("%w: zero range", interval.ErrInvalidArgument)
	}
	if rng.IsEmpty() {
		return fmt.Errorf("%w: range %s is empty", interval.ErrInvalidArgument, rng)
	}
	if !r.bounds.Covers(rng) {
		return fmt.Errorf("%w: range %s does not fit in %s", ErrOutOfBounds, rng, r.bounds)
	}
	return r.validateFunc(rng, init)
}

func (r *table[T]) validateFunc(rng interval.Interval[T], init bool) error {
	if r.validateFn != nil && !init {
		if err := r.validateFn(rng); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T]) Get(v T) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	iter := r.table.Iterate()
	for iter.Next() {
		if iter.Key().Includes(v) {
			return NewEntry(iter.Key(), iter.Value()), nil
		}
	}
	return nil, fmt.Errorf("%w for: %v", ErrNotFound, v)
}

func (r *table[T]) Claim(rng interval.Interval[T], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(rng, d, false)
}

func (r *table[T]) add(rng interval.Interval[T], d labels.Set, init bool) error {
	if err := r.validate(rng, init); err != nil {
		r.log.Info("claim rejected", "range", rng.String(), "err", err.Error())
		return err
	}
	if r.table.ContainsIntersectingKey(rng) {
		r.log.Info("claim rejected", "range", rng.String(), "err", ErrClaimed.Error())
		return fmt.Errorf("%w: %s overlaps an existing claim", ErrClaimed, rng)
	}
	if err := r.table.Put(rng, d); err != nil {
		return err
	}
	r.log.V(1).Info("claimed", "range", rng.String(), "labels", d.String())
	return nil
}

func (r *table[T]) Release(rng interval.Interval[T]) error {
	r.m.Lock()
	defer r.m.Unlock()

	if !rng.IsValid() {
		return fmt.Errorf("%w: zero range", interval.ErrInvalidArgument)
	}
	// releasing outside the bounds is a no-op, only the validation func applies
	if err := r.validateFunc(rng, false); err != nil {
		r.log.Info("release rejected", "range", rng.String(), "err", err.Error())
		return err
	}
	if err := r.table.Remove(rng); err != nil {
		return err
	}
	r.log.V(1).Info("released", "range", rng.String())
	return nil
}

func (r *table[T]) Update(rng interval.Interval[T], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(rng, false); err != nil {
		r.log.Info("update rejected", "range", rng.String(), "err", err.Error())
		return err
	}
	if err := r.table.Put(rng, d); err != nil {
		return err
	}
	r.log.V(1).Info("updated", "range", rng.String(), "labels", d.String())
	return nil
}

func (r *table[T]) Iterate() *intervalmap.Iterator[T, labels.Set] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.Iterate()
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.Len()
}

func (r *table[T]) Has(v T) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.ContainsKey(v)
}

func (r *table[T]) IsFree(rng interval.Interval[T]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	if !rng.IsValid() || !r.bounds.Covers(rng) {
		return false
	}
	return !r.table.ContainsIntersectingKey(rng)
}

func (r *table[T]) FreeRanges() []interval.Interval[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	free := []interval.Interval[T]{r.bounds}
	for _, claimed := range r.table.Keys() {
		next := make([]interval.Interval[T], 0, len(free)+1)
		for _, f := range free {
			next = append(next, claimed.ComplementRelativeTo(f)...)
		}
		free = next
	}
	return free
}

func (r *table[T]) GetAll() []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.getByLabel(labels.Everything())
}

func (r *table[T]) GetByLabel(selector labels.Selector) []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.getByLabel(selector)
}

func (r *table[T]) getByLabel(selector labels.Selector) []Entry[T] {
	entries := []Entry[T]{}
	for rng, d := range r.table.All() {
		if selector.Matches(d) {
			entries = append(entries, NewEntry(rng, d))
		}
	}
	return entries
}
