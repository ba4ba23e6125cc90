package rangetable

import (
	"github.com/go-logr/logr"
	"github.com/henderiw/interval/pkg/interval"
)

// ValidationFn is consulted on every Claim, Update and Release. Init entries
// skip it.
type ValidationFn[T any] func(rng interval.Interval[T]) error

type Option[T any] func(*table[T])

func WithLogger[T any](l logr.Logger) Option[T] {
	return func(r *table[T]) {
		r.log = l
	}
}

func WithValidation[T any](fn ValidationFn[T]) Option[T] {
	return func(r *table[T]) {
		r.validateFn = fn
	}
}

// WithInitEntries claims the entries when the table is created.
func WithInitEntries[T any](entries ...Entry[T]) Option[T] {
	return func(r *table[T]) {
		r.initEntries = append(r.initEntries, entries...)
	}
}
