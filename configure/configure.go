// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package configure provides an ordered queue of deferred, in-place
// value modifications which can be applied as a single fold.
package configure

// Transform represents a single in-place modification of a value.
type Transform[T any] func(*T)

// Configurator is an ordered queue of [Transform]s. The zero value
// is an empty queue, ready for use.
//
// A Configurator is a value: Set, Append and Join return new
// Configurators and never mutate their receiver, so a Configurator
// can be safely reused as a shared prefix for multiple edit chains.
type Configurator[T any] struct {
	transforms []Transform[T]
}

// New returns an empty [Configurator].
func New[T any]() Configurator[T] {
	return Configurator[T]{}
}

// Of returns a [Configurator] containing exactly the given [Transform].
func Of[T any](t Transform[T]) Configurator[T] {
	return Configurator[T]{
		transforms: []Transform[T]{t},
	}
}

// Set returns a [Configurator] containing exactly the given [Transform],
// discarding any previously queued ones. It is meant for (re)seeding a
// queue, use [Configurator.Append] to accumulate.
func (c Configurator[T]) Set(t Transform[T]) Configurator[T] {
	return Of(t)
}

// Append returns a new [Configurator] with t queued after all
// previously queued [Transform]s.
func (c Configurator[T]) Append(t Transform[T]) Configurator[T] {
	// The backing array is never shared with the receiver so
	// appending to a shared prefix can not leak between branches.
	transforms := make([]Transform[T], 0, len(c.transforms)+1)
	transforms = append(transforms, c.transforms...)
	transforms = append(transforms, t)
	return Configurator[T]{transforms: transforms}
}

// Join returns a new [Configurator] with all of other's [Transform]s
// queued, in order, after all of c's.
func (c Configurator[T]) Join(other Configurator[T]) Configurator[T] {
	transforms := make([]Transform[T], 0, len(c.transforms)+len(other.transforms))
	transforms = append(transforms, c.transforms...)
	transforms = append(transforms, other.transforms...)
	return Configurator[T]{transforms: transforms}
}

// Len returns the number of queued [Transform]s.
func (c Configurator[T]) Len() int {
	return len(c.transforms)
}

// Configure copies base, runs every queued [Transform] against the
// copy in insertion order and returns the final value. Later
// transforms observe the effects of earlier ones.
//
// The copy is shallow. If T contains references the transforms will
// mutate the referenced values in place, see [Configurator.Mutate].
func (c Configurator[T]) Configure(base T) T {
	c.Mutate(&base)
	return base
}

// Mutate runs every queued [Transform] directly against base, in
// insertion order. It is the in-place counterpart of
// [Configurator.Configure] for values which are meant to be shared.
func (c Configurator[T]) Mutate(base *T) {
	for _, transform := range c.transforms {
		transform(base)
	}
}
