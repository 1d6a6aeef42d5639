// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package path provides composable, bidirectional accessors between a
// container value and one of its fields.
package path

// Getter represents read-only access to a value of type V
// within a container of type C.
type Getter[C, V any] interface {
	Get(C) V
}

// GetterFunc is a func variant of the [Getter] interface.
type GetterFunc[C, V any] func(C) V

// Get implements the [Getter] interface.
func (f GetterFunc[C, V]) Get(c C) V {
	return f(c)
}

// Path is a writable accessor between a container of type C and
// a value of type V within it. Every [Path] is also a [Getter],
// the reverse does not hold: a [Getter] can never be upgraded
// into a [Path].
type Path[C, V any] struct {
	get func(C) V
	set func(C, V) C
}

// New returns a [Path] from the given accessor funcs.
//
// get must not mutate the container. set must return a new container
// equal to its input except for the targeted value. Callers are expected
// to uphold the round-trip contract:
//
//	p.Get(p.Set(c, v)) == v
func New[C, V any](get func(C) V, set func(C, V) C) Path[C, V] {
	return Path[C, V]{
		get: get,
		set: set,
	}
}

// Get returns the value which p targets within c.
func (p Path[C, V]) Get(c C) V {
	return p.get(c)
}

// Set returns a new container where the value targeted by p
// has been replaced with v. The given container is not mutated.
func (p Path[C, V]) Set(c C, v V) C {
	return p.set(c, v)
}

// Join composes two writable [Path]s into a single [Path] from the
// outermost container directly to the innermost value.
func Join[A, B, C any](outer Path[A, B], inner Path[B, C]) Path[A, C] {
	return New(
		func(a A) C {
			return inner.Get(outer.Get(a))
		},
		func(a A, c C) A {
			b := inner.Set(outer.Get(a), c)
			return outer.Set(a, b)
		},
	)
}

// JoinGetter composes two [Getter]s into a single [Getter] from the
// outermost container directly to the innermost value. Since [Path]
// implements [Getter], either side may be writable but the result is
// always read-only.
func JoinGetter[A, B, C any](outer Getter[A, B], inner Getter[B, C]) Getter[A, C] {
	return GetterFunc[A, C](func(a A) C {
		return inner.Get(outer.Get(a))
	})
}

// Lift adapts a [Path] over C into a [Path] over *C, treating the
// pointer as an optional value.
//
// Get returns nil if the container is nil, otherwise a pointer to
// the targeted value of a copy of the container. Set is a no-op if
// either the container or the value is nil, otherwise it sets into
// a copy of the container and returns a pointer to that copy.
func Lift[C, V any](p Path[C, V]) Path[*C, *V] {
	return New(
		func(c *C) *V {
			if c == nil {
				return nil
			}
			v := p.Get(*c)
			return &v
		},
		func(c *C, v *V) *C {
			if c == nil || v == nil {
				return c
			}
			cc := p.Set(*c, *v)
			return &cc
		},
	)
}

// LiftGetter adapts a [Getter] over C into a [Getter] over *C,
// returning nil whenever the container is nil.
func LiftGetter[C, V any](g Getter[C, V]) Getter[*C, *V] {
	return GetterFunc[*C, *V](func(c *C) *V {
		if c == nil {
			return nil
		}
		v := g.Get(*c)
		return &v
	})
}
