// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package construct

import (
	"github.com/z5labs/construct/path"

	"go.uber.org/zap"
)

// Step is a [Builder] bound to a writable [path.Path]. It is the
// callable navigation step: terminate it with [Step.Set],
// [Step.SetIf] or [Step.Update], or navigate deeper with [Into].
type Step[B, V any] struct {
	builder Builder[B]
	path    path.Path[B, V]
}

// At binds the field targeted by p to b, returning a [Step] which can
// queue edits for that field.
func At[B, V any](b Builder[B], p path.Path[B, V]) Step[B, V] {
	return Step[B, V]{
		builder: b,
		path:    p,
	}
}

// Into navigates from s to a field nested within its target. The two
// paths are composed with [path.Join].
func Into[B, V, W any](s Step[B, V], p path.Path[V, W]) Step[B, W] {
	return Step[B, W]{
		builder: s.builder,
		path:    path.Join(s.path, p),
	}
}

// IntoLifted navigates from a step targeting an optional (pointer)
// field to a field nested within the wrapped value. The inner path is
// lifted with [path.Lift], so any edit queued through the returned
// [Step] is silently dropped if the intermediate value is nil at
// build time.
func IntoLifted[B, V, W any](s Step[B, *V], p path.Path[V, W]) Step[B, *W] {
	return Into(s, path.Lift(p))
}

// Set returns a new [Builder] with "replace this field with v" queued.
func (s Step[B, V]) Set(v V) Builder[B] {
	return s.builder.With(func(base *B) {
		*base = s.path.Set(*base, v)
	})
}

// SetIf is like [Step.Set] but only queues the edit when cond is
// true. When cond is false the returned [Builder] behaves exactly as
// if the step had never been called.
func (s Step[B, V]) SetIf(cond bool, v V) Builder[B] {
	if !cond {
		s.builder.logger.Debug("skipping guarded set", zap.Int("queued", s.builder.cfg.Len()))
		return s.builder
	}
	return s.Set(v)
}

// Update returns a new [Builder] with "read the current field value,
// apply fn to it and write the result back" queued. It enables
// field-local edits without replacing the whole field.
func (s Step[B, V]) Update(fn func(V) V) Builder[B] {
	return s.builder.With(func(base *B) {
		*base = s.path.Set(*base, fn(s.path.Get(*base)))
	})
}

// ReinforceAt is the path variant of [Builder.Reinforce]: it builds
// now and returns a fresh [Builder] from the built value with
// "replace the field targeted by p with v" as its only queued edit.
func ReinforceAt[B, V any](b Builder[B], p path.Path[B, V], v V) Builder[B] {
	nb := FromValue(b.Build())
	nb.logger = b.logger
	return At(nb, p).Set(v)
}

// View is a [Builder] bound to a read-only [path.Getter]. It is the
// non-callable navigation step: it supports further navigation with
// [ViewInto] but offers no way to queue an edit, so writing through a
// read-only path does not compile.
type View[B, V any] struct {
	builder Builder[B]
	getter  path.Getter[B, V]
}

// ViewAt binds the read-only field targeted by g to b.
func ViewAt[B, V any](b Builder[B], g path.Getter[B, V]) View[B, V] {
	return View[B, V]{
		builder: b,
		getter:  g,
	}
}

// ViewInto navigates from v to a field nested within its target.
// Either side may be writable but the result remains read-only.
func ViewInto[B, V, W any](v View[B, V], g path.Getter[V, W]) View[B, W] {
	return View[B, W]{
		builder: v.builder,
		getter:  path.JoinGetter(v.getter, g),
	}
}

// Getter returns the composed [path.Getter] from the builder's base
// type to the viewed field.
func (v View[B, V]) Getter() path.Getter[B, V] {
	return v.getter
}
