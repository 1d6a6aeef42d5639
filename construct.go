// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package construct

import (
	"github.com/z5labs/construct/configure"

	"go.uber.org/zap"
)

// Option configures optional [Builder] behaviour.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report queued and skipped
// builder steps. Steps are logged at Debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Builder pairs a lazily produced initial value with a queue of
// pending edits. The zero value is not usable, always start from
// [New] or [FromValue].
//
// A Builder is immutable: every step returns a new Builder and never
// alters its receiver, so any Builder can be safely reused as a
// shared prefix for multiple divergent chains.
type Builder[T any] struct {
	make   func() T
	cfg    configure.Configurator[T]
	logger *zap.Logger
}

// New returns a [Builder] which produces its initial value with the
// given factory. The factory is invoked exactly once per call to
// [Builder.Build] or [Builder.Apply], never earlier.
func New[T any](factory func() T, opts ...Option) Builder[T] {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return Builder[T]{
		make:   factory,
		cfg:    configure.New[T](),
		logger: o.logger,
	}
}

// FromValue returns a [Builder] which uses the given value as its
// initial value.
func FromValue[T any](v T, opts ...Option) Builder[T] {
	return New(func() T { return v }, opts...)
}

// With returns a new [Builder] with the given [configure.Transform]
// queued after all previously queued edits.
func (b Builder[T]) With(t configure.Transform[T]) Builder[T] {
	b.logger.Debug("queueing transform", zap.Int("queued", b.cfg.Len()+1))
	b.cfg = b.cfg.Append(t)
	return b
}

// Configurator returns a snapshot of the pending edit queue. The
// snapshot can be handed to any API accepting a batch of pending
// edits without involving the Builder further.
func (b Builder[T]) Configurator() configure.Configurator[T] {
	return b.cfg
}

// Build invokes the factory exactly once and folds all queued edits,
// in order, over the produced value.
func (b Builder[T]) Build() T {
	return b.cfg.Configure(b.make())
}

// Apply invokes the factory exactly once, folds all queued edits over
// the produced value and discards the result.
//
// Apply is only meaningful when T has reference semantics, for
// example a pointer or map, since the edits are then visible through
// the shared reference. For plain value types the edits are lost,
// use [Builder.Build] instead.
func (b Builder[T]) Apply() {
	_ = b.Build()
}

// Reinforce materializes all pending edits by building now and
// returns a fresh [Builder] starting from the built value with t as
// its only queued edit. It acts as a checkpoint: use it when a later
// edit depends on the effects of the earlier ones having already
// happened.
func (b Builder[T]) Reinforce(t configure.Transform[T]) Builder[T] {
	nb := FromValue(b.Build())
	nb.logger = b.logger
	return nb.With(t)
}
