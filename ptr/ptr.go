// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ptr provides helpers for working with references of values,
// most notably as the optional values consumed and produced by lifted
// paths.
package ptr

// Ref returns a reference of the given value.
func Ref[T any](t T) *T {
	return &t
}

// Deref returns either the zero value for type T or the
// dereferenced value of t.
func Deref[T any](t *T) T {
	var zero T
	if t == nil {
		return zero
	}
	return *t
}

// Or returns t if it is non-nil, otherwise a reference to the zero
// value for type T. Writing through an optional lifted path is a
// no-op on a nil container, Or makes explicitly initializing the
// container first a one-liner.
func Or[T any](t *T) *T {
	if t != nil {
		return t
	}
	return new(T)
}
