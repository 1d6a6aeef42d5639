// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slot provides optional callback fields for types which want
// to expose setter-like handler and data source hooks.
//
// A slot separates the "an external caller sets this" capability from
// the "the owner invokes this" capability. Owners declare a slot as a
// struct field, decide when to invoke it and surface the Set method
// to their callers:
//
//	type Table struct {
//	    OnSelect    slot.Handler[int]
//	    RowProvider slot.DataSource[int, Row]
//	}
//
// Invoking an empty slot is always safe and reports that no callback
// was registered. Slots are not safe for concurrent use.
package slot

// Handler holds an optional callback which consumes an input and
// produces no output. The zero value is an empty slot, ready for use.
type Handler[In any] struct {
	fn func(In)
}

// Set replaces any previously stored callback with fn.
// A nil fn clears the slot.
func (h *Handler[In]) Set(fn func(In)) {
	h.fn = fn
}

// Clear removes any stored callback.
func (h *Handler[In]) Clear() {
	h.fn = nil
}

// IsSet reports whether a callback is currently stored.
func (h *Handler[In]) IsSet() bool {
	return h.fn != nil
}

// Invoke calls the stored callback with in. It reports whether a
// callback was actually invoked, false means the slot was empty.
func (h *Handler[In]) Invoke(in In) bool {
	if h.fn == nil {
		return false
	}
	h.fn(in)
	return true
}

// DataSource holds an optional callback which produces an output
// from an input. The zero value is an empty slot, ready for use.
type DataSource[In, Out any] struct {
	fn func(In) Out
}

// Set replaces any previously stored callback with fn.
// A nil fn clears the slot.
func (ds *DataSource[In, Out]) Set(fn func(In) Out) {
	ds.fn = fn
}

// Clear removes any stored callback.
func (ds *DataSource[In, Out]) Clear() {
	ds.fn = nil
}

// IsSet reports whether a callback is currently stored.
func (ds *DataSource[In, Out]) IsSet() bool {
	return ds.fn != nil
}

// Invoke calls the stored callback with in and returns its result.
// If the slot is empty it returns the zero value for Out and false.
func (ds *DataSource[In, Out]) Invoke(in In) (Out, bool) {
	if ds.fn == nil {
		var zero Out
		return zero, false
	}
	return ds.fn(in), true
}
