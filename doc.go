// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package construct provides declarative, composable helpers for building values.
//
// The module is built around three core abstractions:
//
//   - Builder[T]: An immutable pairing of a value factory with a queue of pending edits
//   - path.Path[C, V]: A composable, bidirectional accessor between a container and one of its fields
//   - configure.Configurator[T]: An ordered queue of deferred in-place modifications
//
// # Fluent Building
//
// Bind fields to a builder via paths and chain edits, nothing runs
// until Build:
//
//	var x = path.New(
//	    func(p Point) int { return p.X },
//	    func(p Point, v int) Point { p.X = v; return p },
//	)
//
// with y defined likewise:
//
//	b := construct.FromValue(Point{})
//	b = construct.At(b, x).Set(5)
//	b = construct.At(b, y).Set(10)
//	p := b.Build()
//
// Builders are values: keeping a reference to an intermediate builder
// and extending it twice yields two independent chains which share
// their prefix edits but never leak edits between each other.
//
// # Deferred Edits Without a Builder
//
// Types which want to accept a batch of pending edits directly can
// take a [configure.Configurator] and apply it themselves:
//
//	cfg := configure.New[Server]().
//	    Append(func(s *Server) { s.Port = 8080 }).
//	    Append(func(s *Server) { s.Addr = "0.0.0.0" })
//	srv := cfg.Configure(Server{})
//
// The configure/source package turns external representations, like
// YAML documents or environment variables, into such batches.
//
// # Callback Slots
//
// The slot package provides optional callback fields, separating the
// "external callers set this" capability from the "the owner invokes
// this" capability. See the slot package documentation for details.
package construct
