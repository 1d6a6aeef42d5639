// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/construct"
	"github.com/z5labs/construct/path"
	"github.com/z5labs/construct/ptr"
)

type Point struct {
	X int
	Y int
}

type Shape struct {
	Name   string
	Origin *Point
}

var shapeName = path.New(
	func(s Shape) string { return s.Name },
	func(s Shape, v string) Shape {
		s.Name = v
		return s
	},
)

var shapeOrigin = path.New(
	func(s Shape) *Point { return s.Origin },
	func(s Shape, p *Point) Shape {
		s.Origin = p
		return s
	},
)

var pointX = path.New(
	func(p Point) int { return p.X },
	func(p Point, v int) Point {
		p.X = v
		return p
	},
)

func main() {
	b := construct.FromValue(Shape{Origin: &Point{Y: 1}})
	b = construct.At(b, shapeName).Set("square")
	b = construct.IntoLifted(construct.At(b, shapeOrigin), pointX).Set(ptr.Ref(5))

	shape := b.Build()
	fmt.Printf("%s at (%d, %d)\n", shape.Name, shape.Origin.X, shape.Origin.Y)
}
