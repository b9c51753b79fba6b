// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the exact-integer primitives the triangulation
// core is built on: vectors, cross/dot products, orientation tests and
// the Delaunay flip predicate.
package geom

import "fmt"

// Point is an integer 2D vector. All triangulation geometry is carried
// out in these coordinates; intermediate products are widened to i64
// (or i128 for the flip predicate) so every predicate is exact.
type Point struct {
	X, Y int32
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less reports whether p sorts strictly before q under the
// lexicographic (x, then y) order used throughout the sweep.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// IndexedPoint is a point together with its deduplicated vertex index.
// Within one triangulation, index -> point is a function: two
// ChainVertex entries sharing the same coordinate share the same
// Index.
type IndexedPoint struct {
	Index uint32
	Point Point
}

func (p IndexedPoint) String() string {
	return fmt.Sprintf("#%d(%d,%d)", p.Index, p.Point.X, p.Point.Y)
}
