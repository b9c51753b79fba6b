// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

// Sign is the result of an exact orientation comparison.
type Sign int

const (
	Less    Sign = -1
	Equal   Sign = 0
	Greater Sign = 1
)

// Cross returns the z-component of u x v, widened to i64 so the
// product never overflows for i32 inputs.
func Cross(u, v Point) int64 {
	return int64(u.X)*int64(v.Y) - int64(u.Y)*int64(v.X)
}

// Dot returns u . v, widened to i64.
func Dot(u, v Point) int64 {
	return int64(u.X)*int64(v.X) + int64(u.Y)*int64(v.Y)
}

// AreaTwo returns the signed double area of triangle (a, b, c).
// Negative for clockwise, positive for counter-clockwise, zero for
// collinear.
func AreaTwo(a, b, c Point) int64 {
	return Cross(b.Sub(a), c.Sub(a))
}

// IsClockwise reports whether (a, b, c) turns clockwise.
func IsClockwise(a, b, c Point) bool {
	return AreaTwo(a, b, c) < 0
}

// SignOf converts a widened cross/area product to a Sign.
func SignOf(v int64) Sign {
	switch {
	case v < 0:
		return Less
	case v > 0:
		return Greater
	default:
		return Equal
	}
}

// ClockOrder returns the sign of the turn from a to b as seen from the
// shared point c: Greater if b lies counter-clockwise of a (less than
// a half turn away), Less if b lies clockwise of a, Equal if a, b and
// c are collinear. It is used as
// the primary comparator when sorting directions around a shared
// vertex (monotone.sortVertexGroup) and as the section-vs-point
// comparator (VSegment.CompareToPoint).
func ClockOrder(c, a, b Point) Sign {
	return SignOf(Cross(a.Sub(c), b.Sub(c)))
}
