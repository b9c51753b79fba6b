// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "math/bits"

// IsFlipNotRequired implements the exact-integer Delaunay flip
// predicate. Triangles abc and pcb share edge bc and are
// both clockwise; p is the vertex opposite a across that edge. It
// returns true iff the local Delaunay condition already holds (no
// flip needed), i.e. iff the angle at p plus the angle at a, both
// looking at bc, sum to at most pi. Equivalently: p does not lie
// strictly inside the circumcircle of abc.
//
// The decision never uses floating point; the only place a 128-bit
// product is required is the mixed-sign branch, handled with
// math/bits.Mul64.
func IsFlipNotRequired(p, a, b, c Point) bool {
	cosA := Dot(b.Sub(p), c.Sub(p))
	cosB := Dot(b.Sub(a), c.Sub(a))

	if cosA < 0 && cosB < 0 {
		return false
	}
	if cosA >= 0 && cosB >= 0 {
		return true
	}

	sinA := abs64(Cross(b.Sub(p), c.Sub(p)))
	sinB := abs64(Cross(b.Sub(a), c.Sub(a)))

	if cosA < 0 {
		// A is obtuse, B is not: A+B<=pi  <=>  sinA*cosB >= |cosA|*sinB.
		return ge128(sinA, uint64(cosB), abs64(cosA), sinB)
	}
	// B is obtuse, A is not: A+B<=pi  <=>  sinB*cosA >= |cosB|*sinA.
	return ge128(sinB, uint64(cosA), abs64(cosB), sinA)
}

// abs64 returns |v| as a uint64; v may be math.MinInt64 only if the
// inputs overflow i32 widened products, which cannot happen here.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// ge128 reports whether a*b >= c*d, computed with full 128-bit
// unsigned products so no precision is lost for the largest i32
// inputs.
func ge128(a, b, c, d uint64) bool {
	hiL, loL := bits.Mul64(a, b)
	hiR, loR := bits.Mul64(c, d)
	if hiL != hiR {
		return hiL > hiR
	}
	return loL >= loR
}
