// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import "github.com/2dChan/gotriangle/geom"

// VSegment is a section's sort key: an oriented edge (A, B) with
// A sorting before B, canonicalized at construction.
type VSegment struct {
	A, B geom.Point
}

// NewVSegment canonicalizes (a, b) so A sorts before B.
func NewVSegment(a, b geom.Point) VSegment {
	if b.Less(a) {
		return VSegment{A: b, B: a}
	}
	return VSegment{A: a, B: b}
}

// CompareToPoint orders a point against the segment: Greater when p
// lies below the segment's line, Less when above, Equal when p lies
// exactly on it. Only meaningful while the sweep line is inside the
// segment's x-range, which holds for every live section.
func (s VSegment) CompareToPoint(p geom.Point) geom.Sign {
	return geom.ClockOrder(s.A, p, s.B)
}

// Compare orders two sections by vertical position. The three cases
// pivot on whichever right endpoint comes first in sweep order, so a
// pair of touching segments (common around Split and Merge vertices)
// is still classified by an exact orientation test instead of a
// degenerate zero-length probe. Less means s runs under other.
func (s VSegment) Compare(other VSegment) geom.Sign {
	switch {
	case s.B.Less(other.B):
		return geom.ClockOrder(s.B, other.A, other.B)
	case other.B.Less(s.B):
		return geom.ClockOrder(other.B, s.B, s.A)
	default:
		return geom.ClockOrder(s.B, s.A, other.A)
	}
}
