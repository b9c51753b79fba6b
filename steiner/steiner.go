// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package steiner assigns a flat list of interior points to the
// unique shape (polygon, possibly with holes) whose boundary contains
// each one, by sweeping in x order over the shapes' oriented edges.
package steiner

import (
	"sort"

	"github.com/2dChan/gotriangle/geom"
	"github.com/2dChan/gotriangle/monotone"
)

// taggedSegment is one oriented polygon edge, canonicalized a.X<=b.X
// by monotone.VSegment, tagged with its owning shape and whether the
// region directly above it is that shape's interior.
type taggedSegment struct {
	key     monotone.VSegment
	shape   int
	upperIn bool
}

// Classify partitions points into the group of shapes they lie
// inside. shapes[i] is a sequence of rings (outer CCW, holes CW); the
// returned slice has one entry per shape, in the same order, holding
// the points found inside that shape. A point inside no shape is
// dropped rather than reported.
func Classify(shapes [][][]geom.Point, points []geom.Point) [][]geom.Point {
	out := make([][]geom.Point, len(shapes))
	if len(points) == 0 {
		return out
	}

	segs := buildSegments(shapes)
	sort.Slice(segs, func(i, j int) bool { return segs[i].key.A.Less(segs[j].key.A) })

	sorted := append([]geom.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	active := make([]taggedSegment, 0, len(segs))
	si := 0
	for _, p := range sorted {
		for si < len(segs) && !p.Less(segs[si].key.A) {
			active = append(active, segs[si])
			si++
		}
		active = expire(active, p)

		if best, ok := firstStrictlyBelow(active, p); ok && best.upperIn {
			out[best.shape] = append(out[best.shape], p)
		}
	}
	return out
}

// buildSegments flattens every ring of every shape into canonical
// segments, skipping vertical edges (a.x == b.x contribute nothing to
// an x-sweep classifier).
func buildSegments(shapes [][][]geom.Point) []taggedSegment {
	var segs []taggedSegment
	for shapeIdx, rings := range shapes {
		for _, ring := range rings {
			n := len(ring)
			for i := 0; i < n; i++ {
				a, b := ring[i], ring[(i+1)%n]
				if a.X == b.X {
					continue
				}
				// A CCW-walked ring has its interior above an edge
				// walked left to right; a hole's CW winding inverts
				// the same rule, which the a<b swap below accounts
				// for automatically since upperIn is recorded before
				// canonicalizing the endpoint order.
				segs = append(segs, taggedSegment{
					key:     monotone.NewVSegment(a, b),
					shape:   shapeIdx,
					upperIn: a.X < b.X,
				})
			}
		}
	}
	return segs
}

// expire drops every active segment whose right endpoint lies at or
// before p in sweep order, compacting the slice in place.
func expire(active []taggedSegment, p geom.Point) []taggedSegment {
	out := active[:0]
	for _, s := range active {
		if !p.Less(s.key.B) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// firstStrictlyBelow returns the active segment that is strictly
// below p and closest to it: a segment qualifies when
// CompareToPoint(p) == Less, and among those the one ranked greatest
// by Compare is nearest to p.
func firstStrictlyBelow(active []taggedSegment, p geom.Point) (taggedSegment, bool) {
	found := false
	var best taggedSegment
	for _, s := range active {
		if s.key.CompareToPoint(p) != geom.Less {
			continue
		}
		if !found || s.key.Compare(best.key) == geom.Greater {
			best = s
			found = true
		}
	}
	return best, found
}
