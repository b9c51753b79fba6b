// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import "github.com/2dChan/gotriangle/geom"

// EdgeKind distinguishes the three ways a horizon edge can link.
type EdgeKind int

const (
	// Border is a polygon boundary edge: no triangle lies on its far
	// side, so crossing it wires nothing.
	Border EdgeKind = iota
	// Regular is a real edge of an already-emitted triangle; crossing
	// it wires the new triangle and Triangle as neighbors.
	Regular
	// Phantom is a deferred link across a split: crossing it consults
	// the PhantomEdgePool at Slot.
	Phantom
)

// TriangleEdge is one edge of a section's visible horizon. Edges form
// a path: each edge's B coincides with the following edge's A, and
// the path runs from the section's upper end down to its lower end.
type TriangleEdge struct {
	A, B       geom.Point
	AIdx, BIdx uint32
	Kind       EdgeKind
	Triangle   int // valid when Kind == Regular
	Slot       int // valid when Kind == Phantom
}

func borderEdge(a, b geom.Point, aIdx, bIdx uint32) TriangleEdge {
	return TriangleEdge{A: a, B: b, AIdx: aIdx, BIdx: bIdx, Kind: Border}
}

func regularEdge(a, b geom.Point, aIdx, bIdx uint32, triangle int) TriangleEdge {
	return TriangleEdge{A: a, B: b, AIdx: aIdx, BIdx: bIdx, Kind: Regular, Triangle: triangle}
}

func phantomEdge(a, b geom.Point, aIdx, bIdx uint32, slot int) TriangleEdge {
	return TriangleEdge{A: a, B: b, AIdx: aIdx, BIdx: bIdx, Kind: Phantom, Slot: slot}
}

// Content is a section's live horizon: either a single point (the
// region has only one vertex so far) or the ordered edge path new
// vertices fan across.
type Content struct {
	// Point is meaningful only while HasPoint is set; Edges is empty
	// in that state.
	Point    geom.Point
	PointIdx uint32
	HasPoint bool
	Edges    []TriangleEdge
}

func pointContent(p geom.Point, idx uint32) Content {
	return Content{Point: p, PointIdx: idx, HasPoint: true}
}

func edgeContent(edges []TriangleEdge) Content {
	return Content{Edges: edges}
}

// Section is the live bottom boundary of a currently-open monotone
// region during the sweep, keyed by its bottom segment.
type Section struct {
	Key     VSegment
	Content Content
}
