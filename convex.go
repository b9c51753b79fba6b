// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import "github.com/2dChan/gotriangle/geom"

// Polygon is an ordered, counter-clockwise ring of points.
type Polygon []Point

// edgeCandidate is an interior mesh edge offered for expansion: the
// neighbor triangle across it, and the edge's two endpoints in the
// orientation they currently hold on the growing boundary.
type edgeCandidate struct {
	tri  int
	a, b uint32
}

// ToConvexPolygons greedily merges a Delaunay-refined mesh's
// triangles into maximal convex polygons. Each output ring is wound
// counter-clockwise.
func ToConvexPolygons(m *Mesh) []Polygon {
	visited := make([]bool, len(m.Triangles))
	var polys []Polygon

	for t0 := range m.Triangles {
		if visited[t0] {
			continue
		}
		visited[t0] = true
		boundary := seedBoundary(m, t0)

		var stack []edgeCandidate
		stack = pushTriangleEdges(m, t0, stack)

		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if e.tri < 0 || visited[e.tri] {
				continue
			}
			pos := indexOfPair(boundary, e.a, e.b)
			if pos < 0 {
				continue
			}
			nb := &m.Triangles[e.tri]
			pSlot := nb.SlotOf(e.a, e.b)
			p := nb.V[pSlot]

			n := len(boundary)
			prevA := boundary[(pos-1+n)%n]
			nextB := boundary[(pos+2)%n]
			if !canAppend(m.Points, prevA, e.a, p, e.b, nextB) {
				continue
			}

			boundary = spliceAfter(boundary, pos, p)
			visited[e.tri] = true
			stack = pushTriangleEdgesExcluding(m, e.tri, e.a, e.b, stack)
		}

		polys = append(polys, simplifyRing(m.Points, reversed(boundary)))
	}
	return polys
}

func seedBoundary(m *Mesh, t int) []uint32 {
	v := m.Triangles[t].V
	return []uint32{v[0], v[1], v[2]}
}

// pushTriangleEdges pushes all three interior edges of t, in t's own
// clockwise vertex order, as candidates for expansion.
func pushTriangleEdges(m *Mesh, t int, stack []edgeCandidate) []edgeCandidate {
	tri := &m.Triangles[t]
	for k := 0; k < 3; k++ {
		u := tri.N[k]
		if u == NIL {
			continue
		}
		a, b := tri.EdgeVertices(k)
		stack = append(stack, edgeCandidate{tri: int(u), a: a, b: b})
	}
	return stack
}

// pushTriangleEdgesExcluding is pushTriangleEdges but skips the edge
// (a, b) just consumed to absorb t into the boundary.
func pushTriangleEdgesExcluding(m *Mesh, t int, a, b uint32, stack []edgeCandidate) []edgeCandidate {
	tri := &m.Triangles[t]
	for k := 0; k < 3; k++ {
		u := tri.N[k]
		if u == NIL {
			continue
		}
		ea, eb := tri.EdgeVertices(k)
		if (ea == a && eb == b) || (ea == b && eb == a) {
			continue
		}
		stack = append(stack, edgeCandidate{tri: int(u), a: ea, b: eb})
	}
	return stack
}

// indexOfPair returns i such that boundary[i] == a and the following
// (cyclic) entry == b, or -1 if no such consecutive pair exists (the
// edge has already been absorbed from a different direction).
func indexOfPair(boundary []uint32, a, b uint32) int {
	n := len(boundary)
	for i, v := range boundary {
		if v == a && boundary[(i+1)%n] == b {
			return i
		}
	}
	return -1
}

// canAppend reports whether splicing p between a and b keeps the
// boundary convex at both junctions: prevA->a->p and p->b->nextB must
// both still turn clockwise (the boundary's stored orientation).
func canAppend(points []Point, prevA, a, p, b, nextB uint32) bool {
	return geom.IsClockwise(points[prevA], points[a], points[p]) &&
		geom.IsClockwise(points[p], points[b], points[nextB])
}

// spliceAfter inserts v immediately after position pos.
func spliceAfter(boundary []uint32, pos int, v uint32) []uint32 {
	out := make([]uint32, 0, len(boundary)+1)
	out = append(out, boundary[:pos+1]...)
	out = append(out, v)
	out = append(out, boundary[pos+1:]...)
	return out
}

func reversed(v []uint32) []uint32 {
	out := make([]uint32, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

// simplifyRing converts an index ring to points, dropping collinear
// consecutive vertices.
func simplifyRing(points []Point, ring []uint32) Polygon {
	n := len(ring)
	out := make(Polygon, 0, n)
	for i, idx := range ring {
		prev := points[ring[(i-1+n)%n]]
		cur := points[idx]
		next := points[ring[(i+1)%n]]
		if geom.AreaTwo(prev, cur, next) == 0 {
			continue
		}
		out = append(out, cur)
	}
	return out
}
