// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh defines the triangle-adjacency model shared by the
// monotone sweep, the earcut fast path and the post-triangulation
// passes (Delaunay refine, convex grouping, centroid net,
// circumcenter refinement).
package mesh

import "github.com/2dChan/gotriangle/geom"

// NIL marks a missing neighbor (a boundary edge).
const NIL = -1

// Triangle holds three indexed vertices in clockwise order plus the
// three neighbor triangle indices. Neighbor n[k] shares the edge
// opposite vertex v[k], i.e. the edge v[(k+1)%3]-v[(k+2)%3].
type Triangle struct {
	V [3]uint32
	N [3]int32
}

// Opposite returns the index of the vertex opposite neighbor slot k,
// i.e. V[k].
func (t *Triangle) Opposite(k int) uint32 {
	return t.V[k]
}

// EdgeVertices returns the two vertex indices of the edge opposite
// slot k, in (a, b) order matching n[k]'s convention: v[(k+1)%3],
// v[(k+2)%3].
func (t *Triangle) EdgeVertices(k int) (uint32, uint32) {
	return t.V[(k+1)%3], t.V[(k+2)%3]
}

// SlotOf returns the neighbor slot (0, 1 or 2) whose edge is
// (a, b) in either order. It panics if neither edge matches -- the
// caller is expected to already know a and b are two of the
// triangle's three vertices.
func (t *Triangle) SlotOf(a, b uint32) int {
	for k := 0; k < 3; k++ {
		x, y := t.EdgeVertices(k)
		if (x == a && y == b) || (x == b && y == a) {
			return k
		}
	}
	panic("mesh: SlotOf: edge not part of triangle")
}

// Mesh is a raw triangulation: a flat vector of adjacency-carrying
// triangles plus the deduplicated point vector they index into.
type Mesh struct {
	Triangles []Triangle
	Points    []geom.Point
}

// AreaTwo returns the signed double area of the whole mesh: the sum
// of each triangle's signed double area. Triangles are stored
// clockwise, so for a mesh produced by the triangulator this is the
// input polygon's signed double area with its sign flipped (-200 for
// a counter-clockwise 10x10 square).
func (m *Mesh) AreaTwo() int64 {
	var sum int64
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		a := m.Points[tri.V[0]]
		b := m.Points[tri.V[1]]
		c := m.Points[tri.V[2]]
		sum += geom.AreaTwo(a, b, c)
	}
	return sum
}

// Shift renumbers every point index and every triangle/neighbor
// index by the given offsets. It is used to concatenate meshes
// produced from disjoint input shapes into a single Mesh.
func (m *Mesh) Shift(pointOffset uint32, triangleOffset int32) {
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		for k := 0; k < 3; k++ {
			tri.V[k] += pointOffset
			if tri.N[k] != NIL {
				tri.N[k] += triangleOffset
			}
		}
	}
}

// Append concatenates other onto m, shifting other's indices so they
// land past m's existing points/triangles.
func (m *Mesh) Append(other *Mesh) {
	pointOffset := uint32(len(m.Points))
	triangleOffset := int32(len(m.Triangles))
	other.Shift(pointOffset, triangleOffset)
	m.Points = append(m.Points, other.Points...)
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// CheckAdjacencySymmetry verifies adjacency symmetry: for every
// triangle t with neighbor n[i] = u (u != NIL), exactly one of
// u.n[0..2] equals t. It is intended for tests and debug assertions,
// not the hot path.
func (m *Mesh) CheckAdjacencySymmetry() error {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		for k := 0; k < 3; k++ {
			u := t.N[k]
			if u == NIL {
				continue
			}
			other := &m.Triangles[u]
			count := 0
			for j := 0; j < 3; j++ {
				if other.N[j] == int32(i) {
					count++
				}
			}
			if count != 1 {
				return &AdjacencyError{Triangle: i, Neighbor: int(u), Slot: k, Count: count}
			}
		}
	}
	return nil
}

// AdjacencyError reports a broken adjacency-symmetry invariant; it
// indicates a bug in the triangulator or refine pass, not a malformed
// input.
type AdjacencyError struct {
	Triangle, Neighbor, Slot, Count int
}

func (e *AdjacencyError) Error() string {
	return "mesh: adjacency symmetry violated between triangles"
}
