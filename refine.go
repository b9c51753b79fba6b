// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/2dChan/gotriangle/bitset"
	"github.com/2dChan/gotriangle/geom"
)

// EdgeSelector picks the edge of triangle t to refine across,
// identified by its neighbor slot, reporting ok=false when t needs no
// work. Two are provided: LargestAngleSelector and
// AnyObtuseAngleSelector.
type EdgeSelector func(m *Mesh, t int) (slot int, ok bool)

// LargestAngleSelector returns the edge opposite a triangle's largest
// angle, equivalently its longest edge by the law of cosines.
func LargestAngleSelector(m *Mesh, t int) (int, bool) {
	tri := &m.Triangles[t]
	best := 0
	var bestLen int64 = -1
	for k := 0; k < 3; k++ {
		a, b := tri.EdgeVertices(k)
		d := m.Points[a].Sub(m.Points[b])
		if l := geom.Dot(d, d); l > bestLen {
			bestLen, best = l, k
		}
	}
	return best, true
}

// AnyObtuseAngleSelector returns the edge opposite the triangle's
// obtuse angle, if it has one (a triangle has at most one).
func AnyObtuseAngleSelector(m *Mesh, t int) (int, bool) {
	tri := &m.Triangles[t]
	var sqr [3]int64
	for k := 0; k < 3; k++ {
		a, b := tri.EdgeVertices(k)
		d := m.Points[a].Sub(m.Points[b])
		sqr[k] = geom.Dot(d, d)
	}
	for k := 0; k < 3; k++ {
		if sqr[k] > sqr[(k+1)%3]+sqr[(k+2)%3] {
			return k, true
		}
	}
	return 0, false
}

// RefineWithCircumcenters improves mesh quality by repeatedly
// inserting the circumcenter of each triangle the selector flags:
// when the circumcenter lands strictly inside the neighbor across the
// chosen edge the pair splits into four triangles around it,
// otherwise the shared edge's midpoint serves as the hub; a boundary
// edge splits its lone triangle in two at the midpoint. Triangles
// whose doubled area is at most 2*minArea are left alone. After every
// insertion the affected triangles are re-flipped so the mesh stays
// locally Delaunay. The loop stops after 8 passes or once fewer than
// 25% of the triangles were split in the previous pass.
func RefineWithCircumcenters(m *Mesh, selector EdgeSelector, minArea uint64) {
	twoArea := minArea << 1
	unchecked := bitset.New(len(m.Triangles))
	var buf []int

	iter := 0
	splits := len(m.Triangles)
	for iter < 8 && 4*splits > len(m.Triangles) {
		splits = 0
		for t := 0; t < len(m.Triangles); t++ {
			slot, ok := selectEdgeForRefinement(m, t, twoArea, selector)
			if !ok {
				continue
			}
			for _, seed := range splitTriangle(m, t, slot) {
				fixTriangle(m, seed, unchecked)
			}
			for {
				buf = unchecked.Drain(buf[:0])
				if len(buf) == 0 {
					break
				}
				for _, seed := range buf {
					fixTriangle(m, seed, unchecked)
				}
			}
			splits++
		}
		iter++
	}
}

// selectEdgeForRefinement gates the selector on the triangle being
// big enough to be worth splitting.
func selectEdgeForRefinement(m *Mesh, t int, twoArea uint64, selector EdgeSelector) (int, bool) {
	v := m.Triangles[t].V
	area := geom.AreaTwo(m.Points[v[0]], m.Points[v[1]], m.Points[v[2]])
	if area < 0 {
		area = -area
	}
	if uint64(area) <= twoArea {
		return 0, false
	}
	return selector(m, t)
}

// splitTriangle splits t across the edge opposite slot and returns
// the indices of every triangle touched, for the follow-up flip pass.
func splitTriangle(m *Mesh, t, slot int) []int {
	u := m.Triangles[t].N[slot]
	if u == NIL {
		return splitOneIntoTwo(m, t, slot)
	}
	q := circumcenter(m, t)
	if !strictlyInsideTriangle(m, int(u), q) {
		a, b := m.Triangles[t].EdgeVertices(slot)
		q = edgeMidpoint(m.Points[a], m.Points[b])
	}
	return splitTwoIntoFour(m, t, slot, int(u), q)
}

// circumcenter computes triangle t's circumcenter in float64 and
// rounds it back to the integer grid; every predicate that later
// touches the result is still exact.
func circumcenter(m *Mesh, t int) Point {
	v := m.Triangles[t].V
	a, b, c := m.Points[v[0]], m.Points[v[1]], m.Points[v[2]]
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if scalar.EqualWithinAbs(d, 0, 1e-9) {
		return a
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	return Point{X: int32(math.Round(ux)), Y: int32(math.Round(uy))}
}

func edgeMidpoint(a, b Point) Point {
	return Point{
		X: int32((int64(a.X) + int64(b.X)) >> 1),
		Y: int32((int64(a.Y) + int64(b.Y)) >> 1),
	}
}

// strictlyInsideTriangle reports whether p lies inside triangle t
// with its borders excluded, so a hub on an edge never produces a
// zero-area sliver on the neighbor's side.
func strictlyInsideTriangle(m *Mesh, t int, p Point) bool {
	v := m.Triangles[t].V
	a, b, c := m.Points[v[0]], m.Points[v[1]], m.Points[v[2]]
	s1 := geom.AreaTwo(a, b, p)
	s2 := geom.AreaTwo(b, c, p)
	s3 := geom.AreaTwo(c, a, p)
	if s1 == 0 || s2 == 0 || s3 == 0 {
		return false
	}
	return (s1 < 0) == (s2 < 0) && (s2 < 0) == (s3 < 0)
}

// splitOneIntoTwo bisects the boundary edge opposite slot in triangle
// t, inserting a new point at its midpoint.
func splitOneIntoTwo(m *Mesh, t, slot int) []int {
	tri := &m.Triangles[t]
	c := tri.V[slot]
	a, b := tri.EdgeVertices(slot)
	nCA := tri.N[tri.SlotOf(c, a)]
	nCB := tri.N[tri.SlotOf(c, b)]

	q := edgeMidpoint(m.Points[a], m.Points[b])
	qIdx := uint32(len(m.Points))
	m.Points = append(m.Points, q)

	idxNew := len(m.Triangles)
	*tri = Triangle{
		V: [3]uint32{c, a, qIdx},
		N: [3]int32{NIL, int32(idxNew), nCA},
	}
	m.Triangles = append(m.Triangles, Triangle{
		V: [3]uint32{c, qIdx, b},
		N: [3]int32{NIL, nCB, int32(t)},
	})
	rewireBack(m, nCB, t, idxNew)
	return []int{t, idxNew}
}

// splitTwoIntoFour inserts q as the hub of the quad formed by t and u
// around the shared edge opposite slot in t, replacing both with four
// triangles: two reusing their indices plus two freshly appended.
func splitTwoIntoFour(m *Mesh, t, slot, u int, q Point) []int {
	tri := &m.Triangles[t]
	c := tri.V[slot]
	a, b := tri.EdgeVertices(slot)
	nCA := tri.N[tri.SlotOf(c, a)]
	nBC := tri.N[tri.SlotOf(b, c)]

	nb := &m.Triangles[u]
	pSlot := nb.SlotOf(a, b)
	p := nb.V[pSlot]
	qa := nb.N[nb.SlotOf(a, p)]
	qb := nb.N[nb.SlotOf(p, b)]

	qIdx := uint32(len(m.Points))
	m.Points = append(m.Points, q)

	idxAP := len(m.Triangles)
	idxBC := len(m.Triangles) + 1

	*tri = Triangle{V: [3]uint32{c, a, qIdx}, N: [3]int32{int32(idxAP), int32(idxBC), nCA}}
	*nb = Triangle{V: [3]uint32{p, b, qIdx}, N: [3]int32{int32(idxBC), int32(idxAP), qb}}
	m.Triangles = append(m.Triangles,
		Triangle{V: [3]uint32{a, p, qIdx}, N: [3]int32{int32(u), int32(t), qa}},
		Triangle{V: [3]uint32{b, c, qIdx}, N: [3]int32{int32(t), int32(u), nBC}},
	)

	rewireBack(m, nBC, t, idxBC)
	rewireBack(m, qa, u, idxAP)
	return []int{t, u, idxAP, idxBC}
}
