// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import "github.com/2dChan/gotriangle/geom"

// CentroidNet builds, for every mesh vertex, a polygon alternating
// the centroids and edge midpoints of the triangles incident on it.
// Polygons whose doubled area (absolute value) falls below 2*minArea
// are dropped.
func CentroidNet(m *Mesh, minArea float64) []FloatPolygon {
	var out []FloatPolygon
	for v := range m.Points {
		fan, closed := vertexFan(m, uint32(v))
		if len(fan) == 0 {
			continue
		}
		poly := buildNetPolygon(m, uint32(v), fan, closed)
		if len(poly) < 3 {
			continue
		}
		if area2(poly) < 2*minArea {
			continue
		}
		out = append(out, poly)
	}
	return out
}

// vertexFan returns the triangles incident on vertex v, ordered by
// rotating around v, and whether the fan closes on itself (v is an
// interior vertex) or terminates at the mesh boundary on both ends.
func vertexFan(m *Mesh, v uint32) (fan []int, closed bool) {
	start := -1
	for t := range m.Triangles {
		if slotOfVertex(&m.Triangles[t], v) >= 0 {
			start = t
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	fan = append(fan, start)
	t := start
	for {
		s := slotOfVertex(&m.Triangles[t], v)
		next := m.Triangles[t].N[(s+1)%3]
		if next == NIL {
			break
		}
		if int(next) == start {
			return fan, true
		}
		fan = append(fan, int(next))
		t = int(next)
	}

	// Hit a boundary walking forward; walk backward from start to
	// collect the other half, then reverse it in front.
	var back []int
	t = start
	for {
		s := slotOfVertex(&m.Triangles[t], v)
		prev := m.Triangles[t].N[(s+2)%3]
		if prev == NIL || int(prev) == start {
			break
		}
		back = append(back, int(prev))
		t = int(prev)
	}
	full := make([]int, 0, len(back)+len(fan))
	for i := len(back) - 1; i >= 0; i-- {
		full = append(full, back[i])
	}
	full = append(full, fan...)
	return full, false
}

func slotOfVertex(t *Triangle, v uint32) int {
	for k := 0; k < 3; k++ {
		if t.V[k] == v {
			return k
		}
	}
	return -1
}

// buildNetPolygon alternates each fan triangle's centroid with the
// midpoint of the edge it shares (through v) with the next triangle.
// For an open (boundary) fan, v itself closes the two loose ends.
func buildNetPolygon(m *Mesh, v uint32, fan []int, closed bool) FloatPolygon {
	var poly FloatPolygon
	n := len(fan)
	limit := n
	if !closed {
		limit = n - 1
	}
	for i := 0; i < n; i++ {
		poly = append(poly, centroidOf(m, fan[i]))
		if i < limit || closed {
			nextTri := fan[(i+1)%n]
			shared := sharedOtherVertex(m, fan[i], nextTri, v)
			if shared < 0 {
				continue
			}
			poly = append(poly, midpoint(m.Points[v], m.Points[uint32(shared)]))
		}
	}
	if !closed {
		vf := FloatPoint{X: float64(m.Points[v].X), Y: float64(m.Points[v].Y)}
		poly = append(poly, vf)
	}
	return poly
}

// sharedOtherVertex returns the vertex, other than v, shared by both
// ta and tb (the edge the fan rotation crossed between them).
func sharedOtherVertex(m *Mesh, ta, tb int, v uint32) int {
	a := &m.Triangles[ta]
	b := &m.Triangles[tb]
	for k := 0; k < 3; k++ {
		if a.V[k] == v {
			continue
		}
		for j := 0; j < 3; j++ {
			if b.V[j] == a.V[k] {
				return int(a.V[k])
			}
		}
	}
	return -1
}

func centroidOf(m *Mesh, t int) FloatPoint {
	v := m.Triangles[t].V
	p0, p1, p2 := m.Points[v[0]], m.Points[v[1]], m.Points[v[2]]
	return FloatPoint{
		X: (float64(p0.X) + float64(p1.X) + float64(p2.X)) / 3,
		Y: (float64(p0.Y) + float64(p1.Y) + float64(p2.Y)) / 3,
	}
}

func midpoint(a, b geom.Point) FloatPoint {
	return FloatPoint{X: (float64(a.X) + float64(b.X)) / 2, Y: (float64(a.Y) + float64(b.Y)) / 2}
}

// area2 returns the doubled absolute area of a float polygon via the
// shoelace formula.
func area2(poly FloatPolygon) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}
