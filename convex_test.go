// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import (
	"testing"

	"github.com/2dChan/gotriangle/utils"
)

func polygonAreaTwo(poly Polygon) int64 {
	var sum int64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += int64(poly[i].X)*int64(poly[j].Y) - int64(poly[j].X)*int64(poly[i].Y)
	}
	return sum
}

// TestToConvexPolygonsMergesSquareHalves builds a 10x10 square split
// into two triangles along one diagonal and checks the grouper merges
// them back into a single convex quad.
func TestToConvexPolygonsMergesSquareHalves(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0},   // 0
		{X: 10, Y: 0},  // 1
		{X: 10, Y: 10}, // 2
		{X: 0, Y: 10},  // 3
	}
	m := &Mesh{
		Points: pts,
		Triangles: []Triangle{
			{V: [3]uint32{0, 2, 1}, N: [3]int32{NIL, NIL, 1}},
			{V: [3]uint32{0, 3, 2}, N: [3]int32{NIL, 0, NIL}},
		},
	}

	polys := ToConvexPolygons(m)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	poly := polys[0]
	if len(poly) != 4 {
		t.Fatalf("got %d vertices, want 4 (collinear diagonal endpoints should not survive as extra points)", len(poly))
	}

	area := polygonAreaTwo(poly)
	if area < 0 {
		area = -area
	}
	if area != 200 {
		t.Fatalf("polygon doubled area = %d, want 200", area)
	}
}

// TestConvexRoundTripAreaConserved triangulates a diamond with an
// interior point, refines to Delaunay, groups into convex polygons
// and checks the polygons still tile the input exactly.
func TestConvexRoundTripAreaConserved(t *testing.T) {
	m := diamondWithCenter(t)

	polys := ToConvexPolygons(m)
	if len(polys) == 0 {
		t.Fatal("no polygons emitted")
	}
	var total int64
	for i, poly := range polys {
		a := polygonAreaTwo(poly)
		if a <= 0 {
			t.Fatalf("polygon %d is not counter-clockwise (area2 = %d)", i, a)
		}
		total += a
	}
	if total != 400 {
		t.Fatalf("grouped polygons cover area2 = %d, want 400", total)
	}
}

// TestToConvexPolygonsRandomRoundTrip runs the full pipeline over
// random polygons with interior Steiner points: triangulate, flip to
// Delaunay, group into convex polygons, and check the groups still
// tile the input area exactly.
func TestToConvexPolygonsRandomRoundTrip(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		contour := utils.GenerateRandomPolygon(80, seed, 100000)
		// Steiner points stay well inside the polygon's inradius; a
		// coordinate collision would merge two of them, so duplicates
		// are filtered.
		steiner := dedupePoints(utils.GenerateRandomSteinerPoints(12, seed+1, 20000))

		m, err := Triangulate([][]Point{contour}, steiner)
		if err != nil {
			t.Fatalf("seed %d: Triangulate: %v", seed, err)
		}
		IntoDelaunay(m)

		want := abs64(polygonAreaTwo(contour))
		var total int64
		for i, poly := range ToConvexPolygons(m) {
			a := polygonAreaTwo(poly)
			if a <= 0 {
				t.Fatalf("seed %d: polygon %d is not counter-clockwise (area2 = %d)", seed, i, a)
			}
			total += a
		}
		if total != want {
			t.Fatalf("seed %d: grouped polygons cover area2 = %d, want %d", seed, total, want)
		}
	}
}

func dedupePoints(points []Point) []Point {
	seen := make(map[Point]bool, len(points))
	out := points[:0:0]
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
