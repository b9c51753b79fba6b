// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package earcut

import (
	"testing"

	"github.com/2dChan/gotriangle/geom"
	"github.com/2dChan/gotriangle/utils"
)

func pt(x, y int32) geom.Point { return geom.Point{X: x, Y: y} }

func totalAreaTwo(points []geom.Point, tris []uint32) int64 {
	var sum int64
	for i := 0; i+2 < len(tris); i += 3 {
		sum += geom.AreaTwo(points[tris[i]], points[tris[i+1]], points[tris[i+2]])
	}
	return sum
}

func TestTriangulateTriangle(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(0, 4)}
	tris, ok := Triangulate(pts, nil)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tris) != 3 {
		t.Fatalf("expected 1 triangle, got %d indices", len(tris))
	}
}

func TestTriangulateConvexHexagonAreaConserved(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(2, -1), pt(4, 0), pt(4, 3), pt(2, 4), pt(0, 3)}
	want := geom.AreaTwo(pts[0], pts[1], pts[2]) +
		geom.AreaTwo(pts[0], pts[2], pts[3]) +
		geom.AreaTwo(pts[0], pts[3], pts[4]) +
		geom.AreaTwo(pts[0], pts[4], pts[5])

	tris, ok := Triangulate(pts, nil)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tris) != 4*3 {
		t.Fatalf("expected 4 triangles, got %d indices", len(tris))
	}
	if got := totalAreaTwo(pts, tris); got != want {
		t.Fatalf("area not conserved: got %d want %d", got, want)
	}
}

func TestTriangulateReflexPolygon(t *testing.T) {
	// An arrow-shaped pentagon with one reflex vertex at index 4.
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(2, 2)}
	want := geom.AreaTwo(pts[0], pts[1], pts[2]) +
		geom.AreaTwo(pts[0], pts[2], pts[3]) +
		geom.AreaTwo(pts[0], pts[3], pts[4])

	tris, ok := Triangulate(pts, nil)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tris) != 9 {
		t.Fatalf("expected 3 triangles, got %d indices", len(tris))
	}
	if got := totalAreaTwo(pts, tris); got != want {
		t.Fatalf("area not conserved: got %d want %d", got, want)
	}
}

// TestTriangulateLShape ears a 6-vertex L-shaped contour: exactly 4
// triangles, all counter-clockwise, area conserved.
func TestTriangulateLShape(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(10, 0), pt(10, 5), pt(5, 5), pt(5, 10), pt(0, 10)}

	tris, ok := Triangulate(pts, nil)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tris) != 4*3 {
		t.Fatalf("expected 4 triangles, got %d indices", len(tris))
	}
	for i := 0; i+2 < len(tris); i += 3 {
		if geom.AreaTwo(pts[tris[i]], pts[tris[i+1]], pts[tris[i+2]]) <= 0 {
			t.Fatalf("triangle (%d,%d,%d) is not counter-clockwise", tris[i], tris[i+1], tris[i+2])
		}
	}
	if got := totalAreaTwo(pts, tris); got != 150 {
		t.Fatalf("area not conserved: got %d want 150", got)
	}
}

// TestTriangulateStar ears a 7-vertex star with two reflex notches.
func TestTriangulateStar(t *testing.T) {
	pts := []geom.Point{
		pt(0, -5), pt(-10, -15), pt(10, -5), pt(5, 0), pt(10, 5), pt(-10, 15), pt(0, 5),
	}

	tris, ok := Triangulate(pts, nil)
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tris) != 5*3 {
		t.Fatalf("expected 5 triangles, got %d indices", len(tris))
	}
	if got := totalAreaTwo(pts, tris); got != 350 {
		t.Fatalf("area not conserved: got %d want 350", got)
	}
}

// TestTriangulateRandomPolygons ears random simple contours: the ear
// clipping must always succeed, emit exactly n-2 triangles and tile
// the input area exactly.
func TestTriangulateRandomPolygons(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		pts := utils.GenerateRandomPolygon(40, seed, 100000)

		tris, ok := Triangulate(pts, nil)
		if !ok {
			t.Fatalf("seed %d: expected ok on a simple contour", seed)
		}
		if len(tris) != (len(pts)-2)*3 {
			t.Fatalf("seed %d: got %d indices, want %d", seed, len(tris), (len(pts)-2)*3)
		}
		var want int64
		for i := range pts {
			want += geom.Cross(pts[i], pts[(i+1)%len(pts)])
		}
		if got := totalAreaTwo(pts, tris); got != want {
			t.Fatalf("seed %d: area not conserved: got %d want %d", seed, got, want)
		}
	}
}

func TestTriangulateTooLarge(t *testing.T) {
	pts := make([]geom.Point, MaxVertices)
	for i := range pts {
		pts[i] = pt(int32(i), int32(i))
	}
	if _, ok := Triangulate(pts, nil); ok {
		t.Fatal("expected false for n >= MaxVertices")
	}
}

func TestTriangulateTooSmall(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(1, 0)}
	if _, ok := Triangulate(pts, nil); ok {
		t.Fatal("expected false for n < 3")
	}
}
