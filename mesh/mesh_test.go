// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/2dChan/gotriangle/geom"
)

func squareMesh() *Mesh {
	// (0,0) (10,0) (10,10) (0,10), split along the (0,0)-(10,10) diagonal.
	return &Mesh{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Triangles: []Triangle{
			// The shared diagonal (0,2) is opposite vertex 1 in the
			// first triangle and opposite vertex 3 in the second.
			{V: [3]uint32{0, 2, 1}, N: [3]int32{NIL, NIL, 1}},
			{V: [3]uint32{0, 3, 2}, N: [3]int32{NIL, 0, NIL}},
		},
	}
}

func TestMesh_AreaTwo(t *testing.T) {
	m := squareMesh()
	if got, want := m.AreaTwo(), int64(-200); got != want {
		t.Errorf("AreaTwo() = %v, want %v", got, want)
	}
}

func TestMesh_CheckAdjacencySymmetry(t *testing.T) {
	m := squareMesh()
	if err := m.CheckAdjacencySymmetry(); err != nil {
		t.Errorf("CheckAdjacencySymmetry() = %v, want nil", err)
	}

	m.Triangles[1].N[1] = NIL
	if err := m.CheckAdjacencySymmetry(); err == nil {
		t.Errorf("CheckAdjacencySymmetry() = nil, want error after breaking symmetry")
	}
}

func TestMesh_Shift(t *testing.T) {
	m := squareMesh()
	m.Shift(5, 10)
	want := Triangle{V: [3]uint32{5, 7, 6}, N: [3]int32{NIL, NIL, 11}}
	if diff := cmp.Diff(want, m.Triangles[0]); diff != "" {
		t.Errorf("Shift(5, 10) triangle[0] mismatch (-want +got):\n%v", diff)
	}
}

func TestMesh_Append(t *testing.T) {
	a := squareMesh()
	b := squareMesh()
	wantPoints := len(a.Points) + len(b.Points)
	wantTriangles := len(a.Triangles) + len(b.Triangles)

	a.Append(b)

	if len(a.Points) != wantPoints {
		t.Errorf("Append: Points count = %d, want %d", len(a.Points), wantPoints)
	}
	if len(a.Triangles) != wantTriangles {
		t.Errorf("Append: Triangles count = %d, want %d", len(a.Triangles), wantTriangles)
	}
	if err := a.CheckAdjacencySymmetry(); err != nil {
		t.Errorf("Append: CheckAdjacencySymmetry() = %v, want nil", err)
	}
}

func TestTriangle_SlotOfPanicsOnForeignEdge(t *testing.T) {
	m := squareMesh()
	defer func() {
		if recover() == nil {
			t.Fatal("SlotOf on an edge the triangle does not have should panic")
		}
	}()
	m.Triangles[0].SlotOf(1, 3)
}

func TestFromMesh(t *testing.T) {
	m := squareMesh()
	flat := FromMesh[uint16](m)
	if got, want := flat.NumTriangles(), 2; got != want {
		t.Errorf("NumTriangles() = %d, want %d", got, want)
	}
	if len(flat.Points) != len(m.Points) {
		t.Errorf("len(Points) = %d, want %d", len(flat.Points), len(m.Points))
	}
}
