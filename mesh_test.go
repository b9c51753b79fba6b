// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import "testing"

func TestFlattenDiscardsAdjacency(t *testing.T) {
	m, err := Triangulate([][]Point{square()}, nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	flat := Flatten[uint32](m)
	if flat.NumTriangles() != len(m.Triangles) {
		t.Fatalf("NumTriangles = %d, want %d", flat.NumTriangles(), len(m.Triangles))
	}
	if len(flat.Indices) != len(m.Triangles)*3 {
		t.Fatalf("got %d indices, want %d", len(flat.Indices), len(m.Triangles)*3)
	}
}
