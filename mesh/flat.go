// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import "github.com/2dChan/gotriangle/geom"

// Index is any unsigned integer width a flat triangulation's caller
// may choose as the output index type.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FlatTriangulation is the adjacency-free mesh output: points plus a
// flat list of vertex indices, three per triangle.
type FlatTriangulation[I Index] struct {
	Points  []geom.Point
	Indices []I
}

// NumTriangles returns len(Indices) / 3.
func (f *FlatTriangulation[I]) NumTriangles() int {
	return len(f.Indices) / 3
}

// FlattenIndices converts a slice of uint32 vertex indices to the
// caller-chosen index width I. An index that does not fit I is a
// caller contract violation; it clamps to the type's maximum value
// rather than silently wrapping.
func FlattenIndices[I Index](raw []uint32) []I {
	out := make([]I, len(raw))
	var maxVal I
	maxVal--
	for i, v := range raw {
		iv := I(v)
		if uint64(iv) != uint64(v) {
			out[i] = maxVal
			continue
		}
		out[i] = iv
	}
	return out
}

// FromMesh converts an adjacency mesh into a flat triangulation of
// the requested index width, discarding neighbor information.
func FromMesh[I Index](m *Mesh) *FlatTriangulation[I] {
	raw := make([]uint32, 0, len(m.Triangles)*3)
	for i := range m.Triangles {
		t := &m.Triangles[i]
		raw = append(raw, t.V[0], t.V[1], t.V[2])
	}
	return &FlatTriangulation[I]{
		Points:  m.Points,
		Indices: FlattenIndices[I](raw),
	}
}
