// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangle is a 2D polygon triangulation engine: exact
// integer geometry, a sweep-line monotone triangulator with an
// earcut-64 fast path, Delaunay edge-flip refinement, and the
// downstream mesh transforms (convex grouping, centroid nets,
// circumcenter refinement).
package triangle

import (
	"github.com/2dChan/gotriangle/geom"
	igmesh "github.com/2dChan/gotriangle/mesh"
)

// Point is an integer 2D coordinate.
type Point = geom.Point

// Triangle is a clockwise-ordered triangle with per-edge adjacency.
// See package mesh for the neighbor-slot convention.
type Triangle = igmesh.Triangle

// Mesh is a raw triangulation: triangles with adjacency plus the
// deduplicated point vector they index into.
type Mesh = igmesh.Mesh

// NIL marks a missing triangle neighbor (a boundary edge).
const NIL = igmesh.NIL

// Index is any unsigned integer width a flat triangulation's caller
// may choose as the output index type.
type Index = igmesh.Index

// FlatTriangulation is the index-packed form of a mesh that Flatten
// produces: a point vector and 3*T indices with no adjacency, in the
// integer width I the caller chose.
type FlatTriangulation[I Index] struct {
	igmesh.FlatTriangulation[I]
}

// Flatten converts an adjacency mesh to flat index triples in I,
// saturating any index that does not fit I instead of panicking.
func Flatten[I Index](m *Mesh) *FlatTriangulation[I] {
	return &FlatTriangulation[I]{*igmesh.FromMesh[I](m)}
}
