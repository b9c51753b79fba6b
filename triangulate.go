// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import (
	"fmt"

	"github.com/2dChan/gotriangle/earcut"
	"github.com/2dChan/gotriangle/geom"
	igmesh "github.com/2dChan/gotriangle/mesh"
	"github.com/2dChan/gotriangle/monotone"
)

// FillRule selects which sub-regions of a self-overlapping input
// count as filled when a PolygonSimplifier is in play. It has no
// effect on the unchecked path, which trusts the caller's winding.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
	Positive
	Negative
)

// PolygonSimplifier is the external collaborator WithValidate
// routes input through before triangulating: it normalizes arbitrary
// (possibly self-intersecting) rings into the outer-CCW/holes-CW,
// non-self-intersecting shapes the core requires. This module does
// not ship one; without WithValidate the input is trusted as-is.
type PolygonSimplifier interface {
	Simplify(contours [][]Point, rule FillRule) ([][]Point, error)
}

// Option configures a Triangulate call.
type Option func(*config)

type config struct {
	rule          FillRule
	minArea       uint64
	keepAllPoints bool
	validate      PolygonSimplifier
}

// WithFillRule sets the fill rule a PolygonSimplifier uses to decide
// which regions of a self-overlapping input are filled. Ignored on
// the unchecked path (no Validate option given).
func WithFillRule(r FillRule) Option {
	return func(c *config) { c.rule = r }
}

// WithMinArea makes Triangulate discard output triangles whose doubled
// area magnitude falls below minArea.
func WithMinArea(minArea uint64) Option {
	return func(c *config) { c.minArea = minArea }
}

// WithKeepAllPoints records that points a PolygonSimplifier would judge
// redundant (duplicates, collinear runs) are to be kept. Simplify takes
// only the contours and the fill rule, so Triangulate does not pass
// this setting on and it has no effect on the result.
func WithKeepAllPoints() Option {
	return func(c *config) { c.keepAllPoints = true }
}

// WithValidate routes contours through s before triangulating,
// turning on self-intersection handling; without this option,
// Triangulate trusts the caller's winding and simplicity.
func WithValidate(s PolygonSimplifier) Option {
	return func(c *config) { c.validate = s }
}

// Triangulate builds a mesh from one polygon (outer contour plus
// optional hole contours) and an optional set of interior Steiner
// points. Contours must already be outer-CCW / holes-CW and free of
// self-intersections unless WithValidate is given.
func Triangulate(contours [][]Point, steiner []Point, opts ...Option) (*Mesh, error) {
	cfg := config{rule: NonZero}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.validate != nil {
		simplified, err := cfg.validate.Simplify(contours, cfg.rule)
		if err != nil {
			return nil, fmt.Errorf("triangle: validate: %w", err)
		}
		contours = simplified
	}

	if err := checkContours(contours); err != nil {
		return nil, err
	}

	if len(contours) == 1 && len(steiner) == 0 && len(contours[0]) < earcut.MaxVertices {
		idx, ok := earcut.Triangulate(contours[0], nil)
		if ok {
			m := meshFromFlatFan(contours[0], idx)
			if cfg.minArea > 0 {
				dropSmallTriangles(m, cfg.minArea)
			}
			return m, nil
		}
	}

	vertices := monotone.BuildChainVertices(contours, steiner)
	if len(vertices) == 0 {
		return &Mesh{}, nil
	}
	pointCount := int(vertices[len(vertices)-1].Index) + 1

	m, err := monotone.Triangulate(vertices, pointCount)
	if err != nil {
		return nil, err
	}
	if cfg.minArea > 0 {
		dropSmallTriangles(m, cfg.minArea)
	}
	return m, nil
}

// checkContours rejects degenerate input the unchecked path cannot
// recover from: fewer than 3 vertices in any ring.
func checkContours(contours [][]Point) error {
	if len(contours) == 0 {
		return fmt.Errorf("triangle: no contours given")
	}
	for i, c := range contours {
		if len(c) < 3 {
			return fmt.Errorf("triangle: contour %d has fewer than 3 vertices", i)
		}
	}
	return nil
}

// meshFromFlatFan wraps the earcut fast path's flat index triples
// into a Mesh with no adjacency populated; earcut emits bare index
// triples. Callers needing adjacency go through the monotone sweep.
func meshFromFlatFan(points []Point, idx []uint32) *Mesh {
	out := &Mesh{Points: append([]Point(nil), points...)}
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		V := [3]uint32{a, b, c}
		if geom.AreaTwo(points[a], points[b], points[c]) > 0 {
			V[1], V[2] = V[2], V[1]
		}
		out.Triangles = append(out.Triangles, igmesh.Triangle{V: V, N: [3]int32{NIL, NIL, NIL}})
	}
	return out
}

// dropSmallTriangles removes every triangle whose doubled signed area
// magnitude is below minArea. Surviving
// neighbor references are renumbered to the compacted index space;
// references to a removed triangle become NIL.
func dropSmallTriangles(m *Mesh, minArea uint64) {
	remap := make([]int32, len(m.Triangles))
	kept := make([]igmesh.Triangle, 0, len(m.Triangles))
	for i := range m.Triangles {
		t := &m.Triangles[i]
		a := geom.AreaTwo(m.Points[t.V[0]], m.Points[t.V[1]], m.Points[t.V[2]])
		if a < 0 {
			a = -a
		}
		if uint64(a) < minArea {
			remap[i] = NIL
			continue
		}
		remap[i] = int32(len(kept))
		kept = append(kept, *t)
	}
	for i := range kept {
		for k := 0; k < 3; k++ {
			if n := kept[i].N[k]; n != NIL {
				kept[i].N[k] = remap[n]
			}
		}
	}
	m.Triangles = kept
}
