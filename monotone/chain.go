// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monotone

import (
	"math"
	"sort"

	"github.com/2dChan/gotriangle/geom"
)

// binSortThreshold is the vertex count above which the bin-sort
// strategy is used instead of a direct O(n log n) sort.
// Below it the constant factor of bucketing outweighs the saving.
const binSortThreshold = 256

// BuildChainVertices converts a set of contours (each a cyclic
// ordered ring, outer CCW / hole CW) plus an optional
// slice of Steiner points into a ChainVertex sequence sorted
// lexicographically by This, with shared coordinates assigned the
// same Index and re-ordered into a clockwise-consistent (prev, next)
// pairing.
func BuildChainVertices(contours [][]geom.Point, steiner []geom.Point) []ChainVertex {
	raw := make([]ChainVertex, 0, totalVertexCount(contours)+len(steiner))
	for _, c := range contours {
		n := len(c)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			raw = append(raw, ChainVertex{
				This:     c[i],
				Next:     c[(i+1)%n],
				Prev:     c[(i-1+n)%n],
				HasEdges: true,
			})
		}
	}
	for _, p := range steiner {
		raw = append(raw, ChainVertex{This: p})
	}

	if len(raw) == 0 {
		return nil
	}

	if len(raw) > binSortThreshold {
		binSort(raw)
	} else {
		directSort(raw)
	}

	assignIndices(raw)
	return regroup(raw)
}

func totalVertexCount(contours [][]geom.Point) int {
	n := 0
	for _, c := range contours {
		if len(c) >= 3 {
			n += len(c)
		}
	}
	return n
}

// directSort is the straight O(n log n) strategy.
func directSort(v []ChainVertex) {
	sort.Slice(v, func(i, j int) bool { return v[i].This.Less(v[j].This) })
}

// binSort buckets vertices by their This.X coordinate into
// sqrt(n)-ish ranges, then sorts within each bucket -- linear-time
// placement followed by a small local sort.
func binSort(v []ChainVertex) {
	minX, maxX := v[0].This.X, v[0].This.X
	for _, e := range v {
		if e.This.X < minX {
			minX = e.This.X
		}
		if e.This.X > maxX {
			maxX = e.This.X
		}
	}

	nBins := int(math.Sqrt(float64(len(v)))) + 1
	span := int64(maxX) - int64(minX)

	bins := make([][]ChainVertex, nBins)
	for _, e := range v {
		var b int
		if span == 0 {
			b = 0
		} else {
			b = int((int64(e.This.X) - int64(minX)) * int64(nBins-1) / span)
		}
		bins[b] = append(bins[b], e)
	}

	out := v[:0]
	for _, bin := range bins {
		sort.Slice(bin, func(i, j int) bool { return bin[i].This.Less(bin[j].This) })
		out = append(out, bin...)
	}
	copy(v, out)
}

// assignIndices walks the sorted vector, incrementing the running
// index whenever This changes from the previous entry.
func assignIndices(v []ChainVertex) {
	idx := uint32(0)
	v[0].Index = idx
	for i := 1; i < len(v); i++ {
		if !v[i].This.Equal(v[i-1].This) {
			idx++
		}
		v[i].Index = idx
	}
}

// direction tags a vertex group's two boundary directions.
type directionTag int

const (
	tagPrev directionTag = iota
	tagNext
)

type direction struct {
	point geom.Point
	tag   directionTag
}

// regroup re-sorts every run of vertices sharing the same coordinate
// into clockwise order around that shared point, and
// drops pure-Steiner entries that coincide with a polygon vertex
// (they merge into the polygon vertex's index).
func regroup(v []ChainVertex) []ChainVertex {
	out := make([]ChainVertex, 0, len(v))
	i := 0
	for i < len(v) {
		j := i + 1
		for j < len(v) && v[j].This.Equal(v[i].This) {
			j++
		}
		out = append(out, sortVertexGroup(v[i:j])...)
		i = j
	}
	return out
}

func sortVertexGroup(group []ChainVertex) []ChainVertex {
	hasEdge := false
	for _, g := range group {
		if g.HasEdges {
			hasEdge = true
			break
		}
	}
	if hasEdge {
		filtered := group[:0:0]
		for _, g := range group {
			if g.HasEdges {
				filtered = append(filtered, g)
			}
		}
		group = filtered
	}
	if len(group) <= 1 {
		return group
	}

	c := group[0].This
	dirs := make([]direction, 0, len(group)*2)
	for _, g := range group {
		dirs = append(dirs, direction{point: g.Next, tag: tagNext})
		dirs = append(dirs, direction{point: g.Prev, tag: tagPrev})
	}

	// Directions left of c and right of c are ordered as two separate
	// angular runs; a plain full-circle cross comparator is not
	// transitive once the directions span more than a half turn.
	sort.Slice(dirs, func(i, j int) bool {
		a, b := dirs[i].point, dirs[j].point
		if (a.Less(c) && b.Less(c)) || (c.Less(a) && c.Less(b)) {
			return geom.ClockOrder(c, a, b) == geom.Less
		}
		if a.X == c.X && b.X == c.X {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	// Re-pair the sorted directions into (prev, next) tuples. After
	// the angular sort, prev and next directions alternate; which of
	// the three pairing alignments applies depends on whether the run
	// opens on a Prev and, if not, on which side of c the closing
	// Prev lies.
	out := make([]ChainVertex, 0, len(group))
	emitPair := func(src ChainVertex, prev, next geom.Point) {
		out = append(out, ChainVertex{
			Index:    src.Index,
			This:     src.This,
			Prev:     prev,
			Next:     next,
			HasEdges: true,
		})
	}

	n := len(dirs)
	if dirs[0].tag == tagPrev {
		for k := 0; k < len(group); k++ {
			emitPair(group[k], dirs[2*k].point, dirs[2*k+1].point)
		}
		return out
	}

	lastPrev := dirs[n-1].point
	if c.X < lastPrev.X {
		// The wrapped pair comes first.
		emitPair(group[0], lastPrev, dirs[0].point)
		for k := 1; k < len(group); k++ {
			emitPair(group[k], dirs[2*k-1].point, dirs[2*k].point)
		}
		return out
	}

	// Skip the opening next; the wrapped pair closes the group.
	for k := 0; k < len(group)-1; k++ {
		emitPair(group[k], dirs[2*k+1].point, dirs[2*k+2].point)
	}
	emitPair(group[len(group)-1], lastPrev, dirs[0].point)
	return out
}
