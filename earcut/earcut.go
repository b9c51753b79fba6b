// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package earcut implements a bitmask fast path for triangulating a
// single simple contour of fewer than 64 vertices, producing flat
// index triples with no adjacency.
package earcut

import (
	"math/bits"

	"github.com/2dChan/gotriangle/geom"
)

// MaxVertices bounds the contour size Triangulate accepts: a contour
// must have fewer than MaxVertices points, whose positions are tracked
// in a single uint64 bitmask.
const MaxVertices = 64

// Triangulate ears a simple counter-clockwise contour of fewer than
// MaxVertices points, appending index triples to dst and returning
// the extended slice. It reports false when the contour is out of
// range or no valid ear can be found anywhere on the remaining ring
// (a non-simple input); the caller should fall back to the monotone
// sweep in that case.
func Triangulate(points []geom.Point, dst []uint32) ([]uint32, bool) {
	n := len(points)
	if n < 3 || n >= MaxVertices {
		return dst, false
	}
	s := solver{points: points, available: uint64(1)<<uint(n) - 1}
	return s.run(dst)
}

type solver struct {
	points    []geom.Point
	available uint64
}

func (s *solver) run(dst []uint32) ([]uint32, bool) {
	i := 0
	misses := 0
	for bits.OnesCount64(s.available) >= 3 {
		end, circle, ok := s.findConvexPart(i)
		switch {
		case circle:
			// The whole remaining ring is convex: fan it out.
			return s.collectLastEar(i, dst), true
		case ok:
			if earEnd, valid := s.validateEarAndTrim(i, end); valid {
				dst = s.collectEar(i, earEnd, dst)
				misses = 0
				i = nextWrappedIndex(s.available, i)
				continue
			}
			misses++
		default:
			misses++
		}
		if misses > MaxVertices {
			return dst, false
		}
		i = nextWrappedIndex(s.available, i)
	}
	return dst, true
}

// findConvexPart scans forward from i0 for the maximal run of
// vertices whose turns stay convex and whose chord from i0 remains on
// the interior side. It reports circle=true when the scan wraps the
// whole ring (the remainder is convex), otherwise the end index of
// the run, with ok=false when not even one ear triangle fits at i0.
func (s *solver) findConvexPart(i0 int) (end int, circle, ok bool) {
	a := s.points[i0]
	i1 := nextWrappedIndex(s.available, i0)
	b := s.points[i1]

	v0 := b.Sub(a)
	i := i1
	for i != i0 {
		j := nextWrappedIndex(s.available, i)
		c := s.points[j]
		cb := c.Sub(b)
		ac := c.Sub(a)

		// The chord a->c must stay inside the ear, and the turn at
		// the current vertex must not reverse.
		cross0 := geom.Cross(cb, ac)
		cross1 := geom.Cross(cb, v0)

		if cross1 > 0 || cross0 >= 0 && j != i0 {
			if i == i1 {
				return 0, false, false
			}
			if cross0 == 0 {
				prev := prevWrappedIndex(s.available, i)
				if prev == i1 {
					return 0, false, false
				}
				return prev, false, true
			}
			return i, false, true
		}
		b = c
		i = j
		v0 = cb
	}
	return 0, true, false
}

// validateEarAndTrim checks that no surviving vertex outside the ear
// [start, end] lies inside it, shrinking end toward start until the
// ear is clean. It reports ok=false when no sub-range survives.
func (s *solver) validateEarAndTrim(start, end int) (int, bool) {
	candidates := s.fastEarCheck(start, end)
	if candidates == 0 {
		return end, true
	}
	ring := s.available & onesInRangeInclusive(start, end)
	second := nextWrappedIndex(ring, start)
	rangeEnd := end
	for rangeEnd != second {
		candidates = s.candidatesEarCheck(start, rangeEnd, candidates)
		if candidates == 0 {
			return rangeEnd, true
		}
		rangeEnd = prevWrappedIndex(ring, rangeEnd)
	}
	return 0, false
}

// fastEarCheck returns the bitmask of vertices outside the ear range
// that lie on the ear's side of the chord end->start; only those can
// possibly intrude and need the exact per-candidate check.
func (s *solver) fastEarCheck(start, end int) uint64 {
	earIndices := onesInRangeInclusive(start, end)
	otherIndices := s.available &^ earIndices

	a := s.points[start]
	b := s.points[end]
	ab := a.Sub(b)

	var candidates uint64
	rest := otherIndices
	for rest != 0 {
		index := bits.TrailingZeros64(rest)
		bit := uint64(1) << uint(index)

		cb := s.points[index].Sub(b)
		if geom.Cross(ab, cb) >= 0 {
			candidates |= bit
		}
		rest &^= bit
	}
	return candidates
}

// candidatesEarCheck tests every candidate against the ear polygon
// [start, end]. It returns 0 when all candidates are clear, or the
// not-yet-cleared candidate set when one is found inside (a candidate
// already cleared against a larger ear stays clear against a smaller
// one, so the survivors carry over to the next trim step).
func (s *solver) candidatesEarCheck(start, end int, candidates uint64) uint64 {
	earIndices := s.available & onesInRangeInclusive(start, end)

	a := s.points[start]
	b := s.points[end]
	ab := a.Sub(b)

	rest := candidates
	for rest != 0 {
		i := bits.TrailingZeros64(rest)
		c := s.points[i]
		ac := a.Sub(c)
		if geom.Cross(ac, ab) == 0 {
			// On the chord's line; blocked only when strictly between
			// its endpoints.
			bc := b.Sub(c)
			if geom.Dot(bc, ac) < 0 {
				return rest
			}
		} else if s.isInsideEar(earIndices, c) {
			return rest
		}
		rest &^= 1 << uint(i)
	}
	return 0
}

// isInsideEar runs a parity-crossing point-in-polygon test for c
// against the ear ring.
func (s *solver) isInsideEar(earIndices uint64, c geom.Point) bool {
	n := bits.OnesCount64(earIndices)
	i := bits.TrailingZeros64(earIndices)
	p0 := s.points[i]

	count := 0
	for k := 0; k < n; k++ {
		i = nextWrappedIndex(earIndices, i)
		pi := s.points[i]
		var a, b geom.Point
		switch {
		case p0.X == pi.X:
			p0 = pi
			continue
		case p0.X < pi.X:
			a, b = p0, pi
		default:
			a, b = pi, p0
		}
		if a.X <= c.X && c.X < b.X {
			ab := a.Sub(b)
			ac := a.Sub(c)
			if geom.Cross(ab, ac) >= 0 {
				count++
			}
		}
		p0 = pi
	}
	return count&1 == 1
}

// collectEar fans the validated range [start, end] from start,
// clearing the interior vertices from the available mask.
func (s *solver) collectEar(start, end int, dst []uint32) []uint32 {
	ring := s.available & onesInRangeInclusive(start, end)

	i := start
	a := uint32(i)
	i = nextWrappedIndex(ring, i)
	b := uint32(i)
	for i != end {
		s.available &^= 1 << uint(i)
		i = nextWrappedIndex(ring, i)
		c := uint32(i)
		dst = append(dst, a, b, c)
		b = c
	}
	return dst
}

// collectLastEar fans the entire remaining ring from start.
func (s *solver) collectLastEar(start int, dst []uint32) []uint32 {
	ring := s.available
	i := start
	a := uint32(i)
	i = nextWrappedIndex(ring, i)
	b := uint32(i)
	i = nextWrappedIndex(ring, i)
	for i != start {
		c := uint32(i)
		dst = append(dst, a, b, c)
		b = c
		i = nextWrappedIndex(ring, i)
	}
	return dst
}

// nextWrappedIndex returns the lowest set bit of mask strictly after
// i, wrapping around past bit 63.
func nextWrappedIndex(mask uint64, i int) int {
	upper := mask &^ (uint64(1)<<uint(i+1) - 1)
	if upper != 0 {
		return bits.TrailingZeros64(upper)
	}
	return bits.TrailingZeros64(mask)
}

// prevWrappedIndex returns the highest set bit of mask strictly
// before i, wrapping around past bit 0.
func prevWrappedIndex(mask uint64, i int) int {
	lower := mask & (uint64(1)<<uint(i) - 1)
	if lower != 0 {
		return 63 - bits.LeadingZeros64(lower)
	}
	return 63 - bits.LeadingZeros64(mask)
}

// onesInRangeInclusive returns the bitmask of positions between i and
// j inclusive, wrapping if i > j.
func onesInRangeInclusive(i, j int) uint64 {
	if i <= j {
		return (uint64(1)<<uint(j-i+1) - 1) << uint(i)
	}
	return onesInRangeInclusive(i, 63) | onesInRangeInclusive(0, j)
}
