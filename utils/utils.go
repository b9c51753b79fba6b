// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic generators for random planar
// contours and Steiner points, used by tests and benchmarks.
package utils

import (
	"math"
	"math/rand"

	"github.com/2dChan/gotriangle/geom"
)

// GenerateRandomPolygon produces a simple (non-self-intersecting)
// counter-clockwise polygon with n vertices, placed at jittered
// uniform angles around a circle of the given radius with a jittered
// radius per vertex. Consecutive angles stay at least a fifth of a
// step apart, so vertices never collide on the integer grid as long
// as radius is comfortably larger than n. The seed parameter ensures
// reproducibility.
func GenerateRandomPolygon(n int, seed int64, radius int32) []geom.Point {
	if n < 3 {
		return nil
	}
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))

	r := float64(radius)
	step := 2 * math.Pi / float64(n)
	points := make([]geom.Point, n)
	for i := range points {
		a := (float64(i) + 0.8*random.Float64()) * step
		jitter := 0.6 + 0.4*random.Float64()
		points[i] = geom.Point{
			X: int32(r * jitter * math.Cos(a)),
			Y: int32(r * jitter * math.Sin(a)),
		}
	}
	return points
}

// GenerateRandomSteinerPoints produces cnt interior points uniformly
// scattered over [-bound, bound]^2. The seed parameter ensures
// reproducibility.
func GenerateRandomSteinerPoints(cnt int, seed int64, bound int32) []geom.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, cnt)
	b := float64(bound)
	for i := range points {
		points[i] = geom.Point{
			X: int32((random.Float64()*2 - 1) * b),
			Y: int32((random.Float64()*2 - 1) * b),
		}
	}
	return points
}
