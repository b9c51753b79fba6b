// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangle

import "fmt"

// FloatPoint is a float64 2D coordinate: the caller-side coordinate
// FloatPointAdapter converts to and from the integer grid, and the
// type of the triangle centroids and edge midpoints CentroidNet
// derives. The triangulation core itself never accepts or produces
// these directly.
type FloatPoint struct {
	X, Y float64
}

// FloatPolygon is an ordered ring of derived float coordinates.
type FloatPolygon []FloatPoint

// FloatPointAdapter converts between a caller's float coordinates and
// the integer grid the core operates on, preserving ordering and
// bounding the precision loss to the requested resolution.
// It is the only sanctioned way to feed float input into Triangulate:
// construct one from the data's bounding rect, convert every point to
// int with ToInt, run the integer core, then convert results back
// with ToFloat.
type FloatPointAdapter struct {
	minX, minY     float64
	scaleX, scaleY float64
}

// NewFloatPointAdapter builds an adapter mapping [minX,maxX]x[minY,maxY]
// onto the int32 range [0, resolution], preserving relative order of
// any two points that differ by more than one grid cell.
func NewFloatPointAdapter(minX, minY, maxX, maxY float64, resolution int32) (*FloatPointAdapter, error) {
	if maxX <= minX || maxY <= minY {
		return nil, fmt.Errorf("triangle: FloatPointAdapter: degenerate bounding rect")
	}
	if resolution <= 0 {
		return nil, fmt.Errorf("triangle: FloatPointAdapter: resolution must be positive")
	}
	return &FloatPointAdapter{
		minX:   minX,
		minY:   minY,
		scaleX: float64(resolution) / (maxX - minX),
		scaleY: float64(resolution) / (maxY - minY),
	}, nil
}

// ToInt maps a float coordinate onto the adapter's integer grid.
func (f *FloatPointAdapter) ToInt(p FloatPoint) Point {
	return Point{
		X: int32((p.X - f.minX) * f.scaleX),
		Y: int32((p.Y - f.minY) * f.scaleY),
	}
}

// ToFloat maps an integer grid coordinate back to float space.
func (f *FloatPointAdapter) ToFloat(p Point) FloatPoint {
	return FloatPoint{
		X: float64(p.X)/f.scaleX + f.minX,
		Y: float64(p.Y)/f.scaleY + f.minY,
	}
}
