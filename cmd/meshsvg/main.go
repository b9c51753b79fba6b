// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command meshsvg triangulates a random polygon with scattered Steiner
// points, refines it to Delaunay, and renders the mesh as an SVG file.
package main

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	triangle "github.com/2dChan/gotriangle"
	"github.com/2dChan/gotriangle/utils"
)

const (
	filename = "mesh.svg"

	width  = 1200
	height = 1200
	margin = 40

	triStyle   = "fill:none;stroke:rgb(100,100,200);stroke-width:1"
	pointStyle = "fill:rgb(200,30,30)"
)

type screen struct {
	minX, minY float64
	scale      float64
}

func newScreen(m *triangle.Mesh) screen {
	minX, minY := float64(m.Points[0].X), float64(m.Points[0].Y)
	maxX, maxY := minX, minY
	for _, p := range m.Points {
		x, y := float64(p.X), float64(p.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span == 0 {
		span = 1
	}
	return screen{minX: minX, minY: minY, scale: float64(width-2*margin) / span}
}

func (s screen) project(p triangle.Point) (int, int) {
	x := margin + (float64(p.X)-s.minX)*s.scale
	y := margin + (float64(p.Y)-s.minY)*s.scale
	return int(x), int(y)
}

func renderMesh(m *triangle.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	sc := newScreen(m)
	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for _, t := range m.Triangles {
		x0, y0 := sc.project(m.Points[t.V[0]])
		x1, y1 := sc.project(m.Points[t.V[1]])
		x2, y2 := sc.project(m.Points[t.V[2]])
		canvas.Polygon([]int{x0, x1, x2}, []int{y0, y1, y2}, triStyle)
	}
	for _, p := range m.Points {
		x, y := sc.project(p)
		canvas.Circle(x, y, 2, pointStyle)
	}
	canvas.End()
	return nil
}

func main() {
	contour := utils.GenerateRandomPolygon(30, 0, 1000)
	steiner := utils.GenerateRandomSteinerPoints(40, 1, 700)

	m, err := triangle.Triangulate([][]triangle.Point{contour}, steiner)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	triangle.IntoDelaunay(m)

	if err := renderMesh(m); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
