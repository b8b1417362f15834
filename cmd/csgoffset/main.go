// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command csgoffset builds a planar Voronoi diagram of a point+segment
// input, computes its offset curve at a given radius, and draws the
// input sites and the offset paths (not the diagram's cells) to an SVG
// file for visual inspection — the runnable leaf the
// teacher ships as examples/s2voronoi and examples/s2delaunay.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/peremato/csgvoronoi/utils"
	"github.com/peremato/csgvoronoi/voronoi"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

const (
	width  = 900
	height = 900

	style       = "fill:none;stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:0.6"
	inputStyle  = "fill:none;stroke:rgb(0,0,0);stroke-width:2"
	offsetStyle = "fill:none;stroke:rgb(200,0,0);stroke-width:2"
	siteStyle   = "fill:rgb(0,0,200)"
)

func defaultSquare() ([]kernel.Point2, [][2]int) {
	points := []kernel.Point2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	segments := [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}
	return points, segments
}

// projector maps the input's bounding box to the SVG viewport, the
// planar analogue of the teacher's PlateCarreeProjection sphere
// projection in examples/s2voronoi/main.go.
type projector struct {
	minX, minY float64
	scale      float64
	margin     float64
}

func newProjector(points []kernel.Point2) projector {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	margin := 40.0
	usable := math.Min(width, height) - 2*margin
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	return projector{minX: minX, minY: minY, scale: usable / span, margin: margin}
}

func (pr projector) toScreen(p kernel.Point2) (int, int) {
	x := pr.margin + (p.X-pr.minX)*pr.scale
	y := height - (pr.margin + (p.Y-pr.minY)*pr.scale)
	return int(x), int(y)
}

func renderPath(canvas *svg.SVG, pr projector, path voronoi.Path, styleStr string, closed bool) {
	n := len(path)
	if n == 0 {
		return
	}
	xs := make([]int, n)
	ys := make([]int, n)
	for i, p := range path {
		xs[i], ys[i] = pr.toScreen(p)
	}
	if closed {
		canvas.Polygon(xs, ys, styleStr)
	} else {
		canvas.Polyline(xs, ys, styleStr)
	}
}

func renderInput(canvas *svg.SVG, pr projector, points []kernel.Point2, segments [][2]int) {
	for _, seg := range segments {
		a, b := points[seg[0]-1], points[seg[1]-1]
		x0, y0 := pr.toScreen(a)
		x1, y1 := pr.toScreen(b)
		canvas.Line(x0, y0, x1, y1, inputStyle)
	}
	for _, p := range points {
		x, y := pr.toScreen(p)
		canvas.Circle(x, y, 3, siteStyle)
	}
}

func renderDiagram(path string, points []kernel.Point2, segments [][2]int, offsets []voronoi.Path) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	pr := newProjector(points)

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	renderInput(canvas, pr, points, segments)
	for _, p := range offsets {
		renderPath(canvas, pr, p, offsetStyle, len(segments) > 0)
	}
	canvas.End()
	return nil
}

func main() {
	radius := flag.Float64("radius", 2.0, "offset radius")
	atol := flag.Float64("atol", 0.05, "arc/parabola interpolation tolerance")
	out := flag.String("out", "offset.svg", "output SVG path")
	seed := flag.Int64("seed", 1, "insertion-order RNG seed")
	randomN := flag.Int("random", 0, "generate a random n-gon instead of the built-in square (0 disables)")
	flag.Parse()

	points, segments := defaultSquare()
	if *randomN >= 3 {
		points, segments = utils.GenerateRandomPolygon(*randomN, 10, *seed)
	}

	paths, err := voronoi.Offset(points, segments, *radius, *atol, voronoi.WithSeed(*seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := renderDiagram(*out, points, segments, paths); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s with %d offset path(s)\n", *out, len(paths))
}
