// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"math"

	"github.com/peremato/csgvoronoi/voronoi/corner"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/separator"
)

// Path is a polyline produced by offset extraction or extrusion
// cross-sections: a maximal sequence of adjacent cell crossings (spec.md
// §4.4.6 "Chain").
type Path []kernel.Point2

// Offset constructs a fresh diagram and returns the offset paths at a
// single radius (spec.md §6 "offset(points, segments, radius; atol)").
func Offset(points []kernel.Point2, segments [][2]int, radius, atol float64, opts ...Option) ([]Path, error) {
	d, err := NewDiagram(points, segments, opts...)
	if err != nil {
		return nil, err
	}
	return d.Offset(radius, atol)
}

// OffsetMany constructs a single diagram and returns offset paths for
// each radius, sharing the construction cost (spec.md §6
// "offset(points, segments, radii; atol)").
func OffsetMany(points []kernel.Point2, segments [][2]int, radii []float64, atol float64, opts ...Option) ([][]Path, error) {
	d, err := NewDiagram(points, segments, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]Path, len(radii))
	for i, r := range radii {
		paths, err := d.Offset(r, atol)
		if err != nil {
			return nil, err
		}
		out[i] = paths
	}
	return out, nil
}

// crossing records whether the + and/or - branch of an edge's separator
// crosses the level set {d = r}.
type crossing struct {
	plus, minus bool
}

func (c crossing) any() bool { return c.plus || c.minus }

// edgeCross analyses whether edge e's separator crosses radius r, per
// spec.md §4.4.6.
func (d *Diagram) edgeCross(e corner.Edge, r float64) crossing {
	sep := d.seps[e]
	if sep == nil || sep.Variant == separator.ParallelBisector {
		return crossing{}
	}
	o := d.tbl.Opposite(e)
	if o == corner.NoEdge {
		return crossing{}
	}
	rq := d.nodeRadius[d.tbl.Node(e)]
	ro := d.nodeRadius[d.tbl.Node(o)]
	insideQ := rq < r
	insideO := ro < r

	switch {
	case insideQ && insideO:
		if d.branch[e] != d.branch[o].Negate() {
			return crossing{plus: true, minus: true}
		}
		return crossing{}
	case insideQ != insideO:
		return crossing{plus: true}
	default: // both outside
		if sep.RMin < r {
			return crossing{plus: true, minus: true}
		}
		return crossing{}
	}
}

func (d *Diagram) isFakeCell(c corner.Cell) bool {
	return c == d.fakeCells[0] || c == d.fakeCells[1] || c == d.fakeCells[2]
}

// firstCrossingEdge returns the first not-yet-visited edge in the star of
// c whose + branch crosses radius r, or corner.NoEdge.
func (d *Diagram) firstCrossingEdge(c corner.Cell, r float64, visited map[corner.Edge]bool) corner.Edge {
	for _, e := range d.tbl.Star(c) {
		if visited[e] {
			continue
		}
		if d.edgeCross(e, r).plus {
			return e
		}
	}
	return corner.NoEdge
}

// nextCrossingEdge rotates the star of c starting just after "after",
// returning the next crossing edge.
func (d *Diagram) nextCrossingEdge(c corner.Cell, after corner.Edge, r float64) corner.Edge {
	star := d.tbl.Star(c)
	startIdx := -1
	for i, e := range star {
		if e == after {
			startIdx = i
			break
		}
	}
	n := len(star)
	for k := 1; k <= n; k++ {
		e := star[(startIdx+k)%n]
		if d.edgeCross(e, r).plus {
			return e
		}
	}
	return corner.NoEdge
}

// Offset extracts the offset curve at radius r (spec.md §4.4.6): a
// sequence of closed or open chains of cell crossings, interpolated with
// evaluate(separator, +, r) and circular arcs at point-site corners.
func (d *Diagram) Offset(r, atol float64) ([]Path, error) {
	visited := make(map[corner.Edge]bool)
	var paths []Path

	for c := corner.Cell(0); int(c) < len(d.sites); c++ {
		if d.isFakeCell(c) {
			continue
		}
		start := d.firstCrossingEdge(c, r, visited)
		if start == corner.NoEdge {
			continue
		}
		path := d.walkChain(c, start, r, atol, visited)
		if len(path) > 1 {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// walkChain follows cell crossings starting at (cell, edge), emitting the
// interpolated separator evaluation at each crossing edge and a circular
// arc whenever the chain passes through a point-site cell's corner
// (spec.md §4.4.6 "Interpolation").
func (d *Diagram) walkChain(startCell corner.Cell, startEdge corner.Edge, r, atol float64, visited map[corner.Edge]bool) Path {
	var pts []kernel.Point2

	cell := startCell
	edge := startEdge
	for steps := 0; steps < maxFindNodeSteps; steps++ {
		if visited[edge] {
			break
		}
		visited[edge] = true

		sep := d.seps[edge]
		p := sep.Evaluate(kernel.BranchPlus, r)

		if !d.sites[cell].IsSegment && len(pts) > 0 {
			pts = append(pts, d.arcTo(cell, pts[len(pts)-1], p, r, atol)...)
		} else {
			pts = append(pts, p)
		}

		o := d.tbl.Opposite(edge)
		if o == corner.NoEdge {
			break
		}
		visited[o] = true
		neighbour := d.tbl.Left(o)

		next := d.nextCrossingEdge(neighbour, o, r)
		if next == corner.NoEdge {
			break
		}
		if next == startEdge {
			break
		}
		edge = next
		cell = neighbour
	}
	return pts
}

// arcTo inserts a circularly-interpolated arc of radius r around a
// point-site cell between the chain's incoming point a and outgoing
// point b, subdividing by spec.md §4.4.6's
// ceil((a1-a0)*sqrt(r/(8*tol))) step count.
func (d *Diagram) arcTo(cell corner.Cell, a, b kernel.Point2, r, atol float64) []kernel.Point2 {
	center := d.sites[cell].P
	da := a.Sub(center)
	db := b.Sub(center)
	a0 := math.Atan2(da.Y, da.X)
	a1 := math.Atan2(db.Y, db.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	span := a1 - a0
	if span <= 0 || atol <= 0 {
		return []kernel.Point2{b}
	}
	steps := int(math.Ceil(span * math.Sqrt(r/(8*atol))))
	if steps < 1 {
		steps = 1
	}
	out := make([]kernel.Point2, 0, steps)
	for i := 1; i <= steps; i++ {
		ang := a0 + span*float64(i)/float64(steps)
		out = append(out, kernel.Point2{
			X: center.X + r*math.Cos(ang),
			Y: center.Y + r*math.Sin(ang),
		})
	}
	return out
}
