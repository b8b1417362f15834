// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"fmt"

	"github.com/peremato/csgvoronoi/voronoi/corner"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/site"
)

// CellView is a read-only view onto one cell of a frozen Diagram: its
// site, its bounding Voronoi vertices (in star order) and its
// neighbouring cells. It is the planar counterpart of the teacher's
// CSR-array-backed Cell view, rebuilt on top of Star(c) since the
// corner table has no CellOffsets/CellVertices arrays to slice.
type CellView struct {
	d *Diagram
	c corner.Cell
}

// CellView returns a view onto cell c.
func (d *Diagram) CellView(c corner.Cell) CellView {
	return CellView{d: d, c: c}
}

// Index returns the cell's index into the Diagram's site list.
func (v CellView) Index() corner.Cell { return v.c }

// Site returns the cell's site.
func (v CellView) Site() site.Site { return v.d.sites[v.c] }

// star returns the outgoing edges around the cell, one per incident
// Voronoi vertex, recomputed on every call (Star(c) already bounds its own
// walk).
func (v CellView) star() []corner.Edge { return v.d.tbl.Star(v.c) }

// NumVertices returns the number of Voronoi vertices bounding the cell.
// This equals the number of neighbouring cells.
func (v CellView) NumVertices() int { return len(v.star()) }

// Vertex returns the i-th Voronoi vertex bounding the cell, in star
// (counter-clockwise) order. It panics if i is out of range.
func (v CellView) Vertex(i int) kernel.Point2 {
	star := v.star()
	if i < 0 || i >= len(star) {
		panic(fmt.Sprintf("voronoi: Vertex: index %d out of range [0 %d)", i, len(star)))
	}
	return v.d.geomNode[v.d.tbl.Node(star[i])]
}

// NumNeighbors returns the number of neighbouring cells.
func (v CellView) NumNeighbors() int { return len(v.star()) }

// Neighbor returns the neighbouring cell across the i-th Voronoi vertex,
// in star order. It panics if i is out of range.
func (v CellView) Neighbor(i int) CellView {
	star := v.star()
	if i < 0 || i >= len(star) {
		panic(fmt.Sprintf("voronoi: Neighbor: index %d out of range [0 %d)", i, len(star)))
	}
	e := star[i]
	o := v.d.tbl.Opposite(e)
	if o == corner.NoEdge {
		panic("voronoi: Neighbor: unbounded edge has no neighbour")
	}
	return CellView{d: v.d, c: v.d.tbl.Left(o)}
}

// Centroid returns the arithmetic mean of the cell's bounding vertices
// (the planar analogue of the teacher's spherical centroid, which
// averages unit vectors and re-normalizes; a planar polygon has no such
// normalization step).
func (v CellView) Centroid() kernel.Point2 {
	n := v.NumVertices()
	if n == 0 {
		panic("voronoi: Centroid: cell has no vertices")
	}
	sum := kernel.Point2{}
	for i := 0; i < n; i++ {
		sum = sum.Add(v.Vertex(i))
	}
	return sum.Mul(1.0 / float64(n))
}
