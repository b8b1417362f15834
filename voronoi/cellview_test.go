// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"testing"

	"github.com/peremato/csgvoronoi/voronoi/corner"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

func TestCellView_VerticesMatchNeighborCount(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: 2, Y: 3}}
	d, err := NewDiagram(points, nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v", err)
	}

	for c := corner.Cell(0); int(c) < len(points); c++ {
		view := d.CellView(c)
		if view.NumVertices() != view.NumNeighbors() {
			t.Errorf("cell %v: NumVertices() = %d, NumNeighbors() = %d, want equal", c,
				view.NumVertices(), view.NumNeighbors())
		}
		for i := 0; i < view.NumVertices(); i++ {
			_ = view.Vertex(i) // must not panic
			_ = view.Neighbor(i)
		}
	}
}

func TestCellView_VertexPanicsOutOfRange(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	d, err := NewDiagram(points, nil, WithSeed(1))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v", err)
	}
	view := d.CellView(0)

	defer func() {
		if recover() == nil {
			t.Errorf("Vertex(out of range) did not panic")
		}
	}()
	view.Vertex(view.NumVertices() + 1)
}
