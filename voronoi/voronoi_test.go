// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"math"
	"testing"

	"github.com/peremato/csgvoronoi/voronoi/corner"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/site"
)

func TestNewDiagram_TwoPoints(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	d, err := NewDiagram(points, nil, WithSeed(1))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}
	if len(d.sites) != 2+3 {
		t.Fatalf("len(sites) = %d, want 5 (2 points + 3 fake cells)", len(d.sites))
	}
	if d.tbl.NumNodes() == 0 {
		t.Fatalf("NumNodes() = 0, want > 0")
	}
}

func TestNewDiagram_CrossingSegmentsRejected(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	segments := [][2]int{{1, 2}, {3, 4}}

	_, err := NewDiagram(points, segments, WithSeed(1))
	if err == nil {
		t.Fatalf("NewDiagram(...) error = nil, want CrossingSegments")
	}
}

func TestOppositeInvolution(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	d, err := NewDiagram(points, nil, WithSeed(7))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v", err)
	}
	tbl := d.Table()
	for e := corner.Edge(0); int(e) < tbl.NumEdges(); e++ {
		o := tbl.Opposite(e)
		if o == corner.NoEdge {
			continue
		}
		if got := tbl.Opposite(o); got != e {
			t.Errorf("Opposite(Opposite(%v)) = %v, want %v", e, got, e)
		}
	}
}

func TestSeparatorSymmetry(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	d, err := NewDiagram(points, nil, WithSeed(7))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v", err)
	}
	tbl := d.Table()
	for e := corner.Edge(0); int(e) < tbl.NumEdges(); e++ {
		o := tbl.Opposite(e)
		if o == corner.NoEdge {
			continue
		}
		se := d.Separator(e)
		so := d.Separator(o)
		if se == nil || so == nil {
			t.Fatalf("edge %v or its opposite %v has no separator", e, o)
		}
		want := se.Reverse()
		for _, r := range []float64{se.RMin + 1, se.RMin + 5} {
			a := want.Evaluate(kernel.BranchPlus, r)
			b := so.Evaluate(kernel.BranchPlus, r)
			if math.Abs(a.X-b.X) > 1e-6 || math.Abs(a.Y-b.Y) > 1e-6 {
				t.Errorf("edge %v: reverse(separator(e)) != separator(opposite(e)) at r=%v: %v vs %v", e, r, a, b)
			}
		}
	}
}

func TestNewDiagram_SegmentSplitsIntoOrientedHalves(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: 5, Y: -8}}
	segments := [][2]int{{1, 2}}

	d, err := NewDiagram(points, segments, WithSeed(1))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}

	// splitSegment appends exactly one right-half cell followed by one
	// left-half cell per segment it processes (voronoi.go's newCell
	// calls in splitSegment); with a single segment these are the last
	// two entries in d.sites.
	n := len(d.sites)
	rightCell, leftCell := corner.Cell(n-2), corner.Cell(n-1)

	right, left := d.sites[rightCell], d.sites[leftCell]
	if !right.IsSegment || right.Half != site.SideRight {
		t.Fatalf("sites[%d] = %+v, want a SideRight segment half", rightCell, right)
	}
	if !left.IsSegment || left.Half != site.SideLeft {
		t.Fatalf("sites[%d] = %+v, want a SideLeft segment half", leftCell, left)
	}

	if got := d.tbl.Star(rightCell); len(got) == 0 {
		t.Errorf("Star(rightCell) is empty, want the half to own live triangles")
	}
	if got := d.tbl.Star(leftCell); len(got) == 0 {
		t.Errorf("Star(leftCell) is empty, want the half to own live triangles")
	}

	// The original, now-superseded segment cell must not still own any
	// live corner entries: splitSegment is supposed to move every
	// incident apex off of it onto the oriented halves.
	segCell := corner.Cell(n - 3)
	for e := corner.Edge(0); int(e) < d.tbl.NumEdges(); e++ {
		if d.tbl.Left(e) == segCell {
			t.Errorf("edge %v still has the unsplit segment cell %d as its apex after splitting", e, segCell)
		}
	}
}

func TestEulerFormula(t *testing.T) {
	points := []kernel.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: 2, Y: 3}}
	d, err := NewDiagram(points, nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v", err)
	}
	tbl := d.Table()
	nodes := tbl.NumNodes()
	edges := tbl.NumEdges()
	cells := len(d.sites)
	// Euler's formula for the triangulation: nodes - edges/2 + cells = 2
	// (spec.md §8 property 1), counting the 3 fake cells and the fake node.
	got := nodes - edges/2 + cells
	if got != 2 {
		t.Errorf("nodes(%d) - edges(%d)/2 + cells(%d) = %d, want 2", nodes, edges, cells, got)
	}
}
