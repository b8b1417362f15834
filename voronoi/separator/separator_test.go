// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package separator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/site"
)

const eps = 1e-9

func TestNew_PointPoint(t *testing.T) {
	a := site.NewPoint(0, kernel.Point2{X: 0, Y: 0})
	b := site.NewPoint(1, kernel.Point2{X: 10, Y: 0})

	sep, err := New(a, b, eps)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if sep.Variant != LineBisector {
		t.Fatalf("New(...).Variant = %v, want %v", sep.Variant, LineBisector)
	}
	want := kernel.Point2{X: 5, Y: 0}
	if diff := cmp.Diff(want, sep.Origin, cmpopts.EquateApprox(0, eps)); diff != "" {
		t.Errorf("New(...).Origin mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(sep.RMin-5) > eps {
		t.Errorf("New(...).RMin = %v, want 5", sep.RMin)
	}
}

func TestNew_SegmentPoint_PointInSegment(t *testing.T) {
	seg := site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0})
	pt := site.NewPoint(1, kernel.Point2{X: 5, Y: 0})

	_, err := New(seg, pt, eps)
	if err == nil {
		t.Fatalf("New(...) error = nil, want PointInSegment")
	}
}

func TestNew_SegmentPoint_Endpoint(t *testing.T) {
	seg := site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0})
	pt := site.NewPoint(1, kernel.Point2{X: 0, Y: 0})

	sep, err := New(seg, pt, eps)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if sep.Variant != DegenerateLine {
		t.Errorf("New(...).Variant = %v, want %v", sep.Variant, DegenerateLine)
	}
}

func TestNew_SegmentPoint_Parabola(t *testing.T) {
	seg := site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0})
	pt := site.NewPoint(1, kernel.Point2{X: 5, Y: 4})

	sep, err := New(seg, pt, eps)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if sep.Variant != Parabola {
		t.Fatalf("New(...).Variant = %v, want %v", sep.Variant, Parabola)
	}

	// At r = RMin, the apex must be equidistant from pt and from the line.
	apexDistToPt := sep.Origin.Dist(pt.P)
	if math.Abs(apexDistToPt-sep.RMin) > 1e-6 {
		t.Errorf("apex distance to point = %v, want RMin = %v", apexDistToPt, sep.RMin)
	}
}

func TestReverse_EvaluateSymmetry(t *testing.T) {
	tests := []struct {
		name string
		sep  *Separator
		r    float64
	}{
		{
			"line bisector",
			mustNew(t, site.NewPoint(0, kernel.Point2{X: 0, Y: 0}), site.NewPoint(1, kernel.Point2{X: 10, Y: 2})),
			8,
		},
		{
			"parabola",
			mustNew(t, site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0}),
				site.NewPoint(1, kernel.Point2{X: 5, Y: 4})),
			6,
		},
		{
			"half-line pair",
			mustNew(t, site.NewSegment(0, kernel.Point2{X: -5, Y: 0}, kernel.Point2{X: -1, Y: 0}),
				site.NewSegment(1, kernel.Point2{X: 0, Y: 1}, kernel.Point2{X: 0, Y: 5})),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := tt.sep.Reverse()
			got := rev.Evaluate(kernel.BranchPlus, tt.r)
			want := tt.sep.Evaluate(kernel.BranchMinus, tt.r)
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Reverse evaluate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApproximate_StraightReturnsEndpoints(t *testing.T) {
	sep := mustNew(t, site.NewPoint(0, kernel.Point2{X: 0, Y: 0}), site.NewPoint(1, kernel.Point2{X: 10, Y: 0}))
	got := sep.Approximate(5, 20, 0.1)
	want := []float64{5, 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Approximate(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ParallelSegments(t *testing.T) {
	a := site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0})
	b := site.NewSegment(1, kernel.Point2{X: 0, Y: 4}, kernel.Point2{X: 10, Y: 4})

	sep, err := New(a, b, eps)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if sep.Variant != ParallelBisector {
		t.Fatalf("New(...).Variant = %v, want %v", sep.Variant, ParallelBisector)
	}
	if math.Abs(sep.RMin-2) > eps {
		t.Errorf("New(...).RMin = %v, want 2", sep.RMin)
	}
}

func TestNew_CrossingSegments(t *testing.T) {
	a := site.NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 1, Y: 1})
	b := site.NewSegment(1, kernel.Point2{X: 1, Y: 0}, kernel.Point2{X: 0, Y: 1})

	_, err := New(a, b, eps)
	if err == nil {
		t.Fatalf("New(...) error = nil, want CrossingSegments")
	}
}

func mustNew(t *testing.T, a, b site.Site) *Separator {
	t.Helper()
	sep, err := New(a, b, eps)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	return sep
}
