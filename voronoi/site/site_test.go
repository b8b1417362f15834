// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package site

import (
	"testing"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

func TestSplit_ProducesOppositeHalves(t *testing.T) {
	s := NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 1, Y: 0})
	right, left := s.Split()

	if right.Half != SideRight {
		t.Errorf("right.Half = %v, want SideRight", right.Half)
	}
	if left.Half != SideLeft {
		t.Errorf("left.Half = %v, want SideLeft", left.Half)
	}
	if right.A != s.A || right.B != s.B || left.A != s.A || left.B != s.B {
		t.Errorf("Split() halves should keep the original endpoints")
	}
}

func TestSplit_PanicsOnPointSite(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Split() on a point site did not panic")
		}
	}()
	NewPoint(0, kernel.Point2{X: 0, Y: 0}).Split()
}

func TestSplit_PanicsOnAlreadySplit(t *testing.T) {
	s := NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 1, Y: 0})
	right, _ := s.Split()

	defer func() {
		if recover() == nil {
			t.Errorf("Split() on an already-split segment did not panic")
		}
	}()
	right.Split()
}

func TestHasEndpoint(t *testing.T) {
	s := NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 10, Y: 0})

	if p, ok := s.HasEndpoint(kernel.Point2{X: 0, Y: 0}, 1e-9); !ok || p != s.A {
		t.Errorf("HasEndpoint(A) = (%v, %v), want (%v, true)", p, ok, s.A)
	}
	if p, ok := s.HasEndpoint(kernel.Point2{X: 10, Y: 0}, 1e-9); !ok || p != s.B {
		t.Errorf("HasEndpoint(B) = (%v, %v), want (%v, true)", p, ok, s.B)
	}
	if _, ok := s.HasEndpoint(kernel.Point2{X: 5, Y: 0}, 1e-9); ok {
		t.Errorf("HasEndpoint(midpoint) = true, want false")
	}
}

func TestDirection_IsUnitVector(t *testing.T) {
	s := NewSegment(0, kernel.Point2{X: 0, Y: 0}, kernel.Point2{X: 3, Y: 4})
	d := s.Direction()
	if got := d.Norm(); got < 0.999999 || got > 1.000001 {
		t.Errorf("Direction().Norm() = %v, want ~1", got)
	}
}
