// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, 10, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, 10, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_WithinRadius(t *testing.T) {
	const (
		cnt    = 200
		radius = 5.0
		seed   = 0
	)
	points := GenerateRandomPoints(cnt, radius, seed)
	for i, p := range points {
		dist := math.Hypot(p.X, p.Y)
		if dist > radius+1e-9 {
			t.Errorf("GenerateRandomPoints(%v, %v, %v)[%d]: dist = %v, want <= %v", cnt, radius,
				seed, i, dist, radius)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt    = 10
		radius = 3.0
		seed   = 0
	)
	a := GenerateRandomPoints(cnt, radius, seed)
	b := GenerateRandomPoints(cnt, radius, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v, %v) mismatch (-want +got):\n%v", cnt, radius, seed, diff)
	}
}

func TestGenerateRandomPolygon_ClosedLoop(t *testing.T) {
	points, segments := GenerateRandomPolygon(8, 10, 1)
	if len(points) != 8 {
		t.Fatalf("GenerateRandomPolygon(8, ...) points len = %d, want 8", len(points))
	}
	if len(segments) != 8 {
		t.Fatalf("GenerateRandomPolygon(8, ...) segments len = %d, want 8", len(segments))
	}
	seen := make(map[int]int)
	for _, seg := range segments {
		seen[seg[0]]++
		seen[seg[1]]++
	}
	for i := 1; i <= 8; i++ {
		if seen[i] != 2 {
			t.Errorf("vertex %d incident to %d segments, want 2 (closed loop)", i, seen[i])
		}
	}
}
