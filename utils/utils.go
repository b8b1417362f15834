// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating random
// point+segment inputs to the planar Voronoi/offset engine.
package utils

import (
	"math"
	"math/rand"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

// GenerateRandomPoints generates a vector of random points uniformly
// distributed inside a disc of the given radius centred at the origin.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, radius float64, seed int64) []kernel.Point2 {
	random := rand.New(rand.NewSource(seed))
	points := make([]kernel.Point2, cnt)

	for i := range cnt {
		r := radius * math.Sqrt(random.Float64())
		theta := random.Float64() * 2 * math.Pi
		points[i] = kernel.Point2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return points
}

// GenerateRandomPolygon generates a closed, non-self-intersecting n-gon
// whose vertices sit at evenly spaced angles and at 0.9 to 1.1 times the
// given radius from the origin, returned as points plus the
// 1-based segment index pairs connecting consecutive vertices — a
// convenient randomized segment-site input for the offset engine.
func GenerateRandomPolygon(n int, radius float64, seed int64) ([]kernel.Point2, [][2]int) {
	random := rand.New(rand.NewSource(seed))
	points := make([]kernel.Point2, n)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		jitter := 1 + (random.Float64()-0.5)*0.2
		r := radius * jitter
		points[i] = kernel.Point2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	segments := make([][2]int, n)
	for i := range n {
		segments[i] = [2]int{i + 1, (i+1)%n + 1}
	}
	return points, segments
}
