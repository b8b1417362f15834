// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package csg

import (
	"errors"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"

	"github.com/peremato/csgvoronoi/voronoi"
)

// hullEps is the planarity/degeneracy tolerance passed to QuickHull,
// matching the teacher's defaultEps for its sphere-triangulation use of
// the same library.
const hullEps = 1e-12

// convexHull triangulates the 3D convex hull of points (spec.md §1's
// excluded "hull" CSG primitive), grounded directly on the teacher's
// quickhull-go/v2 usage for Delaunay triangulation by convex-hull lift:
// here the hull is the primary output, not an intermediate step.
func convexHull(points []HullPoint) (voronoi.Mesh, error) {
	if len(points) < 4 {
		return voronoi.Mesh{}, errors.New("csg: convexHull: at least 4 points required")
	}
	verts := make([]r3.Vector, len(points))
	for i, p := range points {
		verts[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(verts, true, true, hullEps)
	if len(ch.Indices)%3 != 0 {
		return voronoi.Mesh{}, errors.New("csg: convexHull: inconsistent index count from QuickHull")
	}

	tris := make([][3]int, len(ch.Indices)/3)
	for i := range tris {
		tris[i] = [3]int{ch.Indices[3*i], ch.Indices[3*i+1], ch.Indices[3*i+2]}
	}
	return voronoi.Mesh{Vertices: verts, Triangles: tris}, nil
}
