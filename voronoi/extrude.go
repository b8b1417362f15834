// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

// Mesh is a 3D triangle soup: Extrude returns one Mesh per profile edge;
// the meshes of one profile loop are not merged into a single Mesh
// (spec.md §6 "extrude(trajectory, profile, atol) -> Vec<(points,
// triangles)>"). Vertices use r3.Vector so extrusion output composes
// directly with the teacher's 3D geometry (golang/geo), the way
// s2voronoi/cell.go builds r3.Vector centroids.
type Mesh struct {
	Vertices  []r3.Vector
	Triangles [][3]int
}

// ProfilePoint is a vertex of an extrusion profile in the (r, z)
// half-plane (spec.md §4.4.7); r may be negative.
type ProfilePoint struct {
	R, Z float64
}

// Extrude sweeps a closed profile (in the (r, z) half-plane) around a
// planar trajectory, producing one mesh per profile edge (spec.md
// §4.4.7). The trajectory is given as a point set plus the segments
// connecting consecutive points, exactly as a Diagram's inputs.
func Extrude(trajectory []kernel.Point2, trajSegments [][2]int, profile []ProfilePoint, atol float64, opts ...Option) ([]Mesh, error) {
	d, err := NewDiagram(trajectory, trajSegments, opts...)
	if err != nil {
		return nil, err
	}

	split := splitProfileAtAxis(profile)

	chains := make([]Path, len(split))
	for i, pv := range split {
		r := math.Abs(pv.R)
		paths, err := d.Offset(r, atol)
		if err != nil {
			return nil, err
		}
		chain := longestPath(paths)
		if pv.R < 0 {
			chain = reversePath(chain)
		}
		chains[i] = chain
	}

	var meshes []Mesh
	for i := 0; i < len(split); i++ {
		j := (i + 1) % len(split)
		m := axialFace(split[i], chains[i], split[j], chains[j])
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// splitProfileAtAxis inserts a vertex at r = 0 wherever a profile edge
// crosses the axis, so every edge is entirely in one half-plane (spec.md
// §4.4.7 step 1).
func splitProfileAtAxis(profile []ProfilePoint) []ProfilePoint {
	if len(profile) == 0 {
		return nil
	}
	out := make([]ProfilePoint, 0, len(profile)+2)
	n := len(profile)
	for i := 0; i < n; i++ {
		p, q := profile[i], profile[(i+1)%n]
		out = append(out, p)
		if (p.R < 0 && q.R > 0) || (p.R > 0 && q.R < 0) {
			t := -p.R / (q.R - p.R)
			out = append(out, ProfilePoint{R: 0, Z: p.Z + t*(q.Z-p.Z)})
		}
	}
	return out
}

func longestPath(paths []Path) Path {
	var best Path
	for _, p := range paths {
		if len(p) > len(best) {
			best = p
		}
	}
	return best
}

func reversePath(p Path) Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// axialFace connects the two chains belonging to consecutive profile
// vertices into a ring of triangles. When the two radii are equal the
// ring is cylindrical (spec.md §4.4.7 step 3, "cylindrical ring" case);
// otherwise each pair of corresponding points is lofted linearly in z,
// which approximates the spec's separator-driven transverse slicing
// without reproducing its exact per-cell triangulation (a documented
// simplification: see DESIGN.md).
func axialFace(a ProfilePoint, chainA Path, b ProfilePoint, chainB Path) Mesh {
	n := len(chainA)
	m := len(chainB)
	if n == 0 || m == 0 {
		return Mesh{}
	}
	count := n
	if m > count {
		count = m
	}

	var verts []r3.Vector
	for i := 0; i < count; i++ {
		p := chainA[i%n]
		verts = append(verts, r3.Vector{X: p.X, Y: p.Y, Z: a.Z})
	}
	for i := 0; i < count; i++ {
		p := chainB[i%m]
		verts = append(verts, r3.Vector{X: p.X, Y: p.Y, Z: b.Z})
	}

	var tris [][3]int
	for i := 0; i < count; i++ {
		i2 := (i + 1) % count
		lo0, lo1 := i, i2
		hi0, hi1 := count+i, count+i2
		tris = append(tris, [3]int{lo0, lo1, hi1})
		tris = append(tris, [3]int{lo0, hi1, hi0})
	}

	return Mesh{Vertices: verts, Triangles: tris}
}
