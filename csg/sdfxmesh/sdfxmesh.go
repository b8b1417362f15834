// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package sdfxmesh implements csg.MeshEngine using
// github.com/deadsy/sdfx, the only signed-distance-field CAD kernel in
// the retrieved pack.
package sdfxmesh

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"

	"github.com/peremato/csgvoronoi/csg"
	"github.com/peremato/csgvoronoi/voronoi"
)

// Compile-time interface check.
var _ csg.MeshEngine = (*Adapter)(nil)

// meshCells controls the marching-cubes tessellation resolution used by
// ToMesh.
const meshCells = 150

// Adapter wraps sdf.SDF3 to implement csg.MeshEngine.
type Adapter struct{}

// New returns a new Adapter.
func New() *Adapter { return &Adapter{} }

// solid wraps an sdf.SDF3 to implement csg.Solid.
type solid struct {
	s sdf.SDF3
}

func wrap(s sdf.SDF3) csg.Solid { return solid{s: s} }

func unwrap(s csg.Solid) sdf.SDF3 {
	return s.(solid).s
}

// Box creates a box with its minimum corner at the origin, so that a
// subsequent translation (not modeled here, since csg.Realize only asks
// for axis-aligned bounding-box solids) composes intuitively.
func (a *Adapter) Box(x, y, z float64) csg.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfxmesh: Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Union returns the union of two solids.
func (a *Adapter) Union(x, y csg.Solid) csg.Solid {
	return wrap(sdf.Union3D(unwrap(x), unwrap(y)))
}

// Intersection returns the intersection of two solids.
func (a *Adapter) Intersection(x, y csg.Solid) csg.Solid {
	return wrap(sdf.Intersect3D(unwrap(x), unwrap(y)))
}

// Difference returns x minus y.
func (a *Adapter) Difference(x, y csg.Solid) csg.Solid {
	return wrap(sdf.Difference3D(unwrap(x), unwrap(y)))
}

// ToMesh triangulates a solid via marching cubes.
func (a *Adapter) ToMesh(s csg.Solid) (voronoi.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	vertIndex := make(map[v3.Vec]int)
	var verts []r3.Vector
	var tris [][3]int

	indexOf := func(p v3.Vec) int {
		if i, ok := vertIndex[p]; ok {
			return i
		}
		i := len(verts)
		vertIndex[p] = i
		verts = append(verts, r3.Vector{X: p.X, Y: p.Y, Z: p.Z})
		return i
	}

	for _, tri := range triangles {
		tris = append(tris, [3]int{
			indexOf(tri[0]),
			indexOf(tri[1]),
			indexOf(tri[2]),
		})
	}

	return voronoi.Mesh{Vertices: verts, Triangles: tris}, nil
}
