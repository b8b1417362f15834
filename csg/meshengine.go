// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package csg

import "github.com/peremato/csgvoronoi/voronoi"

// Solid is an opaque handle to a 3D solid owned by a MeshEngine
// implementation (spec.md §6 "Triangle mesh engine", SPEC_FULL.md §4.5).
type Solid interface{}

// MeshEngine is the triangle-mesh-engine collaborator spec.md §6 treats
// as opaque: union/intersect/difference plus a primitive constructor and
// a final triangulation step. Only the subset csg.Realize needs for a
// two-leaf boolean is named here; csg/sdfxmesh.Adapter implements it
// against github.com/deadsy/sdfx.
type MeshEngine interface {
	Box(x, y, z float64) Solid
	Union(a, b Solid) Solid
	Intersection(a, b Solid) Solid
	Difference(a, b Solid) Solid
	ToMesh(s Solid) (voronoi.Mesh, error)
}
