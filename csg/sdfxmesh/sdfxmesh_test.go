// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sdfxmesh

import "testing"

func TestBoxToMesh_ProducesTriangles(t *testing.T) {
	a := New()
	box := a.Box(2, 2, 2)

	mesh, err := a.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(Box) error = %v, want nil", err)
	}
	if len(mesh.Triangles) == 0 {
		t.Fatalf("ToMesh(Box) produced 0 triangles, want > 0")
	}
	if len(mesh.Vertices) == 0 {
		t.Fatalf("ToMesh(Box) produced 0 vertices, want > 0")
	}
}

func TestUnionOfTwoBoxes_ProducesTriangles(t *testing.T) {
	a := New()
	x := a.Box(2, 2, 2)
	y := a.Box(2, 2, 2)

	u := a.Union(x, y)
	mesh, err := a.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh(Union) error = %v, want nil", err)
	}
	if len(mesh.Triangles) == 0 {
		t.Fatalf("ToMesh(Union) produced 0 triangles, want > 0")
	}
}
