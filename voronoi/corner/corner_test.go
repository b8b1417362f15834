// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package corner

import "testing"

// buildQuad builds two triangles T-H-L and R-H-T sharing the diagonal
// edge T-H, glued at position 0 of each node, returning the shared
// diagonal edge of the first node.
func buildQuad(t *Table, tCell, hCell, lCell, rCell Cell) Edge {
	q1 := t.Bootstrap(lCell, tCell, hCell) // edge0: apex L, tail T, head H
	q2 := t.Bootstrap(rCell, hCell, tCell) // edge0: apex R, tail H, head T
	e := Edge(3 * int32(q1))
	o := Edge(3 * int32(q2))
	t.Glue(e, o)
	return e
}

func TestBootstrapTailHeadLeft(t *testing.T) {
	tbl := New()
	const T, H, L, R Cell = 0, 1, 2, 3
	e := buildQuad(tbl, T, H, L, R)
	o := tbl.Opposite(e)

	if got := tbl.Left(e); got != L {
		t.Errorf("Left(e) = %v, want %v", got, L)
	}
	if got := tbl.Tail(e); got != T {
		t.Errorf("Tail(e) = %v, want %v", got, T)
	}
	if got := tbl.Head(e); got != H {
		t.Errorf("Head(e) = %v, want %v", got, H)
	}
	if got := tbl.Left(o); got != R {
		t.Errorf("Left(o) = %v, want %v", got, R)
	}
	if got := tbl.Tail(o); got != H {
		t.Errorf("Tail(o) = %v, want %v", got, H)
	}
	if got := tbl.Head(o); got != T {
		t.Errorf("Head(o) = %v, want %v", got, T)
	}
}

func TestFlipSwapsDiagonal(t *testing.T) {
	tbl := New()
	const T, H, L, R Cell = 0, 1, 2, 3
	e := buildQuad(tbl, T, H, L, R)
	o := tbl.Opposite(e)

	ga, gc := tbl.Flip(e)
	_ = ga
	_ = gc

	if got := tbl.Opposite(e); got != o {
		t.Fatalf("Opposite(e) after flip = %v, want unchanged %v", got, o)
	}
	if got := tbl.Left(e); got != T {
		t.Errorf("Left(e) after flip = %v, want %v", got, T)
	}
	if got := tbl.Tail(e); got != R {
		t.Errorf("Tail(e) after flip = %v, want %v (new diagonal R-L)", got, R)
	}
	if got := tbl.Head(e); got != L {
		t.Errorf("Head(e) after flip = %v, want %v", got, L)
	}
	if got := tbl.Left(o); got != H {
		t.Errorf("Left(o) after flip = %v, want %v", got, H)
	}

	for _, c := range []Cell{T, H, L, R} {
		ae := tbl.AnyEdge(c)
		if ae == NoEdge {
			t.Fatalf("AnyEdge(%v) = NoEdge after flip", c)
		}
		if got := tbl.Tail(ae); got != c {
			t.Errorf("Tail(AnyEdge(%v)) = %v, want %v", c, got, c)
		}
	}

	// Flipping back should restore the original diagonal, which e (now in
	// the triangle with apex R) traverses from H to T.
	tbl.Flip(e)
	if got := tbl.Tail(e); got != H {
		t.Errorf("Tail(e) after flipping back = %v, want %v", got, H)
	}
	if got := tbl.Head(e); got != T {
		t.Errorf("Head(e) after flipping back = %v, want %v", got, T)
	}
}

func TestInsertSplitsTriangle(t *testing.T) {
	tbl := New()
	const A, B, C, D Cell = 0, 1, 2, 3

	q := tbl.Bootstrap(A, B, C)
	if tbl.NumNodes() != 1 {
		t.Fatalf("NumNodes() = %d, want 1", tbl.NumNodes())
	}

	boundary := tbl.Insert(q, D)
	if tbl.NumNodes() != 3 {
		t.Fatalf("NumNodes() after Insert = %d, want 3", tbl.NumNodes())
	}

	for _, c := range []Cell{A, B, C, D} {
		ae := tbl.AnyEdge(c)
		if ae == NoEdge {
			t.Fatalf("AnyEdge(%v) = NoEdge after Insert", c)
		}
		if got := tbl.Tail(ae); got != c {
			t.Errorf("Tail(AnyEdge(%v)) = %v, want %v", c, got, c)
		}
	}

	// Each boundary edge's node must contain D plus two of {A, B, C}.
	for _, e := range boundary {
		q := tbl.Node(e)
		seen := map[Cell]bool{}
		for _, s := range tbl.Sides(q) {
			seen[tbl.Left(s)] = true
		}
		if !seen[D] {
			t.Errorf("node %v (from boundary edge %v) does not contain D", q, e)
		}
		if len(seen) != 3 {
			t.Errorf("node %v has %d distinct cells, want 3", q, len(seen))
		}
	}

	// Every glued edge's opposite must point back at it and run between
	// the same two cells in the other direction.
	for i := 0; i < tbl.NumNodes(); i++ {
		q := Node(i)
		for _, e := range tbl.Sides(q) {
			o := tbl.Opposite(e)
			if o == NoEdge {
				continue
			}
			if tbl.Opposite(o) != e {
				t.Errorf("Opposite(Opposite(%v)) = %v, want %v", e, tbl.Opposite(o), e)
			}
			if tbl.Tail(e) != tbl.Head(o) || tbl.Head(e) != tbl.Tail(o) {
				t.Errorf("edge %v / opposite %v tail-head mismatch", e, o)
			}
		}
	}

	// Star(D) should be a closed fan of exactly three spokes.
	star := tbl.Star(D)
	if len(star) != 3 {
		t.Fatalf("Star(D) = %v, want 3 edges", star)
	}
	for _, e := range star {
		if tbl.Tail(e) != D {
			t.Errorf("Star(D) edge %v has tail %v, want %v", e, tbl.Tail(e), D)
		}
	}
}

func TestNewNodesAreIsolated(t *testing.T) {
	tbl := New()
	nodes := tbl.NewNodes(3)
	if len(nodes) != 3 {
		t.Fatalf("NewNodes(3) returned %d nodes", len(nodes))
	}
	for _, q := range nodes {
		for _, e := range tbl.Sides(q) {
			if tbl.Opposite(e) != NoEdge {
				t.Errorf("fresh node %v edge %v has opposite %v, want NoEdge", q, e, tbl.Opposite(e))
			}
			if tbl.Left(e) != NoCell {
				t.Errorf("fresh node %v edge %v has left %v, want NoCell", q, e, tbl.Left(e))
			}
		}
	}
}

func TestSwapNodes(t *testing.T) {
	tbl := New()
	const A, B, C, D, E, F Cell = 0, 1, 2, 3, 4, 5
	q1 := tbl.Bootstrap(A, B, C)
	q2 := tbl.Bootstrap(D, E, F)

	tbl.SwapNodes(q1, q2)

	got1 := [3]Cell{tbl.Left(Edge(3 * int32(q1))), tbl.Left(Edge(3*int32(q1) + 1)), tbl.Left(Edge(3*int32(q1) + 2))}
	want1 := [3]Cell{D, E, F}
	if got1 != want1 {
		t.Errorf("node q1 after swap = %v, want %v", got1, want1)
	}

	for _, c := range []Cell{A, B, C, D, E, F} {
		ae := tbl.AnyEdge(c)
		if ae == NoEdge {
			t.Fatalf("AnyEdge(%v) = NoEdge after swap", c)
		}
		if got := tbl.Tail(ae); got != c {
			t.Errorf("Tail(AnyEdge(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestMoveCell(t *testing.T) {
	tbl := New()
	const Seg, Left, Right, P Cell = 0, 1, 2, 3

	q := tbl.Bootstrap(Seg, Left, P)
	es := tbl.Sides(q)

	// Only the first edge's apex (Seg) should move to Right.
	tbl.MoveCell(Seg, Right, es[:1])

	if got := tbl.Left(es[0]); got != Right {
		t.Errorf("Left(es[0]) after MoveCell = %v, want %v", got, Right)
	}
	if got := tbl.Left(es[1]); got != Left {
		t.Errorf("Left(es[1]) after MoveCell = %v, want unchanged %v", got, Left)
	}
	if ae := tbl.AnyEdge(Right); ae == NoEdge || tbl.Tail(ae) != Right {
		t.Errorf("AnyEdge(Right) = %v, invalid after MoveCell", ae)
	}
}
