// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package corner implements the mutable corner-table triangulation the
// Voronoi construction is built on (spec.md §3 "Triangulation (corner
// table)" and §6 "Consumed"): a triangle of three cells per node, three
// directed half-edges per node, and the in-place insert/flip operations
// that the incremental Delaunay and segment-capture steps drive.
//
// Edge, Node and Cell are thin int32 index wrappers into the Table's
// growable arrays (spec.md §9: "cyclic references... resolved by
// indices"), following the teacher's own CSR-array style
// (s2voronoi.Diagram's CellVertices/CellNeighbors/CellOffsets,
// s2delaunay.Triangulation's IncidentTriangleIndices/Offsets) generalized
// from a static batch triangulation to a mutable one.
package corner

// Edge, Node and Cell are index wrappers. NoEdge/NoNode/NoCell are the
// corresponding "not set" sentinels.
type (
	Edge int32
	Node int32
	Cell int32
)

const (
	NoEdge Edge = -1
	NoNode Node = -1
	NoCell Cell = -1
)

// Table owns the triangulation's topology: three cells and three opposite
// pointers per node, plus one representative outgoing edge per cell.
type Table struct {
	// corner[e] is the cell opposite edge e within its node (spec.md §3
	// "left(e) = cell opposite the edge").
	corner []Cell
	// opposite[e] is the matching edge in the (possibly same) adjacent
	// triangle.
	opposite []Edge
	// anyEdge[c] is one outgoing edge (tail(anyEdge[c]) == c) of cell c.
	anyEdge []Edge
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// NumNodes returns the number of triangles currently in the table.
func (t *Table) NumNodes() int { return len(t.corner) / 3 }

// NumEdges returns the number of directed half-edges currently in the table.
func (t *Table) NumEdges() int { return len(t.corner) }

func nodeBase(e Edge) int32 { return int32(e) / 3 * 3 }

// Next returns the next edge in e's node, cycling 0->1->2->0.
func (t *Table) Next(e Edge) Edge {
	base := nodeBase(e)
	return Edge(base + (int32(e)-base+1)%3)
}

// Prev returns the previous edge in e's node.
func (t *Table) Prev(e Edge) Edge {
	base := nodeBase(e)
	return Edge(base + (int32(e)-base+2)%3)
}

// Opposite returns the edge matching e in the adjacent triangle.
func (t *Table) Opposite(e Edge) Edge { return t.opposite[e] }

// Left returns the cell opposite edge e (spec.md §3).
func (t *Table) Left(e Edge) Cell { return t.corner[e] }

// Tail returns the cell at the tail of directed edge e.
func (t *Table) Tail(e Edge) Cell { return t.corner[t.Next(e)] }

// Head returns the cell at the head of directed edge e.
func (t *Table) Head(e Edge) Cell { return t.corner[t.Prev(e)] }

// Node returns the node edge e belongs to.
func (t *Table) Node(e Edge) Node { return Node(int32(e) / 3) }

// Sides returns the three edges of node q, in next-order.
func (t *Table) Sides(q Node) [3]Edge {
	base := Edge(3 * int32(q))
	return [3]Edge{base, base + 1, base + 2}
}

// AnyEdge returns a representative outgoing edge of cell c.
func (t *Table) AnyEdge(c Cell) Edge {
	if int(c) >= len(t.anyEdge) {
		return NoEdge
	}
	return t.anyEdge[c]
}

// setAnyEdge records e as a (any) outgoing edge of cell c, growing the
// backing array if c has not been seen before.
func (t *Table) setAnyEdge(c Cell, e Edge) {
	if int(c) >= len(t.anyEdge) {
		grown := make([]Edge, int(c)+1)
		for i := range grown {
			grown[i] = NoEdge
		}
		copy(grown, t.anyEdge)
		t.anyEdge = grown
	}
	t.anyEdge[c] = e
}

// Star returns the outgoing edges around cell c in CCW (next/opposite
// rotation) order, starting from AnyEdge(c). It stops if it returns to the
// start or after numNodes+1 steps, which indicates malformed topology.
func (t *Table) Star(c Cell) []Edge {
	start := t.AnyEdge(c)
	if start == NoEdge {
		return nil
	}
	out := []Edge{start}
	e := t.rotateCCW(start)
	limit := t.NumNodes() + 1
	for e != start && len(out) <= limit {
		out = append(out, e)
		e = t.rotateCCW(e)
	}
	return out
}

// rotateCCW returns the next outgoing edge around tail(e), going CCW:
// opposite(prev(e)).
func (t *Table) rotateCCW(e Edge) Edge {
	return t.Opposite(t.Prev(e))
}

// newNode appends one zeroed node (three fresh edge slots) and returns its
// index.
func (t *Table) newNode() Node {
	q := Node(t.NumNodes())
	t.corner = append(t.corner, NoCell, NoCell, NoCell)
	t.opposite = append(t.opposite, NoEdge, NoEdge, NoEdge)
	return q
}

// NewNodes allocates n fresh node slots and returns their indices, per the
// corner-table's `newnodes!` contract (spec.md §6).
func (t *Table) NewNodes(n int) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i] = t.newNode()
	}
	return out
}

// Bootstrap creates the first node directly from three cells, with all
// three sides initially unopposed (NoEdge) — used once, to seed the outer
// fake triangle (spec.md §4.4.1).
func (t *Table) Bootstrap(a, b, c Cell) Node {
	q := t.newNode()
	base := int32(3 * q)
	t.corner[base+0] = a
	t.corner[base+1] = b
	t.corner[base+2] = c
	t.setAnyEdge(a, Edge(base+2))
	t.setAnyEdge(b, Edge(base+0))
	t.setAnyEdge(c, Edge(base+1))
	return q
}

// Glue sets e and its mate as mutual opposites. Used to stitch together
// nodes created by Bootstrap or NewNodes before the table settles into a
// consistent triangulation.
func (t *Table) Glue(e, mate Edge) {
	t.opposite[e] = mate
	t.opposite[mate] = e
}

// Insert splits the triangle at node q into three triangles around a new
// cell c (spec.md §4.4.2 step 2, §6 "insert!"), returning the three
// boundary edges of the original triangle (now re-homed, one per new
// sub-triangle) so the caller can push them for incircle testing.
func (t *Table) Insert(q Node, c Cell) [3]Edge {
	e0 := Edge(3 * int32(q))
	e1 := t.Next(e0)
	e2 := t.Next(e1)

	a0 := t.corner[e0]
	a1 := t.corner[e1]
	a2 := t.corner[e2]
	opp0 := t.opposite[e0]
	opp1 := t.opposite[e1]
	opp2 := t.opposite[e2]

	nn := t.NewNodes(2)
	n1, n2 := nn[0], nn[1]

	// Triangle 0 reuses q: (a1, a2, c).
	t.corner[3*int32(q)+0] = c
	t.corner[3*int32(q)+1] = a1
	t.corner[3*int32(q)+2] = a2
	// Triangle 1 (n1): (a2, a0, c).
	t.corner[3*int32(n1)+0] = c
	t.corner[3*int32(n1)+1] = a2
	t.corner[3*int32(n1)+2] = a0
	// Triangle 2 (n2): (a0, a1, c).
	t.corner[3*int32(n2)+0] = c
	t.corner[3*int32(n2)+1] = a0
	t.corner[3*int32(n2)+2] = a1

	newE0 := Edge(3*int32(q) + 0)
	newE1 := Edge(3*int32(n1) + 0)
	newE2 := Edge(3*int32(n2) + 0)

	t.reglue(newE0, opp0)
	t.reglue(newE1, opp1)
	t.reglue(newE2, opp2)

	// Internal spokes from c.
	t.Glue(Edge(3*int32(q)+1), Edge(3*int32(n1)+2))
	t.Glue(Edge(3*int32(q)+2), Edge(3*int32(n2)+1))
	t.Glue(Edge(3*int32(n1)+1), Edge(3*int32(n2)+2))

	t.setAnyEdge(a0, Edge(3*int32(n2)+0))
	t.setAnyEdge(a1, Edge(3*int32(q)+0))
	t.setAnyEdge(a2, Edge(3*int32(n1)+0))
	t.setAnyEdge(c, Edge(3*int32(q)+2))

	return [3]Edge{newE0, newE1, newE2}
}

// reglue sets e's opposite to mate and, if mate exists, points mate's
// opposite back at e.
func (t *Table) reglue(e, mate Edge) {
	t.opposite[e] = mate
	if mate != NoEdge {
		t.opposite[mate] = e
	}
}

// Flip performs the diagonal flip of the two triangles sharing edge e and
// its opposite, returning the two edges whose cross-triangle pairing
// changed (the candidates for further incircle testing in the calling
// algorithm; spec.md §4.4.2 step 3, §6 "flip!").
func (t *Table) Flip(e Edge) (Edge, Edge) {
	o := t.Opposite(e)

	ge := e
	go_ := o
	ga := t.Next(ge)
	gb := t.Prev(ge)
	gc := t.Next(go_)
	gd := t.Prev(go_)

	T := t.corner[ga]
	H := t.corner[gc]
	L := t.corner[ge]
	R := t.corner[go_]

	xLT := t.opposite[gb]
	xTR := t.opposite[gc]
	xRH := t.opposite[gd]
	xHL := t.opposite[ga]

	t.corner[ge] = T
	t.corner[ga] = R
	t.corner[gb] = L
	t.corner[go_] = H
	t.corner[gc] = L
	t.corner[gd] = R

	t.reglue(ga, xLT)
	t.reglue(gb, xTR)
	t.reglue(gc, xRH)
	t.reglue(gd, xHL)

	t.setAnyEdge(T, gb)
	t.setAnyEdge(H, gd)
	t.setAnyEdge(L, ga)
	t.setAnyEdge(R, ge)

	return gb, gc
}

// SwapNodes exchanges the full contents (corners, opposite pointers, and
// the incident cells' representative edges) of nodes q1 and q2, per the
// corner-table's `swapnodes!` contract (spec.md §6) — used when compacting
// the node array after cells are removed or renumbered.
func (t *Table) SwapNodes(q1, q2 Node) {
	if q1 == q2 {
		return
	}
	b1, b2 := int32(3*q1), int32(3*q2)
	for i := int32(0); i < 3; i++ {
		t.corner[b1+i], t.corner[b2+i] = t.corner[b2+i], t.corner[b1+i]
		t.opposite[b1+i], t.opposite[b2+i] = t.opposite[b2+i], t.opposite[b1+i]
	}
	// Any external opposite pointers into these nodes' old positions must
	// follow the swap.
	for i := int32(0); i < 3; i++ {
		if op := t.opposite[b1+i]; op != NoEdge {
			t.opposite[op] = Edge(b1 + i)
		}
		if op := t.opposite[b2+i]; op != NoEdge {
			t.opposite[op] = Edge(b2 + i)
		}
	}
	for i := int32(0); i < 3; i++ {
		c1, c2 := t.corner[b1+i], t.corner[b2+i]
		if c1 != NoCell {
			t.setAnyEdge(c1, t.representativeFor(c1, Edge(b1+i)))
		}
		if c2 != NoCell {
			t.setAnyEdge(c2, t.representativeFor(c2, Edge(b2+i)))
		}
	}
}

// representativeFor returns an outgoing edge of cell c near hint (hint
// itself if it already qualifies, otherwise one of the other two edges of
// hint's node).
func (t *Table) representativeFor(c Cell, hint Edge) Edge {
	if t.Tail(hint) == c {
		return hint
	}
	n1 := t.Next(hint)
	if t.Tail(n1) == c {
		return n1
	}
	return t.Prev(hint)
}

// MoveCell rewrites every occurrence of old as the apex of edges in es to
// new, and updates new's representative edge. Used when a segment site is
// split into oriented left/right halves (spec.md §4.4.5, §6 "movecell!"):
// the edges on one side of the segment have their apex identity moved from
// the unsplit segment cell to its oriented half.
func (t *Table) MoveCell(old, new Cell, es []Edge) {
	for _, e := range es {
		if t.corner[e] == old {
			t.corner[e] = new
		}
	}
	if len(es) > 0 {
		t.setAnyEdge(new, t.bestOutgoing(new, es))
	}
}

// bestOutgoing returns whichever edge among es has tail == c, falling back
// to the first element if none directly qualifies (the caller is expected
// to have included at least one edge whose *other* positions do).
func (t *Table) bestOutgoing(c Cell, es []Edge) Edge {
	for _, e := range es {
		if t.Tail(e) == c {
			return e
		}
		if n := t.Next(e); t.Tail(n) == c {
			return n
		}
		if p := t.Prev(e); t.Tail(p) == c {
			return p
		}
	}
	return es[0]
}
