// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi implements the planar Voronoi diagram generalized to
// point and segment sites (VRONI/Kim style), built incrementally over a
// mutable corner-table triangulation (package corner). It is the
// composition root of the kernel/separator/tripoint layers: an
// incremental Bowyer-Watson point insertion, followed by segment
// insertion (capture and flip), followed by segment splitting into
// oriented left/right half-cells.
package voronoi

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/peremato/csgvoronoi/voronoi/corner"
	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/separator"
	"github.com/peremato/csgvoronoi/voronoi/site"
	"github.com/peremato/csgvoronoi/voronoi/tripoint"
)

// maxFindNodeSteps bounds the point-location walk (spec's "liveness
// check"); exceeding it indicates malformed topology, a programming
// error rather than a recoverable condition.
const maxFindNodeSteps = 1000

// Diagram owns the whole triangulation plus the geometric attributes
// attached to its edges and nodes. It is built once via NewDiagram and
// frozen before offset queries (mirrors the teacher's NewDiagram/
// DiagramOption construction, generalized from sphere cells to planar
// point+segment sites).
type Diagram struct {
	tbl *corner.Table

	sites []site.Site

	seps   []*separator.Separator
	branch []kernel.Branch

	geomNode   []kernel.Point2
	nodeRadius []float64

	neighbours []int

	fakeCells [3]corner.Cell
	fakeNode  corner.Node

	eps    float64
	rng    *rand.Rand
	frozen bool
}

// Option configures a Diagram at construction time.
type Option func(*Diagram)

// WithEps overrides the default geometric tolerance (1e-9).
func WithEps(eps float64) Option {
	return func(d *Diagram) { d.eps = eps }
}

// WithSeed overrides the default insertion-order seed (1).
func WithSeed(seed int64) Option {
	return func(d *Diagram) { d.rng = rand.New(rand.NewSource(seed)) }
}

// NewDiagram builds the Voronoi diagram of points and the given segments
// (pairs of 1-based point indices, matching spec.md §8's scenarios).
// Construction is batch: all sites are known up front, and the returned
// diagram is immediately frozen for querying.
func NewDiagram(points []kernel.Point2, segments [][2]int, opts ...Option) (*Diagram, error) {
	d := &Diagram{
		tbl: corner.New(),
		eps: 1e-9,
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.bootstrap(points)

	order := d.rng.Perm(len(points))
	pointCells := make([]corner.Cell, len(points))
	for _, i := range order {
		c, err := d.insertPoint(points[i])
		if err != nil {
			return nil, err
		}
		pointCells[i] = c
	}

	d.neighbours = make([]int, len(points))
	for _, seg := range segments {
		ai, bi := seg[0]-1, seg[1]-1
		d.neighbours[ai]++
		d.neighbours[bi]++
	}

	segCells := make([]corner.Cell, len(segments))
	for i, seg := range segments {
		ai, bi := seg[0]-1, seg[1]-1
		c, err := d.insertSegment(pointCells[ai], points[ai], points[bi])
		if err != nil {
			return nil, err
		}
		segCells[i] = c
	}

	for _, c := range segCells {
		if err := d.splitSegment(c); err != nil {
			return nil, err
		}
	}

	d.freeze()
	return d, nil
}

// Table exposes the underlying corner table.
func (d *Diagram) Table() *corner.Table { return d.tbl }

// Site returns the site attached to cell c.
func (d *Diagram) Site(c corner.Cell) site.Site { return d.sites[c] }

// Separator returns the separator attached to edge e, or nil if not yet
// computed.
func (d *Diagram) Separator(e corner.Edge) *separator.Separator { return d.seps[e] }

// Branch returns the branch sign of edge e's node with respect to
// Separator(e).
func (d *Diagram) Branch(e corner.Edge) kernel.Branch { return d.branch[e] }

// GeometricNode returns the 2D position of node q (the Voronoi vertex).
func (d *Diagram) GeometricNode(q corner.Node) kernel.Point2 { return d.geomNode[q] }

// NodeRadius returns the common distance from GeometricNode(q) to each of
// q's three incident sites. Frozen diagrams store the true (square-rooted)
// distance; during construction it is the same Euclidean value computed
// directly by tripoint.Solve (this implementation does not cache the
// squared form during construction, trading the source's micro-optimization
// for a simpler single representation).
func (d *Diagram) NodeRadius(q corner.Node) float64 { return d.nodeRadius[q] }

// Neighbours returns the number of incident segments of point index i,
// used to detect trajectory endpoints during offsetting.
func (d *Diagram) Neighbours(i int) int { return d.neighbours[i] }

func (d *Diagram) newCell(s site.Site) corner.Cell {
	c := corner.Cell(len(d.sites))
	d.sites = append(d.sites, s)
	return c
}

func (d *Diagram) growTo(n int) {
	for len(d.seps) < n {
		d.seps = append(d.seps, nil)
		d.branch = append(d.branch, kernel.BranchBad)
	}
	for len(d.geomNode) < n {
		d.geomNode = append(d.geomNode, kernel.Point2{})
		d.nodeRadius = append(d.nodeRadius, math.NaN())
	}
}

func (d *Diagram) setSeparator(e corner.Edge, sep *separator.Separator) {
	d.growTo(int(e) + 1)
	d.seps[e] = sep
}

func (d *Diagram) setBranch(e corner.Edge, b kernel.Branch) {
	d.growTo(int(e) + 1)
	d.branch[e] = b
}

func (d *Diagram) setNode(q corner.Node, p kernel.Point2, r float64) {
	n := int(q) + 1
	for len(d.geomNode) < n {
		d.geomNode = append(d.geomNode, kernel.Point2{})
		d.nodeRadius = append(d.nodeRadius, math.NaN())
	}
	d.geomNode[q] = p
	d.nodeRadius[q] = r
}

// position returns the representative 2D point of cell c, valid for fake
// cells and (unsplit) point cells — the only cells examined during point
// location and Bowyer-Watson, before any segment sites exist.
func (d *Diagram) position(c corner.Cell) kernel.Point2 {
	s := d.sites[c]
	if s.IsSegment {
		panic("voronoi: position() called on a segment cell")
	}
	return s.P
}

// refPoint returns a representative 2D point for any cell, including
// segment cells (their midpoint) — used where an orientation test needs
// "some" position rather than an exact site coordinate, such as deciding
// which side of a just-split segment a neighbouring (possibly still
// unsplit) segment cell falls on.
func (d *Diagram) refPoint(c corner.Cell) kernel.Point2 {
	s := d.sites[c]
	if s.IsSegment {
		return s.A.Add(s.B).Mul(0.5)
	}
	return s.P
}

// bootstrap creates the three fake cells and the single fake node
// enclosing all input points (spec.md §4.4.1).
func (d *Diagram) bootstrap(points []kernel.Point2) {
	m := 1.0
	for _, p := range points {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	m = 3 * (m + 1)

	// Equilateral-ish triangle of "infinity" points around the origin.
	far := func(angleDeg float64) kernel.Point2 {
		rad := angleDeg * math.Pi / 180
		return kernel.Point2{X: m * math.Cos(rad), Y: m * math.Sin(rad)}
	}
	p0 := far(90)
	p1 := far(210)
	p2 := far(330)

	c0 := d.newCell(site.NewPoint(-1, p0))
	c1 := d.newCell(site.NewPoint(-1, p1))
	c2 := d.newCell(site.NewPoint(-1, p2))
	d.fakeCells = [3]corner.Cell{c0, c1, c2}

	q := d.tbl.Bootstrap(c0, c1, c2)
	d.fakeNode = q
	if err := d.nodeData(q); err != nil {
		panic(fmt.Sprintf("voronoi: bootstrap tripoint failed: %v", err))
	}
}

// findNode walks the triangulation from the fake node to locate the
// triangle containing p (spec.md §4.4.2 step 1).
func (d *Diagram) findNode(p kernel.Point2) corner.Node {
	q := d.fakeNode
	for step := 0; step < maxFindNodeSteps; step++ {
		sides := d.tbl.Sides(q)
		moved := false
		for _, e := range sides {
			a := d.position(d.tbl.Tail(e))
			b := d.position(d.tbl.Head(e))
			if !kernel.IsLeftOrOn(a, b, p) {
				o := d.tbl.Opposite(e)
				if o == corner.NoEdge {
					continue
				}
				q = d.tbl.Node(o)
				moved = true
				break
			}
		}
		if !moved {
			return q
		}
	}
	panic("voronoi: findNode did not converge")
}

// insertPoint inserts a single point site via Bowyer-Watson (spec.md
// §4.4.2 steps 2-3).
func (d *Diagram) insertPoint(p kernel.Point2) (corner.Cell, error) {
	c := d.newCell(site.NewPoint(len(d.sites), p))

	q := d.findNode(p)
	boundary := d.tbl.Insert(q, c)

	stack := append([]corner.Edge{}, boundary[0], boundary[1], boundary[2])
	if err := d.refreshAfterInsert(q, boundary); err != nil {
		return 0, err
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		o := d.tbl.Opposite(e)
		if o == corner.NoEdge {
			continue
		}
		a := d.position(d.tbl.Tail(o))
		b := d.position(d.tbl.Head(o))
		x := d.position(d.tbl.Left(o))
		if kernel.InCircle(a, b, x, p) {
			e1, e2 := d.tbl.Flip(e)
			if err := d.refreshAfterFlip(e); err != nil {
				return 0, err
			}
			stack = append(stack, e1, e2)
		}
	}
	return c, nil
}

// refreshAfterInsert recomputes separator/branch/node data for the three
// new nodes created by a triangle split.
func (d *Diagram) refreshAfterInsert(oldNode corner.Node, boundary [3]corner.Edge) error {
	nodes := map[corner.Node]bool{oldNode: true}
	for _, e := range boundary {
		nodes[d.tbl.Node(e)] = true
	}
	for q := range nodes {
		for _, e := range d.tbl.Sides(q) {
			if err := d.edgeData(e); err != nil {
				return err
			}
		}
	}
	for q := range nodes {
		if err := d.nodeData(q); err != nil {
			return err
		}
	}
	return nil
}

// refreshAfterFlip recomputes attributes for the two nodes touched by
// flipping e.
func (d *Diagram) refreshAfterFlip(e corner.Edge) error {
	o := d.tbl.Opposite(e)
	for _, q := range []corner.Node{d.tbl.Node(e), d.tbl.Node(o)} {
		for _, s := range d.tbl.Sides(q) {
			if err := d.edgeData(s); err != nil {
				return err
			}
		}
	}
	for _, q := range []corner.Node{d.tbl.Node(e), d.tbl.Node(o)} {
		if err := d.nodeData(q); err != nil {
			return err
		}
	}
	return nil
}

// edgeData computes separator(e) and its reverse on opposite(e) from the
// two cells the edge separates (spec.md §4.4.4).
func (d *Diagram) edgeData(e corner.Edge) error {
	o := d.tbl.Opposite(e)
	if o == corner.NoEdge {
		return nil
	}
	a := d.sites[d.tbl.Left(e)]
	b := d.sites[d.tbl.Left(o)]
	sep, err := separator.New(a, b, d.eps)
	if err != nil {
		return err
	}
	d.setSeparator(e, sep)
	d.setSeparator(o, sep.Reverse())
	return nil
}

// nodeData computes the tripoint of q's three cells and stores the
// resulting geometric node, radius and the three edge branches (spec.md
// §4.4.4).
func (d *Diagram) nodeData(q corner.Node) error {
	sides := d.tbl.Sides(q)
	c1 := d.sites[d.tbl.Left(sides[0])]
	c2 := d.sites[d.tbl.Left(sides[1])]
	c3 := d.sites[d.tbl.Left(sides[2])]

	res, err := tripoint.Solve(c1, c2, c3, d.eps)
	if err != nil {
		return err
	}
	if math.IsNaN(res.R) {
		return fmt.Errorf("voronoi: no tripoint for node %d", q)
	}
	d.setNode(q, res.Point, res.R)
	d.setBranch(sides[0], res.B1)
	d.setBranch(sides[1], res.B2)
	d.setBranch(sides[2], res.B3)
	return nil
}

// insertSegment inserts segment site (a,b) into an already-triangulated
// point set (spec.md §4.4.3).
func (d *Diagram) insertSegment(aCell corner.Cell, a, b kernel.Point2) (corner.Cell, error) {
	c := d.newCell(site.NewSegment(len(d.sites), a, b))

	root, err := d.findRootNode(aCell, a, b)
	if err != nil {
		return 0, err
	}

	boundary := d.tbl.Insert(root, c)
	stack := append([]corner.Edge{}, boundary[0], boundary[1], boundary[2])
	if err := d.refreshAfterInsert(root, boundary); err != nil {
		return 0, err
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		o := d.tbl.Opposite(e)
		if o == corner.NoEdge {
			continue
		}
		if d.edgeCapture(e) {
			e1, e2 := d.tbl.Flip(e)
			if err := d.refreshAfterFlip(e); err != nil {
				return 0, err
			}
			stack = append(stack, e1, e2)
		}
	}
	return c, nil
}

// findRootNode scans the star of cell a for nodes whose geometric node
// projects strictly inside segment (a,b), picking the closest by
// point-to-segment distance (spec.md §4.4.3 step 1).
func (d *Diagram) findRootNode(aCell corner.Cell, a, b kernel.Point2) (corner.Node, error) {
	dir := b.Sub(a)
	len2 := dir.Norm2()

	best := corner.NoNode
	bestDist := math.Inf(1)
	for _, e := range d.tbl.Star(aCell) {
		q := d.tbl.Node(e)
		gp := d.geomNode[q]
		t := gp.Sub(a).Dot(dir) / len2
		if t <= 0 || t >= 1 {
			continue
		}
		dist := kernel.SegDistance2(a, b, gp)
		if dist < bestDist {
			bestDist = dist
			best = q
		}
	}
	if best == corner.NoNode {
		return corner.NoNode, fmt.Errorf("voronoi: no node influenced by segment")
	}
	return best, nil
}

// edgeCapture reports whether the new segment site captures the triangle
// across e, by the lexicographic (branch, noderadius) comparison of
// spec.md §4.4.3.
func (d *Diagram) edgeCapture(e corner.Edge) bool {
	o := d.tbl.Opposite(e)
	be := d.branch[e]
	bo := d.branch[o].Negate()
	if be != bo {
		return be < bo
	}
	return d.nodeRadius[d.tbl.Node(e)] < d.nodeRadius[d.tbl.Node(o)]
}

// splitSegment replaces segment cell s with its oriented right/left
// halves (spec.md §4.4.5). For each triangle around s, the apex cell
// opposite the outgoing edge decides which side of the segment's
// supporting line that triangle falls on; Table.MoveCell then re-homes
// the corner entry that actually equals s — which, by the Tail/Next
// identity (Tail(e) = corner[Next(e)]), is Next(e), not e itself.
func (d *Diagram) splitSegment(s corner.Cell) error {
	orig := d.sites[s]
	rightSite, leftSite := orig.Split()
	rightCell := d.newCell(rightSite)
	leftCell := d.newCell(leftSite)

	star := d.tbl.Star(s)
	var rightEdges, leftEdges []corner.Edge
	for _, e := range star {
		apex := d.refPoint(d.tbl.Left(e))
		target := d.tbl.Next(e)
		if kernel.IsLeft(orig.A, orig.B, apex) {
			leftEdges = append(leftEdges, target)
		} else {
			rightEdges = append(rightEdges, target)
		}
	}

	d.tbl.MoveCell(s, rightCell, rightEdges)
	d.tbl.MoveCell(s, leftCell, leftEdges)

	touched := map[corner.Node]bool{}
	for _, e := range append(append([]corner.Edge{}, rightEdges...), leftEdges...) {
		touched[d.tbl.Node(e)] = true
	}
	for q := range touched {
		for _, e := range d.tbl.Sides(q) {
			if err := d.edgeData(e); err != nil {
				return err
			}
		}
	}
	for q := range touched {
		if err := d.nodeData(q); err != nil {
			return err
		}
	}
	return nil
}

// freeze marks the diagram as complete; NodeRadius already holds true
// Euclidean distances (see the NodeRadius doc comment), so freezing is a
// pure bookkeeping step here.
func (d *Diagram) freeze() {
	d.frozen = true
}

// Frozen reports whether construction has completed.
func (d *Diagram) Frozen() bool { return d.frozen }
