// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package tripoint solves for the tripoint of three cyclically-ordered
// sites: the point equidistant from all three, which is the Voronoi vertex
// where their three cells meet (spec.md §4.3).
package tripoint

import (
	"errors"
	"math"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/separator"
	"github.com/peremato/csgvoronoi/voronoi/site"
	"github.com/peremato/csgvoronoi/voronoi/vorerr"
)

// Result holds the tripoint's radius and the three branch signs of the
// separators between (c1,c2), (c2,c3), (c3,c1). A zero Result with
// R = NaN and all branches kernel.BranchBad is the sentinel for "no valid
// tripoint".
type Result struct {
	R          float64
	B1, B2, B3 kernel.Branch
	Point      kernel.Point2
}

// none is the sentinel result returned when no valid tripoint exists.
var none = Result{R: math.NaN(), B1: kernel.BranchBad, B2: kernel.BranchBad, B3: kernel.BranchBad}

// Solve computes the tripoint of the cyclically-ordered sites c1, c2, c3.
// Solve(a,b,c) == rotate(Solve(b,c,a)) and differs from Solve(c,b,a), which
// is the tripoint of the oppositely-oriented triple. Returns
// vorerr.ErrNotImplemented if the triple falls into one of the
// parallel-bisector configurations the source routines leave open
// (spec.md §9) rather than guessing a geometric fallback.
func Solve(c1, c2, c3 site.Site, eps float64) (Result, error) {
	switch countSegments(c1, c2, c3) {
	case 0:
		return ppp(c1, c2, c3), nil
	case 1:
		return lpp(c1, c2, c3, eps), nil
	case 2:
		return llp(c1, c2, c3, eps)
	case 3:
		return lll(c1, c2, c3, eps)
	default:
		return none, nil
	}
}

func countSegments(c1, c2, c3 site.Site) int {
	n := 0
	for _, c := range []site.Site{c1, c2, c3} {
		if c.IsSegment {
			n++
		}
	}
	return n
}

// rotateToLeading rotates the triple so the first site (in c1, c2, c3
// order) whose IsSegment equals segFirst comes first, leaving it unrotated
// if there is none, and returns the rotation count applied (0,1,2) so the
// caller can rotate branch results back.
func rotateToLeading(segFirst bool, c1, c2, c3 site.Site) (a, b, c site.Site, rot int) {
	order := [3]site.Site{c1, c2, c3}
	for i := 0; i < 3; i++ {
		if order[i].IsSegment == segFirst {
			return order[i], order[(i+1)%3], order[(i+2)%3], i
		}
	}
	return c1, c2, c3, 0
}

// ppp solves the tripoint of three point sites a, b, c. The triangle (a,b,c)
// must be positively oriented; branch signs are the signs of the
// inner-product checks bc.ca, ca.ab, ab.bc.
func ppp(sa, sb, sc site.Site) Result {
	a, b, c := sa.P, sb.P, sc.P
	if !kernel.IsLeft(a, b, c) {
		return none
	}

	// Circumcenter via the standard 2D formula.
	d := 2 * kernel.Det2(b.Sub(a), c.Sub(a))
	if d == 0 {
		return none
	}
	a2 := a.Norm2()
	b2 := b.Norm2()
	c2 := c.Norm2()
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center := kernel.Point2{X: ux, Y: uy}
	r := center.Dist(a)

	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)

	b1 := kernel.Sign(bc.Dot(ca))
	b2sign := kernel.Sign(ca.Dot(ab))
	b3 := kernel.Sign(ab.Dot(bc))

	return Result{R: r, B1: b1, B2: b2sign, B3: b3, Point: center}
}

// lpp solves the tripoint of a segment site and two point sites, rotated so
// the segment is first. Reduces to the case where the segment lies on the
// local x-axis.
func lpp(c1, c2, c3 site.Site, eps float64) Result {
	seg, p2, p3, rot := rotateToLeading(true, c1, c2, c3)
	if !seg.IsSegment {
		return none
	}

	origin := seg.A
	dir := seg.Direction()
	// Orthonormal frame with dir as local x-axis.
	toLocal := func(p kernel.Point2) kernel.Point2 {
		v := p.Sub(origin)
		return kernel.Point2{X: v.Dot(dir), Y: kernel.Det2(dir, v)}
	}

	segLen := seg.A.Dist(seg.B)
	p2l := toLocal(p2.P)
	p3l := toLocal(p3.P)

	if math.Abs(p2l.Y) <= eps || math.Abs(p3l.Y) <= eps {
		// A point lies on the supporting line: no tripoint is returned,
		// whether or not the point is a segment endpoint.
		return none
	}
	if kernel.Sign(p2l.Y) != kernel.Sign(p3l.Y) {
		return none
	}

	f := 1.0
	if p2l.Y < 0 {
		f = -1.0
	}
	y2 := p2l.Y * f
	y3 := p3l.Y * f
	dx := p2l.X - p3l.X

	var r float64
	if math.Abs(y2-y3) < eps {
		r = (4*y2*y2 + dx*dx) / (8 * y2)
	} else {
		t := dx*dx + (y2-y3)*(y2-y3)
		num := 2*dx*math.Sqrt(y2*y3*t) + (y2+y3)*t
		den := 2 * (y2 - y3) * (y2 - y3)
		r = num / den
	}
	if r <= 0 || math.IsNaN(r) {
		return none
	}

	// Tripoint in local frame lies at height r (scaled back by f) from the
	// segment line, with x chosen so distances to the two points agree:
	// of the two x at distance r from p2, keep the one closer to distance
	// r from p3.
	h := math.Sqrt(math.Max(0, r*r-(r-y2)*(r-y2)))
	x := p2l.X + h
	if alt := p2l.X - h; math.Abs(math.Hypot(alt-p3l.X, r-y3)-r) < math.Abs(math.Hypot(x-p3l.X, r-y3)-r) {
		x = alt
	}
	local := kernel.Point2{X: x, Y: f * r}
	world := origin.Add(dir.Mul(local.X)).Add(dir.Perp().Mul(local.Y))

	segSide := kernel.Sign(y2)
	bSeg := segSide
	if segLen == 0 {
		bSeg = kernel.BranchBad
	}
	b1 := kernel.Sign(p2l.X)
	b2 := kernel.Sign(p3l.X - segLen)
	b3 := bSeg

	return rotate(Result{R: r, B1: b1, B2: b2, B3: b3, Point: world}, rot)
}

// llp solves the tripoint of two segment sites and one point site, rotated
// so the point site comes first.
func llp(c1, c2, c3 site.Site, eps float64) (Result, error) {
	p, l1, l2, rot := rotateToLeading(false, c1, c2, c3)
	if p.IsSegment {
		return none, nil
	}
	l1, l2, rotPair, ok := orderTwoLines(l1, l2)
	if !ok {
		return none, nil
	}
	_ = rotPair

	d1 := l1.Direction()
	d2 := l2.Direction()
	cross := kernel.Det2(d1, d2)
	if math.Abs(cross) <= eps {
		// The two segment sites are parallel: the parallel-bisector case
		// spec.md §9 leaves unresolved in the source routines.
		return none, vorerr.ErrNotImplemented
	}

	origin, err := kernel.LineInter(l1.A, l1.B, l2.A, l2.B)
	if err != nil {
		return none, nil
	}

	// Signed distances from the point to each supporting line.
	n1 := d1.Perp()
	n2 := d2.Perp()
	a1 := n1.Dot(p.P.Sub(origin))
	a2 := n2.Dot(p.P.Sub(origin))
	if a1 == 0 || a2 == 0 {
		return none, nil
	}

	eps1 := kernel.Sign(a1)
	eps2 := kernel.Sign(a2)
	l1n := a1 * float64(eps1)
	l2n := a2 * float64(eps2)

	cosTheta := d1.Dot(d2)
	c := cosTheta
	inner := 2 * l1n * l2n * (float64(eps1)*float64(eps2)*c + 1)
	if inner < 0 {
		return none, nil
	}
	d := math.Sqrt(inner)
	denom := l1n + l2n
	if denom == 0 {
		return none, nil
	}
	r := (l1n*l2n + d) / denom

	bisector := n1.Mul(float64(eps1)).Add(n2.Mul(float64(eps2)))
	if bisector.Norm2() == 0 {
		return none, nil
	}
	bisector = bisector.Normalize()
	point := origin.Add(bisector.Mul(r / bisector.Dot(n1.Mul(float64(eps1)))))

	b1 := eps1
	b2 := eps2
	b3 := kernel.Sign(p.P.Sub(point).Dot(p.P.Sub(point)))
	if b3 == kernel.BranchZero {
		b3 = kernel.BranchPlus
	}

	return rotate(Result{R: r, B1: b1, B2: b2, B3: b3, Point: point}, rot), nil
}

// lll solves the tripoint (incenter or excenter) of three segment sites.
func lll(c1, c2, c3 site.Site, eps float64) (Result, error) {
	lines := [3]site.Site{c1, c2, c3}
	dirs := [3]kernel.Vec2{c1.Direction(), c2.Direction(), c3.Direction()}

	// Try the four candidate centers (incenter, 3 excenters) generated by
	// flipping the sign of each line's outward normal, keeping the first
	// that yields consistent branch signs on all three separators.
	for mask := 0; mask < 4; mask++ {
		signs := [3]float64{1, 1, 1}
		if mask&1 != 0 {
			signs[1] = -1
		}
		if mask&2 != 0 {
			signs[2] = -1
		}

		pt, err := weightedCenter(lines, dirs, signs, eps)
		if errors.Is(err, vorerr.ErrNotImplemented) {
			// Two of the three lines are parallel with this candidate's
			// orientation: the parallel-bisector case spec.md §9 leaves
			// unresolved in the source routines. Raise rather than guess
			// a fallback direction and keep searching other candidates.
			return none, err
		}
		if err != nil {
			continue
		}

		b1 := branchOf(lines[0], pt)
		b2 := branchOf(lines[1], pt)
		b3 := branchOf(lines[2], pt)
		if b1 == kernel.BranchBad || b2 == kernel.BranchBad || b3 == kernel.BranchBad {
			continue
		}

		r := kernel.SegDistance2(lines[0].A, lines[0].B, pt)
		return Result{R: math.Sqrt(r), B1: b1, B2: b2, B3: b3, Point: pt}, nil
	}
	return none, nil
}

// weightedCenter finds the point equidistant (with the given per-line
// orientation signs) from three lines, by intersecting the two angle
// bisectors implied by signs[0]/signs[1] and signs[1]/signs[2].
func weightedCenter(lines [3]site.Site, dirs [3]kernel.Vec2, signs [3]float64, eps float64) (kernel.Point2, error) {
	n := make([]kernel.Vec2, 3)
	for i := range n {
		n[i] = dirs[i].Perp().Mul(signs[i])
	}

	bis01, err := angleBisectorLine(lines[0], n[0], lines[1], n[1], eps)
	if err != nil {
		return kernel.Point2{}, err
	}
	bis12, err := angleBisectorLine(lines[1], n[1], lines[2], n[2], eps)
	if err != nil {
		return kernel.Point2{}, err
	}

	pt, err := kernel.LineInter(bis01[0], bis01[1], bis12[0], bis12[1])
	if err != nil {
		return kernel.Point2{}, err
	}
	return pt, nil
}

// angleBisectorLine returns two points on the bisector of the angle between
// line a (oriented normal na) and line b (oriented normal nb). Returns
// vorerr.ErrNotImplemented, rather than guessing a perpendicular fallback,
// when na and nb cancel (the two lines are parallel under this orientation).
func angleBisectorLine(a site.Site, na kernel.Vec2, b site.Site, nb kernel.Vec2, eps float64) ([2]kernel.Point2, error) {
	dir := na.Add(nb)
	if dir.Norm2() <= eps*eps {
		return [2]kernel.Point2{}, vorerr.ErrNotImplemented
	}
	origin, err := kernel.LineInter(a.A, a.B, b.A, b.B)
	if err != nil {
		return [2]kernel.Point2{}, err
	}
	dir = dir.Normalize()
	return [2]kernel.Point2{origin, origin.Add(dir)}, nil
}

// branchOf returns the branch of l's separator (relative to its outward
// normal convention) on which pt lies, i.e. which side of l pt falls on,
// or kernel.BranchBad if pt is not within the segment's influence region.
func branchOf(l site.Site, pt kernel.Point2) kernel.Branch {
	if kernel.SegDistance2(l.A, l.B, pt) < 0 {
		return kernel.BranchBad
	}
	proj := l.Direction().Dot(pt.Sub(l.A))
	segLen := l.A.Dist(l.B)
	if proj < -1e-9 || proj > segLen+1e-9 {
		return kernel.BranchBad
	}
	return kernel.Sign(l.Direction().Perp().Dot(pt.Sub(l.A)))
}

// orderTwoLines returns l1 and l2 unchanged, with a rotation count of 0;
// ok is false only when the two sites are the same site (same index and
// half).
func orderTwoLines(l1, l2 site.Site) (site.Site, site.Site, int, bool) {
	if l1.Index == l2.Index && l1.Half == l2.Half {
		return l1, l2, 0, false
	}
	return l1, l2, 0, true
}

// rotate rotates a Result's branch assignment by n positions (0,1,2) to
// undo the canonicalizing rotation applied before solving, restoring the
// caller's original (c1,c2,c3) cyclic order.
func rotate(res Result, n int) Result {
	switch n % 3 {
	case 0:
		return res
	case 1:
		return Result{R: res.R, B1: res.B3, B2: res.B1, B3: res.B2, Point: res.Point}
	case 2:
		return Result{R: res.R, B1: res.B2, B2: res.B3, B3: res.B1, Point: res.Point}
	default:
		return res
	}
}

// SeparatorBetween returns separator.New(a, b, eps): the separator between
// consecutive sites a and b under the branch convention tripoint assumes.
func SeparatorBetween(a, b site.Site, eps float64) (*separator.Separator, error) {
	return separator.New(a, b, eps)
}
