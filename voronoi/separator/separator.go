// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package separator implements the parametrized bisector ("separator")
// between two Voronoi sites: the five variants of spec.md §3 ("Separator
// variants") and the evaluate/approximate/atan/reverse operations of
// spec.md §4.2.
package separator

import (
	"math"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
	"github.com/peremato/csgvoronoi/voronoi/site"
	"github.com/peremato/csgvoronoi/voronoi/vorerr"
)

// Variant tags which closed form a Separator evaluates.
type Variant uint8

const (
	// LineBisector is the perpendicular bisector of two points.
	LineBisector Variant = iota
	// Parabola is the bisector of a point and a segment, the point not on
	// the segment's supporting line.
	Parabola
	// DegenerateLine is the bisector of a point coinciding with a segment
	// endpoint and that segment: a straight half-line.
	DegenerateLine
	// HalfLinePair is the bisector of two non-parallel, non-crossing
	// segments.
	HalfLinePair
	// ParallelBisector is the bisector of two parallel segments: a single
	// line, the midline of the strip between their supporting lines.
	ParallelBisector
)

func (v Variant) String() string {
	switch v {
	case LineBisector:
		return "line-bisector"
	case Parabola:
		return "parabola"
	case DegenerateLine:
		return "degenerate-line"
	case HalfLinePair:
		return "half-line-pair"
	case ParallelBisector:
		return "parallel-bisector"
	default:
		return "unknown"
	}
}

// Separator is the locus of points equidistant from two sites, parametrized
// by the radius r = distance to either site, on one of two Branches meeting
// at r = RMin (spec.md §3 "Separator variants").
//
// Convention: on Branch(+1), the site passed first to New (or to the
// variant-specific constructor) is the one to the right. Reverse swaps that
// convention.
type Separator struct {
	Variant Variant
	Origin  kernel.Point2
	// Tangent is a unit vector. Normal is a unit vector for Parabola; for
	// HalfLinePair, Tangent and Normal are the two unit ray directions and
	// need not be orthogonal. Normal is the zero vector for LineBisector
	// and DegenerateLine and NaN for ParallelBisector.
	Tangent kernel.Vec2
	Normal  kernel.Vec2
	RMin    float64
}

// New builds the separator between two sites, dispatching on whether each
// is a point or a segment site. a is the site to the right of Branch(+1).
func New(a, b site.Site, eps float64) (*Separator, error) {
	switch {
	case !a.IsSegment && !b.IsSegment:
		return newPointPoint(a, b), nil
	case a.IsSegment && !b.IsSegment:
		sep, err := newSegmentPoint(a, b, eps)
		if err != nil {
			return nil, err
		}
		return sep, nil
	case !a.IsSegment && b.IsSegment:
		sep, err := newSegmentPoint(b, a, eps)
		if err != nil {
			return nil, err
		}
		return sep.Reverse(), nil
	default:
		return newSegmentSegment(a, b, eps)
	}
}

// newPointPoint builds variant 1: the perpendicular bisector of a and b,
// oriented so a is to the right of Branch(+1).
func newPointPoint(a, b site.Site) *Separator {
	mid := a.P.Add(b.P).Mul(0.5)
	d := b.P.Sub(a.P)
	// Tangent runs along the bisector; Branch(+1) points toward the side
	// a is on, i.e. rotate d by -90deg so that walking along +tangent keeps
	// a to the right.
	tangent := kernel.Vec2{X: d.Y, Y: -d.X}
	if tangent.Norm2() == 0 {
		panic("separator: coincident point sites")
	}
	tangent = tangent.Normalize()
	return &Separator{
		Variant: LineBisector,
		Origin:  mid,
		Tangent: tangent,
		Normal:  kernel.Vec2{},
		RMin:    a.P.Dist(b.P) / 2,
	}
}

// newSegmentPoint builds the bisector of a segment site seg and a point
// site pt. Returns vorerr.ErrPointInSegment if pt lies strictly inside the
// segment's interior.
func newSegmentPoint(seg, pt site.Site, eps float64) (*Separator, error) {
	if end, ok := seg.HasEndpoint(pt.P, eps); ok {
		return newDegenerateLine(seg, end), nil
	}
	if kernel.SegDistance2(seg.A, seg.B, pt.P) <= eps*eps {
		return nil, vorerr.ErrPointInSegment
	}
	return newParabola(seg, pt), nil
}

// newDegenerateLine builds variant 3: the point coincides with endpoint
// `end` of the segment. The separator is the line through `end`
// perpendicular to the segment; Tangent is the unit normal on the left of
// A->B, so Branch(+1) is the half-line on the left and Branch(-1) the one
// on the right.
func newDegenerateLine(seg site.Site, end kernel.Point2) *Separator {
	dir := seg.Direction()
	// Perpendicular to the segment: away is -dir at A and +dir at B,
	// rotated 90deg; the check below then turns it to the left of A->B.
	away := dir
	if end == seg.A {
		away = dir.Mul(-1)
	}
	tangent := away.Perp()
	if !kernel.IsLeft(seg.A, seg.B, end.Add(tangent)) {
		tangent = tangent.Mul(-1)
	}
	return &Separator{
		Variant: DegenerateLine,
		Origin:  end,
		Tangent: tangent,
		RMin:    0,
	}
}

// newParabola builds variant 2: the point pt is off the segment seg's
// supporting line. origin is the parabola's apex, offset from pt along the
// normal to the line so that distances to pt and to the line agree.
func newParabola(seg site.Site, pt site.Site) *Separator {
	dir := seg.Direction()
	normal := dir.Perp()
	// Orient normal to point from the line toward pt.
	toPt := pt.P.Sub(seg.A)
	if normal.Dot(toPt) < 0 {
		normal = normal.Mul(-1)
	}
	// Signed distance from pt to the line.
	h := normal.Dot(toPt)
	rmin := h / 2
	apex := pt.P.Sub(normal.Mul(rmin))
	return &Separator{
		Variant: Parabola,
		Origin:  apex,
		Tangent: dir,
		Normal:  normal,
		RMin:    rmin,
	}
}

// newSegmentSegment builds variants 4 or 5 for two segment sites.
func newSegmentSegment(a, b site.Site, eps float64) (*Separator, error) {
	da, db := a.Direction(), b.Direction()
	cross := kernel.Det2(da, db)
	if math.Abs(cross) <= eps {
		return newParallelBisector(a, b), nil
	}

	crossing, err := segmentsCross(a, b, eps)
	if err != nil {
		return nil, err
	}
	if crossing {
		return nil, vorerr.ErrCrossingSegments
	}

	origin, err := kernel.LineInter(a.A, a.B, b.A, b.B)
	if err != nil {
		return nil, err
	}

	plusQuad, minusQuad := segmentsQuadrants(a, b, origin)
	return &Separator{
		Variant: HalfLinePair,
		Origin:  origin,
		Tangent: plusQuad,
		Normal:  minusQuad,
		RMin:    0,
	}, nil
}

// newParallelBisector builds variant 5: the midline of the strip between
// two parallel segments' supporting lines.
func newParallelBisector(a, b site.Site) *Separator {
	dir := a.Direction()
	normal := dir.Perp()
	gap := normal.Dot(b.A.Sub(a.A))
	origin := a.A.Add(normal.Mul(gap / 2))
	return &Separator{
		Variant: ParallelBisector,
		Origin:  origin,
		Tangent: dir,
		Normal:  kernel.Vec2{X: math.NaN(), Y: math.NaN()},
		RMin:    math.Abs(gap) / 2,
	}
}

// segmentsCross reports whether segments a and b intersect in their
// interiors (not merely at a shared endpoint), raising vorerr.ErrCrossingSegments
// semantics to the caller as a boolean rather than constructing the error
// itself, so newSegmentSegment stays the single place that wraps it.
func segmentsCross(a, b site.Site, eps float64) (bool, error) {
	d1 := kernel.Sign(kernel.Det2(b.B.Sub(b.A), a.A.Sub(b.A)))
	d2 := kernel.Sign(kernel.Det2(b.B.Sub(b.A), a.B.Sub(b.A)))
	d3 := kernel.Sign(kernel.Det2(a.B.Sub(a.A), b.A.Sub(a.A)))
	d4 := kernel.Sign(kernel.Det2(a.B.Sub(a.A), b.B.Sub(a.A)))

	properlyStraddle := d1 != d2 && d1 != kernel.BranchZero && d2 != kernel.BranchZero &&
		d3 != d4 && d3 != kernel.BranchZero && d4 != kernel.BranchZero
	return properlyStraddle, nil
}

// segmentsQuadrants derives, from the position of a and b relative to the
// intersection of their supporting lines, the two ray directions carrying
// the `+` and `-` branches of their HalfLinePair separator (spec.md §4.2
// "segments_quadrants").
func segmentsQuadrants(a, b site.Site, origin kernel.Point2) (plus, minus kernel.Vec2) {
	da := a.Direction()
	db := b.Direction()

	// Orient each direction away from the intersection point, toward the
	// segment's own far endpoint, so the quadrant rays point into the
	// region actually swept by the two segments.
	if da.Dot(a.B.Sub(origin)) < 0 {
		da = da.Mul(-1)
	}
	if db.Dot(b.B.Sub(origin)) < 0 {
		db = db.Mul(-1)
	}

	bisectorOut := da.Add(db)
	bisectorIn := da.Sub(db)
	if bisectorOut.Norm2() == 0 {
		bisectorOut = da.Perp()
	}
	if bisectorIn.Norm2() == 0 {
		bisectorIn = da.Perp()
	}
	return bisectorOut.Normalize(), bisectorIn.Normalize()
}

// Reverse returns the separator with its branch convention swapped:
// Reverse(sep).Evaluate(+b, r) == sep.Evaluate(-b, r).
func (s *Separator) Reverse() *Separator {
	r := *s
	switch s.Variant {
	case LineBisector, DegenerateLine:
		r.Tangent = s.Tangent.Mul(-1)
	case Parabola:
		r.Tangent = s.Tangent.Mul(-1)
	case HalfLinePair:
		r.Tangent, r.Normal = s.Normal, s.Tangent
	case ParallelBisector:
		// The locus is symmetric under site exchange; branch already
		// collapses to BranchZero for this variant.
	}
	return &r
}

// Evaluate returns the point at distance r on the given branch.
func (s *Separator) Evaluate(b kernel.Branch, r float64) kernel.Point2 {
	switch s.Variant {
	case LineBisector:
		if r < s.RMin {
			panic("separator: Evaluate r below RMin for LineBisector")
		}
		d := math.Sqrt(r*r - s.RMin*s.RMin)
		return s.Origin.Add(s.Tangent.Mul(float64(b) * d))
	case Parabola:
		if r < s.RMin {
			panic("separator: Evaluate r below RMin for Parabola")
		}
		d := 2 * math.Sqrt(s.RMin*(r-s.RMin))
		return s.Origin.Add(s.Normal.Mul(r - s.RMin)).Add(s.Tangent.Mul(float64(b) * d))
	case DegenerateLine:
		return s.Origin.Add(s.Tangent.Mul(float64(b) * r))
	case HalfLinePair:
		if b == kernel.BranchPlus {
			return s.Origin.Add(s.Tangent.Mul(r))
		}
		return s.Origin.Add(s.Normal.Mul(r))
	case ParallelBisector:
		return s.Origin.Add(s.Tangent.Mul(s.RMin))
	default:
		panic("separator: Evaluate on unknown variant")
	}
}

// Approximate returns a sequence of radius values between r1 and r2
// (r1 <= r2) suitable for polygonal approximation of the separator within
// absolute error tol.
func (s *Separator) Approximate(r1, r2, tol float64) []float64 {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	switch s.Variant {
	case Parabola:
		x1 := math.Sqrt(math.Max(0, r1-s.RMin))
		x2 := math.Sqrt(math.Max(0, r2-s.RMin))
		xs := kernel.ApproxParabola(1, x1, x2, tol)
		rs := make([]float64, len(xs))
		for i, x := range xs {
			rs[i] = s.RMin + x*x
		}
		return rs
	default:
		return []float64{r1, r2}
	}
}

// Atan returns the angle of the separator's initial normal direction, used
// to interpolate circular arcs when an offset sweep encloses a point site
// (spec.md §4.2).
func (s *Separator) Atan() float64 {
	n := s.Normal
	if s.Variant == LineBisector || s.Variant == DegenerateLine {
		n = s.Tangent.Perp()
	}
	return math.Atan2(n.Y, n.X)
}
