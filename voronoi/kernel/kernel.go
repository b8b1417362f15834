// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package kernel implements the stateless planar geometry primitives that
// the rest of the Voronoi/offset engine is built on: vectors, oriented-line
// predicates, circle/segment distance tests, and the bounded numerical
// helpers used to approximate parabolic separators and minimize the
// low-degree polynomials that the tripoint solver produces.
package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrConcurrentLines is returned by LineInter when the two lines are
// parallel (or coincident) and therefore have no unique intersection.
var ErrConcurrentLines = errors.New("kernel: lines are parallel, no unique intersection")

// Branch identifies one of the two infinite halves of a Separator.
// BranchZero is a valid topological state (a parallel bisector, where the
// notion of branch collapses) and must stay numerically distinct from
// BranchBad, the sentinel for "uninitialized or unresolved".
type Branch int8

const (
	BranchMinus Branch = -1
	BranchZero  Branch = 0
	BranchPlus  Branch = 1
	BranchBad   Branch = math.MinInt8
)

// Sign returns the branch corresponding to the sign of f (BranchZero if
// f is exactly zero).
func Sign(f float64) Branch {
	switch {
	case f > 0:
		return BranchPlus
	case f < 0:
		return BranchMinus
	default:
		return BranchZero
	}
}

// Negate returns the opposite branch. -BranchBad == BranchBad, so that a
// stale sentinel never silently turns into a valid branch under negation.
func (b Branch) Negate() Branch {
	return -b
}

func (b Branch) String() string {
	switch b {
	case BranchMinus:
		return "-"
	case BranchZero:
		return "0"
	case BranchPlus:
		return "+"
	case BranchBad:
		return "BAD"
	default:
		return fmt.Sprintf("Branch(%d)", int8(b))
	}
}

// Vec2 is a planar vector or point. The engine does not distinguish the two
// at the type level, matching the teacher's reuse of r3.Vector for both
// points and displacements in cell.go's centroid computation.
type Vec2 struct {
	X, Y float64
}

// Point2 is an alias for Vec2 used where a value is conceptually a location
// rather than a displacement.
type Point2 = Vec2

// Add returns u+v.
func (u Vec2) Add(v Vec2) Vec2 { return Vec2{u.X + v.X, u.Y + v.Y} }

// Sub returns u-v.
func (u Vec2) Sub(v Vec2) Vec2 { return Vec2{u.X - v.X, u.Y - v.Y} }

// Mul returns u scaled by s.
func (u Vec2) Mul(s float64) Vec2 { return Vec2{u.X * s, u.Y * s} }

// Dot returns the dot product of u and v.
func (u Vec2) Dot(v Vec2) float64 { return u.X*v.X + u.Y*v.Y }

// Norm2 returns the squared Euclidean norm of u.
func (u Vec2) Norm2() float64 { return u.X*u.X + u.Y*u.Y }

// Norm returns the Euclidean norm of u.
func (u Vec2) Norm() float64 { return math.Sqrt(u.Norm2()) }

// Normalize returns u scaled to unit length. Panics if u is the zero vector.
func (u Vec2) Normalize() Vec2 {
	n := u.Norm()
	if n == 0 {
		panic("kernel: Normalize of zero vector")
	}
	return u.Mul(1 / n)
}

// Perp returns u rotated 90 degrees counter-clockwise.
func (u Vec2) Perp() Vec2 { return Vec2{-u.Y, u.X} }

// Dist2 returns the squared distance between u and v.
func (u Vec2) Dist2(v Vec2) float64 { return u.Sub(v).Norm2() }

// Dist returns the distance between u and v.
func (u Vec2) Dist(v Vec2) float64 { return math.Sqrt(u.Dist2(v)) }

// Det2 returns the signed area of the parallelogram spanned by u and v
// (equivalently, the Z component of the 3D cross product of u and v).
func Det2(u, v Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// IsLeft reports whether c lies strictly to the left of the directed line
// a->b.
func IsLeft(a, b, c Point2) bool {
	return Det2(b.Sub(a), c.Sub(a)) > 0
}

// IsLeftOrOn reports whether c lies on or to the left of the directed line
// a->b.
func IsLeftOrOn(a, b, c Point2) bool {
	return Det2(b.Sub(a), c.Sub(a)) >= 0
}

// InCircle reports whether x lies strictly inside the circumcircle of the
// positively oriented triangle (a,b,c). It panics if (a,b,c) is not
// positively oriented, since the predicate's sign convention depends on it
// and a silent wrong answer would corrupt the triangulation.
func InCircle(a, b, c, x Point2) bool {
	if !IsLeft(a, b, c) {
		panic("kernel: InCircle requires a positively oriented triangle")
	}
	// Classical 4x4 determinant lifted to the paraboloid z = x^2+y^2,
	// expanded against the fourth column/row by translating x to the origin.
	ax, ay := a.X-x.X, a.Y-x.Y
	bx, by := b.X-x.X, b.Y-x.Y
	cx, cy := c.X-x.X, c.Y-x.Y

	az := ax*ax + ay*ay
	bz := bx*bx + by*by
	cz := cx*cx + cy*cy

	det := ax*(by*cz-bz*cy) - ay*(bx*cz-bz*cx) + az*(bx*cy-by*cx)
	return det > 0
}

// LineInter returns the intersection of line ab and line cd. It returns
// ErrConcurrentLines if the two lines are parallel.
func LineInter(a, b, c, d Point2) (Point2, error) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := Det2(r, s)
	if denom == 0 {
		return Point2{}, ErrConcurrentLines
	}
	t := Det2(c.Sub(a), s) / denom
	return a.Add(r.Mul(t)), nil
}

// SegDistance2 returns the squared distance from c to the closed segment
// [a,b].
func SegDistance2(a, b, c Point2) float64 {
	ab := b.Sub(a)
	len2 := ab.Norm2()
	if len2 == 0 {
		return c.Dist2(a)
	}
	t := c.Sub(a).Dot(ab) / len2
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(ab.Mul(t))
	return c.Dist2(proj)
}

// approxParabolaHausdorffIntegral evaluates x*sqrt(1+x^2) + asinh(x), twice
// the arc length of y = x^2/2 between 0 and x. ApproxParabola uses it to
// space its points evenly in arc length, with a step sized for the
// parabola's tightest curvature (at the apex). It is not the
// curvature-weighted integral x * 2F1(1/4, 1/2, 3/2, -x^2), so the spacing
// does not widen where the parabola flattens out.
func approxParabolaHausdorffIntegral(x float64) float64 {
	return x*math.Sqrt(1+x*x) + math.Asinh(x)
}

// ApproxParabola subdivides the parabola y = a/2 + x^2/(2a) over [x1,x2] so
// that the Hausdorff distance between the polyline through the returned
// abscissas and the true curve is less than delta. a must be positive
// (the focal parameter of the parabola) and delta must be positive.
func ApproxParabola(a, x1, x2, delta float64) []float64 {
	if a <= 0 {
		panic("kernel: ApproxParabola requires a positive focal parameter")
	}
	if delta <= 0 {
		panic("kernel: ApproxParabola requires a positive tolerance")
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	h1 := approxParabolaHausdorffIntegral(x1 / a)
	h2 := approxParabolaHausdorffIntegral(x2 / a)
	arcLen := a * math.Abs(h2-h1)

	steps := int(math.Ceil(arcLen / (2 * math.Sqrt(2*a*delta))))
	if steps < 1 {
		steps = 1
	}

	out := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		h := h1 + (h2-h1)*float64(i)/float64(steps)
		out[i] = a * invertHausdorffIntegral(h, x1/a, x2/a)
	}
	out[0] = x1
	out[steps] = x2
	return out
}

// invertHausdorffIntegral inverts approxParabolaHausdorffIntegral by Newton
// iteration from a bracketing guess, since it is monotone increasing.
func invertHausdorffIntegral(h, lo, hi float64) float64 {
	x := (lo + hi) / 2
	for i := 0; i < 50; i++ {
		fx := approxParabolaHausdorffIntegral(x) - h
		// d/dx [x*sqrt(1+x^2) + asinh(x)] = 2*sqrt(1+x^2)
		dfx := 2 * math.Sqrt(1+x*x)
		step := fx / dfx
		x -= step
		if math.Abs(step) < 1e-14 {
			break
		}
	}
	return x
}

// MinQuadratic returns the minimum of a*x^2 + 2*b*x + c on [x1,x2].
func MinQuadratic(a, b, c, x1, x2 float64) float64 {
	eval := func(x float64) float64 { return a*x*x + 2*b*x + c }
	candidates := []float64{x1, x2}
	if a != 0 {
		vertex := -b / a
		if vertex > x1 && vertex < x2 {
			candidates = append(candidates, vertex)
		}
	}
	best := math.Inf(1)
	for _, x := range candidates {
		if v := eval(x); v < best {
			best = v
		}
	}
	return best
}

// Quartic holds the coefficients of c4*x^4 + c3*x^3 + c2*x^2 + c1*x + c0.
type Quartic struct {
	C4, C3, C2, C1, C0 float64
}

func (q Quartic) eval(x float64) float64 {
	return ((((q.C4*x)+q.C3)*x+q.C2)*x+q.C1)*x + q.C0
}

func (q Quartic) derivative(x float64) float64 {
	return (((4*q.C4*x)+3*q.C3)*x+2*q.C2)*x + q.C1
}

func (q Quartic) secondDerivative(x float64) float64 {
	return (12*q.C4*x+6*q.C3)*x + 2*q.C2
}

// MinQuartic minimizes q on [x1,x2] by bounded Newton descent on the
// derivative, started from the interval midpoint, falling back to the
// endpoints if the iteration leaves the interval.
func MinQuartic(q Quartic, x1, x2 float64) float64 {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x := (x1 + x2) / 2
	for i := 0; i < 50; i++ {
		d1 := q.derivative(x)
		d2 := q.secondDerivative(x)
		if d2 == 0 {
			break
		}
		next := x - d1/d2
		if next < x1 || next > x2 {
			next = math.Max(x1, math.Min(x2, next))
		}
		if math.Abs(next-x) < 1e-14 {
			x = next
			break
		}
		x = next
	}

	best, bestVal := x1, q.eval(x1)
	if v := q.eval(x2); v < bestVal {
		best, bestVal = x2, v
	}
	if v := q.eval(x); v < bestVal {
		best, bestVal = x, v
	}
	return best
}
