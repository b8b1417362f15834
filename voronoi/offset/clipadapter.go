// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package offset wraps github.com/go-clipper/clipper2 for the boolean
// and inflate/deflate operations SPEC_FULL.md §4.5 exposes alongside the
// Voronoi-derived offset curves in package voronoi: clip(op, poly1,
// poly2) and a polygon-offset fallback usable without a diagram.
package offset

import (
	clipper2 "github.com/go-clipper/clipper2"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

// Precision is the number of fractional decimal digits preserved when
// converting a float64 polygon to clipper2's fixed-point Point64
// coordinates. Clipper2's core algorithms operate on int64 lattice
// points; this adapter is the one seam where the diagram's floating
// point geometry crosses into that lattice.
const Precision = 1e6

// ClipOp selects a boolean set operation (spec.md §6 "clip(op, poly1,
// poly2)").
type ClipOp uint8

const (
	OpUnion ClipOp = iota
	OpIntersection
	OpDifference
	OpXor
)

// FillRule selects how self-intersecting polygons determine interior
// regions, passed straight through to clipper2.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
	FillPositive
	FillNegative
)

// JoinType selects the join clipper2 uses when offsetting a convex
// corner.
type JoinType uint8

const (
	JoinSquare JoinType = iota
	JoinRound
	JoinMiter
)

// EndType selects how open path ends are capped during offsetting.
type EndType uint8

const (
	EndPolygon EndType = iota
	EndJoined
	EndSquare
	EndRound
	EndButt
)

// Path is a closed or open polygon in the same planar coordinate space
// the voronoi package uses.
type Path []kernel.Point2

// ClipAdapter wraps clipper2's integer clipping/offsetting engine
// behind the module's float64 polygon representation (SPEC_FULL.md
// §4.5), grounded on the pack's Clipper2 port vocabulary
// (ClipType/FillRule/JoinType/EndType/OffsetOptions).
type ClipAdapter struct {
	Precision float64
}

// NewClipAdapter returns a ClipAdapter with the default lattice
// precision.
func NewClipAdapter() *ClipAdapter {
	return &ClipAdapter{Precision: Precision}
}

func (a *ClipAdapter) scale() float64 {
	if a.Precision <= 0 {
		return Precision
	}
	return a.Precision
}

func (a *ClipAdapter) toPath64(p Path) clipper2.Path64 {
	s := a.scale()
	out := make(clipper2.Path64, len(p))
	for i, v := range p {
		out[i] = clipper2.Point64{X: int64(v.X * s), Y: int64(v.Y * s)}
	}
	return out
}

func (a *ClipAdapter) toPaths64(ps []Path) clipper2.Paths64 {
	out := make(clipper2.Paths64, len(ps))
	for i, p := range ps {
		out[i] = a.toPath64(p)
	}
	return out
}

func (a *ClipAdapter) fromPaths64(ps clipper2.Paths64) []Path {
	s := a.scale()
	out := make([]Path, len(ps))
	for i, p := range ps {
		path := make(Path, len(p))
		for j, v := range p {
			path[j] = kernel.Point2{X: float64(v.X) / s, Y: float64(v.Y) / s}
		}
		out[i] = path
	}
	return out
}

func toClipperFillRule(f FillRule) clipper2.FillRule {
	switch f {
	case FillEvenOdd:
		return clipper2.EvenOdd
	case FillPositive:
		return clipper2.Positive
	case FillNegative:
		return clipper2.Negative
	default:
		return clipper2.NonZero
	}
}

func toClipperJoinType(j JoinType) clipper2.JoinType {
	switch j {
	case JoinRound:
		return clipper2.Round
	case JoinMiter:
		return clipper2.Miter
	default:
		return clipper2.Square
	}
}

func toClipperEndType(e EndType) clipper2.EndType {
	switch e {
	case EndJoined:
		return clipper2.ClosedLine
	case EndSquare:
		return clipper2.OpenSquare
	case EndRound:
		return clipper2.OpenRound
	case EndButt:
		return clipper2.OpenButt
	default:
		return clipper2.ClosedPolygon
	}
}

// Clip applies a boolean set operation between two polygon sets
// (spec.md §6 "clip(op, poly1, poly2)").
func (a *ClipAdapter) Clip(op ClipOp, subject, clipPaths []Path, fill FillRule) ([]Path, error) {
	subj := a.toPaths64(subject)
	clp := a.toPaths64(clipPaths)
	rule := toClipperFillRule(fill)

	var result clipper2.Paths64
	var err error
	switch op {
	case OpUnion:
		result, err = clipper2.Union(subj, clp, rule)
	case OpIntersection:
		result, err = clipper2.Intersect(subj, clp, rule)
	case OpDifference:
		result, err = clipper2.Difference(subj, clp, rule)
	case OpXor:
		result, err = clipper2.Xor(subj, clp, rule)
	default:
		result, err = clipper2.Union(subj, clp, rule)
	}
	if err != nil {
		return nil, err
	}
	return a.fromPaths64(result), nil
}

// Offset inflates (positive radius) or deflates (negative radius) a
// polygon set using clipper2's join/end-type vocabulary, the fallback
// path when a full Voronoi diagram is unnecessary (e.g. offsetting a
// clip result rather than an original segment soup).
func (a *ClipAdapter) Offset(paths []Path, radius float64, join JoinType, end EndType, miterLimit float64) ([]Path, error) {
	co := clipper2.NewClipperOffset(miterLimit, 0.25)
	co.AddPaths(a.toPaths64(paths), toClipperJoinType(join), toClipperEndType(end))
	result, err := co.Execute(radius * a.scale())
	if err != nil {
		return nil, err
	}
	return a.fromPaths64(result), nil
}
