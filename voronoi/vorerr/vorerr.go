// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package vorerr collects the structured, fatal-to-the-call error values
// the Voronoi/offset engine raises (spec.md §7). They are sentinel values
// meant to be compared with errors.Is, not types to be unwrapped further.
package vorerr

import (
	"errors"

	"github.com/peremato/csgvoronoi/voronoi/kernel"
)

var (
	// ErrCrossingSegments is raised when two segment sites are found to
	// cross in their interiors.
	ErrCrossingSegments = errors.New("voronoi: segments cross in their interiors")

	// ErrPointInSegment is raised when a site coincides with the interior
	// of a segment site's supporting segment.
	ErrPointInSegment = errors.New("voronoi: point lies in the interior of a segment site")

	// ErrConcurrentLines re-exports kernel.ErrConcurrentLines: a geometric
	// construction assumed two lines would meet in a unique point, but they
	// are parallel.
	ErrConcurrentLines = kernel.ErrConcurrentLines

	// ErrNotImplemented marks the parallel-bisector branch-resolution code
	// paths the source specification leaves open (spec.md §9): rather than
	// guess at a geometric fallback, callers get a clear, typed failure.
	ErrNotImplemented = errors.New("voronoi: parallel-bisector case not implemented")
)
