// Package zoom manages the sequence of ZoomLevels a graph accumulates as
// simplification collapses detail: zoom 0 holds the paths built directly
// from the allele matrix (graphbuild), and each later level either reuses
// a path unchanged or replaces it with a fresh one pointing back at its
// parent via SummarizedBy (spec.md section 4.F).
//
// This package does not itself run simplify or dagify - it is the thin
// bookkeeping layer that turns their output (a set of possibly-rewritten
// paths) into a new, addressable ZoomLevel, grounded on the original's
// GraphManager.create / ZoomLevel model (original_source/Graph/models.py).
package zoom

import "errors"

// ErrZoomOrder indicates Step was asked to build a zoom level that is not
// exactly one more than from's zoom number.
var ErrZoomOrder = errors.New("zoom: new level must be exactly one above the source level")
