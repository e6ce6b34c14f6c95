// Package dagify reconciles a set of strand-resolved paths over a shared
// node vocabulary into a single linear profile, and reduces that profile
// into disjoint slices: groups of nodes that stand in for alternative
// alleles at the same locus.
//
// GenerateProfiles tries each path in turn as the "primary" path and keeps
// the reconciliation with the fewest duplicated nodes (section 4.E.1). LCS
// is the pairwise merge step it repeats against every other path (4.E.2): a
// single O(n*m) dynamic-programming pass over a 2D table, then a traceback
// that walks it from the bottom-right corner. ToSlices folds the resulting
// profile into the final slice list (4.E.3).
package dagify

import "errors"

// ErrNoOverlap indicates there is nothing to reconcile: GenerateProfiles
// was called with zero paths.
var ErrNoOverlap = errors.New("dagify: no paths to reconcile")
