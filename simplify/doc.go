// Package simplify implements the HaploBlocker-style reduction passes that
// turn a freshly built graph (see graphbuild) into a compact summary: merge
// single-child chains shared by the same specimens (SimpleMerge), drop
// low-support nodes into NOTHING (NeglectNodes), and split anchor nodes
// whose flanking specimen partitions agree (SplitGroups). Converge runs
// SimpleMerge and NeglectNodes to a fixed point, then SplitGroups with a
// NeglectNodes(0) cleanup, and repeats the whole round until nothing
// changes, the way the original haplonetwork.py driver loop does.
//
// All three passes operate over an explicit working list of live nodes
// rather than core.GraphGenome.Nodes(), because map iteration order is not
// stable and the original algorithm's "first < n < len(graph)" loop bounds
// depend on visiting nodes in creation order and rescanning a shrunk list in
// place (see simple_merge.go).
package simplify

import "errors"

// Sentinel errors for simplify operations. See errors.Is for branching.
var (
	// ErrBadThreshold indicates Options.FilterThreshold is negative.
	ErrBadThreshold = errors.New("simplify: filter threshold must be >= 0")
)
