// Package core implements the in-memory graph model for a pangenome graph:
// GraphGenome, Node, Path, NodeTraversal, and ZoomLevel, plus the working
// tables (specimens, upstream, downstream) that the simplify and dagify
// packages mutate and read.
//
// A GraphGenome is a named container of Nodes and ZoomLevels. A Node carries
// an optional sequence and, while it is live at some zoom level, three
// derived tables: the set of specimens (individuals) passing through it, and
// weighted upstream/downstream transition maps to neighboring nodes. The
// sentinel node NOTHING represents an untracked continuation (chromosome
// ends, or the far side of a pruned node) and must never be mutated.
//
// A Path is one individual's ordered, strand-aware traversal of nodes. Paths
// are grouped per zoom level by ZoomLevel; a path may be reused unchanged
// across zoom levels, or replaced by a fresh path whose SummarizedBy points
// at its parent.
//
// This package is not safe for concurrent use on a single Graph: the wider
// system runs single-threaded and batch (see the system spec), so no
// internal locking is attempted here — callers serialize their own access.
//
// Errors are sentinel values; callers branch with errors.Is, never by
// matching error strings.
package core

import "errors"

// Sentinel errors for core graph operations. See errors.Is for branching.
var (
	// ErrNodeExists indicates AddNode was called for a (graph, name) pair
	// that already has a node.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeMissing indicates a node name was referenced but is not
	// present in the graph.
	ErrNodeMissing = errors.New("core: node missing")

	// ErrPathExists indicates CreatePath was called for an accession that
	// already has a path at the requested zoom level.
	ErrPathExists = errors.New("core: path already exists at this zoom level")

	// ErrPathMissing indicates a path accession was referenced but is not
	// present at the requested zoom level.
	ErrPathMissing = errors.New("core: path missing")

	// ErrNothingImmutable indicates an attempt to mutate the NOTHING
	// sentinel node (add it as a real traversal target, assign it
	// specimens, etc).
	ErrNothingImmutable = errors.New("core: NOTHING node is immutable")

	// ErrInvariant indicates a structural invariant (I1-I5) was violated.
	// It is fatal to whatever operation detects it: callers must not
	// commit partial state after observing this error.
	ErrInvariant = errors.New("core: invariant violation")

	// ErrZoomLevelExists indicates NewZoomLevel was called for a zoom
	// number that is already attached to this graph.
	ErrZoomLevelExists = errors.New("core: zoom level already exists")
)
