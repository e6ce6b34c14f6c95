// Package gfa implements a minimal GFA (Graphical Fragment Assembly) text
// adapter for a graph's zoom-0 level: Export writes S (segment) and P
// (path) lines, Import reads them back into a fresh graph. It plays the
// role the teacher's converterts package reserves for adapters to
// external graph representations, grounded instead on the line formats in
// original_source/Graph/models.py's Node.to_gfa and Path.to_gfa.
//
// Only the subset of GFA needed to round-trip a pangraph survives here:
// no containments, no links, no header tags beyond the version line.
package gfa

import "errors"

// Sentinel errors for GFA import/export. See errors.Is for branching.
var (
	// ErrUnknownNode indicates a P-line referenced a segment name with no
	// matching S-line.
	ErrUnknownNode = errors.New("gfa: path references unknown node")

	// ErrMalformed indicates a line could not be parsed as a well-formed
	// S or P line.
	ErrMalformed = errors.New("gfa: malformed line")
)
