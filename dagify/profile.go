package dagify

import "github.com/graph-genome/pangraph/core"

// PathSet is a deduplicated collection of paths, compared and combined by
// pointer identity (two distinct *core.Path values with the same accession
// are separate members).
type PathSet map[*core.Path]struct{}

func newPathSet(paths ...*core.Path) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

func (s PathSet) clone() PathSet {
	out := make(PathSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

func (s PathSet) add(p *core.Path) { s[p] = struct{}{} }

// union returns a new set containing every path in s or other.
func (s PathSet) union(other PathSet) PathSet {
	out := s.clone()
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// difference returns a new set of paths in s but not other.
func (s PathSet) difference(other PathSet) PathSet {
	out := make(PathSet)
	for p := range s {
		if _, ok := other[p]; !ok {
			out[p] = struct{}{}
		}
	}
	return out
}

func (s PathSet) len() int { return len(s) }

// Profile is one position in a reconciled path alignment: the node it
// carries, the paths that actually traverse this node at this position,
// and the broader set of paths that are "in play" across this boundary
// (candidate_paths in spec terms), used by ToSlices to detect where a gap
// crosses a slice.
type Profile struct {
	Node           *core.Node
	Paths          []*core.Path
	CandidatePaths PathSet
	Duplicate      bool
}

func clonePaths(paths []*core.Path) []*core.Path {
	out := make([]*core.Path, len(paths))
	copy(out, paths)
	return out
}
