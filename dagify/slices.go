package dagify

import "github.com/graph-genome/pangraph/core"

// SliceNode is one node's contribution to a Slice: its sequence, the paths
// that carry it, and (for real, non-filler nodes) the graph node it came
// from.
type SliceNode struct {
	Seq    string
	Paths  []*core.Path
	Source *core.Node // nil for filler nodes
}

// Slice is a bag of alternative-allele nodes that occupy the same locus in
// the reconciled profile: at most one of a slice's nodes is traversed by
// any given path.
type Slice struct {
	Nodes []SliceNode
}

func (s *Slice) addNode(n SliceNode) { s.Nodes = append(s.Nodes, n) }

// ToSlices implements spec section 4.E.3: walk the reconciled profile,
// flushing the working slice whenever a profile entry is an anchor (no
// path-set gap across the boundary) or conflicts with the paths already in
// the working slice, and folding everything else into it.
//
// Complexity: O(n) profile entries, each O(|paths|) for the set operations.
func ToSlices(profile []Profile) []Slice {
	var out []Slice
	current := Slice{}
	var currentPaths PathSet = make(PathSet)

	flush := func(candidates PathSet) {
		if len(current.Nodes) == 0 {
			return
		}
		if filler := candidates.difference(currentPaths); filler.len() > 0 {
			current.addNode(SliceNode{Paths: pathSlice(filler)})
		}
		out = append(out, current)
		current = Slice{}
		currentPaths = make(PathSet)
	}

	for k, prof := range profile {
		candidates := prof.CandidatePaths.clone()
		if k+1 != len(profile) {
			candidates = candidates.union(profile[k+1].CandidatePaths)
		}

		switch {
		case len(prof.Paths) == candidates.len():
			// Anchor: no gap crosses this boundary.
			flush(prof.CandidatePaths)
			out = append(out, Slice{Nodes: []SliceNode{{
				Seq:    prof.Node.Seq,
				Paths:  clonePaths(prof.Paths),
				Source: prof.Node,
			}}})

		case pathSetIntersects(newPathSetFromSlice(prof.Paths), currentPaths):
			flush(prof.CandidatePaths)
			current = Slice{Nodes: []SliceNode{{
				Seq:    prof.Node.Seq,
				Paths:  clonePaths(prof.Paths),
				Source: prof.Node,
			}}}
			currentPaths = newPathSetFromSlice(prof.Paths)

		default:
			current.addNode(SliceNode{
				Seq:    prof.Node.Seq,
				Paths:  clonePaths(prof.Paths),
				Source: prof.Node,
			})
			currentPaths = currentPaths.union(newPathSetFromSlice(prof.Paths))
		}
	}

	if len(current.Nodes) > 0 {
		last := profile[len(profile)-1]
		flush(last.CandidatePaths)
	}

	return out
}

func pathSlice(s PathSet) []*core.Path {
	out := make([]*core.Path, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

func newPathSetFromSlice(paths []*core.Path) PathSet {
	return newPathSet(paths...)
}

func pathSetIntersects(a, b PathSet) bool {
	for p := range a {
		if _, ok := b[p]; ok {
			return true
		}
	}
	return false
}
