package simplify

import "github.com/graph-genome/pangraph/core"

// SimpleMerge implements spec section 4.D.1: collapse every node n that has
// exactly one downstream neighbor m into m, provided n and m carry the same
// specimens (so the merge loses no information). nodes is the caller's
// working list, in a stable order; SimpleMerge mutates the graph and
// returns the updated list with merged nodes removed.
//
// Mirrors haplonetwork.py's simple_merge loop: a single left-to-right scan
// that rescans the current index after a merge shrinks the list, since the
// node now occupying that index was never visited.
//
// Complexity: O(V) amortized, one merge per surviving edge.
func SimpleMerge(g *core.GraphGenome, nodes []*core.Node) ([]*core.Node, error) {
	for i := 0; i < len(nodes); {
		n := nodes[i]
		m := soleDownstream(n)
		if m == nil || m.IsNothing() || !n.Specimens.Equal(m.Specimens) {
			i++
			continue
		}

		if err := mergeInto(n, m); err != nil {
			return nil, err
		}
		g.RemoveNode(n.Name)
		nodes = append(nodes[:i], nodes[i+1:]...)
		// Do not advance i: the node that slid into this slot, if any,
		// has not been visited yet.
	}
	return nodes, nil
}

// soleDownstream returns n's only downstream neighbor, or nil if n has zero
// or more than one.
func soleDownstream(n *core.Node) *core.Node {
	if len(n.Downstream) != 1 {
		return nil
	}
	for m := range n.Downstream {
		return m
	}
	return nil
}

// mergeInto folds n into its sole downstream neighbor m: every non-NOTHING
// parent of n is rewired to point at m instead, m inherits n's upstream
// table as a starting point, and then - per the Open Question resolution
// in DESIGN.md - m's transitions are recomputed from its (unchanged)
// specimens rather than trusted as a blind copy, so a stale entry left
// over from m's own prior upstream can never survive the merge.
func mergeInto(n, m *core.Node) error {
	for parent, count := range n.Upstream {
		if !parent.IsNothing() {
			delete(parent.Downstream, n)
			parent.Downstream[m] = count
		}
	}
	m.Upstream = cloneTransitions(n.Upstream)
	return recomputeBoth(m)
}
