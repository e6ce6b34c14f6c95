package simplify

import "github.com/graph-genome/pangraph/core"

// NeglectNodes implements spec section 4.D.2: remove every node whose
// specimen support is at or below threshold. When threshold >= 1, each
// removed node's neighbors are rewired first: for every non-NOTHING parent
// p, p's transition to n is folded into p's transition to NOTHING (and
// symmetrically for descendants), so the remaining graph's transition
// counts stay balanced (I2) without needing a recompute pass.
//
// threshold == 0 skips neighbor rewiring entirely (mirrors
// haplonetwork.py's delete_node cutoff guard): it is used to garbage-collect
// zero-specimen residuals left by SplitGroups, which by I3 already carry
// empty (purged) transition tables and so have no neighbor references left
// to unwind.
//
// Complexity: O(V + E)
func NeglectNodes(g *core.GraphGenome, nodes []*core.Node, threshold int) ([]*core.Node, error) {
	doomed := make(map[*core.Node]bool)
	for _, n := range nodes {
		if n.Specimens.Len() <= threshold {
			doomed[n] = true
		}
	}

	if threshold >= 1 {
		for n := range doomed {
			unlinkNeighbors(n)
		}
	}

	survivors := nodes[:0]
	for _, n := range nodes {
		if doomed[n] {
			g.RemoveNode(n.Name)
			continue
		}
		survivors = append(survivors, n)
	}
	return survivors, nil
}

// unlinkNeighbors folds n's transition weight into NOTHING at every
// non-NOTHING neighbor, then drops n from that neighbor's table. NOTHING
// itself is never treated as a neighbor to update here: it must never be
// mutated, even though it can appear as a key in n.Upstream/n.Downstream.
func unlinkNeighbors(n *core.Node) {
	for parent, count := range n.Upstream {
		if parent.IsNothing() {
			continue
		}
		parent.Downstream[parent.Graph().Nothing] += count
		delete(parent.Downstream, n)
	}
	for child, count := range n.Downstream {
		if child.IsNothing() {
			continue
		}
		child.Upstream[child.Graph().Nothing] += count
		delete(child.Upstream, n)
	}
}
