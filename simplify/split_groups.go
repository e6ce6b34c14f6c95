package simplify

import (
	"fmt"

	"github.com/graph-genome/pangraph/core"
)

// SplitGroups implements spec section 4.D.3: for every anchor node and
// every (up, down) pair drawn from its upstream and downstream neighbors
// (NOTHING included), if the specimens reachable through up agree exactly
// with the specimens reachable through down, those specimens are pulled out
// of the anchor into a new node that shortcuts anchor's grandparents
// directly to its grandchildren.
//
// Candidate pairs are read from a snapshot of anchor's neighbor maps taken
// before any split runs, matching haplonetwork.py's use of tuple(...) over
// the live dict: a split changes anchor's Upstream/Downstream in ways that
// must not feed back into the same anchor's remaining (up, down) pairs this
// pass.
//
// Returns the updated working list (with any new nodes appended) and how
// many splits were performed.
//
// Complexity: O(V * d_in * d_out) where d_in/d_out are average upstream/
// downstream neighbor counts.
func SplitGroups(g *core.GraphGenome, nodes []*core.Node) ([]*core.Node, int, error) {
	var created []*core.Node
	splits := 0

	for _, anchor := range nodes {
		if anchor.Specimens.Len() == 0 {
			continue
		}
		ups := neighborKeys(anchor.Upstream)
		downs := neighborKeys(anchor.Downstream)

		for _, up := range ups {
			for _, down := range downs {
				if up.IsNothing() && down.IsNothing() {
					// Both ends untracked: the candidacy formula degenerates
					// to anchor's own specimens on both sides, so every
					// such node would "split" into an identical duplicate
					// of itself forever. Skip rather than chase a fixed
					// point that never gains any information.
					continue
				}
				// Recomputed every pair, not hoisted: an earlier pair in
				// this same down loop may have just mutated up.Specimens
				// (or anchor.Specimens, when up is NOTHING) via
				// splitOneGroup, and a stale set1 would test later pairs
				// against specimens up no longer carries.
				set1 := candidacySpecimens(anchor, up, anchor.Upstream)
				set2 := candidacySpecimens(anchor, down, anchor.Downstream)
				if set2.Len() == 0 || !set1.Equal(set2) {
					continue
				}

				newNode, err := splitOneGroup(g, up, anchor, down)
				if err != nil {
					return nil, 0, err
				}
				created = append(created, newNode)
				splits++
			}
		}
	}

	return append(nodes, created...), splits, nil
}

func neighborKeys(table map[*core.Node]int) []*core.Node {
	out := make([]*core.Node, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	return out
}

// candidacySpecimens is the set a neighbor contributes to the split test:
// the neighbor's own specimens, or - when the neighbor is NOTHING - the
// anchor's specimens minus everything claimed by its tracked (non-NOTHING)
// neighbors on that side.
func candidacySpecimens(anchor, neighbor *core.Node, table map[*core.Node]int) core.SpecimenSet {
	if !neighbor.IsNothing() {
		return neighbor.Specimens
	}
	return anchor.Specimens.Difference(unionNonNothingSpecimens(table))
}

// splitOneGroup carves the specimens shared by up, anchor, and down into a
// new node that inherits up's upstream and down's downstream directly,
// bypassing up, anchor, and down for those specimens (spec section 4.D.3).
func splitOneGroup(g *core.GraphGenome, up, anchor, down *core.Node) (*core.Node, error) {
	newSpecimens := splitSpecimens(anchor, up, down)

	name := fmt.Sprintf("%s|%s|%s/split", up.Name, anchor.Name, down.Name)
	newNode, err := g.AddNode(uniqueName(g, name), "")
	if err != nil {
		return nil, err
	}
	newNode.Specimens = newSpecimens

	if up.IsNothing() {
		newNode.Upstream = cloneTransitions(anchor.Upstream)
	} else {
		newNode.Upstream = cloneTransitions(up.Upstream)
	}
	if down.IsNothing() {
		newNode.Downstream = cloneTransitions(anchor.Downstream)
	} else {
		newNode.Downstream = cloneTransitions(down.Downstream)
	}

	if !up.IsNothing() {
		up.Specimens = up.Specimens.Difference(newSpecimens)
	}
	anchor.Specimens = anchor.Specimens.Difference(newSpecimens)
	if !down.IsNothing() {
		down.Specimens = down.Specimens.Difference(newSpecimens)
	}

	updateNeighborPointers(newNode)

	suspects := []*core.Node{newNode, up, anchor, down}
	for k := range newNode.Upstream {
		suspects = append(suspects, k)
	}
	for k := range newNode.Downstream {
		suspects = append(suspects, k)
	}
	for _, s := range suspects {
		if err := recomputeBoth(s); err != nil {
			return nil, err
		}
	}

	return newNode, nil
}

// splitSpecimens computes the new node's specimens: the three-way
// intersection of anchor, up, and down, substituting anchor's own specimens
// in place of whichever of up/down is NOTHING. When both are NOTHING, the
// plain substitution degenerates to anchor.Specimens (no real split), so
// the corrected candidacy formula is used on both sides instead.
func splitSpecimens(anchor, up, down *core.Node) core.SpecimenSet {
	if up.IsNothing() && down.IsNothing() {
		correctedUp := anchor.Specimens.Difference(unionNonNothingSpecimens(anchor.Upstream))
		correctedDown := anchor.Specimens.Difference(unionNonNothingSpecimens(anchor.Downstream))
		return correctedUp.Intersect(correctedDown)
	}

	result := anchor.Specimens.Clone()
	if !up.IsNothing() {
		result = result.Intersect(up.Specimens)
	}
	if !down.IsNothing() {
		result = result.Intersect(down.Specimens)
	}
	return result
}

// updateNeighborPointers wires n into every non-NOTHING neighbor it
// inherited: a placeholder count of 1, corrected immediately afterwards by
// recomputeBoth once n's Specimens is final.
func updateNeighborPointers(n *core.Node) {
	for k := range n.Upstream {
		if !k.IsNothing() {
			k.Downstream[n] = 1
		}
	}
	for k := range n.Downstream {
		if !k.IsNothing() {
			k.Upstream[n] = 1
		}
	}
}

// uniqueName appends a numeric suffix until base does not collide with an
// existing node name; split nodes are named descriptively, but a flanking
// NOTHING on both sides can make the base name collide across anchors.
func uniqueName(g *core.GraphGenome, base string) string {
	if _, err := g.GetNode(base); err != nil {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, err := g.GetNode(candidate); err != nil {
			return candidate
		}
	}
}
