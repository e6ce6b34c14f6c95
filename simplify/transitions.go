package simplify

import (
	"fmt"

	"github.com/graph-genome/pangraph/core"
)

// recomputeBoth rebuilds both of n's transition tables from its current
// Specimens set against its current neighbors (spec section 4.D.4). NOTHING
// itself is never touched: its tables are never populated and must stay
// that way.
func recomputeBoth(n *core.Node) error {
	if n.IsNothing() {
		return nil
	}
	if err := recompute(n, n.Upstream, "upstream"); err != nil {
		return err
	}
	if err := recompute(n, n.Downstream, "downstream"); err != nil {
		return err
	}
	return nil
}

// recompute zeroes table and repopulates it from the neighbors it
// previously held: for every non-NOTHING neighbor k, table[k] becomes
// |n.Specimens ∩ k.Specimens|. The remainder - the specimens of n not
// accounted for by any tracked neighbor - is assigned to NOTHING. Zero
// entries are purged (I3); a negative remainder is an invariant violation,
// never silently clamped.
func recompute(n *core.Node, table map[*core.Node]int, direction string) error {
	keys := make([]*core.Node, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	for k := range table {
		delete(table, k)
	}

	sum := 0
	for _, k := range keys {
		if k.IsNothing() {
			continue
		}
		c := n.Specimens.Intersect(k.Specimens).Len()
		if c > 0 {
			table[k] = c
			sum += c
		}
	}

	remainder := n.Specimens.Len() - sum
	if remainder < 0 {
		return fmt.Errorf("%w: node %q %s remainder %d after recompute", core.ErrInvariant, n.Name, direction, remainder)
	}
	if remainder > 0 {
		table[n.Graph().Nothing] = remainder
	}
	return nil
}

// cloneTransitions returns a shallow-copied-values deep-copied-map clone of
// a transition table: a new map with the same (neighbor, count) entries.
func cloneTransitions(table map[*core.Node]int) map[*core.Node]int {
	out := make(map[*core.Node]int, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// unionNonNothingSpecimens returns the union of Specimens over every
// non-NOTHING key in table.
func unionNonNothingSpecimens(table map[*core.Node]int) core.SpecimenSet {
	var out core.SpecimenSet
	for k := range table {
		if k.IsNothing() {
			continue
		}
		out = out.Union(k.Specimens)
	}
	return out
}
