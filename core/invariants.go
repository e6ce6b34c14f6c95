package core

import "fmt"

// CheckInvariants verifies I1-I3 (spec.md section 3) over every live node in
// g: downstream/upstream symmetry (I1), transition-count/specimen-count
// conservation (I2), and the non-negative, zero-purged transition table
// (I3). It returns ErrInvariant wrapped with the offending node's name for
// diagnosis on the first violation found; callers (simplify) must treat a
// non-nil return as fatal to the whole operation, never partially commit.
//
// Complexity: O(V + E)
func (g *GraphGenome) CheckInvariants() error {
	for _, n := range g.nodes {
		if err := checkTransitionTable(n, n.Downstream, "downstream"); err != nil {
			return err
		}
		if err := checkTransitionTable(n, n.Upstream, "upstream"); err != nil {
			return err
		}

		// I1: n.Downstream[m] == m.Upstream[n] for every non-NOTHING m.
		for m, c := range n.Downstream {
			if m.IsNothing() {
				continue
			}
			if m.Upstream[n] != c {
				return fmt.Errorf("%w: node %q downstream[%q]=%d but %q upstream[%q]=%d",
					ErrInvariant, n.Name, m.Name, c, m.Name, n.Name, m.Upstream[n])
			}
		}
		for m, c := range n.Upstream {
			if m.IsNothing() {
				continue
			}
			if m.Downstream[n] != c {
				return fmt.Errorf("%w: node %q upstream[%q]=%d but %q downstream[%q]=%d",
					ErrInvariant, n.Name, m.Name, c, m.Name, n.Name, m.Downstream[n])
			}
		}

		// I2: sum(upstream) == sum(downstream) == |specimens|.
		upSum, downSum := sumCounts(n.Upstream), sumCounts(n.Downstream)
		specimens := n.Specimens.Len()
		if upSum != specimens || downSum != specimens {
			return fmt.Errorf("%w: node %q upstream sum=%d downstream sum=%d specimens=%d",
				ErrInvariant, n.Name, upSum, downSum, specimens)
		}
	}
	return nil
}

func checkTransitionTable(n *Node, table map[*Node]int, direction string) error {
	for neighbor, c := range table {
		if c < 0 {
			return fmt.Errorf("%w: node %q %s[%q]=%d is negative",
				ErrInvariant, n.Name, direction, neighbor.Name, c)
		}
		if c == 0 {
			return fmt.Errorf("%w: node %q %s[%q]=0 must be purged",
				ErrInvariant, n.Name, direction, neighbor.Name)
		}
	}
	return nil
}

func sumCounts(table map[*Node]int) int {
	n := 0
	for _, c := range table {
		n += c
	}
	return n
}

// CheckPathOrders verifies I5 over every path in every zoom level of g:
// traversal Order values must form the contiguous sequence 0..k with no
// gaps.
//
// Complexity: O(P * L) where L is the average path length.
func (g *GraphGenome) CheckPathOrders() error {
	for _, zl := range g.zoomLevels {
		for _, p := range zl.Paths {
			for i, t := range p.Traversals {
				if t.Order != i {
					return fmt.Errorf("%w: path %q traversal %d has order %d, want %d",
						ErrInvariant, p.Accession, i, t.Order, i)
				}
			}
		}
	}
	return nil
}
