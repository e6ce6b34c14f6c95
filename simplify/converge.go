package simplify

import "github.com/graph-genome/pangraph/core"

// Converge runs SimpleMerge, NeglectNodes, SplitGroups, and a cleanup
// NeglectNodes(0) pass repeatedly until the node count stops changing
// across a full round and the last SplitGroups fired no split - the fixed
// point spec.md section 4.D defines for the outer driver, mirroring the
// loop in haplonetwork.py that alternates merge/neglect/split until
// stable rather than stopping after the first split round.
//
// nodes is the caller's initial working list (for example, every node
// graphbuild created). Converge returns the final working list.
//
// Complexity: bounded by the number of merge/neglect/split rounds until
// fixed point, each O(V + E).
func Converge(g *core.GraphGenome, nodes []*core.Node, opts Options) ([]*core.Node, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	for {
		before := len(nodes)

		for {
			roundBefore := len(nodes)
			var err error
			nodes, err = SimpleMerge(g, nodes)
			if err != nil {
				return nil, err
			}
			nodes, err = NeglectNodes(g, nodes, opts.FilterThreshold)
			if err != nil {
				return nil, err
			}
			if len(nodes) == roundBefore {
				break
			}
		}

		var (
			splits int
			err    error
		)
		nodes, splits, err = SplitGroups(g, nodes)
		if err != nil {
			return nil, err
		}
		if splits > 0 {
			nodes, err = NeglectNodes(g, nodes, 0)
			if err != nil {
				return nil, err
			}
		}

		if len(nodes) == before && splits == 0 {
			break
		}
	}

	return nodes, nil
}
