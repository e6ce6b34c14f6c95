// Package graphbuild instantiates a core.GraphGenome from extracted
// signatures: one node per distinct signature per window, one path per
// individual, and the upstream/downstream/specimens bookkeeping that keeps
// the graph's invariants satisfied from the moment it is built.
//
// Build takes a functional-option signature: a single call that mutates a
// *core.GraphGenome in place and returns the accessions it created,
// rather than returning a new graph value.
package graphbuild

import (
	"fmt"

	"github.com/graph-genome/pangraph/core"
	"github.com/graph-genome/pangraph/signature"
)

// Option configures Build.
type Option func(*config)

type config struct {
	accessions []string
}

// WithAccessionNames supplies one accession name per individual, in the
// same order as the individualMajor matrix passed to signature.Extract.
func WithAccessionNames(names []string) Option {
	return func(c *config) { c.accessions = names }
}

// Build creates one node per distinct signature per window (named
// "{k}:{w}-{w}"), one path per individual traversing its window's nodes in
// order, and populates each node's specimens/upstream/downstream tables
// (spec section 4.C.3). It returns the accessions of the paths created.
//
// Unlike the commented-out behavior in the original implementation, Build
// also records a NOTHING transition at each path's two open ends
// (first node's upstream, last node's downstream): this is required for
// the graph to satisfy invariant I2 (transition-count/specimen-count
// conservation) immediately after construction, before any simplification
// pass runs - see DESIGN.md.
//
// Complexity: O(individuals * windows)
func Build(g *core.GraphGenome, windows *signature.Windows, opts ...Option) ([]string, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	numWindows := windows.NumWindows()
	nodesByWindow := make([][]*core.Node, numWindows)
	for w := 0; w < numWindows; w++ {
		nodesByWindow[w] = make([]*core.Node, len(windows.Distinct[w]))
		for k, sig := range windows.Distinct[w] {
			name := fmt.Sprintf("%d:%d-%d", k, w, w)
			n, err := g.AddNode(name, sig.Seq)
			if err != nil {
				return nil, err
			}
			nodesByWindow[w][k] = n
		}
	}

	numIndividuals := len(windows.Assignment)
	accessions := make([]string, numIndividuals)
	paths := make([]*core.Path, numIndividuals)
	for i := 0; i < numIndividuals; i++ {
		accession := fmt.Sprintf("indiv%d", i)
		if cfg.accessions != nil && i < len(cfg.accessions) {
			accession = cfg.accessions[i]
		}
		p, err := g.CreatePath(accession, 0)
		if err != nil {
			return nil, err
		}
		for w := 0; w < numWindows; w++ {
			node := nodesByWindow[w][windows.Assignment[i][w]]
			if _, err := p.AppendTraversal(node, core.Forward); err != nil {
				return nil, err
			}
		}
		accessions[i] = accession
		paths[i] = p
	}

	for i, p := range paths {
		populateTransitions(g, i, p)
	}

	return accessions, nil
}

// populateTransitions implements spec section 4.C.3: add i to each visited
// node's specimens, link consecutive nodes with a +1 transition count, and
// record the untracked continuation at both open ends via NOTHING.
func populateTransitions(g *core.GraphGenome, individual int, p *core.Path) {
	nodes := p.Traversals
	w := len(nodes)
	for x, t := range nodes {
		n := t.Node
		n.Specimens.Add(individual)
		if x+1 < w {
			next := nodes[x+1].Node
			n.Downstream[next]++
		} else {
			n.Downstream[g.Nothing]++
		}
		if x-1 >= 0 {
			prev := nodes[x-1].Node
			n.Upstream[prev]++
		} else {
			n.Upstream[g.Nothing]++
		}
	}
}
