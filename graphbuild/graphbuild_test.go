package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graph-genome/pangraph/core"
	"github.com/graph-genome/pangraph/graphbuild"
	"github.com/graph-genome/pangraph/signature"
)

// B1 - single individual produces a linear path with floor(L/BLOCK_SIZE)
// nodes, transition counts all 1, NOTHING at both ends.
func TestBuildSingleIndividualIsLinear(t *testing.T) {
	require := require.New(t)
	individuals := [][]int{{1, 1, 0, 0, 1, 1}} // L=6
	windows, err := signature.Extract(individuals, signature.Options{BlockSize: 2})
	require.NoError(err)
	require.Equal(3, windows.NumWindows())

	g := core.CreateGraph("g")
	accessions, err := graphbuild.Build(g, windows)
	require.NoError(err)
	require.Len(accessions, 1)
	require.Equal(3, g.NodeCount())
	require.NoError(g.CheckInvariants())

	p, err := g.GetPath(accessions[0], 0)
	require.NoError(err)
	require.Equal(3, p.Len())

	first := p.At(0).Node
	last := p.At(2).Node
	require.Equal(1, first.Upstream[g.Nothing])
	require.Equal(1, last.Downstream[g.Nothing])
	for _, t := range p.Traversals {
		for neighbor, c := range t.Node.Upstream {
			_ = neighbor
			require.Equal(1, c)
		}
		for neighbor, c := range t.Node.Downstream {
			_ = neighbor
			require.Equal(1, c)
		}
	}
}

// Setup for S2/B2 - two identical individuals share every signature, so
// the graph is one linear chain of 3 nodes, each with 2 specimens and
// transition counts of 2.
func TestBuildTwoIdenticalIndividualsShareNodes(t *testing.T) {
	require := require.New(t)
	individuals := [][]int{
		{1, 1, 0, 0, 1, 1},
		{1, 1, 0, 0, 1, 1},
	}
	windows, err := signature.Extract(individuals, signature.Options{BlockSize: 2})
	require.NoError(err)

	g := core.CreateGraph("g")
	_, err = graphbuild.Build(g, windows)
	require.NoError(err)
	require.Equal(3, g.NodeCount())
	require.NoError(g.CheckInvariants())

	for _, n := range g.Nodes() {
		require.Equal(2, n.Specimens.Len())
	}
}

func TestBuildCustomAccessions(t *testing.T) {
	require := require.New(t)
	individuals := [][]int{{1, 1}, {0, 0}}
	windows, err := signature.Extract(individuals, signature.Options{BlockSize: 2})
	require.NoError(err)

	g := core.CreateGraph("g")
	accessions, err := graphbuild.Build(g, windows, graphbuild.WithAccessionNames([]string{"sampleA", "sampleB"}))
	require.NoError(err)
	require.Equal([]string{"sampleA", "sampleB"}, accessions)
}
