package dagify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graph-genome/pangraph/core"
	"github.com/graph-genome/pangraph/dagify"
)

func buildPath(t *testing.T, g *core.GraphGenome, accession string, nodeNames ...string) *core.Path {
	t.Helper()
	p, err := g.CreatePath(accession, 0)
	require.NoError(t, err)
	for _, name := range nodeNames {
		n, err := g.GetNode(name)
		require.NoError(t, err)
		_, err = p.AppendTraversal(n, core.Forward)
		require.NoError(t, err)
	}
	return p
}

// S1 - three paths, one shared middle: P1=[A,B,C], P2=[A,B,D], P3=[E,B,C].
// The primary minimizing duplicates is P1, with zero duplicates.
func TestGenerateProfilesMinimizesDuplicates(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		_, err := g.AddNode(n, n)
		require.NoError(err)
	}
	p1 := buildPath(t, g, "P1", "A", "B", "C")
	p2 := buildPath(t, g, "P2", "A", "B", "D")
	p3 := buildPath(t, g, "P3", "E", "B", "C")

	profile, primary, duplicates, err := dagify.GenerateProfiles([]*core.Path{p1, p2, p3})
	require.NoError(err)
	require.Equal(0, primary)
	require.Equal(0, duplicates)

	got := make([]string, len(profile))
	for i, p := range profile {
		got[i] = p.Node.Name
	}
	require.Equal([]string{"A", "E", "B", "C", "D"}, got)
}

// B3 - DAGify on a single path returns a profile equal to that path with
// zero duplicates.
func TestGenerateProfilesSinglePath(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	for _, n := range []string{"A", "B", "C"} {
		_, err := g.AddNode(n, n)
		require.NoError(err)
	}
	p1 := buildPath(t, g, "P1", "A", "B", "C")

	profile, primary, duplicates, err := dagify.GenerateProfiles([]*core.Path{p1})
	require.NoError(err)
	require.Equal(0, primary)
	require.Equal(0, duplicates)
	require.Len(profile, 3)
	for _, p := range profile {
		require.Len(p.Paths, 1)
		require.Equal(p1, p.Paths[0])
	}
}

func TestGenerateProfilesRejectsEmptyInput(t *testing.T) {
	_, _, _, err := dagify.GenerateProfiles(nil)
	require.ErrorIs(t, err, dagify.ErrNoOverlap)
}

// S5 - LCS traceback: profile [A,B,C] merged with path [B,C,D] yields
// [A,B,C,D], with B and C carrying both paths and A, D carrying one each.
func TestLCSTraceback(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	for _, n := range []string{"A", "B", "C", "D"} {
		_, err := g.AddNode(n, n)
		require.NoError(err)
	}
	base := buildPath(t, g, "base", "A", "B", "C")
	extra := buildPath(t, g, "extra", "B", "C", "D")

	profile := make([]dagify.Profile, len(base.Traversals))
	for i, trav := range base.Traversals {
		profile[i] = dagify.Profile{Node: trav.Node, Paths: []*core.Path{base}}
	}

	merged := dagify.LCS(profile, extra)
	got := make([]string, len(merged))
	for i, p := range merged {
		got[i] = p.Node.Name
	}
	require.Equal([]string{"A", "B", "C", "D"}, got)

	require.Len(merged[0].Paths, 1, "A only carries the base path")
	require.Len(merged[1].Paths, 2, "B carries both paths")
	require.Len(merged[2].Paths, 2, "C carries both paths")
	require.Len(merged[3].Paths, 1, "D only carries the extra path")
}

// ToSlices groups nodes shared across every in-play path into an anchor
// slice, and keeps disjoint alternative-allele nodes together in one
// slice.
func TestToSlicesGroupsAlternativeAlleles(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	for _, n := range []string{"A", "B", "C", "D"} {
		_, err := g.AddNode(n, n)
		require.NoError(err)
	}
	p1 := buildPath(t, g, "P1", "A", "B", "D")
	p2 := buildPath(t, g, "P2", "A", "C", "D")

	profile, _, _, err := dagify.GenerateProfiles([]*core.Path{p1, p2})
	require.NoError(err)

	slices := dagify.ToSlices(profile)
	require.NotEmpty(slices)

	// A and D are shared by both paths and must each end up as an anchor
	// (singleton) slice; B and C are alternative alleles at the same
	// locus and must end up together in one slice.
	var sawBC bool
	for _, s := range slices {
		seqs := make(map[string]bool)
		for _, n := range s.Nodes {
			seqs[n.Seq] = true
		}
		if seqs["B"] && seqs["C"] {
			sawBC = true
		}
	}
	require.True(sawBC, "B and C must share a slice as alternative alleles")
}
