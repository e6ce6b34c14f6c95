package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graph-genome/pangraph/core"
	"github.com/graph-genome/pangraph/simplify"
)

// S4 - X sits between U and D, both of which carry the exact same total
// specimen membership ({0,1,2,3}, individual 3 routed elsewhere via Y and
// Z). SplitGroups pulls specimens {0,1,2} - the ones that actually cross
// X - out into a new node that shortcuts straight from U's upstream to
// D's downstream, leaving X empty and U/D holding only individual 3. The
// same pass then visits D (Z upstream, NOTHING downstream, both {3}) and
// Y (U upstream, NOTHING downstream, both {3}) as anchors and splits each
// of those too, so every original node ends empty and only the three
// split nodes survive the NeglectNodes(0) cleanup.
func TestSplitGroupsCarvesOutSharedSpecimens(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	u, _ := g.AddNode("U", "UU")
	x, _ := g.AddNode("X", "XX")
	d, _ := g.AddNode("D", "DD")
	y, _ := g.AddNode("Y", "YY")
	z, _ := g.AddNode("Z", "ZZ")

	u.Specimens = core.SpecimenSetOf(0, 1, 2, 3)
	x.Specimens = core.SpecimenSetOf(0, 1, 2)
	d.Specimens = core.SpecimenSetOf(0, 1, 2, 3)
	y.Specimens = core.SpecimenSetOf(3)
	z.Specimens = core.SpecimenSetOf(3)

	u.Upstream[g.Nothing] = 4
	u.Downstream[x] = 3
	u.Downstream[y] = 1
	x.Upstream[u] = 3
	x.Downstream[d] = 3
	y.Upstream[u] = 1
	y.Downstream[g.Nothing] = 1
	d.Upstream[x] = 3
	d.Upstream[z] = 1
	d.Downstream[g.Nothing] = 4
	z.Upstream[g.Nothing] = 1
	z.Downstream[d] = 1

	require.NoError(g.CheckInvariants())

	nodes, splits, err := simplify.SplitGroups(g, []*core.Node{u, x, d, y, z})
	require.NoError(err)
	require.Equal(3, splits)
	require.Len(nodes, 8)
	require.NoError(g.CheckInvariants())

	require.Equal(0, u.Specimens.Len(), "individual 3 is carved out of U by the split at anchor Y")
	require.Equal(0, x.Specimens.Len(), "X is fully carved out")
	require.Equal(0, d.Specimens.Len(), "individual 3 is carved out of D by the split at anchor D")

	newNode := nodes[5]
	require.Equal(3, newNode.Specimens.Len())
	require.Equal(3, newNode.Upstream[g.Nothing])
	require.Equal(3, newNode.Downstream[g.Nothing])

	cleaned, err := simplify.NeglectNodes(g, nodes, 0)
	require.NoError(err)
	require.Len(cleaned, 3, "U, X, D, Y and Z (zero specimens) are garbage-collected")
	require.Equal(3, g.NodeCount())
	require.NoError(g.CheckInvariants())
}

// No split candidate exists when the upstream and downstream neighbors do
// not carry identical specimen sets.
func TestSplitGroupsSkipsMismatchedFlanks(t *testing.T) {
	require := require.New(t)
	g := core.CreateGraph("g")
	u, _ := g.AddNode("U", "UU")
	x, _ := g.AddNode("X", "XX")
	d, _ := g.AddNode("D", "DD")

	u.Specimens = core.SpecimenSetOf(0, 1, 2)
	x.Specimens = core.SpecimenSetOf(0, 1)
	d.Specimens = core.SpecimenSetOf(0, 1, 3)

	u.Upstream[g.Nothing] = 3
	u.Downstream[x] = 2
	u.Downstream[g.Nothing] = 1
	x.Upstream[u] = 2
	x.Downstream[d] = 2
	d.Upstream[x] = 2
	d.Upstream[g.Nothing] = 1
	d.Downstream[g.Nothing] = 3

	require.NoError(g.CheckInvariants())

	nodes, splits, err := simplify.SplitGroups(g, []*core.Node{u, x, d})
	require.NoError(err)
	require.Equal(0, splits)
	require.Len(nodes, 3)
}
