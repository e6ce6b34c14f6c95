package allele_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graph-genome/pangraph/allele"
)

func TestLoadTransposesLociMajorToIndividualMajor(t *testing.T) {
	require := require.New(t)
	input := "1 2 3\n4 5 6\n7 8 9\n"

	lociMajor, individualMajor, err := allele.Load(strings.NewReader(input))
	require.NoError(err)

	require.Equal([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, lociMajor)
	require.Equal([][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, individualMajor)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	require := require.New(t)
	input := "1 2\n\n3 4\n"

	lociMajor, _, err := allele.Load(strings.NewReader(input))
	require.NoError(err)
	require.Len(lociMajor, 2)
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	input := "1 2 3\n4 5\n"
	_, _, err := allele.Load(strings.NewReader(input))
	require.ErrorIs(t, err, allele.ErrRagged)
}

func TestLoadRejectsNonIntegerTokens(t *testing.T) {
	input := "1 2 x\n"
	_, _, err := allele.Load(strings.NewReader(input))
	require.ErrorIs(t, err, allele.ErrBadToken)
}
