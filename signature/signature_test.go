package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graph-genome/pangraph/signature"
)

func TestExtractDiscardsRemainder(t *testing.T) {
	// 1 individual, 5 loci, block size 2: floor(5/2) = 2 windows, 1 locus
	// discarded.
	individuals := [][]int{{1, 0, 1, 1, 0}}
	w, err := signature.Extract(individuals, signature.Options{BlockSize: 2})
	require.NoError(t, err)
	require.Equal(t, 2, w.NumWindows())
	require.Equal(t, "10", w.Distinct[0][0].Seq)
	require.Equal(t, "11", w.Distinct[1][0].Seq)
}

func TestExtractDeduplicatesWithinWindow(t *testing.T) {
	individuals := [][]int{
		{1, 1},
		{1, 1},
		{0, 0},
	}
	w, err := signature.Extract(individuals, signature.Options{BlockSize: 2})
	require.NoError(t, err)
	require.Len(t, w.Distinct[0], 2, "only 2 distinct signatures in window 0")
	require.Equal(t, w.Assignment[0][0], w.Assignment[1][0], "identical individuals share a signature index")
	require.NotEqual(t, w.Assignment[0][0], w.Assignment[2][0])
}

func TestExtractRejectsRaggedIndividuals(t *testing.T) {
	individuals := [][]int{{1, 1, 1}, {1, 1}}
	_, err := signature.Extract(individuals, signature.DefaultOptions())
	require.ErrorIs(t, err, signature.ErrRaggedIndividuals)
}

func TestOptionsValidate(t *testing.T) {
	require.ErrorIs(t, signature.Options{BlockSize: 0}.Validate(), signature.ErrBadBlockSize)
	require.NoError(t, signature.DefaultOptions().Validate())
}
