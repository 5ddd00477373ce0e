package mist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIsPureDryRun(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 10, 10, 0)
	require.NoError(t, root.Offer(a))
	before := root.HierarchySlice()

	result, err := root.Compute(12, 2, 5)
	require.NoError(t, err)
	require.Contains(t, result, Top)
	assert.Equal(t, a, result[Top])
	assert.NotContains(t, result, Clashing)

	assert.Equal(t, before, root.HierarchySlice(), "Compute must not mutate the tree")
}

func TestComputeMatchesSubsequentOffer(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 10, 10, 0)
	b := mustOfferNode(t, "b", 30, 10, 0)
	require.NoError(t, root.Offer(a))
	require.NoError(t, root.Offer(b))

	result, err := root.Compute(20, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, a, result[Left])
	assert.Equal(t, b, result[Right])
	assert.NotContains(t, result, Top)
	assert.NotContains(t, result, Bottom)

	c := mustOfferNode(t, "c", 20, 5, 0)
	require.NoError(t, root.Offer(c))
	assert.Equal(t, result[Left], c.Left())
	assert.Equal(t, result[Right], c.Right())
}

func TestComputeReportsClashingNode(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 10, 10, 0)
	require.NoError(t, root.Offer(a))

	result, err := root.Compute(15, 10, 0) // overlaps a
	require.NoError(t, err)
	require.Contains(t, result, Clashing)
	assert.Equal(t, a, result[Clashing])
	assert.Len(t, result, 1)
}

func TestComputeReportsTakeoverAsClashing(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 10, 10, 0)
	require.NoError(t, root.Offer(a))

	result, err := root.Compute(10, 10, 0) // identical range and weight
	require.NoError(t, err)
	require.Contains(t, result, Clashing)
	assert.Equal(t, a, result[Clashing])
}

func TestComputeInvalidRangeReturnsError(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	_, err := root.Compute(^uint64(0), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestComputeAgreesWithPlacementUsedByOffer(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 2, 4, 0)
	require.NoError(t, root.Offer(a))

	result, err := root.Compute(2, 4, 5) // higher weight, should nest inside a
	require.NoError(t, err)
	assert.Equal(t, a, result[Top])

	b := mustOfferNode(t, "b", 2, 4, 5)
	require.NoError(t, root.Offer(b))
	assert.Equal(t, a, b.Top())
}

func TestComputeNodeAgreesWithTripleArgForm(t *testing.T) {
	root := mustOfferNode(t, "root", 0, 100, 0)
	a := mustOfferNode(t, "a", 10, 10, 0)
	require.NoError(t, root.Offer(a))

	incoming := mustOfferNode(t, "incoming", 12, 2, 5)
	byTriple, err := root.Compute(incoming.Offset(), incoming.Length(), incoming.Weight())
	require.NoError(t, err)
	byNode, err := root.ComputeNode(incoming)
	require.NoError(t, err)
	assert.Equal(t, byTriple, byNode)
}
