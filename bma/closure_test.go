package bma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/bma"
	"github.com/katalvlaran/fpq/graphmodel"
)

func TestIntersect_ComposesSharedLabels(t *testing.T) {
	g, err := graphmodel.Cycle(2, "a")
	require.NoError(t, err)
	a, err := bma.FromGraph(g, nil, nil)
	require.NoError(t, err)
	b, err := bma.FromGraph(g, nil, nil)
	require.NoError(t, err)

	inter := bma.Intersect(a, b)
	assert.Equal(t, a.NumStates*b.NumStates, inter.NumStates)
	assert.Contains(t, inter.Matrices, automaton.Symbol("a"))
}

func TestReachablePairs_SimpleChain(t *testing.T) {
	g, err := graphmodel.Chain(3, "a")
	require.NoError(t, err)
	b, err := bma.FromGraph(g, []int{0}, []int{2})
	require.NoError(t, err)

	pairs, err := b.ReachablePairs(0)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, bma.Pair{I: 0, J: 2}, pairs[0])
}
