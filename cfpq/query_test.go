package cfpq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpq/cfpq"
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
)

func runAll(t *testing.T, g *graphmodel.MultiDiGraph, text string, start grammar.Variable) map[cfpq.Algorithm][]cfpq.Pair {
	t.Helper()
	cfg, err := grammar.ParseText(text)
	require.NoError(t, err)

	out := make(map[cfpq.Algorithm][]cfpq.Pair)
	for _, algo := range []cfpq.Algorithm{cfpq.AlgorithmHellings, cfpq.AlgorithmMatrix, cfpq.AlgorithmTensor} {
		pairs, err := cfpq.Query(g, cfg, nil, nil, start, algo)
		require.NoError(t, err)
		out[algo] = pairs
	}

	return out
}

func assertAllAgree(t *testing.T, results map[cfpq.Algorithm][]cfpq.Pair, expected []cfpq.Pair) {
	t.Helper()
	for algo, pairs := range results {
		assert.ElementsMatch(t, expected, pairs, "algorithm %v", algo)
	}
}

func TestQuery_Scenario1_CycleWithEpsilon(t *testing.T) {
	g, err := graphmodel.Cycle(3, "a")
	require.NoError(t, err)

	results := runAll(t, g, "S -> epsilon", "S")
	assertAllAgree(t, results, []cfpq.Pair{{0, 0}, {1, 1}, {2, 2}})
}

func TestQuery_Scenario2_CycleWithLabelOrEpsilon(t *testing.T) {
	g, err := graphmodel.Cycle(4, "b")
	require.NoError(t, err)

	results := runAll(t, g, "S -> b | epsilon", "S")
	expected := []cfpq.Pair{
		{0, 0}, {1, 1}, {2, 2}, {3, 3},
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
	}
	assertAllAgree(t, results, expected)
}

func TestQuery_Scenario3_TwoCyclesGrammar(t *testing.T) {
	g, err := graphmodel.TwoCycles(2, 1, [2]string{"a", "b"})
	require.NoError(t, err)

	text := "S -> A B | A S1\nS1 -> S B\nA -> a\nB -> b"
	results := runAll(t, g, text, "S")
	expected := []cfpq.Pair{{0, 0}, {0, 3}, {1, 0}, {1, 3}, {2, 0}, {2, 3}}
	assertAllAgree(t, results, expected)
}

func TestQuery_FiltersByStartAndFinalNodes(t *testing.T) {
	g, err := graphmodel.Cycle(4, "b")
	require.NoError(t, err)
	cfg, err := grammar.ParseText("S -> b | epsilon")
	require.NoError(t, err)

	pairs, err := cfpq.Query(g, cfg, []int{0}, []int{1}, "S", cfpq.AlgorithmHellings)
	require.NoError(t, err)
	assert.Equal(t, []cfpq.Pair{{0, 1}}, pairs)
}

func TestCYK_Scenario6(t *testing.T) {
	cfg, err := grammar.ParseText("S -> a S b S | epsilon")
	require.NoError(t, err)

	accept := []string{"", "ab", "aabb", "aabbab"}
	for _, w := range accept {
		assert.True(t, cfpq.CYK(cfg, toTerminals(w)), "word %q should be accepted", w)
	}
	reject := []string{"abc", "ba", "a", "b"}
	for _, w := range reject {
		assert.False(t, cfpq.CYK(cfg, toTerminals(w)), "word %q should be rejected", w)
	}
}

func toTerminals(s string) []grammar.Terminal {
	out := make([]grammar.Terminal, len(s))
	for i, c := range s {
		out[i] = grammar.Terminal(string(c))
	}

	return out
}
