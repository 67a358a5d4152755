package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpq/automaton"
)

func compileText(t *testing.T, text string) *automaton.Automaton {
	t.Helper()
	r, err := automaton.ParseRegex(text)
	require.NoError(t, err)

	return automaton.Compile(r)
}

func sym(s string) []automaton.Symbol {
	out := make([]automaton.Symbol, len(s))
	for i, c := range s {
		out[i] = automaton.Symbol(string(c))
	}

	return out
}

func TestCompile_Literal(t *testing.T) {
	a := compileText(t, "a")
	assert.True(t, a.Accepts(sym("a")))
	assert.False(t, a.Accepts(sym("b")))
	assert.False(t, a.Accepts(sym("")))
}

func TestCompile_Epsilon(t *testing.T) {
	a := compileText(t, "epsilon")
	assert.True(t, a.Accepts(sym("")))
	assert.False(t, a.Accepts(sym("a")))
}

func TestCompile_Concat(t *testing.T) {
	a := compileText(t, "a b")
	assert.True(t, a.Accepts(sym("ab")))
	assert.False(t, a.Accepts(sym("a")))
	assert.False(t, a.Accepts(sym("ba")))
}

func TestCompile_Union(t *testing.T) {
	a := compileText(t, "a|b")
	assert.True(t, a.Accepts(sym("a")))
	assert.True(t, a.Accepts(sym("b")))
	assert.False(t, a.Accepts(sym("c")))
}

func TestCompile_Star(t *testing.T) {
	a := compileText(t, "a*")
	assert.True(t, a.Accepts(sym("")))
	assert.True(t, a.Accepts(sym("a")))
	assert.True(t, a.Accepts(sym("aaaa")))
	assert.False(t, a.Accepts(sym("ab")))
}

func TestCompile_StarUnion(t *testing.T) {
	a := compileText(t, "a*|b")
	assert.True(t, a.Accepts(sym("")))
	assert.True(t, a.Accepts(sym("aaa")))
	assert.True(t, a.Accepts(sym("b")))
	assert.False(t, a.Accepts(sym("bb")))
	assert.False(t, a.Accepts(sym("ab")))
}

func TestCompile_GroupedStar(t *testing.T) {
	a := compileText(t, "(a|b)*")
	assert.True(t, a.Accepts(sym("")))
	assert.True(t, a.Accepts(sym("ababba")))
	assert.False(t, a.Accepts(sym("abc")))
}
