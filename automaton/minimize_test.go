package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fpq/automaton"
)

func TestMinimize_PreservesLanguage(t *testing.T) {
	a := compileText(t, "(a|b)*a(a|b)")
	det := a.Determinize()
	min := det.Minimize()
	for _, w := range []string{"aa", "ab", "baa", "bab", "a", "", "aaab"} {
		assert.Equal(t, det.Accepts(sym(w)), min.Accepts(sym(w)), "word %q", w)
	}
}

func TestMinimize_ReducesRedundantStates(t *testing.T) {
	// a|a should minimize to the same size as a.
	a := compileText(t, "a|a")
	b := compileText(t, "a")
	minA := a.Determinize().Minimize()
	minB := b.Determinize().Minimize()
	assert.Equal(t, minB.NumStates(), minA.NumStates())
}

func TestMinimize_IsIdempotent(t *testing.T) {
	a := compileText(t, "(a|b)*")
	min1 := a.Determinize().Minimize()
	min2 := min1.Minimize()
	assert.Equal(t, min1.NumStates(), min2.NumStates())
}
