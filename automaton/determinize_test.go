package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fpq/automaton"
)

func TestDeterminize_ProducesDeterministicAutomaton(t *testing.T) {
	a := compileText(t, "(a|b)*a")
	det := a.Determinize()
	assert.True(t, det.IsDeterministic())
}

func TestDeterminize_PreservesLanguage(t *testing.T) {
	a := compileText(t, "(a|b)*a")
	det := a.Determinize()
	for _, w := range []string{"a", "ba", "aba", "aa", "aaab"} {
		assert.Equal(t, a.Accepts(sym(w)), det.Accepts(sym(w)), "word %q", w)
	}
}

func TestDeterminize_EmptyAutomaton(t *testing.T) {
	a := automaton.New()
	det := a.Determinize()
	assert.True(t, det.IsDeterministic())
	assert.False(t, det.Accepts(nil))
}
