package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fpq/automaton"
)

func TestEquivalent_SameLanguageDifferentConstruction(t *testing.T) {
	a := compileText(t, "a|a")
	b := compileText(t, "a")
	assert.True(t, automaton.Equivalent(a, b))
}

func TestEquivalent_DifferentLanguages(t *testing.T) {
	a := compileText(t, "a")
	b := compileText(t, "b")
	assert.False(t, automaton.Equivalent(a, b))
}

func TestEquivalent_StarAssociativity(t *testing.T) {
	a := compileText(t, "(a*)*")
	b := compileText(t, "a*")
	assert.True(t, automaton.Equivalent(a, b))
}

func TestEquivalent_UnionCommutativity(t *testing.T) {
	a := compileText(t, "a|b")
	b := compileText(t, "b|a")
	assert.True(t, automaton.Equivalent(a, b))
}

func TestEquivalent_EmptyAutomata(t *testing.T) {
	a := automaton.New()
	b := automaton.New()
	assert.True(t, automaton.Equivalent(a, b))
}
