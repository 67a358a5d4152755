package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fpq/automaton"
)

func TestAutomaton_BasicConstruction(t *testing.T) {
	a := automaton.New()
	s0 := a.AddState()
	s1 := a.AddState()
	a.AddTransition(s0, "x", s1)
	a.SetStart(s0)
	a.SetFinal(s1)

	assert.Equal(t, 2, a.NumStates())
	assert.True(t, a.IsStart(s0))
	assert.True(t, a.IsFinal(s1))
	assert.Equal(t, []automaton.State{s1}, a.Targets(s0, "x"))
	assert.Equal(t, []automaton.Symbol{"x"}, a.Alphabet())
}

func TestAutomaton_IsDeterministic(t *testing.T) {
	a := automaton.New()
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.SetStart(s0)
	a.AddTransition(s0, "x", s1)
	assert.True(t, a.IsDeterministic())

	a.AddTransition(s0, "x", s2)
	assert.False(t, a.IsDeterministic(), "two targets for the same (state, symbol) pair")
}

func TestAutomaton_IsDeterministic_RejectsEpsilon(t *testing.T) {
	a := automaton.New()
	s0, s1 := a.AddState(), a.AddState()
	a.SetStart(s0)
	a.AddEpsilon(s0, s1)
	assert.False(t, a.IsDeterministic())
}

func TestAutomaton_IsDeterministic_RejectsMultipleStarts(t *testing.T) {
	a := automaton.New()
	s0, s1 := a.AddState(), a.AddState()
	a.SetStart(s0)
	a.SetStart(s1)
	assert.False(t, a.IsDeterministic())
}
