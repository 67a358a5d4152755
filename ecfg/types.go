package ecfg

import (
	"sort"

	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/grammar"
)

// ExtendedProduction is head → body, where body is a regex over the
// grammar's variables and terminals.
type ExtendedProduction struct {
	Head Variable
	Body *automaton.Regex
}

// Variable aliases grammar.Variable: ECFG variables are the same
// namespace as the CFG they were derived from.
type Variable = grammar.Variable

// ECFG is an Extended CFG: exactly one production per variable.
type ECFG struct {
	Start       Variable
	Productions map[Variable]*automaton.Regex
}

// Variables returns ecfg's variable set, sorted.
func (e *ECFG) Variables() []Variable {
	out := make([]Variable, 0, len(e.Productions))
	for v := range e.Productions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Box is one named component of an RSM: variable A paired with the
// minimized DFA accepting the language denoted by A's regex body.
type Box struct {
	Variable Variable
	DFA      *automaton.Automaton
}

// Equal reports whether b and other name the same variable and accept
// the same language. Automata are never compared structurally, so this
// delegates to automaton.Equivalent.
func (b *Box) Equal(other *Box) bool {
	if b.Variable != other.Variable {
		return false
	}

	return automaton.Equivalent(b.DFA, other.DFA)
}

// RSM (Recursive State Machine) is a start variable plus one Box per
// grammar variable.
type RSM struct {
	Start Variable
	Boxes map[Variable]*Box
}

// Equal reports whether r and other have the same start variable and
// pairwise-equal boxes (same variable, language-equivalent DFA).
func (r *RSM) Equal(other *RSM) bool {
	if r.Start != other.Start {
		return false
	}
	if len(r.Boxes) != len(other.Boxes) {
		return false
	}
	for v, box := range r.Boxes {
		otherBox, ok := other.Boxes[v]
		if !ok || !box.Equal(otherBox) {
			return false
		}
	}

	return true
}
