package automaton

import (
	"fmt"
	"strings"
)

// Equivalent reports whether a and b accept the same language.
// Automata are never compared structurally, only by
// determinize-minimize-then-compare. Minimal DFAs are unique up to
// state renaming, so two automata are language-equivalent iff their
// minimized forms produce the same canonical signature once states are
// renumbered in BFS discovery order from the start state.
func Equivalent(a, b *Automaton) bool {
	return canonicalSignature(a.Determinize().Minimize()) == canonicalSignature(b.Determinize().Minimize())
}

// canonicalSignature renumbers a deterministic, minimal automaton's
// states by BFS discovery order (so isomorphic automata always produce
// identical ids) and renders a signature string over that renumbering.
func canonicalSignature(a *Automaton) string {
	starts := a.StartStates()
	if len(starts) == 0 {
		return "empty"
	}
	alphabet := a.Alphabet()

	renumber := map[State]int{starts[0]: 0}
	order := []State{starts[0]}
	queue := []State{starts[0]}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, sym := range alphabet {
			for _, t := range a.Targets(s, sym) {
				if _, ok := renumber[t]; !ok {
					renumber[t] = len(order)
					order = append(order, t)
					queue = append(queue, t)
				}
			}
		}
	}

	var sb strings.Builder
	for _, s := range order {
		fmt.Fprintf(&sb, "[%d:%v:", renumber[s], a.IsFinal(s))
		for _, sym := range alphabet {
			targets := a.Targets(s, sym)
			if len(targets) == 0 {
				fmt.Fprintf(&sb, "%s->_,", sym)
				continue
			}
			fmt.Fprintf(&sb, "%s->%d,", sym, renumber[targets[0]])
		}
		sb.WriteString("]")
	}

	return sb.String()
}
