package automaton

import (
	"fmt"
	"strings"
)

// EpsilonClosure returns the ε-closure of the given set of states: every
// state reachable from it using zero or more ε-transitions, including the
// states themselves.
func (a *Automaton) EpsilonClosure(states []State) []State {
	seen := make(map[State]struct{}, len(states))
	stack := make([]State, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.EpsilonTargets(s) {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				stack = append(stack, t)
			}
		}
	}

	return sortedStates(seen)
}

// subsetKey produces a canonical, comparable key for a sorted state set,
// used to dedupe subsets during determinization.
func subsetKey(states []State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%d", s)
	}

	return strings.Join(parts, ",")
}
