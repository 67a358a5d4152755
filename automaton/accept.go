package automaton

// Accepts reports whether word is in L(a), by simulating a as an NFA:
// tracking the ε-closed set of live states and moving it forward one
// symbol at a time. Works for both deterministic and non-deterministic
// automata, so callers never need to Determinize first just to test
// membership.
func (a *Automaton) Accepts(word []Symbol) bool {
	live := a.EpsilonClosure(a.StartStates())
	for _, sym := range word {
		moveSet := make(map[State]struct{})
		for _, s := range live {
			for _, t := range a.Targets(s, sym) {
				moveSet[t] = struct{}{}
			}
		}
		if len(moveSet) == 0 {
			return false
		}
		live = a.EpsilonClosure(sortedStates(moveSet))
	}
	for _, s := range live {
		if a.IsFinal(s) {
			return true
		}
	}

	return false
}
