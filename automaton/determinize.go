package automaton

// Determinize converts a (possibly non-deterministic, possibly
// ε-transition-bearing) Automaton into an equivalent one satisfying
// IsDeterministic, via the standard subset construction: each DFA state
// is the ε-closure of a set of NFA states.
func (a *Automaton) Determinize() *Automaton {
	out := New()
	alphabet := a.Alphabet()

	startSubset := a.EpsilonClosure(a.StartStates())
	key := subsetKey(startSubset)
	subsetToState := map[string]State{key: out.AddState()}
	queue := [][]State{startSubset}
	queueKeys := []string{key}

	out.SetStart(subsetToState[key])
	markFinal := func(subset []State, s State) {
		for _, st := range subset {
			if a.IsFinal(st) {
				out.SetFinal(s)
				return
			}
		}
	}
	markFinal(startSubset, subsetToState[key])

	for len(queue) > 0 {
		subset := queue[0]
		subsetKeyStr := queueKeys[0]
		queue = queue[1:]
		queueKeys = queueKeys[1:]
		fromState := subsetToState[subsetKeyStr]

		for _, sym := range alphabet {
			moveSet := make(map[State]struct{})
			for _, s := range subset {
				for _, t := range a.Targets(s, sym) {
					moveSet[t] = struct{}{}
				}
			}
			if len(moveSet) == 0 {
				continue
			}
			moveSlice := sortedStates(moveSet)
			closure := a.EpsilonClosure(moveSlice)
			closureKey := subsetKey(closure)
			toState, ok := subsetToState[closureKey]
			if !ok {
				toState = out.AddState()
				subsetToState[closureKey] = toState
				markFinal(closure, toState)
				queue = append(queue, closure)
				queueKeys = append(queueKeys, closureKey)
			}
			out.AddTransition(fromState, sym, toState)
		}
	}

	return out
}
