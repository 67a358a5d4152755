package automaton

// totalize completes a deterministic automaton's transition function over
// alphabet by adding a single trap state with self-loops on every symbol,
// so every (state, symbol) pair has exactly one target. Used internally
// by Minimize and Complement, which both require a total function.
func (a *Automaton) totalize(alphabet []Symbol) *Automaton {
	out := New()
	for i := 0; i < a.numStates; i++ {
		out.AddState()
	}
	trap := out.AddState() // never final

	for i := 0; i < a.numStates; i++ {
		s := State(i)
		for _, sym := range alphabet {
			targets := a.Targets(s, sym)
			if len(targets) == 0 {
				out.AddTransition(s, sym, trap)
			} else {
				out.AddTransition(s, sym, targets[0])
			}
		}
	}
	for _, sym := range alphabet {
		out.AddTransition(trap, sym, trap)
	}
	for _, s := range a.StartStates() {
		out.SetStart(s)
	}
	for _, s := range a.FinalStates() {
		out.SetFinal(s)
	}

	return out
}

// Minimize reduces a (assumed deterministic, via Determinize) automaton
// to its minimal equivalent via partition refinement: states start
// partitioned into {final} and {non-final}, then repeatedly split by
// transition signature until stable.
func (a *Automaton) Minimize() *Automaton {
	alphabet := a.Alphabet()
	total := a.totalize(alphabet)

	// groupOf[state] = current partition index.
	groupOf := make([]int, total.numStates)
	for i := 0; i < total.numStates; i++ {
		if total.IsFinal(State(i)) {
			groupOf[i] = 1
		} else {
			groupOf[i] = 0
		}
	}

	for {
		signature := make(map[string]int)
		newGroupOf := make([]int, total.numStates)
		changed := false

		for i := 0; i < total.numStates; i++ {
			sig := signatureOf(total, alphabet, groupOf, State(i))
			id, ok := signature[sig]
			if !ok {
				id = len(signature)
				signature[sig] = id
			}
			newGroupOf[i] = id
			if id != groupOf[i] {
				changed = true
			}
		}
		groupOf = newGroupOf
		if !changed {
			break
		}
	}

	numGroups := 0
	for _, g := range groupOf {
		if g+1 > numGroups {
			numGroups = g + 1
		}
	}

	out := New()
	for i := 0; i < numGroups; i++ {
		out.AddState()
	}
	seenGroupTrans := make(map[int]bool)
	for i := 0; i < total.numStates; i++ {
		g := groupOf[i]
		if !seenGroupTrans[g] {
			for _, sym := range alphabet {
				targets := total.Targets(State(i), sym)
				if len(targets) > 0 {
					out.AddTransition(State(g), sym, State(groupOf[int(targets[0])]))
				}
			}
			seenGroupTrans[g] = true
		}
		if total.IsFinal(State(i)) {
			out.SetFinal(State(g))
		}
	}
	startGroup := -1
	for _, s := range total.StartStates() {
		startGroup = groupOf[int(s)]
		break
	}
	if startGroup >= 0 {
		out.SetStart(State(startGroup))
	}

	return out
}

// signatureOf builds a comparable transition signature for state s in the
// current partition: for every symbol, which group its (unique, since
// total is deterministic) target currently belongs to, plus its own
// current group (so finality is respected).
func signatureOf(total *Automaton, alphabet []Symbol, groupOf []int, s State) string {
	sig := make([]byte, 0, 4*len(alphabet)+4)
	sig = appendInt(sig, groupOf[s])
	for _, sym := range alphabet {
		targets := total.Targets(s, sym)
		g := -1
		if len(targets) > 0 {
			g = groupOf[int(targets[0])]
		}
		sig = append(sig, '|')
		sig = appendInt(sig, g)
	}

	return string(sig)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}
