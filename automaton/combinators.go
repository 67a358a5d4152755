package automaton

// mergeInto copies every state/transition of src into dst, offsetting
// every state id by offset. Start and final marks are not copied.
func mergeInto(dst, src *Automaton, offset State) {
	for i := 0; i < src.numStates; i++ {
		dst.AddState()
	}
	for from, byTo := range src.trans {
		for sym, targets := range byTo {
			for to := range targets {
				dst.AddTransition(from+offset, sym, to+offset)
			}
		}
	}
	for from, targets := range src.eps {
		for to := range targets {
			dst.AddEpsilon(from+offset, to+offset)
		}
	}
}

// Union builds an automaton accepting L(a) ∪ L(b) via a fresh start state
// with ε-edges to both operands' starts, and a fresh final state reached
// by ε-edges from both operands' finals.
func Union(a, b *Automaton) *Automaton {
	out := New()
	newStart := out.AddState()
	mergeInto(out, a, 1)
	bOffset := State(1 + a.numStates)
	mergeInto(out, b, bOffset)
	newFinal := out.AddState()

	for _, s := range a.StartStates() {
		out.AddEpsilon(newStart, s+1)
	}
	for _, s := range b.StartStates() {
		out.AddEpsilon(newStart, s+bOffset)
	}
	for _, s := range a.FinalStates() {
		out.AddEpsilon(s+1, newFinal)
	}
	for _, s := range b.FinalStates() {
		out.AddEpsilon(s+bOffset, newFinal)
	}
	out.SetStart(newStart)
	out.SetFinal(newFinal)

	return out
}

// Concat builds an automaton accepting L(a)·L(b): a's finals gain an
// ε-edge to each of b's starts; the result starts where a starts and
// accepts where b accepts.
func Concat(a, b *Automaton) *Automaton {
	out := New()
	mergeInto(out, a, 0)
	bOffset := State(a.numStates)
	mergeInto(out, b, bOffset)

	for _, fa := range a.FinalStates() {
		for _, sb := range b.StartStates() {
			out.AddEpsilon(fa, sb+bOffset)
		}
	}
	for _, s := range a.StartStates() {
		out.SetStart(s)
	}
	for _, s := range b.FinalStates() {
		out.SetFinal(s + bOffset)
	}

	return out
}

// Star builds an automaton accepting L(a)*: a fresh start/final pair
// ε-connected directly (to accept ε), with ε-edges into a's start and
// back from a's finals, allowing zero or more repetitions.
func Star(a *Automaton) *Automaton {
	out := New()
	newStart := out.AddState()
	mergeInto(out, a, 1)
	newFinal := out.AddState()

	out.AddEpsilon(newStart, newFinal)
	for _, s := range a.StartStates() {
		out.AddEpsilon(newStart, s+1)
	}
	for _, s := range a.FinalStates() {
		out.AddEpsilon(s+1, newFinal)
		out.AddEpsilon(s+1, newStart)
	}
	out.SetStart(newStart)
	out.SetFinal(newFinal)

	return out
}

// Complement builds an automaton accepting Σ*∖L(a): a is determinized,
// totalized over its own alphabet, then the final-state set is flipped.
func Complement(a *Automaton) *Automaton {
	det := a.Determinize()
	alphabet := det.Alphabet()
	total := det.totalize(alphabet)

	out := New()
	for i := 0; i < total.numStates; i++ {
		out.AddState()
	}
	for from, byTo := range total.trans {
		for sym, targets := range byTo {
			for to := range targets {
				out.AddTransition(from, sym, to)
			}
		}
	}
	for _, s := range total.StartStates() {
		out.SetStart(s)
	}
	for i := 0; i < total.numStates; i++ {
		if !total.IsFinal(State(i)) {
			out.SetFinal(State(i))
		}
	}

	return out
}
