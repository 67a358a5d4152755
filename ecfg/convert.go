package ecfg

import (
	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/grammar"
)

// CFGToECFG groups cfg's productions by head and unions the
// Regex-rendering of each body into a single production per variable.
// A variable with no productions of its own (possible after
// normalization drops it, or if it was never given a body) gets no
// entry; callers querying such a variable should treat it as
// generating nothing.
func CFGToECFG(cfg *grammar.CFG) *ECFG {
	byHead := make(map[grammar.Variable][]grammar.Production)
	for _, p := range cfg.Productions() {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	out := &ECFG{Start: cfg.Start(), Productions: make(map[Variable]*automaton.Regex, len(byHead))}
	for head, prods := range byHead {
		var bodyRegex *automaton.Regex
		for _, p := range prods {
			r := bodyToRegex(p.Body)
			if bodyRegex == nil {
				bodyRegex = r
			} else {
				bodyRegex = automaton.Alt(bodyRegex, r)
			}
		}
		out.Productions[head] = bodyRegex
	}

	return out
}

func bodyToRegex(body []grammar.Symbol) *automaton.Regex {
	if len(body) == 0 {
		return automaton.Eps()
	}
	r := automaton.Lit(automaton.Symbol(body[0].String()))
	for _, s := range body[1:] {
		r = automaton.Seq(r, automaton.Lit(automaton.Symbol(s.String())))
	}

	return r
}

// ECFGToRSM compiles each ECFG production's regex body into a
// minimized DFA box.
func ECFGToRSM(e *ECFG) *RSM {
	boxes := make(map[Variable]*Box, len(e.Productions))
	for v, r := range e.Productions {
		dfa := automaton.Compile(r).Determinize().Minimize()
		boxes[v] = &Box{Variable: v, DFA: dfa}
	}

	return &RSM{Start: e.Start, Boxes: boxes}
}

// MinimizeRSM re-minimizes every box's DFA. Minimize is already
// idempotent and language-preserving, so this is safe to call on an
// already-minimized RSM.
func MinimizeRSM(r *RSM) *RSM {
	boxes := make(map[Variable]*Box, len(r.Boxes))
	for v, b := range r.Boxes {
		boxes[v] = &Box{Variable: v, DFA: b.DFA.Minimize()}
	}

	return &RSM{Start: r.Start, Boxes: boxes}
}
