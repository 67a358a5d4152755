package bma

import (
	"fmt"

	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/graphmodel"
)

// FromNFA dense-indexes a's states (already dense integers) and sets
// M[sym][i,j] = true for each transition (i, sym, j); ε-transitions
// are not represented as a labeled matrix since CFPQ/RPQ reachability
// is computed over the labeled alphabet only. Start and final sets
// are copied from a.
func FromNFA(a *automaton.Automaton) (*BMA, error) {
	out := newEmpty(a.NumStates())
	for _, sym := range a.Alphabet() {
		m, err := out.matrixFor(sym)
		if err != nil {
			return nil, err
		}
		for i := 0; i < a.NumStates(); i++ {
			for _, j := range a.Targets(automaton.State(i), sym) {
				if err := m.Set(i, int(j), true); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, s := range a.StartStates() {
		out.Start[int(s)] = struct{}{}
	}
	for _, s := range a.FinalStates() {
		out.Final[int(s)] = struct{}{}
	}

	return out, nil
}

// FromGraph builds a BMA directly from g's edges, one matrix per
// label. If startNodes/finalNodes are nil, every node is both a start
// and a final state, the default when no filter node sets are
// supplied.
func FromGraph(g *graphmodel.MultiDiGraph, startNodes, finalNodes []int) (*BMA, error) {
	n := g.NumNodes()
	out := newEmpty(n)
	for _, e := range g.Edges() {
		m, err := out.matrixFor(automaton.Symbol(e.Label))
		if err != nil {
			return nil, err
		}
		if err := m.Set(e.From, e.To, true); err != nil {
			return nil, err
		}
	}

	if startNodes == nil {
		for i := 0; i < n; i++ {
			out.Start[i] = struct{}{}
		}
	} else {
		for _, s := range startNodes {
			if s < 0 || s >= n {
				return nil, fmt.Errorf("%w: start node %d out of range [0,%d)", ErrInvalidGraph, s, n)
			}
			out.Start[s] = struct{}{}
		}
	}
	if finalNodes == nil {
		for i := 0; i < n; i++ {
			out.Final[i] = struct{}{}
		}
	} else {
		for _, f := range finalNodes {
			if f < 0 || f >= n {
				return nil, fmt.Errorf("%w: final node %d out of range [0,%d)", ErrInvalidGraph, f, n)
			}
			out.Final[f] = struct{}{}
		}
	}

	return out, nil
}
