package cfpq

import (
	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/bma"
	"github.com/katalvlaran/fpq/bmatrix"
	"github.com/katalvlaran/fpq/ecfg"
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
	"github.com/katalvlaran/fpq/internal/flogging"
)

// Tensor runs the RSM×graph Kronecker fixed point CFPQ algorithm
// over g and rsm, seeding the reflexive relation for every variable
// wcnf gives an ε-production (necessary even when decomposition left
// no other trace of that production).
func Tensor(g *graphmodel.MultiDiGraph, rsm *ecfg.RSM, wcnf *grammar.CFG) ([]Triple, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, nil
	}

	rsmBMA, pairToVar, err := buildRSMBMA(rsm)
	if err != nil {
		return nil, err
	}
	graphBMA, err := bma.FromGraph(g, nil, nil)
	if err != nil {
		return nil, err
	}

	epsilonHeads, _, _ := indexProductions(wcnf)
	for _, a := range epsilonHeads {
		if err := seedIdentity(graphBMA, automaton.Symbol(a), n); err != nil {
			return nil, err
		}
	}

	rounds := 0
	for {
		rounds++
		changed := false

		composite := bma.Intersect(rsmBMA, graphBMA)
		closure, err := composite.TransitiveClosure()
		if err != nil {
			return nil, err
		}
		for _, coord := range closure.Nonzero() {
			rsmI, gI := coord.I/n, coord.I%n
			rsmJ, gJ := coord.J/n, coord.J%n
			v, ok := pairToVar[[2]int{rsmI, rsmJ}]
			if !ok {
				continue
			}
			sym := automaton.Symbol(v)
			m, ok := graphBMA.Matrices[sym]
			if !ok {
				m, err = bmatrix.New(n, n)
				if err != nil {
					return nil, err
				}
				graphBMA.Matrices[sym] = m
			}
			cur, err := m.Get(gI, gJ)
			if err != nil {
				return nil, err
			}
			if cur {
				continue
			}
			if err := m.Set(gI, gJ, true); err != nil {
				return nil, err
			}
			changed = true
		}
		if !changed {
			break
		}
	}
	flogging.Debugf("cfpq/tensor: converged after %d rounds", rounds)

	var out []Triple
	for v := range rsm.Boxes {
		sym := automaton.Symbol(v)
		m, ok := graphBMA.Matrices[sym]
		if !ok {
			continue
		}
		for _, c := range m.Nonzero() {
			out = append(out, Triple{U: c.I, A: v, V: c.J})
		}
	}

	return out, nil
}

// buildRSMBMA merges every box's DFA into one disjoint-union
// automaton (states offset per box) and returns both its BMA
// rendering and the map from (box-start, box-final) composite state
// pairs to the owning Variable.
func buildRSMBMA(rsm *ecfg.RSM) (*bma.BMA, map[[2]int]grammar.Variable, error) {
	total := 0
	offsets := make(map[grammar.Variable]int, len(rsm.Boxes))
	for v, box := range rsm.Boxes {
		offsets[v] = total
		total += box.DFA.NumStates()
	}

	merged := automaton.New()
	for i := 0; i < total; i++ {
		merged.AddState()
	}
	pairToVar := make(map[[2]int]grammar.Variable)
	for v, box := range rsm.Boxes {
		off := offsets[v]
		d := box.DFA
		for i := 0; i < d.NumStates(); i++ {
			for _, sym := range d.Alphabet() {
				for _, t := range d.Targets(automaton.State(i), sym) {
					merged.AddTransition(automaton.State(i+off), sym, automaton.State(int(t)+off))
				}
			}
		}
		for _, s := range d.StartStates() {
			for _, f := range d.FinalStates() {
				pairToVar[[2]int{int(s) + off, int(f) + off}] = v
			}
		}
	}

	out, err := bma.FromNFA(merged)

	return out, pairToVar, err
}

func seedIdentity(b *bma.BMA, sym automaton.Symbol, n int) error {
	m, ok := b.Matrices[sym]
	if !ok {
		nm, err := bmatrix.New(n, n)
		if err != nil {
			return err
		}
		b.Matrices[sym] = nm
		m = nm
	}
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, true); err != nil {
			return err
		}
	}

	return nil
}
