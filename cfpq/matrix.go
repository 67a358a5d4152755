package cfpq

import (
	"github.com/katalvlaran/fpq/bmatrix"
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
	"github.com/katalvlaran/fpq/internal/flogging"
)

// Matrix runs the per-nonterminal boolean-matrix fixed point CFPQ
// algorithm over g and wcnf (already normalized via CFG.ToWCNF): one
// n×n matrix per variable, round-robin swept over
// binary productions until no matrix's nnz changes in a full sweep.
func Matrix(g *graphmodel.MultiDiGraph, wcnf *grammar.CFG) ([]Triple, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, nil
	}
	epsilonHeads, byTerminal, byBinaryBody := indexProductions(wcnf)

	matrices := make(map[grammar.Variable]*bmatrix.Matrix)
	matrixFor := func(v grammar.Variable) (*bmatrix.Matrix, error) {
		if m, ok := matrices[v]; ok {
			return m, nil
		}
		m, err := bmatrix.New(n, n)
		if err != nil {
			return nil, err
		}
		matrices[v] = m

		return m, nil
	}

	for _, a := range epsilonHeads {
		m, err := matrixFor(a)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if err := m.Set(i, i, true); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range g.Edges() {
		for _, a := range byTerminal[grammar.Terminal(e.Label)] {
			m, err := matrixFor(a)
			if err != nil {
				return nil, err
			}
			if err := m.Set(e.From, e.To, true); err != nil {
				return nil, err
			}
		}
	}

	type rule struct {
		head grammar.Variable
		b, c grammar.Variable
	}
	var rules []rule
	for key, heads := range byBinaryBody {
		for _, h := range heads {
			rules = append(rules, rule{head: h, b: key[0], c: key[1]})
		}
	}

	rounds := 0
	for {
		changed := false
		rounds++
		for _, ru := range rules {
			mb, err := matrixFor(ru.b)
			if err != nil {
				return nil, err
			}
			mc, err := matrixFor(ru.c)
			if err != nil {
				return nil, err
			}
			ma, err := matrixFor(ru.head)
			if err != nil {
				return nil, err
			}
			before := ma.Nnz()
			product, err := bmatrix.MatMul(mb, mc)
			if err != nil {
				return nil, err
			}
			if err := ma.OrInto(product); err != nil {
				return nil, err
			}
			if ma.Nnz() != before {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	flogging.Debugf("cfpq/matrix: converged after %d rounds", rounds)

	var out []Triple
	for v, m := range matrices {
		for _, c := range m.Nonzero() {
			out = append(out, Triple{U: c.I, A: v, V: c.J})
		}
	}

	return out, nil
}
