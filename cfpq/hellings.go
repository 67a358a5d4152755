package cfpq

import (
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
	"github.com/katalvlaran/fpq/internal/flogging"
)

// Hellings runs the worklist-closure CFPQ algorithm over g and wcnf
// (a grammar already normalized via CFG.ToWCNF).
func Hellings(g *graphmodel.MultiDiGraph, wcnf *grammar.CFG) []Triple {
	epsilonHeads, byTerminal, byBinaryBody := indexProductions(wcnf)
	n := g.NumNodes()

	type key struct {
		u int
		a grammar.Variable
		v int
	}
	r := make(map[key]struct{})
	byRight := make(map[int][]key)
	byLeft := make(map[int][]key)
	var worklist []key

	add := func(u int, a grammar.Variable, v int) {
		k := key{u, a, v}
		if _, ok := r[k]; ok {
			return
		}
		r[k] = struct{}{}
		byRight[v] = append(byRight[v], k)
		byLeft[u] = append(byLeft[u], k)
		worklist = append(worklist, k)
	}

	for _, a := range epsilonHeads {
		for v := 0; v < n; v++ {
			add(v, a, v)
		}
	}
	for _, e := range g.Edges() {
		for _, a := range byTerminal[grammar.Terminal(e.Label)] {
			add(e.From, a, e.To)
		}
	}
	flogging.Verbosef("cfpq/hellings: seeded %d triples", len(worklist))

	rounds := 0
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		n2, nVar, m := cur.u, cur.a, cur.v
		rounds++

		for _, left := range byRight[n2] {
			for _, a := range byBinaryBody[[2]grammar.Variable{left.a, nVar}] {
				add(left.u, a, m)
			}
		}
		for _, right := range byLeft[m] {
			for _, a := range byBinaryBody[[2]grammar.Variable{nVar, right.a}] {
				add(n2, a, right.v)
			}
		}
	}
	flogging.Debugf("cfpq/hellings: %d propagation rounds, %d triples", rounds, len(r))

	out := make([]Triple, 0, len(r))
	for k := range r {
		out = append(out, Triple{U: k.u, A: k.a, V: k.v})
	}

	return out
}
