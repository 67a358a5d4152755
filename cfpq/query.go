package cfpq

import (
	"github.com/katalvlaran/fpq/ecfg"
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
)

// Algorithm selects which CFPQ engine Query runs.
type Algorithm int

const (
	AlgorithmHellings Algorithm = iota
	AlgorithmMatrix
	AlgorithmTensor
)

// Pair is a reachable (source, target) node pair.
type Pair struct {
	From, To int
}

// Query is the thin algorithm-agnostic query surface: set cfg's start
// symbol to startVar, run the selected algorithm, keep only triples
// whose middle component is exactly startVar (strict equality, not
// equivalence-after-renaming), project to pairs, and filter by
// startNodes/finalNodes if supplied.
func Query(g *graphmodel.MultiDiGraph, cfg *grammar.CFG, startNodes, finalNodes []int, startVar grammar.Variable, algo Algorithm) ([]Pair, error) {
	scoped := cfg.WithStartSymbol(startVar)
	wcnf := scoped.ToWCNF()

	var triples []Triple
	switch algo {
	case AlgorithmHellings:
		triples = Hellings(g, wcnf)
	case AlgorithmMatrix:
		var err error
		triples, err = Matrix(g, wcnf)
		if err != nil {
			return nil, err
		}
	case AlgorithmTensor:
		e := ecfg.CFGToECFG(scoped)
		rsm := ecfg.ECFGToRSM(e)
		var err error
		triples, err = Tensor(g, rsm, wcnf)
		if err != nil {
			return nil, err
		}
	}

	var startSet, finalSet map[int]struct{}
	if startNodes != nil {
		startSet = toSet(startNodes)
	}
	if finalNodes != nil {
		finalSet = toSet(finalNodes)
	}

	seen := make(map[Pair]struct{})
	var out []Pair
	for _, t := range triples {
		if t.A != startVar {
			continue
		}
		if startSet != nil {
			if _, ok := startSet[t.U]; !ok {
				continue
			}
		}
		if finalSet != nil {
			if _, ok := finalSet[t.V]; !ok {
				continue
			}
		}
		p := Pair{From: t.U, To: t.V}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

func toSet(nodes []int) map[int]struct{} {
	set := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}

	return set
}
