package rpq

import (
	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/bma"
	"github.com/katalvlaran/fpq/graphmodel"
	"github.com/katalvlaran/fpq/internal/flogging"
)

// Pair is a reachable (source, target) node pair.
type Pair struct {
	From, To int
}

// Run computes {(u, v) | there is a path u→v of at least one edge in g
// whose edge-word is in L(regexText)}. If startNodes/finalNodes are
// nil every graph node is eligible as a source/sink respectively. The
// empty path is never counted (the closure is reflexive-free), so an
// empty regex (the regex matching only ε) yields no pairs; an empty
// graph yields no pairs; labels in the regex absent from the graph
// never contribute transitions.
func Run(g *graphmodel.MultiDiGraph, regexText string, startNodes, finalNodes []int) ([]Pair, error) {
	r, err := automaton.ParseRegex(regexText)
	if err != nil {
		return nil, err
	}
	dfaR := automaton.Compile(r).Determinize().Minimize()

	bmaG, err := bma.FromGraph(g, startNodes, finalNodes)
	if err != nil {
		return nil, err
	}
	if bmaG.NumStates == 0 {
		return []Pair{}, nil
	}
	bmaR, err := bma.FromNFA(dfaR)
	if err != nil {
		return nil, err
	}

	flogging.Verbosef("rpq: graph has %d states, regex automaton has %d states", bmaG.NumStates, bmaR.NumStates)

	composite := bma.Intersect(bmaG, bmaR)
	rawPairs, err := composite.ReachablePairs(bmaR.NumStates)
	if err != nil {
		return nil, err
	}

	seen := make(map[Pair]struct{}, len(rawPairs))
	out := make([]Pair, 0, len(rawPairs))
	for _, p := range rawPairs {
		pair := Pair{From: p.I, To: p.J}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		out = append(out, pair)
	}
	flogging.Debugf("rpq: %d reachable pairs", len(out))

	return out, nil
}
