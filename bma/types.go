package bma

import (
	"github.com/katalvlaran/fpq/automaton"
	"github.com/katalvlaran/fpq/bmatrix"
)

// BMA is a bundle (n_states, per-label matrices, start set, final
// set): the boolean-matrix rendering of an automaton or a graph.
// Every M[label] is n×n; M[label][i,j] is true iff there is a
// transition (state i, label, state j).
type BMA struct {
	NumStates int
	Matrices  map[automaton.Symbol]*bmatrix.Matrix
	Start     map[int]struct{}
	Final     map[int]struct{}
}

func newEmpty(n int) *BMA {
	return &BMA{
		NumStates: n,
		Matrices:  make(map[automaton.Symbol]*bmatrix.Matrix),
		Start:     make(map[int]struct{}),
		Final:     make(map[int]struct{}),
	}
}

func (b *BMA) matrixFor(sym automaton.Symbol) (*bmatrix.Matrix, error) {
	m, ok := b.Matrices[sym]
	if ok {
		return m, nil
	}
	nm, err := bmatrix.New(b.NumStates, b.NumStates)
	if err != nil {
		return nil, err
	}
	b.Matrices[sym] = nm

	return nm, nil
}

// StartSlice returns b.Start as a sorted slice.
func (b *BMA) StartSlice() []int { return sortedInts(b.Start) }

// FinalSlice returns b.Final as a sorted slice.
func (b *BMA) FinalSlice() []int { return sortedInts(b.Final) }

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	// insertion sort is fine: these sets are state/node counts, not hot.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
