package bma

import "github.com/katalvlaran/fpq/bmatrix"

// Pair is a reachable (start, final) composite-state pair, or, when
// ReachablePairs is given a divisor to recover host indices, a
// (graph-node, graph-node) pair.
type Pair struct {
	I, J int
}

// TransitiveClosure returns the transitive closure of ∑_ℓ b.Matrices[ℓ]:
// sum over the label index first, then iterate A ← A ∨ (A·A) until
// nnz(A) stabilizes.
func (b *BMA) TransitiveClosure() (*bmatrix.Matrix, error) {
	if len(b.Matrices) == 0 {
		return bmatrix.New(b.NumStates, b.NumStates)
	}
	ms := make([]*bmatrix.Matrix, 0, len(b.Matrices))
	for _, m := range b.Matrices {
		ms = append(ms, m)
	}
	summed, err := bmatrix.Sum(ms...)
	if err != nil {
		return nil, err
	}

	return bmatrix.TransitiveClosure(summed)
}

// ReachablePairs computes b's transitive closure and collects every
// (i, j) with T[i,j] true, i a start state and j a final state. If
// divisor > 0, composite indices are mapped back to host graph node
// ids by integer division.
func (b *BMA) ReachablePairs(divisor int) ([]Pair, error) {
	closure, err := b.TransitiveClosure()
	if err != nil {
		return nil, err
	}

	var out []Pair
	for i := range b.Start {
		for j := range b.Final {
			ok, err := closure.Get(i, j)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if divisor > 0 {
				out = append(out, Pair{I: i / divisor, J: j / divisor})
			} else {
				out = append(out, Pair{I: i, J: j})
			}
		}
	}

	return out, nil
}
