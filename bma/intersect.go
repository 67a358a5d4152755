package bma

import "github.com/katalvlaran/fpq/bmatrix"

// Intersect computes the Kronecker-product automaton of a and b: for
// every label present in both, M_AB[ℓ] = M_A[ℓ] ⊗ M_B[ℓ]. The
// composite state space is indexed i·|b|+j; start/final sets are the
// Cartesian products of a's and b's. Labels present in only one
// operand are dropped, since their Kronecker product against an
// implicit all-false matrix on the other side is itself all-false.
func Intersect(a, b *BMA) *BMA {
	out := newEmpty(a.NumStates * b.NumStates)

	for sym, ma := range a.Matrices {
		mb, ok := b.Matrices[sym]
		if !ok {
			continue
		}
		out.Matrices[sym] = bmatrix.Kron(ma, mb)
	}

	for i := range a.Start {
		for j := range b.Start {
			out.Start[i*b.NumStates+j] = struct{}{}
		}
	}
	for i := range a.Final {
		for j := range b.Final {
			out.Final[i*b.NumStates+j] = struct{}{}
		}
	}

	return out
}
