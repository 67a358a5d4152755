package bmatrix

// TransitiveClosure computes the reflexive-free closure of a square
// boolean matrix by iterated squaring: A ← A ∨ (A·A) until Nnz(A) is
// stable. The input is never mutated; a fresh Matrix is returned.
// Returns ErrNonSquare if m is not square.
// Complexity: O(log n) squarings of an n×n matrix.
func TransitiveClosure(m *Matrix) (*Matrix, error) {
	if m.rows != m.cols {
		return nil, ErrNonSquare
	}

	closed := m.Clone()
	for {
		squared, err := MatMul(closed, closed)
		if err != nil {
			return nil, err
		}
		prevNnz := closed.Nnz()
		if err := closed.OrInto(squared); err != nil {
			return nil, err
		}
		if closed.Nnz() == prevNnz {
			return closed, nil
		}
	}
}

// Sum ORs every matrix in ms into a fresh matrix of the same shape.
// Used by BMA to collapse per-label matrices into one adjacency matrix
// before taking a transitive closure. Returns ErrDimensionMismatch if
// shapes differ, and ErrInvalidDimensions if ms is empty.
func Sum(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, ErrInvalidDimensions
	}
	out, err := New(ms[0].rows, ms[0].cols)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		if err := out.OrInto(m); err != nil {
			return nil, err
		}
	}

	return out, nil
}
