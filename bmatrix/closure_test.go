package bmatrix_test

import (
	"testing"

	"github.com/katalvlaran/fpq/bmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitiveClosure_NonSquare(t *testing.T) {
	m, _ := bmatrix.New(2, 3)
	_, err := bmatrix.TransitiveClosure(m)
	assert.ErrorIs(t, err, bmatrix.ErrNonSquare)
}

func TestTransitiveClosure_Chain(t *testing.T) {
	// 0 -> 1 -> 2 -> 3 chain; closure should have every (i,j) with i<j.
	m, _ := bmatrix.New(4, 4)
	_ = m.Set(0, 1, true)
	_ = m.Set(1, 2, true)
	_ = m.Set(2, 3, true)

	tc, err := bmatrix.TransitiveClosure(m)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := tc.Get(i, j)
			assert.Equal(t, i < j, v, "tc[%d,%d]", i, j)
		}
	}
}

func TestTransitiveClosure_Idempotent(t *testing.T) {
	m, _ := bmatrix.New(3, 3)
	_ = m.Set(0, 1, true)
	_ = m.Set(1, 2, true)
	_ = m.Set(2, 0, true)

	tc, err := bmatrix.TransitiveClosure(m)
	require.NoError(t, err)

	// T ∨ T·T == T (idempotence of closure).
	squared, err := bmatrix.MatMul(tc, tc)
	require.NoError(t, err)
	again := tc.Clone()
	require.NoError(t, again.OrInto(squared))
	assert.True(t, tc.Equal(again))
}

func TestSum(t *testing.T) {
	a, _ := bmatrix.New(2, 2)
	_ = a.Set(0, 0, true)
	b, _ := bmatrix.New(2, 2)
	_ = b.Set(1, 1, true)

	s, err := bmatrix.Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Nnz())
}

func TestSum_Empty(t *testing.T) {
	_, err := bmatrix.Sum()
	assert.ErrorIs(t, err, bmatrix.ErrInvalidDimensions)
}
