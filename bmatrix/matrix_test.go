package bmatrix_test

import (
	"testing"

	"github.com/katalvlaran/fpq/bmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := bmatrix.New(0, 3)
	assert.ErrorIs(t, err, bmatrix.ErrInvalidDimensions)

	_, err = bmatrix.New(3, -1)
	assert.ErrorIs(t, err, bmatrix.ErrInvalidDimensions)
}

func TestSetGet_OutOfRange(t *testing.T) {
	m, err := bmatrix.New(2, 2)
	require.NoError(t, err)

	_, err = m.Get(5, 0)
	assert.ErrorIs(t, err, bmatrix.ErrOutOfRange)

	err = m.Set(-1, 0, true)
	assert.ErrorIs(t, err, bmatrix.ErrOutOfRange)
}

func TestSetGet_NnzTracking(t *testing.T) {
	m, err := bmatrix.New(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Nnz())

	require.NoError(t, m.Set(0, 1, true))
	require.NoError(t, m.Set(1, 2, true))
	assert.Equal(t, 2, m.Nnz())

	v, err := m.Get(0, 1)
	require.NoError(t, err)
	assert.True(t, v)

	// Re-setting true is idempotent.
	require.NoError(t, m.Set(0, 1, true))
	assert.Equal(t, 2, m.Nnz())

	// Unsetting decrements.
	require.NoError(t, m.Set(0, 1, false))
	assert.Equal(t, 1, m.Nnz())
}

func TestEqual(t *testing.T) {
	a, _ := bmatrix.New(2, 2)
	b, _ := bmatrix.New(2, 2)
	assert.True(t, a.Equal(b))

	_ = a.Set(0, 0, true)
	assert.False(t, a.Equal(b))

	_ = b.Set(0, 0, true)
	assert.True(t, a.Equal(b))

	c, _ := bmatrix.New(3, 2)
	assert.False(t, a.Equal(c))
}

func TestClone_Independent(t *testing.T) {
	a, _ := bmatrix.New(2, 2)
	_ = a.Set(0, 0, true)
	b := a.Clone()
	_ = b.Set(1, 1, true)

	assert.Equal(t, 1, a.Nnz())
	assert.Equal(t, 2, b.Nnz())
}

func TestNonzero(t *testing.T) {
	m, _ := bmatrix.New(2, 3)
	_ = m.Set(0, 2, true)
	_ = m.Set(1, 0, true)

	got := m.Nonzero()
	assert.ElementsMatch(t, []bmatrix.Coord{{I: 0, J: 2}, {I: 1, J: 0}}, got)
}
