package bmatrix

import "errors"

// Sentinel errors for bmatrix package operations.
var (
	// ErrInvalidDimensions indicates a requested matrix shape is non-positive.
	ErrInvalidDimensions = errors.New("bmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row/col index is outside valid bounds.
	ErrOutOfRange = errors.New("bmatrix: index out of range")

	// ErrDimensionMismatch indicates two matrices have incompatible shapes
	// for the requested operation (OrInto, MatMul).
	ErrDimensionMismatch = errors.New("bmatrix: dimension mismatch")

	// ErrNonSquare indicates an operation that requires a square matrix
	// (TransitiveClosure) received a non-square one.
	ErrNonSquare = errors.New("bmatrix: matrix is not square")
)
