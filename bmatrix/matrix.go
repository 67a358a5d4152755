package bmatrix

import "fmt"

// Matrix is a dense-backed boolean matrix with incremental nnz tracking.
// rows, cols are fixed at construction; data is row-major (len == rows*cols).
type Matrix struct {
	rows, cols int
	data       []bool
	nnz        int
}

// matrixErrorf wraps an underlying error with method/position context,
// e.g. "bmatrix.Set(3,7): bmatrix: index out of range".
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("bmatrix.%s(%d,%d): %w", method, i, j, err)
}

// New creates a rows×cols Matrix with every entry false.
// Returns ErrInvalidDimensions if rows<=0 or cols<=0.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Nnz returns the number of true entries. Complexity: O(1).
func (m *Matrix) Nnz() int { return m.nnz }

// indexOf computes the flat offset for (i,j), bounds-checked.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return i*m.cols + j, nil
}

// Get returns the value at (i,j). Complexity: O(1).
func (m *Matrix) Get(i, j int) (bool, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		return false, matrixErrorf("Get", i, j, err)
	}

	return m.data[off], nil
}

// Set assigns v at (i,j), updating Nnz. Complexity: O(1).
func (m *Matrix) Set(i, j int, v bool) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf("Set", i, j, err)
	}
	switch {
	case v && !m.data[off]:
		m.nnz++
	case !v && m.data[off]:
		m.nnz--
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data, nnz: m.nnz}
}

// Equal reports whether m and other have the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for idx, v := range m.data {
		if v != other.data[idx] {
			return false
		}
	}

	return true
}

// Coord is a (row, col) position of a true entry, as returned by Nonzero.
type Coord struct {
	I, J int
}

// Nonzero returns every true entry's coordinates, in row-major order.
// Complexity: O(rows*cols).
func (m *Matrix) Nonzero() []Coord {
	out := make([]Coord, 0, m.nnz)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			if m.data[base+j] {
				out = append(out, Coord{I: i, J: j})
			}
		}
	}

	return out
}
