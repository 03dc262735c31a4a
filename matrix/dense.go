// Package matrix provides a minimal row-major dense matrix, trimmed from a
// much larger linear-algebra package down to just what a substrate's
// induced dense weight matrix needs: shape, Set, At (spec.md §4.3's
// "DenseWeights" output).
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by NewDense for non-positive rows/cols.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrOutOfRange is returned by At/Set for an out-of-bounds (row, col).
var ErrOutOfRange = errors.New("matrix: index out of range")

// Dense is a row-major matrix backed by a single flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c Dense initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}
