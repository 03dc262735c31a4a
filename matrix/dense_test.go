package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cppn/cppn/matrix"
)

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAt(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	require.NoError(t, m.Set(1, 2, 9.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.5, v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
