// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fcm/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.RowView(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRejectsNaNInf checks the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.Inf(1)), matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers the copy constructor and its guards.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	src[0][0] = 100 // the matrix owns its copy
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())
}

// TestRowViewSharesStorage verifies that RowView aliases and Row copies.
func TestRowViewSharesStorage(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	view, err := m.RowView(1)
	require.NoError(t, err)
	view[0] = 30 // writes through

	cp, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 4}, cp)

	cp[1] = 40 // does not write through
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestCloneIsIndependent ensures Clone and CloneDense return deep copies.
func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.CloneDense()
	require.NoError(t, m.Set(0, 0, 9))
	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	var generic matrix.Matrix = m.Clone()
	require.Equal(t, 1, generic.Rows())

	require.NoError(t, c.CopyFrom(m))
	v, err = c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	other, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, c.CopyFrom(other), matrix.ErrDimensionMismatch)
}

// TestApplyAndDo exercises the row-major visitors.
func TestApplyAndDo(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{2, 4, 6}, seen)

	err = m.Apply(func(_, _ int, v float64) float64 { return v * math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
