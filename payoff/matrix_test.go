package payoff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zerosum/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsBadShapes verifies that empty and ragged tables fail with
// ErrBadShape before any entry is inspected.
func TestNew_RejectsBadShapes(t *testing.T) {
	cases := map[string][][]float64{
		"no rows":    {},
		"empty row":  {{}},
		"ragged":     {{1, 2}, {3}},
		"ragged mid": {{1}, {2, 3}, {4}},
	}
	for name, rows := range cases {
		_, err := payoff.New(rows)
		assert.ErrorIs(t, err, payoff.ErrBadShape, name)
	}
}

// TestNew_RejectsNonFinite verifies the finite-entries policy.
func TestNew_RejectsNonFinite(t *testing.T) {
	cases := map[string]float64{
		"NaN":  math.NaN(),
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	}
	for name, bad := range cases {
		_, err := payoff.New([][]float64{{1, 2}, {bad, 4}})
		assert.ErrorIs(t, err, payoff.ErrNaNInf, name)
	}
}

// TestNew_CopiesInput ensures the Matrix is independent of the caller's slices.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := payoff.New(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0), "construction must deep-copy the input")
}

// TestAccessors exercises Rows/Cols/At/Row/Clone.
func TestAccessors(t *testing.T) {
	m, err := payoff.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))

	row := m.Row(1)
	assert.Equal(t, []float64{4, 5, 6}, row)
	row[0] = -1
	assert.Equal(t, 4.0, m.At(1, 0), "Row must return a copy")

	c := m.Clone()
	assert.Equal(t, 5.0, c.At(1, 1))
	assert.Panics(t, func() { m.At(2, 0) }, "out-of-range access is a programmer error")
}

// TestDerivedConstructors covers Transpose, Scale, Shift, Neg.
func TestDerivedConstructors(t *testing.T) {
	m, err := payoff.New([][]float64{{1, -2}, {3, 4}})
	require.NoError(t, err)

	tr := m.Transpose()
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, 3.0, tr.At(0, 1))
	assert.Equal(t, -2.0, tr.At(1, 0))

	assert.Equal(t, -4.0, m.Scale(2).At(0, 1))
	assert.Equal(t, 14.0, m.Shift(10).At(1, 1))
	assert.Equal(t, 2.0, m.Neg().At(0, 1))
	assert.Equal(t, 1.0, m.At(0, 0), "derived constructors must not mutate the source")
}

// TestSubmatrix keeps the selected rows/columns in the given order.
func TestSubmatrix(t *testing.T) {
	m, err := payoff.New([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	s := m.Submatrix([]int{0, 2}, []int{1})
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 1, s.Cols())
	assert.Equal(t, 2.0, s.At(0, 0))
	assert.Equal(t, 8.0, s.At(1, 0))

	assert.Panics(t, func() { m.Submatrix(nil, []int{0}) })
}

// TestExtrema covers Min and MaxAbs.
func TestExtrema(t *testing.T) {
	m, err := payoff.New([][]float64{{3, -7}, {5, 2}})
	require.NoError(t, err)

	assert.Equal(t, -7.0, m.Min())
	assert.Equal(t, 7.0, m.MaxAbs())
}
