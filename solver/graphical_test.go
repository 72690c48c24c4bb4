package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphTol = 1e-9

// TestSolveTwoRows_InteriorKink: the classic 2×3 game where the middle
// column's level line also passes through the optimum but carries no mass —
// only the two extreme columns support the kink.
func TestSolveTwoRows_InteriorKink(t *testing.T) {
	m := mustMatrix(t, [][]float64{{2, 1, 0}, {0, 1, 2}})

	rs, err := solveTwoRows(m, graphTol)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rs.value, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rs.row, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, rs.col, graphTol)
}

// TestSolveTwoRows_Diagonal: [[4,0],[0,4]] has no saddle and solves to an
// even split worth 2.
func TestSolveTwoRows_Diagonal(t *testing.T) {
	m := mustMatrix(t, [][]float64{{4, 0}, {0, 4}})

	rs, err := solveTwoRows(m, graphTol)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, rs.value, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rs.row, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rs.col, graphTol)
}

// TestSolveTwoRows_FlatLine: a level line caps the envelope, so the column
// player plays it pure while the row player sits anywhere on the flat
// segment (the solver picks the leftmost optimum candidate).
func TestSolveTwoRows_FlatLine(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {1, 0}})

	rs, err := solveTwoRows(m, graphTol)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rs.value, graphTol)
	assert.InDeltaSlice(t, []float64{1, 0}, rs.col, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rs.row, graphTol)
}

// TestSolveTwoRows_BoundaryOptimum: every line rises toward p=1, so the row
// player goes pure on row 0 and the column player answers with the tight
// column.
func TestSolveTwoRows_BoundaryOptimum(t *testing.T) {
	m := mustMatrix(t, [][]float64{{5, 4}, {1, 2}})

	rs, err := solveTwoRows(m, graphTol)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, rs.value, graphTol)
	assert.InDeltaSlice(t, []float64{1, 0}, rs.row, graphTol)
	assert.InDeltaSlice(t, []float64{0, 1}, rs.col, graphTol)
}

// TestSolveTwoCols_Reflection: the n×2 case is the 2×n case with the players
// exchanged; strategies come back swapped and the value negated twice.
func TestSolveTwoCols_Reflection(t *testing.T) {
	m := mustMatrix(t, [][]float64{{2, 0}, {1, 1}, {0, 2}})

	rs, err := solveTwoCols(m, graphTol)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rs.value, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, rs.row, graphTol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rs.col, graphTol)
}
