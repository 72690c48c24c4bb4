package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLift places reduced-index mass at the original indices and zero
// elsewhere.
func TestLift(t *testing.T) {
	out := lift([]float64{0.5, 0.5}, []int{0, 2}, 4)
	assert.Equal(t, []float64{0.5, 0, 0.5, 0}, out)
}

// TestNormalize_ClampsDustAndRescales: tolerance-level negatives become 0 and
// the mass is rescaled to exactly 1.
func TestNormalize_ClampsDustAndRescales(t *testing.T) {
	p := []float64{0.5, -1e-12, 0.5000001}
	require.NoError(t, normalize(p, 1e-9))

	assert.Equal(t, 0.0, p[1])
	var sum float64
	for _, v := range p {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-15)
}

// TestNormalize_RejectsBadMass: genuine negatives and mass far from 1 are
// solver failures.
func TestNormalize_RejectsBadMass(t *testing.T) {
	assert.ErrorIs(t, normalize([]float64{-0.1, 1.1}, 1e-9), ErrSolverFailed)
	assert.ErrorIs(t, normalize([]float64{0.4, 0.4}, 1e-9), ErrSolverFailed)
}

// TestVerify_AcceptsEquilibriumRejectsImpostor: on matching pennies the true
// solution passes; the same strategies with an inflated value do not.
func TestVerify_AcceptsEquilibriumRejectsImpostor(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, -1}, {-1, 1}})
	half := []float64{0.5, 0.5}

	assert.NoError(t, verify(m, Solution{Value: 0, Row: half, Col: half}, 1e-9))
	assert.ErrorIs(t, verify(m, Solution{Value: 0.5, Row: half, Col: half}, 1e-9), ErrSolverFailed)
}

// TestVerify_RejectsUnderstatedValue: on a constant matrix every strategy is
// optimal, but the reported value still has to match the payoff.
func TestVerify_RejectsUnderstatedValue(t *testing.T) {
	m := mustMatrix(t, [][]float64{{2, 2}, {2, 2}})

	err := verify(m, Solution{Value: 1, Row: []float64{1, 0}, Col: []float64{1, 0}}, 1e-9)
	assert.ErrorIs(t, err, ErrSolverFailed)
}
