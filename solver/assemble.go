package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zerosum/payoff"
)

// probSumTol is an internal consistency guard on the raw probability mass
// coming out of a solver stage, before exact renormalization. Stage output
// drifting further than this from unit mass indicates a numerical failure,
// not ordinary floating dust.
const probSumTol = 1e-6

// assemble lifts a reduced-matrix solution back onto the original matrix and
// verifies it, returning the one and only Solution of a solve — or
// ErrSolverFailed if the candidate does not withstand the check. Removed
// rows/columns receive probability 0; surviving ones keep the solver's mass
// at their original index.
//
// Complexity: O(rows·cols) dominated by verification.
func assemble(m *payoff.Matrix, red *reduction, rs reducedSolution, tol float64) (Solution, error) {
	row := lift(rs.row, red.rowKeep, m.Rows())
	col := lift(rs.col, red.colKeep, m.Cols())

	if err := normalize(row, tol); err != nil {
		return Solution{}, fmt.Errorf("row strategy: %w", err)
	}
	if err := normalize(col, tol); err != nil {
		return Solution{}, fmt.Errorf("column strategy: %w", err)
	}

	sol := Solution{Value: rs.value, Row: row, Col: col}
	if err := verify(m, sol, tol); err != nil {
		return Solution{}, err
	}

	return sol, nil
}

// lift spreads reduced-index values onto a zeroed original-length vector.
func lift(vals []float64, keep []int, n int) []float64 {
	out := make([]float64, n)
	for k, orig := range keep {
		out[orig] = vals[k]
	}

	return out
}

// normalize clamps tolerance-level negative entries to zero and rescales the
// vector to exact unit mass. A genuinely negative entry or a mass far from 1
// is a solver failure.
func normalize(p []float64, tol float64) error {
	var sum float64
	for i, v := range p {
		if v < -tol {
			return fmt.Errorf("negative probability %g at index %d: %w", v, i, ErrSolverFailed)
		}
		if v < 0 {
			p[i] = 0
			v = 0
		}
		sum += v
	}
	if math.Abs(sum-1) > probSumTol {
		return fmt.Errorf("probability mass %g: %w", sum, ErrSolverFailed)
	}
	for i := range p {
		p[i] /= sum
	}

	return nil
}

// verify recomputes both players' guarantees on the ORIGINAL matrix:
//   - the row strategy earns at least Value−tol against every pure column,
//   - the column strategy concedes at most Value+tol against every pure row,
//   - Value lies in [maximin−tol, minimax+tol].
//
// Any violation means the pipeline produced an inconsistent result and the
// solve must fail rather than return it.
func verify(m *payoff.Matrix, sol Solution, tol float64) error {
	var i, j int
	for j = 0; j < m.Cols(); j++ {
		var e float64
		for i = 0; i < m.Rows(); i++ {
			e += sol.Row[i] * m.At(i, j)
		}
		if e < sol.Value-tol {
			return fmt.Errorf("row strategy earns %g < value %g at column %d: %w", e, sol.Value, j, ErrSolverFailed)
		}
	}
	for i = 0; i < m.Rows(); i++ {
		var e float64
		for j = 0; j < m.Cols(); j++ {
			e += sol.Col[j] * m.At(i, j)
		}
		if e > sol.Value+tol {
			return fmt.Errorf("column strategy concedes %g > value %g at row %d: %w", e, sol.Value, i, ErrSolverFailed)
		}
	}

	lo, _ := maximin(m)
	hi, _ := minimax(m)
	if sol.Value < lo-tol || sol.Value > hi+tol {
		return fmt.Errorf("value %g outside [maximin %g, minimax %g]: %w", sol.Value, lo, hi, ErrSolverFailed)
	}

	return nil
}
