package solver

import (
	"fmt"

	"github.com/katalvlaran/zerosum/payoff"
)

// Internal simplex tolerances. These guard pivot selection against floating
// dust and are independent from Options.Eps (which governs game-level
// comparisons and the final optimality check).
const (
	// pivotTol is the smallest magnitude accepted for a pivot element or a
	// meaningful reduced cost.
	pivotTol = 1e-12

	// simplexIterFactor bounds the pivot count at factor·(rows+cols). Bland's
	// rule already excludes cycling in exact arithmetic; the cap is a
	// backstop against floating-point stalls, converted to ErrSolverFailed.
	simplexIterFactor = 64
)

// solveSimplex solves the general reduced game by linear programming.
//
// The payoffs are first shifted by 1 − min(m) when min(m) ≤ 0, making every
// entry strictly positive and hence the shifted value v′ > 0 (the shift is
// subtracted from the value afterwards; strategies are unaffected). With
// A > 0, scale the column player's strategy y by w = y/v′ and the row
// player's x by the dual. The column player's problem becomes the standard
// form LP
//
//	maximize Σⱼ wⱼ   subject to   A·w ≤ 1,  w ≥ 0,
//
// whose slack basis is immediately feasible. At the optimum Σw = 1/v′, the
// basic w read off the tableau give the column strategy, and the duals —
// the final objective-row entries under the slack columns — give the row
// strategy (this is the "read the duals off the primal tableau" route; both
// strategies are re-verified by the assembler either way).
//
// Pivoting uses Bland's rule: smallest-index entering column among negative
// reduced costs, and on ratio ties the leaving row with the smallest basic
// variable index. This terminates without cycling on degenerate games.
//
// Contract: m is the dominance-reduced matrix with ≥ 3 rows and ≥ 3 columns
// and no saddle point (smaller shapes route to the graphical solver).
//
// Complexity: O(pivots·rows·cols), pivots ≤ simplexIterFactor·(rows+cols).
func solveSimplex(m *payoff.Matrix) (reducedSolution, error) {
	rows, cols := m.Rows(), m.Cols()

	var shift float64
	if min := m.Min(); min <= 0 {
		shift = 1 - min
	}

	// Dense tableau: [A | I | 1] over the constraint rows, objective last.
	width := cols + rows + 1
	rhs := width - 1
	t := make([][]float64, rows+1)
	var i, j int
	for i = 0; i <= rows; i++ {
		t[i] = make([]float64, width)
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			t[i][j] = m.At(i, j) + shift
		}
		t[i][cols+i] = 1
		t[i][rhs] = 1
	}
	obj := t[rows]
	for j = 0; j < cols; j++ {
		obj[j] = -1
	}

	basis := make([]int, rows)
	for i = range basis {
		basis[i] = cols + i
	}

	maxIter := simplexIterFactor * (rows + cols)
	for iter := 0; ; iter++ {
		if iter > maxIter {
			return reducedSolution{}, fmt.Errorf("simplex: pivot bound %d exceeded: %w", maxIter, ErrSolverFailed)
		}

		// Bland entering rule: smallest index with a negative reduced cost.
		enter := -1
		for j = 0; j < rhs; j++ {
			if obj[j] < -pivotTol {
				enter = j
				break
			}
		}
		if enter < 0 {
			break // optimal
		}

		// Ratio test; ties resolved by the smallest basic variable index.
		leave := -1
		var best float64
		for i = 0; i < rows; i++ {
			a := t[i][enter]
			if a <= pivotTol {
				continue
			}
			r := t[i][rhs] / a
			if leave < 0 || r < best || (r == best && basis[i] < basis[leave]) {
				leave, best = i, r
			}
		}
		if leave < 0 {
			// Unbounded column; impossible for strictly positive payoffs.
			return reducedSolution{}, fmt.Errorf("simplex: unbounded at column %d: %w", enter, ErrSolverFailed)
		}

		pivot(t, leave, enter)
		basis[leave] = enter
	}

	z := obj[rhs] // Σw at the optimum, equals 1/v′
	if z <= pivotTol {
		return reducedSolution{}, fmt.Errorf("simplex: nonpositive objective %g: %w", z, ErrSolverFailed)
	}
	v := 1 / z

	col := make([]float64, cols)
	for i, bv := range basis {
		if bv < cols {
			col[bv] = t[i][rhs] * v
		}
	}
	row := make([]float64, rows)
	for i = 0; i < rows; i++ {
		row[i] = obj[cols+i] * v
	}

	return reducedSolution{value: v - shift, row: row, col: col}, nil
}

// pivot performs one Gauss-Jordan step on the tableau at (r, c), normalizing
// the pivot row and eliminating column c from every other row, objective
// included. The pivot column is written exactly (1 in the pivot row, 0
// elsewhere) to keep later Bland scans clean.
func pivot(t [][]float64, r, c int) {
	pr := t[r]
	p := pr[c]
	for j := range pr {
		pr[j] /= p
	}
	pr[c] = 1

	for i := range t {
		if i == r {
			continue
		}
		f := t[i][c]
		if f == 0 {
			continue
		}
		row := t[i]
		for j := range row {
			row[j] -= f * pr[j]
		}
		row[c] = 0
	}
}
