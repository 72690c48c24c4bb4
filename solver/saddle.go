package solver

import "github.com/katalvlaran/zerosum/payoff"

// maximin returns the row player's guaranteed floor: the maximum over rows of
// the row minimum, together with the lowest row index achieving it.
//
// Complexity: O(rows·cols), no allocations.
func maximin(m *payoff.Matrix) (float64, int) {
	var (
		bestVal float64
		bestRow int
	)
	for i := 0; i < m.Rows(); i++ {
		min := m.At(i, 0)
		for j := 1; j < m.Cols(); j++ {
			if v := m.At(i, j); v < min {
				min = v
			}
		}
		// Strict improvement only, so ties keep the lowest row index.
		if i == 0 || min > bestVal {
			bestVal, bestRow = min, i
		}
	}

	return bestVal, bestRow
}

// minimax returns the column player's guaranteed ceiling: the minimum over
// columns of the column maximum, together with the lowest column index
// achieving it.
//
// Complexity: O(rows·cols), no allocations.
func minimax(m *payoff.Matrix) (float64, int) {
	var (
		bestVal float64
		bestCol int
	)
	for j := 0; j < m.Cols(); j++ {
		max := m.At(0, j)
		for i := 1; i < m.Rows(); i++ {
			if v := m.At(i, j); v > max {
				max = v
			}
		}
		if j == 0 || max < bestVal {
			bestVal, bestCol = max, j
		}
	}

	return bestVal, bestCol
}

// findSaddle reports whether m has a pure-strategy equilibrium: maximin and
// minimax agree within tol. When it does, the returned solution plays the
// extremal row and column with probability 1 (lowest-index tie-break) and
// the common value is the value of the game.
//
// minimax ≥ maximin always holds, so the check is one-sided.
//
// Complexity: O(rows·cols).
func findSaddle(m *payoff.Matrix, tol float64) (reducedSolution, bool) {
	lo, row := maximin(m)
	hi, col := minimax(m)
	if hi-lo > tol {
		return reducedSolution{}, false
	}

	return reducedSolution{
		value: lo,
		row:   pureVector(m.Rows(), row),
		col:   pureVector(m.Cols(), col),
	}, true
}
