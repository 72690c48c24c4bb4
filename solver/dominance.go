package solver

import "github.com/katalvlaran/zerosum/payoff"

// reduction is the bidirectional index mapping between the original matrix
// and its dominance-reduced form. It is created by reduce, grows monotonically
// (a removed strategy is never restored), and is consumed once by the
// assembler. It stores indices only — never payoff data.
type reduction struct {
	// rowKeep / colKeep list the surviving original indices in ascending
	// order: reduced index k ↔ original index rowKeep[k].
	rowKeep []int
	colKeep []int

	// rowAt / colAt are the inverse maps: original index → reduced index,
	// or -1 when the strategy was removed as dominated.
	rowAt []int
	colAt []int
}

// identityReduction maps every index to itself; used when a stage operates on
// the original matrix directly (the saddle-point short circuit).
func identityReduction(rows, cols int) *reduction {
	red := &reduction{
		rowKeep: make([]int, rows),
		colKeep: make([]int, cols),
		rowAt:   make([]int, rows),
		colAt:   make([]int, cols),
	}
	for i := range red.rowKeep {
		red.rowKeep[i] = i
		red.rowAt[i] = i
	}
	for j := range red.colKeep {
		red.colKeep[j] = j
		red.colAt[j] = j
	}

	return red
}

// reduce removes strictly dominated rows and columns of m until a full pass
// removes nothing, and returns the resulting index mapping.
//
// Row i strictly dominates row j when every entry of i is ≥ the matching
// entry of j (within tol) with at least one entry strictly greater (beyond
// tol): the maximizer never needs j. Columns are symmetric with the
// inequality reversed, because the column player minimizes. Only STRICT
// dominance is eliminated — weakly dominated (tied) strategies survive, so
// alternative optimal strategies are never discarded.
//
// The scan is an explicit worklist over the alive index sets: each pass scans
// rows then columns in ascending order, removing a strategy as soon as a
// still-alive dominator is found. Termination is immediate from monotonicity:
// every productive pass shrinks an index set.
//
// At least one row and one column always survive (removal requires an alive
// dominator).
//
// Complexity: O((r+c)·r·c) per pass, at most r+c-2 passes.
func reduce(m *payoff.Matrix, tol float64) *reduction {
	red := identityReduction(m.Rows(), m.Cols())

	for changed := true; changed; {
		changed = false
		if removeDominatedRows(m, red, tol) {
			changed = true
		}
		if removeDominatedCols(m, red, tol) {
			changed = true
		}
	}

	// Rebuild the inverse maps once the alive sets are final.
	for i := range red.rowAt {
		red.rowAt[i] = -1
	}
	for k, orig := range red.rowKeep {
		red.rowAt[orig] = k
	}
	for j := range red.colAt {
		red.colAt[j] = -1
	}
	for k, orig := range red.colKeep {
		red.colAt[orig] = k
	}

	return red
}

// removeDominatedRows deletes every alive row that some other alive row
// strictly dominates. Reports whether anything was removed.
func removeDominatedRows(m *payoff.Matrix, red *reduction, tol float64) bool {
	removed := false
	for j := 0; j < len(red.rowKeep); j++ {
		for _, i := range red.rowKeep {
			if i == red.rowKeep[j] {
				continue
			}
			if rowDominates(m, red.colKeep, i, red.rowKeep[j], tol) {
				red.rowKeep = append(red.rowKeep[:j], red.rowKeep[j+1:]...)
				removed = true
				j-- // the slot now holds the next candidate
				break
			}
		}
	}

	return removed
}

// removeDominatedCols is the column-player mirror of removeDominatedRows.
func removeDominatedCols(m *payoff.Matrix, red *reduction, tol float64) bool {
	removed := false
	for j := 0; j < len(red.colKeep); j++ {
		for _, i := range red.colKeep {
			if i == red.colKeep[j] {
				continue
			}
			if colDominates(m, red.rowKeep, i, red.colKeep[j], tol) {
				red.colKeep = append(red.colKeep[:j], red.colKeep[j+1:]...)
				removed = true
				j--
				break
			}
		}
	}

	return removed
}

// rowDominates reports whether row i strictly dominates row j over the alive
// columns: i is at least as good everywhere and strictly better somewhere.
func rowDominates(m *payoff.Matrix, cols []int, i, j int, tol float64) bool {
	strict := false
	for _, c := range cols {
		d := m.At(i, c) - m.At(j, c)
		if d < -tol {
			return false
		}
		if d > tol {
			strict = true
		}
	}

	return strict
}

// colDominates reports whether column i strictly dominates column j over the
// alive rows, from the minimizer's point of view: i is at most as costly
// everywhere and strictly cheaper somewhere.
func colDominates(m *payoff.Matrix, rows []int, i, j int, tol float64) bool {
	strict := false
	for _, r := range rows {
		d := m.At(r, i) - m.At(r, j)
		if d > tol {
			return false
		}
		if d < -tol {
			strict = true
		}
	}

	return strict
}

// matrix materializes the reduced payoff matrix: the surviving rows and
// columns of m, in original order.
func (red *reduction) matrix(m *payoff.Matrix) *payoff.Matrix {
	return m.Submatrix(red.rowKeep, red.colKeep)
}
