package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/zerosum/payoff"
)

// solveTwoRows solves a 2×n game by the graphical method.
//
// Parameterize the row player by p = probability of row 0. Against pure
// column j the expected payoff is the affine line
//
//	fⱼ(p) = bⱼ + sⱼ·p,  bⱼ = a[1][j],  sⱼ = a[0][j] − a[1][j].
//
// The row player's guaranteed value is the lower envelope g(p) = minⱼ fⱼ(p);
// the optimum maximizes g over [0, 1]. Candidate optima are the endpoints and
// every pairwise line intersection inside (0, 1); the maximum is attained at
// one of them because g is piecewise affine. Ties break toward the smallest
// p, so a flat envelope resolves to its leftmost point (p = 0 when the whole
// envelope is flat).
//
// The column player's optimum at an interior p* mixes the two tight lines of
// opposite slope sign (lowest indices) so the row player is indifferent;
// a flat tight line is played pure; a boundary optimum takes the tight line
// whose slope sign keeps both row payoffs at or below the value.
//
// Contract: m has exactly 2 rows and ≥ 2 columns, and no saddle point
// (callers check first); the boundary and flat branches below still handle
// the degenerate leftovers deterministically.
//
// Complexity: O(n²) candidates, each evaluated in O(n).
func solveTwoRows(m *payoff.Matrix, tol float64) (reducedSolution, error) {
	n := m.Cols()
	b := make([]float64, n)
	s := make([]float64, n)
	for j := 0; j < n; j++ {
		b[j] = m.At(1, j)
		s[j] = m.At(0, j) - b[j]
	}

	// Candidate optima, ascending. Parallel lines (equal slope within tol)
	// never intersect and contribute no candidate.
	cands := []float64{0, 1}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(s[i]-s[j]) <= tol {
				continue
			}
			if p := (b[j] - b[i]) / (s[i] - s[j]); p > 0 && p < 1 {
				cands = append(cands, p)
			}
		}
	}
	sort.Float64s(cands)

	// Maximize the envelope; strict improvement keeps the smallest p on ties.
	bestP := 0.0
	bestV := math.Inf(-1)
	for _, p := range cands {
		if v := envelope(b, s, p); v > bestV+tol {
			bestP, bestV = p, v
		}
	}

	// Tight lines at the optimum.
	var jPos, jNeg, jZero = -1, -1, -1
	for j = 0; j < n; j++ {
		if b[j]+s[j]*bestP > bestV+tol {
			continue
		}
		switch {
		case s[j] > tol:
			if jPos < 0 {
				jPos = j
			}
		case s[j] < -tol:
			if jNeg < 0 {
				jNeg = j
			}
		default:
			if jZero < 0 {
				jZero = j
			}
		}
	}

	col := make([]float64, n)
	switch {
	case bestP <= tol && jNeg >= 0 || bestP >= 1-tol && jPos >= 0:
		// Boundary optimum: the row player is pure. Play the tight column
		// whose slope sign bounds both rows: at p=0 a downhill line has
		// a[0][j] ≤ a[1][j] = v, at p=1 an uphill one has a[1][j] ≤ a[0][j] = v.
		j = jNeg
		if bestP >= 1-tol {
			j = jPos
		}
		col[j] = 1

		return reducedSolution{value: bestV, row: []float64{bestP, 1 - bestP}, col: col}, nil

	case jPos >= 0 && jNeg >= 0:
		// Interior kink: recompute the crossing of the two chosen lines
		// exactly, then split the column mass to equalize the two rows.
		p := (b[jNeg] - b[jPos]) / (s[jPos] - s[jNeg])
		v := b[jPos] + s[jPos]*p
		y := s[jNeg] / (s[jNeg] - s[jPos]) // mass on jPos
		col[jPos] = y
		col[jNeg] = 1 - y

		return reducedSolution{value: v, row: []float64{p, 1 - p}, col: col}, nil

	case jZero >= 0:
		// Flat optimum: a level line bounds both rows by itself.
		col[jZero] = 1

		return reducedSolution{value: bestV, row: []float64{bestP, 1 - bestP}, col: col}, nil
	}

	return reducedSolution{}, fmt.Errorf("graphical: no bounding columns at p=%g: %w", bestP, ErrSolverFailed)
}

// solveTwoCols solves an n×2 game by reflection: the transposed, negated
// matrix is the same game with the players exchanged, and it has 2 rows.
// Its solution maps back with the value negated and the strategies swapped.
func solveTwoCols(m *payoff.Matrix, tol float64) (reducedSolution, error) {
	rs, err := solveTwoRows(m.Transpose().Neg(), tol)
	if err != nil {
		return reducedSolution{}, err
	}

	return reducedSolution{value: -rs.value, row: rs.col, col: rs.row}, nil
}

// envelope evaluates the lower envelope minⱼ (bⱼ + sⱼ·p).
func envelope(b, s []float64, p float64) float64 {
	min := b[0] + s[0]*p
	for j := 1; j < len(b); j++ {
		if v := b[j] + s[j]*p; v < min {
			min = v
		}
	}

	return min
}
