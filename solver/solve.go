// Package solver - unified dispatcher for the zero-sum solving pipeline.
//
// This file provides the canonical entry points:
//
//   - Solve: accept a nested [][]float64, build a validated payoff.Matrix,
//     then delegate to SolveWithMatrix.
//   - SolveWithMatrix: accept a *payoff.Matrix and run the full pipeline —
//     saddle point, dominance reduction, routing (graphical vs simplex),
//     assembly and verification.
//
// Design principles:
//   - Deterministic: lowest-index tie-breaks everywhere, no randomness.
//   - Strict sentinels: only errors from errors.go (plus payoff's), matched
//     via errors.Is.
//   - One tolerance: Options.Eps is resolved once against the original
//     matrix and threaded through every stage.
//   - No partial result: a fully verified Solution or an error.
package solver

import (
	"math"

	"github.com/katalvlaran/zerosum/payoff"
)

// Solve builds a payoff.Matrix from rows and solves the game.
//
// Errors: payoff.ErrBadShape / payoff.ErrNaNInf from construction, then
// anything SolveWithMatrix returns.
func Solve(rows [][]float64, opts Options) (Solution, error) {
	m, err := payoff.New(rows)
	if err != nil {
		return Solution{}, err
	}

	return SolveWithMatrix(m, opts)
}

// SolveWithMatrix computes optimal mixed strategies for both players and the
// value of the game described by m.
//
// Contracts:
//   - m must be non-nil (payoff.New guarantees the remaining invariants).
//   - opts.Eps must be finite and non-negative.
//
// The returned Solution always refers to the ORIGINAL indices of m: rows and
// columns removed during dominance reduction carry probability 0.
//
// Errors: ErrNilMatrix, ErrBadTolerance, ErrSolverFailed.
//
// Complexity: O(rows·cols) for saddle detection and verification, dominance
// as per reduce, then the routed solver (graphical O(cols²), simplex
// O(pivots·rows·cols)).
func SolveWithMatrix(m *payoff.Matrix, opts Options) (Solution, error) {
	if m == nil {
		return Solution{}, ErrNilMatrix
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	// Resolve the one comparison tolerance for the whole pipeline: Eps
	// relative to the original matrix magnitude.
	tol := opts.Eps * math.Max(1, m.MaxAbs())

	// Stage 1 - pure-strategy equilibrium short-circuits everything.
	if rs, ok := findSaddle(m, tol); ok {
		return assemble(m, identityReduction(m.Rows(), m.Cols()), rs, tol)
	}

	// Stage 2 - iterative strict-dominance reduction.
	red := reduce(m, tol)
	sub := red.matrix(m)

	// Stage 3 - the reduction may have collapsed the game to a trivial one
	// (a single row or column always has a saddle point, 1×1 in particular).
	if rs, ok := findSaddle(sub, tol); ok {
		return assemble(m, red, rs, tol)
	}

	// Stage 4 - route by reduced shape.
	var (
		rs  reducedSolution
		err error
	)
	switch {
	case sub.Rows() == 2:
		rs, err = solveTwoRows(sub, tol)
	case sub.Cols() == 2:
		rs, err = solveTwoCols(sub, tol)
	default:
		rs, err = solveSimplex(sub)
	}
	if err != nil {
		return Solution{}, err
	}

	// Stage 5 - lift to original coordinates and verify.
	return assemble(m, red, rs, tol)
}
