// Package solver: sentinel error set. Algorithms return these sentinels and
// callers match them via errors.Is; internal stages may wrap them with
// context via fmt.Errorf("ctx: %w", ErrX).

package solver

import "errors"

var (
	// ErrNilMatrix indicates that a nil *payoff.Matrix was passed in.
	ErrNilMatrix = errors.New("solver: nil payoff matrix")

	// ErrBadTolerance indicates that Options.Eps is negative, NaN, or ±Inf.
	ErrBadTolerance = errors.New("solver: tolerance must be finite and non-negative")

	// ErrSolverFailed indicates an internal numerical failure: the LP or
	// graphical stage produced a candidate that did not pass the optimality
	// check against the original matrix, or the simplex iteration bound was
	// hit. It is fatal to the call — no retry, no partial result — and
	// signals degeneracy or precision limits, not a user-correctable input.
	ErrSolverFailed = errors.New("solver: solution failed the optimality check")
)
