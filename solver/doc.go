// Package solver computes optimal mixed strategies and the value of a finite
// two-player zero-sum game described by a payoff.Matrix.
//
// 🚀 Solving pipeline
//
//	Solve / SolveWithMatrix run a fixed, deterministic pipeline:
//	 1. Saddle point — if the row player's maximin equals the column player's
//	    minimax (within tolerance), the game has a pure-strategy equilibrium
//	    and solving stops right there.
//	 2. Dominance reduction — strictly dominated rows and columns are removed
//	    iteratively until a full pass removes nothing; the surviving indices
//	    are recorded so the final strategies live on the original matrix.
//	 3. Routing — a reduced matrix with 2 rows (or 2 columns) goes to the
//	    closed-form graphical solver; anything larger goes to the simplex
//	    linear-programming solver with Bland's anti-cycling rule.
//	 4. Assembly — the reduced solution is lifted back to original indices
//	    (removed strategies get probability 0) and re-verified against the
//	    original matrix: a solution either passes the optimality check or the
//	    call fails with ErrSolverFailed. There is no partial result.
//
// ⚖️ Determinism
//
//	Ties are always broken toward the lowest original index: the saddle row
//	and column, the dominance scan order, the graphical envelope optimum
//	(smallest p), and the simplex pivot (Bland's smallest-index rule). Two
//	runs over the same matrix produce identical bytes.
//
// 🎯 Tolerance policy
//
//	One knob, Options.Eps, governs every comparison in the pipeline. It is
//	interpreted relative to the matrix magnitude: tol = Eps·max(1, maxAbs).
//	See options.go.
//
// Example:
//
//	sol, err := solver.Solve([][]float64{
//		{1, -1},
//		{-1, 1},
//	}, solver.DefaultOptions())
//	// sol.Value == 0; sol.Row, sol.Col == [0.5 0.5]
//
// Complexity: saddle O(r·c); dominance O((r+c)²·r·c) worst case; graphical
// O(c²) over candidate intersections; simplex O(pivots·r·c) with a bounded
// pivot count.
package solver
