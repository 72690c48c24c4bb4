package solver

// Solution is the outcome of a solve: a mixed strategy for each player over
// the ORIGINAL matrix indices, plus the value of the game.
//
// Invariants (enforced by the final verification pass):
//   - Row has one entry per original row, Col one per original column,
//   - entries are non-negative and each vector sums to exactly 1,
//   - Row guarantees at least Value against every pure column, and Col
//     concedes at most Value against every pure row, within tolerance,
//   - Value lies between the matrix's maximin and minimax.
type Solution struct {
	// Value is the expected payoff to the row player under optimal play.
	Value float64

	// Row is the row player's (maximizer's) mixed strategy.
	Row []float64

	// Col is the column player's (minimizer's) mixed strategy.
	Col []float64
}

// reducedSolution is a solution over the indices of a reduced matrix, as
// produced by the saddle, graphical, or simplex stage. The assembler lifts it
// back to original coordinates.
type reducedSolution struct {
	value float64
	row   []float64
	col   []float64
}

// pureVector returns a length-n probability vector with all mass on index i.
func pureVector(n, i int) []float64 {
	v := make([]float64, n)
	v[i] = 1

	return v
}
