// Package zerosum solves finite two-player zero-sum games: given a payoff
// matrix it computes an optimal mixed strategy for each player and the value
// of the game, so that neither player can gain more than a configurable
// tolerance by deviating.
//
// 🚀 What is zerosum?
//
//	A deterministic, pure-Go game-theory library built around one pipeline:
//		• Payoff matrix: validated, immutable table of finite real payoffs
//		• Saddle point: pure-strategy equilibria detected and returned directly
//		• Dominance: strictly dominated rows/columns removed iteratively
//		• Graphical method: closed-form solver for 2×n and n×2 games
//		• Simplex: linear-programming solver (Bland's rule) for the general case
//		• Verification: every solution is re-checked against the original matrix
//
// ✨ Why choose zerosum?
//
//   - Deterministic – lowest-index tie-breaking everywhere, no randomness
//   - Numerically honest – a single tolerance ε threads through every comparison
//   - Pure Go – no cgo, no hidden deps
//   - Verified – a solution that fails the optimality check is an error, never
//     a silently wrong answer
//
// The library is organized as two subpackages plus a thin CLI:
//
//	payoff/ — the Matrix type, validation and text parsing
//	solver/ — saddle point, dominance, graphical and simplex solvers
//	cmd/    — `zerosum`, reads a matrix from stdin and prints the solution
//
// Quick ASCII example (matching pennies):
//
//	     H   T
//	H  [ 1  -1 ]
//	T  [-1   1 ]
//
//	value 0, both players mix 1/2 : 1/2.
//
// Dive into solver/doc.go for the solving pipeline and the tolerance policy.
//
//	go get github.com/katalvlaran/zerosum
package zerosum
