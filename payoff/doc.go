// SPDX-License-Identifier: MIT

// Package payoff defines the validated, immutable payoff matrix of a finite
// two-player zero-sum game, plus a small text reader for whitespace-separated
// matrices.
//
// Entry (i, j) is the amount the row player wins — and the column player
// loses — when the row player picks pure strategy i and the column player
// picks pure strategy j. The row player maximizes, the column player
// minimizes.
//
// Validation happens exactly once, in New (or Parse, which delegates to New):
//   - the table must be rectangular and non-empty → ErrBadShape otherwise,
//   - every entry must be finite → ErrNaNInf otherwise.
//
// Everything downstream (the solver package) assumes a valid Matrix and never
// re-validates. A Matrix never changes after construction; derived matrices
// (Transpose, Scale, Shift, Neg, Submatrix) are fresh copies.
//
// Complexity: construction and every derived constructor are O(rows·cols);
// accessors are O(1).
package payoff
