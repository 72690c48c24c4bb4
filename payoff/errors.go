// SPDX-License-Identifier: MIT
// Package payoff: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers match them
// via errors.Is; context may be added with fmt.Errorf("ctx: %w", ErrX) at the
// boundary where it is essential (Parse does this with line/token info).

package payoff

import "errors"

var (
	// ErrBadShape is returned when the candidate table is empty, has an empty
	// row, or has rows of differing length. Construction rejects the table
	// before any entry is copied.
	ErrBadShape = errors.New("payoff: matrix must be rectangular and non-empty")

	// ErrNaNInf is returned when a NaN or ±Inf entry is encountered. The
	// solver works over finite reals only; non-finite payoffs are rejected at
	// construction, never later.
	ErrNaNInf = errors.New("payoff: NaN or Inf entry")

	// ErrParse is returned by Parse when a token cannot be read as a float64.
	// The returned error wraps ErrParse with the offending line and token.
	ErrParse = errors.New("payoff: unparsable matrix entry")
)
