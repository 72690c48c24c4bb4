// SPDX-License-Identifier: MIT

package payoff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a payoff matrix in whitespace-separated textual form: one row
// per line, entries split on any whitespace, blank lines skipped. The result
// passes through New, so shape and finiteness are validated exactly as for
// programmatic construction.
//
// Errors: ErrParse (wrapped with line and token context) for an unreadable
// entry, ErrBadShape / ErrNaNInf from New, or the reader's own error.
//
// Complexity: O(total input size).
func Parse(r io.Reader) (*Matrix, error) {
	var (
		rows [][]float64
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for k, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, tok, ErrParse)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return New(rows)
}
