// Command zerosum solves a finite two-player zero-sum game.
//
// It reads a payoff matrix in whitespace-separated textual form — one row
// per line, blank lines ignored — from a file argument or stdin, solves it
// with default options, and prints the value and both optimal strategies:
//
//	$ echo "1 -1
//	        -1 1" | zerosum
//	value 0.000
//	max 0:0.500 1:0.500
//	min 0:0.500 1:0.500
//
// "max" is the row player (maximizer), "min" the column player (minimizer).
// All solving lives in the solver package; this is a thin I/O shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/zerosum/payoff"
	"github.com/katalvlaran/zerosum/solver"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "zerosum:", err)
		os.Exit(1)
	}
}

// run is the testable body of main: resolve the input, parse, solve, print.
func run(args []string, in io.Reader, out io.Writer) error {
	r := in
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	m, err := payoff.Parse(r)
	if err != nil {
		return err
	}

	sol, err := solver.SolveWithMatrix(m, solver.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "value %.3f\n", sol.Value)
	writeStrategy(out, "max", sol.Row)
	writeStrategy(out, "min", sol.Col)

	return nil
}

// writeStrategy prints one player's mixed strategy as index:probability pairs.
func writeStrategy(w io.Writer, name string, probs []float64) {
	fmt.Fprint(w, name)
	for i, p := range probs {
		fmt.Fprintf(w, " %d:%.3f", i, p)
	}
	fmt.Fprintln(w)
}
