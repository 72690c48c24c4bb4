package solver

import "math"

// DefaultEpsilon is the default relative tolerance for every comparison in
// the pipeline: saddle detection, dominance, envelope ties, and the final
// optimality check.
const DefaultEpsilon = 1e-9

// Options configures a solve. The zero value is valid (exact comparisons);
// most callers want DefaultOptions.
type Options struct {
	// Eps is the non-negative comparison tolerance, interpreted relative to
	// the matrix magnitude: every comparison uses tol = Eps·max(1, maxAbs),
	// where maxAbs is the largest entry magnitude of the ORIGINAL matrix.
	// One derived tol threads through the whole pipeline so that behavior is
	// consistent and adjustable with a single knob.
	//
	// Negative, NaN, or ±Inf values are rejected with ErrBadTolerance.
	Eps float64
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options { return Options{Eps: DefaultEpsilon} }

// validateOptions rejects nonsensical tolerances. A negative epsilon would
// invert every acceptance test, and a non-finite one poisons comparisons.
func validateOptions(opts Options) error {
	if math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) || opts.Eps < 0 {
		return ErrBadTolerance
	}

	return nil
}
