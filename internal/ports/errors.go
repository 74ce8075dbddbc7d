package ports

import "errors"

// Sentinel errors shared across the engine boundary. Callers compare with
// errors.Is; engines wrap them with call context via fmt.Errorf and %w.
var (
	// ErrInvalidInput marks out-of-range parameters: negative counts,
	// probabilities outside their legal range, f > n, or too few samples.
	// Always recovered locally — the call returns this, it never panics.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsatisfiable marks a valid request that no interval or value can
	// meet within the given sample size. This is an expected outcome, not a
	// defect: increase n, lower the target fraction, or lower the confidence.
	ErrUnsatisfiable = errors.New("confidence not achievable at this sample size")

	// ErrNoBracket means the root finder was handed a function that does not
	// change sign on the interval. The engines guarantee monotone brackets
	// before solving, so this indicates a broken invariant and is propagated
	// as a hard failure.
	ErrNoBracket = errors.New("root finder: no sign change on bracket")
)
