// Package binomial computes reliability-engineering statistics for pass/fail
// (Bernoulli) trial data: confidence in a reliability level, minimum
// reliability at a confidence level, and the self-consistent assurance level
// where the two coincide. Both infinite-population and finite remaining-lot
// forms are provided.
//
// Reference: S.M. Joshi, "Computation of Reliability Statistics for
// Success-Failure Experiments," arXiv:2303.03167 [stat.ME], March 2023.
package binomial

import (
	"fmt"
	"math"

	"github.com/rkeating/reli/internal/ports"
)

// DefaultTol is the root-finding accuracy used when callers pass tol <= 0.
const DefaultTol = 0.001

// Engine evaluates binomial reliability statistics. All methods are pure
// functions of their inputs; the engine holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	dist ports.Distribution
	root ports.RootFinder
	diag ports.Diagnostics
}

// NewEngine wires an Engine to its collaborators. A nil diag falls back to
// a no-op sink.
func NewEngine(dist ports.Distribution, root ports.RootFinder, diag ports.Diagnostics) *Engine {
	if diag == nil {
		diag = ports.NopDiagnostics{}
	}
	return &Engine{dist: dist, root: root, diag: diag}
}

// validTrial rejects out-of-range trial counts. Failures beyond n are
// rejected, not clamped.
func (e *Engine) validTrial(n, f int) error {
	if n < 1 {
		return fmt.Errorf("n=%d must be >= 1: %w", n, ports.ErrInvalidInput)
	}
	if f < 0 || f > n {
		return fmt.Errorf("f=%d must be in [0, %d]: %w", f, n, ports.ErrInvalidInput)
	}
	return nil
}

func validProbability(name string, p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%s=%g must be in [0, 1]: %w", name, p, ports.ErrInvalidInput)
	}
	return nil
}

// Confidence returns the probability that, having observed f failures in n
// trials, the true reliability is at least r. This is the binomial survival
// function at f with per-trial failure probability 1-r.
func (e *Engine) Confidence(n, f int, r float64) (float64, error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, err
	}
	if err := validProbability("r", r); err != nil {
		return 0, err
	}
	return e.dist.BinomSF(f, n, 1-r), nil
}

// confidenceUnchecked is Confidence without validation, for use inside
// root-finding callbacks where inputs are already known good.
func (e *Engine) confidenceUnchecked(n, f int, r float64) float64 {
	return e.dist.BinomSF(f, n, 1-r)
}

// ReliabilityClosed approximates the minimum reliability at confidence c with
// the Wilson score interval with continuity correction on the observed
// success rate. Accurate to within about 5% of the exact value; use
// Reliability when that matters.
//
// Wallis, "Binomial confidence intervals and contingency tests," Journal of
// Quantitative Linguistics 20(3), 2013.
func (e *Engine) ReliabilityClosed(n, f int, c float64) (float64, error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, err
	}
	if err := validProbability("c", c); err != nil {
		return 0, err
	}
	nf := float64(n)
	p := float64(n-f) / nf
	// Continuity correction: shift the observed rate down half a trial.
	p = math.Max(p-1/(2*nf), 0)
	return e.wilsonLower(p, nf, c), nil
}

// wilsonLower is the lower bound of the Wilson score interval for an
// observed proportion p over n trials at confidence c.
func (e *Engine) wilsonLower(p, n, c float64) float64 {
	z := e.dist.NormalQuantile(c)
	center := (p + z*z/(2*n)) / (1 + z*z/n)
	radius := z / (1 + z*z/n) * math.Sqrt(p*(1-p)/n+z*z/(4*n*n))
	return center - radius
}

// Reliability returns the minimum reliability guaranteed at confidence c,
// accurate to tol, by solving confidence(n, f, r) = c for r. Confidence is
// monotonically non-increasing in r with confidence(n,f,0) = 1 and
// confidence(n,f,1) = 0, so the bracket [0, 1] always holds a unique root.
func (e *Engine) Reliability(n, f int, c, tol float64) (float64, error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, err
	}
	if err := validProbability("c", c); err != nil {
		return 0, err
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if f == n {
		// Every trial failed; the confidence curve is identically zero and
		// no nonzero reliability is supportable.
		return 0, nil
	}
	r, err := e.root.Solve(func(x float64) float64 {
		return e.confidenceUnchecked(n, f, x) - c
	}, 0, 1, tol)
	if err != nil {
		return 0, fmt.Errorf("reliability(n=%d, f=%d, c=%g): %w", n, f, c, err)
	}
	e.diag.Debug("reliability solved", "n", n, "f", f, "c", c, "r", r)
	return r, nil
}

// Assurance returns the self-consistent level a with confidence(n, f, a) = a,
// accurate to tol. 90% assurance means 90% confidence in 90% reliability
// (the canonical n=22, f=0 result).
func (e *Engine) Assurance(n, f int, tol float64) (float64, error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, err
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	a, err := e.root.Solve(func(x float64) float64 {
		return x - e.confidenceUnchecked(n, f, x)
	}, 0, 1, tol)
	if err != nil {
		return 0, fmt.Errorf("assurance(n=%d, f=%d): %w", n, f, err)
	}
	e.diag.Debug("assurance solved", "n", n, "f", f, "a", a)
	return a, nil
}
