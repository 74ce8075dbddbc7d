// Package orderstat computes confidence, tolerance, and assurance statistics
// for order statistics of a sorted sample: which places bracket a population
// quantile at a target confidence, and the self-consistent assurance levels
// of places and intervals.
//
// Indexing convention: places are 1-based throughout this package. Place j
// refers to the j-th smallest of n sorted samples, 1 <= j <= n. Functions
// that map places onto caller data convert to 0-based positions internally.
//
// Reference: S.M. Joshi, "Confidence and Assurance of Percentiles,"
// arXiv:2402.19109 [stat.ME], Feb 2024.
package orderstat

import (
	"fmt"
	"math"

	"github.com/rkeating/reli/internal/ports"
)

// MinSamples is the smallest sample count any interval search accepts.
const MinSamples = 3

// DefaultTol is the root-finding accuracy used when callers pass tol <= 0.
const DefaultTol = 0.001

// Interval is a pair of 1-based places bracketing a quantile, Lo < Hi.
type Interval struct {
	Lo int
	Hi int
}

// Width is the place distance Hi - Lo.
func (iv Interval) Width() int {
	return iv.Hi - iv.Lo
}

// Engine evaluates order-statistics intervals. All methods are pure
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

func (e *Engine) validFraction(name string, v float64) error {
	if v <= 0 || v >= 1 || math.IsNaN(v) {
		e.diag.Error("fraction out of range", "name", name, "value", v)
		return fmt.Errorf("%s=%g must be in (0, 1): %w", name, v, ports.ErrInvalidInput)
	}
	return nil
}

func (e *Engine) validSampleCount(n int) error {
	if n < MinSamples {
		e.diag.Error("too few samples", "n", n, "min", MinSamples)
		return fmt.Errorf("need at least %d samples, got %d: %w", MinSamples, n, ports.ErrInvalidInput)
	}
	return nil
}

// ConfidenceAtPlace returns the probability that the p-th population
// quantile lies at or below place j of n sorted samples. Each sample
// independently falls below the quantile with probability p, so this is the
// binomial CDF at j-1. Monotone non-decreasing in j; j = n+1 would give 1.
func (e *Engine) ConfidenceAtPlace(j, n int, p float64) float64 {
	return e.dist.BinomCDF(j-1, n, p)
}

// AssuranceAtPlace returns the self-consistent level a at place j with
// ConfidenceAtPlace(j, n, a) = a, accurate to tol.
// Requires 1 <= j <= n-1.
func (e *Engine) AssuranceAtPlace(j, n int, tol float64) (float64, error) {
	if err := e.validSampleCount(n); err != nil {
		return 0, err
	}
	if j < 1 || j > n-1 {
		e.diag.Error("place out of range", "j", j, "n", n)
		return 0, fmt.Errorf("place %d must be in [1, %d]: %w", j, n-1, ports.ErrInvalidInput)
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	a, err := e.root.Solve(func(x float64) float64 {
		return e.ConfidenceAtPlace(j, n, x) - x
	}, 0, 1, tol)
	if err != nil {
		return 0, fmt.Errorf("assurance at place %d of %d: %w", j, n, err)
	}
	return a, nil
}

// NominalPlace returns the place that nominally holds the p-th quantile of
// n sorted samples, ceil(n*p), with no confidence attached. Use
// PlaceAtQuantile for a place backed by a confidence level.
func (e *Engine) NominalPlace(n int, p float64) (int, error) {
	if err := e.validSampleCount(n); err != nil {
		return 0, err
	}
	if err := e.validFraction("p", p); err != nil {
		return 0, err
	}
	return int(math.Ceil(float64(n) * p)), nil
}

// PlaceAtQuantile returns the smallest place whose confidence of sitting at
// or above the p-th quantile reaches c. Sentinel ErrUnsatisfiable when even
// place n falls short.
func (e *Engine) PlaceAtQuantile(n int, p, c float64) (int, error) {
	if err := e.validSampleCount(n); err != nil {
		return 0, err
	}
	if err := e.validFraction("p", p); err != nil {
		return 0, err
	}
	if err := e.validFraction("c", c); err != nil {
		return 0, err
	}
	for j := 1; j <= n; j++ {
		if e.ConfidenceAtPlace(j, n, p) >= c {
			return j, nil
		}
	}
	e.diag.Info("no place reaches confidence", "n", n, "p", p, "c", c)
	return 0, fmt.Errorf("no place of %d reaches confidence %g for quantile %g: %w",
		n, c, p, ports.ErrUnsatisfiable)
}

// MedianPlace is PlaceAtQuantile for the median.
func (e *Engine) MedianPlace(n int, c float64) (int, error) {
	return e.PlaceAtQuantile(n, 0.5, c)
}
