package orderstat

import (
	"fmt"
	"math"

	"github.com/rkeating/reli/internal/ports"
)

// QuantileIntervalPlaces returns the smallest-width pair of places (lo, hi)
// such that the p-th quantile lies between them with confidence at least c.
// Sentinel ErrUnsatisfiable when the full range [1, n] cannot reach c —
// increase n, lower p, or lower c.
func (e *Engine) QuantileIntervalPlaces(n int, p, c float64) (Interval, error) {
	if err := e.validSampleCount(n); err != nil {
		return Interval{}, err
	}
	if err := e.validFraction("p", p); err != nil {
		return Interval{}, err
	}
	if err := e.validFraction("c", c); err != nil {
		return Interval{}, err
	}

	candidates := e.quantileIntervalCandidates(n, p, c)
	if len(candidates) == 0 {
		return Interval{}, fmt.Errorf(
			"no interval of %d samples brackets quantile %g at confidence %g (increase n, lower p, or lower c): %w",
			n, p, c, ports.ErrUnsatisfiable)
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Width() < best.Width() {
			best = cand
		}
	}
	return best, nil
}

// quantileIntervalCandidates generates, for each feasible upper place, the
// tightest lower place whose confidence gap exceeds c. Empty when the
// maximum achievable confidence over [1, n] is below c.
func (e *Engine) quantileIntervalCandidates(n int, p, c float64) []Interval {
	cMax := e.ConfidenceAtPlace(n, n, p)
	cMin := e.ConfidenceAtPlace(1, n, p)
	if cMax-cMin < c {
		e.diag.Info("highest achievable confidence below request",
			"n", n, "p", p, "c", c, "cMax", cMax-cMin)
		return nil
	}

	// Walk the upper place out from the midpoint until the first bracket
	// against the fixed floor at place 1 clears c.
	jHi := (n + 1) / 2
	jLo := 1
	for jHi <= n {
		if e.ConfidenceAtPlace(jHi, n, p)-cMin > c {
			break
		}
		jHi++
	}

	// For each further upper place, advance the lower place as far as the
	// confidence gap allows, then step back one: each (jLo, jHi) is the
	// tightest bracket with that upper end. jLo only moves forward across
	// iterations, so the whole scan is O(n) confidence evaluations.
	var candidates []Interval
	for ; jHi <= n; jHi++ {
		cHi := e.ConfidenceAtPlace(jHi, n, p)
		for cHi-e.ConfidenceAtPlace(jLo, n, p) > c {
			jLo++
		}
		jLo--
		e.diag.Debug("interval candidate", "jLo", jLo, "jHi", jHi)
		candidates = append(candidates, Interval{Lo: jLo, Hi: jHi})
	}
	return candidates
}

// ToleranceIntervalPlaces returns places bracketing the middle t fraction of
// the population (quantiles 0.5-t/2 to 0.5+t/2) with confidence at least c.
//
// Two-sided construction: expand the upper place out from the median until
// its one-sided confidence at quantile 0.5+t/2 reaches c, giving cHi. Joint
// coverage requires cHi*(1-cLo) >= c, so then expand the lower place up from
// zero until its confidence at quantile 0.5-t/2 reaches 1 - c/cHi.
// Sentinel ErrUnsatisfiable when either side exhausts its range.
func (e *Engine) ToleranceIntervalPlaces(n int, t, c float64) (Interval, error) {
	if err := e.validSampleCount(n); err != nil {
		return Interval{}, err
	}
	if err := e.validFraction("t", t); err != nil {
		return Interval{}, err
	}
	if err := e.validFraction("c", c); err != nil {
		return Interval{}, err
	}

	medianPlace := (n + 1) / 2

	jHi := medianPlace
	pHi := 0.5 + t/2
	for e.ConfidenceAtPlace(jHi, n, pHi) < c {
		jHi++
		if jHi == n+1 {
			e.diag.Info("upper side exhausted", "n", n, "t", t, "c", c)
			return Interval{}, fmt.Errorf(
				"%d samples cannot cover fraction %g at confidence %g (increase n, lower t, or lower c): %w",
				n, t, c, ports.ErrUnsatisfiable)
		}
	}
	cHi := e.ConfidenceAtPlace(jHi, n, pHi)

	jLo := 0
	pLo := 0.5 - t/2
	for e.ConfidenceAtPlace(jLo, n, pLo) < 1-c/cHi {
		jLo++
		if jLo == medianPlace {
			e.diag.Info("lower side exhausted", "n", n, "t", t, "c", c)
			return Interval{}, fmt.Errorf(
				"%d samples cannot cover fraction %g at confidence %g (increase n, lower t, or lower c): %w",
				n, t, c, ports.ErrUnsatisfiable)
		}
	}

	return Interval{Lo: jLo + 1, Hi: jHi}, nil
}

// AssuranceIntervalPlaces is the self-consistent two-sided band: a tolerance
// interval covering fraction a with confidence a.
func (e *Engine) AssuranceIntervalPlaces(n int, a float64) (Interval, error) {
	return e.ToleranceIntervalPlaces(n, a, a)
}

// AssuranceInInterval returns the self-consistent level a such that fraction
// a of the population lies between places jLo and jHi with confidence a.
// Solves x = min(cHi(x), 1-cLo(1-x)) over [0, 1], accurate to tol.
// Requires 1 <= jLo < jHi <= n-1.
func (e *Engine) AssuranceInInterval(jLo, jHi, n int, tol float64) (float64, error) {
	if err := e.validSampleCount(n); err != nil {
		return 0, err
	}
	if jLo < 1 || jLo > n-1 || jHi < 1 || jHi > n-1 {
		e.diag.Error("places out of range", "jLo", jLo, "jHi", jHi, "n", n)
		return 0, fmt.Errorf("places (%d, %d) must be in [1, %d]: %w",
			jLo, jHi, n-1, ports.ErrInvalidInput)
	}
	if jLo >= jHi {
		e.diag.Error("places not ordered", "jLo", jLo, "jHi", jHi)
		return 0, fmt.Errorf("place %d must be below %d: %w", jLo, jHi, ports.ErrInvalidInput)
	}
	if tol <= 0 {
		tol = DefaultTol
	}

	a, err := e.root.Solve(func(x float64) float64 {
		hi := e.ConfidenceAtPlace(jHi, n, x)
		lo := e.ConfidenceAtPlace(jLo, n, 1-x)
		return math.Min(hi, 1-lo) - x
	}, 0, 1, tol)
	if err != nil {
		return 0, fmt.Errorf("assurance in interval (%d, %d) of %d: %w", jLo, jHi, n, err)
	}
	return a, nil
}
