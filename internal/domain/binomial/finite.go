package binomial

import (
	"fmt"
	"math"

	"github.com/rkeating/reli/internal/ports"
)

// Finite-population forms. The population has fixed size n+m: n units
// tested, m remaining. Achievable reliability is restricted to the rational
// values k/(n+m), so the requested r is snapped to the nearest realizable
// level and the snapped value is reported back alongside each result.

// FiniteResult is the outcome of a finite-population evaluation. Reliability
// and Confidence are the values actually used, which may differ from the
// request due to discretization.
type FiniteResult struct {
	Assurance   float64
	Reliability float64
	Confidence  float64
}

// FiniteConfidence returns the confidence that reliability of the whole
// population of n+m units is at least r, given f observed failures in the n
// tested, together with the snapped reliability actually evaluated.
func (e *Engine) FiniteConfidence(n, f int, r float64, m int) (conf, actualR float64, err error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, r, err
	}
	if err := validProbability("r", r); err != nil {
		return 0, r, err
	}
	if m < 0 {
		return 0, r, fmt.Errorf("m=%d must be >= 0: %w", m, ports.ErrInvalidInput)
	}

	total := n + m
	maxFailures := int(math.Floor(float64(total) * (1 - r)))
	actualR = 1 - float64(maxFailures)/float64(total)

	budget := maxFailures - f // failures the remaining m units may still add
	switch {
	case budget < 0:
		// Already over the failure budget for level r.
		return 0, actualR, nil
	case budget >= m:
		// Even if every remaining unit fails, level r holds.
		return 1, actualR, nil
	}

	samples := m
	if budget == 0 {
		// Probability of exactly zero failures in m is not directly
		// evaluable here; shift to "at most 1 failure in m+1", which is
		// the same event on the inflated lot.
		samples++
		budget = 1
		total++
		actualR = 1 - float64(maxFailures)/float64(total)
	}

	needed := 1 - float64(budget)/float64(samples)
	e.diag.Debug("finite confidence reduced",
		"n", n, "f", f, "m", m, "budget", budget, "rNeeded", needed)
	return e.confidenceUnchecked(n, f, needed), actualR, nil
}

// FiniteReliability returns the highest snapped reliability whose confidence
// meets or exceeds c, scanning the m+1 realizable failure counts from best
// to worst, along with the confidence actually achieved. If no candidate
// reaches c the reliability is 0 and the returned confidence is the unmet
// request.
func (e *Engine) FiniteReliability(n, f int, c float64, m int) (reli, achievedC float64, err error) {
	if err := e.validTrial(n, f); err != nil {
		return 0, c, err
	}
	if err := validProbability("c", c); err != nil {
		return 0, c, err
	}
	if m < 0 {
		return 0, c, fmt.Errorf("m=%d must be >= 0: %w", m, ports.ErrInvalidInput)
	}

	// Confidence is lowest at the highest realizable reliability (zero
	// further failures) and rises as the bar drops. Take the first level
	// that clears c.
	total := n + m
	for f2 := 0; f2 <= m; f2++ {
		r := 1 - float64(f+f2)/float64(total)
		c2, r2, err := e.FiniteConfidence(n, f, r, m)
		if err != nil {
			return 0, c, err
		}
		if c2 >= c {
			return r2, c2, nil
		}
	}
	e.diag.Info("no finite reliability candidate met confidence",
		"n", n, "f", f, "m", m, "c", c)
	return 0, c, nil
}

// FiniteAssurance maximizes min(reliability, confidence) over the m+1
// realizable failure counts. The finite population restricts reliability to
// a countable set, so this is a discrete maximization rather than a fixed
// point; ties keep the first maximum found in increasing-failure order.
func (e *Engine) FiniteAssurance(n, f, m int) (FiniteResult, error) {
	if err := e.validTrial(n, f); err != nil {
		return FiniteResult{}, err
	}
	if m < 0 {
		return FiniteResult{}, fmt.Errorf("m=%d must be >= 0: %w", m, ports.ErrInvalidInput)
	}

	var best FiniteResult
	total := n + m
	for f2 := 0; f2 <= m; f2++ {
		r := 1 - float64(f+f2)/float64(total)
		c2, r2, err := e.FiniteConfidence(n, f, r, m)
		if err != nil {
			return FiniteResult{}, err
		}
		if a := math.Min(r2, c2); a > best.Assurance {
			best = FiniteResult{Assurance: a, Reliability: r2, Confidence: c2}
		}
	}
	return best, nil
}
