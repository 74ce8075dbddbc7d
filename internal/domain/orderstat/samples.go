package orderstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/rkeating/reli/internal/ports"
)

// Mapping from 1-based places onto concrete sample values. Each function
// sorts a copy of the caller's data — the original ordering is never
// mutated — and indexes at (lo-1, hi-1).

// Bounds is a pair of sample values bracketing a quantile or fraction.
type Bounds struct {
	Lo float64
	Hi float64
}

func sortedCopy(samples []float64) []float64 {
	s := make([]float64, len(samples))
	copy(s, samples)
	sort.Float64s(s)
	return s
}

func (e *Engine) boundsAt(samples []float64, iv Interval) Bounds {
	s := sortedCopy(samples)
	return Bounds{Lo: s[iv.Lo-1], Hi: s[iv.Hi-1]}
}

// QuantileIntervalOf returns the sample values bracketing the q-th quantile
// of the data with confidence at least c.
func (e *Engine) QuantileIntervalOf(q, c float64, samples []float64) (Bounds, error) {
	iv, err := e.QuantileIntervalPlaces(len(samples), q, c)
	if err != nil {
		return Bounds{}, err
	}
	return e.boundsAt(samples, iv), nil
}

// MedianIntervalOf returns the sample values bracketing the median of the
// data with confidence at least c.
func (e *Engine) MedianIntervalOf(c float64, samples []float64) (Bounds, error) {
	return e.QuantileIntervalOf(0.5, c, samples)
}

// ToleranceIntervalOf returns the sample values bracketing the middle t
// fraction of the population with confidence at least c.
func (e *Engine) ToleranceIntervalOf(t, c float64, samples []float64) (Bounds, error) {
	iv, err := e.ToleranceIntervalPlaces(len(samples), t, c)
	if err != nil {
		return Bounds{}, err
	}
	return e.boundsAt(samples, iv), nil
}

// AssuranceIntervalOf returns the sample values of the self-consistent band:
// fraction a of the population with confidence a.
func (e *Engine) AssuranceIntervalOf(a float64, samples []float64) (Bounds, error) {
	return e.ToleranceIntervalOf(a, a, samples)
}

// MeanInterval returns the normal-approximation confidence interval of the
// population mean: mean +/- z*SEM with z taken at (1+c)/2. Uses the sample
// standard deviation (n-1 denominator). Requires at least two samples.
func (e *Engine) MeanInterval(c float64, samples []float64) (Bounds, error) {
	if err := e.validFraction("c", c); err != nil {
		return Bounds{}, err
	}
	n := len(samples)
	if n < 2 {
		return Bounds{}, fmt.Errorf("need at least 2 samples for a mean interval, got %d: %w",
			n, ports.ErrInvalidInput)
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range samples {
		d := v - mean
		ss += d * d
	}
	sem := math.Sqrt(ss / float64(n-1) / float64(n))

	z := e.dist.NormalQuantile((1 + c) / 2)
	return Bounds{Lo: mean - z*sem, Hi: mean + z*sem}, nil
}
