package orderstat

import (
	"testing"

	"github.com/rkeating/reli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantileIntervalPlaces_MedianTable(t *testing.T) {
	// Median intervals matching the textbook table at two-decimal confidences.
	e := newTestEngine(t)
	cases := []struct {
		n    int
		c    float64
		want Interval
	}{
		{5, 0.93, Interval{1, 5}},
		{8, 0.92, Interval{2, 7}},
		{11, 0.93, Interval{3, 9}},
		{14, 0.94, Interval{4, 11}},
		{17, 0.95, Interval{5, 13}},
		{20, 0.95, Interval{6, 15}},
	}
	for _, tc := range cases {
		got, err := e.QuantileIntervalPlaces(tc.n, 0.5, tc.c)
		require.NoError(t, err, "n=%d c=%g", tc.n, tc.c)
		assert.Equal(t, tc.want, got, "n=%d c=%g", tc.n, tc.c)
	}
}

func TestQuantileIntervalPlaces_Regression(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		n    int
		p, c float64
		want Interval
	}{
		{60, 0.8, 0.5, Interval{45, 50}},
		{60, 0.8, 0.6, Interval{45, 51}},
		{60, 0.8, 0.7, Interval{44, 51}},
		{60, 0.8, 0.8, Interval{45, 53}},
		{60, 0.8, 0.9, Interval{42, 53}},
		{60, 0.9, 0.7, Interval{52, 57}},
		{60, 0.9, 0.8, Interval{52, 58}},
		{60, 0.9, 0.9, Interval{50, 58}},
		{60, 0.9, 0.95, Interval{50, 59}},
		{60, 0.95, 0.95, Interval{52, 60}},
		{60, 0.8, 0.2, Interval{46, 48}},
		{60, 0.5, 0.5, Interval{26, 32}},
		{60, 0.5, 0.7, Interval{25, 34}},
		{60, 0.5, 0.8, Interval{24, 35}},
		{60, 0.5, 0.9, Interval{24, 37}},
		{60, 0.5, 0.95, Interval{22, 38}},
		{60, 0.5, 0.99, Interval{20, 40}},
	}
	for _, tc := range cases {
		got, err := e.QuantileIntervalPlaces(tc.n, tc.p, tc.c)
		require.NoError(t, err, "n=%d p=%g c=%g", tc.n, tc.p, tc.c)
		assert.Equal(t, tc.want, got, "n=%d p=%g c=%g", tc.n, tc.p, tc.c)
	}
}

func TestQuantileIntervalPlaces_ContainmentAndMinimality(t *testing.T) {
	e := newTestEngine(t)
	const (
		n = 20
		p = 0.5
		c = 0.95
	)
	got, err := e.QuantileIntervalPlaces(n, p, c)
	require.NoError(t, err)

	// Containment: the bracket's confidence gap covers the request.
	gap := e.ConfidenceAtPlace(got.Hi, n, p) - e.ConfidenceAtPlace(got.Lo, n, p)
	assert.GreaterOrEqual(t, gap, c)

	// Minimality: no bracket with the required confidence is narrower.
	for lo := 1; lo < n; lo++ {
		for hi := lo + 1; hi <= n; hi++ {
			g := e.ConfidenceAtPlace(hi, n, p) - e.ConfidenceAtPlace(lo, n, p)
			if g >= c {
				assert.GreaterOrEqual(t, hi-lo, got.Width(), "bracket (%d, %d)", lo, hi)
			}
		}
	}
}

func TestQuantileIntervalPlaces_Unsatisfiable(t *testing.T) {
	// Five samples cannot bracket the median at 99% confidence.
	e := newTestEngine(t)
	_, err := e.QuantileIntervalPlaces(5, 0.5, 0.99)
	assert.ErrorIs(t, err, ports.ErrUnsatisfiable)
}

func TestQuantileIntervalPlaces_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		name string
		n    int
		p, c float64
	}{
		{"too few samples", 2, 0.5, 0.9},
		{"quantile at 0", 20, 0, 0.9},
		{"quantile at 1", 20, 1, 0.9},
		{"confidence at 0", 20, 0.5, 0},
		{"confidence at 1", 20, 0.5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.QuantileIntervalPlaces(tc.n, tc.p, tc.c)
			assert.ErrorIs(t, err, ports.ErrInvalidInput)
		})
	}
}

func TestToleranceIntervalPlaces_Regression(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		n    int
		tf, c float64
		want Interval
	}{
		{60, 0.8, 0.5, Interval{5, 55}},
		{60, 0.8, 0.7, Interval{4, 56}},
		{60, 0.8, 0.8, Interval{5, 57}},
		{60, 0.8, 0.9, Interval{4, 58}},
		{60, 0.85, 0.85, Interval{4, 59}},
		{60, 0.9, 0.9, Interval{3, 60}},
		{120, 0.95, 0.95, Interval{2, 120}},
	}
	for _, tc := range cases {
		got, err := e.ToleranceIntervalPlaces(tc.n, tc.tf, tc.c)
		require.NoError(t, err, "n=%d t=%g c=%g", tc.n, tc.tf, tc.c)
		assert.Equal(t, tc.want, got, "n=%d t=%g c=%g", tc.n, tc.tf, tc.c)
	}
}

func TestToleranceIntervalPlaces_Construction(t *testing.T) {
	// The returned bracket is narrower than the full range and both sides
	// meet their stopping conditions: the upper place reaches confidence c
	// at quantile 0.5+t/2, and the place below lo reaches 1 - c/cHi at
	// quantile 0.5-t/2.
	e := newTestEngine(t)
	const (
		n  = 60
		tf = 0.8
		c  = 0.9
	)
	got, err := e.ToleranceIntervalPlaces(n, tf, c)
	require.NoError(t, err)
	assert.Less(t, got.Width(), n)

	cHi := e.ConfidenceAtPlace(got.Hi, n, 0.5+tf/2)
	assert.GreaterOrEqual(t, cHi, c)
	cLo := e.ConfidenceAtPlace(got.Lo-1, n, 0.5-tf/2)
	assert.GreaterOrEqual(t, cLo, 1-c/cHi)
}

func TestToleranceIntervalPlaces_Unsatisfiable(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ToleranceIntervalPlaces(20, 0.9, 0.9)
	assert.ErrorIs(t, err, ports.ErrUnsatisfiable)
}

func TestAssuranceIntervalPlaces(t *testing.T) {
	// Assurance interval is the tolerance interval with t = c = a.
	e := newTestEngine(t)
	got, err := e.AssuranceIntervalPlaces(60, 0.85)
	require.NoError(t, err)
	assert.Equal(t, Interval{4, 59}, got)

	_, err = e.AssuranceIntervalPlaces(20, 0.9)
	assert.ErrorIs(t, err, ports.ErrUnsatisfiable)
}

func TestAssuranceInInterval_KnownValues(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		jLo, jHi, n int
		want        float64
	}{
		{1, 15, 16, 0.818},
		{1, 37, 38, 0.901},
		{9, 28, 38, 0.686},
		{7, 30, 38, 0.731},
		{5, 32, 38, 0.777},
		{3, 34, 38, 0.824},
		{2, 36, 38, 0.874},
		{1, 93, 94, 0.951},
	}
	for _, tc := range cases {
		a, err := e.AssuranceInInterval(tc.jLo, tc.jHi, tc.n, DefaultTol)
		require.NoError(t, err, "(%d, %d) of %d", tc.jLo, tc.jHi, tc.n)
		assert.InDelta(t, tc.want, a, 0.001, "(%d, %d) of %d", tc.jLo, tc.jHi, tc.n)
	}
}

func TestAssuranceInInterval_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		name        string
		jLo, jHi, n int
	}{
		{"too few samples", 1, 2, 2},
		{"lo at zero", 0, 5, 10},
		{"hi at n", 1, 10, 10},
		{"reversed places", 7, 3, 10},
		{"equal places", 4, 4, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.AssuranceInInterval(tc.jLo, tc.jHi, tc.n, DefaultTol)
			assert.ErrorIs(t, err, ports.ErrInvalidInput)
		})
	}
}
