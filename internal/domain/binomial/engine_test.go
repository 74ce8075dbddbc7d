package binomial

import (
	"testing"

	"github.com/rkeating/reli/internal/adapters/brent"
	"github.com/rkeating/reli/internal/adapters/dist"
	"github.com/rkeating/reli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(dist.New(), brent.New(), nil)
}

// nfrc rows pair (n, f, r) with the exact confidence c. The same table
// drives the confidence, reliability, and closed-form tests.
var nfrc = []struct {
	n, f int
	r, c float64
}{
	{1, 0, 0.5, 0.5},
	{2, 0, 0.5, 0.75},
	{2, 1, 0.5, 0.25},
	{8, 0, 0.7, 0.942},
	{8, 0, 0.9, 0.570},
	{10, 9, 0.1, 0.349},
	{100, 10, 0.9, 0.417},
	{1000, 100, 0.9, 0.473},
	{10000, 1000, 0.9, 0.492},
}

func TestConfidence_Table(t *testing.T) {
	e := newTestEngine(t)
	for _, tc := range nfrc {
		c, err := e.Confidence(tc.n, tc.f, tc.r)
		require.NoError(t, err, "n=%d f=%d", tc.n, tc.f)
		assert.InDelta(t, tc.c, c, 0.001, "n=%d f=%d r=%g", tc.n, tc.f, tc.r)
	}
}

func TestConfidence_Boundaries(t *testing.T) {
	e := newTestEngine(t)

	c, err := e.Confidence(2, 2, 0.5)
	require.NoError(t, err)
	assert.Zero(t, c, "all trials failed")

	c, err = e.Confidence(20, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "reliability 0 is free")

	c, err = e.Confidence(20, 0, 1)
	require.NoError(t, err)
	assert.Zero(t, c, "perfect reliability is never certain")
}

func TestConfidence_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		name    string
		n, f    int
		r       float64
	}{
		{"f exceeds n", 2, 3, 0.5},
		{"r above 1", 2, 0, 2},
		{"negative f", 2, -2, 0.5},
		{"negative n", -2, 0, 0.5},
		{"negative r", 2, 0, -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Confidence(tc.n, tc.f, tc.r)
			assert.ErrorIs(t, err, ports.ErrInvalidInput)
		})
	}
}

func TestReliability_Duality(t *testing.T) {
	// reliability(n, f, confidence(n, f, r)) recovers r within tolerance.
	e := newTestEngine(t)
	for _, tc := range nfrc {
		c, err := e.Confidence(tc.n, tc.f, tc.r)
		require.NoError(t, err)
		r, err := e.Reliability(tc.n, tc.f, c, DefaultTol)
		require.NoError(t, err)
		assert.InDelta(t, tc.r, r, 0.001, "n=%d f=%d", tc.n, tc.f)
	}
}

func TestReliability_TightTolerance(t *testing.T) {
	e := newTestEngine(t)
	r, err := e.Reliability(20, 0, 0.9, 0.0001)
	require.NoError(t, err)
	assert.InDelta(t, 0.8912, r, 0.0001)
}

func TestReliability_AllFailed(t *testing.T) {
	e := newTestEngine(t)
	r, err := e.Reliability(4, 4, 0.5, DefaultTol)
	require.NoError(t, err)
	assert.Zero(t, r)
}

func TestReliability_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Reliability(2, -2, 0.5, DefaultTol)
	assert.ErrorIs(t, err, ports.ErrInvalidInput)
	_, err = e.Reliability(2, 0, -0.5, DefaultTol)
	assert.ErrorIs(t, err, ports.ErrInvalidInput)
}

func TestReliabilityClosed_WithinFivePercent(t *testing.T) {
	// The Wilson closed form is an approximation; keep the tolerance loose.
	e := newTestEngine(t)
	for _, tc := range nfrc {
		c, err := e.Confidence(tc.n, tc.f, tc.r)
		require.NoError(t, err)
		r, err := e.ReliabilityClosed(tc.n, tc.f, c)
		require.NoError(t, err)
		assert.InDelta(t, tc.r, r, 0.03, "n=%d f=%d", tc.n, tc.f)
	}
}

func TestAssurance_KnownValues(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		n, f     int
		tol, want float64
	}{
		{22, 0, 0.001, 0.900}, // the canonical 90/90 result
		{59, 0, 0.001, 0.950},
		{22, 2, 0.001, 0.812},
		{59, 6, 0.001, 0.842},
		{59, 10, 0.0001, 0.7798},
	}
	for _, tc := range cases {
		a, err := e.Assurance(tc.n, tc.f, tc.tol)
		require.NoError(t, err, "n=%d f=%d", tc.n, tc.f)
		assert.InDelta(t, tc.want, a, 0.001, "n=%d f=%d", tc.n, tc.f)
	}
}

func TestAssurance_FixedPoint(t *testing.T) {
	// confidence(n, f, assurance(n, f)) == assurance(n, f) within tol.
	e := newTestEngine(t)
	for _, tc := range []struct{ n, f int }{{22, 0}, {59, 6}, {100, 10}} {
		a, err := e.Assurance(tc.n, tc.f, DefaultTol)
		require.NoError(t, err)
		c, err := e.Confidence(tc.n, tc.f, a)
		require.NoError(t, err)
		assert.InDelta(t, a, c, 0.005, "n=%d f=%d", tc.n, tc.f)
	}
}

func TestAssurance_InvalidInput(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Assurance(2, -2, DefaultTol)
	assert.ErrorIs(t, err, ports.ErrInvalidInput)
	_, err = e.Assurance(-2, 0, DefaultTol)
	assert.ErrorIs(t, err, ports.ErrInvalidInput)
}

func TestConfidence_MonotoneInReliability(t *testing.T) {
	e := newTestEngine(t)
	prev := 2.0
	for i := 0; i <= 20; i++ {
		r := float64(i) / 20
		c, err := e.Confidence(50, 3, r)
		require.NoError(t, err)
		assert.LessOrEqual(t, c, prev, "confidence must not rise with r (r=%g)", r)
		prev = c
	}
}

func TestReliability_MonotoneInConfidence(t *testing.T) {
	e := newTestEngine(t)
	prev := 2.0
	for i := 1; i < 20; i++ {
		c := float64(i) / 20
		r, err := e.Reliability(50, 3, c, 0.0001)
		require.NoError(t, err)
		assert.LessOrEqual(t, r, prev+0.0002, "reliability must not rise with c (c=%g)", c)
		prev = r
	}
}
