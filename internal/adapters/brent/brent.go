// Package brent implements the ports.RootFinder interface with Brent's
// method: inverse quadratic interpolation and secant steps, falling back to
// bisection whenever an interpolated step misbehaves. Convergence is
// guaranteed for any continuous function that changes sign on the bracket.
package brent

import (
	"fmt"
	"math"

	"github.com/rkeating/reli/internal/ports"
)

// maxIterations bounds the solve loop. Brent needs at most ~(log2((hi-lo)/tol))^2
// iterations; for a unit bracket at tol 1e-9 that is under 1000.
const maxIterations = 1000

// Solver implements ports.RootFinder. Stateless; the zero value is ready.
type Solver struct{}

// New returns a Brent-method root finder.
func New() *Solver {
	return &Solver{}
}

// Solve returns x in [lo, hi] with f(x) ~ 0, accurate to tol.
// Requires f(lo) and f(hi) to have opposite signs or be zero; otherwise
// returns ports.ErrNoBracket.
func (*Solver) Solve(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)

	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("f(%g)=%g, f(%g)=%g: %w", lo, fa, hi, fb, ports.ErrNoBracket)
	}

	// Keep b as the best estimate: |f(b)| <= |f(a)|.
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	d := 0.0
	bisected := true

	for i := 0; i < maxIterations; i++ {
		if fb == 0 || math.Abs(b-a) <= tol {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant
			s = b - fb*(b-a)/(fb-fa)
		}

		// Reject the interpolated step unless it lands strictly between
		// (3a+b)/4 and b and shrinks faster than bisection would.
		m := (3*a + b) / 4
		inBounds := (s > m && s < b) || (s < m && s > b)
		if !inBounds ||
			(bisected && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!bisected && math.Abs(s-b) >= math.Abs(c-d)/2) {
			s = (a + b) / 2
			bisected = true
		} else {
			bisected = false
		}

		fs := f(s)
		d, c, fc = c, b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return 0, fmt.Errorf("brent: no convergence after %d iterations on [%g, %g]", maxIterations, lo, hi)
}
