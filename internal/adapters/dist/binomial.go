// Package dist implements the ports.Distribution interface on stdlib math.
// The binomial CDF goes through the regularized incomplete beta function
// (continued fraction, modified Lentz), which stays accurate for n well past
// 1e5 and for p near 0 or 1 — direct mass summation loses precision and
// costs O(n) there.
package dist

import "math"

// Binomial evaluates binomial tail probabilities and the normal quantile.
// Stateless; the zero value is ready to use.
type Binomial struct{}

// New returns a Distribution backed by incomplete-beta evaluation.
func New() *Binomial {
	return &Binomial{}
}

// BinomCDF returns P(X <= k) for X ~ Binomial(n, p).
func (*Binomial) BinomCDF(k, n int, p float64) float64 {
	switch {
	case k < 0:
		return 0
	case k >= n:
		return 1
	case p <= 0:
		return 1
	case p >= 1:
		return 0
	}
	// P(X <= k; n, p) = I_{1-p}(n-k, k+1)
	return regIncompleteBeta(float64(n-k), float64(k+1), 1-p)
}

// BinomSF returns P(X > k) for X ~ Binomial(n, p).
func (b *Binomial) BinomSF(k, n int, p float64) float64 {
	return 1 - b.BinomCDF(k, n, p)
}

// BinomPMF returns P(X == k) for X ~ Binomial(n, p), computed in log space
// so large n cannot overflow the binomial coefficient.
func (*Binomial) BinomPMF(k, n int, p float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	if p <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if p >= 1 {
		if k == n {
			return 1
		}
		return 0
	}
	ln := lnChoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p)
	return math.Exp(ln)
}

func lnChoose(n, k int) float64 {
	lg := func(x int) float64 {
		v, _ := math.Lgamma(float64(x) + 1)
		return v
	}
	return lg(n) - lg(k) - lg(n-k)
}

// regIncompleteBeta returns I_x(a, b), the regularized incomplete beta
// function, via the continued fraction expansion. The symmetry relation
// I_x(a,b) = 1 - I_{1-x}(b,a) keeps the fraction in its fast-converging
// region.
func regIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lgab, _ := math.Lgamma(a + b)
	lga, _ := math.Lgamma(a)
	lgb, _ := math.Lgamma(b)
	front := math.Exp(lgab - lga - lgb + a*math.Log(x) + b*math.Log1p(-x))
	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the continued fraction for the incomplete
// beta function by the modified Lentz method.
func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3e-16
		tiny          = 1e-300 // floor to avoid division blow-up
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		m2 := float64(2 * m)
		mf := float64(m)

		// Even step
		aa := mf * (b - mf) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		// Odd step
		aa = -(a + mf) * (qab + mf) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta

		if math.Abs(delta-1) <= epsilon {
			return h
		}
	}
	// Converges within ~100 iterations for all binomial-CDF arguments;
	// the partial value is still correct to near machine precision.
	return h
}
