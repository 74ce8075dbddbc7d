package dist

import "math"

// Acklam's rational approximation to the inverse standard normal CDF.
// Relative error below 1.15e-9 over the full open interval, which is far
// tighter than the Wilson closed form it feeds (itself a ~5% approximation).
var (
	nqA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	nqB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	nqC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	nqD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

// NormalQuantile returns the inverse standard normal CDF at c.
// c <= 0 yields -Inf, c >= 1 yields +Inf.
func (*Binomial) NormalQuantile(c float64) float64 {
	const lowBreak = 0.02425
	switch {
	case c <= 0:
		return math.Inf(-1)
	case c >= 1:
		return math.Inf(1)
	case c < lowBreak:
		return -tailQuantile(c)
	case c > 1-lowBreak:
		return tailQuantile(1 - c)
	}
	q := c - 0.5
	r := q * q
	num := ((((nqA[0]*r+nqA[1])*r+nqA[2])*r+nqA[3])*r + nqA[4]) * r
	num = (num + nqA[5]) * q
	den := ((((nqB[0]*r+nqB[1])*r+nqB[2])*r+nqB[3])*r+nqB[4])*r + 1
	return num / den
}

// tailQuantile evaluates the lower-tail branch at probability p < 0.02425,
// returning the magnitude of the (negative) quantile.
func tailQuantile(p float64) float64 {
	q := math.Sqrt(-2 * math.Log(p))
	num := ((((nqC[0]*q+nqC[1])*q+nqC[2])*q+nqC[3])*q+nqC[4])*q + nqC[5]
	den := (((nqD[0]*q+nqD[1])*q+nqD[2])*q+nqD[3])*q + 1
	return -num / den
}
