// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Distribution supplies the probability evaluations the engines need.
// Implementations must be pure, stateless, and deterministic, and must stay
// numerically stable for n up to at least 1e5 and p near 0 or 1.
type Distribution interface {
	// BinomCDF returns P(X <= k) for X ~ Binomial(n, p).
	// k < 0 yields 0; k >= n yields 1.
	BinomCDF(k, n int, p float64) float64

	// BinomSF returns P(X > k) for X ~ Binomial(n, p). Complement of BinomCDF.
	BinomSF(k, n int, p float64) float64

	// BinomPMF returns P(X == k) for X ~ Binomial(n, p).
	BinomPMF(k, n int, p float64) float64

	// NormalQuantile returns the inverse standard normal CDF at c, 0 < c < 1.
	NormalQuantile(c float64) float64
}

// RootFinder isolates a root of a continuous function that changes sign on
// [lo, hi]. Returns ErrNoBracket if f(lo) and f(hi) have the same nonzero
// sign. Callers are expected to guarantee the bracket by construction — a
// bracket failure here means a broken invariant upstream, and is treated as
// a hard error, never a sentinel.
type RootFinder interface {
	// Solve returns x in [lo, hi] with f(x) ~ 0, accurate to tol.
	Solve(f func(float64) float64, lo, hi, tol float64) (float64, error)
}

// Diagnostics is the injected logging sink for the engines. There is no
// process-wide logger; every engine receives its sink at construction.
type Diagnostics interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopDiagnostics discards all output. Engines fall back to it when handed a
// nil sink.
type NopDiagnostics struct{}

func (NopDiagnostics) Debug(string, ...any) {}
func (NopDiagnostics) Info(string, ...any)  {}
func (NopDiagnostics) Error(string, ...any) {}
