// reli computes reliability statistics from pass/fail test counts and
// sample measurements: binomial confidence, reliability, and assurance,
// plus distribution-free quantile, tolerance, and assurance intervals.
package main

import (
	"os"

	"github.com/rkeating/reli/cmd/reli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
