package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/domain/binomial"
)

var (
	assuranceFailures int
	assuranceTol      float64
	assuranceLot      int
)

var assuranceCmd = &cobra.Command{
	Use:   "assurance N",
	Short: "Assurance (equal confidence and reliability) after N tests",
	Long:  "The level x where demonstrated reliability x is backed by confidence x. With 22 passing tests the assurance is 90%.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssurance,
}

func init() {
	assuranceCmd.Flags().IntVarP(&assuranceFailures, "failures", "f", 0, "Number of failed tests")
	assuranceCmd.Flags().Float64Var(&assuranceTol, "tol", binomial.DefaultTol, "Root-finding accuracy")
	assuranceCmd.Flags().IntVarP(&assuranceLot, "lot", "m", 0, "Remaining lot size for finite-population assurance")
}

func runAssurance(cmd *cobra.Command, args []string) error {
	n, err := argInt("N", args[0])
	if err != nil {
		return err
	}

	svc := newService()

	if cmd.Flags().Changed("lot") {
		res, err := svc.Binomial.FiniteAssurance(n, assuranceFailures, assuranceLot)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ assurance %s%s (reliability %s, confidence %s, lot of %d)\n",
			colorBold, pct(res.Assurance), colorReset, pct(res.Reliability), pct(res.Confidence), assuranceLot)
		svc.RecordQuery("assurance",
			map[string]float64{"n": float64(n), "f": float64(assuranceFailures), "m": float64(assuranceLot)},
			map[string]float64{"assurance": res.Assurance, "reliability": res.Reliability, "confidence": res.Confidence})
		return nil
	}

	a, err := svc.Binomial.Assurance(n, assuranceFailures, assuranceTol)
	if err != nil {
		return err
	}
	fmt.Printf("%s⚡ assurance %s%s after %d tests, %d failures\n", colorBold, pct(a), colorReset, n, assuranceFailures)
	svc.RecordQuery("assurance",
		map[string]float64{"n": float64(n), "f": float64(assuranceFailures)},
		map[string]float64{"assurance": a})
	return nil
}
