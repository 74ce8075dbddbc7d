package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var confidenceLot int

var confidenceCmd = &cobra.Command{
	Use:   "confidence N F R",
	Short: "Confidence that reliability is at least R after N tests with F failures",
	Args:  cobra.ExactArgs(3),
	RunE:  runConfidence,
}

func init() {
	confidenceCmd.Flags().IntVarP(&confidenceLot, "lot", "m", 0, "Remaining lot size for finite-population confidence")
}

func runConfidence(cmd *cobra.Command, args []string) error {
	n, err := argInt("N", args[0])
	if err != nil {
		return err
	}
	f, err := argInt("F", args[1])
	if err != nil {
		return err
	}
	r, err := argFloat("R", args[2])
	if err != nil {
		return err
	}

	svc := newService()

	if cmd.Flags().Changed("lot") {
		conf, actualR, err := svc.Binomial.FiniteConfidence(n, f, r, confidenceLot)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ confidence %s%s at reliability %s (lot of %d)\n",
			colorBold, pct(conf), colorReset, pct(actualR), confidenceLot)
		svc.RecordQuery("confidence",
			map[string]float64{"n": float64(n), "f": float64(f), "r": r, "m": float64(confidenceLot)},
			map[string]float64{"confidence": conf, "actual_r": actualR})
		return nil
	}

	conf, err := svc.Binomial.Confidence(n, f, r)
	if err != nil {
		return err
	}
	fmt.Printf("%s⚡ confidence %s%s at reliability %s\n", colorBold, pct(conf), colorReset, pct(r))
	svc.RecordQuery("confidence",
		map[string]float64{"n": float64(n), "f": float64(f), "r": r},
		map[string]float64{"confidence": conf})
	return nil
}
