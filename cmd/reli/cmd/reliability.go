package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/domain/binomial"
)

var (
	reliabilityClosed bool
	reliabilityTol    float64
	reliabilityLot    int
)

var reliabilityCmd = &cobra.Command{
	Use:   "reliability N F C",
	Short: "Reliability demonstrated at confidence C after N tests with F failures",
	Args:  cobra.ExactArgs(3),
	RunE:  runReliability,
}

func init() {
	reliabilityCmd.Flags().BoolVar(&reliabilityClosed, "closed", false, "Use the closed-form Wilson score bound instead of the exact solve")
	reliabilityCmd.Flags().Float64Var(&reliabilityTol, "tol", binomial.DefaultTol, "Root-finding accuracy")
	reliabilityCmd.Flags().IntVarP(&reliabilityLot, "lot", "m", 0, "Remaining lot size for finite-population reliability")
}

func runReliability(cmd *cobra.Command, args []string) error {
	n, err := argInt("N", args[0])
	if err != nil {
		return err
	}
	f, err := argInt("F", args[1])
	if err != nil {
		return err
	}
	c, err := argFloat("C", args[2])
	if err != nil {
		return err
	}

	svc := newService()

	switch {
	case cmd.Flags().Changed("lot"):
		reli, achieved, err := svc.Binomial.FiniteReliability(n, f, c, reliabilityLot)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ reliability %s%s at confidence %s (lot of %d)\n",
			colorBold, pct(reli), colorReset, pct(achieved), reliabilityLot)
		svc.RecordQuery("reliability",
			map[string]float64{"n": float64(n), "f": float64(f), "c": c, "m": float64(reliabilityLot)},
			map[string]float64{"reliability": reli, "confidence": achieved})

	case reliabilityClosed:
		reli, err := svc.Binomial.ReliabilityClosed(n, f, c)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ reliability %s%s at confidence %s (closed form)\n", colorBold, pct(reli), colorReset, pct(c))
		svc.RecordQuery("reliability",
			map[string]float64{"n": float64(n), "f": float64(f), "c": c},
			map[string]float64{"reliability": reli})

	default:
		reli, err := svc.Binomial.Reliability(n, f, c, reliabilityTol)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ reliability %s%s at confidence %s\n", colorBold, pct(reli), colorReset, pct(c))
		svc.RecordQuery("reliability",
			map[string]float64{"n": float64(n), "f": float64(f), "c": c},
			map[string]float64{"reliability": reli})
	}
	return nil
}
