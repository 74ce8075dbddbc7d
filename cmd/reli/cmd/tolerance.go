package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/app"
)

var (
	toleranceFraction   float64
	toleranceConfidence float64
	toleranceAssurance  float64
)

var toleranceCmd = &cobra.Command{
	Use:   "tolerance FILE",
	Short: "Tolerance interval from a samples file",
	Long:  "Reads sample values from FILE and prints the pair of sample values containing at least the chosen middle fraction of the population at the chosen confidence. With --assurance, fraction and confidence share one level.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTolerance,
}

func init() {
	toleranceCmd.Flags().Float64VarP(&toleranceFraction, "fraction", "t", 0, "Middle population fraction to contain (default from settings, 0.8)")
	toleranceCmd.Flags().Float64VarP(&toleranceConfidence, "confidence", "c", 0, "Confidence level (default from settings, 0.95)")
	toleranceCmd.Flags().Float64VarP(&toleranceAssurance, "assurance", "a", 0, "Compute an assurance band at this level instead")
}

func runTolerance(cmd *cobra.Command, args []string) error {
	samples, err := app.LoadSamples(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fraction") {
		cfg.Fraction = toleranceFraction
	}
	if cmd.Flags().Changed("confidence") {
		cfg.Confidence = toleranceConfidence
	}

	svc := newService()
	n := len(samples)

	if cmd.Flags().Changed("assurance") {
		places, err := svc.Order.AssuranceIntervalPlaces(n, toleranceAssurance)
		if err != nil {
			return err
		}
		bounds, err := svc.Order.AssuranceIntervalOf(toleranceAssurance, samples)
		if err != nil {
			return err
		}
		fmt.Printf("%s⚡ assurance band [%g, %g]%s at %s  %splaces %d–%d of %d%s\n",
			colorBold, bounds.Lo, bounds.Hi, colorReset,
			pct(toleranceAssurance),
			colorGray, places.Lo, places.Hi, n, colorReset)
		svc.RecordQuery("assurance-band",
			map[string]float64{"n": float64(n), "assurance": toleranceAssurance},
			map[string]float64{"lo": bounds.Lo, "hi": bounds.Hi})
		return nil
	}

	places, err := svc.Order.ToleranceIntervalPlaces(n, cfg.Fraction, cfg.Confidence)
	if err != nil {
		return err
	}
	bounds, err := svc.Order.ToleranceIntervalOf(cfg.Fraction, cfg.Confidence, samples)
	if err != nil {
		return err
	}
	fmt.Printf("%s⚡ tolerance [%g, %g]%s holds %s of population at %s confidence  %splaces %d–%d of %d%s\n",
		colorBold, bounds.Lo, bounds.Hi, colorReset,
		pct(cfg.Fraction), pct(cfg.Confidence),
		colorGray, places.Lo, places.Hi, n, colorReset)
	svc.RecordQuery("tolerance",
		map[string]float64{"n": float64(n), "fraction": cfg.Fraction, "confidence": cfg.Confidence},
		map[string]float64{"lo": bounds.Lo, "hi": bounds.Hi})
	return nil
}
