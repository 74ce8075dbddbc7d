package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/app"
)

var (
	intervalQuantile   float64
	intervalConfidence float64
)

var intervalCmd = &cobra.Command{
	Use:   "interval FILE",
	Short: "Quantile confidence interval from a samples file",
	Long:  "Reads sample values from FILE and prints the narrowest pair of sample values that brackets the chosen quantile at the chosen confidence.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterval,
}

func init() {
	intervalCmd.Flags().Float64VarP(&intervalQuantile, "quantile", "q", 0, "Quantile to bracket (default from settings, 0.5)")
	intervalCmd.Flags().Float64VarP(&intervalConfidence, "confidence", "c", 0, "Confidence level (default from settings, 0.95)")
}

func runInterval(cmd *cobra.Command, args []string) error {
	samples, err := app.LoadSamples(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("quantile") {
		cfg.Quantile = intervalQuantile
	}
	if cmd.Flags().Changed("confidence") {
		cfg.Confidence = intervalConfidence
	}

	svc := newService()

	places, err := svc.Order.QuantileIntervalPlaces(len(samples), cfg.Quantile, cfg.Confidence)
	if err != nil {
		return err
	}
	bounds, err := svc.Order.QuantileIntervalOf(cfg.Quantile, cfg.Confidence, samples)
	if err != nil {
		return err
	}

	fmt.Printf("%s⚡ q=%g interval [%g, %g]%s at %s confidence  %splaces %d–%d of %d%s\n",
		colorBold, cfg.Quantile, bounds.Lo, bounds.Hi, colorReset,
		pct(cfg.Confidence),
		colorGray, places.Lo, places.Hi, len(samples), colorReset)

	svc.RecordQuery("interval",
		map[string]float64{"n": float64(len(samples)), "quantile": cfg.Quantile, "confidence": cfg.Confidence},
		map[string]float64{"lo": bounds.Lo, "hi": bounds.Hi})
	return nil
}
