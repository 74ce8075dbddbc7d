package cmd

import (
	"fmt"
	"strings"

	"github.com/rkeating/reli/internal/app"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// pct renders a probability as a percentage with one decimal.
func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// formatReport renders a full interval analysis for terminal display.
//
//	⚡ 30 samples
//	  median (95%):     [14.0, 24.0]  places 10–19
//	  tolerance 80/95:  [11.0, 38.0]  places 2–30
//	  assurance 80%:    [12.0, 37.0]  places 3–29
//	  mean (95%):       [16.9, 22.1]
func formatReport(rep *app.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d samples%s\n", colorBold, rep.N, colorReset))

	writeLine := func(label string, res app.IntervalResult) {
		if res.Err != nil {
			sb.WriteString(fmt.Sprintf("  %-18s%s%v%s\n", label, colorYellow, res.Err, colorReset))
			return
		}
		sb.WriteString(fmt.Sprintf("  %-18s%s[%g, %g]%s  %splaces %d–%d%s\n",
			label,
			colorCyan, res.Bounds.Lo, res.Bounds.Hi, colorReset,
			colorGray, res.Places.Lo, res.Places.Hi, colorReset))
	}

	q := rep.Settings.Quantile
	qLabel := fmt.Sprintf("q=%.2g (%s):", q, pct(rep.Settings.Confidence))
	if q == 0.5 {
		qLabel = fmt.Sprintf("median (%s):", pct(rep.Settings.Confidence))
	}
	writeLine(qLabel, rep.Quantile)
	writeLine(fmt.Sprintf("tolerance %.0f/%.0f:", rep.Settings.Fraction*100, rep.Settings.Confidence*100), rep.Tolerance)
	writeLine(fmt.Sprintf("assurance %s:", pct(rep.Settings.Assurance)), rep.Assurance)

	if rep.MeanErr != nil {
		sb.WriteString(fmt.Sprintf("  %-18s%s%v%s\n", "mean:", colorYellow, rep.MeanErr, colorReset))
	} else {
		sb.WriteString(fmt.Sprintf("  %-18s%s[%.4g, %.4g]%s\n",
			fmt.Sprintf("mean (%s):", pct(rep.Settings.Confidence)),
			colorCyan, rep.Mean.Lo, rep.Mean.Hi, colorReset))
	}

	return sb.String()
}
