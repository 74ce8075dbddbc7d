package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded computations for this project",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum records to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	svc := newService()
	if svc.Store == nil {
		return fmt.Errorf("history store unavailable")
	}

	recs, err := svc.Store.ListRecords(svc.Project, historyLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("⚡ no history")
		return nil
	}

	fmt.Printf("%s⚡ %d records%s\n", colorBold, len(recs), colorReset)
	for _, rec := range recs {
		when := time.Unix(rec.At, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %s%s%s  %s%-12s%s %s → %s\n",
			colorGray, when, colorReset,
			colorCyan, rec.Kind, colorReset,
			formatValues(rec.Inputs), formatValues(rec.Outputs))
	}
	return nil
}

// formatValues renders a value map as "k=v k=v" with sorted keys.
func formatValues(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%g", k, m[k]))
	}
	return strings.Join(parts, " ")
}
