package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/adapters/bbolt"
	"github.com/rkeating/reli/internal/adapters/brent"
	"github.com/rkeating/reli/internal/adapters/diag"
	"github.com/rkeating/reli/internal/adapters/dist"
	"github.com/rkeating/reli/internal/app"
	"github.com/rkeating/reli/internal/domain/binomial"
	"github.com/rkeating/reli/internal/domain/orderstat"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "reli",
	Short: "reli — reliability statistics from test results",
	Long:  "Binomial confidence, reliability and assurance from pass/fail counts, plus distribution-free quantile, tolerance and assurance intervals from sample data.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// newService wires the engines plus the project history store. A store that
// cannot be opened degrades to no recording rather than blocking the
// computation.
func newService() *app.Service {
	root := projectRoot()
	level := "error"
	if verbose {
		level = "debug"
	}
	dg := diag.New(level)

	var store *bbolt.Store
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err == nil {
		if s, err := bbolt.NewStore(paths.DB); err == nil {
			store = s
		} else {
			dg.Error("history store unavailable", "err", err)
		}
	}

	d := dist.New()
	r := brent.New()
	b := binomial.NewEngine(d, r, dg)
	o := orderstat.NewEngine(d, r, dg)
	if store == nil {
		return app.NewService(b, o, nil, filepath.Base(root), dg)
	}
	return app.NewService(b, o, store, filepath.Base(root), dg)
}

// loadSettings reads .reli.yaml from the project root, with flag overrides
// applied by the caller.
func loadSettings() (app.Settings, error) {
	return app.LoadSettings(filepath.Join(projectRoot(), app.SettingsFile))
}

// argInt parses a required positional integer argument.
func argInt(name, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, val)
	}
	return n, nil
}

// argFloat parses a required positional float argument.
func argFloat(name, val string) (float64, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, val)
	}
	return v, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug diagnostics")

	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(reliabilityCmd)
	rootCmd.AddCommand(assuranceCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(toleranceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wipeCmd)
}
