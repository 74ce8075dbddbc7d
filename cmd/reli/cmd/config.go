package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows project root, history DB path, and effective interval settings.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	settingsPath := filepath.Join(root, app.SettingsFile)

	cfg, err := app.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	settingsStatus := fmt.Sprintf("%sdefaults%s", colorGray, colorReset)
	if _, err := os.Stat(settingsPath); err == nil {
		settingsStatus = fmt.Sprintf("%s%s%s", colorGreen, settingsPath, colorReset)
	}

	fmt.Printf("%s⚡ reli config%s\n", colorBold, colorReset)
	fmt.Printf("  Project:    %s\n", filepath.Base(root))
	fmt.Printf("  Root:       %s\n", root)
	fmt.Printf("  DB:         %s\n", paths.DB)
	fmt.Printf("  Settings:   %s\n", settingsStatus)
	fmt.Printf("  Quantile:   %g\n", cfg.Quantile)
	fmt.Printf("  Confidence: %g\n", cfg.Confidence)
	fmt.Printf("  Fraction:   %g\n", cfg.Fraction)
	fmt.Printf("  Assurance:  %g\n", cfg.Assurance)
	fmt.Printf("  Tol:        %g\n", cfg.Tol)
	return nil
}
