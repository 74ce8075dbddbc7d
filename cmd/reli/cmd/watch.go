package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/rkeating/reli/internal/adapters/fsnotify"
	"github.com/rkeating/reli/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Recompute interval statistics whenever a samples file changes",
	Long:  "Watches FILE, recomputes the configured quantile, tolerance, assurance and mean intervals on each save, and records every run to history. Ctrl-C to stop.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	svc := newService()
	session := app.NewWatchSession(svc, watcher, args[0], cfg, func(rep *app.Report) {
		fmt.Print(formatReport(rep))
	})

	if err := session.Start(); err != nil {
		watcher.Stop()
		return err
	}
	defer session.Stop()

	fmt.Printf("%swatching %s%s\n", colorGray, args[0], colorReset)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println()
	return nil
}
