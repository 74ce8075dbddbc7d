package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkeating/reli/internal/adapters/bbolt"
	"github.com/rkeating/reli/internal/app"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear all recorded history for this project",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	if !wipeForce {
		fmt.Printf("⚠ This will delete all reli history for %s. Continue? [y/N] ", filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	paths := app.NewPaths(root)
	if _, err := os.Stat(paths.DB); os.IsNotExist(err) {
		fmt.Println("⚡ no history to wipe")
		return nil
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.DeleteProject(filepath.Base(root)); err != nil {
		return err
	}

	fmt.Println("⚡ history wiped")
	return nil
}
