package cmd

import (
	"fmt"

	"github.com/theirongolddev/freedom/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Planner db:     %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Rates]")
	fmt.Printf("    API base URL: %s\n", cfg.Rates.BaseURL)
	fmt.Printf("    Offline:      %v\n", cfg.Rates.Offline)
	fmt.Println()

	fmt.Println("  [Projection]")
	fmt.Printf("    Expense growth: %d%%/mo\n", cfg.Projection.ExpenseGrowthRate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `freedom setup` to enter your numbers.")
	return nil
}
