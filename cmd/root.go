// Package cmd implements the freedom CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/freedom/internal/config"
	"github.com/theirongolddev/freedom/internal/rates"
	"github.com/theirongolddev/freedom/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagOffline bool
)

var rootCmd = &cobra.Command{
	Use:   "freedom",
	Short: "Side-project financial freedom calculator",
	Long:  "Track monthly expenses and income, and find out when your side income can replace your job.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Planner data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Use the built-in fallback exchange rates")
}

// loadConfig applies the --data-dir override on top of the config file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openStore opens the planner database for the effective config.
func openStore(cfg config.Config) (*store.Store, error) {
	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening planner data: %w", err)
	}
	return st, nil
}

// rateResolver picks the rate source: live client unless offline.
func rateResolver(cfg config.Config) rates.Resolver {
	if flagOffline || cfg.Rates.Offline {
		return rates.Fallback{}
	}
	return rates.NewClient(cfg.Rates.BaseURL)
}
