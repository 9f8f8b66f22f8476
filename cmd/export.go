package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/planner"

	"github.com/spf13/cobra"
)

var (
	flagExportJSON bool
	flagExportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current plan as share text or JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagExportJSON, "json", false, "Emit the snapshot as JSON")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	state := st.State()
	snap := planner.Snapshot(state)

	// Every export also lands in the local history.
	if err := st.RecordSnapshot(planner.Compute(state), state.Currency); err != nil {
		return err
	}

	var out string
	if flagExportJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		out = string(data) + "\n"
	} else {
		out = cli.ShareText(snap) + "\n"
	}

	if flagExportOut != "" {
		if err := os.WriteFile(flagExportOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		if !flagQuiet {
			fmt.Printf("  Wrote %s\n", flagExportOut)
		}
		return nil
	}

	fmt.Print(out)
	return nil
}
