package cmd

import (
	"fmt"

	"github.com/theirongolddev/freedom/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded plan snapshots over time",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum snapshots to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListSnapshots(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("\n  No snapshots yet. `freedom export` records one each run.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PLAN HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.TakenAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(r.TotalIncome, r.Currency),
			cli.FormatMoney(r.FreedomNumber, r.Currency),
			cli.FormatPercent(r.FreedomPct),
			cli.FormatMonths(r.MonthsToFreedom),
			cli.FormatMonths(r.RunwayMonths),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Income", "Target", "Score", "To Freedom", "Runway"},
		Rows:    rows,
	}))

	// Score trend, oldest to newest
	values := make([]float64, len(records))
	for i, r := range records {
		values[len(records)-1-i] = float64(r.FreedomPct)
	}
	sparkStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent)
	fmt.Printf("\n  Score    %s\n\n", sparkStyle.Render(cli.RenderSparkline(values)))

	return nil
}
