package cmd

import (
	"fmt"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/planner"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show all derived freedom metrics",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	state := st.State()
	m := planner.Compute(state)
	cur := state.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("FREEDOM PLAN"))
	fmt.Println()

	if !m.HasValues {
		fmt.Println("  Nothing entered yet.")
		fmt.Println("  Run `freedom setup` or `freedom set expense rent 1200` to begin.")
		fmt.Println()
		return nil
	}

	deficitStr := cli.FormatMoney(m.MonthlyDeficit, cur)
	if m.Ready {
		deficitStr = fmt.Sprintf("none (+%s surplus)", cli.FormatMoney(m.Surplus, cur))
	}

	bufferStr := cli.FormatMoney(m.SafetyBuffer, cur)
	if !state.UseBuffer {
		bufferStr = "off"
	}

	rows := [][]string{
		{"Monthly Expenses", cli.FormatMoney(m.TotalExpenses, cur)},
		{"Safety Buffer (25%)", bufferStr},
		{"War Chest", cli.FormatMoney(state.WarChest, cur)},
		{"Freedom Number", cli.FormatMoney(m.FreedomNumber, cur)},
		{"---"},
		{"Monthly Income", cli.FormatMoney(m.TotalIncome, cur)},
		{"MRR", fmt.Sprintf("%s (+%d%%/mo)", cli.FormatMoney(state.Income.MRR, cur), state.GrowthRate)},
		{"Monthly Deficit", deficitStr},
		{"---"},
		{"Months to Freedom", cli.FormatMonths(m.MonthsToFreedom)},
		{"Runway", cli.FormatMonths(m.RunwayMonths)},
		{"Savings Assumed", cli.FormatMoney(m.SavingsUsed, cur)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Freedom score  %s\n", cli.RenderFreedomBar(m.FreedomPercentage, 30))
	fmt.Println()

	msgStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)
	if m.Ready {
		msgStyle = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	}
	fmt.Printf("  %s\n\n", msgStyle.Render(cli.FreedomMessage(m, cur)))

	return nil
}
