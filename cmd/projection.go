package cmd

import (
	"fmt"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/planner"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagExpenseGrowth int
	flagHorizon       int
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Project income growth against the safety target month by month",
	RunE:  runProjection,
}

func init() {
	projectionCmd.Flags().IntVar(&flagExpenseGrowth, "expense-growth", 0, "Monthly expense growth rate in percent")
	projectionCmd.Flags().IntVar(&flagHorizon, "months", 0, "Months to project (default: auto, max 24)")
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	state := st.State()
	if !planner.HasValues(state) {
		fmt.Println("\n  Nothing to project yet. Run `freedom setup` first.")
		return nil
	}

	expenseGrowth := flagExpenseGrowth
	if expenseGrowth == 0 {
		expenseGrowth = cfg.Projection.ExpenseGrowthRate
	}

	proj := planner.Project(state, planner.Options{
		ExpenseGrowthRate: expenseGrowth,
		Horizon:           flagHorizon,
	})
	cur := state.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GROWTH PROJECTION  %d%%/mo MRR", state.GrowthRate)))
	fmt.Println()

	rows := make([][]string, 0, len(proj.Points))
	for _, p := range proj.Points {
		label := fmt.Sprintf("M%d", p.Month)
		if p.Month == 0 {
			label = "Now"
		}
		marker := ""
		if p.Month == proj.FreedomMonth {
			marker = "← freedom point"
		}
		rows = append(rows, []string{
			label,
			cli.FormatMoney(p.MRR, cur),
			cli.FormatMoney(p.Income, cur),
			cli.FormatMoney(p.Expenses, cur),
			cli.FormatMoney(p.SafetyTarget, cur),
			marker,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "MRR", "Income", "Expenses", "Target", ""},
		Rows:    rows,
	}))

	// Income trend at a glance
	values := make([]float64, len(proj.Points))
	for i, p := range proj.Points {
		values[i] = p.Income
	}
	sparkStyle := lipgloss.NewStyle().Foreground(cli.ColorBlue)
	fmt.Printf("\n  Income   %s\n", sparkStyle.Render(cli.RenderSparkline(values)))

	if proj.FreedomMonth == model.MonthsUnreachable {
		warn := lipgloss.NewStyle().Foreground(cli.ColorOrange)
		fmt.Printf("  %s\n\n", warn.Render("Safety target not reached in this projection."))
	} else if proj.FreedomMonth == 0 {
		ok := lipgloss.NewStyle().Foreground(cli.ColorGreen)
		fmt.Printf("  %s\n\n", ok.Render("Already at the safety target."))
	} else {
		ok := lipgloss.NewStyle().Foreground(cli.ColorGreen)
		fmt.Printf("  %s\n\n", ok.Render(fmt.Sprintf("Freedom point in month %d.", proj.FreedomMonth)))
	}

	return nil
}
