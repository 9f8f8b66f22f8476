package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/planner"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	state := st.State()

	fmt.Println()
	fmt.Println("  Welcome to freedom!")
	fmt.Println("  Enter monthly amounts. Blank keeps the current value.")
	fmt.Println()

	prompt := func(label string, current float64) float64 {
		fmt.Printf("  %s [%s] > ", label, cli.FormatMoney(current, state.Currency))
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return current
		}
		return cli.ParseAmount(input)
	}

	// 1. Expenses
	fmt.Println("  1. Expenses")
	for _, cat := range model.ExpenseCategories {
		v := prompt(fmt.Sprintf("%-13s", cat), state.Expenses.Get(cat))
		if err := st.UpdateExpense(cat, v); err != nil {
			return err
		}
	}
	fmt.Println()

	// 2. Income
	fmt.Println("  2. Income")
	for _, src := range model.IncomeSources {
		v := prompt(fmt.Sprintf("%-13s", src), state.Income.Get(src))
		if err := st.UpdateIncome(src, v); err != nil {
			return err
		}
	}
	fmt.Println()

	// 3. Growth rate
	fmt.Printf("  3. Monthly MRR growth rate, 0-30 [%d%%] > ", state.GrowthRate)
	growthIn, _ := reader.ReadString('\n')
	growthIn = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(growthIn), "%"))
	if growthIn != "" {
		rate, err := strconv.Atoi(growthIn)
		if err != nil {
			rate = 0
		}
		if err := st.SetGrowthRate(rate); err != nil {
			return err
		}
	}
	fmt.Println()

	// 4. Safety buffer
	fmt.Println("  4. Add a 25% safety buffer to the target?")
	fmt.Println("     (1) Yes [default]")
	fmt.Println("     (2) No")
	fmt.Print("     > ")
	bufIn, _ := reader.ReadString('\n')
	if err := st.SetUseBuffer(strings.TrimSpace(bufIn) != "2"); err != nil {
		return err
	}
	fmt.Println()

	// 5. Currency
	fmt.Println("  5. Currency")
	for i, c := range model.Currencies {
		def := ""
		if c == state.Currency {
			def = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, c, def)
	}
	fmt.Print("     > ")
	curIn, _ := reader.ReadString('\n')
	if idx, err := strconv.Atoi(strings.TrimSpace(curIn)); err == nil && idx >= 1 && idx <= len(model.Currencies) {
		if err := st.SetCurrency(model.Currencies[idx-1]); err != nil {
			return err
		}
	}

	final := st.State()
	m := planner.Compute(final)

	fmt.Println()
	fmt.Printf("  Done. Freedom number: %s · Income: %s\n",
		cli.FormatMoney(m.FreedomNumber, final.Currency),
		cli.FormatMoney(m.TotalIncome, final.Currency))
	fmt.Println("  Run `freedom` anytime to see the full plan.")
	fmt.Println()

	return nil
}
