package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/store"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a planner field",
}

var setExpenseCmd = &cobra.Command{
	Use:   "expense <category> <amount>",
	Short: "Set a monthly expense (rent, food, transport, subscriptions, other)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		cat, err := model.ParseExpenseCategory(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			return st.UpdateExpense(cat, cli.ParseAmount(args[1]))
		})
	},
}

var setIncomeCmd = &cobra.Command{
	Use:   "income <source> <amount>",
	Short: "Set a monthly income source (mrr, freelance, passive, salary)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := model.ParseIncomeSource(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			return st.UpdateIncome(src, cli.ParseAmount(args[1]))
		})
	},
}

var setGrowthCmd = &cobra.Command{
	Use:   "growth <percent>",
	Short: "Set the monthly MRR growth rate (0-30)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		rate, err := strconv.Atoi(args[0])
		if err != nil {
			rate = 0
		}
		return withStore(func(st *store.Store) error {
			return st.SetGrowthRate(rate)
		})
	},
}

var setCurrencyCmd = &cobra.Command{
	Use:   "currency <code>",
	Short: "Set the display currency without converting amounts (see `freedom convert`)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cur, err := model.ParseCurrency(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			return st.SetCurrency(cur)
		})
	},
}

var setBufferCmd = &cobra.Command{
	Use:   "buffer <on|off>",
	Short: "Toggle the 25% safety buffer on the freedom target",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var on bool
		switch strings.ToLower(args[0]) {
		case "on", "true", "yes", "1":
			on = true
		case "off", "false", "no", "0":
			on = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		return withStore(func(st *store.Store) error {
			return st.SetUseBuffer(on)
		})
	},
}

var setSavingsCmd = &cobra.Command{
	Use:   "savings <amount>",
	Short: "Override the savings used for runway (0 = assume 3x expenses)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			return st.SetUserSavings(cli.ParseAmount(args[0]))
		})
	},
}

var setWarChestCmd = &cobra.Command{
	Use:   "warchest <amount>",
	Short: "Set an extra monthly surplus goal on top of expenses",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			return st.SetWarChest(cli.ParseAmount(args[0]))
		})
	},
}

func init() {
	setCmd.AddCommand(setExpenseCmd, setIncomeCmd, setGrowthCmd, setCurrencyCmd,
		setBufferCmd, setSavingsCmd, setWarChestCmd)
	rootCmd.AddCommand(setCmd)
}

// withStore opens the store, runs fn, then prints the one-line result.
func withStore(fn func(*store.Store) error) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := fn(st); err != nil {
		return err
	}

	if !flagQuiet {
		state := st.State()
		fmt.Printf("  Saved. Expenses %s · Income %s\n",
			cli.FormatMoney(state.Expenses.Total(), state.Currency),
			cli.FormatMoney(state.Income.Total(), state.Currency))
	}
	return nil
}
