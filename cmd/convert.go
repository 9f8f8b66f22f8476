package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/rates"
	"github.com/theirongolddev/freedom/internal/store"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <currency>",
	Short: "Convert all amounts to another currency (USD, NGN, GBP, EUR)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	target, err := model.ParseCurrency(strings.ToUpper(args[0]))
	if err != nil {
		return err
	}

	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	base := st.State().Currency
	if base == target {
		if !flagQuiet {
			fmt.Printf("  Already in %s.\n", target)
		}
		return nil
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching %s rates...\n", base)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := st.Convert(ctx, rateResolver(cfg), target); err != nil {
		if errors.Is(err, rates.ErrUnsupportedCurrency) {
			return fmt.Errorf("no exchange rate for %s: %w", target, err)
		}
		if errors.Is(err, store.ErrConversionSuperseded) {
			return nil
		}
		return err
	}

	if !flagQuiet {
		state := st.State()
		fmt.Printf("  Converted %s → %s. Expenses %s · Income %s\n",
			base, target,
			cli.FormatMoney(state.Expenses.Total(), state.Currency),
			cli.FormatMoney(state.Income.Total(), state.Currency))
	}
	return nil
}
