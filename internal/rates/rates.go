// Package rates resolves currency exchange rate tables, falling back to a
// fixed table when the network source is unavailable.
package rates

import (
	"context"
	"errors"

	"github.com/theirongolddev/freedom/internal/model"
)

// ErrUnsupportedCurrency indicates a rate table has no entry for the
// requested target code. This is the one conversion failure that reaches
// the user; everything else degrades to the fallback table.
var ErrUnsupportedCurrency = errors.New("rates: unsupported target currency")

// Table maps target currency codes to the multiplicative rate from a base.
type Table map[model.Currency]float64

// Rate returns the base->target rate, or ErrUnsupportedCurrency.
func (t Table) Rate(target model.Currency) (float64, error) {
	rate, ok := t[target]
	if !ok || rate <= 0 {
		return 0, ErrUnsupportedCurrency
	}
	return rate, nil
}

// Resolver produces a rate table for a base currency. Implementations must
// cover at least the four supported codes; they may return an error only
// when no table can be produced at all.
type Resolver interface {
	Rates(ctx context.Context, base model.Currency) (Table, error)
}

// fallbackTables holds the fixed offline rates, keyed by base currency.
// These are deliberately coarse; they keep conversion working without a
// network and double as the contract for tests.
var fallbackTables = map[model.Currency]Table{
	model.USD: {model.USD: 1, model.NGN: 800, model.GBP: 0.79, model.EUR: 0.85},
	model.NGN: {model.NGN: 1, model.USD: 0.00125, model.GBP: 0.00099, model.EUR: 0.00106},
	model.GBP: {model.GBP: 1, model.USD: 1.27, model.NGN: 1010, model.EUR: 1.08},
	model.EUR: {model.EUR: 1, model.USD: 1.18, model.NGN: 944, model.GBP: 0.93},
}

// FallbackTable returns a copy of the fixed table for the given base.
// Unknown bases fall back to USD, mirroring the upstream behavior.
func FallbackTable(base model.Currency) Table {
	src, ok := fallbackTables[base]
	if !ok {
		src = fallbackTables[model.USD]
	}
	out := make(Table, len(src))
	for code, rate := range src {
		out[code] = rate
	}
	return out
}

// Fallback is a Resolver that always serves the fixed table. Used in
// offline mode and as the degradation path of Client.
type Fallback struct{}

// Rates implements Resolver. It never fails.
func (Fallback) Rates(_ context.Context, base model.Currency) (Table, error) {
	return FallbackTable(base), nil
}
