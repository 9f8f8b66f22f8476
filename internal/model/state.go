// Package model defines domain types for the freedom planner.
package model

import "fmt"

// Currency is one of the four supported display currencies.
type Currency string

const (
	USD Currency = "USD"
	NGN Currency = "NGN"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
)

// Currencies lists all supported codes in display order.
var Currencies = []Currency{USD, NGN, GBP, EUR}

// ParseCurrency validates a currency code (case-insensitive via caller).
func ParseCurrency(code string) (Currency, error) {
	for _, c := range Currencies {
		if string(c) == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown currency %q (supported: USD, NGN, GBP, EUR)", code)
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case NGN:
		return "₦"
	case GBP:
		return "£"
	case EUR:
		return "€"
	default:
		return "$"
	}
}

// ExpenseCategory identifies one of the fixed expense categories.
type ExpenseCategory string

const (
	ExpenseRent          ExpenseCategory = "rent"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseSubscriptions ExpenseCategory = "subscriptions"
	ExpenseOther         ExpenseCategory = "other"
)

// ExpenseCategories lists all categories in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseRent, ExpenseFood, ExpenseTransport, ExpenseSubscriptions, ExpenseOther,
}

// ParseExpenseCategory validates an expense category name.
func ParseExpenseCategory(name string) (ExpenseCategory, error) {
	for _, c := range ExpenseCategories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category %q (rent, food, transport, subscriptions, other)", name)
}

// IncomeSource identifies one of the fixed income sources.
type IncomeSource string

const (
	IncomeMRR       IncomeSource = "mrr"
	IncomeFreelance IncomeSource = "freelance"
	IncomePassive   IncomeSource = "passive"
	IncomeSalary    IncomeSource = "salary"
)

// IncomeSources lists all sources in display order.
var IncomeSources = []IncomeSource{IncomeMRR, IncomeFreelance, IncomePassive, IncomeSalary}

// ParseIncomeSource validates an income source name.
func ParseIncomeSource(name string) (IncomeSource, error) {
	for _, s := range IncomeSources {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown income source %q (mrr, freelance, passive, salary)", name)
}

// Expenses holds the fixed monthly expense categories.
// Fields are always present; a missing entry is simply 0.
type Expenses struct {
	Rent          float64
	Food          float64
	Transport     float64
	Subscriptions float64
	Other         float64
}

// Get returns the amount for a category.
func (e Expenses) Get(c ExpenseCategory) float64 {
	switch c {
	case ExpenseRent:
		return e.Rent
	case ExpenseFood:
		return e.Food
	case ExpenseTransport:
		return e.Transport
	case ExpenseSubscriptions:
		return e.Subscriptions
	default:
		return e.Other
	}
}

// Set replaces the amount for a category.
func (e *Expenses) Set(c ExpenseCategory, amount float64) {
	switch c {
	case ExpenseRent:
		e.Rent = amount
	case ExpenseFood:
		e.Food = amount
	case ExpenseTransport:
		e.Transport = amount
	case ExpenseSubscriptions:
		e.Subscriptions = amount
	case ExpenseOther:
		e.Other = amount
	}
}

// Total sums all categories.
func (e Expenses) Total() float64 {
	return e.Rent + e.Food + e.Transport + e.Subscriptions + e.Other
}

// Income holds the fixed monthly income sources.
// MRR is the only source assumed to compound month over month.
type Income struct {
	MRR       float64
	Freelance float64
	Passive   float64
	Salary    float64
}

// Get returns the amount for a source.
func (in Income) Get(s IncomeSource) float64 {
	switch s {
	case IncomeMRR:
		return in.MRR
	case IncomeFreelance:
		return in.Freelance
	case IncomePassive:
		return in.Passive
	default:
		return in.Salary
	}
}

// Set replaces the amount for a source.
func (in *Income) Set(s IncomeSource, amount float64) {
	switch s {
	case IncomeMRR:
		in.MRR = amount
	case IncomeFreelance:
		in.Freelance = amount
	case IncomePassive:
		in.Passive = amount
	case IncomeSalary:
		in.Salary = amount
	}
}

// Total sums all sources.
func (in Income) Total() float64 {
	return in.MRR + in.Freelance + in.Passive + in.Salary
}

// Static sums the non-compounding sources (everything but MRR).
func (in Income) Static() float64 {
	return in.Freelance + in.Passive + in.Salary
}

// Growth rate bounds (percent per month, applied to MRR only).
const (
	MinGrowthRate = 0
	MaxGrowthRate = 30
)

// FinancialState is the single authoritative planner state.
// All derived metrics are recomputed from it on demand.
type FinancialState struct {
	Expenses    Expenses
	Income      Income
	GrowthRate  int // percent per month, 0-30
	Currency    Currency
	UseBuffer   bool    // add a 25% safety margin to the freedom target
	WarChest    float64 // flat extra monthly surplus goal
	UserSavings float64 // runway savings override; 0 means unset
}

// DefaultState returns the initial planner state.
func DefaultState() FinancialState {
	return FinancialState{
		GrowthRate: 10,
		Currency:   USD,
		UseBuffer:  true,
	}
}

// ClampGrowthRate constrains a rate to the supported range.
func ClampGrowthRate(rate int) int {
	if rate < MinGrowthRate {
		return MinGrowthRate
	}
	if rate > MaxGrowthRate {
		return MaxGrowthRate
	}
	return rate
}

// ClampAmount coerces negative monetary input to 0.
func ClampAmount(v float64) float64 {
	if v < 0 || v != v { // NaN guard
		return 0
	}
	return v
}
