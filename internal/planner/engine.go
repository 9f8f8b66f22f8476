// Package planner derives all displayed metrics from a FinancialState.
// Every function here is a pure read: no I/O, no mutation, total over its
// domain. Callers pass the state by value and get consistent results for
// that snapshot.
package planner

import (
	"math"

	"github.com/theirongolddev/freedom/internal/model"
)

// TotalExpenses sums all expense categories.
func TotalExpenses(s model.FinancialState) float64 {
	return s.Expenses.Total()
}

// TotalIncome sums all income sources.
func TotalIncome(s model.FinancialState) float64 {
	return s.Income.Total()
}

// SafetyBuffer is the optional 25% margin on top of expenses.
func SafetyBuffer(s model.FinancialState) float64 {
	if !s.UseBuffer {
		return 0
	}
	return math.Round(s.Expenses.Total() * 0.25)
}

// FreedomNumber is the minimum monthly income required to safely stop
// other income sources: expenses + safety buffer + war chest.
func FreedomNumber(s model.FinancialState) float64 {
	return s.Expenses.Total() + SafetyBuffer(s) + s.WarChest
}

// MonthlyDeficit is how far current income falls short of the freedom
// number. A surplus yields 0, never a negative value.
func MonthlyDeficit(s model.FinancialState) float64 {
	return math.Max(0, FreedomNumber(s)-TotalIncome(s))
}

// Surplus is income above the freedom number, 0 while in deficit.
func Surplus(s model.FinancialState) float64 {
	return math.Max(0, TotalIncome(s)-FreedomNumber(s))
}

// FreedomPercentage is income as a rounded percentage of the freedom
// number. Values above 100 are valid and signal surplus.
func FreedomPercentage(s model.FinancialState) int {
	fn := FreedomNumber(s)
	if fn <= 0 {
		return 0
	}
	return int(math.Round(TotalIncome(s) / fn * 100))
}

// IsFinanciallyReady reports whether the monthly deficit is zero.
func IsFinanciallyReady(s model.FinancialState) bool {
	return MonthlyDeficit(s) == 0
}

// HasValues reports whether anything has been entered at all. Consumers
// use it to decide whether derived sections are worth rendering.
func HasValues(s model.FinancialState) bool {
	return s.Expenses.Total() > 0 || s.Income.Total() > 0
}

// MonthsToFreedom is the number of months until total income reaches the
// freedom number under compound growth of MRR alone; the static sources
// (freelance, passive, salary) do not grow. Returns 0 when the target is
// already met, model.MonthsUnreachable when growth can never get there,
// and otherwise ceil(log(needed/mrr)/log(1+rate)) capped at 120 months.
func MonthsToFreedom(s model.FinancialState) int {
	target := FreedomNumber(s)
	income := TotalIncome(s)

	if income >= target {
		return 0
	}
	if target == 0 {
		return 0
	}
	if s.GrowthRate == 0 || income == 0 {
		return model.MonthsUnreachable
	}

	static := s.Income.Static()
	if static >= target {
		return 0
	}

	neededMRR := target - static
	mrr := s.Income.MRR
	if mrr >= neededMRR {
		return 0
	}
	if mrr == 0 {
		return model.MonthsUnreachable
	}

	growth := float64(s.GrowthRate) / 100
	months := math.Log(neededMRR/mrr) / math.Log(1+growth)
	n := int(math.Ceil(math.Max(0, months)))
	if n > model.HorizonMonths {
		return model.HorizonMonths
	}
	return n
}

// SavingsUsed is the savings figure the runway calculation assumes:
// the user override when set, otherwise three months of expenses.
func SavingsUsed(s model.FinancialState) float64 {
	if s.UserSavings > 0 {
		return s.UserSavings
	}
	return s.Expenses.Total() * 3
}

// RunwayMonths answers two different questions depending on cash flow.
// In deficit it is months until savings run out; at break-even or better
// it is months to accumulate a six-month emergency fund from the surplus
// over bare expenses. Returns 0 when there is not enough data.
func RunwayMonths(s model.FinancialState) int {
	expenses := s.Expenses.Total()
	income := TotalIncome(s)

	if expenses == 0 || income == 0 {
		return 0
	}

	if deficit := MonthlyDeficit(s); deficit > 0 {
		n := int(math.Floor(SavingsUsed(s) / deficit))
		if n < 0 {
			return 0
		}
		return n
	}

	surplus := income - expenses
	if surplus <= 0 {
		return 0
	}
	return int(math.Ceil(expenses * 6 / surplus))
}

// Compute derives every metric from one state snapshot.
func Compute(s model.FinancialState) model.Metrics {
	return model.Metrics{
		TotalExpenses: TotalExpenses(s),
		TotalIncome:   TotalIncome(s),
		SafetyBuffer:  SafetyBuffer(s),
		FreedomNumber: FreedomNumber(s),

		MonthlyDeficit:    MonthlyDeficit(s),
		Surplus:           Surplus(s),
		FreedomPercentage: FreedomPercentage(s),
		Ready:             IsFinanciallyReady(s),

		MonthsToFreedom: MonthsToFreedom(s),
		RunwayMonths:    RunwayMonths(s),
		SavingsUsed:     SavingsUsed(s),
		HasValues:       HasValues(s),
	}
}

// Snapshot flattens state and metrics into the read-only view export
// collaborators consume (PDF, share image, share text).
func Snapshot(s model.FinancialState) model.Snapshot {
	m := Compute(s)

	expenses := make(map[string]float64, len(model.ExpenseCategories))
	for _, c := range model.ExpenseCategories {
		expenses[string(c)] = s.Expenses.Get(c)
	}
	income := make(map[string]float64, len(model.IncomeSources))
	for _, src := range model.IncomeSources {
		income[string(src)] = s.Income.Get(src)
	}

	return model.Snapshot{
		Expenses: expenses,
		Income:   income,
		Currency: string(s.Currency),

		FreedomPercentage: m.FreedomPercentage,
		TotalExpenses:     m.TotalExpenses,
		TotalIncome:       m.TotalIncome,
		MonthsToFreedom:   m.MonthsToFreedom,
		GrowthRate:        s.GrowthRate,
		RunwayMonths:      m.RunwayMonths,
		SafetyBuffer:      m.SafetyBuffer,
		WarChest:          s.WarChest,
		FreedomNumber:     m.FreedomNumber,
		SavingsUsed:       m.SavingsUsed,
		Deficit:           m.MonthlyDeficit,
	}
}
