package planner

import (
	"math"

	"github.com/theirongolddev/freedom/internal/model"
)

// maxProjectionMonths bounds any projection to two years.
const maxProjectionMonths = 24

// Options configures a projection run.
type Options struct {
	// ExpenseGrowthRate compounds expenses monthly (percent). Default 0:
	// expenses stay flat while only MRR grows.
	ExpenseGrowthRate int
	// Horizon overrides the projected month count when > 0. It is still
	// capped at 24 months.
	Horizon int
}

// Project builds the month-by-month series the charts and tables consume.
// Month 0 is the current state; each later month compounds MRR by the
// growth rate and, optionally, expenses by ExpenseGrowthRate. The safety
// target tracks projected expenses (plus buffer and war chest), so a
// rising cost base pushes the freedom point out.
func Project(s model.FinancialState, opts Options) model.Projection {
	horizon := opts.Horizon
	if horizon <= 0 {
		if mtf := MonthsToFreedom(s); mtf > 0 && mtf != model.MonthsUnreachable {
			horizon = mtf + 3
		} else {
			horizon = 12
		}
	}
	if horizon > maxProjectionMonths {
		horizon = maxProjectionMonths
	}

	growth := float64(s.GrowthRate) / 100
	expenseGrowth := float64(opts.ExpenseGrowthRate) / 100

	mrr := s.Income.MRR
	static := s.Income.Static()
	expenses := s.Expenses.Total()

	proj := model.Projection{
		Points:       make([]model.ProjectionPoint, 0, horizon+1),
		FreedomMonth: model.MonthsUnreachable,
	}

	for month := 0; month <= horizon; month++ {
		income := mrr + static
		target := expenses + s.WarChest
		if s.UseBuffer {
			target += math.Round(expenses * 0.25)
		}

		proj.Points = append(proj.Points, model.ProjectionPoint{
			Month:        month,
			Income:       math.Round(income),
			Expenses:     math.Round(expenses),
			SafetyTarget: math.Round(target),
			MRR:          math.Round(mrr),
		})

		if proj.FreedomMonth == model.MonthsUnreachable && income >= target {
			proj.FreedomMonth = month
		}

		mrr *= 1 + growth
		expenses *= 1 + expenseGrowth
	}

	return proj
}
