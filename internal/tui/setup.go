package tui

import (
	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form answers. Amounts stay strings until
// the form completes; ParseAmount coerces bad input to 0.
type setupValues struct {
	rent      string
	food      string
	transport string
	subs      string
	other     string

	mrr       string
	freelance string
	passive   string
	salary    string

	growth    string
	useBuffer bool
}

// newSetupForm builds the first-run wizard shown when no values exist.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.useBuffer = true
	vals.growth = "10"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to freedom").
				Description("Enter your monthly numbers. Leave anything blank for 0."),
			huh.NewInput().Title("Rent / housing").Value(&vals.rent),
			huh.NewInput().Title("Food").Value(&vals.food),
			huh.NewInput().Title("Transport").Value(&vals.transport),
			huh.NewInput().Title("Subscriptions").Value(&vals.subs),
			huh.NewInput().Title("Other expenses").Value(&vals.other),
		),
		huh.NewGroup(
			huh.NewInput().Title("MRR (recurring side income)").Value(&vals.mrr),
			huh.NewInput().Title("Freelance").Value(&vals.freelance),
			huh.NewInput().Title("Passive").Value(&vals.passive),
			huh.NewInput().Title("Salary").Value(&vals.salary),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly MRR growth rate (0-30%)").
				Value(&vals.growth),
			huh.NewConfirm().
				Title("Add a 25% safety buffer to the target?").
				Value(&vals.useBuffer),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupValues()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupValues writes the wizard answers through the store. Errors
// are best-effort; the dashboard shows whatever persisted.
func (a *App) saveSetupValues() {
	v := a.setupVals

	expenses := map[model.ExpenseCategory]string{
		model.ExpenseRent:          v.rent,
		model.ExpenseFood:          v.food,
		model.ExpenseTransport:     v.transport,
		model.ExpenseSubscriptions: v.subs,
		model.ExpenseOther:         v.other,
	}
	for cat, raw := range expenses {
		_ = a.st.UpdateExpense(cat, cli.ParseAmount(raw))
	}

	income := map[model.IncomeSource]string{
		model.IncomeMRR:       v.mrr,
		model.IncomeFreelance: v.freelance,
		model.IncomePassive:   v.passive,
		model.IncomeSalary:    v.salary,
	}
	for src, raw := range income {
		_ = a.st.UpdateIncome(src, cli.ParseAmount(raw))
	}

	_ = a.st.SetGrowthRate(int(cli.ParseAmount(v.growth)))
	_ = a.st.SetUseBuffer(v.useBuffer)
}
