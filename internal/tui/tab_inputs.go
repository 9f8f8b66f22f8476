package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/tui/components"
	"github.com/theirongolddev/freedom/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	inputFieldRent = iota
	inputFieldFood
	inputFieldTransport
	inputFieldSubscriptions
	inputFieldOther
	inputFieldMRR
	inputFieldFreelance
	inputFieldPassive
	inputFieldSalary
	inputFieldGrowth
	inputFieldBuffer
	inputFieldSavings
	inputFieldWarChest
	inputFieldCount // sentinel
)

var inputExpenseByField = map[int]model.ExpenseCategory{
	inputFieldRent:          model.ExpenseRent,
	inputFieldFood:          model.ExpenseFood,
	inputFieldTransport:     model.ExpenseTransport,
	inputFieldSubscriptions: model.ExpenseSubscriptions,
	inputFieldOther:         model.ExpenseOther,
}

var inputIncomeByField = map[int]model.IncomeSource{
	inputFieldMRR:       model.IncomeMRR,
	inputFieldFreelance: model.IncomeFreelance,
	inputFieldPassive:   model.IncomePassive,
	inputFieldSalary:    model.IncomeSalary,
}

// inputsState tracks the inputs tab state.
type inputsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newInputsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20
	return ti
}

func (a App) inputsStartEdit() (tea.Model, tea.Cmd) {
	a.inputs.editing = true
	a.inputs.saved = false

	ti := newInputsInput()

	switch cursor := a.inputs.cursor; {
	case cursor <= inputFieldOther:
		cat := inputExpenseByField[cursor]
		ti.Placeholder = "0"
		ti.SetValue(strconv.FormatFloat(a.state.Expenses.Get(cat), 'f', -1, 64))
	case cursor <= inputFieldSalary:
		src := inputIncomeByField[cursor]
		ti.Placeholder = "0"
		ti.SetValue(strconv.FormatFloat(a.state.Income.Get(src), 'f', -1, 64))
	case cursor == inputFieldGrowth:
		ti.Placeholder = "0-30"
		ti.SetValue(strconv.Itoa(a.state.GrowthRate))
	case cursor == inputFieldBuffer:
		ti.Placeholder = "on or off"
		if a.state.UseBuffer {
			ti.SetValue("on")
		} else {
			ti.SetValue("off")
		}
	case cursor == inputFieldSavings:
		ti.Placeholder = "0 = assume 3x expenses"
		ti.SetValue(strconv.FormatFloat(a.state.UserSavings, 'f', -1, 64))
	case cursor == inputFieldWarChest:
		ti.Placeholder = "0"
		ti.SetValue(strconv.FormatFloat(a.state.WarChest, 'f', -1, 64))
	}

	ti.Focus()
	a.inputs.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateInputsEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.inputsSave()
		a.inputs.editing = false
		a.inputs.saved = a.inputs.saveErr == nil
		return a, nil
	case "esc":
		a.inputs.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs.input, cmd = a.inputs.input.Update(msg)
	return a, cmd
}

func (a *App) inputsSave() {
	val := strings.TrimSpace(a.inputs.input.Value())

	var err error
	switch cursor := a.inputs.cursor; {
	case cursor <= inputFieldOther:
		err = a.st.UpdateExpense(inputExpenseByField[cursor], cli.ParseAmount(val))
	case cursor <= inputFieldSalary:
		err = a.st.UpdateIncome(inputIncomeByField[cursor], cli.ParseAmount(val))
	case cursor == inputFieldGrowth:
		rate, convErr := strconv.Atoi(strings.TrimSuffix(val, "%"))
		if convErr != nil {
			rate = 0
		}
		err = a.st.SetGrowthRate(rate)
	case cursor == inputFieldBuffer:
		on := val == "on" || val == "true" || val == "yes" || val == "1"
		err = a.st.SetUseBuffer(on)
	case cursor == inputFieldSavings:
		err = a.st.SetUserSavings(cli.ParseAmount(val))
	case cursor == inputFieldWarChest:
		err = a.st.SetWarChest(cli.ParseAmount(val))
	}

	a.inputs.saveErr = err
	a.recompute()
}

func (a App) renderInputsTab(cw int) string {
	t := theme.Active
	cur := a.state.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	type field struct {
		label string
		value string
	}

	bufferVal := "off"
	if a.state.UseBuffer {
		bufferVal = "on"
	}

	fields := []field{
		{"Rent", cli.FormatMoney(a.state.Expenses.Rent, cur)},
		{"Food", cli.FormatMoney(a.state.Expenses.Food, cur)},
		{"Transport", cli.FormatMoney(a.state.Expenses.Transport, cur)},
		{"Subscriptions", cli.FormatMoney(a.state.Expenses.Subscriptions, cur)},
		{"Other", cli.FormatMoney(a.state.Expenses.Other, cur)},
		{"MRR", cli.FormatMoney(a.state.Income.MRR, cur)},
		{"Freelance", cli.FormatMoney(a.state.Income.Freelance, cur)},
		{"Passive", cli.FormatMoney(a.state.Income.Passive, cur)},
		{"Salary", cli.FormatMoney(a.state.Income.Salary, cur)},
		{"Growth Rate", fmt.Sprintf("%d%%/mo", a.state.GrowthRate)},
		{"Safety Buffer", bufferVal},
		{"Savings", cli.FormatMoney(a.state.UserSavings, cur)},
		{"War Chest", cli.FormatMoney(a.state.WarChest, cur)},
	}

	// Section headings before these field indexes
	sections := map[int]string{
		inputFieldRent:   "Expenses",
		inputFieldMRR:    "Income",
		inputFieldGrowth: "Plan",
	}

	var body strings.Builder
	for i, f := range fields {
		if title, ok := sections[i]; ok {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(sectionStyle.Render(title))
			body.WriteString("\n")
		}

		if a.inputs.editing && i == a.inputs.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(accentStyle.Render(fmt.Sprintf("%-15s ", f.label)))
			body.WriteString(a.inputs.input.View())
			body.WriteString("\n")
			continue
		}

		if i == a.inputs.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-15s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			body.WriteString(marker)
			body.WriteString(label)
			body.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				body.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			body.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-15s ", f.label+":")))
			body.WriteString(valueStyle.Render(f.value))
		}
		body.WriteString("\n")
	}

	if a.inputs.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		body.WriteString("\n")
		body.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.inputs.saveErr)))
	} else if a.inputs.saved {
		body.WriteString("\n")
		body.WriteString(greenStyle.Render("Saved!"))
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Totals card alongside
	var totalsBody strings.Builder
	totalsBody.WriteString(labelStyle.Render("Total expenses:  ") + valueStyle.Render(cli.FormatMoney(a.m.TotalExpenses, cur)) + "\n")
	totalsBody.WriteString(labelStyle.Render("Total income:    ") + valueStyle.Render(cli.FormatMoney(a.m.TotalIncome, cur)) + "\n")
	totalsBody.WriteString(labelStyle.Render("Freedom number:  ") + valueStyle.Render(cli.FormatMoney(a.m.FreedomNumber, cur)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Inputs", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Totals", totalsBody.String(), cw))

	return b.String()
}
