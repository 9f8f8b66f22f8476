package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/freedom/internal/cli"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/tui/components"
	"github.com/theirongolddev/freedom/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	proj := a.proj
	cur := a.state.Currency
	var b strings.Builder

	if len(proj.Points) == 0 {
		return components.ContentCard("Projection", "Nothing to project yet.", cw)
	}

	vals := make([]float64, len(proj.Points))
	labels := make([]string, len(proj.Points))
	for i, p := range proj.Points {
		vals[i] = p.Income
		labels[i] = fmt.Sprintf("M%d", p.Month)
	}
	labels[0] = "now"

	chartH := 10
	if a.height < 28 {
		chartH = 6
	}
	chart := components.BarChart(vals, labels, t.Blue, proj.FreedomMonth, components.CardInnerWidth(cw), chartH)

	last := proj.Points[len(proj.Points)-1]
	title := fmt.Sprintf("Income Projection (%d%%/mo growth, target %s)",
		a.state.GrowthRate, cli.FormatMoneyShort(last.SafetyTarget, cur))
	b.WriteString(components.ContentCard(title, chart, cw))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var info strings.Builder
	switch {
	case proj.FreedomMonth == model.MonthsUnreachable:
		info.WriteString(warnStyle.Render("Safety target not reached within this horizon."))
	case proj.FreedomMonth == 0:
		info.WriteString(greenStyle.Render("Already at the safety target."))
	default:
		p := proj.Points[proj.FreedomMonth]
		info.WriteString(greenStyle.Render(fmt.Sprintf("Freedom point: month %d, income %s vs target %s",
			proj.FreedomMonth, cli.FormatMoney(p.Income, cur), cli.FormatMoney(p.SafetyTarget, cur))))
	}
	info.WriteString("\n")
	info.WriteString(labelStyle.Render(fmt.Sprintf("Final month: income %s · expenses %s",
		cli.FormatMoney(last.Income, cur), cli.FormatMoney(last.Expenses, cur))))
	b.WriteString(components.ContentCard("", info.String(), cw))

	return b.String()
}
