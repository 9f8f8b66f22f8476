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

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	m := a.m
	cur := a.state.Currency
	var b strings.Builder

	// Row 1: Metric cards
	deficitVal := cli.FormatMoney(m.MonthlyDeficit, cur)
	deficitDetail := "to close each month"
	deficitColor := t.Red
	if m.Ready {
		deficitVal = "+" + cli.FormatMoney(m.Surplus, cur)
		deficitDetail = "monthly surplus"
		deficitColor = t.Green
	}

	mtfColor := t.Orange
	if m.MonthsToFreedom == 0 {
		mtfColor = t.Green
	} else if m.MonthsToFreedom == model.MonthsUnreachable {
		mtfColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Freedom Number", Value: cli.FormatMoney(m.FreedomNumber, cur),
			Detail: fmt.Sprintf("expenses %s", cli.FormatMoney(m.TotalExpenses, cur))},
		{Label: "Monthly Income", Value: cli.FormatMoney(m.TotalIncome, cur),
			Detail: fmt.Sprintf("MRR %s +%d%%/mo", cli.FormatMoneyShort(a.state.Income.MRR, cur), a.state.GrowthRate)},
		{Label: "Deficit", Value: deficitVal, Detail: deficitDetail, Color: deficitColor},
		{Label: "To Freedom", Value: cli.FormatMonths(m.MonthsToFreedom),
			Detail: fmt.Sprintf("runway %s", cli.FormatMonths(m.RunwayMonths)), Color: mtfColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Freedom gauge
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 24
	if barW < 10 {
		barW = 10
	}
	gauge := components.FreedomGauge("Income vs target", m.FreedomPercentage, 16, barW)

	msgStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	if m.Ready {
		msgStyle = lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	}
	gaugeBody := gauge + "\n\n" + msgStyle.Render(cli.FreedomMessage(m, cur))
	b.WriteString(components.ContentCard("Freedom Score", gaugeBody, cw))
	b.WriteString("\n")

	// Row 3: Target breakdown + Runway
	halves := components.LayoutRow(cw, 2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	bufferStr := cli.FormatMoney(m.SafetyBuffer, cur)
	if !a.state.UseBuffer {
		bufferStr = "off"
	}

	var targetBody strings.Builder
	line := func(b *strings.Builder, label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	line(&targetBody, "Expenses", cli.FormatMoney(m.TotalExpenses, cur))
	line(&targetBody, "Safety buffer", bufferStr)
	line(&targetBody, "War chest", cli.FormatMoney(a.state.WarChest, cur))
	line(&targetBody, "Target", cli.FormatMoney(m.FreedomNumber, cur))

	var runwayBody strings.Builder
	line(&runwayBody, "Savings", cli.FormatMoney(m.SavingsUsed, cur))
	if a.state.UserSavings == 0 {
		runwayBody.WriteString(labelStyle.Render("                 (assumed 3x expenses)"))
		runwayBody.WriteString("\n")
	}
	line(&runwayBody, "Runway", cli.FormatMonths(m.RunwayMonths))

	targetCard := components.ContentCard("Target Breakdown", targetBody.String(), halves[0])
	runwayCard := components.ContentCard("Runway", runwayBody.String(), halves[1])
	b.WriteString(components.CardRow([]string{targetCard, runwayCard}))

	return b.String()
}
