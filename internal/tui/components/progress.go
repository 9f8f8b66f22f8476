package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/freedom/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a simple block progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := colorForScore(pct)
	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// colorForScore maps progress toward the target to red/orange/green.
func colorForScore(frac float64) lipgloss.Color {
	t := theme.Active
	switch {
	case frac >= 1:
		return t.Green
	case frac >= 0.5:
		return t.Orange
	default:
		return t.Red
	}
}

// FreedomGauge renders a labeled gauge of income against the freedom
// number. pct may exceed 100; the bar caps at full but the number shown
// keeps the real value.
func FreedomGauge(label string, pct int, labelW, barWidth int) string {
	t := theme.Active

	frac := float64(pct) / 100
	capped := frac
	if capped > 1 {
		capped = 1
	}
	if capped < 0 {
		capped = 0
	}

	bar := progress.New(
		progress.WithSolidFill(string(colorForScore(frac))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(colorForScore(frac)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(capped) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%d%%", pct))
}
