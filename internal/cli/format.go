// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/freedom/internal/model"
)

// ParseAmount coerces a monetary input string to a non-negative number.
// Non-numeric or negative input yields 0 — never an error. Thousands
// separators and a leading currency symbol are tolerated.
func ParseAmount(input string) float64 {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, ",", "")
	for _, c := range model.Currencies {
		s = strings.TrimPrefix(s, c.Symbol())
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return model.ClampAmount(v)
}

// FormatMoney renders an amount with its currency symbol and comma
// separators, e.g. "$1,250" or "₦800,000".
func FormatMoney(amount float64, c model.Currency) string {
	return c.Symbol() + FormatNumber(int64(math.Round(amount)))
}

// FormatMoneyShort abbreviates large amounts, e.g. "$1.2M", "€45k".
func FormatMoneyShort(amount float64, c model.Currency) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", c.Symbol(), amount/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s%.0fk", c.Symbol(), amount/1_000)
	default:
		return FormatMoney(amount, c)
	}
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMonths renders a month count, using "∞" for the unreachable
// sentinel and a year suffix past one year, e.g. "17mo (1.4y)".
func FormatMonths(months int) string {
	if months == model.MonthsUnreachable {
		return "∞"
	}
	if months > 12 {
		return fmt.Sprintf("%dmo (%.1fy)", months, float64(months)/12)
	}
	return fmt.Sprintf("%dmo", months)
}

// FormatPercent renders an already-rounded percentage.
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// FreedomMessage is the status line shown for the current metrics,
// mirroring the tiers of the projection panel.
func FreedomMessage(m model.Metrics, c model.Currency) string {
	switch {
	case !m.HasValues:
		return "Enter your expenses and income to get started"
	case m.Ready:
		return "You're financially ready!"
	case m.MonthsToFreedom == model.MonthsUnreachable || m.MonthsToFreedom >= model.HorizonMonths:
		return fmt.Sprintf("Fix the %s/mo deficit: need higher growth or more MRR", FormatMoney(m.MonthlyDeficit, c))
	case m.MonthsToFreedom <= 6:
		return fmt.Sprintf("%d months to safety!", m.MonthsToFreedom)
	case m.MonthsToFreedom <= 12:
		return fmt.Sprintf("%d months to go", m.MonthsToFreedom)
	default:
		return fmt.Sprintf("%d months (~%d years)", m.MonthsToFreedom, int(math.Round(float64(m.MonthsToFreedom)/12)))
	}
}

// ShareText builds the tweet-sized summary for the share/export flow.
func ShareText(snap model.Snapshot) string {
	cur := model.Currency(snap.Currency)
	var b strings.Builder
	fmt.Fprintf(&b, "My freedom score: %d%% 🎯\n", snap.FreedomPercentage)
	fmt.Fprintf(&b, "Monthly target: %s · Current income: %s\n",
		FormatMoney(snap.FreedomNumber, cur), FormatMoney(snap.TotalIncome, cur))
	if snap.MonthsToFreedom == model.MonthsUnreachable {
		b.WriteString("Months to freedom: not on this growth curve yet\n")
	} else {
		fmt.Fprintf(&b, "Months to freedom: %d at %d%% MRR growth\n", snap.MonthsToFreedom, snap.GrowthRate)
	}
	b.WriteString("Built with freedom — the side-project runway calculator")
	return b.String()
}
