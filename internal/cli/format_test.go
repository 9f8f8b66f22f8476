package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/freedom/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"1,200.50", 1200.50},
		{"$2,000", 2000},
		{"₦800,000", 800000},
		{"  450  ", 450},
		{"£1,010", 1010},
		{"-100", 0}, // negative clamps
		{"abc", 0},  // garbage coerces
		{"", 0},     // empty coerces
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		cur    model.Currency
		want   string
	}{
		{1250, model.USD, "$1,250"},
		{800000, model.NGN, "₦800,000"},
		{999.6, model.GBP, "£1,000"},
		{0, model.EUR, "€0"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.cur); got != tt.want {
			t.Errorf("FormatMoney(%v, %s) = %q, want %q", tt.amount, tt.cur, got, tt.want)
		}
	}
}

func TestFormatMoneyShort(t *testing.T) {
	if got := FormatMoneyShort(1_200_000, model.USD); got != "$1.2M" {
		t.Errorf("got %q, want $1.2M", got)
	}
	if got := FormatMoneyShort(45_000, model.EUR); got != "€45k" {
		t.Errorf("got %q, want €45k", got)
	}
	if got := FormatMoneyShort(999, model.USD); got != "$999" {
		t.Errorf("got %q, want $999", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(model.MonthsUnreachable); got != "∞" {
		t.Errorf("sentinel = %q, want ∞", got)
	}
	if got := FormatMonths(5); got != "5mo" {
		t.Errorf("got %q, want 5mo", got)
	}
	if got := FormatMonths(17); got != "17mo (1.4y)" {
		t.Errorf("got %q, want 17mo (1.4y)", got)
	}
}

func TestFreedomMessage(t *testing.T) {
	tests := []struct {
		name string
		m    model.Metrics
		sub  string
	}{
		{"no values", model.Metrics{}, "get started"},
		{"ready", model.Metrics{HasValues: true, Ready: true}, "financially ready"},
		{"unreachable", model.Metrics{HasValues: true, MonthsToFreedom: model.MonthsUnreachable, MonthlyDeficit: 2400}, "deficit"},
		{"close", model.Metrics{HasValues: true, MonthsToFreedom: 4}, "4 months to safety"},
		{"within a year", model.Metrics{HasValues: true, MonthsToFreedom: 9}, "9 months to go"},
		{"years out", model.Metrics{HasValues: true, MonthsToFreedom: 30}, "years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreedomMessage(tt.m, model.USD)
			if !strings.Contains(got, tt.sub) {
				t.Errorf("FreedomMessage = %q, want substring %q", got, tt.sub)
			}
		})
	}
}

func TestShareText(t *testing.T) {
	snap := model.Snapshot{
		Currency:          "USD",
		FreedomPercentage: 42,
		FreedomNumber:     2500,
		TotalIncome:       1050,
		MonthsToFreedom:   17,
		GrowthRate:        10,
	}

	got := ShareText(snap)
	for _, want := range []string{"42%", "$2,500", "$1,050", "17"} {
		if !strings.Contains(got, want) {
			t.Errorf("ShareText missing %q:\n%s", want, got)
		}
	}

	snap.MonthsToFreedom = model.MonthsUnreachable
	if got := ShareText(snap); !strings.Contains(got, "not on this growth curve") {
		t.Errorf("unreachable share text = %q", got)
	}
}

func TestRenderFreedomBar(t *testing.T) {
	bar := RenderFreedomBar(150, 10)
	if !strings.Contains(bar, "150%") {
		t.Errorf("bar should keep the uncapped percentage: %q", bar)
	}
	if strings.Contains(bar, "░") {
		t.Errorf("bar above 100%% should be fully filled: %q", bar)
	}

	empty := RenderFreedomBar(0, 10)
	if !strings.Contains(empty, strings.Repeat("░", 10)) {
		t.Errorf("zero bar should be all empty: %q", empty)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty series = %q, want empty string", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Errorf("sparkline length = %d runes, want 3", len([]rune(got)))
	}
}
