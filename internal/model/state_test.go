package model

import (
	"math"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	for _, c := range Currencies {
		got, err := ParseCurrency(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCurrency(%s) = %v, %v", c, got, err)
		}
	}
	if _, err := ParseCurrency("JPY"); err == nil {
		t.Error("JPY should be rejected")
	}
}

func TestCurrencySymbols(t *testing.T) {
	tests := map[Currency]string{
		USD: "$",
		NGN: "₦",
		GBP: "£",
		EUR: "€",
	}
	for c, want := range tests {
		if got := c.Symbol(); got != want {
			t.Errorf("%s.Symbol() = %q, want %q", c, got, want)
		}
	}
}

func TestExpensesGetSet(t *testing.T) {
	var e Expenses
	for i, c := range ExpenseCategories {
		e.Set(c, float64(i+1)*100)
	}
	for i, c := range ExpenseCategories {
		if got := e.Get(c); got != float64(i+1)*100 {
			t.Errorf("Get(%s) = %v, want %v", c, got, float64(i+1)*100)
		}
	}
	if e.Total() != 1500 {
		t.Errorf("Total = %v, want 1500", e.Total())
	}
}

func TestIncomeStatic(t *testing.T) {
	in := Income{MRR: 100, Freelance: 200, Passive: 50, Salary: 3000}
	if in.Total() != 3350 {
		t.Errorf("Total = %v, want 3350", in.Total())
	}
	if in.Static() != 3250 {
		t.Errorf("Static = %v, want 3250 (everything but MRR)", in.Static())
	}
}

func TestClampGrowthRate(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{15, 15},
		{30, 30},
		{31, 30},
	}
	for _, tt := range tests {
		if got := ClampGrowthRate(tt.in); got != tt.want {
			t.Errorf("ClampGrowthRate(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampAmount(t *testing.T) {
	if got := ClampAmount(-10); got != 0 {
		t.Errorf("negative = %v, want 0", got)
	}
	if got := ClampAmount(math.NaN()); got != 0 {
		t.Errorf("NaN = %v, want 0", got)
	}
	if got := ClampAmount(42.5); got != 42.5 {
		t.Errorf("positive = %v, want unchanged", got)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.GrowthRate != 10 || s.Currency != USD || !s.UseBuffer {
		t.Errorf("DefaultState = %+v, want growth 10, USD, buffer on", s)
	}
}
