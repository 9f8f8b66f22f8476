package planner

import (
	"testing"

	"github.com/theirongolddev/freedom/internal/model"
)

// baseState returns a default state with the given expense and MRR.
func baseState(otherExpense, mrr float64) model.FinancialState {
	s := model.DefaultState()
	s.Expenses.Other = otherExpense
	s.Income.MRR = mrr
	return s
}

func TestFreedomNumber_WithBuffer(t *testing.T) {
	s := model.DefaultState()
	s.Expenses.Rent = 2000

	if got := SafetyBuffer(s); got != 500 {
		t.Errorf("SafetyBuffer = %v, want 500", got)
	}
	if got := FreedomNumber(s); got != 2500 {
		t.Errorf("FreedomNumber = %v, want 2500", got)
	}
	if got := MonthlyDeficit(s); got != 2500 {
		t.Errorf("MonthlyDeficit = %v, want 2500", got)
	}
	if got := FreedomPercentage(s); got != 0 {
		t.Errorf("FreedomPercentage = %v, want 0", got)
	}
}

func TestFreedomNumber_BufferOff(t *testing.T) {
	s := model.DefaultState()
	s.Expenses.Rent = 2000
	s.UseBuffer = false
	s.Income.Salary = 2500

	if got := SafetyBuffer(s); got != 0 {
		t.Errorf("SafetyBuffer = %v, want 0 when disabled", got)
	}
	if got := FreedomNumber(s); got != 2000 {
		t.Errorf("FreedomNumber = %v, want 2000", got)
	}
	if got := MonthlyDeficit(s); got != 0 {
		t.Errorf("MonthlyDeficit = %v, want 0", got)
	}
	if !IsFinanciallyReady(s) {
		t.Error("expected financially ready with surplus")
	}
	if got := FreedomPercentage(s); got != 125 {
		t.Errorf("FreedomPercentage = %v, want 125 (uncapped)", got)
	}
	if got := Surplus(s); got != 500 {
		t.Errorf("Surplus = %v, want 500", got)
	}
}

func TestFreedomNumber_WarChest(t *testing.T) {
	s := model.DefaultState()
	s.Expenses.Rent = 2000
	s.WarChest = 300

	if got := FreedomNumber(s); got != 2800 {
		t.Errorf("FreedomNumber = %v, want 2800 (2000 + 500 + 300)", got)
	}
}

func TestMonthsToFreedom(t *testing.T) {
	tests := []struct {
		name  string
		state func() model.FinancialState
		want  int
	}{
		{
			name: "compound growth hits target",
			state: func() model.FinancialState {
				// fn = 400 + 100 = 500, mrr 100 at 10%/mo:
				// ceil(log(5)/log(1.1)) = 17
				return baseState(400, 100)
			},
			want: 17,
		},
		{
			name: "already at target",
			state: func() model.FinancialState {
				s := baseState(400, 600)
				return s
			},
			want: 0,
		},
		{
			name: "zero growth never reaches",
			state: func() model.FinancialState {
				s := baseState(400, 100)
				s.GrowthRate = 0
				return s
			},
			want: model.MonthsUnreachable,
		},
		{
			name: "no income never reaches",
			state: func() model.FinancialState {
				return baseState(400, 0)
			},
			want: model.MonthsUnreachable,
		},
		{
			name: "static income but no mrr never reaches",
			state: func() model.FinancialState {
				s := baseState(2000, 0)
				s.Income.Freelance = 100
				return s
			},
			want: model.MonthsUnreachable,
		},
		{
			name: "mrr already covers the gap",
			state: func() model.FinancialState {
				// fn = 500, static 450 so neededMRR = 50, mrr 60
				s := baseState(400, 60)
				s.Income.Salary = 450
				return s
			},
			want: 0,
		},
		{
			name: "distant target caps at horizon",
			state: func() model.FinancialState {
				s := baseState(1_000_000, 1)
				s.GrowthRate = 1
				return s
			},
			want: model.HorizonMonths,
		},
		{
			name: "empty state",
			state: func() model.FinancialState {
				return model.DefaultState()
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsToFreedom(tt.state()); got != tt.want {
				t.Errorf("MonthsToFreedom = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSavingsUsed(t *testing.T) {
	s := model.DefaultState()
	s.Expenses.Rent = 2000

	if got := SavingsUsed(s); got != 6000 {
		t.Errorf("SavingsUsed = %v, want 6000 (3x expenses)", got)
	}

	s.UserSavings = 10_000
	if got := SavingsUsed(s); got != 10_000 {
		t.Errorf("SavingsUsed = %v, want the 10000 override", got)
	}
}

func TestRunwayMonths(t *testing.T) {
	tests := []struct {
		name  string
		state func() model.FinancialState
		want  int
	}{
		{
			name: "deficit burns savings",
			state: func() model.FinancialState {
				// fn 2500, income 100 -> deficit 2400, savings 6000
				return baseState(2000, 100)
			},
			want: 2,
		},
		{
			name: "surplus builds emergency fund",
			state: func() model.FinancialState {
				// surplus over bare expenses = 500, ceil(2000*6/500) = 24
				s := baseState(2000, 0)
				s.UseBuffer = false
				s.Income.Salary = 2500
				return s
			},
			want: 24,
		},
		{
			name: "no expenses",
			state: func() model.FinancialState {
				return baseState(0, 500)
			},
			want: 0,
		},
		{
			name: "no income",
			state: func() model.FinancialState {
				return baseState(2000, 0)
			},
			want: 0,
		},
		{
			name: "exact break-even",
			state: func() model.FinancialState {
				// income == expenses, no buffer: deficit 0, surplus 0
				s := baseState(2000, 0)
				s.UseBuffer = false
				s.Income.Salary = 2000
				return s
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RunwayMonths(tt.state()); got != tt.want {
				t.Errorf("RunwayMonths = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHasValues(t *testing.T) {
	s := model.DefaultState()
	if HasValues(s) {
		t.Error("empty state should have no values")
	}
	s.Income.Freelance = 1
	if !HasValues(s) {
		t.Error("any income should count as values")
	}
}

func TestCompute_Consistency(t *testing.T) {
	s := baseState(2000, 100)
	s.Income.Freelance = 300
	m := Compute(s)

	if m.TotalExpenses != 2000 {
		t.Errorf("TotalExpenses = %v, want 2000", m.TotalExpenses)
	}
	if m.TotalIncome != 400 {
		t.Errorf("TotalIncome = %v, want 400", m.TotalIncome)
	}
	if m.FreedomNumber != m.TotalExpenses+m.SafetyBuffer+s.WarChest {
		t.Error("FreedomNumber must equal expenses + buffer + war chest")
	}
	if m.Ready != (m.MonthlyDeficit == 0) {
		t.Error("Ready must mirror a zero deficit")
	}
	if m.MonthlyDeficit < 0 {
		t.Error("deficit must never be negative")
	}
	if !m.HasValues {
		t.Error("expected HasValues")
	}
}

func TestSnapshot_Fields(t *testing.T) {
	s := baseState(400, 100)
	s.Currency = model.EUR
	s.WarChest = 50

	snap := Snapshot(s)

	if snap.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", snap.Currency)
	}
	if snap.Expenses["other"] != 400 {
		t.Errorf(`Expenses["other"] = %v, want 400`, snap.Expenses["other"])
	}
	if snap.Income["mrr"] != 100 {
		t.Errorf(`Income["mrr"] = %v, want 100`, snap.Income["mrr"])
	}
	if snap.GrowthRate != s.GrowthRate {
		t.Errorf("GrowthRate = %d, want %d", snap.GrowthRate, s.GrowthRate)
	}
	if snap.WarChest != 50 {
		t.Errorf("WarChest = %v, want 50", snap.WarChest)
	}
	if snap.FreedomNumber != FreedomNumber(s) {
		t.Error("snapshot FreedomNumber must match the derived value")
	}
}
