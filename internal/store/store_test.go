package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/planner"
	"github.com/theirongolddev/freedom/internal/rates"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, dbPath
}

func TestOpen_Defaults(t *testing.T) {
	s, _ := openTestStore(t)

	state := s.State()
	if state.GrowthRate != 10 {
		t.Errorf("GrowthRate = %d, want default 10", state.GrowthRate)
	}
	if state.Currency != model.USD {
		t.Errorf("Currency = %s, want USD", state.Currency)
	}
	if !state.UseBuffer {
		t.Error("UseBuffer should default to true")
	}
	if state.Expenses.Total() != 0 || state.Income.Total() != 0 {
		t.Error("fresh store should have zero amounts")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "planner.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.UpdateExpense(model.ExpenseRent, 1200); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateIncome(model.IncomeMRR, 400); err != nil {
		t.Fatal(err)
	}
	if err := s.SetGrowthRate(15); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrency(model.GBP); err != nil {
		t.Fatal(err)
	}
	if err := s.SetUseBuffer(false); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	state := s2.State()
	if state.Expenses.Rent != 1200 {
		t.Errorf("Rent = %v, want 1200", state.Expenses.Rent)
	}
	if state.Income.MRR != 400 {
		t.Errorf("MRR = %v, want 400", state.Income.MRR)
	}
	if state.GrowthRate != 15 {
		t.Errorf("GrowthRate = %d, want 15", state.GrowthRate)
	}
	if state.Currency != model.GBP {
		t.Errorf("Currency = %s, want GBP", state.Currency)
	}
	if state.UseBuffer {
		t.Error("UseBuffer should persist as false")
	}
}

func TestStore_ClampsInput(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseFood, -50); err != nil {
		t.Fatal(err)
	}
	if got := s.State().Expenses.Food; got != 0 {
		t.Errorf("negative expense = %v, want clamped to 0", got)
	}

	if err := s.SetGrowthRate(99); err != nil {
		t.Fatal(err)
	}
	if got := s.State().GrowthRate; got != model.MaxGrowthRate {
		t.Errorf("GrowthRate = %d, want clamped to %d", got, model.MaxGrowthRate)
	}

	if err := s.SetGrowthRate(-5); err != nil {
		t.Fatal(err)
	}
	if got := s.State().GrowthRate; got != 0 {
		t.Errorf("GrowthRate = %d, want clamped to 0", got)
	}
}

func TestResetAll_KeepsCurrency(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 900); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrency(model.EUR); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetAll(); err != nil {
		t.Fatal(err)
	}

	state := s.State()
	if state.Expenses.Total() != 0 {
		t.Errorf("expenses after reset = %v, want 0", state.Expenses.Total())
	}
	if state.Currency != model.EUR {
		t.Errorf("Currency = %s, want EUR preserved", state.Currency)
	}
	if state.GrowthRate != 10 {
		t.Errorf("GrowthRate = %d, want default 10", state.GrowthRate)
	}
}

func TestConvert_SameCurrencyNoOp(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 1000); err != nil {
		t.Fatal(err)
	}
	if err := s.Convert(context.Background(), rates.Fallback{}, model.USD); err != nil {
		t.Fatalf("same-currency convert: %v", err)
	}
	if got := s.State().Expenses.Rent; got != 1000 {
		t.Errorf("Rent = %v, want untouched 1000", got)
	}
}

func TestConvert_RoundTripWithinTolerance(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 1000); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateIncome(model.IncomeMRR, 250); err != nil {
		t.Fatal(err)
	}
	if err := s.SetWarChest(100); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := s.Convert(ctx, rates.Fallback{}, model.GBP); err != nil {
		t.Fatalf("USD->GBP: %v", err)
	}
	if got := s.State().Currency; got != model.GBP {
		t.Fatalf("Currency = %s, want GBP", got)
	}
	if got := s.State().Expenses.Rent; got != 790 {
		t.Errorf("Rent in GBP = %v, want 790", got)
	}

	if err := s.Convert(ctx, rates.Fallback{}, model.USD); err != nil {
		t.Fatalf("GBP->USD: %v", err)
	}

	state := s.State()
	if diff := state.Expenses.Rent - 1000; diff < -5 || diff > 5 {
		t.Errorf("round-trip Rent = %v, want within 5 of 1000", state.Expenses.Rent)
	}
	if state.WarChest == 0 {
		t.Error("war chest must convert along with the rest")
	}
}

// failingResolver errors on every call.
type failingResolver struct{}

func (failingResolver) Rates(context.Context, model.Currency) (rates.Table, error) {
	return nil, errors.New("boom")
}

func TestConvert_ResolverFailureLeavesState(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 1000); err != nil {
		t.Fatal(err)
	}
	if err := s.Convert(context.Background(), failingResolver{}, model.NGN); err == nil {
		t.Fatal("expected error from failing resolver")
	}

	state := s.State()
	if state.Currency != model.USD || state.Expenses.Rent != 1000 {
		t.Error("failed conversion must leave state untouched")
	}
}

// partialResolver serves a table missing the target code.
type partialResolver struct{}

func (partialResolver) Rates(_ context.Context, base model.Currency) (rates.Table, error) {
	return rates.Table{base: 1}, nil
}

func TestConvert_UnsupportedTarget(t *testing.T) {
	s, _ := openTestStore(t)

	err := s.Convert(context.Background(), partialResolver{}, model.NGN)
	if !errors.Is(err, rates.ErrUnsupportedCurrency) {
		t.Errorf("err = %v, want ErrUnsupportedCurrency", err)
	}
}

// stalledResolver signals when the fetch begins, then blocks until
// released, to stage overlapping conversions deterministically.
type stalledResolver struct {
	started chan struct{}
	release chan struct{}
	table   rates.Table
}

func (r *stalledResolver) Rates(_ context.Context, base model.Currency) (rates.Table, error) {
	close(r.started)
	<-r.release
	t := rates.Table{base: 1}
	for code, rate := range r.table {
		t[code] = rate
	}
	return t, nil
}

func TestConvert_StaleConversionSuperseded(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 1000); err != nil {
		t.Fatal(err)
	}

	slow := &stalledResolver{
		started: make(chan struct{}),
		release: make(chan struct{}),
		table:   rates.Table{model.NGN: 800},
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Convert(context.Background(), slow, model.NGN)
	}()
	<-slow.started

	// A second conversion starts while the first is still resolving.
	if err := s.Convert(context.Background(), rates.Fallback{}, model.GBP); err != nil {
		t.Fatalf("newer convert: %v", err)
	}

	close(slow.release)
	if err := <-done; !errors.Is(err, ErrConversionSuperseded) {
		t.Errorf("stale convert err = %v, want ErrConversionSuperseded", err)
	}

	// The newer conversion's result stands.
	state := s.State()
	if state.Currency != model.GBP {
		t.Errorf("Currency = %s, want GBP from the newer conversion", state.Currency)
	}
	if state.Expenses.Rent != 790 {
		t.Errorf("Rent = %v, want 790", state.Expenses.Rent)
	}
}

func TestSnapshots_RecordAndList(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.UpdateExpense(model.ExpenseRent, 2000); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateIncome(model.IncomeMRR, 500); err != nil {
		t.Fatal(err)
	}

	state := s.State()
	m := planner.Compute(state)
	if err := s.RecordSnapshot(m, state.Currency); err != nil {
		t.Fatalf("RecordSnapshot: %v", err)
	}
	if err := s.RecordSnapshot(m, state.Currency); err != nil {
		t.Fatalf("RecordSnapshot: %v", err)
	}

	records, err := s.ListSnapshots(10)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	r := records[0]
	if r.TotalExpenses != 2000 || r.TotalIncome != 500 {
		t.Errorf("snapshot = %+v, want expenses 2000 income 500", r)
	}
	if r.Currency != model.USD {
		t.Errorf("Currency = %s, want USD", r.Currency)
	}

	limited, err := s.ListSnapshots(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d records", len(limited))
	}
}
