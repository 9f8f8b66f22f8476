// Package store owns the mutable planner state and persists it as a
// single named record in SQLite, alongside a snapshot history.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/rates"

	_ "modernc.org/sqlite" // register sqlite driver
)

// stateKey is the fixed storage identifier for the one planner record.
const stateKey = "planner"

// ErrConversionSuperseded indicates a conversion's rate response arrived
// after a newer conversion had already started; the stale result was
// discarded and state is unchanged.
var ErrConversionSuperseded = errors.New("store: conversion superseded by a newer request")

// Store is the single owner of the FinancialState. All mutation funnels
// through its setters; readers get value copies, so derived metrics stay
// consistent per snapshot. Mutations are last-write-wins.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	state   model.FinancialState
	convGen uint64 // monotonic conversion generation; stale responses are dropped
}

// Open opens or creates the planner database and loads the state record.
// A missing record yields the documented defaults.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening planner db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db, state: model.DefaultState()}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// State returns a copy of the current state.
func (s *Store) State() model.FinancialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdateExpense replaces one expense category. Negative input clamps to 0.
func (s *Store) UpdateExpense(c model.ExpenseCategory, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Expenses.Set(c, model.ClampAmount(amount))
	return s.save()
}

// UpdateIncome replaces one income source. Negative input clamps to 0.
func (s *Store) UpdateIncome(src model.IncomeSource, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Income.Set(src, model.ClampAmount(amount))
	return s.save()
}

// SetGrowthRate sets the monthly MRR growth rate, clamped to 0-30.
func (s *Store) SetGrowthRate(rate int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GrowthRate = model.ClampGrowthRate(rate)
	return s.save()
}

// SetCurrency changes the display currency without converting amounts.
func (s *Store) SetCurrency(c model.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Currency = c
	return s.save()
}

// SetUseBuffer toggles the 25% safety margin.
func (s *Store) SetUseBuffer(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UseBuffer = on
	return s.save()
}

// SetUserSavings sets the runway savings override; 0 means unset.
func (s *Store) SetUserSavings(amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserSavings = model.ClampAmount(amount)
	return s.save()
}

// SetWarChest sets the extra monthly surplus goal.
func (s *Store) SetWarChest(amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.WarChest = model.ClampAmount(amount)
	return s.save()
}

// ResetAll restores the documented defaults. The currency is kept.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	currency := s.state.Currency
	s.state = model.DefaultState()
	s.state.Currency = currency
	return s.save()
}

// Convert converts every monetary field to the target currency using a
// rate from the resolver, rounding each amount to the nearest integer.
// Converting to the current currency is a no-op. A missing target rate
// rejects the whole operation and leaves state untouched. Overlapping
// conversions are serialized by generation: only the most recently
// started conversion may commit, the rest get ErrConversionSuperseded.
func (s *Store) Convert(ctx context.Context, resolver rates.Resolver, target model.Currency) error {
	s.mu.Lock()
	base := s.state.Currency
	if base == target {
		s.mu.Unlock()
		return nil
	}
	s.convGen++
	gen := s.convGen
	s.mu.Unlock()

	// Rate fetch happens outside the lock; metric reads stay unblocked.
	table, err := resolver.Rates(ctx, base)
	if err != nil {
		return fmt.Errorf("resolving rates for %s: %w", base, err)
	}
	rate, err := table.Rate(target)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.convGen {
		return ErrConversionSuperseded
	}

	for _, c := range model.ExpenseCategories {
		s.state.Expenses.Set(c, math.Round(s.state.Expenses.Get(c)*rate))
	}
	for _, src := range model.IncomeSources {
		s.state.Income.Set(src, math.Round(s.state.Income.Get(src)*rate))
	}
	s.state.WarChest = math.Round(s.state.WarChest * rate)
	s.state.UserSavings = math.Round(s.state.UserSavings * rate)
	s.state.Currency = target

	return s.save()
}

// load reads the single state record, keeping defaults when absent.
func (s *Store) load() error {
	row := s.db.QueryRow(`SELECT
		rent, food, transport, subscriptions, other,
		mrr, freelance, passive, salary,
		growth_rate, currency, use_buffer, war_chest, user_savings
		FROM planner_state WHERE id = ?`, stateKey)

	var st model.FinancialState
	var currency string
	var useBuffer int
	err := row.Scan(
		&st.Expenses.Rent, &st.Expenses.Food, &st.Expenses.Transport,
		&st.Expenses.Subscriptions, &st.Expenses.Other,
		&st.Income.MRR, &st.Income.Freelance, &st.Income.Passive, &st.Income.Salary,
		&st.GrowthRate, &currency, &useBuffer, &st.WarChest, &st.UserSavings,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading planner state: %w", err)
	}

	st.GrowthRate = model.ClampGrowthRate(st.GrowthRate)
	st.UseBuffer = useBuffer != 0
	if c, err := model.ParseCurrency(currency); err == nil {
		st.Currency = c
	} else {
		st.Currency = model.USD
	}

	s.state = st
	return nil
}

// save writes the whole record. Callers must hold the mutex.
func (s *Store) save() error {
	useBuffer := 0
	if s.state.UseBuffer {
		useBuffer = 1
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO planner_state
		(id, rent, food, transport, subscriptions, other,
		 mrr, freelance, passive, salary,
		 growth_rate, currency, use_buffer, war_chest, user_savings, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stateKey,
		s.state.Expenses.Rent, s.state.Expenses.Food, s.state.Expenses.Transport,
		s.state.Expenses.Subscriptions, s.state.Expenses.Other,
		s.state.Income.MRR, s.state.Income.Freelance, s.state.Income.Passive, s.state.Income.Salary,
		s.state.GrowthRate, string(s.state.Currency), useBuffer,
		s.state.WarChest, s.state.UserSavings,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving planner state: %w", err)
	}
	return nil
}

// SnapshotRecord is one stored metric snapshot.
type SnapshotRecord struct {
	TakenAt         time.Time
	Currency        model.Currency
	TotalExpenses   float64
	TotalIncome     float64
	FreedomNumber   float64
	FreedomPct      int
	Deficit         float64
	MonthsToFreedom int
	RunwayMonths    int
}

// RecordSnapshot appends the derived metrics to the history table.
func (s *Store) RecordSnapshot(m model.Metrics, currency model.Currency) error {
	_, err := s.db.Exec(`INSERT INTO snapshots
		(taken_at, currency, total_expenses, total_income, freedom_number,
		 freedom_pct, deficit, months_to_freedom, runway_months)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), string(currency),
		m.TotalExpenses, m.TotalIncome, m.FreedomNumber,
		m.FreedomPercentage, m.MonthlyDeficit, m.MonthsToFreedom, m.RunwayMonths,
	)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns up to limit snapshots, most recent first.
func (s *Store) ListSnapshots(limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT
		taken_at, currency, total_expenses, total_income, freedom_number,
		freedom_pct, deficit, months_to_freedom, runway_months
		FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []SnapshotRecord
	for rows.Next() {
		var r SnapshotRecord
		var takenAt, currency string
		if err := rows.Scan(&takenAt, &currency, &r.TotalExpenses, &r.TotalIncome,
			&r.FreedomNumber, &r.FreedomPct, &r.Deficit, &r.MonthsToFreedom, &r.RunwayMonths); err != nil {
			return nil, err
		}
		r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		r.Currency = model.Currency(currency)
		records = append(records, r)
	}
	return records, rows.Err()
}
