package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theirongolddev/freedom/internal/model"
)

func TestClient_LiveRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest/USD" {
			t.Errorf("path = %q, want /latest/USD", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"NGN":1500,"GBP":0.8,"EUR":0.9,"JPY":150}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	table, err := c.Rates(context.Background(), model.USD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rate, _ := table.Rate(model.NGN); rate != 1500 {
		t.Errorf("NGN rate = %v, want 1500", rate)
	}
	if rate, _ := table.Rate(model.USD); rate != 1 {
		t.Errorf("self rate = %v, want 1", rate)
	}
	// Unsupported upstream codes must not leak into the table.
	if _, ok := table["JPY"]; ok {
		t.Error("JPY should have been filtered out")
	}
}

func TestClient_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	table, err := c.Rates(context.Background(), model.USD)
	if err != nil {
		t.Fatalf("fetch failure must degrade, not error: %v", err)
	}

	want := FallbackTable(model.USD)
	for code, rate := range want {
		if got := table[code]; got != rate {
			t.Errorf("rate[%s] = %v, want fallback %v", code, got, rate)
		}
	}
}

func TestClient_FallsBackOnGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	table, err := c.Rates(context.Background(), model.GBP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate, _ := table.Rate(model.NGN); rate != 1010 {
		t.Errorf("NGN rate = %v, want GBP fallback 1010", rate)
	}
}

func TestTable_UnsupportedTarget(t *testing.T) {
	table := Table{model.USD: 1}
	if _, err := table.Rate(model.NGN); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("err = %v, want ErrUnsupportedCurrency", err)
	}

	// Zero and negative rates are as unusable as missing ones.
	table[model.NGN] = 0
	if _, err := table.Rate(model.NGN); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("zero rate: err = %v, want ErrUnsupportedCurrency", err)
	}
}

func TestFallback_AllBases(t *testing.T) {
	var f Fallback
	for _, base := range model.Currencies {
		table, err := f.Rates(context.Background(), base)
		if err != nil {
			t.Fatalf("Fallback.Rates(%s): %v", base, err)
		}
		for _, target := range model.Currencies {
			rate, err := table.Rate(target)
			if err != nil {
				t.Errorf("%s->%s missing from fallback", base, target)
			}
			if base == target && rate != 1 {
				t.Errorf("%s self rate = %v, want 1", base, rate)
			}
		}
	}
}

func TestFallbackTable_UnknownBase(t *testing.T) {
	table := FallbackTable(model.Currency("XXX"))
	if rate, _ := table.Rate(model.NGN); rate != 800 {
		t.Errorf("unknown base should use USD table, NGN = %v, want 800", rate)
	}
}
