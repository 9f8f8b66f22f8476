package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists should be false without a config file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/freedom-data"
	cfg.Rates.Offline = true
	cfg.Projection.ExpenseGrowthRate = 3
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists should be true after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DataDir != cfg.General.DataDir {
		t.Errorf("DataDir = %q, want %q", got.General.DataDir, cfg.General.DataDir)
	}
	if !got.Rates.Offline {
		t.Error("Offline flag lost in round trip")
	}
	if got.Projection.ExpenseGrowthRate != 3 {
		t.Errorf("ExpenseGrowthRate = %d, want 3", got.Projection.ExpenseGrowthRate)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
}

func TestDataDir_Precedence(t *testing.T) {
	xdgData := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdgData)

	cfg := DefaultConfig()
	if got, want := DataDir(cfg), filepath.Join(xdgData, "freedom"); got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}

	cfg.General.DataDir = "/custom/dir"
	if got := DataDir(cfg); got != "/custom/dir" {
		t.Errorf("DataDir = %q, want config override", got)
	}

	if got := DBPath(cfg); got != filepath.Join("/custom/dir", "planner.db") {
		t.Errorf("DBPath = %q", got)
	}
}
