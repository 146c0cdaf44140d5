package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Analysis.Delimiter != ',' {
		t.Errorf("delimiter = %q", cfg.Analysis.Delimiter)
	}
	if cfg.Analysis.Workers != 4 {
		t.Errorf("workers = %d", cfg.Analysis.Workers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("SUMMARY_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Analysis.Delimiter != ';' {
		t.Errorf("delimiter = %q", cfg.Analysis.Delimiter)
	}
	if cfg.Analysis.Workers != 2 {
		t.Errorf("workers = %d", cfg.Analysis.Workers)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CSV_DELIMITER", `"`)
	if _, err := Load(); err == nil {
		t.Error("expected error for quote delimiter")
	}
	t.Setenv("CSV_DELIMITER", ",")

	t.Setenv("SUMMARY_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero workers")
	}
}
