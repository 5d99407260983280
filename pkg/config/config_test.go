package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServerURL != "http://127.0.0.1:12000" {
		t.Errorf("unexpected default server url %s", cfg.ServerURL)
	}
	if cfg.DefaultSymbol != "AAPL" || cfg.Period != "1mo" || cfg.Interval != "1d" {
		t.Errorf("unexpected query defaults: %+v", cfg)
	}
	if result := cfg.Validate(); !result.IsValid() {
		t.Errorf("defaults must validate cleanly: %+v", result.Errors)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg.ServerURL != DefaultConfig().ServerURL {
		t.Error("defaults should stand when the file is absent")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "server_url: http://localhost:9000\nperiod: 3mo\nhistory_size: 10\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "http://localhost:9000" {
		t.Errorf("server url not overridden: %s", cfg.ServerURL)
	}
	if cfg.Period != "3mo" || cfg.HistorySize != 10 {
		t.Errorf("fields not overridden: %+v", cfg)
	}
	if cfg.DefaultSymbol != "AAPL" {
		t.Error("untouched fields should keep defaults")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server_url: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must be reported")
	}
}

func TestValidateServerURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServerURL = "not a url"

	result := cfg.Validate()
	if result.IsValid() {
		t.Fatal("expected validation errors")
	}
	if result.Errors[0].Field != "server_url" {
		t.Errorf("expected server_url error, got %+v", result.Errors[0])
	}

	cfg.ServerURL = "ftp://example.com"
	if cfg.Validate().IsValid() {
		t.Error("non-http scheme must be rejected")
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Period = "7mo"
	cfg.Interval = "42s"

	result := cfg.Validate()
	if !result.IsValid() {
		t.Fatal("unknown period/interval warn, they do not fail")
	}
	if len(result.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %+v", result.Warnings)
	}
}

func TestValidateHistorySize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistorySize = -1

	if cfg.Validate().IsValid() {
		t.Error("negative history size must be rejected")
	}
}
