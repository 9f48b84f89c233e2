package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromCreatesDefaults(t *testing.T) {
	t.Setenv("SCANNER_BASE_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	def := DefaultConfig()
	if cfg.CLI.BaseURL != def.CLI.BaseURL || cfg.Web.Port != def.Web.Port {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromMergesAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[cli]\nbase_url = \"http://scanner:9000\"\nrequest_timeout = 12\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SCANNER_BASE_URL", "")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.CLI.BaseURL != "http://scanner:9000" || cfg.CLI.RequestTimeout != 12 {
		t.Errorf("cli = %+v", cfg.CLI)
	}
	if cfg.Web.Port != 8080 || cfg.CLI.LogDir != "tmp" {
		t.Errorf("missing values not merged: %+v", cfg)
	}

	t.Setenv("SCANNER_BASE_URL", "http://override")
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.CLI.BaseURL != "http://override" {
		t.Errorf("env override ignored: %s", cfg.CLI.BaseURL)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	t.Setenv("SCANNER_BASE_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Web.Port = 9999
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Web.Port != 9999 {
		t.Errorf("port = %d", got.Web.Port)
	}
}

func TestLoadFromRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cli\nbase_url="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}
