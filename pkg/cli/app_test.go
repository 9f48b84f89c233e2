package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scan-viewer-go/pkg/config"
)

func TestApplySetting(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		set     string
		wantErr bool
	}{
		{"cli.base_url=http://scanner:5000", false},
		{"cli.request_timeout=30", false},
		{"cli.log_dir=/var/log/scan", false},
		{"web.host=127.0.0.1", false},
		{"web.port=9090", false},
		{"web.port=abc", true},
		{"cli.request_timeout=-1", true},
		{"cli.unknown=1", true},
		{"database.url=x", true},
		{"no-equals", true},
		{"cli=1", true},
	}
	for _, tt := range tests {
		err := applySetting(cfg, tt.set)
		if (err != nil) != tt.wantErr {
			t.Errorf("applySetting(%q) error = %v, wantErr %v", tt.set, err, tt.wantErr)
		}
	}

	if cfg.CLI.BaseURL != "http://scanner:5000" || cfg.CLI.RequestTimeout != 30 || cfg.Web.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestExportScanWritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scan_id": "s-1",
			"unique_links": {"all_unique_links": ["https://example.com/"],
				"internal_links": {"by_type": {"image": ["https://example.com/a.png"]}}},
			"performance": {"slave_performance": {"w1": {}}}}`))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.CLI.BaseURL = srv.URL
	app := NewApp(cfg)

	out := filepath.Join(t.TempDir(), "links.txt")
	if err := app.ExportScan(context.Background(), "example.com", "txt", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "https://example.com/a.png") {
		t.Errorf("export = %q", data)
	}
}

func TestExportScanRejectsUnknownFormat(t *testing.T) {
	app := NewApp(config.DefaultConfig())
	if err := app.ExportScan(context.Background(), "example.com", "xml", ""); err == nil {
		t.Error("expected error")
	}
}

func TestScanErrorsAreFriendly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "scanner exploded"}`))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.CLI.BaseURL = srv.URL
	err := NewApp(cfg).RunScan(context.Background(), "example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "scan example.com:") {
		t.Errorf("error should be the user message, got %q", err)
	}
}
