package models

import (
	"encoding/json"
	"errors"
	"testing"
)

const sampleReport = `{
  "scan_id": "abc-123",
  "domain": "example.com",
  "status": "completed",
  "summary": {"total_pages_scanned": 5, "scan_duration_seconds": 1.5, "completion_status": "queue_empty"},
  "unique_links": {
    "internal_links": {"total": 3, "by_type": {
      "javascript": ["https://example.com/app.js"],
      "image": {"a": "x.png", "b": "y.png"},
      "html": []
    }}
  },
  "performance": {
    "slave_performance": {
      "w2": {"device": "d2", "links_found": 1, "total_bytes_mb": 0.5, "pages_processed": 1, "avg_page_size_kb": 2, "avg_processing_time": 0.1, "errors": 0, "timeout_errors": 0},
      "w1": {"device": "d1", "links_found": 10, "total_bytes_mb": 1.2, "pages_processed": 5, "avg_page_size_kb": 24, "avg_processing_time": 0.3, "errors": 0, "timeout_errors": 0}
    }
  }
}`

func TestScanReportDecode(t *testing.T) {
	var r ScanReport
	if err := json.Unmarshal([]byte(sampleReport), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if r.ScanID != "abc-123" {
		t.Errorf("scan id = %q", r.ScanID)
	}
	if r.Summary == nil || r.Summary.TotalPagesScanned != 5 {
		t.Errorf("summary = %+v", r.Summary)
	}

	workers := r.Workers()
	if len(workers) != 2 {
		t.Fatalf("got %d workers, want 2", len(workers))
	}
	// server order, not sorted
	if workers[0].ID != "w2" || workers[1].ID != "w1" {
		t.Errorf("worker order = %s, %s", workers[0].ID, workers[1].ID)
	}
	if workers[1].TotalBytesMB != 1.2 || workers[1].LinksFound != 10 {
		t.Errorf("w1 = %+v", workers[1])
	}

	cats := r.UniqueLinks.InternalCategories()
	names := []string{}
	for _, c := range cats {
		names = append(names, c.Name)
	}
	if len(names) != 3 || names[0] != "javascript" || names[1] != "image" || names[2] != "html" {
		t.Errorf("category order = %v", names)
	}

	img, ok := cats.get("image")
	if !ok || len(img.Entries) != 2 {
		t.Fatalf("image = %+v", img)
	}
	if img.Entries[0] != (LinkEntry{Key: "a", Value: "x.png"}) {
		t.Errorf("first image entry = %+v", img.Entries[0])
	}

	js, _ := cats.get("javascript")
	if len(js.Entries) != 1 || js.Entries[0].Value != "https://example.com/app.js" {
		t.Errorf("javascript = %+v", js)
	}
}

func TestScanReportValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing scan id", `{"performance": {"slave_performance": {}}}`, ErrMissingScanID},
		{"missing performance", `{"scan_id": "x"}`, ErrMissingWorkers},
		{"null workers", `{"scan_id": "x", "performance": {"slave_performance": null}}`, ErrMissingWorkers},
		{"empty workers", `{"scan_id": "x", "performance": {"slave_performance": {}}}`, nil},
		{"no links", `{"scan_id": "x", "performance": {"slave_performance": {}}, "unique_links": {}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r ScanReport
			if err := json.Unmarshal([]byte(tt.body), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if err := r.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCategoriesRawValues(t *testing.T) {
	var c Categories
	body := `{"data": {"k": {"nested": true}}, "font": 7, "video": null}`
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, _ := c.get("data")
	if len(data.Entries) != 1 || data.Entries[0].Value != `{"nested":true}` {
		t.Errorf("data = %+v", data)
	}
	font, _ := c.get("font")
	if len(font.Entries) != 1 || font.Entries[0].Value != "7" {
		t.Errorf("font = %+v", font)
	}
	video, ok := c.get("video")
	if !ok || len(video.Entries) != 0 {
		t.Errorf("video = %+v", video)
	}
}

func TestScanParamsQuery(t *testing.T) {
	got := DefaultScanParams.Query("example.com").Encode()
	want := "domain=example.com&max_depth=2&max_pages=50&timeout=5&workers=5"
	if got != want {
		t.Errorf("Query() = %q, want %q", got, want)
	}
}
