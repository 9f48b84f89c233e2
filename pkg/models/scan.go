package models

import (
	"errors"
	"net/url"
	"strconv"
)

// ScanParams are the fixed crawl limits sent with every scan request.
type ScanParams struct {
	MaxPages int
	MaxDepth int
	Workers  int
	Timeout  int // seconds, advisory to the scanner only
}

// DefaultScanParams are the limits used by every scan. They are not user-configurable.
var DefaultScanParams = ScanParams{
	MaxPages: 50,
	MaxDepth: 2,
	Workers:  5,
	Timeout:  5,
}

// Query encodes the request query string for a scan of domain.
func (p ScanParams) Query(domain string) url.Values {
	q := url.Values{}
	q.Set("domain", domain)
	q.Set("max_pages", strconv.Itoa(p.MaxPages))
	q.Set("max_depth", strconv.Itoa(p.MaxDepth))
	q.Set("workers", strconv.Itoa(p.Workers))
	q.Set("timeout", strconv.Itoa(p.Timeout))
	return q
}

// ScanReport is the JSON body returned by GET /api/scan.
type ScanReport struct {
	ScanID      string        `json:"scan_id"`
	Timestamp   string        `json:"timestamp,omitempty"`
	Domain      string        `json:"domain,omitempty"`
	Status      string        `json:"status,omitempty"`
	Summary     *ScanSummary  `json:"summary,omitempty"`
	UniqueLinks LinkInventory `json:"unique_links"`
	Performance *Performance  `json:"performance"`
}

// Performance holds the per-worker metrics block of a report.
type Performance struct {
	SlavePerformance       Workers `json:"slave_performance"`
	TotalProcessingTime    float64 `json:"total_processing_time,omitempty"`
	TotalDataTransferredMB float64 `json:"total_data_transferred_mb,omitempty"`
}

// ScanSummary is the scanner's overview of a finished run.
type ScanSummary struct {
	TotalPagesScanned   int     `json:"total_pages_scanned"`
	SuccessfulPages     int     `json:"successful_pages"`
	ErrorPages          int     `json:"error_pages"`
	TimeoutPages        int     `json:"timeout_pages"`
	ScanDurationSeconds float64 `json:"scan_duration_seconds"`
	UniqueURLsVisited   int     `json:"unique_urls_visited"`
	CompletionStatus    string  `json:"completion_status"`
}

// ErrMissingScanID and ErrMissingWorkers describe reports that lack required fields.
var (
	ErrMissingScanID  = errors.New("missing scan_id")
	ErrMissingWorkers = errors.New("missing performance.slave_performance")
)

// Validate checks that the fields every client relies on are present.
// unique_links is optional at every level and is not checked.
func (r *ScanReport) Validate() error {
	if r.ScanID == "" {
		return ErrMissingScanID
	}
	if r.Performance == nil || r.Performance.SlavePerformance == nil {
		return ErrMissingWorkers
	}
	return nil
}

// Workers returns the worker list, or nil if the report has none.
func (r *ScanReport) Workers() Workers {
	if r.Performance == nil {
		return nil
	}
	return r.Performance.SlavePerformance
}

// ServerStatus is the body of GET /api/scan/status.
type ServerStatus struct {
	Status           string   `json:"status"`
	ActiveScans      int      `json:"active_scans"`
	MaxWorkers       int      `json:"max_workers"`
	AvailableDevices []Device `json:"available_devices"`
}

// Device is a browser profile the scanner can impersonate.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
