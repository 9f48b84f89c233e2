package services

import (
	"context"
	"fmt"

	"scan-viewer-go/pkg/cli/logger"
	"scan-viewer-go/pkg/models"
	"scan-viewer-go/pkg/store"
	"scan-viewer-go/pkg/utils"
)

// Scanner performs scan requests against the scanner API.
type Scanner interface {
	Scan(ctx context.Context, domain string, params models.ScanParams) (*models.ScanReport, error)
}

// ScanService is the input side of a scan page: it records domain edits and
// turns submissions into scan requests whose results land in the store.
type ScanService struct {
	store   *store.Store
	scanner Scanner
	params  models.ScanParams
}

// NewScanService creates a scan service bound to one store.
func NewScanService(s *store.Store, scanner Scanner) *ScanService {
	return &ScanService{
		store:   s,
		scanner: scanner,
		params:  models.DefaultScanParams,
	}
}

// Store returns the store the service dispatches to
func (s *ScanService) Store() *store.Store {
	return s.store
}

// ChangeDomain records the raw input value. Empty strings are accepted.
func (s *ScanService) ChangeDomain(value string) {
	s.store.Dispatch(store.SetDomain{Domain: value})
}

// Begin validates the current domain and marks a scan as started.
// It returns the domain to request. On error nothing is dispatched.
func (s *ScanService) Begin() (string, error) {
	domain, err := utils.ValidateDomain(s.store.State().Domain)
	if err != nil {
		return "", err
	}
	s.store.Dispatch(store.ScanStarted{})
	logger.Log("scan started: domain=%s", domain)
	return domain, nil
}

// Fetch requests a scan of domain. It does not touch the store, so it is safe
// to run off the UI loop.
func (s *ScanService) Fetch(ctx context.Context, domain string) (*models.ScanReport, error) {
	report, err := s.scanner.Scan(ctx, domain, s.params)
	if err != nil {
		logger.LogError(err, "scan failed: domain=%s", domain)
		return nil, fmt.Errorf("scan %s: %w", domain, err)
	}
	return report, nil
}

// Apply stores a scan result in one action.
func (s *ScanService) Apply(report *models.ScanReport) store.State {
	logger.Log("scan completed: scan_id=%s workers=%d", report.ScanID, len(report.Workers()))
	return s.store.Dispatch(store.CompletedFrom(report))
}

// Submit runs Begin, Fetch and Apply in sequence.
// A failed scan leaves the store as Begin left it.
func (s *ScanService) Submit(ctx context.Context) (*models.ScanReport, error) {
	domain, err := s.Begin()
	if err != nil {
		return nil, err
	}
	report, err := s.Fetch(ctx, domain)
	if err != nil {
		return nil, err
	}
	s.Apply(report)
	return report, nil
}
