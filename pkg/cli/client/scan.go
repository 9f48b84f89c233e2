package client

import (
	"context"
	"fmt"
	"net/http"

	"scan-viewer-go/pkg/models"
)

// Scan requests a scan of domain with params and returns the validated report.
func (c *Client) Scan(ctx context.Context, domain string, params models.ScanParams) (*models.ScanReport, error) {
	var report models.ScanReport
	if err := c.doGetRequest(ctx, "/api/scan", params.Query(domain), &report); err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, newMalformedResponseError(err.Error(), err)
	}
	return &report, nil
}

// ServerStatus retrieves the scanner's status summary
func (c *Client) ServerStatus(ctx context.Context) (*models.ServerStatus, error) {
	var status models.ServerStatus
	if err := c.doGetRequest(ctx, "/api/scan/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CheckHealth verifies the scanner is available
func (c *Client) CheckHealth(ctx context.Context) error {
	var health struct {
		Status string `json:"status"`
	}
	if err := c.doGetRequest(ctx, "/health", nil, &health); err != nil {
		return err
	}
	if health.Status != "" && health.Status != "healthy" {
		return newServerError(http.StatusOK, fmt.Sprintf("scanner reports %s", health.Status))
	}
	return nil
}
