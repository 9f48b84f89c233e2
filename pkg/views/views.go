// Package views derives what the result views show from a store.State.
// Every function here is pure; the terminal and web front ends only style
// the values they return.
package views

import (
	"fmt"
	"strconv"
	"strings"

	"scan-viewer-go/pkg/models"
	"scan-viewer-go/pkg/store"
)

// WorkerColumns are the worker table headers, in display order.
var WorkerColumns = []string{
	"Worker ID",
	"Device",
	"Links found",
	"Total bytes (MB)",
	"Pages processed",
	"Avg page size (KB)",
	"Avg processing time",
	"Errors",
	"Timeout errors",
}

// Visible reports whether result views should render at all.
func Visible(s store.State) bool {
	return s.Finished
}

// WorkerRows returns one row per worker in server order, or nil while no
// scan has finished.
func WorkerRows(s store.State) [][]string {
	if !Visible(s) {
		return nil
	}
	rows := make([][]string, 0, len(s.Workers))
	for _, w := range s.Workers {
		rows = append(rows, WorkerRow(w))
	}
	return rows
}

// WorkerRow formats one worker in WorkerColumns order.
func WorkerRow(w models.WorkerStats) []string {
	return []string{
		w.ID,
		w.Device,
		strconv.Itoa(w.LinksFound),
		FormatNumber(w.TotalBytesMB),
		strconv.Itoa(w.PagesProcessed),
		FormatNumber(w.AvgPageSizeKB),
		FormatNumber(w.AvgProcessingTime),
		strconv.Itoa(w.Errors),
		strconv.Itoa(w.TimeoutErrors),
	}
}

// FormatNumber renders f in its shortest form (24, 1.2, 0.003).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Summary returns a one-line description of the finished scan, or "" when
// there is nothing to report.
func Summary(s store.State) string {
	if !Visible(s) || s.Summary == nil {
		return ""
	}
	sum := s.Summary
	parts := []string{
		fmt.Sprintf("%d pages scanned", sum.TotalPagesScanned),
		fmt.Sprintf("%d ok", sum.SuccessfulPages),
		fmt.Sprintf("%d errors", sum.ErrorPages),
		fmt.Sprintf("%ss", FormatNumber(sum.ScanDurationSeconds)),
	}
	if sum.CompletionStatus != "" {
		parts = append(parts, strings.ReplaceAll(sum.CompletionStatus, "_", " "))
	}
	return strings.Join(parts, " · ")
}
