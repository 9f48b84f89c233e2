package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"scan-viewer-go/pkg/models"
	"scan-viewer-go/pkg/store"
	"scan-viewer-go/pkg/views"

	"github.com/rodaine/table"
)

// FormatScanOutput formats a finished scan for non-interactive CLI output:
// summary line, worker table and the internal links grouped by category.
func FormatScanOutput(s store.State) string {
	if !views.Visible(s) {
		return FormatEmptyState("No scan results.")
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Scan %s of %s\n", s.ScanID, s.Domain))
	if summary := views.Summary(s); summary != "" {
		b.WriteString(summary + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Workers\n")
	writeWorkerTable(&b, views.WorkerRows(s))
	b.WriteString("\n")

	tabs := views.LinkTabs(s)
	if len(tabs) == 0 {
		b.WriteString("No internal links found.\n")
		return b.String()
	}
	for _, tab := range tabs {
		b.WriteString(fmt.Sprintf("%s (%d)\n", tab.Label, len(tab.Entries)))
		for _, entry := range tab.Entries {
			b.WriteString("  " + entry + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// writeWorkerTable prints rows under the worker columns
func writeWorkerTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No workers reported.")
		return
	}

	headers := make([]interface{}, len(views.WorkerColumns))
	for i, c := range views.WorkerColumns {
		headers[i] = c
	}
	tbl := table.New(headers...).WithWriter(w)
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}
	tbl.Print()
}

// FormatStatus formats the scanner status summary
func FormatStatus(status *models.ServerStatus) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Status:       %s\n", status.Status))
	b.WriteString(fmt.Sprintf("  Active scans: %d\n", status.ActiveScans))
	b.WriteString(fmt.Sprintf("  Max workers:  %d\n", status.MaxWorkers))
	b.WriteString("\n")

	if len(status.AvailableDevices) == 0 {
		b.WriteString("No devices reported.\n")
		return b.String()
	}

	tbl := table.New("Device", "Name", "Type").WithWriter(&b)
	for _, d := range status.AvailableDevices {
		tbl.AddRow(d.ID, d.Name, d.Type)
	}
	tbl.Print()

	return b.String()
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

// FormatEmptyState formats an empty state message
func FormatEmptyState(message string) string {
	return fmt.Sprintf("\n%s\n", message)
}

// WriteToStdout writes formatted output to stdout
func WriteToStdout(content string) {
	fmt.Fprint(os.Stdout, content)
}

// WriteToStderr writes formatted output to stderr
func WriteToStderr(content string) {
	fmt.Fprint(os.Stderr, content)
}
