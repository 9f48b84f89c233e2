package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"scan-viewer-go/pkg/store"
)

type TextExporter struct{}

func NewTextExporter() Exporter {
	return &TextExporter{}
}

// Export writes one URL per line.
func (e *TextExporter) Export(s store.State, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range collect(s) {
		if _, err := fmt.Fprintln(bw, rec.URL); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(s store.State, w io.Writer) error {
	records := collect(s)
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

// Document is the JSON export layout.
type Document struct {
	Timestamp  string       `json:"timestamp"`
	ScanID     string       `json:"scan_id"`
	Domain     string       `json:"domain"`
	TotalLinks int          `json:"total_links"`
	Links      []LinkRecord `json:"links"`
}

type JsonExporter struct {
	now func() time.Time
}

func NewJsonExporter() Exporter {
	return &JsonExporter{now: time.Now}
}

func (e *JsonExporter) Export(s store.State, w io.Writer) error {
	records := collect(s)
	doc := Document{
		Timestamp:  e.now().Format(time.RFC3339),
		ScanID:     s.ScanID,
		Domain:     s.Domain,
		TotalLinks: len(records),
		Links:      records,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
