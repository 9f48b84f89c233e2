package export

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"

	"scan-viewer-go/pkg/store"
)

type Exporter interface {
	// Export writes the links of the finished scan in s to w
	Export(s store.State, w io.Writer) error
}

// LinkRecord is one exported link.
type LinkRecord struct {
	URL      string `csv:"URL" json:"url"`
	Category string `csv:"Category" json:"category,omitempty"`
	Domain   string `csv:"Domain" json:"domain"`
	Protocol string `csv:"Protocol" json:"protocol"`
	Path     string `csv:"Path" json:"path"`
}

// New returns the exporter for format: txt, csv or json.
func New(format string) (Exporter, error) {
	switch format {
	case "txt":
		return NewTextExporter(), nil
	case "csv":
		return NewCSVExporter(), nil
	case "json":
		return NewJsonExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (want txt, csv or json)", format)
	}
}

// ToFile exports s to filename.
func ToFile(e Exporter, s store.State, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := e.Export(s, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// collect gathers the unique internal links of s sorted by URL, tagged with
// the first category each one appeared in. Links listed only in
// all_unique_links carry no category.
func collect(s store.State) []LinkRecord {
	if !s.Finished {
		return nil
	}
	category := map[string]string{}
	for _, cat := range s.UniqueLinks.InternalCategories() {
		for _, e := range cat.Entries {
			if _, seen := category[e.Value]; !seen {
				category[e.Value] = cat.Name
			}
		}
	}
	for _, u := range s.UniqueLinks.AllUniqueLinks {
		if _, seen := category[u]; !seen {
			category[u] = ""
		}
	}

	records := make([]LinkRecord, 0, len(category))
	for link, cat := range category {
		rec := LinkRecord{URL: link, Category: cat}
		if parsed, err := url.Parse(link); err == nil {
			rec.Domain = parsed.Host
			rec.Protocol = parsed.Scheme
			rec.Path = parsed.Path
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].URL < records[j].URL })
	return records
}
