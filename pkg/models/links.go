package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LinkInventory is the unique_links block of a scan report.
type LinkInventory struct {
	AllUniqueLinks []string   `json:"all_unique_links,omitempty"`
	InternalLinks  *LinkGroup `json:"internal_links,omitempty"`
	ExternalLinks  *LinkGroup `json:"external_links,omitempty"`
}

// LinkGroup holds links of one origin (internal or external) grouped by resource type.
type LinkGroup struct {
	Total  int        `json:"total"`
	ByType Categories `json:"by_type"`
}

// Categories is the by_type mapping, kept in the order the server sent it.
type Categories []Category

// Category is one resource type (javascript, image, ...) and its links.
type Category struct {
	Name    string
	Entries []LinkEntry
}

// LinkEntry is a single discovered link. Key is the object key when the
// server sent a mapping, or the position when it sent a list.
type LinkEntry struct {
	Key   string
	Value string
}

// InternalCategories returns internal_links.by_type, or nil when absent.
func (inv LinkInventory) InternalCategories() Categories {
	if inv.InternalLinks == nil {
		return nil
	}
	return inv.InternalLinks.ByType
}

// get returns the category with the given name.
func (c Categories) get(name string) (Category, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Categories) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	out := Categories{}
	err := eachMember(data, func(key string, raw json.RawMessage) error {
		entries, err := decodeEntries(raw)
		if err != nil {
			return err
		}
		out = append(out, Category{Name: key, Entries: entries})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// decodeEntries accepts a list, a mapping, null, or a lone scalar.
// Values that are not strings are kept as their raw JSON text.
func decodeEntries(raw json.RawMessage) ([]LinkEntry, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) || len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		entries := make([]LinkEntry, 0, len(items))
		for i, item := range items {
			entries = append(entries, LinkEntry{Key: strconv.Itoa(i), Value: rawText(item)})
		}
		return entries, nil
	case '{':
		var entries []LinkEntry
		err := eachMember(raw, func(key string, value json.RawMessage) error {
			entries = append(entries, LinkEntry{Key: key, Value: rawText(value)})
			return nil
		})
		return entries, err
	default:
		return []LinkEntry{{Key: "0", Value: rawText(raw)}}, nil
	}
}

// rawText unquotes JSON strings and compacts anything else.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
