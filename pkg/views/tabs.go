package views

import (
	"strings"
	"unicode"

	"scan-viewer-go/pkg/store"
)

// categoryLabels names the resource types the scanner is known to emit.
var categoryLabels = map[string]string{
	"javascript": "JavaScript",
	"image":      "Images",
	"css":        "Stylesheets",
	"html":       "Pages",
	"video":      "Videos",
	"audio":      "Audio",
	"archive":    "Archives",
	"document":   "Documents",
	"executable": "Executables",
	"data":       "Data files",
	"config":     "Config files",
	"font":       "Fonts",
}

// Tab is one link category in the link browser.
type Tab struct {
	Category string
	Label    string
	Entries  []string
}

// LinkTabs returns one tab per non-empty category of internal links, in the
// order the server sent them. It returns nil while no scan has finished.
func LinkTabs(s store.State) []Tab {
	if !Visible(s) {
		return nil
	}
	var tabs []Tab
	for _, cat := range s.UniqueLinks.InternalCategories() {
		if len(cat.Entries) == 0 {
			continue
		}
		entries := make([]string, 0, len(cat.Entries))
		for _, e := range cat.Entries {
			entries = append(entries, e.Value)
		}
		tabs = append(tabs, Tab{
			Category: cat.Name,
			Label:    CategoryLabel(cat.Name),
			Entries:  entries,
		})
	}
	return tabs
}

// CategoryLabel returns the display label for a category key. Unknown keys
// are shown as the key itself with words capitalized.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	words := strings.FieldsFunc(category, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return category
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ActiveTab clamps a locally held tab index to the available tabs.
// The first tab is the default; -1 means there are no tabs.
func ActiveTab(tabs []Tab, index int) int {
	if len(tabs) == 0 {
		return -1
	}
	if index < 0 || index >= len(tabs) {
		return 0
	}
	return index
}

// TabIndex finds the tab for category, falling back to the first tab.
func TabIndex(tabs []Tab, category string) int {
	for i, t := range tabs {
		if t.Category == category {
			return i
		}
	}
	return ActiveTab(tabs, 0)
}
