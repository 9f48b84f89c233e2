package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// RootMenuHelpContent returns help for root menu
func RootMenuHelpContent() string {
	items := []HelpItem{
		{"1-2", "Select menu option (Scan / Scanner status)"},
		{"q / Esc", "Quit"},
	}
	return renderHelpItems(items)
}

// ScanPageHelpContent returns help for the scan page
func ScanPageHelpContent() string {
	items := []HelpItem{
		{"Enter", "Start scan (while typing)"},
		{"Esc", "Leave the input to browse results"},
		{"/ or i", "Edit the domain again"},
		{"← / → / Tab", "Switch link category"},
		{"↑ / ↓ / PgUp / PgDn", "Scroll"},
		{"Ctrl+R", "Retry the last failed scan"},
		{"m", "Return to menu"},
		{"?", "Toggle help"},
		{"q", "Quit"},
		{"Ctrl+C", "Force quit"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
