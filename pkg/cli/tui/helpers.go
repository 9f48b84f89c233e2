package tui

import (
	"errors"
	"fmt"
	"strings"

	"scan-viewer-go/pkg/cli/client"
	"scan-viewer-go/pkg/views"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// renderErrorView renders a standard error view with exit message
func renderErrorView(err error) string {
	return "\n" + renderError(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		helpStyle.Render("Press Esc to go back.") + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return "\n" + infoStyle.Render(message) + "\n"
}

// renderWorkerTable renders the per-worker metrics table
func renderWorkerTable(rows [][]string) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No workers reported.") + "\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dividerStyle).
		Headers(views.WorkerColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row%2 == 1:
				return tableOddRowStyle
			default:
				return tableCellStyle
			}
		})

	return t.Render() + "\n"
}

// renderTabBar renders the category tabs with the active one highlighted
func renderTabBar(tabs []views.Tab, active int) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tab.Label, len(tab.Entries))
		if i == active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

// renderLinkBrowser renders the tab bar and every entry of the active tab
func renderLinkBrowser(tabs []views.Tab, active int, width int) string {
	if len(tabs) == 0 {
		return mutedStyle.Render("No internal links found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(renderTabBar(tabs, active))
	b.WriteString(renderDivider(width))
	b.WriteString("\n")
	for _, entry := range tabs[active].Entries {
		b.WriteString("  " + linkEntryStyle.Render(entry) + "\n")
	}
	return b.String()
}

// renderInlineError renders an error message inline (without full error view formatting)
func renderInlineError(err error) string {
	if err == nil {
		return ""
	}
	return renderError(err.Error())
}

// userFacingError converts structured scan errors into friendly messages,
// while leaving other error types unchanged.
func userFacingError(err error) error {
	if err == nil {
		return nil
	}

	if scanErr, ok := client.AsScanError(err); ok {
		return errors.New(scanErr.UserMessage())
	}

	return err
}

// isRetryable reports whether err is a scan error worth retrying
func isRetryable(err error) bool {
	scanErr, ok := client.AsScanError(err)
	return ok && scanErr.IsRetryable()
}
