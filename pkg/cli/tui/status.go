package tui

import (
	"context"
	"fmt"
	"strings"

	"scan-viewer-go/pkg/cli/tui/scanpage"
	"scan-viewer-go/pkg/models"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusSource reports the scanner's current load and devices.
type StatusSource interface {
	ServerStatus(ctx context.Context) (*models.ServerStatus, error)
}

// statusModel loads and displays the scanner status once.
type statusModel struct {
	ctx    context.Context
	source StatusSource

	status *models.ServerStatus
	err    error
	ready  bool
}

// NewStatusModel creates the scanner status flow.
func NewStatusModel(ctx context.Context, source StatusSource) tea.Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return &statusModel{ctx: ctx, source: source}
}

func (m *statusModel) Init() tea.Cmd {
	source, ctx := m.source, m.ctx
	return func() tea.Msg {
		status, err := source.ServerStatus(ctx)
		return scanpage.StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m *statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanpage.StatusLoadedMsg:
		m.status, m.err = msg.Status, msg.Err
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.ready = false
			return m, m.Init()
		case "esc", "enter", "m":
			return m, func() tea.Msg { return MenuNavigationMsg{} }
		}
	}

	return m, nil
}

func (m *statusModel) View() string {
	var b strings.Builder
	b.WriteString(renderTitle("Scanner Status"))

	switch {
	case !m.ready:
		b.WriteString(renderLoadingState("Loading scanner status..."))
	case m.err != nil:
		b.WriteString(renderErrorView(userFacingError(m.err)))
	default:
		b.WriteString(fieldLabelStyle.Render("Status:") + statusText(m.status.Status) + "\n")
		b.WriteString(fieldLabelStyle.Render("Active scans:") + fmt.Sprintf("%d", m.status.ActiveScans) + "\n")
		b.WriteString(fieldLabelStyle.Render("Max workers:") + fmt.Sprintf("%d", m.status.MaxWorkers) + "\n\n")

		b.WriteString(boldStyle.Render("Devices") + "\n")
		if len(m.status.AvailableDevices) == 0 {
			b.WriteString(mutedStyle.Render("  none reported") + "\n")
		}
		for _, d := range m.status.AvailableDevices {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				boldStyle.Render(d.ID), d.Name, mutedStyle.Render("("+d.Type+")")))
		}
	}

	b.WriteString("\n" + helpStyle.Render("r refresh • Esc back to menu • q quit") + "\n")
	return b.String()
}

func statusText(status string) string {
	switch status {
	case "running", "healthy", "ok":
		return renderSuccess(status)
	case "":
		return mutedStyle.Render("unknown")
	default:
		return renderWarning(status)
	}
}
