package tui

import (
	"context"
	"strings"

	"scan-viewer-go/pkg/cli/logger"
	"scan-viewer-go/pkg/cli/tui/scanpage"
	"scan-viewer-go/pkg/services"

	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the Bubble Tea model that acts as an app shell for multiple flows.
// It presents a simple menu and then hands control to a specific flow model.
type rootModel struct {
	// Shared dependencies
	ctx     context.Context
	service *services.ScanService
	status  StatusSource

	// Current active flow (when nil, we are in the main menu)
	current tea.Model

	// Last known terminal size, replayed to flows opened later
	size *tea.WindowSizeMsg

	// Error of a scan that failed while the scan page was closed
	scanErr error
}

// NewRootModel constructs the root app-shell model. The scan flow reuses the
// service's store, so results survive a trip back to the menu.
func NewRootModel(ctx context.Context, service *services.ScanService, status StatusSource) tea.Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return &rootModel{
		ctx:     ctx,
		service: service,
		status:  status,
	}
}

// NewShell wraps the root model with the menu-level help overlay. While a
// flow is active every key goes to the flow.
func NewShell(ctx context.Context, service *services.ScanService, status StatusSource) tea.Model {
	root := NewRootModel(ctx, service, status).(*rootModel)
	return NewViewportWrapper(root, ViewportConfig{
		EnableHelp:   true,
		HelpContent:  RootMenuHelpContent,
		CapturesKeys: root.IsDelegating,
	})
}

func (m *rootModel) Init() tea.Cmd {
	return nil
}

// IsDelegating reports whether a flow is active.
func (m *rootModel) IsDelegating() bool {
	return m.current != nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(MenuNavigationMsg); ok {
		m.current = nil
		return m, nil
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.size = &size
	}

	// Scans outlive the page that started them
	if done, ok := msg.(scanpage.ScanDoneMsg); ok && !m.onScanPage() {
		m.finishScan(done)
		return m, nil
	}

	// If we have an active flow, delegate all messages to it.
	if m.current != nil {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "1":
			page := newScanPageModel(m.ctx, m.service)
			page.err, m.scanErr = m.scanErr, nil
			return m.open(wrapScanPage(page))

		case "2":
			return m.open(NewStatusModel(m.ctx, m.status))
		}
	}

	return m, nil
}

// onScanPage reports whether the active flow is the scan page
func (m *rootModel) onScanPage() bool {
	w, ok := m.current.(*ViewportWrapper)
	if !ok {
		return false
	}
	_, ok = w.model.(*scanPageModel)
	return ok
}

func (m *rootModel) finishScan(done scanpage.ScanDoneMsg) {
	if done.Err != nil {
		logger.LogError(done.Err, "rootModel: scan of %s failed off the scan page", done.Domain)
		m.scanErr = done.Err
		return
	}
	m.service.Apply(done.Report)
	m.scanErr = nil
}

func (m *rootModel) open(flow tea.Model) (tea.Model, tea.Cmd) {
	m.current = flow
	if m.size != nil {
		m.current, _ = m.current.Update(*m.size)
	}
	return m, m.current.Init()
}

func (m *rootModel) View() string {
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder

	b.WriteString(renderTitle("Scan Viewer"))
	b.WriteString(renderDivider(60))
	b.WriteString("\n\n")
	b.WriteString(boldStyle.Render("Select an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " Scan a domain\n")
	b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Scanner status\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press the number of an option, or 'q' / Esc to quit.") + "\n")

	return b.String()
}
