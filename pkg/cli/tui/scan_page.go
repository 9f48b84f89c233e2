package tui

import (
	"context"
	"strings"

	"scan-viewer-go/pkg/cli/logger"
	"scan-viewer-go/pkg/cli/tui/scanpage"
	"scan-viewer-go/pkg/services"
	"scan-viewer-go/pkg/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// scanPageModel is the scan screen: a domain input, the worker table and
// the tabbed link browser. Everything it renders comes from the store.
type scanPageModel struct {
	ctx     context.Context
	service *services.ScanService

	input     textinput.Model
	focus     int
	activeTab int
	pending   int // scans submitted and not yet answered
	err       error

	width int
}

// NewScanPage creates the scan flow wrapped in a scrolling viewport.
func NewScanPage(ctx context.Context, service *services.ScanService) tea.Model {
	return wrapScanPage(newScanPageModel(ctx, service))
}

func wrapScanPage(m *scanPageModel) *ViewportWrapper {
	return NewViewportWrapper(m, ViewportConfig{
		Title:        "Web Scan",
		ShowHeader:   true,
		ShowFooter:   true,
		UseViewport:  true,
		EnableHelp:   true,
		EnableMenu:   true,
		HelpContent:  ScanPageHelpContent,
		CapturesKeys: m.inputFocused,
		MinWidth:     60,
		MinHeight:    10,
	})
}

func newScanPageModel(ctx context.Context, service *services.ScanService) *scanPageModel {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "example.com"
	input.Prompt = ""
	input.CharLimit = 253
	input.Width = 50
	input.SetValue(service.Store().State().Domain)
	input.Focus()

	return &scanPageModel{
		ctx:     ctx,
		service: service,
		input:   input,
		focus:   scanpage.FocusInput,
		width:   scanpage.DefaultWidth,
	}
}

func (m *scanPageModel) inputFocused() bool {
	return m.focus == scanpage.FocusInput
}

func (m *scanPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *scanPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width == 0 {
			m.width = scanpage.DefaultWidth
		}
		return m, nil

	case scanpage.ScanDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.Err != nil {
			logger.LogError(msg.Err, "scanPageModel: scan of %s failed", msg.Domain)
			m.err = msg.Err
			return m, nil
		}
		m.service.Apply(msg.Report)
		m.err = nil
		m.activeTab = 0
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+r" {
			if m.err != nil {
				return m.submit()
			}
			return m, nil
		}
		if m.focus == scanpage.FocusInput {
			return m.handleInputKeys(msg)
		}
		return m.handleResultKeys(msg)
	}

	if m.focus == scanpage.FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *scanPageModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc":
		m.focus = scanpage.FocusResults
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.service.ChangeDomain(value)
	}
	return m, cmd
}

func (m *scanPageModel) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tabs := views.LinkTabs(m.service.Store().State())

	switch msg.String() {
	case "/", "i", "enter":
		m.focus = scanpage.FocusInput
		return m, m.input.Focus()
	case "right", "tab", "l":
		if len(tabs) > 0 {
			m.activeTab = (views.ActiveTab(tabs, m.activeTab) + 1) % len(tabs)
		}
	case "left", "shift+tab", "h":
		if len(tabs) > 0 {
			m.activeTab = (views.ActiveTab(tabs, m.activeTab) - 1 + len(tabs)) % len(tabs)
		}
	}
	return m, nil
}

// submit starts a scan of the current domain. Invalid input is reported
// locally and nothing is sent.
func (m *scanPageModel) submit() (tea.Model, tea.Cmd) {
	domain, err := m.service.Begin()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.pending++
	service, ctx := m.service, m.ctx
	return m, func() tea.Msg {
		report, err := service.Fetch(ctx, domain)
		return scanpage.ScanDoneMsg{Domain: domain, Report: report, Err: err}
	}
}

func (m *scanPageModel) View() string {
	state := m.service.Store().State()

	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("Domain:"))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.pending > 0 {
		b.WriteString(renderLoadingState("Scanning " + state.Domain + "..."))
	}

	if m.err != nil {
		b.WriteString("\n" + renderInlineError(userFacingError(m.err)) + "\n")
		if isRetryable(m.err) {
			b.WriteString(helpStyle.Render("Press Ctrl+R to retry.") + "\n")
		}
	}

	if !views.Visible(state) {
		if m.pending == 0 && m.err == nil {
			b.WriteString("\n" + mutedStyle.Render("Enter a domain and press Enter to scan.") + "\n")
		}
		return b.String()
	}

	b.WriteString("\n")
	if summary := views.Summary(state); summary != "" {
		b.WriteString(renderSuccess(summary) + "\n\n")
	}

	b.WriteString(boldStyle.Render("Workers") + "\n")
	b.WriteString(renderWorkerTable(views.WorkerRows(state)))
	b.WriteString("\n")

	b.WriteString(boldStyle.Render("Internal links") + "\n")
	tabs := views.LinkTabs(state)
	b.WriteString(renderLinkBrowser(tabs, views.ActiveTab(tabs, m.activeTab), m.width))

	if m.focus == scanpage.FocusInput {
		b.WriteString("\n" + helpStyle.Render("Esc to browse results") + "\n")
	} else {
		b.WriteString("\n" + helpStyle.Render("←/→ switch category • / edit domain") + "\n")
	}

	return b.String()
}
