package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"scan-viewer-go/pkg/cli/tui/scanpage"
	"scan-viewer-go/pkg/models"
	"scan-viewer-go/pkg/services"
	"scan-viewer-go/pkg/store"
	"scan-viewer-go/pkg/utils"

	tea "github.com/charmbracelet/bubbletea"
)

const reportBody = `{
	"scan_id": "s-1",
	"unique_links": {"internal_links": {"total": 3, "by_type": {
		"javascript": ["https://example.com/app.js"],
		"image": ["https://example.com/a.png", "https://example.com/b.png"],
		"css": []
	}}},
	"performance": {"slave_performance": {
		"w1": {"device": "desktop_chrome", "links_found": 10, "pages_processed": 5}
	}}
}`

type fakeScanner struct {
	calls []string
	err   error
}

func (f *fakeScanner) Scan(ctx context.Context, domain string, params models.ScanParams) (*models.ScanReport, error) {
	f.calls = append(f.calls, domain)
	if f.err != nil {
		return nil, f.err
	}
	var r models.ScanReport
	if err := json.Unmarshal([]byte(reportBody), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func newTestPage(scanner *fakeScanner) *scanPageModel {
	return newScanPageModel(context.Background(), services.NewScanService(store.New(), scanner))
}

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// submitAndWait presses Enter and feeds the finished scan back into the model.
func submitAndWait(t *testing.T, m *scanPageModel) {
	t.Helper()
	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected a scan command, err=%v", m.err)
	}
	done, ok := cmd().(scanpage.ScanDoneMsg)
	if !ok {
		t.Fatal("command did not produce ScanDoneMsg")
	}
	m.Update(done)
}

func TestTypingUpdatesStoreDomain(t *testing.T) {
	m := newTestPage(&fakeScanner{})
	typeText(m, "example.com")

	if got := m.service.Store().State().Domain; got != "example.com" {
		t.Errorf("domain = %q", got)
	}
}

func TestEmptyDomainIsNotSubmitted(t *testing.T) {
	scanner := &fakeScanner{}
	m := newTestPage(scanner)

	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("no command expected for empty domain")
	}
	if !errors.Is(m.err, utils.ErrDomainRequired) {
		t.Errorf("err = %v", m.err)
	}
	if len(scanner.calls) != 0 {
		t.Errorf("scanner called: %v", scanner.calls)
	}
	if m.service.Store().State().Finished {
		t.Error("store must stay untouched")
	}
}

func TestSuccessfulScanRendersResults(t *testing.T) {
	m := newTestPage(&fakeScanner{})
	typeText(m, "example.com")

	if strings.Contains(m.View(), "Worker ID") {
		t.Fatal("worker table shown before a scan finished")
	}

	submitAndWait(t, m)

	state := m.service.Store().State()
	if !state.Finished || state.ScanID != "s-1" {
		t.Fatalf("state = %+v", state)
	}
	view := m.View()
	for _, want := range []string{"Worker ID", "w1", "desktop_chrome", "JavaScript (1)", "Images (2)", "https://example.com/app.js"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Stylesheets") {
		t.Error("empty category should not get a tab")
	}
}

func TestFailedScanKeepsStoreAndShowsError(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("connection refused")}
	m := newTestPage(scanner)
	typeText(m, "example.com")

	submitAndWait(t, m)

	if m.service.Store().State().Finished {
		t.Error("failed scan must not mark the store finished")
	}
	if m.err == nil || !strings.Contains(m.View(), "connection refused") {
		t.Errorf("error not shown: %v", m.err)
	}
	if m.pending != 0 {
		t.Errorf("pending = %d", m.pending)
	}
}

func TestRetryResubmitsAfterError(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("boom")}
	m := newTestPage(scanner)
	typeText(m, "example.com")
	submitAndWait(t, m)

	scanner.err = nil
	_, cmd := m.Update(key(tea.KeyCtrlR))
	if cmd == nil {
		t.Fatal("ctrl+r should resubmit after an error")
	}
	m.Update(cmd())

	if len(scanner.calls) != 2 || !m.service.Store().State().Finished {
		t.Errorf("calls = %v, finished = %v", scanner.calls, m.service.Store().State().Finished)
	}
	if m.err != nil {
		t.Errorf("err not cleared: %v", m.err)
	}
}

func TestTabNavigation(t *testing.T) {
	m := newTestPage(&fakeScanner{})
	typeText(m, "example.com")
	submitAndWait(t, m)

	m.Update(key(tea.KeyEsc))
	if m.focus != scanpage.FocusResults {
		t.Fatal("esc should move focus to results")
	}

	m.Update(key(tea.KeyRight))
	if m.activeTab != 1 {
		t.Errorf("activeTab = %d after right", m.activeTab)
	}
	m.Update(key(tea.KeyRight))
	if m.activeTab != 0 {
		t.Errorf("activeTab = %d, want wrap to 0", m.activeTab)
	}
	m.Update(key(tea.KeyLeft))
	if m.activeTab != 1 {
		t.Errorf("activeTab = %d after left", m.activeTab)
	}

	// Keys on the results side never reach the input
	if got := m.service.Store().State().Domain; got != "example.com" {
		t.Errorf("domain = %q", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.focus != scanpage.FocusInput {
		t.Error("/ should refocus the input")
	}
}

func TestNewScanResetsActiveTab(t *testing.T) {
	m := newTestPage(&fakeScanner{})
	typeText(m, "example.com")
	submitAndWait(t, m)
	m.activeTab = 1

	m.focus = scanpage.FocusInput
	submitAndWait(t, m)
	if m.activeTab != 0 {
		t.Errorf("activeTab = %d, want 0", m.activeTab)
	}
}

func TestWrapperLetsInputTakeCommandKeys(t *testing.T) {
	w := NewScanPage(context.Background(), services.NewScanService(store.New(), &fakeScanner{}))
	page := w.(*ViewportWrapper).model.(*scanPageModel)

	w = typeText(w, "q")
	w = typeText(w, "m")
	if got := page.service.Store().State().Domain; got != "qm" {
		t.Errorf("domain = %q, want keys typed into the input", got)
	}

	w, _ = w.Update(key(tea.KeyEsc))
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q on results should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
