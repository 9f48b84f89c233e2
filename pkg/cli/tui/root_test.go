package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scan-viewer-go/pkg/cli/tui/scanpage"
	"scan-viewer-go/pkg/models"
	"scan-viewer-go/pkg/services"
	"scan-viewer-go/pkg/store"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeStatus struct {
	status *models.ServerStatus
	err    error
}

func (f fakeStatus) ServerStatus(ctx context.Context) (*models.ServerStatus, error) {
	return f.status, f.err
}

func newTestRoot(status StatusSource) *rootModel {
	service := services.NewScanService(store.New(), &fakeScanner{})
	return NewRootModel(context.Background(), service, status).(*rootModel)
}

func TestRootOpensScanPageAndReturnsToMenu(t *testing.T) {
	m := newTestRoot(fakeStatus{})
	if !strings.Contains(m.View(), "Scan a domain") {
		t.Fatal("menu not rendered")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	if !m.IsDelegating() {
		t.Fatal("expected scan flow to be active")
	}
	if !strings.Contains(m.View(), "Domain:") {
		t.Error("scan page not rendered")
	}

	m.Update(MenuNavigationMsg{})
	if m.IsDelegating() {
		t.Error("MenuNavigationMsg should return to the menu")
	}
}

func TestRootKeepsStoreAcrossFlows(t *testing.T) {
	m := newTestRoot(fakeStatus{})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("example.com")})
	m.Update(MenuNavigationMsg{})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	if !strings.Contains(m.View(), "example.com") {
		t.Error("reopened scan page should show the stored domain")
	}
}

// startScanAndLeave submits example.com on the scan page, goes back to the
// menu and returns the pending scan command.
func startScanAndLeave(t *testing.T, m *rootModel) tea.Cmd {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("example.com")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a scan command")
	}
	m.Update(MenuNavigationMsg{})
	return cmd
}

func TestScanFinishingAfterLeavingPageIsApplied(t *testing.T) {
	m := newTestRoot(fakeStatus{})
	cmd := startScanAndLeave(t, m)

	m.Update(cmd())
	if !m.service.Store().State().Finished {
		t.Error("result of an in-flight scan should still reach the store")
	}
}

func TestScanFinishingOnStatusScreenIsApplied(t *testing.T) {
	m := newTestRoot(fakeStatus{status: &models.ServerStatus{Status: "running"}})
	cmd := startScanAndLeave(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	m.Update(cmd())

	if !m.service.Store().State().Finished {
		t.Error("scan result should reach the store while the status screen is open")
	}
	if !strings.Contains(m.View(), "Scanner Status") {
		t.Error("status screen should stay open")
	}
}

func TestScanFailingOffPageIsShownOnReturn(t *testing.T) {
	service := services.NewScanService(store.New(), &fakeScanner{err: errors.New("connection refused")})
	m := NewRootModel(context.Background(), service, fakeStatus{}).(*rootModel)
	cmd := startScanAndLeave(t, m)

	m.Update(cmd())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})

	if !strings.Contains(m.View(), "connection refused") {
		t.Error("reopened scan page should show the failed scan's error")
	}

	m.Update(MenuNavigationMsg{})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	if strings.Contains(m.View(), "connection refused") {
		t.Error("error should be shown once, not on every visit")
	}
}

func TestStatusFlow(t *testing.T) {
	m := newTestRoot(fakeStatus{status: &models.ServerStatus{
		Status:           "running",
		ActiveScans:      2,
		MaxWorkers:       10,
		AvailableDevices: []models.Device{{ID: "mobile_safari", Name: "Safari", Type: "mobile"}},
	}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if cmd == nil {
		t.Fatal("status flow should load on open")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Error("expected loading state")
	}

	m.Update(cmd())
	view := m.View()
	for _, want := range []string{"running", "mobile_safari", "10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(cmd())
	if m.IsDelegating() {
		t.Error("esc should go back to the menu")
	}
}

func TestStatusFlowError(t *testing.T) {
	s := NewStatusModel(context.Background(), fakeStatus{err: errors.New("scanner down")})
	s.Update(scanpage.StatusLoadedMsg{Err: errors.New("scanner down")})
	if !strings.Contains(s.View(), "scanner down") {
		t.Error("error not rendered")
	}
}

func TestShellPassesKeysToActiveFlow(t *testing.T) {
	shell := NewShell(context.Background(), services.NewScanService(store.New(), &fakeScanner{}), fakeStatus{})
	root := shell.(*ViewportWrapper).model.(*rootModel)

	shell.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	shell.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if got := root.service.Store().State().Domain; got != "q" {
		t.Errorf("domain = %q, shell should not swallow keys while a flow is active", got)
	}
}
