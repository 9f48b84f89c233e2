package cli

import (
	"context"
	"fmt"
	"time"

	"scan-viewer-go/pkg/cli/client"
	"scan-viewer-go/pkg/cli/tui"
	"scan-viewer-go/pkg/config"
	"scan-viewer-go/pkg/services"
	"scan-viewer-go/pkg/store"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg     *config.Config
	client  *client.Client
	service *services.ScanService
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("scanner base URL not configured")
	}

	timeout := time.Duration(a.cfg.CLI.RequestTimeout) * time.Second
	a.client = client.NewClient(a.cfg.CLI.BaseURL, timeout)
	return a.client, nil
}

// getScanService returns the scan service backed by this app's store
func (a *App) getScanService() (*services.ScanService, error) {
	if a.service != nil {
		return a.service, nil
	}

	apiClient, err := a.getClient()
	if err != nil {
		return nil, err
	}

	a.service = services.NewScanService(store.New(), apiClient)
	return a.service, nil
}

// Run starts the interactive TUI
func (a *App) Run(ctx context.Context) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}
	service, err := a.getScanService()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewShell(ctx, service, apiClient), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}
