package cli

import (
	"context"
	"fmt"
	"os"

	"scan-viewer-go/pkg/cli/client"
	"scan-viewer-go/pkg/cli/report"
	"scan-viewer-go/pkg/export"
	"scan-viewer-go/pkg/store"
)

// RunScan scans domain once and prints the results
func (a *App) RunScan(ctx context.Context, domain string) error {
	state, err := a.scan(ctx, domain)
	if err != nil {
		return err
	}
	report.WriteToStdout(report.FormatScanOutput(state))
	return nil
}

// ExportScan scans domain once and writes the links to out in format.
// An empty out writes to stdout.
func (a *App) ExportScan(ctx context.Context, domain, format, out string) error {
	exporter, err := export.New(format)
	if err != nil {
		return err
	}

	state, err := a.scan(ctx, domain)
	if err != nil {
		return err
	}

	if out == "" {
		return exporter.Export(state, os.Stdout)
	}
	if err := export.ToFile(exporter, state, out); err != nil {
		return err
	}
	fmt.Printf("✓ Exported links to %s\n", out)
	return nil
}

// ShowStatus prints the scanner status
func (a *App) ShowStatus(ctx context.Context) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	if err := apiClient.CheckHealth(ctx); err != nil {
		return friendly(err)
	}
	status, err := apiClient.ServerStatus(ctx)
	if err != nil {
		return friendly(err)
	}

	report.WriteToStdout(report.FormatStatus(status))
	return nil
}

func (a *App) scan(ctx context.Context, domain string) (store.State, error) {
	service, err := a.getScanService()
	if err != nil {
		return store.State{}, err
	}

	service.ChangeDomain(domain)
	fmt.Fprintf(os.Stderr, "⏳ Scanning %s... (this may take a while)\n", domain)
	if _, err := service.Submit(ctx); err != nil {
		return store.State{}, friendly(err)
	}
	return service.Store().State(), nil
}

// friendly replaces scan errors with their user-facing message and adds a
// hint when the scanner could not be reached.
func friendly(err error) error {
	scanErr, ok := client.AsScanError(err)
	if !ok {
		return err
	}
	if scanErr.Type == client.ErrorTypeNetwork && !scanErr.Timeout {
		return fmt.Errorf("%s\n\n💡 Is the scanner running? Check cli.base_url with --config-show", scanErr.UserMessage())
	}
	return fmt.Errorf("%s", scanErr.UserMessage())
}
