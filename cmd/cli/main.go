package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"scan-viewer-go/pkg/cli"
	"scan-viewer-go/pkg/cli/logger"
	"scan-viewer-go/pkg/cli/report"
	"scan-viewer-go/pkg/config"
)

func main() {
	var (
		domain     = flag.String("domain", "", "Scan a domain once and print the results")
		exportFmt  = flag.String("export", "", "Export the scanned links (txt, csv or json); requires --domain")
		exportOut  = flag.String("out", "", "Export destination file (default: stdout)")
		statusMode = flag.Bool("status", false, "Show scanner status")

		// Config commands
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.CLI.LogDir, "cli")
	defer logger.CloseLog()

	app := cli.NewApp(cfg)

	// Handle config commands first (don't need the scanner)
	if *configShow {
		app.ShowConfig()
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			log.Fatalf("failed to set config: %v", err)
		}
		fmt.Println("Configuration updated successfully")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *statusMode:
		err = app.ShowStatus(ctx)
	case *exportFmt != "":
		if *domain == "" {
			err = fmt.Errorf("--export requires --domain")
			break
		}
		err = app.ExportScan(ctx, *domain, *exportFmt, *exportOut)
	case *domain != "":
		err = app.RunScan(ctx, *domain)
	default:
		// Interactive TUI mode
		err = app.Run(ctx)
	}

	if err != nil {
		report.WriteToStderr(report.FormatErrorMessage(err))
		logger.CloseLog()
		os.Exit(1)
	}
}
