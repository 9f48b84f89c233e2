package api

import (
	"fmt"
	"net/url"
	"time"

	"scan-viewer-go/pkg/api/handlers"
	"scan-viewer-go/pkg/api/middleware"
	"scan-viewer-go/pkg/api/session"
	"scan-viewer-go/pkg/api/templates"
	"scan-viewer-go/pkg/cli/client"
	"scan-viewer-go/pkg/config"
	"scan-viewer-go/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// sessionTTL is how long an idle visitor keeps their results
const sessionTTL = 24 * time.Hour

func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	upstream, err := url.Parse(cfg.CLI.BaseURL)
	if err != nil || upstream.Host == "" {
		return nil, fmt.Errorf("invalid scanner base URL %q", cfg.CLI.BaseURL)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize services
	timeout := time.Duration(cfg.CLI.RequestTimeout) * time.Second
	scanner := client.NewClient(cfg.CLI.BaseURL, timeout)
	sessions := session.NewManager(scanner, sessionTTL)
	metrics := monitoring.NewMetrics()

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics(metrics))

	// Health check and metrics
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Scanner API passthrough
	router.GET("/api/scan", handlers.ScanProxy(upstream))

	// Page
	page := router.Group("/")
	page.Use(middleware.Session(sessions))
	{
		page.GET("", handlers.Page())
		page.POST("scan", handlers.SubmitScan(metrics))
	}

	return router, nil
}
