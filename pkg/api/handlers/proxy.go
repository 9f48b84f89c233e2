package handlers

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"scan-viewer-go/pkg/cli/logger"

	"github.com/gin-gonic/gin"
)

// ScanProxy forwards requests to the upstream scanner unchanged, so the
// browser can call the scan API through this server.
func ScanProxy(upstream *url.URL) gin.HandlerFunc {
	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.LogError(err, "proxy %s failed", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "scanner unavailable"}`))
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}

// HealthCheck reports that the web server is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
