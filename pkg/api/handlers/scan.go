package handlers

import (
	"net/http"

	"scan-viewer-go/pkg/api/middleware"
	"scan-viewer-go/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// SubmitScan records the submitted domain and scans it. The result or the
// error lands in the session and the browser is sent back to the page.
func SubmitScan(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)

		sess.Service.ChangeDomain(c.PostForm("domain"))
		_, err := sess.Service.Submit(c.Request.Context())
		metrics.ObserveScan(err)

		sess.SetErr(err)
		if err == nil {
			sess.SetTab("")
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}
