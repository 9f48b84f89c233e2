package middleware

import (
	"net/http"

	"scan-viewer-go/pkg/cli/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler turns panics in handlers into a 500 so one bad render never
// takes the server down.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("handler panic",
			zap.String("path", c.Request.URL.Path),
			zap.Any("recovered", recovered),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		c.Abort()
	})
}
