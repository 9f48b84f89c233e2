package middleware

import (
	"net/http"

	"scan-viewer-go/pkg/api/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Session attaches the visitor's session to the context, issuing a cookie
// for new visitors.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		sess, created := manager.Get(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by Session
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
