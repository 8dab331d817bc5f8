package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderName = "X-Session-ID"
	CookieName = "sid"

	contextKey = "session_id"
)

// Middleware resolves the browsing session from the X-Session-ID header or
// the sid cookie, minting a new id when neither is present.
func Middleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			if cookie, err := c.Cookie(CookieName); err == nil {
				id = cookie
			}
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		// Session cookie: no MaxAge so it dies with the browser session
		c.SetCookie(CookieName, id, 0, "/", "", secureCookie, true)
		c.Header(HeaderName, id)
		c.Set(contextKey, id)
		c.Next()
	}
}

// ID returns the session id resolved by Middleware, or "" outside of it.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}
