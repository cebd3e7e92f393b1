package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey      = "session_id"
	sessionCookieName = "tamarind_session"
)

// SessionID resolves the caller's session id from the X-Session-ID header or
// the session cookie, minting a new one for first-time visitors. The cart
// store is keyed by this id.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-ID")
		if id == "" {
			if cookie, err := c.Cookie(sessionCookieName); err == nil {
				id = cookie
			}
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookieName, id, 60*60*24*30, "/", "", false, true)
		}
		c.Set(SessionIDKey, id)
		c.Header("X-Session-ID", id)
		c.Next()
	}
}

// GetSessionID retrieves the resolved session id from the Gin context.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
