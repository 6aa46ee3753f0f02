package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie is the name of the session id cookie.
	SessionCookie = "session_id"
	// sessionCtxKey is where the resolved session id lives on the gin context.
	sessionCtxKey = "middleware.session_id"
	// sessionMaxAge keeps the cookie alive for a week of browsing.
	sessionMaxAge = 7 * 24 * 60 * 60
)

// Session resolves the caller's session id from the session cookie, issuing
// a fresh uuid cookie on the first request.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

// SessionID returns the session id resolved by Session for this request.
func SessionID(c *gin.Context) string {
	id, _ := c.Get(sessionCtxKey)
	s, _ := id.(string)
	return s
}

// RotateSession issues a brand new session id cookie and rebinds the gin
// context to it. Returns the new id.
func RotateSession(c *gin.Context) string {
	id := uuid.NewString()
	c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
	c.Set(sessionCtxKey, id)
	return id
}
