package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey = "sessionId"

	// SessionHeader carries the session identity on requests and responses.
	SessionHeader = "X-Session-Id"
	guestHeader   = "X-Guest-Id"

	maxSessionIDLen = 128
)

// Session scopes each request to a session. The id comes from X-Session-Id
// (or the older X-Guest-Id); a fresh one is minted when neither is sent and
// echoed back so clients can reuse it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			id = strings.TrimSpace(c.GetHeader(guestHeader))
		}
		if id == "" || len(id) > maxSessionIDLen || strings.ContainsAny(id, "/\\ ") {
			id = uuid.NewString()
		}

		c.Set(sessionIDKey, id)
		c.Writer.Header().Set(SessionHeader, id)
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID stored by Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
