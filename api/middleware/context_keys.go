package middleware

import "github.com/gin-gonic/gin"

// Keys under which middleware stores request values in the gin context.
const (
	SessionIDKey = "session_id"
	CultureKey   = "culture"
)

// SessionIDFrom returns the session id set by Session, or "" outside it.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// CultureFrom returns the culture set by Culture, or "" outside it.
func CultureFrom(c *gin.Context) string {
	return c.GetString(CultureKey)
}
