package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session makes sure every request carries a session id cookie. The id
// keys the visitor's cart in the session store.
func Session(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     cookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
