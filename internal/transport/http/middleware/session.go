package middleware

import (
	"github.com/gin-gonic/gin"

	"recipeshare/internal/session"
	"recipeshare/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// RequireSession resolves the cookie-backed session to a user id and rejects
// anonymous requests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := session.CurrentUserID(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID reads the id RequireSession stored in the context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
