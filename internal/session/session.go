// Package session binds the signed client-side cookie to an authenticated
// user id. State lives entirely in the cookie (or the configured redis
// store); handlers receive the gin context explicitly instead of reading
// ambient globals.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Start binds the session to userID: anonymous becomes authenticated, an
// authenticated session is refreshed.
func Start(c *gin.Context, userID uint) error {
	s := sessions.Default(c)
	s.Set(userIDKey, userID)
	return s.Save()
}

// CurrentUserID reads the binding without mutating it.
func CurrentUserID(c *gin.Context) (uint, bool) {
	id := readUserID(sessions.Default(c).Get(userIDKey))
	return id, id != 0
}

// End removes the binding. Ending an already-anonymous session is a no-op.
func End(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userIDKey)
	return s.Save()
}

// readUserID tolerates the integer widths different stores hand back.
func readUserID(v any) uint {
	switch id := v.(type) {
	case uint:
		return id
	case uint64:
		return uint(id)
	case int:
		if id > 0 {
			return uint(id)
		}
	case int64:
		if id > 0 {
			return uint(id)
		}
	case float64:
		if id > 0 {
			return uint(id)
		}
	}
	return 0
}
