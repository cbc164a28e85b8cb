// Package response fixes the two error body shapes the API speaks: a single
// {"error": msg} for auth failures and an {"errors": [...]} list for
// rejected writes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUsernameExists     = "Username already exists"
)

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func Errors(c *gin.Context, status int, messages ...string) {
	c.JSON(status, gin.H{"errors": messages})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, MsgUnauthorized)
}
