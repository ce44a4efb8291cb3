package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards admin routes. A role mismatch answers 403 directly,
// never a redirect; it layers on RequireAuth in the route table.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || !identity.IsAdmin() {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Status":  http.StatusForbidden,
				"Message": "You do not have permission to access this page.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
