package middleware

import (
	"crypto/subtle" // Constant-time comparison
	"net/http"      // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminKeyMiddleware guards destructive admin routes with a shared key
// supplied in the X-Admin-Key header. Wallets carry no role field, so admin
// access is not tied to a wallet identity.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Key") // Get the admin key header
		// Reject when no key is configured or the supplied key does not match
		if adminKey == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			// If not, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If the key matches, proceed to the next handler
		c.Next()
	}
}
