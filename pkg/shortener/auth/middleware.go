package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the caller's API key.
const HeaderName = "x-api-key"

// APIKeyMiddleware returns a middleware that authenticates mutating requests
// against a single static shared secret. The comparison is exact: no
// trimming, no case folding. A missing header fails the same way as a wrong
// key.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderName)
		if key == "" || key != apiKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
