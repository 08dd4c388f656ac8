package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const headerAPIKey = "X-API-Key"

// APIKeyAuth rejects requests whose X-API-Key header does not match the
// configured service key.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(headerAPIKey) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}
