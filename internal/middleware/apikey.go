package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/pkg/response"
)

// APIKeyHeader carries the frontend key on search requests.
const APIKeyHeader = "x-api-key"

// APIKey returns a middleware that rejects requests whose x-api-key header
// does not match the configured frontend key. An empty configured key
// disables the check (local development).
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			response.Unauthorized(c, "Invalid API key")
			return
		}
		c.Next()
	}
}
