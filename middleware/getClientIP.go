package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP extracts the originating client IP, honoring X-Forwarded-For
// when the service sits behind a proxy.
func getClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
