package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP, preferring headers set by a reverse proxy.
// X-Real-IP wins, then the leftmost X-Forwarded-For entry, then Gin's ClientIP.
func GetRealIP(c *gin.Context) string {
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		client, _, _ := strings.Cut(forwardedFor, ",")
		if client = strings.TrimSpace(client); client != "" {
			return client
		}
	}

	return c.ClientIP()
}
