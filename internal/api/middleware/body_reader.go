package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitRequestBody caps the number of bytes handlers may read from the body.
// Declared oversize bodies are rejected up front; undeclared ones fail when read.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"message": "Request body too large.",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
