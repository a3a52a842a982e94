package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/utilities"
)

// DefaultBodyLimit bounds JSON request bodies.
const DefaultBodyLimit = int64(1 << 20)

// SizeLimit function is a middleware that caps the request body at maxBodyBytes.
// A declared length over the cap is refused up front; otherwise reading past
// the cap returns http.MaxBytesError, which handlers answer with 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			utilities.RespondError(c, &http.MaxBytesError{Limit: maxBodyBytes})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
