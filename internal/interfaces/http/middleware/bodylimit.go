package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentflow/backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that limits request body size.
// Candidate intake payloads carry notes and resume links but should
// never approach the configured ceiling.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			resp := dto.NewErrorResponseWithRequestID(
				"REQUEST_TOO_LARGE",
				"Request body exceeds maximum allowed size",
				getRequestIDFromContext(c),
			)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, resp)
			return
		}

		// Wrap the body with a limited reader for streaming requests
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
