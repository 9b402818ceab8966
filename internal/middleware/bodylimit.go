package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/gpx-pace-backend/internal/models"
	"github.com/jengzang/gpx-pace-backend/pkg/response"
)

// multipartSlack covers boundaries, part headers and the small form fields
// sent alongside the file
const multipartSlack = 64 << 10

// BodyLimit caps the request body at maxBytes of file content plus multipart
// framing. Requests that declare a larger Content-Length are rejected before
// any of the body is read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		limit := maxBytes + multipartSlack
		if c.Request.ContentLength > limit {
			response.Failure(c, http.StatusRequestEntityTooLarge, string(models.KindInvalidUpload), "Uploaded file is too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
