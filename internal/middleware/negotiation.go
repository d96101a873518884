package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var offeredFormats = []string{binding.MIMEJSON, binding.MIMEXML}

// Respond renders body as JSON or XML according to the Accept header.
// A missing, wildcard or unsupported Accept header falls back to JSON.
func Respond(c *gin.Context, status int, body interface{}) {
	switch c.NegotiateFormat(offeredFormats...) {
	case binding.MIMEXML:
		c.XML(status, body)
	default:
		c.JSON(status, body)
	}
}

// RespondAbort renders body and stops the handler chain
func RespondAbort(c *gin.Context, status int, body interface{}) {
	Respond(c, status, body)
	c.Abort()
}
