package view

import (
	"github.com/gin-gonic/gin"
)

// User-visible terminal messages. Data-access failures are rendered
// verbatim instead, never masked behind a generic message.
const (
	MsgNoGroupSelected = "No group selected."
	MsgInvalidForm     = "Submitted preferences are invalid."
)

// ErrorPage is the data handed to the error template.
type ErrorPage struct {
	Message   string
	Fields    map[string]string
	RequestID string
}

// HTML renders a page template with the request ID attached for tracing.
func HTML(c *gin.Context, statusCode int, name string, data gin.H) {
	data["RequestID"] = RequestID(c)
	c.HTML(statusCode, name, data)
}

// Error renders the error page with a single message.
func Error(c *gin.Context, statusCode int, message string) {
	c.HTML(statusCode, "error.tmpl", ErrorPage{
		Message:   message,
		RequestID: RequestID(c),
	})
}

// ErrorWithFields renders the error page with field-level form errors.
func ErrorWithFields(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.HTML(statusCode, "error.tmpl", ErrorPage{
		Message:   message,
		Fields:    fields,
		RequestID: RequestID(c),
	})
}
