// Package httputil holds the JSON error envelope shared by the gridsearch
// HTTP handlers.
package httputil

import "github.com/gin-gonic/gin"

// requestIDKey mirrors middleware.RequestIDKey without importing it.
const requestIDKey = "request_id"

// ErrorBody is what the visualizer receives when a search request is
// rejected. RequestID is omitted when no request ID middleware ran.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError aborts the request with status and an ErrorBody.
func RespondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(requestIDKey),
	})
}
