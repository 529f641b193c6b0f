package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key holding the request ID; error
	// bodies and request log lines both read it.
	RequestIDKey = "request_id"

	// RequestIDHeader carries the request ID back to the visualizer.
	RequestIDHeader = "X-Request-ID"

	clientRequestIDKey = "client_request_id"
)

// RequestID tags every search request with a fresh UUID. An X-Request-ID
// sent by the front end is kept under client_request_id for correlation
// in the logs; the server ID stays canonical.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			c.Set(clientRequestIDKey, clientID)
			log.WithFields(logrus.Fields{
				RequestIDKey:       id,
				clientRequestIDKey: clientID,
			}).Debug("front end sent its own request ID")
		}

		c.Next()
	}
}
