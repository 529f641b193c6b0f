package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridsearch/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, so probing
// arbitrary paths cannot grow label cardinality.
const unmatchedRoute = "unmatched"

// PrometheusMiddleware observes gridsearch_http_request_duration_seconds and
// gridsearch_http_requests_total, labelled by route pattern.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		labels := []string{c.Request.Method, route, strconv.Itoa(c.Writer.Status())}
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(began).Seconds())
		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
	}
}
