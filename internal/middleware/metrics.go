package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/elitebooker/elitebooker-backend/pkg/telemetry"
)

// Metrics records a request counter and a duration histogram for every
// request, labeled by method, matched route and status class.
func Metrics() gin.HandlerFunc {
	requests, reqErr := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http.server.requests",
		Description: "Number of HTTP requests handled",
		Unit:        "{request}",
	})
	duration, durErr := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http.server.duration",
		Description: "HTTP request handling duration",
		Unit:        "s",
	})
	if reqErr != nil || durErr != nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// The matched route template keeps cardinality bounded; raw
		// paths would mint a series per UUID.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", c.Writer.Status()),
		}

		ctx := c.Request.Context()
		requests.Inc(ctx, attrs...)
		duration.RecordDuration(ctx, start, attrs...)
	}
}
