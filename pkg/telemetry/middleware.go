package telemetry

import (
	"travel/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// TraceLoggerMiddleware extracts trace_id and span_id from the request context
// and logs the request with them. Must run after otelgin.Middleware.
func TraceLoggerMiddleware(log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.SpanContext().IsValid() {
			c.Next()
			return
		}

		traceID := span.SpanContext().TraceID().String()
		spanID := span.SpanContext().SpanID().String()

		// Store trace info in context for later use
		c.Set("trace_id", traceID)
		c.Set("span_id", spanID)

		log.Debug("incoming request",
			logger.Field{Key: "trace_id", Value: traceID},
			logger.Field{Key: "span_id", Value: spanID},
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
		)

		c.Next()

		log.Info("request completed",
			logger.Field{Key: "trace_id", Value: traceID},
			logger.Field{Key: "span_id", Value: spanID},
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
		)
	}
}
