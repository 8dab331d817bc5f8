package telemetry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/cfg"
	"travel/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_NoEndpoint(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := Init(context.Background(), &cfg.ObservabilityConfig{ServiceName: "travel"}, logger.NewWithWriter("development", buf))
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "tracing and metrics disabled")
}

func TestTraceLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	buf := &bytes.Buffer{}
	r := gin.New()
	r.Use(otelgin.Middleware("travel-test", otelgin.WithTracerProvider(tp)))
	r.Use(TraceLoggerMiddleware(logger.NewWithWriter("development", buf)))

	var traceID any
	r.GET("/ping", func(c *gin.Context) {
		traceID, _ = c.Get("trace_id")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, traceID)
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), traceID.(string))
}

func TestTraceLoggerMiddleware_NoSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	r := gin.New()
	r.Use(TraceLoggerMiddleware(logger.NewWithWriter("development", buf)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String())
}
