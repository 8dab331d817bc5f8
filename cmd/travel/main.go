package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"travel/cfg"
	"travel/internal/booking"
	"travel/internal/flight"
	"travel/pkg/cache"
	"travel/pkg/flightclient"
	"travel/pkg/idgen"
	"travel/pkg/logger"
	"travel/pkg/ratelimit"
	"travel/pkg/session"
	"travel/pkg/telemetry"

	_ "travel/cmd/travel/docs" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Travel Flight API
// @version         1.0
// @description     Backend for the flight search, filtering and booking flow. Merges IATI and Sabre results.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv).
		With(logger.Field{Key: "service", Value: config.Observability.ServiceName})

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(ctx, &config.Observability, zlogger)
	if err != nil {
		log.Fatalf("failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(ctx); err != nil {
			zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
		}
	}()

	// ============
	// Cache
	// ============
	store, err := newCache(ctx, config, zlogger)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Session
	// ============
	sessionTTL := time.Duration(config.SessionTTLMinutes) * time.Minute
	var sessions session.Store
	if _, ok := store.(*cache.RedisCache); ok {
		sessions = session.NewCacheStore(store, sessionTTL)
	} else {
		memSessions := session.NewMemoryStore(sessionTTL)
		defer memSessions.Close()
		sessions = memSessions
	}

	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.SupplierLimits.TimeoutSeconds) * time.Second,
	}
	iatiClient := flightclient.NewIATIClient(httpClient, config.IATIClientConfig.BaseURL, zlogger)
	sabreClient := flightclient.NewSabreClient(httpClient, config.SabreClientConfig.BaseURL, zlogger)
	limiter := ratelimit.NewSupplierLimiter(ratelimit.Config{
		RequestsPerSecond: config.SupplierLimits.RequestsPerSecond,
		Burst:             config.SupplierLimits.Burst,
	})
	flightClient := flightclient.NewFlightClient(
		[]flightclient.SupplierClient{iatiClient, sabreClient},
		limiter,
		time.Duration(config.SupplierLimits.TimeoutSeconds)*time.Second,
		zlogger,
	)

	// ============
	// Internal Service
	// ============
	bookingSvc := booking.NewService(sessions, ids, zlogger)
	bookingHandler := booking.NewBookingHandler(bookingSvc)

	flightSvc := flight.NewService(flightClient, store, config.CacheTTLMinutes, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc, bookingSvc, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(telemetry.TraceLoggerMiddleware(zlogger))
	r.Use(cors.New(corsConfig(config.CORSAllowedOrigins)))
	r.Use(session.Middleware(config.AppEnv == "production"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	flightHandler.RegisterRoutes(r)
	bookingHandler.RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.AppPort),
		Handler: r,
	}

	go func() {
		zlogger.Info("server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "err", Value: err})
	}
}

// newCache connects to Redis. Outside production an unreachable Redis falls
// back to an in-process cache so the service can run without infrastructure.
func newCache(ctx context.Context, config *cfg.Config, zlogger logger.Client) (cache.Cache, error) {
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := redis.Ping(pingCtx)
	if err == nil {
		return redis, nil
	}
	if config.AppEnv == "production" {
		return nil, err
	}

	zlogger.Warn("redis unavailable, using in-memory cache",
		logger.Field{Key: "addr", Value: redisAddr},
		logger.Field{Key: "err", Value: err},
	)
	_ = redis.Close()
	return cache.NewMemoryCache(), nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", session.HeaderName},
		ExposeHeaders:    []string{session.HeaderName, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// no allow-list configured: open for local development, cookies not shared
	if len(origins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
