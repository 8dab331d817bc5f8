package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type SupplierClientConfig struct {
	BaseURL string
}

type SupplierLimitConfig struct {
	TimeoutSeconds    int
	RequestsPerSecond float64
	Burst             int
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv             string
	AppPort            string
	RedisConfig        RedisConfig
	IATIClientConfig   SupplierClientConfig
	SabreClientConfig  SupplierClientConfig
	SupplierLimits     SupplierLimitConfig
	Observability      ObservabilityConfig
	CacheTTLMinutes    int
	SessionTTLMinutes  int
	SnowflakeNodeID    int64
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	var errs []error

	// .env is optional; deployed environments set variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	iatiClientBaseUrl := mustEnv("IATI_CLIENT_BASE_URL", &errs)
	sabreClientBaseUrl := mustEnv("SABRE_CLIENT_BASE_URL", &errs)

	cacheTTLMinutes := mustInt("CACHE_TTL_MINUTES", &errs)
	sessionTTLMinutes := mustInt("SESSION_TTL_MINUTES", &errs)
	nodeID := mustInt("SNOWFLAKE_NODE_ID", &errs)

	supplierTimeout := intOr("SUPPLIER_TIMEOUT_SECONDS", 10, &errs)
	supplierBurst := intOr("SUPPLIER_BURST", 20, &errs)
	supplierRPS := 10.0
	if v, ok := os.LookupEnv("SUPPLIER_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, errors.New("conversion failed env: SUPPLIER_RPS"))
		}
		supplierRPS = rps
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "travel"
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		IATIClientConfig: SupplierClientConfig{
			BaseURL: iatiClientBaseUrl,
		},
		SabreClientConfig: SupplierClientConfig{
			BaseURL: sabreClientBaseUrl,
		},
		SupplierLimits: SupplierLimitConfig{
			TimeoutSeconds:    supplierTimeout,
			RequestsPerSecond: supplierRPS,
			Burst:             supplierBurst,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  serviceName,
			Environment:  appEnv,
		},
		CacheTTLMinutes:    cacheTTLMinutes,
		SessionTTLMinutes:  sessionTTLMinutes,
		SnowflakeNodeID:    int64(nodeID),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func mustInt(key string, errs *[]error) int {
	value := mustEnv(key, errs)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
}

func intOr(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
