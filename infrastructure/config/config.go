package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	domainconfig "github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress   string
	Environment     string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	// Engine constants
	Engine domainconfig.EngineConfig

	// Model source; empty means the built-in reference model
	ModelFile  string
	ModelWatch bool

	// Logging
	Log observability.LogConfig

	// Authentication, enabled when a secret is set
	JWTSecret   string
	JWTIssuer   string
	JWTAudience []string

	// Rate limiting per client, 0 disables it
	RateLimitPerMinute int

	// Events, published to EventBridge when a bus name is set
	AWSRegion    string
	EventBusName string
	EventSource  string

	// Tracing
	Tracing observability.TracingConfig

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
	CORSOrigins   []string

	// StrictProfiles rejects API inputs naming nodes outside the model
	StrictProfiles bool
}

// LoadConfig reads an optional .env file and then the environment
func LoadConfig() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	env := getEnv("ENVIRONMENT", "development")
	defaults := domainconfig.DefaultEngineConfig()

	logFormat := "console"
	if env == "production" {
		logFormat = "json"
	}

	cfg := &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		Environment:     env,
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),

		Engine: domainconfig.EngineConfig{
			Gamma:            getEnvFloat("CASCADE_GAMMA", defaults.Gamma),
			MaxHops:          getEnvInt("CASCADE_MAX_HOPS", defaults.MaxHops),
			Epsilon:          getEnvFloat("CASCADE_EPSILON", defaults.Epsilon),
			DefaultIntercept: getEnvFloat("DEFAULT_INTERCEPT", defaults.DefaultIntercept),
			DeltaScaling:     domainconfig.DeltaScaling(getEnv("CASCADE_DELTA_SCALING", string(defaults.DeltaScaling))),
		},

		ModelFile:  getEnv("MODEL_FILE", ""),
		ModelWatch: getEnvBool("MODEL_WATCH", false),

		Log: observability.LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      getEnv("LOG_FORMAT", logFormat),
			ServiceName: getEnv("SERVICE_NAME", "ncd-engine"),
			File:        getEnv("LOG_FILE", ""),
			MaxSizeMB:   getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups:  getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays:  getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:    getEnvBool("LOG_COMPRESS", true),
		},

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", "ncd-health-plus"),
		JWTAudience: getEnvList("JWT_AUDIENCE"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		EventBusName: getEnv("EVENT_BUS_NAME", ""),
		EventSource:  getEnv("EVENT_SOURCE", "ncd.engine"),

		Tracing: observability.TracingConfig{
			Enabled:     getEnvBool("ENABLE_TRACING", false),
			ServiceName: getEnv("SERVICE_NAME", "ncd-engine"),
			Version:     getEnv("SERVICE_VERSION", ""),
			Environment: env,
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", env != "production"),
			SampleRate:  getEnvFloat("TRACE_SAMPLE_RATE", 0),
		},

		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		CORSOrigins:   getEnvList("CORS_ORIGINS"),

		StrictProfiles: getEnvBool("STRICT_PROFILES", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.ModelWatch && c.ModelFile == "" {
		return errors.New("MODEL_WATCH requires MODEL_FILE")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE cannot be negative")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthEnabled reports whether bearer tokens are required
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
