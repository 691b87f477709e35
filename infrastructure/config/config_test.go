package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainconfig "github.com/Anirach/ncd-health-plus/domain/config"
)

// isolate points ENV_FILE at a missing file and clears the given keys so
// host settings do not leak into the test
func isolate(t *testing.T, keys ...string) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

var configKeys = []string{
	"ENVIRONMENT", "SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES",
	"CASCADE_GAMMA", "CASCADE_MAX_HOPS", "CASCADE_EPSILON", "DEFAULT_INTERCEPT", "CASCADE_DELTA_SCALING",
	"MODEL_FILE", "MODEL_WATCH", "LOG_LEVEL", "LOG_FORMAT", "JWT_SECRET", "JWT_AUDIENCE",
	"RATE_LIMIT_PER_MINUTE", "EVENT_BUS_NAME", "ENABLE_METRICS", "CORS_ORIGINS", "STRICT_PROFILES",
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t, configKeys...)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, *domainconfig.DefaultEngineConfig(), cfg.Engine)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.False(t, cfg.AuthEnabled())
	assert.True(t, cfg.EnableMetrics)
	assert.Nil(t, cfg.CORSOrigins)
	assert.Empty(t, cfg.EventBusName)
	assert.False(t, cfg.StrictProfiles)
}

func TestLoadConfig_Overrides(t *testing.T) {
	isolate(t, configKeys...)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_AUDIENCE", "api, web ,")
	t.Setenv("CASCADE_GAMMA", "0.5")
	t.Setenv("CASCADE_MAX_HOPS", "2")
	t.Setenv("CASCADE_DELTA_SCALING", "raw")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ENABLE_METRICS", "0")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STRICT_PROFILES", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"api", "web"}, cfg.JWTAudience)
	assert.Equal(t, 0.5, cfg.Engine.Gamma)
	assert.Equal(t, 2, cfg.Engine.MaxHops)
	assert.Equal(t, domainconfig.DeltaScalingRaw, cfg.Engine.DeltaScaling)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, 120, cfg.RateLimitPerMinute, "unparsable values fall back to the default")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Len(t, cfg.CORSOrigins, 2)
	assert.True(t, cfg.StrictProfiles)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	isolate(t, "ENVIRONMENT", "JWT_SECRET", "MAX_BODY_BYTES", "MODEL_WATCH", "CASCADE_GAMMA", "CASCADE_MAX_HOPS", "CASCADE_EPSILON", "CASCADE_DELTA_SCALING", "RATE_LIMIT_PER_MINUTE")
	require.NoError(t, os.Unsetenv("CASCADE_EPSILON"))
	t.Cleanup(func() { os.Unsetenv("CASCADE_EPSILON") })

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CASCADE_EPSILON=0.01\n"), 0o600))
	t.Setenv("ENV_FILE", file)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Engine.Epsilon)
}

func TestLoadConfig_InvalidEnvFile(t *testing.T) {
	isolate(t)
	t.Setenv("ENV_FILE", t.TempDir())

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{Engine: *domainconfig.DefaultEngineConfig(), MaxBodyBytes: 1024, Environment: "development"}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"engine", func(c *Config) { c.Engine.MaxHops = 0 }, "engine: max hops"},
		{"watch without file", func(c *Config) { c.ModelWatch = true }, "MODEL_WATCH requires MODEL_FILE"},
		{"body size", func(c *Config) { c.MaxBodyBytes = 0 }, "MAX_BODY_BYTES"},
		{"rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, "RATE_LIMIT_PER_MINUTE"},
		{"production needs auth", func(c *Config) { c.Environment = "production" }, "JWT_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
