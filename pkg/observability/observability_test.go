package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

func TestCollector_Records(t *testing.T) {
	c := NewCollector("test")

	c.RecordHTTP("GET", "/api/v1/graph", "200", 10*time.Millisecond)
	c.RecordHTTP("GET", "/api/v1/graph", "200", 20*time.Millisecond)
	c.RecordAssessment(true, "High", time.Millisecond, nil)
	c.RecordAssessment(false, "", time.Millisecond, errors.New("bad profile"))
	c.RecordSimulation("direct", 12, time.Millisecond, nil)
	c.RecordSimulation("plan", 0, time.Millisecond, errors.New("bad plan"))
	c.RecordModelReload(nil)
	c.RecordModelReload(errors.New("parse"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/graph", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Assessments.WithLabelValues("true", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Assessments.WithLabelValues("false", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RiskLevels.WithLabelValues("High")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.RiskLevels))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Simulations.WithLabelValues("plan", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ModelReloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ModelReloads.WithLabelValues("error")))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := NewCollector("ncd"), NewCollector("ncd")
	a.RecordModelReload(nil)
	assert.Equal(t, 0, testutil.CollectAndCount(b.ModelReloads))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("ncd")
	c.RecordSimulation("combined", 7, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `ncd_simulations_total{kind="combined",status="ok"} 1`)
	assert.Contains(t, body, "ncd_simulation_activated_edges_count 1")
	assert.Contains(t, body, "go_goroutines")
}

func TestNewLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ncd.log")
	logger := NewLogger(LogConfig{Level: "debug", Format: "console", ServiceName: "ncd", File: file, MaxSizeMB: 1})

	assert.Equal(t, zap.DebugLevel, logger.Level.Level())
	logger.Info("model loaded", zap.Int("nodes", 31))
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"model loaded"`)
	assert.Contains(t, line, `"logger":"ncd"`)
	assert.Contains(t, line, `"nodes":31`)

	logger.Level.SetLevel(zap.ErrorLevel)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger(LogConfig{Level: "chatty"})
	assert.Equal(t, zap.InfoLevel, logger.Level.Level())
}

func TestTracing_Disabled(t *testing.T) {
	tr, err := InitTracing(context.Background(), TracingConfig{Enabled: false})
	require.NoError(t, err)

	ctx, span := tr.StartSpan(context.Background(), "RiskService.AssessRisk", attribute.String("patient", "demo-low"))
	assert.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestNewSampler(t *testing.T) {
	assert.Contains(t, newSampler(TracingConfig{SampleRate: 0.5}).Description(), "TraceIDRatioBased{0.5}")
	assert.Contains(t, newSampler(TracingConfig{Environment: "production"}).Description(), "0.05")
	assert.Equal(t, "AlwaysOnSampler", newSampler(TracingConfig{Environment: "development"}).Description())
}
