package di

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/ports"
	"github.com/Anirach/ncd-health-plus/application/queries"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	"github.com/Anirach/ncd-health-plus/domain/events"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/infrastructure/config"
	"github.com/Anirach/ncd-health-plus/infrastructure/messaging/eventbridge"
	"github.com/Anirach/ncd-health-plus/infrastructure/messaging/logging"
	"github.com/Anirach/ncd-health-plus/infrastructure/modelfile"
	"github.com/Anirach/ncd-health-plus/pkg/auth"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
)

// ProvideLogger creates the application logger
func ProvideLogger(cfg *config.Config) *observability.Logger {
	return observability.NewLogger(cfg.Log)
}

// ProvideZapLogger exposes the underlying zap logger
func ProvideZapLogger(l *observability.Logger) *zap.Logger {
	return l.Logger
}

// ProvideModel loads MODEL_FILE when set, otherwise the reference model
func ProvideModel(cfg *config.Config, logger *zap.Logger) (*aggregates.Model, error) {
	if cfg.ModelFile == "" {
		return reference.BuildModel()
	}
	m, err := modelfile.Load(cfg.ModelFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded model file",
		zap.String("path", cfg.ModelFile),
		zap.String("model", m.Name()),
		zap.Int("order_violations", len(m.OrderViolations())),
	)
	return m, nil
}

// ProvideEngine builds the engine for the initial model
func ProvideEngine(model *aggregates.Model, cfg *config.Config) (*services.Engine, error) {
	engineCfg := cfg.Engine
	return services.NewEngine(model, &engineCfg)
}

// ProvideEngineHolder wraps the engine so it can be swapped on reload
func ProvideEngineHolder(engine *services.Engine) *appservices.EngineHolder {
	return appservices.NewEngineHolder(engine)
}

// ProvideModelProvider exposes the holder through its port
func ProvideModelProvider(h *appservices.EngineHolder) ports.ModelProvider {
	return h
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("ncd")
}

// ProvideMetricsRecorder exposes the collector through its port
func ProvideMetricsRecorder(c *observability.Collector) ports.MetricsRecorder {
	return c
}

// ProvideTracer initializes OpenTelemetry tracing
func ProvideTracer(ctx context.Context, cfg *config.Config) (*observability.Tracer, error) {
	return observability.InitTracing(ctx, cfg.Tracing)
}

// ProvideEventPublisher publishes to EventBridge when a bus is configured
// and to the log otherwise
func ProvideEventPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.EventPublisher, error) {
	if cfg.EventBusName == "" {
		return logging.NewPublisher(logger), nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := awseventbridge.NewFromConfig(awsCfg)
	return eventbridge.NewPublisher(client, cfg.EventBusName, cfg.EventSource, logger), nil
}

// ProvideRiskService creates the risk application service
func ProvideRiskService(
	models ports.ModelProvider,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *appservices.RiskService {
	return appservices.NewRiskService(models, publisher, metrics, tracer, logger)
}

// ProvideGraphQueryService creates the graph query service
func ProvideGraphQueryService(models ports.ModelProvider) *queries.GraphQueryService {
	return queries.NewGraphQueryService(models)
}

// ProvideRateLimiter returns nil when rate limiting is disabled
func ProvideRateLimiter(cfg *config.Config) *auth.TokenBucketLimiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	return auth.NewTokenBucketLimiter(cfg.RateLimitPerMinute, time.Minute/time.Duration(cfg.RateLimitPerMinute))
}

// ProvideJWTValidator returns nil when authentication is disabled
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	if !cfg.AuthEnabled() {
		return nil, nil
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: auth.MethodHS256,
		SecretKey:     cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
	})
}

// ProvideModelWatcher starts hot reload when MODEL_WATCH is set. Each
// successfully loaded model gets a fresh engine.
func ProvideModelWatcher(
	cfg *config.Config,
	holder *appservices.EngineHolder,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*config.ModelWatcher, error) {
	if !cfg.ModelWatch {
		return nil, nil
	}
	engineCfg := cfg.Engine
	w := config.NewModelWatcher(cfg.ModelFile, modelfile.Load, func(m *aggregates.Model) {
		engine, err := services.NewEngine(m, &engineCfg)
		if err != nil {
			metrics.RecordModelReload(err)
			logger.Error("Reloaded model rejected", zap.Error(err))
			return
		}
		holder.Swap(engine)
		metrics.RecordModelReload(nil)
		event := events.NewModelReloaded(m.Name(), cfg.ModelFile, m.Graph().NodeCount(), m.Graph().EdgeCount(), time.Now().UTC())
		if err := publisher.Publish(context.Background(), event); err != nil {
			logger.Warn("Failed to publish model reload", zap.Error(err))
		}
	}, logger)
	w.OnError(metrics.RecordModelReload)

	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}
