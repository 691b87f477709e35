package di

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/ports"
	"github.com/Anirach/ncd-health-plus/application/queries"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	"github.com/Anirach/ncd-health-plus/infrastructure/config"
	"github.com/Anirach/ncd-health-plus/interfaces/http/rest"
	"github.com/Anirach/ncd-health-plus/pkg/auth"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Log          *observability.Logger
	Logger       *zap.Logger
	Engines      *appservices.EngineHolder
	Publisher    ports.EventPublisher
	Metrics      *observability.Collector
	Tracer       *observability.Tracer
	RiskService  *appservices.RiskService
	GraphQueries *queries.GraphQueryService
	RateLimiter  *auth.TokenBucketLimiter
	JWTValidator *auth.JWTValidator
	ModelWatcher *config.ModelWatcher
}

// Router builds the HTTP router over the container's services
func (c *Container) Router() *rest.Router {
	deps := rest.Dependencies{
		RiskService:  c.RiskService,
		GraphQueries: c.GraphQueries,
		Models:       c.Engines,
		JWTValidator: c.JWTValidator,
		RateLimiter:  c.RateLimiter,
		Logger:       c.Logger,
	}
	if c.Config.EnableMetrics {
		deps.Metrics = c.Metrics
	}
	return rest.NewRouter(deps, rest.Options{
		EnableCORS:   c.Config.EnableCORS,
		CORSOrigins:  c.Config.CORSOrigins,
		MaxBodyBytes: c.Config.MaxBodyBytes,
		Debug:        c.Config.IsDevelopment(),

		StrictProfiles: c.Config.StrictProfiles,
	})
}

// Handler is the configured HTTP handler
func (c *Container) Handler() http.Handler {
	return c.Router().Setup()
}

// Close stops background work and flushes telemetry
func (c *Container) Close(ctx context.Context) {
	if c.ModelWatcher != nil {
		c.ModelWatcher.Stop()
	}
	if c.RateLimiter != nil {
		c.RateLimiter.Stop()
	}
	if c.Tracer != nil {
		if err := c.Tracer.Shutdown(ctx); err != nil {
			c.Logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}
	_ = c.Logger.Sync()
}
