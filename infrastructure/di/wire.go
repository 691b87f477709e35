//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/Anirach/ncd-health-plus/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideZapLogger,
	ProvideModel,
	ProvideEngine,
	ProvideEngineHolder,
	ProvideModelProvider,
	ProvideMetrics,
	ProvideMetricsRecorder,
	ProvideTracer,
	ProvideEventPublisher,
	ProvideRiskService,
	ProvideGraphQueryService,
	ProvideRateLimiter,
	ProvideJWTValidator,
	ProvideModelWatcher,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
