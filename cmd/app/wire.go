//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outdoor-scheduler/internal/bootstrap"
	"github.com/yanqian/outdoor-scheduler/internal/domain/activity"
	"github.com/yanqian/outdoor-scheduler/internal/domain/auth"
	"github.com/yanqian/outdoor-scheduler/internal/domain/forecast"
	"github.com/yanqian/outdoor-scheduler/internal/infra/config"
	"github.com/yanqian/outdoor-scheduler/internal/infra/weather/areacode"
	"github.com/yanqian/outdoor-scheduler/internal/infra/weather/bmkg"
	httpiface "github.com/yanqian/outdoor-scheduler/internal/interface/http"
	"github.com/yanqian/outdoor-scheduler/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideForecastConfig,
		provideWeatherClient,
		provideAreaResolver,
		provideWilayahClient,
		provideNominatimClient,
		provideForecastStore,
		providePostgresPool,
		provideUserRepository,
		provideActivityRepository,
		provideRefresher,
		provideLocationService,
		auth.NewService,
		forecast.NewService,
		activity.NewService,
		wire.Bind(new(forecast.ProviderClient), new(*bmkg.Client)),
		wire.Bind(new(forecast.AreaResolver), new(*areacode.Resolver)),
		httpiface.NewAuthHandler,
		httpiface.NewActivityHandler,
		httpiface.NewWeatherHandler,
		httpiface.NewLocationHandler,
		wire.Struct(new(httpiface.Handlers), "*"),
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
