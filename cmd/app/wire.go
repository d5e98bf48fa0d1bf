//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/wellness-tips/internal/bootstrap"
	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/internal/infra/config"
	httpiface "github.com/yanqian/wellness-tips/internal/interface/http"
	"github.com/yanqian/wellness-tips/pkg/logger"
	"github.com/yanqian/wellness-tips/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.NewRecorder,
		provideStorage,
		provideTipRepository,
		provideProfileRepository,
		provideProfileReader,
		provideSettingsConfig,
		provideSettingsStore,
		provideLanguageSettings,
		provideWellnessConfig,
		provideGenerator,
		provideTranslator,
		wellness.NewBroadcaster,
		profile.NewService,
		settings.NewService,
		wellness.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
