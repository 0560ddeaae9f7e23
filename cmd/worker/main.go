package main

import (
	"context"
	"log/slog"
	"os"

	"twashell/config"
	"twashell/internal/delivery"
	"twashell/internal/delivery/worker"
	"twashell/internal/delivery/worker/handler"
	"twashell/internal/domain/service"
	"twashell/internal/infra/cachestore"
	"twashell/internal/infra/fetch"
	logs "twashell/internal/infra/log"
	"twashell/internal/infra/platform"
	"twashell/internal/infra/pubsub"
	"twashell/internal/usecase"
	"twashell/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerCacheLifecycle,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose sub-configs for the cache and push services
		func(cfg *config.Config) *config.CacheConfig {
			if cfg == nil || cfg.Cache == nil {
				return &config.CacheConfig{}
			}

			return cfg.Cache
		},
		func(cfg *config.Config) *config.AppConfig {
			if cfg == nil || cfg.App == nil {
				return &config.AppConfig{}
			}

			return cfg.App
		},
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			cachestore.NewMemoryStorage,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fetch.NewHTTPFetcher,
			platform.NewMemoryClientRegistry,
			func(registry *platform.MemoryClientRegistry) service.ClientRegistry { return registry },
			platform.NewLogPresenter,
			func(presenter *platform.LogPresenter) service.NotificationPresenter { return presenter },
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAssetCacheService,
			impl.NewPushService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerCacheLifecycle precaches the asset manifest and claims clients on
// startup, mirroring the install and activate phases.
func registerCacheLifecycle(lc fx.Lifecycle, cacheUC usecase.AssetCacheUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cacheUC.Install(ctx); err != nil {
				return err
			}

			logger.Info("Asset cache installed")

			if err := cacheUC.Activate(ctx); err != nil {
				return err
			}

			logger.Info("Asset cache activated")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
