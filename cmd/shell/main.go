package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"twashell/config"
	"twashell/internal/delivery"
	"twashell/internal/delivery/api"
	"twashell/internal/delivery/api/router/handler"
	"twashell/internal/domain/service"
	"twashell/internal/infra/kv"
	logs "twashell/internal/infra/log"
	"twashell/internal/infra/notification"
	"twashell/internal/infra/platform"
	"twashell/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		// Expose sub-configs for the token and platform services
		func(cfg *config.Config) *config.FirebaseConfig {
			if cfg == nil || cfg.Firebase == nil {
				return &config.FirebaseConfig{}
			}

			return cfg.Firebase
		},
		func(cfg *config.Config) *config.PlatformConfig {
			if cfg == nil || cfg.Platform == nil {
				return &config.PlatformConfig{}
			}

			return cfg.Platform
		},
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewMemoryTokenStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			platform.NewStaticPrompter,
			platform.NewMessageBus,
			func(bus *platform.MessageBus) service.MessageSource { return bus },
			newFirebaseMessenger,
			newTokenSource,
		),
	)
}

// newFirebaseMessenger creates the push provider client with dependency injection
func newFirebaseMessenger(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Messenger, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	// Client identity without admin credentials still serves token
	// acquisition; dispatch reports the uninitialized provider per request.
	if !notification.HasAdminCredentials(cfg.Firebase) {
		logger.Warn("Firebase admin credentials not configured, dispatch provider disabled")

		return nil, nil
	}

	link := "/"
	if cfg.App != nil && cfg.App.URL != "" {
		link = cfg.App.URL
	}

	messenger, err := notification.NewFirebaseMessenger(ctx, cfg.Firebase, link)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase messenger: %w", err)
	}

	return messenger, nil
}

// newTokenSource creates a token source when messaging is configured
func newTokenSource(cfg *config.Config) service.TokenSource {
	if cfg.Firebase == nil {
		return nil // Acquisition reports the uninitialized state
	}

	platformCfg := cfg.Platform
	if platformCfg == nil {
		platformCfg = &config.PlatformConfig{}
	}

	return platform.NewLocalTokenSource(platformCfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewTokenService,
			impl.NewRelayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDispatchHandler,
			handler.NewTokenHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
