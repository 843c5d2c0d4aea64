package main

import (
	"context"
	"log/slog"
	"os"

	"tube/config"
	"tube/internal/delivery"
	"tube/internal/delivery/api"
	apimiddleware "tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/router/handler"
	"tube/internal/infra/auth"
	logs "tube/internal/infra/log"
	"tube/internal/infra/persistence/mongodb"
	"tube/internal/infra/storage"
	"tube/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		mongodb.New,
		newMetricsRegistry,
	)
}

// newMetricsRegistry builds the registry scraped at /metrics, preloaded with
// the process and Go runtime collectors.
func newMetricsRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry, registry
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.OpenBucket,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewHealthHandler,
			handler.NewMediaHandler,
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

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					// The start context expires once startup completes, so serving runs detached.
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
