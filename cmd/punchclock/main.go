package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata" // blackout evaluation needs IANA zones even on minimal images

	"punchclock/config"
	"punchclock/internal/delivery"
	"punchclock/internal/delivery/api"
	"punchclock/internal/delivery/api/middleware"
	"punchclock/internal/delivery/api/router/handler"
	"punchclock/internal/infra/auth"
	"punchclock/internal/infra/clock"
	logs "punchclock/internal/infra/log"
	"punchclock/internal/infra/metrics"
	"punchclock/internal/infra/persistence/postgres"
	"punchclock/internal/infra/ratelimit"
	"punchclock/internal/usecase/impl"

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
		context.Background,
		metrics.NewRegistry,
		metrics.NewMetrics,
		postgres.New,
		ratelimit.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTimeEntryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewSessionTokenService,
			ratelimit.NewLimiter,
			metrics.AsClockMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewClockService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEntryHandler,
			handler.NewHealthHandler,
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
