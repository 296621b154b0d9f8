package main

import (
	"context"
	"log/slog"
	"os"

	"uploader/config"
	"uploader/internal/delivery"
	"uploader/internal/delivery/api"
	apimiddleware "uploader/internal/delivery/api/middleware"
	"uploader/internal/delivery/api/router/handler"
	"uploader/internal/infra/auth"
	logs "uploader/internal/infra/log"
	"uploader/internal/infra/persistence/postgres"
	"uploader/internal/infra/scheduler"
	"uploader/internal/infra/storage"
	"uploader/internal/usecase/impl"

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
		injectScheduler(),
		fx.Invoke(
			startServer,
			// The pruner registers its cron hooks on construction.
			func(*scheduler.RevocationPruner) {},
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRevokedTokenRepository,
			postgres.NewImageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewBlobStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewImageService,
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
			handler.NewUserHandler,
			handler.NewImageHandler,
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

func injectScheduler() fx.Option {
	return fx.Options(
		fx.Provide(
			scheduler.NewRevocationPruner,
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
