package main

import (
	"context"
	"log/slog"
	"os"

	"zoning/config"
	"zoning/internal/delivery"
	"zoning/internal/delivery/http"
	"zoning/internal/delivery/http/middleware"
	"zoning/internal/delivery/http/router/handler"
	"zoning/internal/infra/advisory"
	"zoning/internal/infra/auth"
	logs "zoning/internal/infra/log"
	"zoning/internal/infra/persistence/collection"
	"zoning/internal/infra/persistence/sqlite"
	"zoning/internal/usecase/impl"

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
		sqlite.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			collection.NewUserRepository,
			collection.NewApplicantRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			advisory.NewHTTPAdvisor,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewApplicantService,
			impl.NewTransferService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewApplicantHandler,
			handler.NewTransferHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
