package main

import (
	"context"
	"log/slog"
	"os"

	"shoppro/config"
	"shoppro/internal/delivery"
	"shoppro/internal/delivery/http"
	"shoppro/internal/delivery/http/middleware"
	"shoppro/internal/delivery/http/router/handler"
	"shoppro/internal/infra/auth"
	logs "shoppro/internal/infra/log"
	"shoppro/internal/infra/persistence/postgres"
	"shoppro/internal/usecase/impl"

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
			seed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewListingRepository,
			postgres.NewCartLineRepository,
			postgres.NewOrderRepository,
			postgres.NewCouponRepository,
			postgres.NewRatingRepository,
			postgres.NewProfileRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			impl.NewAccountResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAdminService,
			impl.NewListingService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewCouponService,
			impl.NewRatingService,
			impl.NewProfileService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewListingHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewRatingHandler,
			handler.NewProfileHandler,
			handler.NewCouponHandler,
			handler.NewExportHandler,
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
