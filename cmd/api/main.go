package main

import (
	"context"
	"log/slog"
	"os"

	"fitplan/config"
	"fitplan/internal/delivery"
	"fitplan/internal/delivery/api"
	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/router/handler"
	"fitplan/internal/infra/auth"
	"fitplan/internal/infra/billing"
	"fitplan/internal/infra/invoice"
	"fitplan/internal/infra/llm"
	logs "fitplan/internal/infra/log"
	"fitplan/internal/infra/mail"
	"fitplan/internal/infra/persistence/postgres"
	"fitplan/internal/infra/pubsub"
	"fitplan/internal/usecase/impl"

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
		injectMiddleware(),
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
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewWorkflowRunRepository,
		),
	)
}

// The API publishes events and serves reads. Generation itself runs in the worker.
func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		billing.Module,
		invoice.Module,
		llm.Module,
		mail.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWorkflowRunner,
			impl.NewPlanQueryService,
			impl.NewShoppingListService,
			impl.NewBillingService,
			impl.NewIdentityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlanHandler,
			handler.NewShoppingListHandler,
			handler.NewBillingHandler,
			handler.NewIdentityHandler,
			handler.NewNutritionHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
