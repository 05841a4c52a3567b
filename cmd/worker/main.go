package main

import (
	"context"
	"log/slog"
	"os"

	"fitplan/config"
	"fitplan/internal/delivery"
	"fitplan/internal/delivery/worker"
	"fitplan/internal/delivery/worker/handler"
	"fitplan/internal/infra/auth"
	"fitplan/internal/infra/llm"
	"fitplan/internal/infra/lock"
	logs "fitplan/internal/infra/log"
	"fitplan/internal/infra/mail"
	"fitplan/internal/infra/persistence/postgres"
	"fitplan/internal/infra/pubsub"
	"fitplan/internal/infra/video"
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
			postgres.NewNutritionFoodRepository,
			postgres.NewWorkflowRunRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		llm.Module,
		lock.Module,
		mail.Module,
		pubsub.Module,
		video.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWorkflowRunner,
			impl.NewPlanGenerationService,
			impl.NewMealPlanService,
			impl.NewShoppingListService,
			impl.NewIdentityService,
			impl.NewEventDispatcher,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
