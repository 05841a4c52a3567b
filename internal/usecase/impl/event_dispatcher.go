package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitplan/internal/domain/constants"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"
	"fitplan/internal/util"
	"fitplan/internal/workflow"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventHandler func(ctx context.Context, event *service.Event) error

type eventDispatcher struct {
	handlers map[string]eventHandler
	logger   *slog.Logger
}

// EventDispatcherParams holds dependencies for EventDispatcher, injected by Fx.
type EventDispatcherParams struct {
	fx.In

	PlanGeneration usecase.PlanGenerationUsecase
	MealPlans      usecase.MealPlanUsecase
	ShoppingLists  usecase.ShoppingListUsecase
	Identity       usecase.IdentityUsecase
	Logger         *slog.Logger
}

// NewEventDispatcher registers one workflow per event name.
func NewEventDispatcher(params EventDispatcherParams) usecase.EventDispatcher {
	return &eventDispatcher{
		handlers: map[string]eventHandler{
			constants.EventFitnessPlanGenerate: func(ctx context.Context, event *service.Event) error {
				var input usecase.PlanGenerationInput
				if err := decodeEventData(event, &input); err != nil {
					return err
				}
				_, err := params.PlanGeneration.Generate(ctx, event.ID, &input)

				return err
			},
			constants.EventMealPlanRegenerate: func(ctx context.Context, event *service.Event) error {
				var input usecase.MealPlanRegenerationInput
				if err := decodeEventData(event, &input); err != nil {
					return err
				}
				_, err := params.MealPlans.Regenerate(ctx, event.ID, &input)

				return err
			},
			constants.EventShoppingListGenerate: func(ctx context.Context, event *service.Event) error {
				var input usecase.ShoppingListInput
				if err := decodeEventData(event, &input); err != nil {
					return err
				}
				_, err := params.ShoppingLists.Generate(ctx, event.ID, &input)

				return err
			},
			constants.EventUserCreated: func(ctx context.Context, event *service.Event) error {
				var data usecase.IdentityUserData
				if err := decodeEventData(event, &data); err != nil {
					return err
				}
				_, err := params.Identity.ProvisionUser(ctx, event.ID, &data)

				return err
			},
		},
		logger: params.Logger,
	}
}

func decodeEventData(event *service.Event, out any) error {
	if err := json.Unmarshal(event.Data, out); err != nil {
		return domainerrors.NewValidationError("data", err.Error())
	}

	return nil
}

// Dispatch runs the workflow registered for the event name. Only transient
// failures outside of a workflow step are returned; an exhausted or
// permanently failed workflow is acknowledged so the queue stops redelivering.
func (d *eventDispatcher) Dispatch(ctx context.Context, event *service.Event) error {
	logger := requestLogger(ctx, d.logger).With(
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
	)

	handler, ok := d.handlers[event.Name]
	if !ok {
		logger.WarnContext(ctx, "No handler registered for event")

		return nil
	}

	start := time.Now()
	err := handler(ctx, event)
	elapsed := util.FormatDuration(time.Since(start))
	if err == nil {
		logger.Info("Event processed", slog.String("duration", elapsed))

		return nil
	}

	var stepErr *workflow.StepError
	if errors.As(err, &stepErr) {
		logger.ErrorContext(ctx, "Workflow failed",
			slog.String("workflow", stepErr.Workflow),
			slog.String("step", stepErr.Step),
			slog.Int("attempts", stepErr.Attempts),
			slog.String("duration", elapsed),
			slog.Any("error", stepErr.Err),
		)

		return nil
	}

	if domainerrors.IsRetryable(err) {
		logger.WarnContext(ctx, "Event processing failed, requesting redelivery",
			slog.String("duration", elapsed),
			slog.Any("error", err),
		)

		return err
	}

	logger.ErrorContext(ctx, "Event rejected", slog.Any("error", err))

	return nil
}
