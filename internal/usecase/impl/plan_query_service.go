package impl

import (
	"context"
	"log/slog"

	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPublicPlans = 20
	maxPublicPlans     = 100
)

type planQueryService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PlanQueryServiceParams holds dependencies for PlanQueryService, injected by Fx.
type PlanQueryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlanQueryService is the constructor for planQueryService.
func NewPlanQueryService(params PlanQueryServiceParams) usecase.PlanQueryUsecase {
	return &planQueryService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// CurrentPlan follows the profile's current plan pointer and falls back to
// the newest plan while nothing has been activated yet.
func (srv *planQueryService) CurrentPlan(ctx context.Context, userID string) (*entity.WorkoutPlan, error) {
	var plan *entity.WorkoutPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProfileNotFound) {
				return domainerrors.ErrWorkoutPlanNotFound
			}

			return err
		}

		planRepo := repoFactory.NewWorkoutPlanRepository()
		if profile.CurrentPlanID != nil {
			plan, err = planRepo.FindByIDWithWorkouts(ctx, *profile.CurrentPlanID)
		} else {
			plan, err = planRepo.FindLatestByProfile(ctx, profile.ID)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	if plan.Workouts == nil {
		plan.Workouts = []*entity.Workout{}
	}

	return plan, nil
}

func (srv *planQueryService) PlanByID(ctx context.Context, userID string, planID uuid.UUID) (*entity.WorkoutPlan, error) {
	var plan *entity.WorkoutPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewWorkoutPlanRepository().FindByIDWithWorkouts(ctx, planID)
		if err != nil {
			return err
		}

		if !found.IsPublic {
			profile, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)
			if err != nil || profile.ID != found.ProfileID {
				return domainerrors.ErrWorkoutPlanNotFound
			}
		}
		plan = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if plan.Workouts == nil {
		plan.Workouts = []*entity.Workout{}
	}

	return plan, nil
}

func (srv *planQueryService) PublicPlans(ctx context.Context, limit int) ([]*entity.WorkoutPlan, error) {
	if limit <= 0 {
		limit = defaultPublicPlans
	}
	limit = min(limit, maxPublicPlans)

	var plans []*entity.WorkoutPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		plans, err = repoFactory.NewWorkoutPlanRepository().FindPublic(ctx, limit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public plans")
	}

	return plans, nil
}

func (srv *planQueryService) CurrentMealPlan(ctx context.Context, userID string) (*entity.MealPlan, error) {
	var mealPlan *entity.MealPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProfileNotFound) {
				return domainerrors.ErrMealPlanNotFound
			}

			return err
		}
		mealPlan, err = repoFactory.NewMealPlanRepository().FindActiveByProfile(ctx, profile.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return mealPlan, nil
}

// RequestMealPlanRegeneration checks that the user has a profile and publishes meal-plan.regenerate.
func (srv *planQueryService) RequestMealPlanRegeneration(ctx context.Context, userID string, assessment entity.AssessmentData) (string, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		return "", err
	}

	event, err := service.NewEvent(constants.EventMealPlanRegenerate, usecase.MealPlanRegenerationInput{
		UserID:         userID,
		AssessmentData: assessment,
	}, deliverycontext.GetRequestIDFromContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "failed to build meal plan event")
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		return "", errors.Wrap(err, "failed to publish meal plan event")
	}

	requestLogger(ctx, srv.logger).Info("Meal plan regeneration requested",
		slog.String("user_id", userID),
		slog.String("event_id", event.ID),
	)

	return event.ID, nil
}
