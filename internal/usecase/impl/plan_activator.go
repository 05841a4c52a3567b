package impl

import (
	"context"
	"log/slog"

	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// planActivator swaps the current selection of a profile. Activations of the
// same profile are serialised by the profile lock; the version check on the
// profile row catches writers that bypass it.
type planActivator struct {
	txManager repository.TransactionManager
	locker    service.ProfileLocker
	logger    *slog.Logger
}

// Activate flags the workout plan (and meal plan, when given) active, deactivates
// the other plans of the profile and points the profile at the workout plan,
// all in one transaction.
func (a *planActivator) Activate(ctx context.Context, profileID, planID uuid.UUID, mealPlanID *uuid.UUID) error {
	return a.withLock(ctx, profileID, func() error {
		return a.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			profileRepo := repoFactory.NewFitnessProfileRepository()

			profile, err := profileRepo.FindByID(ctx, profileID)
			if err != nil {
				return errors.Wrap(err, "failed to load profile for activation")
			}

			if err := repoFactory.NewWorkoutPlanRepository().Activate(ctx, profileID, planID); err != nil {
				return errors.Wrap(err, "failed to activate workout plan")
			}

			if mealPlanID != nil {
				if err := repoFactory.NewMealPlanRepository().Activate(ctx, profileID, *mealPlanID); err != nil {
					return errors.Wrap(err, "failed to activate meal plan")
				}
			}

			if profile.CurrentPlanID != nil && *profile.CurrentPlanID == planID {
				return nil
			}

			if err := profileRepo.SetCurrentPlan(ctx, profileID, planID, profile.Version); err != nil {
				return errors.Wrap(err, "failed to set current plan")
			}

			return nil
		})
	})
}

// ActivateMealPlan makes mealPlanID the only active meal plan of the profile.
func (a *planActivator) ActivateMealPlan(ctx context.Context, profileID, mealPlanID uuid.UUID) error {
	return a.withLock(ctx, profileID, func() error {
		return a.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewMealPlanRepository().Activate(ctx, profileID, mealPlanID)
		})
	})
}

func (a *planActivator) withLock(ctx context.Context, profileID uuid.UUID, fn func() error) error {
	unlock, err := a.locker.Lock(ctx, profileID)
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			requestLogger(ctx, a.logger).WarnContext(ctx, "Failed to release profile lock",
				slog.String("profile_id", profileID.String()),
				slog.Any("error", err),
			)
		}
	}()

	return fn()
}
