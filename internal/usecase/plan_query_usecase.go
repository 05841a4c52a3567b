package usecase

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanQueryUsecase serves the read side of plans to authenticated users.
type PlanQueryUsecase interface {
	// CurrentPlan returns the current plan with workouts. A plan that is still
	// generating is returned with an empty workout list.
	CurrentPlan(ctx context.Context, userID string) (*entity.WorkoutPlan, error)

	// PlanByID returns a plan owned by the user or a public one.
	PlanByID(ctx context.Context, userID string, planID uuid.UUID) (*entity.WorkoutPlan, error)

	PublicPlans(ctx context.Context, limit int) ([]*entity.WorkoutPlan, error)

	CurrentMealPlan(ctx context.Context, userID string) (*entity.MealPlan, error)

	// RequestMealPlanRegeneration publishes meal-plan.regenerate and returns the event id.
	RequestMealPlanRegeneration(ctx context.Context, userID string, assessment entity.AssessmentData) (string, error)
}
