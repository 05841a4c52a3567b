package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanRepository defines the persistence operations for meal plans.
type MealPlanRepository interface {
	// Create inserts the plan with all meals and recipes.
	Create(ctx context.Context, plan *entity.MealPlan) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error)

	// FindActiveByProfile returns the active plan with meals and recipes.
	FindActiveByProfile(ctx context.Context, profileID uuid.UUID) (*entity.MealPlan, error)

	// Activate flags the plan active and deactivates every other meal plan of the profile.
	Activate(ctx context.Context, profileID, mealPlanID uuid.UUID) error
}
