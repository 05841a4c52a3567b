package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkoutPlanRepository defines the persistence operations for workout plans and their workouts.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *entity.WorkoutPlan) error

	// FindByID loads the plan without workouts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)

	// FindByIDWithWorkouts loads the plan with ordered workouts and exercises.
	FindByIDWithWorkouts(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)

	// FindLatestByProfile loads the newest plan of a profile with its workouts.
	FindLatestByProfile(ctx context.Context, profileID uuid.UUID) (*entity.WorkoutPlan, error)

	// FindPublic lists demo plans that are public and ready.
	FindPublic(ctx context.Context, limit int) ([]*entity.WorkoutPlan, error)

	// UpdateNarrative stores name, description and body.
	UpdateNarrative(ctx context.Context, id uuid.UUID, name, description, body string) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PlanStatus) error

	// CountWorkouts returns the number of workouts stored for a plan.
	CountWorkouts(ctx context.Context, planID uuid.UUID) (int, error)

	// ReplaceWorkouts deletes existing workouts of the plan and inserts the given ones.
	ReplaceWorkouts(ctx context.Context, planID uuid.UUID, workouts []*entity.Workout) error

	// Activate flags the plan active and ready and deactivates every other plan of the profile.
	Activate(ctx context.Context, profileID, planID uuid.UUID) error
}
