package repository

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// FitnessProfileRepository defines the persistence operations for fitness profiles.
type FitnessProfileRepository interface {
	// FindByUserID returns ErrProfileNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID string) (*entity.FitnessProfile, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessProfile, error)

	// Create inserts a profile. A second profile for the same user fails with a unique violation.
	Create(ctx context.Context, profile *entity.FitnessProfile) error

	// SetCurrentPlan swaps the current plan pointer when the stored version equals
	// expectedVersion and bumps the version. It returns ErrVersionConflict otherwise.
	SetCurrentPlan(ctx context.Context, profileID, planID uuid.UUID, expectedVersion int) error
}
