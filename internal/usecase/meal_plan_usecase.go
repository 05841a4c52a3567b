package usecase

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanRegenerationInput is the payload of the meal-plan.regenerate event.
// Non-zero assessment fields override the profile when computing targets.
type MealPlanRegenerationInput struct {
	UserID         string                `json:"userId"`
	AssessmentData entity.AssessmentData `json:"assessmentData"`
}

type MealPlanRegenerationOutput struct {
	MealPlanID uuid.UUID
}

// MealPlanUsecase regenerates the meal plan of an existing profile.
type MealPlanUsecase interface {
	Regenerate(ctx context.Context, runKey string, input *MealPlanRegenerationInput) (*MealPlanRegenerationOutput, error)
}
