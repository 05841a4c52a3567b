// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlanGenerationInput is the payload of the fitness-plan.generate event.
type PlanGenerationInput struct {
	AssessmentData      entity.AssessmentData `json:"assessmentData"`
	UserID              string                `json:"userId"`
	Email               string                `json:"email,omitempty"`
	WorkoutPlanID       string                `json:"workoutPlanId,omitempty"`
	PaymentCompleted    bool                  `json:"paymentCompleted,omitempty"`
	PaymentID           string                `json:"paymentId,omitempty"`
	PlanName            string                `json:"planName,omitempty"`
	RegenerateNarrative bool                  `json:"regenerateNarrative,omitempty"`
}

// --- Output DTOs ---

// PlanGenerationOutput identifies what a generation run produced.
type PlanGenerationOutput struct {
	ProfileID     uuid.UUID
	WorkoutPlanID uuid.UUID
	MealPlanID    *uuid.UUID
	Workouts      int
}

// PlanGenerationUsecase turns assessment answers into an activated workout
// plan and, when enabled, a meal plan.
type PlanGenerationUsecase interface {
	// Generate runs the generation workflow. runKey identifies the run so a
	// redelivered event resumes instead of starting over.
	Generate(ctx context.Context, runKey string, input *PlanGenerationInput) (*PlanGenerationOutput, error)
}
