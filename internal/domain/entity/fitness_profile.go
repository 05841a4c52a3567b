package entity

import (
	"time"

	"github.com/google/uuid"
)

// FitnessGoal is the primary training objective chosen in the assessment.
type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "WEIGHT_LOSS"
	GoalMuscleGain     FitnessGoal = "MUSCLE_GAIN"
	GoalEndurance      FitnessGoal = "ENDURANCE"
	GoalStrength       FitnessGoal = "STRENGTH"
	GoalFlexibility    FitnessGoal = "FLEXIBILITY"
	GoalGeneralFitness FitnessGoal = "GENERAL_FITNESS"
)

// Valid reports whether g is one of the known goals.
func (g FitnessGoal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalStrength, GoalFlexibility, GoalGeneralFitness:
		return true
	}

	return false
}

// ActivityLevel describes daily activity outside of training.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
	ActivityExtremelyActive  ActivityLevel = "EXTREMELY_ACTIVE"
)

// ExperienceLevel describes prior training experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
)

// Weekdays used in AvailableDays.
const (
	Monday    = "MONDAY"
	Tuesday   = "TUESDAY"
	Wednesday = "WEDNESDAY"
	Thursday  = "THURSDAY"
	Friday    = "FRIDAY"
	Saturday  = "SATURDAY"
	Sunday    = "SUNDAY"
)

// FitnessProfile captures the assessment answers of one user.
// CurrentPlanID is a selection pointer, ownership lives on WorkoutPlan.ProfileID.
type FitnessProfile struct {
	ID                     uuid.UUID
	UserID                 string
	Age                    int
	Gender                 string
	HeightCm               float64
	WeightKg               float64
	TargetWeightKg         *float64
	FitnessGoal            FitnessGoal
	ActivityLevel          ActivityLevel
	ExperienceLevel        ExperienceLevel
	AvailableDays          []string
	Equipment              []string
	WorkoutDurationMinutes int
	MealPlanningEnabled    bool
	DietaryRestrictions    []string
	Allergies              []string
	CurrentPlanID          *uuid.UUID
	Version                int // Bumped on every current plan swap.
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
