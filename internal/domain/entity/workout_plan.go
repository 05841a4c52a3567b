package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// PlanDurationWeeks is the fixed length of every generated plan.
	PlanDurationWeeks = 8

	// PlaceholderPlanName marks a plan whose generation has not finished.
	PlaceholderPlanName = "Generating…"
)

// PlanStatus tracks the generation lifecycle of a WorkoutPlan.
type PlanStatus string

const (
	PlanStatusPending    PlanStatus = "PENDING"
	PlanStatusGenerating PlanStatus = "GENERATING"
	PlanStatusReady      PlanStatus = "READY"
	PlanStatusFailed     PlanStatus = "FAILED"
)

// WorkoutPlan is an 8-week training program owned by a FitnessProfile.
// An empty Workouts slice is a valid state while generation is running.
type WorkoutPlan struct {
	ID            uuid.UUID
	ProfileID     uuid.UUID
	Name          string
	Description   string
	Body          string // Narrative overview produced by the LLM.
	DurationWeeks int
	Difficulty    ExperienceLevel
	Status        PlanStatus
	IsActive      bool
	IsPublic      bool
	Workouts      []*Workout
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasNarrative reports whether the overview step already ran for this plan.
func (p *WorkoutPlan) HasNarrative() bool {
	return p.Body != "" && p.Name != PlaceholderPlanName
}

// Workout is a single training session tagged with its week and weekday.
type Workout struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	Week      int
	Day       string
	Name      string
	Focus     string
	Position  int
	Exercises []*Exercise
}

// Exercise is one movement inside a Workout. YoutubeURL is nil when no
// embeddable demonstration video could be found.
type Exercise struct {
	ID              uuid.UUID
	WorkoutID       uuid.UUID
	Name            string // Localized name.
	EnglishName     string // Canonical name used for video lookup.
	Sets            int
	Reps            int
	RestSeconds     int
	DurationSeconds int
	YoutubeURL      *string
	Position        int
}
