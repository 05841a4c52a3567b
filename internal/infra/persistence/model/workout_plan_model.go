package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutPlanModel mirrors the 'workout_plans' table.
type WorkoutPlanModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Body          string    `gorm:"type:text"`
	DurationWeeks int       `gorm:"not null"`
	Difficulty    string    `gorm:"type:varchar(32)"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	IsActive      bool      `gorm:"not null;default:false"`
	IsPublic      bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Workouts []*WorkoutModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutPlanModel) TableName() string {
	return "workout_plans"
}

// WorkoutModel mirrors the 'workouts' table.
type WorkoutModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Week     int       `gorm:"not null"`
	Day      string    `gorm:"type:varchar(16);not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Focus    string    `gorm:"type:varchar(64)"`
	Position int       `gorm:"not null"`

	Exercises []*ExerciseModel `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}

// ExerciseModel mirrors the 'exercises' table.
type ExerciseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkoutID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	EnglishName     string    `gorm:"type:varchar(255)"`
	Sets            int
	Reps            int
	RestSeconds     int
	DurationSeconds int
	YoutubeURL      *string `gorm:"type:varchar(512)"`
	Position        int     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ExerciseModel) TableName() string {
	return "exercises"
}
