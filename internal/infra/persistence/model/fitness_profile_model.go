package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FitnessProfileModel mirrors the 'fitness_profiles' table. One row per user.
type FitnessProfileModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                 string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Age                    int
	Gender                 string `gorm:"type:varchar(32)"`
	HeightCm               float64
	WeightKg               float64
	TargetWeightKg         *float64
	FitnessGoal            string `gorm:"type:varchar(32);not null"`
	ActivityLevel          string `gorm:"type:varchar(64);not null"`
	ExperienceLevel        string `gorm:"type:varchar(32);not null"`
	AvailableDays          datatypes.JSONSlice[string]
	Equipment              datatypes.JSONSlice[string]
	WorkoutDurationMinutes int
	MealPlanningEnabled    bool `gorm:"not null;default:true"`
	DietaryRestrictions    datatypes.JSONSlice[string]
	Allergies              datatypes.JSONSlice[string]
	CurrentPlanID          *uuid.UUID `gorm:"type:uuid"`
	Version                int        `gorm:"not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (FitnessProfileModel) TableName() string {
	return "fitness_profiles"
}
