package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MealPlanModel mirrors the 'meal_plans' table.
type MealPlanModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProfileID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkoutPlanID  *uuid.UUID `gorm:"type:uuid"`
	WeekNumber     int        `gorm:"not null;default:1"`
	TargetCalories int
	TargetProtein  int
	TargetCarbs    int
	TargetFat      int
	IsActive       bool `gorm:"not null;default:false"`
	IsPublic       bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Meals []*MealModel `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealModel mirrors the 'meals' table.
type MealModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Week       int       `gorm:"not null"`
	Day        int       `gorm:"not null"`
	Type       string    `gorm:"type:varchar(16);not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Position   int       `gorm:"not null"`
	Calories   float64
	Protein    float64
	Carbs      float64
	Fat        float64

	Recipes []*RecipeModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// RecipeModel mirrors the 'recipes' table. Ingredients is stored as raw JSON
// and decoded at the repository boundary.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MealID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Instructions string    `gorm:"type:text"`
	PrepMinutes  int
	Ingredients  datatypes.JSON
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// NutritionFoodModel mirrors the read-only 'nutrition_foods' catalog.
type NutritionFoodModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category string    `gorm:"type:varchar(64)"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// TableName explicitly sets the table name for GORM.
func (NutritionFoodModel) TableName() string {
	return "nutrition_foods"
}
