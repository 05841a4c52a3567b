package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType is the slot of a meal within a day.
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

// Macros holds energy and macronutrient amounts in kcal and grams.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// MealPlan is a week of meals for a FitnessProfile. Its macro values are
// always derived from ingredients, never taken from model output.
type MealPlan struct {
	ID             uuid.UUID
	ProfileID      uuid.UUID
	WorkoutPlanID  *uuid.UUID
	WeekNumber     int
	TargetCalories int
	TargetProtein  int
	TargetCarbs    int
	TargetFat      int
	IsActive       bool
	IsPublic       bool
	Meals          []*Meal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Meal is one eating occasion on a given day.
type Meal struct {
	ID         uuid.UUID
	MealPlanID uuid.UUID
	Week       int
	Day        int
	Type       MealType
	Name       string
	Position   int
	Macros     Macros
	Recipes    []*Recipe
}

// Recipe belongs to a Meal and lists its ingredients. MalformedIngredients
// is set when the stored ingredient list could not be decoded; Ingredients
// is empty in that case.
type Recipe struct {
	ID                   uuid.UUID
	MealID               uuid.UUID
	Name                 string
	Instructions         string
	PrepMinutes          int
	Ingredients          []Ingredient
	MalformedIngredients bool
	Macros               Macros
}

// Ingredient is a catalog food with a quantity.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
