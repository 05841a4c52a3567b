package entity

import "github.com/google/uuid"

// NutritionFood is a read-only catalog row with nutrients per 100 g.
type NutritionFood struct {
	ID       uuid.UUID
	Name     string
	Category string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}
