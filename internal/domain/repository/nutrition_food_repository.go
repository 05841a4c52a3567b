package repository

import (
	"context"

	"fitplan/internal/domain/entity"
)

// NutritionFoodRepository reads the static nutrition catalog.
type NutritionFoodRepository interface {
	FindAll(ctx context.Context) ([]*entity.NutritionFood, error)

	// FindByNames returns the foods whose names match case-insensitively.
	FindByNames(ctx context.Context, names []string) ([]*entity.NutritionFood, error)
}
