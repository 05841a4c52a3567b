package postgres

import (
	"context"
	"strings"

	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nutritionFoodRepository reads the static 'nutrition_foods' catalog.
type nutritionFoodRepository struct {
	db *gorm.DB
}

// NewNutritionFoodRepository is the constructor for nutritionFoodRepository.
func NewNutritionFoodRepository(db *gorm.DB) repository.NutritionFoodRepository {
	return &nutritionFoodRepository{db: db}
}

func (repo *nutritionFoodRepository) FindAll(ctx context.Context) ([]*entity.NutritionFood, error) {
	var foodModels []*model.NutritionFoodModel

	if err := repo.db.WithContext(ctx).Order("category ASC, name ASC").Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load nutrition catalog")
	}

	return toNutritionFoodsDomain(foodModels), nil
}

func (repo *nutritionFoodRepository) FindByNames(ctx context.Context, names []string) ([]*entity.NutritionFood, error) {
	if len(names) == 0 {
		return []*entity.NutritionFood{}, nil
	}

	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(name)))
	}

	var foodModels []*model.NutritionFoodModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowered).
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nutrition foods by names")
	}

	return toNutritionFoodsDomain(foodModels), nil
}

func toNutritionFoodsDomain(foodModels []*model.NutritionFoodModel) []*entity.NutritionFood {
	foods := make([]*entity.NutritionFood, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, &entity.NutritionFood{
			ID:       foodM.ID,
			Name:     foodM.Name,
			Category: foodM.Category,
			Calories: foodM.Calories,
			Protein:  foodM.Protein,
			Carbs:    foodM.Carbs,
			Fat:      foodM.Fat,
			Fiber:    foodM.Fiber,
		})
	}

	return foods
}
