package postgres

import (
	"context"
	"encoding/json"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mealPlanRepository implements the repository.MealPlanRepository interface.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Create inserts the plan with its meals and recipes in one statement batch.
func (repo *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	assignID(&plan.ID)
	for _, meal := range plan.Meals {
		assignID(&meal.ID)
		meal.MealPlanID = plan.ID
		for _, recipe := range meal.Recipes {
			assignID(&recipe.ID)
			recipe.MealID = meal.ID
		}
	}

	planM, err := fromMealPlanDomain(plan)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("profileId", "unknown fitness profile")
		}
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrDuplicateRecord, "meal plan already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan")
	}

	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

func (repo *mealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *mealPlanRepository) FindActiveByProfile(ctx context.Context, profileID uuid.UUID) (*entity.MealPlan, error) {
	return repo.findOne(ctx, "profile_id = ? AND is_active = ?", profileID, true)
}

func (repo *mealPlanRepository) findOne(ctx context.Context, query string, args ...any) (*entity.MealPlan, error) {
	var planM model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC, position ASC")
		}).
		Preload("Meals.Recipes").
		Where(query, args...).
		Order("created_at DESC").
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	return toMealPlanDomain(&planM), nil
}

// Activate must run inside a transaction.
func (repo *mealPlanRepository) Activate(ctx context.Context, profileID, mealPlanID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.MealPlanModel{}).
		Where("profile_id = ? AND id <> ? AND is_active = ?", profileID, mealPlanID, true).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate meal plans")
	}

	result := db.Model(&model.MealPlanModel{}).
		Where("id = ? AND profile_id = ?", mealPlanID, profileID).
		Update("is_active", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to activate meal plan")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrMealPlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMealPlanDomain(data *model.MealPlanModel) *entity.MealPlan {
	plan := &entity.MealPlan{
		ID:             data.ID,
		ProfileID:      data.ProfileID,
		WorkoutPlanID:  data.WorkoutPlanID,
		WeekNumber:     data.WeekNumber,
		TargetCalories: data.TargetCalories,
		TargetProtein:  data.TargetProtein,
		TargetCarbs:    data.TargetCarbs,
		TargetFat:      data.TargetFat,
		IsActive:       data.IsActive,
		IsPublic:       data.IsPublic,
		Meals:          make([]*entity.Meal, 0, len(data.Meals)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	for _, mealM := range data.Meals {
		meal := &entity.Meal{
			ID:         mealM.ID,
			MealPlanID: mealM.MealPlanID,
			Week:       mealM.Week,
			Day:        mealM.Day,
			Type:       entity.MealType(mealM.Type),
			Name:       mealM.Name,
			Position:   mealM.Position,
			Macros:     entity.Macros{Calories: mealM.Calories, Protein: mealM.Protein, Carbs: mealM.Carbs, Fat: mealM.Fat},
			Recipes:    make([]*entity.Recipe, 0, len(mealM.Recipes)),
		}
		for _, recipeM := range mealM.Recipes {
			meal.Recipes = append(meal.Recipes, toRecipeDomain(recipeM))
		}
		plan.Meals = append(plan.Meals, meal)
	}

	return plan
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	recipe := &entity.Recipe{
		ID:           data.ID,
		MealID:       data.MealID,
		Name:         data.Name,
		Instructions: data.Instructions,
		PrepMinutes:  data.PrepMinutes,
		Macros:       entity.Macros{Calories: data.Calories, Protein: data.Protein, Carbs: data.Carbs, Fat: data.Fat},
	}

	ingredients, err := decodeIngredients(data.Ingredients)
	if err != nil {
		recipe.MalformedIngredients = true

		return recipe
	}
	recipe.Ingredients = ingredients

	return recipe
}

// decodeIngredients is the parse boundary for stored ingredient lists.
func decodeIngredients(raw datatypes.JSON) ([]entity.Ingredient, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var ingredients []entity.Ingredient
	if err := json.Unmarshal(raw, &ingredients); err != nil {
		return nil, errors.Wrap(err, "failed to decode ingredients")
	}

	for _, ing := range ingredients {
		if ing.Name == "" || ing.Amount < 0 {
			return nil, errors.New("invalid ingredient entry")
		}
	}

	return ingredients, nil
}

func fromMealPlanDomain(data *entity.MealPlan) (*model.MealPlanModel, error) {
	planM := &model.MealPlanModel{
		ID:             data.ID,
		ProfileID:      data.ProfileID,
		WorkoutPlanID:  data.WorkoutPlanID,
		WeekNumber:     data.WeekNumber,
		TargetCalories: data.TargetCalories,
		TargetProtein:  data.TargetProtein,
		TargetCarbs:    data.TargetCarbs,
		TargetFat:      data.TargetFat,
		IsActive:       data.IsActive,
		IsPublic:       data.IsPublic,
		Meals:          make([]*model.MealModel, 0, len(data.Meals)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	for _, meal := range data.Meals {
		mealM := &model.MealModel{
			ID:         meal.ID,
			MealPlanID: meal.MealPlanID,
			Week:       meal.Week,
			Day:        meal.Day,
			Type:       string(meal.Type),
			Name:       meal.Name,
			Position:   meal.Position,
			Calories:   meal.Macros.Calories,
			Protein:    meal.Macros.Protein,
			Carbs:      meal.Macros.Carbs,
			Fat:        meal.Macros.Fat,
			Recipes:    make([]*model.RecipeModel, 0, len(meal.Recipes)),
		}

		for _, recipe := range meal.Recipes {
			ingredients, err := json.Marshal(recipe.Ingredients)
			if err != nil {
				return nil, errors.Wrap(err, "failed to encode ingredients")
			}
			mealM.Recipes = append(mealM.Recipes, &model.RecipeModel{
				ID:           recipe.ID,
				MealID:       recipe.MealID,
				Name:         recipe.Name,
				Instructions: recipe.Instructions,
				PrepMinutes:  recipe.PrepMinutes,
				Ingredients:  datatypes.JSON(ingredients),
				Calories:     recipe.Macros.Calories,
				Protein:      recipe.Macros.Protein,
				Carbs:        recipe.Macros.Carbs,
				Fat:          recipe.Macros.Fat,
			})
		}
		planM.Meals = append(planM.Meals, mealM)
	}

	return planM, nil
}
