package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fitplan/config"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/nutrition"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/infra/llm"
	"fitplan/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mealPlanNamespace derives meal plan ids from run keys, so a retried step
// finds the plan a previous attempt already stored.
//
//nolint:gochecknoglobals
var mealPlanNamespace = uuid.MustParse("4f0c7e0e-8a1b-4e52-b0d4-2f9c3c1d9a61")

func mealPlanID(runKey string) uuid.UUID {
	return uuid.NewSHA1(mealPlanNamespace, []byte(runKey+":meal-plan"))
}

// Model output schema. Macros are never read from the model.
type mealPlanDocument struct {
	Days []mealDayDocument `json:"days" validate:"required,min=1,dive"`
}

type mealDayDocument struct {
	Day   int            `json:"day" validate:"min=1"`
	Meals []mealDocument `json:"meals" validate:"required,min=1,dive"`
}

type mealDocument struct {
	Type    string           `json:"type" validate:"required,oneof=BREAKFAST LUNCH DINNER"`
	Name    string           `json:"name" validate:"required"`
	Recipes []recipeDocument `json:"recipes" validate:"required,min=1,dive"`
}

type recipeDocument struct {
	Name         string               `json:"name" validate:"required"`
	Instructions string               `json:"instructions"`
	PrepMinutes  int                  `json:"prepMinutes" validate:"min=0"`
	Ingredients  []ingredientDocument `json:"ingredients" validate:"required,min=1,dive"`
}

type ingredientDocument struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Unit   string  `json:"unit"`
}

//nolint:gochecknoglobals
var mealTypeOrder = map[entity.MealType]int{
	entity.MealBreakfast: 1,
	entity.MealLunch:     2,
	entity.MealDinner:    3,
}

// mealPlanRequest is one generation. Overrides win over the profile for
// target computation only, the stored profile is not changed.
type mealPlanRequest struct {
	RunKey        string
	Profile       *entity.FitnessProfile
	Overrides     entity.AssessmentData
	WorkoutPlanID *uuid.UUID
}

// mealPlanGenerator is shared by plan generation and meal plan regeneration.
type mealPlanGenerator struct {
	llm         service.LLMClient
	foods       repository.NutritionFoodRepository
	txManager   repository.TransactionManager
	validate    *validator.Validate
	days        int
	snackGap    float64
	temperature float32
	maxTokens   int
	logger      *slog.Logger
}

func newMealPlanGenerator(
	llmClient service.LLMClient,
	foods repository.NutritionFoodRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) *mealPlanGenerator {
	g := &mealPlanGenerator{
		llm:         llmClient,
		foods:       foods,
		txManager:   txManager,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		days:        7,
		snackGap:    150,
		temperature: 0.7,
		maxTokens:   8000,
		logger:      logger,
	}
	if cfg != nil && cfg.MealPlan != nil {
		if cfg.MealPlan.Days > 0 {
			g.days = cfg.MealPlan.Days
		}
		if cfg.MealPlan.SnackGapKcal > 0 {
			g.snackGap = cfg.MealPlan.SnackGapKcal
		}
	}
	if cfg != nil && cfg.LLM != nil {
		if cfg.LLM.Temperature > 0 {
			g.temperature = cfg.LLM.Temperature
		}
		if cfg.LLM.MaxTokens > 0 {
			g.maxTokens = cfg.LLM.MaxTokens
		}
	}

	return g
}

// Generate returns the meal plan for req.RunKey, creating it on first call.
func (g *mealPlanGenerator) Generate(ctx context.Context, req mealPlanRequest) (*entity.MealPlan, error) {
	logger := requestLogger(ctx, g.logger)
	id := mealPlanID(req.RunKey)

	existing, err := g.find(ctx, id)
	if err == nil {
		logger.InfoContext(ctx, "Meal plan already generated for run, reusing", slog.String("meal_plan_id", id.String()))

		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrMealPlanNotFound) {
		return nil, err
	}

	targets, err := nutrition.CalculateTargets(targetInput(req.Profile, req.Overrides))
	if err != nil {
		return nil, err
	}
	logAnomalies(ctx, logger, "targets", targets.Anomalies)

	foods, err := g.foods.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load nutrition catalog")
	}
	catalog := nutrition.NewCatalog(foods)
	if catalog.Len() == 0 {
		return nil, domainerrors.NewValidationError("nutritionCatalog", "catalog is empty")
	}

	catalogText := catalog.PromptText()
	prompt := buildMealPlanPrompt(req.Profile, targets, catalogText, g.days)
	logger.InfoContext(ctx, "Requesting meal plan",
		slog.Int("calories", targets.Calories),
		slog.Int("catalog_items", catalog.Len()),
		slog.Int("catalog_bytes", len(catalogText)),
		slog.String("prompt_size", util.FormatBytes(int64(len(prompt)))),
	)

	reply, err := g.llm.Complete(ctx, service.CompletionRequest{
		SystemPrompt: mealPlanSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  g.temperature,
		JSON:         true,
		MaxTokens:    g.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	doc, err := g.decode(reply)
	if err != nil {
		return nil, err
	}

	meals, anomalies := g.buildMeals(doc, catalog)
	logAnomalies(ctx, logger, "meals", anomalies)

	planner := nutrition.SnackPlanner{Catalog: catalog, Foods: nutrition.DefaultSnackFoods, GapThreshold: g.snackGap}
	meals, anomalies = planner.AddSnacks(meals, 1, g.days, targets.Calories)
	logAnomalies(ctx, logger, "snacks", anomalies)

	plan := &entity.MealPlan{
		ID:             id,
		ProfileID:      req.Profile.ID,
		WorkoutPlanID:  req.WorkoutPlanID,
		WeekNumber:     1,
		TargetCalories: targets.Calories,
		TargetProtein:  targets.Protein,
		TargetCarbs:    targets.Carbs,
		TargetFat:      targets.Fat,
		Meals:          meals,
	}

	err = g.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewMealPlanRepository().Create(ctx, plan)
	})
	if errors.Is(err, domainerrors.ErrDuplicateRecord) {
		// A concurrent attempt stored it first.
		return g.find(ctx, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store meal plan")
	}

	logger.InfoContext(ctx, "Meal plan stored",
		slog.String("meal_plan_id", plan.ID.String()),
		slog.Int("meals", len(plan.Meals)),
	)

	return plan, nil
}

func (g *mealPlanGenerator) find(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	var plan *entity.MealPlan
	err := g.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		plan, err = repoFactory.NewMealPlanRepository().FindByID(ctx, id)

		return err
	})

	return plan, err
}

// decode parses and validates the model reply. Any schema violation is an
// ErrLLMMalformedResponse so the step is retried with a fresh completion.
func (g *mealPlanGenerator) decode(reply string) (*mealPlanDocument, error) {
	var doc mealPlanDocument
	if err := llm.DecodeJSON(reply, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Days {
		for j := range doc.Days[i].Meals {
			meal := &doc.Days[i].Meals[j]
			meal.Type = strings.ToUpper(strings.TrimSpace(meal.Type))
		}
	}

	if err := g.validate.Struct(&doc); err != nil {
		return nil, domainerrors.ErrLLMMalformedResponse.WithDetails(err.Error())
	}

	for _, day := range doc.Days {
		if day.Day > g.days {
			return nil, domainerrors.ErrLLMMalformedResponse.WithDetails(fmt.Sprintf("day %d out of range", day.Day))
		}
	}

	return &doc, nil
}

// buildMeals maps the document onto entities, rewriting ingredient names to
// their catalog spelling and recomputing every macro from ingredients.
func (g *mealPlanGenerator) buildMeals(doc *mealPlanDocument, catalog *nutrition.Catalog) ([]*entity.Meal, []nutrition.Anomaly) {
	var (
		meals     []*entity.Meal
		anomalies []nutrition.Anomaly
	)

	for _, day := range doc.Days {
		for _, md := range day.Meals {
			mealType := entity.MealType(md.Type)
			meal := &entity.Meal{
				Week:     1,
				Day:      day.Day,
				Type:     mealType,
				Name:     strings.TrimSpace(md.Name),
				Position: mealTypeOrder[mealType],
			}

			for _, rd := range md.Recipes {
				recipe := &entity.Recipe{
					Name:         strings.TrimSpace(rd.Name),
					Instructions: strings.TrimSpace(rd.Instructions),
					PrepMinutes:  rd.PrepMinutes,
				}
				for _, ing := range rd.Ingredients {
					name := strings.TrimSpace(ing.Name)
					if food, ok := catalog.Lookup(name); ok {
						name = food.Name
					}
					recipe.Ingredients = append(recipe.Ingredients, entity.Ingredient{
						Name:   name,
						Amount: ing.Amount,
						Unit:   strings.ToLower(strings.TrimSpace(ing.Unit)),
					})
				}
				meal.Recipes = append(meal.Recipes, recipe)
			}

			anomalies = append(anomalies, nutrition.RecomputeMeal(catalog, meal)...)
			meals = append(meals, meal)
		}
	}

	return meals, anomalies
}

// targetInput merges non-zero overrides over the profile.
func targetInput(profile *entity.FitnessProfile, overrides entity.AssessmentData) nutrition.Input {
	in := nutrition.Input{
		Age:           profile.Age,
		Gender:        profile.Gender,
		HeightCm:      profile.HeightCm,
		WeightKg:      profile.WeightKg,
		FitnessGoal:   string(profile.FitnessGoal),
		ActivityLevel: string(profile.ActivityLevel),
	}

	if overrides.Age > 0 {
		in.Age = overrides.Age
	}
	if g := strings.TrimSpace(overrides.Gender); g != "" {
		in.Gender = strings.ToLower(g)
	}
	if overrides.Height > 0 {
		in.HeightCm = overrides.Height
	}
	if overrides.Weight > 0 {
		in.WeightKg = overrides.Weight
	}
	if overrides.FitnessGoal != "" {
		in.FitnessGoal = string(entity.ParseFitnessGoal(overrides.FitnessGoal))
	}
	if overrides.ActivityLevel != "" {
		in.ActivityLevel = string(entity.ParseActivityLevel(overrides.ActivityLevel))
	}

	return in
}
