package nutrition

import (
	"math"

	"fitplan/internal/domain/entity"
)

const (
	snackMinGrams = 30
	snackMaxGrams = 250
	snackStep     = 5

	// SnackMealName is the display name of deterministic snack meals.
	SnackMealName = "Svačina"
)

// DefaultSnackFoods are tried in order, rotating by day.
var DefaultSnackFoods = []string{
	"řecký jogurt",
	"jablko",
	"mandle",
	"banán",
	"tvaroh polotučný",
	"ořechy vlašské",
	"hruška",
}

// SnackPlanner tops up days whose meals fall short of the calorie target.
type SnackPlanner struct {
	Catalog      *Catalog
	Foods        []string
	GapThreshold float64
}

// AddSnacks appends at most one snack per day. The food rotates with the
// day number, the amount closes the gap and is clamped to 30-250 g in 5 g steps.
func (p SnackPlanner) AddSnacks(meals []*entity.Meal, week, days, targetCalories int) ([]*entity.Meal, []Anomaly) {
	candidates := p.snackFoods()
	if len(candidates) == 0 {
		return meals, []Anomaly{{Kind: AnomalyNoSnackFoods, Detail: "no snack food found in catalog"}}
	}

	for day := 1; day <= days; day++ {
		gap := float64(targetCalories) - DayTotals(meals, day).Calories
		if gap <= p.GapThreshold {
			continue
		}

		food := candidates[(day-1)%len(candidates)]
		grams := gap / (food.Calories / 100)
		grams = math.Round(grams/snackStep) * snackStep
		grams = math.Max(snackMinGrams, math.Min(snackMaxGrams, grams))

		snack := &entity.Meal{
			Week:     week,
			Day:      day,
			Type:     entity.MealSnack,
			Name:     SnackMealName,
			Position: lastPosition(meals, day) + 1,
			Recipes: []*entity.Recipe{{
				Name:        food.Name,
				Ingredients: []entity.Ingredient{{Name: food.Name, Amount: grams, Unit: "g"}},
			}},
		}
		RecomputeMeal(p.Catalog, snack)
		meals = append(meals, snack)
	}

	return meals, nil
}

func (p SnackPlanner) snackFoods() []*entity.NutritionFood {
	names := p.Foods
	if len(names) == 0 {
		names = DefaultSnackFoods
	}

	foods := make([]*entity.NutritionFood, 0, len(names))
	for _, name := range names {
		if food, ok := p.Catalog.Lookup(name); ok && food.Calories > 0 {
			foods = append(foods, food)
		}
	}

	return foods
}

func lastPosition(meals []*entity.Meal, day int) int {
	last := 0
	for _, meal := range meals {
		if meal.Day == day && meal.Position > last {
			last = meal.Position
		}
	}

	return last
}
