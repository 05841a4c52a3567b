package nutrition

import (
	"strings"

	"fitplan/internal/domain/entity"
)

// gramsPerUnit converts supported units to grams. Liquids are counted 1 ml = 1 g.
var gramsPerUnit = map[string]float64{
	"":      1,
	"g":     1,
	"gram":  1,
	"gramy": 1,
	"ml":    1,
	"dl":    100,
	"kg":    1000,
	"l":     1000,
}

// IngredientGrams converts an ingredient amount to grams.
func IngredientGrams(ing entity.Ingredient) (float64, bool) {
	factor, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(ing.Unit))]
	if !ok {
		return 0, false
	}

	return ing.Amount * factor, true
}

// IngredientMacros looks the ingredient up in the catalog and scales the
// per 100 g values by its amount.
func IngredientMacros(c *Catalog, ing entity.Ingredient) (entity.Macros, *Anomaly) {
	food, ok := c.Lookup(ing.Name)
	if !ok {
		return entity.Macros{}, &Anomaly{Kind: AnomalyUnknownIngredient, Detail: ing.Name}
	}

	grams, ok := IngredientGrams(ing)
	if !ok {
		return entity.Macros{}, &Anomaly{Kind: AnomalyUnsupportedUnit, Detail: ing.Name + " [" + ing.Unit + "]"}
	}

	factor := grams / 100

	return entity.Macros{
		Calories: food.Calories * factor,
		Protein:  food.Protein * factor,
		Carbs:    food.Carbs * factor,
		Fat:      food.Fat * factor,
	}, nil
}

// RecomputeRecipe replaces the recipe macros with the sum of its ingredients.
func RecomputeRecipe(c *Catalog, recipe *entity.Recipe) []Anomaly {
	var (
		total     entity.Macros
		anomalies []Anomaly
	)

	for _, ing := range recipe.Ingredients {
		macros, anomaly := IngredientMacros(c, ing)
		if anomaly != nil {
			anomalies = append(anomalies, *anomaly)

			continue
		}
		total = total.Add(macros)
	}

	recipe.Macros = total

	return anomalies
}

// RecomputeMeal recomputes every recipe and sets the meal total to their sum.
func RecomputeMeal(c *Catalog, meal *entity.Meal) []Anomaly {
	var (
		total     entity.Macros
		anomalies []Anomaly
	)

	for _, recipe := range meal.Recipes {
		anomalies = append(anomalies, RecomputeRecipe(c, recipe)...)
		total = total.Add(recipe.Macros)
	}

	meal.Macros = total

	return anomalies
}

// DayTotals sums meal macros for one day.
func DayTotals(meals []*entity.Meal, day int) entity.Macros {
	var total entity.Macros
	for _, meal := range meals {
		if meal.Day == day {
			total = total.Add(meal.Macros)
		}
	}

	return total
}
