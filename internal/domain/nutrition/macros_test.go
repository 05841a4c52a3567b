package nutrition

import (
	"testing"

	"fitplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]*entity.NutritionFood{
		{Name: "Kuřecí prsa", Category: "maso", Calories: 110, Protein: 23, Carbs: 0, Fat: 1.5},
		{Name: "rýže basmati", Category: "přílohy", Calories: 350, Protein: 8, Carbs: 78, Fat: 0.6},
		{Name: "mléko polotučné", Category: "mléčné", Calories: 47, Protein: 3.4, Carbs: 4.8, Fat: 1.5},
		{Name: "řecký jogurt", Category: "mléčné", Calories: 97, Protein: 9, Carbs: 3.6, Fat: 5},
		{Name: "jablko", Category: "ovoce", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	})
}

func TestCatalog_LookupIsCaseAndSpaceInsensitive(t *testing.T) {
	c := testCatalog()

	food, ok := c.Lookup("  kuřecí   PRSA ")

	require.True(t, ok)
	assert.Equal(t, "Kuřecí prsa", food.Name)
	assert.Equal(t, 5, c.Len())
}

func TestCatalog_PromptTextListsEveryFood(t *testing.T) {
	text := testCatalog().PromptText()

	for _, name := range []string{"Kuřecí prsa", "rýže basmati", "mléko polotučné", "řecký jogurt", "jablko"} {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "## maso")
}

func TestRecomputeMeal_SumsIngredients(t *testing.T) {
	c := testCatalog()
	meal := &entity.Meal{
		Macros: entity.Macros{Calories: 9999},
		Recipes: []*entity.Recipe{
			{Ingredients: []entity.Ingredient{
				{Name: "kuřecí prsa", Amount: 150, Unit: "g"},
				{Name: "rýže basmati", Amount: 0.08, Unit: "kg"},
			}},
			{Ingredients: []entity.Ingredient{
				{Name: "mléko polotučné", Amount: 2, Unit: "dl"},
			}},
		},
	}

	anomalies := RecomputeMeal(c, meal)

	require.Empty(t, anomalies)
	assert.InDelta(t, 165+280, meal.Recipes[0].Macros.Calories, 1e-6)
	assert.InDelta(t, 94, meal.Recipes[1].Macros.Calories, 1e-6)
	assert.InDelta(t, 165+280+94, meal.Macros.Calories, 0.1)
	assert.InDelta(t, 34.5+6.4+6.8, meal.Macros.Protein, 0.1)
}

func TestRecomputeMeal_RoundTripWithinTolerance(t *testing.T) {
	c := testCatalog()
	ingredients := []entity.Ingredient{
		{Name: "jablko", Amount: 137, Unit: "g"},
		{Name: "řecký jogurt", Amount: 0.173, Unit: "kg"},
		{Name: "mléko polotučné", Amount: 333, Unit: "ml"},
	}
	meal := &entity.Meal{Recipes: []*entity.Recipe{
		{Ingredients: ingredients[:2]},
		{Ingredients: ingredients[2:]},
	}}

	RecomputeMeal(c, meal)

	var want entity.Macros
	for _, ing := range ingredients {
		food, ok := c.Lookup(ing.Name)
		require.True(t, ok)
		grams, ok := IngredientGrams(ing)
		require.True(t, ok)
		want.Calories += grams / 100 * food.Calories
		want.Protein += grams / 100 * food.Protein
		want.Carbs += grams / 100 * food.Carbs
		want.Fat += grams / 100 * food.Fat
	}

	assert.InDelta(t, want.Calories, meal.Macros.Calories, 0.1)
	assert.InDelta(t, want.Protein, meal.Macros.Protein, 0.1)
	assert.InDelta(t, want.Carbs, meal.Macros.Carbs, 0.1)
	assert.InDelta(t, want.Fat, meal.Macros.Fat, 0.1)
}

func TestRecomputeRecipe_UnknownNamesAndUnitsContributeZero(t *testing.T) {
	recipe := &entity.Recipe{Ingredients: []entity.Ingredient{
		{Name: "dračí ovoce", Amount: 100, Unit: "g"},
		{Name: "jablko", Amount: 2, Unit: "ks"},
		{Name: "jablko", Amount: 100, Unit: "g"},
	}}

	anomalies := RecomputeRecipe(testCatalog(), recipe)

	require.Len(t, anomalies, 2)
	assert.Equal(t, AnomalyUnknownIngredient, anomalies[0].Kind)
	assert.Equal(t, AnomalyUnsupportedUnit, anomalies[1].Kind)
	assert.InDelta(t, 52, recipe.Macros.Calories, 1e-9)
}

func TestDayTotals(t *testing.T) {
	meals := []*entity.Meal{
		{Day: 1, Macros: entity.Macros{Calories: 500}},
		{Day: 1, Macros: entity.Macros{Calories: 700}},
		{Day: 2, Macros: entity.Macros{Calories: 900}},
	}

	assert.InDelta(t, 1200, DayTotals(meals, 1).Calories, 1e-9)
	assert.InDelta(t, 900, DayTotals(meals, 2).Calories, 1e-9)
	assert.Zero(t, DayTotals(meals, 3).Calories)
}
