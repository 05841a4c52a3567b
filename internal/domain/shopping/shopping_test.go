package shopping

import (
	"encoding/json"
	"testing"

	"fitplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipe(name, ingredients string) WeekRecipe {
	return WeekRecipe{Name: name, Ingredients: json.RawMessage(ingredients)}
}

func TestAggregate_SumsAcrossRecipesWithoutMultiplying(t *testing.T) {
	meals := []WeekMeal{
		{Day: 1, Recipes: []WeekRecipe{recipe("Salát", `[{"name":"rajčata","amount":200,"unit":"g"}]`)}},
		{Day: 2, Recipes: []WeekRecipe{recipe("Omáčka", `[{"name":"Rajčata ","amount":150,"unit":"g"}]`)}},
	}

	items, skipped := Aggregate(meals)

	require.Empty(t, skipped)
	require.Len(t, items, 1)
	assert.Equal(t, Item{Name: "rajčata", Amount: "350", Unit: "g", Count: 2}, items[0])
}

func TestAggregate_UnitFamilies(t *testing.T) {
	meals := []WeekMeal{{Recipes: []WeekRecipe{
		recipe("A", `[{"name":"mouka","amount":0.5,"unit":"kg"},{"name":"mléko","amount":2,"unit":"dl"},{"name":"vejce","amount":2,"unit":"ks"}]`),
		recipe("B", `[{"name":"mouka","amount":"120,5","unit":"g"},{"name":"mléko","amount":0.25,"unit":"l"},{"name":"vejce","amount":1,"unit":"ks"}]`),
	}}}

	items, skipped := Aggregate(meals)

	require.Empty(t, skipped)
	require.Len(t, items, 3)
	assert.Equal(t, Item{Name: "mouka", Amount: "620.5", Unit: "g", Count: 2}, items[0])
	assert.Equal(t, Item{Name: "mléko", Amount: "450", Unit: "ml", Count: 2}, items[1])
	assert.Equal(t, Item{Name: "vejce", Amount: "3", Unit: "ks", Count: 2}, items[2])
}

func TestAggregate_CountsRecipeOnceForRepeatedIngredient(t *testing.T) {
	meals := []WeekMeal{{Recipes: []WeekRecipe{
		recipe("Polévka", `[{"name":"cibule","amount":50,"unit":"g"},{"name":"cibule","amount":30,"unit":"g"}]`),
	}}}

	items, _ := Aggregate(meals)

	require.Len(t, items, 1)
	assert.Equal(t, "80", items[0].Amount)
	assert.Equal(t, 1, items[0].Count)
}

func TestAggregate_SkipsMalformedRecipe(t *testing.T) {
	meals := []WeekMeal{{Recipes: []WeekRecipe{
		recipe("Rozbitý", `{"oops":true}`),
		recipe("Prázdný", `null`),
		recipe("Ok", `"[{\"name\":\"rýže\",\"amount\":100,\"unit\":\"g\"}]"`),
	}}}

	items, skipped := Aggregate(meals)

	require.Len(t, skipped, 2)
	assert.Equal(t, "Rozbitý", skipped[0].Recipe)
	assert.Equal(t, "Prázdný", skipped[1].Recipe)
	require.Len(t, items, 1)
	assert.Equal(t, "rýže", items[0].Name)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "350", FormatAmount(350))
	assert.Equal(t, "1.5", FormatAmount(1.5))
	assert.Equal(t, "0.33", FormatAmount(1.0/3))
	assert.Equal(t, "", FormatAmount(0))
}

func TestFromMealPlan_SelectsWeekAndFallsBack(t *testing.T) {
	plan := &entity.MealPlan{Meals: []*entity.Meal{
		{Week: 1, Day: 1, Recipes: []*entity.Recipe{{Name: "A", Ingredients: []entity.Ingredient{{Name: "rýže", Amount: 80, Unit: "g"}}}}},
		{Week: 2, Day: 1, Recipes: []*entity.Recipe{{Name: "B", MalformedIngredients: true}}},
	}}

	meals, malformed := FromMealPlan(plan, 1)
	require.Len(t, meals, 1)
	assert.Empty(t, malformed)
	items, _ := Aggregate(meals)
	assert.Equal(t, "80", items[0].Amount)

	meals, malformed = FromMealPlan(plan, 2)
	require.Len(t, meals, 1)
	assert.Equal(t, []string{"B"}, malformed)

	meals, _ = FromMealPlan(plan, 5)
	assert.Len(t, meals, 2)
}
