package nutrition

import (
	"testing"

	"fitplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnackPlanner_FillsOnlyDaysWithGap(t *testing.T) {
	meals := []*entity.Meal{
		{Day: 1, Position: 3, Macros: entity.Macros{Calories: 1800}},
		{Day: 2, Position: 3, Macros: entity.Macros{Calories: 1950}},
	}
	planner := SnackPlanner{Catalog: testCatalog(), GapThreshold: 150}

	out, anomalies := planner.AddSnacks(meals, 1, 2, 2000)

	require.Empty(t, anomalies)
	require.Len(t, out, 3)

	snack := out[2]
	assert.Equal(t, 1, snack.Day)
	assert.Equal(t, entity.MealSnack, snack.Type)
	assert.Equal(t, 4, snack.Position)
	require.Len(t, snack.Recipes, 1)
	// First rotation entry present in the catalog: řecký jogurt, 200 kcal gap at 97 kcal/100 g.
	assert.Equal(t, "řecký jogurt", snack.Recipes[0].Ingredients[0].Name)
	assert.InDelta(t, 205, snack.Recipes[0].Ingredients[0].Amount, 1e-9)
	assert.InDelta(t, 198.85, snack.Macros.Calories, 0.1)
}

func TestSnackPlanner_ClampsAmount(t *testing.T) {
	meals := []*entity.Meal{{Day: 1, Macros: entity.Macros{Calories: 0}}}
	planner := SnackPlanner{Catalog: testCatalog(), Foods: []string{"jablko"}, GapThreshold: 150}

	out, _ := planner.AddSnacks(meals, 1, 1, 3000)

	require.Len(t, out, 2)
	assert.InDelta(t, snackMaxGrams, out[1].Recipes[0].Ingredients[0].Amount, 1e-9)
}

func TestSnackPlanner_NoSnackFoodsInCatalog(t *testing.T) {
	planner := SnackPlanner{Catalog: NewCatalog(nil), GapThreshold: 150}

	out, anomalies := planner.AddSnacks(nil, 1, 7, 2000)

	assert.Empty(t, out)
	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyNoSnackFoods, anomalies[0].Kind)
}
