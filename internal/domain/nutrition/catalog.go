package nutrition

import (
	"fmt"
	"sort"
	"strings"

	"fitplan/internal/domain/entity"
)

// Catalog indexes reference foods by normalised name.
type Catalog struct {
	foods  []*entity.NutritionFood
	byName map[string]*entity.NutritionFood
}

// NewCatalog builds a catalog. Later duplicates of a name are ignored.
func NewCatalog(foods []*entity.NutritionFood) *Catalog {
	c := &Catalog{
		foods:  make([]*entity.NutritionFood, 0, len(foods)),
		byName: make(map[string]*entity.NutritionFood, len(foods)),
	}

	for _, food := range foods {
		if food == nil {
			continue
		}
		key := NormalizeName(food.Name)
		if _, exists := c.byName[key]; exists {
			continue
		}
		c.byName[key] = food
		c.foods = append(c.foods, food)
	}

	return c
}

// Lookup finds a food by case and whitespace insensitive name.
func (c *Catalog) Lookup(name string) (*entity.NutritionFood, bool) {
	food, ok := c.byName[NormalizeName(name)]

	return food, ok
}

// Len returns the number of foods.
func (c *Catalog) Len() int {
	return len(c.foods)
}

// PromptText renders the whole catalog, grouped by category, one food per line.
func (c *Catalog) PromptText() string {
	byCategory := make(map[string][]*entity.NutritionFood)
	categories := make([]string, 0)
	for _, food := range c.foods {
		category := food.Category
		if category == "" {
			category = "ostatní"
		}
		if _, ok := byCategory[category]; !ok {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], food)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&b, "## %s\n", category)
		for _, food := range byCategory[category] {
			fmt.Fprintf(&b, "- %s: %.0f kcal, B %.1f g, S %.1f g, T %.1f g / 100 g\n",
				food.Name, food.Calories, food.Protein, food.Carbs, food.Fat)
		}
	}

	return b.String()
}

// NormalizeName lowercases and collapses inner whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
