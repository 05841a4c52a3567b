// Package shopping aggregates the ingredients of a week of meals into a
// single list, the input of the shopping list prompt.
package shopping

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
)

// WeekRecipe is a recipe as carried on the shopping list event. Ingredients
// is kept raw because clients send it either as an array or as serialized text.
type WeekRecipe struct {
	Name        string          `json:"name"`
	Ingredients json.RawMessage `json:"ingredients"`
}

// WeekMeal is one meal of the requested week.
type WeekMeal struct {
	Day     int          `json:"day"`
	Type    string       `json:"type,omitempty"`
	Name    string       `json:"name,omitempty"`
	Recipes []WeekRecipe `json:"recipes"`
}

// Item is one aggregated ingredient. Count is the number of recipes using it.
type Item struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Count  int    `json:"count"`
}

// Skipped reports a recipe whose ingredient list could not be parsed.
type Skipped struct {
	Recipe string
	Err    error
}

type unitFamily struct {
	base   string
	factor float64
}

//nolint:gochecknoglobals
var unitFamilies = map[string]unitFamily{
	"g":  {base: "g", factor: 1},
	"kg": {base: "g", factor: 1000},
	"ml": {base: "ml", factor: 1},
	"dl": {base: "ml", factor: 100},
	"l":  {base: "ml", factor: 1000},
}

type rawIngredient struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount"`
	Unit   string          `json:"unit"`
}

// ParseIngredients decodes an ingredient list sent as a JSON array or as a
// JSON string holding the array. Amounts may be numbers or numeric strings
// with a decimal comma; a non-numeric amount counts as zero.
func ParseIngredients(raw json.RawMessage) ([]entity.Ingredient, error) {
	data := []byte(strings.TrimSpace(string(raw)))
	if len(data) == 0 || string(data) == "null" {
		return nil, errors.New("ingredients missing")
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil, errors.Wrap(err, "ingredients string")
		}
		data = []byte(text)
	}

	var items []rawIngredient
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "ingredients array")
	}

	out := make([]entity.Ingredient, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, errors.New("ingredient without name")
		}
		out = append(out, entity.Ingredient{
			Name:   name,
			Amount: parseAmount(item.Amount),
			Unit:   strings.TrimSpace(item.Unit),
		})
	}

	return out, nil
}

func parseAmount(raw json.RawMessage) float64 {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}

	return value
}

// Aggregate sums ingredients across every recipe by trimmed, case-insensitive
// name and unit family. Mass is summed in grams, volume in millilitres, any
// other unit only with itself. The first seen spelling of a name is kept.
func Aggregate(meals []WeekMeal) ([]Item, []Skipped) {
	type entry struct {
		name    string
		unit    string
		amount  float64
		recipes int
	}

	var (
		order   []string
		entries = make(map[string]*entry)
		skipped []Skipped
	)

	for _, meal := range meals {
		for _, recipe := range meal.Recipes {
			ingredients, err := ParseIngredients(recipe.Ingredients)
			if err != nil {
				skipped = append(skipped, Skipped{Recipe: recipe.Name, Err: err})

				continue
			}

			seen := make(map[string]bool, len(ingredients))
			for _, ing := range ingredients {
				unit, amount := normalizeUnit(ing.Unit, ing.Amount)
				key := strings.ToLower(ing.Name) + "|" + unit

				e, ok := entries[key]
				if !ok {
					e = &entry{name: ing.Name, unit: unit}
					entries[key] = e
					order = append(order, key)
				}
				e.amount += amount
				if !seen[key] {
					seen[key] = true
					e.recipes++
				}
			}
		}
	}

	items := make([]Item, 0, len(order))
	for _, key := range order {
		e := entries[key]
		items = append(items, Item{
			Name:   e.name,
			Amount: FormatAmount(e.amount),
			Unit:   e.unit,
			Count:  e.recipes,
		})
	}

	return items, skipped
}

func normalizeUnit(unit string, amount float64) (string, float64) {
	lower := strings.ToLower(strings.TrimSpace(unit))
	if family, ok := unitFamilies[lower]; ok {
		return family.base, amount * family.factor
	}

	return lower, amount
}

// FormatAmount renders a quantity rounded to two decimals without trailing zeros.
func FormatAmount(value float64) string {
	if value == 0 {
		return ""
	}

	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
}

// FromMealPlan converts the meals of week into event payload meals. When no
// meal carries that week every meal of the plan is used. Recipes whose stored
// ingredients were unreadable are returned separately.
func FromMealPlan(plan *entity.MealPlan, week int) ([]WeekMeal, []string) {
	selected := make([]*entity.Meal, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		if meal.Week == week {
			selected = append(selected, meal)
		}
	}
	if len(selected) == 0 {
		selected = plan.Meals
	}

	var malformed []string
	meals := make([]WeekMeal, 0, len(selected))
	for _, meal := range selected {
		wm := WeekMeal{Day: meal.Day, Type: string(meal.Type), Name: meal.Name}
		for _, recipe := range meal.Recipes {
			if recipe.MalformedIngredients {
				malformed = append(malformed, recipe.Name)

				continue
			}
			raw, err := json.Marshal(recipe.Ingredients)
			if err != nil {
				malformed = append(malformed, recipe.Name)

				continue
			}
			wm.Recipes = append(wm.Recipes, WeekRecipe{Name: recipe.Name, Ingredients: raw})
		}
		meals = append(meals, wm)
	}

	return meals, malformed
}

// PromptText renders items one per line for the shopping list prompt.
func PromptText(items []Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item.Name)
		if item.Amount != "" {
			b.WriteString(": ")
			b.WriteString(item.Amount)
			if item.Unit != "" {
				b.WriteString(" ")
				b.WriteString(item.Unit)
			}
		}
		fmt.Fprintf(&b, " (receptů: %d)\n", item.Count)
	}

	return b.String()
}
