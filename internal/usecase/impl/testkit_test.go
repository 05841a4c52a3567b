package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/entity"
	"fitplan/internal/mocks/memory"
	"fitplan/internal/workflow"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(store *memory.Store) *workflow.Runner {
	return workflow.NewRunner(store.WorkflowRuns(), newDiscardLogger(),
		workflow.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
}

// newTestConfig keeps generated meal plans to a single day.
func newTestConfig() *config.Config {
	return &config.Config{
		MealPlan: &config.MealPlanConfig{Days: 1, SnackGapKcal: 150},
	}
}

func seedCatalog(store *memory.Store) {
	store.Foods = []*entity.NutritionFood{
		{ID: uuid.New(), Name: "Ovesné vločky", Category: "obiloviny", Calories: 372, Protein: 13, Carbs: 59, Fat: 7},
		{ID: uuid.New(), Name: "Kuřecí prsa", Category: "maso", Calories: 110, Protein: 23, Carbs: 0, Fat: 1.5},
		{ID: uuid.New(), Name: "Rýže basmati", Category: "obiloviny", Calories: 350, Protein: 7, Carbs: 77, Fat: 0.6},
		{ID: uuid.New(), Name: "Brokolice", Category: "zelenina", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
		{ID: uuid.New(), Name: "Vejce", Category: "vejce", Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5},
		{ID: uuid.New(), Name: "Řecký jogurt", Category: "mléčné", Calories: 97, Protein: 9, Carbs: 4, Fat: 5},
	}
}

func seedProfile(store *memory.Store, userID string, assessment entity.AssessmentData) *entity.FitnessProfile {
	profile := entity.NewFitnessProfile(userID, assessment)
	profile.ID = uuid.New()
	store.Users[userID] = &entity.User{ID: userID, Email: userID + "@example.com", Name: "Test"}
	store.Profiles[profile.ID] = profile

	return profile
}

// oneDayMealPlanReply is a valid meal plan document for one day, wrapped in
// a markdown fence the way models often answer.
const oneDayMealPlanReply = "```json\n" + `{
  "days": [{
    "day": 1,
    "meals": [
      {"type": "breakfast", "name": "Ovesná kaše", "recipes": [{
        "name": "Kaše s jogurtem", "instructions": "Vločky uvař ve vodě.", "prepMinutes": 10,
        "ingredients": [{"name": "ovesné vločky", "amount": 80, "unit": "g"}, {"name": "řecký jogurt", "amount": 150, "unit": "g"}]
      }]},
      {"type": "LUNCH", "name": "Kuře s rýží", "recipes": [{
        "name": "Kuře s rýží a brokolicí", "prepMinutes": 25,
        "ingredients": [{"name": "Kuřecí prsa", "amount": 150, "unit": "g"}, {"name": "Rýže basmati", "amount": 70, "unit": "g"}, {"name": "Brokolice", "amount": 200, "unit": "g"}]
      }]},
      {"type": "DINNER", "name": "Omeleta", "recipes": [{
        "name": "Omeleta", "prepMinutes": 10,
        "ingredients": [{"name": "Vejce", "amount": 120, "unit": "g"}]
      }]}
    ]
  }]
}` + "\n```"

const narrativeReply = `{"description": "Osm týdnů postupného hubnutí.", "body": "Týden po týdnu zvyšujeme objem."}`
