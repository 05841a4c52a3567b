package usecase

import (
	"context"

	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/shopping"

	"github.com/google/uuid"
)

// ShoppingListInput is the payload of the shopping-list.generate event.
type ShoppingListInput struct {
	WeekNumber int                 `json:"weekNumber"`
	WeekMeals  []shopping.WeekMeal `json:"weekMeals"`
	UserID     string              `json:"userId"`
}

type ShoppingListOutput struct {
	ProjectID uuid.UUID
	Content   string
}

// ShoppingListUsecase generates and retrieves weekly shopping lists.
type ShoppingListUsecase interface {
	// Generate runs the shopping list workflow.
	Generate(ctx context.Context, runKey string, input *ShoppingListInput) (*ShoppingListOutput, error)

	// RequestShoppingList builds the week's meals from the active meal plan and
	// publishes the generation event. It returns the event id.
	RequestShoppingList(ctx context.Context, userID string, weekNumber int) (string, error)

	// LatestShoppingList returns the most recent list generated for the week.
	LatestShoppingList(ctx context.Context, userID string, weekNumber int) (*entity.Project, error)
}
