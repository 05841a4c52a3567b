package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/domain/shopping"
	"fitplan/internal/mocks/memory"
	mockService "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shoppingListFixture struct {
	service   *shoppingListService
	store     *memory.Store
	llm       *mockService.MockLLMClient
	publisher *mockService.MockEventPublisher
}

func createTestShoppingListService(t *testing.T) *shoppingListFixture {
	t.Helper()

	store := memory.NewStore()
	llmClient := mockService.NewMockLLMClient(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewShoppingListService(ShoppingListServiceParams{
		Runner:    newTestRunner(store),
		TxManager: store,
		LLM:       llmClient,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*shoppingListService)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) }

	return &shoppingListFixture{service: svc, store: store, llm: llmClient, publisher: publisher}
}

func tomatoWeek() []shopping.WeekMeal {
	return []shopping.WeekMeal{
		{Day: 1, Type: "LUNCH", Recipes: []shopping.WeekRecipe{{
			Name:        "Salát",
			Ingredients: json.RawMessage(`[{"name":"Rajčata","amount":200,"unit":"g"},{"name":"olivový olej","amount":"10","unit":"ml"}]`),
		}}},
		{Day: 2, Type: "DINNER", Recipes: []shopping.WeekRecipe{
			{Name: "Omáčka", Ingredients: json.RawMessage(`"[{\"name\":\"rajčata \",\"amount\":\"150\",\"unit\":\"g\"}]"`)},
			{Name: "Rozbitý", Ingredients: json.RawMessage(`{"oops":true}`)},
		}},
	}
}

func TestShoppingList_Generate(t *testing.T) {
	f := createTestShoppingListService(t)

	var prompt string
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req service.CompletionRequest) {
			prompt = req.UserPrompt
		}).
		Return("  ## Zelenina\n- [ ] Rajčata 350 g\n", nil).Once()

	out, err := f.service.Generate(context.Background(), "evt-1", &usecase.ShoppingListInput{
		WeekNumber: 2,
		WeekMeals:  tomatoWeek(),
		UserID:     "user_1",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Rajčata: 350 g (receptů: 2)")
	assert.Contains(t, prompt, "- olivový olej: 10 ml (receptů: 1)")
	assert.False(t, json.Valid([]byte(out.Content)))
	assert.Equal(t, "## Zelenina\n- [ ] Rajčata 350 g", out.Content)

	require.Len(t, f.store.Projects, 1)
	project := f.store.Projects[0]
	assert.Equal(t, out.ProjectID, project.ID)
	assert.Equal(t, "Nákupní seznam – týden 2 – 2026-10-14", project.Name)
	assert.Equal(t, out.Content, project.Messages[0].Content)
}

func TestShoppingList_PersistRetryKeepsOneProject(t *testing.T) {
	f := createTestShoppingListService(t)
	ctx := context.Background()
	state := &shoppingListState{
		RunKey:  "evt-7",
		Input:   usecase.ShoppingListInput{WeekNumber: 1, UserID: "user_1"},
		Content: "- [ ] Rajčata 350 g",
	}

	// The first attempt committed but its checkpoint was lost.
	require.NoError(t, f.service.persist(ctx, state))
	first := state.ProjectID
	state.ProjectID = uuid.Nil

	require.NoError(t, f.service.persist(ctx, state))

	require.Len(t, f.store.Projects, 1)
	assert.Equal(t, first, state.ProjectID)
	assert.Equal(t, projectID("evt-7", "shopping-list"), first)
}

func TestShoppingList_ProjectIDsDifferPerRun(t *testing.T) {
	assert.NotEqual(t, projectID("evt-1", "shopping-list"), projectID("evt-2", "shopping-list"))
	assert.NotEqual(t, projectID("evt-1", "shopping-list"), projectID("evt-1", "plan-summary"))
}

func TestShoppingList_NothingToBuy(t *testing.T) {
	f := createTestShoppingListService(t)

	_, err := f.service.Generate(context.Background(), "evt-1", &usecase.ShoppingListInput{
		WeekNumber: 1,
		WeekMeals:  []shopping.WeekMeal{{Day: 1, Recipes: []shopping.WeekRecipe{{Name: "x", Ingredients: json.RawMessage(`null`)}}}},
		UserID:     "user_1",
	})

	require.Error(t, err)
	assert.False(t, domainerrors.IsRetryable(err))
	assert.Empty(t, f.store.Projects)
}

func TestShoppingList_LatestMatchesWeekExactly(t *testing.T) {
	f := createTestShoppingListService(t)
	ctx := context.Background()

	for _, week := range []int{1, 10} {
		require.NoError(t, f.store.NewProjectRepository().Create(ctx, &entity.Project{
			UserID: "user_1",
			Name:   shoppingListProjectName(week, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
		}))
	}

	project, err := f.service.LatestShoppingList(ctx, "user_1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Nákupní seznam – týden 1 – 2026-10-01", project.Name)

	_, err = f.service.LatestShoppingList(ctx, "user_1", 3)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestShoppingList_RequestPublishesWeekMeals(t *testing.T) {
	f := createTestShoppingListService(t)

	profile := seedProfile(f.store, "user_1", entity.AssessmentData{})
	planID := uuid.New()
	f.store.MealPlans[planID] = &entity.MealPlan{
		ID:        planID,
		ProfileID: profile.ID,
		IsActive:  true,
		Meals: []*entity.Meal{
			{Week: 1, Day: 1, Type: entity.MealLunch, Name: "Kuře", Recipes: []*entity.Recipe{
				{Name: "Kuře s rýží", Ingredients: []entity.Ingredient{{Name: "Kuřecí prsa", Amount: 150, Unit: "g"}}},
				{Name: "Poškozený", MalformedIngredients: true},
			}},
		},
	}

	var published *service.Event
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.Event) { published = event }).
		Return(nil).Once()

	eventID, err := f.service.RequestShoppingList(context.Background(), "user_1", 1)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, published.ID, eventID)
	assert.Equal(t, constants.EventShoppingListGenerate, published.Name)

	var input usecase.ShoppingListInput
	require.NoError(t, json.Unmarshal(published.Data, &input))
	assert.Equal(t, 1, input.WeekNumber)
	assert.Equal(t, "user_1", input.UserID)
	require.Len(t, input.WeekMeals, 1)
	require.Len(t, input.WeekMeals[0].Recipes, 1)
	assert.Equal(t, "Kuře s rýží", input.WeekMeals[0].Recipes[0].Name)
}

func TestShoppingList_RequestWithoutMealPlan(t *testing.T) {
	f := createTestShoppingListService(t)
	seedProfile(f.store, "user_1", entity.AssessmentData{})

	_, err := f.service.RequestShoppingList(context.Background(), "user_1", 1)

	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}
