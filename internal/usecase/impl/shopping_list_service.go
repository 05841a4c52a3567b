package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/domain/shopping"
	"fitplan/internal/usecase"
	"fitplan/internal/workflow"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Shopping list steps
const (
	stepAggregate    = "aggregate"
	stepGenerateList = "generate-list"
	stepPersist      = "persist"
)

const (
	shoppingListTemperature = 0.3
	shoppingListPrefix      = "Nákupní seznam – "
)

func shoppingListMarker(week int) string {
	return fmt.Sprintf("týden %d", week)
}

func shoppingListProjectName(week int, day time.Time) string {
	return shoppingListPrefix + shoppingListMarker(week) + " – " + day.Format(time.DateOnly)
}

type shoppingListState struct {
	RunKey    string                    `json:"runKey"`
	Input     usecase.ShoppingListInput `json:"input"`
	Items     []shopping.Item           `json:"items"`
	Content   string                    `json:"content"`
	ProjectID uuid.UUID                 `json:"projectId"`
}

type shoppingListService struct {
	runner    *workflow.Runner
	txManager repository.TransactionManager
	llm       service.LLMClient
	publisher service.EventPublisher
	policies  stepPolicies
	maxTokens int
	now       func() time.Time
	logger    *slog.Logger
}

// ShoppingListServiceParams holds dependencies for ShoppingListService, injected by Fx.
type ShoppingListServiceParams struct {
	fx.In

	Runner    *workflow.Runner
	TxManager repository.TransactionManager
	LLM       service.LLMClient
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShoppingListService is the constructor for shoppingListService.
func NewShoppingListService(params ShoppingListServiceParams) usecase.ShoppingListUsecase {
	maxTokens := 0
	if params.Config != nil && params.Config.LLM != nil {
		maxTokens = params.Config.LLM.MaxTokens
	}

	return &shoppingListService{
		runner:    params.Runner,
		txManager: params.TxManager,
		llm:       params.LLM,
		publisher: params.Publisher,
		policies:  newStepPolicies(params.Config),
		maxTokens: maxTokens,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *shoppingListService) definition() workflow.Definition[shoppingListState] {
	p := srv.policies

	return workflow.Definition[shoppingListState]{
		Name: constants.WorkflowShoppingList,
		Steps: []workflow.Step[shoppingListState]{
			dbStep(p, stepAggregate, srv.aggregate),
			llmStep(p, stepGenerateList, srv.generateList),
			dbStep(p, stepPersist, srv.persist),
		},
	}
}

// Generate runs the shopping list workflow for runKey.
func (srv *shoppingListService) Generate(ctx context.Context, runKey string, input *usecase.ShoppingListInput) (*usecase.ShoppingListOutput, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.NewValidationError("userId", "is required")
	}
	if input.WeekNumber < 1 {
		return nil, domainerrors.NewValidationError("weekNumber", "must be positive")
	}

	state, err := workflow.Execute(ctx, srv.runner, srv.definition(), runKey, shoppingListState{RunKey: runKey, Input: *input})
	if err != nil {
		return nil, errors.Wrap(err, "shopping list generation failed")
	}

	return &usecase.ShoppingListOutput{ProjectID: state.ProjectID, Content: state.Content}, nil
}

func (srv *shoppingListService) aggregate(ctx context.Context, state *shoppingListState) error {
	logger := requestLogger(ctx, srv.logger)

	items, skipped := shopping.Aggregate(state.Input.WeekMeals)
	for _, s := range skipped {
		logger.WarnContext(ctx, "Skipping recipe with unreadable ingredients",
			slog.String("recipe", s.Recipe),
			slog.Any("error", s.Err),
		)
	}
	if len(items) == 0 {
		return domainerrors.NewValidationError("weekMeals", "contain no ingredients")
	}

	state.Items = items
	logger.Info("Ingredients aggregated",
		slog.Int("week", state.Input.WeekNumber),
		slog.Int("items", len(items)),
		slog.Int("skipped_recipes", len(skipped)),
	)

	return nil
}

func (srv *shoppingListService) generateList(ctx context.Context, state *shoppingListState) error {
	reply, err := srv.llm.Complete(ctx, service.CompletionRequest{
		SystemPrompt: shoppingListSystemPrompt,
		UserPrompt:   buildShoppingListPrompt(state.Input.WeekNumber, shopping.PromptText(state.Items)),
		Temperature:  shoppingListTemperature,
		MaxTokens:    srv.maxTokens,
	})
	if err != nil {
		return err
	}

	content := strings.TrimSpace(reply)
	if content == "" {
		return domainerrors.ErrLLMMalformedResponse.WithDetails("empty shopping list")
	}
	state.Content = content

	return nil
}

func (srv *shoppingListService) persist(ctx context.Context, state *shoppingListState) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		project := &entity.Project{
			ID:     projectID(state.RunKey, "shopping-list"),
			UserID: state.Input.UserID,
			Name:   shoppingListProjectName(state.Input.WeekNumber, srv.now()),
			Messages: []*entity.Message{{
				Role:    entity.RoleAssistant,
				Content: state.Content,
			}},
		}
		if err := createProject(ctx, repoFactory.NewProjectRepository(), project); err != nil {
			return errors.Wrap(err, "failed to store shopping list")
		}
		state.ProjectID = project.ID

		return nil
	})
}

// RequestShoppingList publishes a shopping-list.generate event built from the active meal plan.
func (srv *shoppingListService) RequestShoppingList(ctx context.Context, userID string, weekNumber int) (string, error) {
	if weekNumber < 1 {
		return "", domainerrors.NewValidationError("weekNumber", "must be positive")
	}

	var mealPlan *entity.MealPlan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		mealPlan, err = repoFactory.NewMealPlanRepository().FindActiveByProfile(ctx, profile.ID)

		return err
	})
	if err != nil {
		return "", err
	}

	meals, malformed := shopping.FromMealPlan(mealPlan, weekNumber)
	if len(malformed) > 0 {
		requestLogger(ctx, srv.logger).WarnContext(ctx, "Meal plan has recipes with unreadable ingredients",
			slog.String("meal_plan_id", mealPlan.ID.String()),
			slog.Any("recipes", malformed),
		)
	}

	event, err := service.NewEvent(constants.EventShoppingListGenerate, usecase.ShoppingListInput{
		WeekNumber: weekNumber,
		WeekMeals:  meals,
		UserID:     userID,
	}, deliverycontext.GetRequestIDFromContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "failed to build shopping list event")
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		return "", errors.Wrap(err, "failed to publish shopping list event")
	}

	return event.ID, nil
}

// LatestShoppingList returns the newest shopping list project for weekNumber.
func (srv *shoppingListService) LatestShoppingList(ctx context.Context, userID string, weekNumber int) (*entity.Project, error) {
	var project *entity.Project
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		project, err = repoFactory.NewProjectRepository().FindLatestByNameContains(ctx, userID, shoppingListPrefix+shoppingListMarker(weekNumber)+" ")

		return err
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}
