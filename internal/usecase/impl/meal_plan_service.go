package impl

import (
	"context"
	"log/slog"
	"strings"

	"fitplan/config"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"
	"fitplan/internal/workflow"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Meal plan regeneration steps
const (
	stepLoadProfile      = "load-profile"
	stepActivateMealPlan = "activate-meal-plan"
)

const mealPlanProjectName = "Jídelníček"

type mealPlanState struct {
	RunKey           string                             `json:"runKey"`
	Input            usecase.MealPlanRegenerationInput `json:"input"`
	ProfileID        uuid.UUID                          `json:"profileId"`
	WorkoutPlanID    *uuid.UUID                         `json:"workoutPlanId,omitempty"`
	MealPlanID       uuid.UUID                          `json:"mealPlanId"`
	SummaryProjectID *uuid.UUID                         `json:"summaryProjectId,omitempty"`
}

type mealPlanService struct {
	runner    *workflow.Runner
	txManager repository.TransactionManager
	generator *mealPlanGenerator
	activator *planActivator
	policies  stepPolicies
	logger    *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	Runner    *workflow.Runner
	TxManager repository.TransactionManager
	Foods     repository.NutritionFoodRepository
	LLM       service.LLMClient
	Locker    service.ProfileLocker
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		runner:    params.Runner,
		txManager: params.TxManager,
		generator: newMealPlanGenerator(params.LLM, params.Foods, params.TxManager, params.Config, params.Logger),
		activator: &planActivator{txManager: params.TxManager, locker: params.Locker, logger: params.Logger},
		policies:  newStepPolicies(params.Config),
		logger:    params.Logger,
	}
}

func (srv *mealPlanService) definition() workflow.Definition[mealPlanState] {
	p := srv.policies

	return workflow.Definition[mealPlanState]{
		Name: constants.WorkflowMealPlan,
		Steps: []workflow.Step[mealPlanState]{
			dbStep(p, stepLoadProfile, srv.loadProfile),
			llmStep(p, stepGenerateMealPlan, srv.generateMealPlan),
			dbStep(p, stepActivateMealPlan, srv.activateMealPlan),
			optional(dbStep(p, stepCreateSummary, srv.createSummary)),
		},
	}
}

// Regenerate runs the meal plan regeneration workflow for runKey.
func (srv *mealPlanService) Regenerate(ctx context.Context, runKey string, input *usecase.MealPlanRegenerationInput) (*usecase.MealPlanRegenerationOutput, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.NewValidationError("userId", "is required")
	}

	state, err := workflow.Execute(ctx, srv.runner, srv.definition(), runKey, mealPlanState{RunKey: runKey, Input: *input})
	if err != nil {
		return nil, errors.Wrap(err, "meal plan regeneration failed")
	}

	return &usecase.MealPlanRegenerationOutput{MealPlanID: state.MealPlanID}, nil
}

func (srv *mealPlanService) loadProfile(ctx context.Context, state *mealPlanState) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, state.Input.UserID)
		if err != nil {
			return err
		}

		state.ProfileID = profile.ID
		state.WorkoutPlanID = profile.CurrentPlanID

		return nil
	})
}

func (srv *mealPlanService) generateMealPlan(ctx context.Context, state *mealPlanState) error {
	var profile *entity.FitnessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.NewFitnessProfileRepository().FindByID(ctx, state.ProfileID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to load fitness profile")
	}

	mealPlan, err := srv.generator.Generate(ctx, mealPlanRequest{
		RunKey:        state.RunKey,
		Profile:       profile,
		Overrides:     state.Input.AssessmentData,
		WorkoutPlanID: state.WorkoutPlanID,
	})
	if err != nil {
		return err
	}

	state.MealPlanID = mealPlan.ID

	return nil
}

func (srv *mealPlanService) activateMealPlan(ctx context.Context, state *mealPlanState) error {
	if err := srv.activator.ActivateMealPlan(ctx, state.ProfileID, state.MealPlanID); err != nil {
		return err
	}

	requestLogger(ctx, srv.logger).Info("Meal plan activated",
		slog.String("profile_id", state.ProfileID.String()),
		slog.String("meal_plan_id", state.MealPlanID.String()),
	)

	return nil
}

func (srv *mealPlanService) createSummary(ctx context.Context, state *mealPlanState) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlan, err := repoFactory.NewMealPlanRepository().FindByID(ctx, state.MealPlanID)
		if err != nil {
			return err
		}

		project := &entity.Project{
			UserID: state.Input.UserID,
			Name:   mealPlanProjectName,
			Messages: []*entity.Message{{
				Role:    entity.RoleAssistant,
				Content: buildMealPlanSummary(mealPlan),
			}},
		}
		if err := repoFactory.NewProjectRepository().Create(ctx, project); err != nil {
			return errors.Wrap(err, "failed to create summary project")
		}
		state.SummaryProjectID = &project.ID

		return nil
	})
}
