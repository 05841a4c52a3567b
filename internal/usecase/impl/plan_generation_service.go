package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/domain/training"
	"fitplan/internal/infra/llm"
	"fitplan/internal/usecase"
	"fitplan/internal/workflow"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Plan generation steps, in execution order.
const (
	stepEnsureUser        = "ensure-user"
	stepEnsureProfile     = "ensure-profile"
	stepEnsurePlan        = "ensure-plan"
	stepGenerateNarrative = "generate-narrative"
	stepGenerateWorkouts  = "generate-workouts"
	stepGenerateMealPlan  = "generate-meal-plan"
	stepActivatePlan      = "activate-plan"
	stepCreateSummary     = "create-summary"
)

const summaryProjectPrefix = "Fitness plán – "

const defaultVideoBudget = time.Minute

//nolint:gochecknoglobals
var workoutPlanNamespace = uuid.MustParse("9b4f3a52-61d4-4c39-a7f0-0d2a5c8e7b13")

// generationSteps are the steps whose exhaustion marks the plan FAILED.
//
//nolint:gochecknoglobals
var generationSteps = map[string]bool{
	stepGenerateNarrative: true,
	stepGenerateWorkouts:  true,
	stepGenerateMealPlan:  true,
}

// planGenerationState is checkpointed after every step.
type planGenerationState struct {
	RunKey              string                      `json:"runKey"`
	Input               usecase.PlanGenerationInput `json:"input"`
	ProfileID           uuid.UUID                   `json:"profileId"`
	MealPlanningEnabled bool                        `json:"mealPlanningEnabled"`
	PlanID              uuid.UUID                   `json:"planId"`
	PlanName            string                      `json:"planName"`
	Workouts            int                         `json:"workouts"`
	MealPlanID          *uuid.UUID                  `json:"mealPlanId,omitempty"`
	SummaryProjectID    *uuid.UUID                  `json:"summaryProjectId,omitempty"`
}

type narrativeDocument struct {
	Description string `json:"description" validate:"required"`
	Body        string `json:"body" validate:"required"`
}

type planGenerationService struct {
	runner      *workflow.Runner
	txManager   repository.TransactionManager
	llm         service.LLMClient
	videos      service.VideoResolver
	mealPlans   *mealPlanGenerator
	activator   *planActivator
	policies    stepPolicies
	temperature float32
	videoBudget time.Duration
	logger      *slog.Logger
}

// PlanGenerationServiceParams holds dependencies for PlanGenerationService, injected by Fx.
type PlanGenerationServiceParams struct {
	fx.In

	Runner    *workflow.Runner
	TxManager repository.TransactionManager
	Foods     repository.NutritionFoodRepository
	LLM       service.LLMClient
	Videos    service.VideoResolver
	Locker    service.ProfileLocker
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlanGenerationService is the constructor for planGenerationService.
func NewPlanGenerationService(params PlanGenerationServiceParams) usecase.PlanGenerationUsecase {
	temperature := float32(0.7)
	if params.Config != nil && params.Config.LLM != nil && params.Config.LLM.Temperature > 0 {
		temperature = params.Config.LLM.Temperature
	}
	videoBudget := defaultVideoBudget
	if params.Config != nil && params.Config.Video != nil && params.Config.Video.BatchTimeout > 0 {
		videoBudget = params.Config.Video.BatchTimeout
	}

	return &planGenerationService{
		runner:      params.Runner,
		txManager:   params.TxManager,
		llm:         params.LLM,
		videos:      params.Videos,
		mealPlans:   newMealPlanGenerator(params.LLM, params.Foods, params.TxManager, params.Config, params.Logger),
		activator:   &planActivator{txManager: params.TxManager, locker: params.Locker, logger: params.Logger},
		policies:    newStepPolicies(params.Config),
		temperature: temperature,
		videoBudget: videoBudget,
		logger:      params.Logger,
	}
}

func (srv *planGenerationService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *planGenerationService) definition() workflow.Definition[planGenerationState] {
	p := srv.policies

	return workflow.Definition[planGenerationState]{
		Name: constants.WorkflowPlanGeneration,
		Steps: []workflow.Step[planGenerationState]{
			dbStep(p, stepEnsureUser, srv.ensureUser),
			dbStep(p, stepEnsureProfile, srv.ensureProfile),
			dbStep(p, stepEnsurePlan, srv.ensurePlan),
			llmStep(p, stepGenerateNarrative, srv.generateNarrative),
			llmStep(p, stepGenerateWorkouts, srv.generateWorkouts),
			llmStep(p, stepGenerateMealPlan, srv.generateMealPlan),
			dbStep(p, stepActivatePlan, srv.activatePlan),
			optional(dbStep(p, stepCreateSummary, srv.createSummary)),
		},
	}
}

// Generate runs the plan generation workflow for runKey.
func (srv *planGenerationService) Generate(ctx context.Context, runKey string, input *usecase.PlanGenerationInput) (*usecase.PlanGenerationOutput, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.NewValidationError("userId", "is required")
	}

	srv.log(ctx).Info("Starting plan generation",
		slog.String("run_key", runKey),
		slog.String("user_id", input.UserID),
		slog.String("workout_plan_id", input.WorkoutPlanID),
		slog.String("payment_id", input.PaymentID),
		slog.Bool("payment_completed", input.PaymentCompleted),
	)

	state, err := workflow.Execute(ctx, srv.runner, srv.definition(), runKey, planGenerationState{RunKey: runKey, Input: *input})
	if err != nil {
		srv.markFailed(ctx, state, err)

		return nil, errors.Wrap(err, "plan generation failed")
	}

	return &usecase.PlanGenerationOutput{
		ProfileID:     state.ProfileID,
		WorkoutPlanID: state.PlanID,
		MealPlanID:    state.MealPlanID,
		Workouts:      state.Workouts,
	}, nil
}

// markFailed flags the plan FAILED when a generation step ran out of attempts.
// Earlier writes are kept; the plan is never activated.
func (srv *planGenerationService) markFailed(ctx context.Context, state *planGenerationState, err error) {
	var stepErr *workflow.StepError
	if !errors.As(err, &stepErr) || !generationSteps[stepErr.Step] || state == nil || state.PlanID == uuid.Nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	updateErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewWorkoutPlanRepository().UpdateStatus(ctx, state.PlanID, entity.PlanStatusFailed)
	})
	if updateErr != nil {
		srv.log(ctx).Error("Failed to mark workout plan as failed",
			slog.String("plan_id", state.PlanID.String()),
			slog.Any("error", updateErr),
		)

		return
	}

	srv.log(ctx).Error("Workout plan generation failed",
		slog.String("plan_id", state.PlanID.String()),
		slog.String("step", stepErr.Step),
		slog.Int("attempts", stepErr.Attempts),
		slog.Any("error", stepErr.Err),
	)
}

func (srv *planGenerationService) ensureUser(ctx context.Context, state *planGenerationState) error {
	user := &entity.User{
		ID:    state.Input.UserID,
		Email: state.Input.Email,
		Name:  strings.TrimSpace(state.Input.AssessmentData.Name),
	}
	if user.Name == "" {
		user.Name = entity.DefaultUserName
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		created, err := repoFactory.NewUserRepository().Upsert(ctx, user)
		if err != nil {
			return errors.Wrap(err, "failed to upsert user")
		}
		if created {
			srv.log(ctx).Info("User created by plan generation", slog.String("user_id", user.ID))
		}

		return nil
	})
}

func (srv *planGenerationService) ensureProfile(ctx context.Context, state *planGenerationState) error {
	profile, err := srv.getOrCreateProfile(ctx, state.Input.UserID, state.Input.AssessmentData)
	if err != nil {
		return err
	}

	state.ProfileID = profile.ID
	state.MealPlanningEnabled = profile.MealPlanningEnabled

	return nil
}

// getOrCreateProfile returns the existing profile unchanged or creates one from
// the assessment. A concurrent create is resolved by reading the winner.
func (srv *planGenerationService) getOrCreateProfile(ctx context.Context, userID string, assessment entity.AssessmentData) (*entity.FitnessProfile, error) {
	var profile *entity.FitnessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewFitnessProfileRepository()

		existing, err := profileRepo.FindByUserID(ctx, userID)
		if err == nil {
			profile = existing

			return nil
		}
		if !errors.Is(err, domainerrors.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find fitness profile")
		}

		// First plan of this user
		created := entity.NewFitnessProfile(userID, assessment)
		if err := profileRepo.Create(ctx, created); err != nil {
			return err
		}
		profile = created
		srv.log(ctx).Info("Fitness profile created",
			slog.String("user_id", userID),
			slog.String("profile_id", created.ID.String()),
			slog.String("goal", string(created.FitnessGoal)),
		)

		return nil
	})
	// Lost the insert race, read the winner
	if errors.Is(err, domainerrors.ErrDuplicateRecord) {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var findErr error
			profile, findErr = repoFactory.NewFitnessProfileRepository().FindByUserID(ctx, userID)

			return findErr
		})
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *planGenerationService) ensurePlan(ctx context.Context, state *planGenerationState) error {
	// A placeholder plan created by the API comes with the event
	if state.Input.WorkoutPlanID != "" {
		planID, err := uuid.Parse(state.Input.WorkoutPlanID)
		if err != nil {
			return domainerrors.NewValidationError("workoutPlanId", "must be a UUID")
		}

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			plan, err := repoFactory.NewWorkoutPlanRepository().FindByID(ctx, planID)
			if err != nil {
				return err
			}
			if plan.ProfileID != state.ProfileID {
				return domainerrors.ErrForbidden.WithDetails("workout plan belongs to another profile")
			}
			state.PlanID = plan.ID
			state.PlanName = plan.Name

			return nil
		})
	}

	// Otherwise derive the id from the run key so retries find their own plan
	planID := uuid.NewSHA1(workoutPlanNamespace, []byte(state.RunKey+":workout-plan"))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.NewWorkoutPlanRepository()

		plan, err := planRepo.FindByID(ctx, planID)
		if err == nil {
			state.PlanID = plan.ID
			state.PlanName = plan.Name

			return nil
		}
		if !errors.Is(err, domainerrors.ErrWorkoutPlanNotFound) {
			return errors.Wrap(err, "failed to find workout plan")
		}

		profile, err := repoFactory.NewFitnessProfileRepository().FindByID(ctx, state.ProfileID)
		if err != nil {
			return errors.Wrap(err, "failed to load fitness profile")
		}

		plan = &entity.WorkoutPlan{
			ID:            planID,
			ProfileID:     state.ProfileID,
			Name:          entity.PlaceholderPlanName,
			DurationWeeks: entity.PlanDurationWeeks,
			Difficulty:    profile.ExperienceLevel,
			Status:        entity.PlanStatusPending,
		}
		if err := planRepo.Create(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to create workout plan")
		}

		state.PlanID = plan.ID
		state.PlanName = plan.Name
		srv.log(ctx).Info("Workout plan created", slog.String("plan_id", plan.ID.String()))

		return nil
	})
}

func (srv *planGenerationService) generateNarrative(ctx context.Context, state *planGenerationState) error {
	var (
		plan    *entity.WorkoutPlan
		profile *entity.FitnessProfile
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if plan, err = repoFactory.NewWorkoutPlanRepository().FindByID(ctx, state.PlanID); err != nil {
			return err
		}
		if profile, err = repoFactory.NewFitnessProfileRepository().FindByID(ctx, state.ProfileID); err != nil {
			return err
		}

		return repoFactory.NewWorkoutPlanRepository().UpdateStatus(ctx, plan.ID, entity.PlanStatusGenerating)
	})
	if err != nil {
		return errors.Wrap(err, "failed to prepare narrative generation")
	}

	if plan.HasNarrative() && !state.Input.RegenerateNarrative {
		srv.log(ctx).Info("Plan narrative already present, skipping", slog.String("plan_id", plan.ID.String()))
		state.PlanName = plan.Name

		return nil
	}

	name := strings.TrimSpace(state.Input.PlanName)
	if name == "" {
		name = training.PlanName(profile.FitnessGoal)
	}

	reply, err := srv.llm.Complete(ctx, service.CompletionRequest{
		SystemPrompt: narrativeSystemPrompt,
		UserPrompt:   buildNarrativePrompt(profile, name),
		Temperature:  srv.temperature,
		JSON:         true,
	})
	if err != nil {
		return err
	}

	var doc narrativeDocument
	if err := llm.DecodeJSON(reply, &doc); err != nil {
		return err
	}
	if err := srv.mealPlans.validate.Struct(&doc); err != nil {
		return domainerrors.ErrLLMMalformedResponse.WithDetails(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewWorkoutPlanRepository().UpdateNarrative(ctx, plan.ID, name, strings.TrimSpace(doc.Description), strings.TrimSpace(doc.Body))
	})
	if err != nil {
		return errors.Wrap(err, "failed to store plan narrative")
	}

	state.PlanName = name

	return nil
}

func (srv *planGenerationService) generateWorkouts(ctx context.Context, state *planGenerationState) error {
	profile, err := srv.loadProfile(ctx, state.ProfileID)
	if err != nil {
		return err
	}

	// Workouts are rule based; only video links come from outside
	workouts := training.GenerateWorkouts(profile)

	var exercises []*entity.Exercise
	for _, w := range workouts {
		exercises = append(exercises, w.Exercises...)
	}
	// Lookups are best effort. They get at most half of what is left of the
	// step so the workouts are stored even when the video API hangs.
	videoCtx, cancel := videoContext(ctx, srv.videoBudget)
	srv.videos.ResolveAll(videoCtx, exercises)
	cancel()

	withVideo := 0
	for _, ex := range exercises {
		if ex.YoutubeURL != nil {
			withVideo++
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewWorkoutPlanRepository().ReplaceWorkouts(ctx, state.PlanID, workouts)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store workouts")
	}

	state.Workouts = len(workouts)
	srv.log(ctx).Info("Workouts generated",
		slog.String("plan_id", state.PlanID.String()),
		slog.Int("workouts", len(workouts)),
		slog.Int("exercises", len(exercises)),
		slog.Int("with_video", withVideo),
	)

	return nil
}

func videoContext(ctx context.Context, budget time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok {
		if half := time.Until(deadline) / 2; half < budget {
			budget = half
		}
	}

	return context.WithTimeout(ctx, budget)
}

func (srv *planGenerationService) generateMealPlan(ctx context.Context, state *planGenerationState) error {
	if !state.MealPlanningEnabled {
		srv.log(ctx).Info("Meal planning disabled, skipping", slog.String("profile_id", state.ProfileID.String()))

		return nil
	}

	profile, err := srv.loadProfile(ctx, state.ProfileID)
	if err != nil {
		return err
	}

	planID := state.PlanID
	mealPlan, err := srv.mealPlans.Generate(ctx, mealPlanRequest{
		RunKey:        state.RunKey,
		Profile:       profile,
		WorkoutPlanID: &planID,
	})
	if err != nil {
		return err
	}

	state.MealPlanID = &mealPlan.ID

	return nil
}

func (srv *planGenerationService) activatePlan(ctx context.Context, state *planGenerationState) error {
	if err := srv.activator.Activate(ctx, state.ProfileID, state.PlanID, state.MealPlanID); err != nil {
		return err
	}

	srv.log(ctx).Info("Plan activated",
		slog.String("profile_id", state.ProfileID.String()),
		slog.String("plan_id", state.PlanID.String()),
	)

	return nil
}

func (srv *planGenerationService) createSummary(ctx context.Context, state *planGenerationState) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plan, err := repoFactory.NewWorkoutPlanRepository().FindByID(ctx, state.PlanID)
		if err != nil {
			return err
		}

		var mealPlan *entity.MealPlan
		if state.MealPlanID != nil {
			if mealPlan, err = repoFactory.NewMealPlanRepository().FindByID(ctx, *state.MealPlanID); err != nil {
				return err
			}
		}

		project := &entity.Project{
			ID:     projectID(state.RunKey, "plan-summary"),
			UserID: state.Input.UserID,
			Name:   summaryProjectPrefix + plan.Name,
			Messages: []*entity.Message{{
				Role:    entity.RoleAssistant,
				Content: buildPlanSummary(plan, state.Workouts, mealPlan),
			}},
		}
		if err := createProject(ctx, repoFactory.NewProjectRepository(), project); err != nil {
			return errors.Wrap(err, "failed to create summary project")
		}
		state.SummaryProjectID = &project.ID

		return nil
	})
}

func (srv *planGenerationService) loadProfile(ctx context.Context, profileID uuid.UUID) (*entity.FitnessProfile, error) {
	var profile *entity.FitnessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = repoFactory.NewFitnessProfileRepository().FindByID(ctx, profileID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fitness profile")
	}

	return profile, nil
}
