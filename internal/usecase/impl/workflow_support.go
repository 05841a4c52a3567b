// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/nutrition"
	"fitplan/internal/domain/repository"
	"fitplan/internal/workflow"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStepTimeout    = 30 * time.Second
	defaultLLMStepTimeout = 3 * time.Minute
)

// stepPolicies are the timeouts and retry budgets shared by every workflow.
// DB steps are cheap and retried briefly, LLM steps get the long budget.
type stepPolicies struct {
	stepTimeout    time.Duration
	llmStepTimeout time.Duration
	db             workflow.RetryPolicy
	llm            workflow.RetryPolicy
}

func newStepPolicies(cfg *config.Config) stepPolicies {
	policies := stepPolicies{
		stepTimeout:    defaultStepTimeout,
		llmStepTimeout: defaultLLMStepTimeout,
		db:             workflow.RetryPolicy{MaxAttempts: 3, MinBackoff: 200 * time.Millisecond, MaxBackoff: 2 * time.Second, JitterFrac: 0.2},
		llm:            workflow.RetryPolicy{MaxAttempts: 4, MinBackoff: 2 * time.Second, MaxBackoff: 30 * time.Second, JitterFrac: 0.2},
	}
	if cfg == nil || cfg.Workflow == nil {
		return policies
	}

	wf := cfg.Workflow
	if wf.StepTimeout > 0 {
		policies.stepTimeout = wf.StepTimeout
	}
	if wf.LLMStepTimeout > 0 {
		policies.llmStepTimeout = wf.LLMStepTimeout
	}
	if wf.DB.MaxAttempts > 0 {
		policies.db = toRetryPolicy(wf.DB)
	}
	if wf.LLM.MaxAttempts > 0 {
		policies.llm = toRetryPolicy(wf.LLM)
	}

	return policies
}

func toRetryPolicy(rc config.RetryConfig) workflow.RetryPolicy {
	return workflow.RetryPolicy{
		MaxAttempts: rc.MaxAttempts,
		MinBackoff:  rc.MinBackoff,
		MaxBackoff:  rc.MaxBackoff,
		JitterFrac:  rc.JitterFrac,
	}
}

// dbStep builds a step with the DB timeout and retry budget.
func dbStep[S any](p stepPolicies, name string, run func(ctx context.Context, state *S) error) workflow.Step[S] {
	return workflow.Step[S]{Name: name, Timeout: p.stepTimeout, Retry: p.db, Run: run}
}

// llmStep builds a step with the LLM timeout and retry budget.
func llmStep[S any](p stepPolicies, name string, run func(ctx context.Context, state *S) error) workflow.Step[S] {
	return workflow.Step[S]{Name: name, Timeout: p.llmStepTimeout, Retry: p.llm, Run: run}
}

// optional marks a step whose exhaustion does not fail the run.
func optional[S any](step workflow.Step[S]) workflow.Step[S] {
	step.Optional = true

	return step
}

// projectNamespace derives project ids from run keys.
var projectNamespace = uuid.MustParse("9b2d6c3e-5f1a-4c8e-a7d4-3e6f0b8c2a17")

func projectID(runKey, kind string) uuid.UUID {
	return uuid.NewSHA1(projectNamespace, []byte(runKey+":"+kind))
}

// createProject stores project under its preset id. A project already stored
// by an earlier attempt of the same run counts as created.
func createProject(ctx context.Context, projects repository.ProjectRepository, project *entity.Project) error {
	err := projects.Create(ctx, project)
	if errors.Is(err, domainerrors.ErrDuplicateRecord) {
		return nil
	}

	return err
}

func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

func logAnomalies(ctx context.Context, logger *slog.Logger, source string, anomalies []nutrition.Anomaly) {
	for _, a := range anomalies {
		logger.WarnContext(ctx, "Nutrition data anomaly",
			slog.String("source", source),
			slog.String("kind", a.Kind),
			slog.String("detail", a.Detail),
		)
	}
}

// RunnerParams holds dependencies for NewWorkflowRunner, injected by Fx
type RunnerParams struct {
	fx.In

	Runs   repository.WorkflowRunRepository
	Logger *slog.Logger
}

// NewWorkflowRunner provides the single runner shared by every workflow.
func NewWorkflowRunner(params RunnerParams) *workflow.Runner {
	return workflow.NewRunner(params.Runs, params.Logger)
}
