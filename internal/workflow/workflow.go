// Package workflow runs durable, checkpointed multi-step workflows.
//
// A run is identified by workflow name and run key. After every step the
// typed state is serialized into the run record, so a redelivered trigger
// resumes after the last succeeded step instead of starting over.
//
// The worker executing a run holds a lease on it. A delivery that finds the
// lease held elsewhere gets ErrRunInProgress and is redelivered later.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultLease is the minimum lease taken before each step.
const DefaultLease = 5 * time.Minute

// Step is one unit of work. Run mutates the shared state; whatever it writes
// there is checkpointed once it returns nil.
type Step[S any] struct {
	Name     string
	Timeout  time.Duration
	Retry    RetryPolicy
	Optional bool
	Run      func(ctx context.Context, state *S) error
}

// Definition is an ordered list of steps.
type Definition[S any] struct {
	Name  string
	Steps []Step[S]
}

// StepError is returned when a required step exhausts its attempts.
type StepError struct {
	Workflow string
	Step     string
	Attempts int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("workflow %s: step %s failed after %d attempt(s): %v", e.Workflow, e.Step, e.Attempts, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered step panic. It is never retried.
type PanicError struct {
	Step  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("step %s panicked: %v", e.Step, e.Value)
}

// Runner executes definitions against a run store.
type Runner struct {
	runs   repository.WorkflowRunRepository
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
	now    func() time.Time
	rand   func() float64
	lease  time.Duration
}

// Option customizes a Runner.
type Option func(*Runner)

// WithSleep replaces the backoff sleeper.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}

// WithClock replaces the time source used for checkpoints.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithLease replaces the minimum lease taken before each step.
func WithLease(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.lease = d
		}
	}
}

// NewRunner creates a Runner.
func NewRunner(runs repository.WorkflowRunRepository, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		runs:   runs,
		logger: logger,
		sleep:  sleepContext,
		now:    time.Now,
		rand:   rand.Float64,
		lease:  DefaultLease,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Execute runs def for runKey, resuming a previous run when one exists.
// It returns the final state; on a required step failure the state reflects
// everything done so far and the error is a *StepError.
func Execute[S any](ctx context.Context, r *Runner, def Definition[S], runKey string, initial S) (*S, error) {
	logger := r.logger.With(slog.String("workflow", def.Name), slog.String("run_key", runKey))

	run, err := r.runs.GetOrCreate(ctx, def.Name, runKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load workflow run")
	}

	state := initial
	if len(run.State) > 0 {
		if err := json.Unmarshal(run.State, &state); err != nil {
			return nil, errors.Wrap(err, "failed to decode workflow state")
		}
	}

	if run.Status == entity.RunStatusSucceeded {
		logger.InfoContext(ctx, "Workflow run already completed, skipping")

		return &state, nil
	}

	// Claim before touching anything. A concurrent delivery of the same run
	// key stops here instead of repeating the running step.
	token := uuid.NewString()
	if err := r.claim(ctx, run, token, r.lease); err != nil {
		logger.InfoContext(ctx, "Workflow run is held by another worker", slog.Any("error", err))

		return nil, err
	}

	run.Status = entity.RunStatusRunning
	run.Error = ""

	for _, step := range def.Steps {
		checkpoint(run, step.Name)
		if run.Step(step.Name).Status == entity.StepStatusSucceeded {
			logger.DebugContext(ctx, "Skipping completed step", slog.String("step", step.Name))

			continue
		}

		// The lease must outlive every attempt of the step, backoff included,
		// or a redelivery could take the run over mid-step.
		if err := r.claim(ctx, run, token, stepLease(r.lease, step)); err != nil {
			return &state, errors.Wrap(err, "failed to renew workflow lease")
		}

		attempts, stepErr := runStep(ctx, r, logger, run, step, &state)

		if err := snapshot(run, &state); err != nil {
			return &state, err
		}

		if stepErr == nil {
			if err := r.runs.Save(ctx, run); err != nil {
				return &state, errors.Wrap(err, "failed to checkpoint workflow run")
			}

			continue
		}

		if step.Optional {
			logger.WarnContext(ctx, "Optional step failed, continuing",
				slog.String("step", step.Name),
				slog.Any("error", stepErr),
			)
			if err := r.runs.Save(ctx, run); err != nil {
				return &state, errors.Wrap(err, "failed to checkpoint workflow run")
			}

			continue
		}

		finished := r.now()
		run.Status = entity.RunStatusFailed
		run.Error = stepErr.Error()
		run.FinishedAt = &finished
		run.ClaimedUntil = nil

		// The caller's context may already be done; the failure must still be recorded.
		if err := r.runs.Save(context.WithoutCancel(ctx), run); err != nil {
			logger.ErrorContext(ctx, "Failed to record workflow failure", slog.Any("error", err))
		}

		logger.ErrorContext(ctx, "Workflow step failed",
			slog.String("step", step.Name),
			slog.Int("attempts", attempts),
			slog.Any("error", stepErr),
		)

		return &state, &StepError{Workflow: def.Name, Step: step.Name, Attempts: attempts, Err: stepErr}
	}

	finished := r.now()
	run.Status = entity.RunStatusSucceeded
	run.FinishedAt = &finished
	run.ClaimedUntil = nil
	if err := r.runs.Save(ctx, run); err != nil {
		return &state, errors.Wrap(err, "failed to complete workflow run")
	}

	logger.InfoContext(ctx, "Workflow completed")

	return &state, nil
}

// claim leases run to token for d from now.
func (r *Runner) claim(ctx context.Context, run *entity.WorkflowRun, token string, d time.Duration) error {
	now := r.now()
	until := now.Add(d)
	if err := r.runs.Claim(ctx, run.ID, token, until, now); err != nil {
		return err
	}
	run.ClaimToken = token
	run.ClaimedUntil = &until

	return nil
}

// stepLease is the worst case duration of step, every attempt running into
// its timeout plus the longest backoff between them, and never below floor.
// Steps without a timeout get floor.
func stepLease[S any](floor time.Duration, step Step[S]) time.Duration {
	if step.Timeout <= 0 {
		return floor
	}

	attempts := step.Retry.Attempts()
	budget := time.Duration(attempts) * step.Timeout
	for attempt := 1; attempt < attempts; attempt++ {
		budget += step.Retry.Backoff(attempt, func() float64 { return 1 })
	}

	return max(budget, floor)
}

func runStep[S any](ctx context.Context, r *Runner, logger *slog.Logger, run *entity.WorkflowRun, step Step[S], state *S) (int, error) {
	cp := run.Step(step.Name)
	maxAttempts := step.Retry.Attempts()

	for attempt := 1; ; attempt++ {
		started := r.now()
		cp.Status = entity.StepStatusRunning
		cp.Attempts++
		cp.StartedAt = &started

		err := runAttempt(ctx, step, state)

		finished := r.now()
		cp.FinishedAt = &finished

		if err == nil {
			cp.Status = entity.StepStatusSucceeded
			cp.LastError = ""

			return attempt, nil
		}

		cp.LastError = err.Error()

		var panicErr *PanicError
		if errors.As(err, &panicErr) || !domainerrors.IsRetryable(err) || attempt >= maxAttempts || ctx.Err() != nil {
			cp.Status = entity.StepStatusFailed

			return attempt, err
		}

		delay := step.Retry.Backoff(attempt, r.rand)
		logger.WarnContext(ctx, "Step failed, retrying",
			slog.String("step", step.Name),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			cp.Status = entity.StepStatusFailed

			return attempt, err
		}
	}
}

func runAttempt[S any](ctx context.Context, step Step[S], state *S) (err error) {
	if step.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, step.Timeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Step: step.Name, Value: rec}
		}
	}()

	return step.Run(ctx, state)
}

func checkpoint(run *entity.WorkflowRun, name string) {
	if run.Step(name) != nil {
		return
	}

	run.Steps = append(run.Steps, entity.StepState{Name: name, Status: entity.StepStatusPending})
}

func snapshot[S any](run *entity.WorkflowRun, state *S) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode workflow state")
	}
	run.State = data

	return nil
}
