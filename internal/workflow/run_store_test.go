package workflow

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	mockRepo "fitplan/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func singleStep(run func(ctx context.Context, state *counterState) error) Definition[counterState] {
	return Definition[counterState]{
		Name:  "store-test",
		Steps: []Step[counterState]{{Name: "only", Run: run}},
	}
}

func TestExecute_RunLoadFailure(t *testing.T) {
	runs := mockRepo.NewMockWorkflowRunRepository(t)
	runs.EXPECT().GetOrCreate(mock.Anything, "store-test", "key-1").Return(nil, errors.New("connection refused"))

	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	called := false

	state, err := Execute(context.Background(), runner, singleStep(func(context.Context, *counterState) error {
		called = true

		return nil
	}), "key-1", counterState{})

	require.Error(t, err)
	assert.Nil(t, state)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "failed to load workflow run")
}

func TestExecute_CheckpointFailure(t *testing.T) {
	runID := uuid.New()
	runs := mockRepo.NewMockWorkflowRunRepository(t)
	runs.EXPECT().GetOrCreate(mock.Anything, "store-test", "key-2").
		Return(&entity.WorkflowRun{ID: runID, Workflow: "store-test", RunKey: "key-2"}, nil)
	runs.EXPECT().Claim(mock.Anything, runID, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	runs.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)))

	state, err := Execute(context.Background(), runner, singleStep(func(_ context.Context, s *counterState) error {
		s.Value = 7

		return nil
	}), "key-2", counterState{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to checkpoint workflow run")
	assert.Equal(t, 7, state.Value)
}

func TestExecute_FailureRecordedAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	runID := uuid.New()
	runs := mockRepo.NewMockWorkflowRunRepository(t)
	runs.EXPECT().GetOrCreate(mock.Anything, "store-test", "key-3").
		Return(&entity.WorkflowRun{ID: runID, Workflow: "store-test", RunKey: "key-3"}, nil)
	runs.EXPECT().Claim(mock.Anything, runID, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	runs.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(saveCtx context.Context, run *entity.WorkflowRun) {
			assert.NoError(t, saveCtx.Err())
			assert.Equal(t, entity.RunStatusFailed, run.Status)
			assert.NotNil(t, run.FinishedAt)
			assert.Nil(t, run.ClaimedUntil, "failed run releases its lease")
		}).
		Return(nil).Once()

	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := Execute(ctx, runner, singleStep(func(context.Context, *counterState) error {
		cancel()

		return errors.New("upstream went away")
	}), "key-3", counterState{})

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "only", stepErr.Step)
	assert.Equal(t, 1, stepErr.Attempts)
}

func TestExecute_HeldRunIsNotExecuted(t *testing.T) {
	runID := uuid.New()
	runs := mockRepo.NewMockWorkflowRunRepository(t)
	runs.EXPECT().GetOrCreate(mock.Anything, "store-test", "key-4").
		Return(&entity.WorkflowRun{ID: runID, Workflow: "store-test", RunKey: "key-4"}, nil)
	runs.EXPECT().Claim(mock.Anything, runID, mock.Anything, mock.Anything, mock.Anything).Return(domainerrors.ErrRunInProgress)

	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	called := false

	state, err := Execute(context.Background(), runner, singleStep(func(context.Context, *counterState) error {
		called = true

		return nil
	}), "key-4", counterState{})

	assert.Nil(t, state)
	assert.True(t, errors.Is(err, domainerrors.ErrRunInProgress))
	assert.True(t, domainerrors.IsRetryable(err))
	assert.False(t, called)
	runs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExecute_StepLeaseCoversRetries(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	runID := uuid.New()
	var leases []time.Duration

	runs := mockRepo.NewMockWorkflowRunRepository(t)
	runs.EXPECT().GetOrCreate(mock.Anything, "store-test", "key-5").
		Return(&entity.WorkflowRun{ID: runID, Workflow: "store-test", RunKey: "key-5"}, nil)
	runs.EXPECT().Claim(mock.Anything, runID, mock.Anything, mock.Anything, start).
		Run(func(_ context.Context, _ uuid.UUID, _ string, until, now time.Time) {
			leases = append(leases, until.Sub(now))
		}).
		Return(nil)
	runs.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return start }),
		WithLease(time.Minute),
	)
	def := Definition[counterState]{Name: "store-test", Steps: []Step[counterState]{{
		Name:    "llm",
		Timeout: 3 * time.Minute,
		Retry:   RetryPolicy{MaxAttempts: 4, MinBackoff: 2 * time.Second, MaxBackoff: 30 * time.Second},
		Run:     visit("llm"),
	}}}

	_, err := Execute(context.Background(), runner, def, "key-5", counterState{})

	require.NoError(t, err)
	// 4 x 3m of attempts plus 2s + 4s + 8s of backoff.
	assert.Equal(t, []time.Duration{time.Minute, 12*time.Minute + 14*time.Second}, leases)
}
