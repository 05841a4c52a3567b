package workflow

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRuns struct {
	mu    sync.Mutex
	runs  map[string]*entity.WorkflowRun
	saves int
}

func newMemoryRuns() *memoryRuns {
	return &memoryRuns{runs: make(map[string]*entity.WorkflowRun)}
}

func (m *memoryRuns) GetOrCreate(_ context.Context, workflow, runKey string) (*entity.WorkflowRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := workflow + "/" + runKey
	if run, ok := m.runs[key]; ok {
		return cloneRun(run), nil
	}

	run := &entity.WorkflowRun{ID: uuid.New(), Workflow: workflow, RunKey: runKey, Status: entity.RunStatusRunning}
	m.runs[key] = cloneRun(run)

	return run, nil
}

func (m *memoryRuns) Claim(_ context.Context, id uuid.UUID, token string, until, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, run := range m.runs {
		if run.ID != id {
			continue
		}
		if run.ClaimToken != token && run.ClaimedUntil != nil && !run.ClaimedUntil.Before(now) {
			return domainerrors.ErrRunInProgress
		}
		run.ClaimToken = token
		run.ClaimedUntil = &until

		return nil
	}

	return domainerrors.ErrWorkflowRunNotFound
}

func (m *memoryRuns) Save(_ context.Context, run *entity.WorkflowRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := run.Workflow + "/" + run.RunKey
	if stored, ok := m.runs[key]; ok && stored.ClaimToken != run.ClaimToken {
		return domainerrors.ErrRunInProgress
	}
	m.saves++
	m.runs[key] = cloneRun(run)

	return nil
}

func (m *memoryRuns) get(workflow, runKey string) *entity.WorkflowRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneRun(m.runs[workflow+"/"+runKey])
}

func cloneRun(run *entity.WorkflowRun) *entity.WorkflowRun {
	if run == nil {
		return nil
	}
	out := *run
	out.Steps = append([]entity.StepState(nil), run.Steps...)
	out.State = append([]byte(nil), run.State...)

	return &out
}

type counterState struct {
	Visited []string `json:"visited"`
	Value   int      `json:"value"`
}

func newTestRunner(runs *memoryRuns, sleeps *[]time.Duration) *Runner {
	return NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithSleep(func(_ context.Context, d time.Duration) error {
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}

			return nil
		}),
	)
}

func visit(name string) func(context.Context, *counterState) error {
	return func(_ context.Context, s *counterState) error {
		s.Visited = append(s.Visited, name)
		s.Value++

		return nil
	}
}

func TestExecute_RunsStepsInOrderAndCheckpoints(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "a", Run: visit("a")},
		{Name: "b", Run: visit("b")},
		{Name: "c", Run: visit("c")},
	}}

	state, err := Execute(context.Background(), runner, def, "key-1", counterState{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, state.Visited)

	stored := runs.get("test", "key-1")
	assert.Equal(t, entity.RunStatusSucceeded, stored.Status)
	require.Len(t, stored.Steps, 3)
	for _, step := range stored.Steps {
		assert.Equal(t, entity.StepStatusSucceeded, step.Status)
		assert.Equal(t, 1, step.Attempts)
	}
	assert.JSONEq(t, `{"visited":["a","b","c"],"value":3}`, string(stored.State))
	assert.NotNil(t, stored.FinishedAt)
}

func TestExecute_CompletedRunIsNotRepeated(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	calls := 0
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "a", Run: func(_ context.Context, s *counterState) error {
			calls++
			s.Value = 42

			return nil
		}},
	}}

	_, err := Execute(context.Background(), runner, def, "dup", counterState{})
	require.NoError(t, err)

	state, err := Execute(context.Background(), runner, def, "dup", counterState{})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 42, state.Value)
}

func TestExecute_ResumesAfterLastSucceededStep(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	failB := true
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "a", Run: visit("a")},
		{Name: "b", Run: func(ctx context.Context, s *counterState) error {
			if failB {
				return domainerrors.ErrValidationFailed
			}

			return visit("b")(ctx, s)
		}},
		{Name: "c", Run: visit("c")},
	}}

	_, err := Execute(context.Background(), runner, def, "resume", counterState{})
	require.Error(t, err)
	assert.Equal(t, entity.RunStatusFailed, runs.get("test", "resume").Status)

	failB = false
	state, err := Execute(context.Background(), runner, def, "resume", counterState{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, state.Visited)
	assert.Equal(t, entity.RunStatusSucceeded, runs.get("test", "resume").Status)
}

func TestExecute_ConcurrentDeliveryIsRejected(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "slow", Run: func(ctx context.Context, s *counterState) error {
			calls++
			close(entered)
			<-release

			return visit("slow")(ctx, s)
		}},
	}}

	done := make(chan error, 1)
	go func() {
		_, err := Execute(context.Background(), runner, def, "dup", counterState{})
		done <- err
	}()
	<-entered

	state, err := Execute(context.Background(), runner, def, "dup", counterState{})

	assert.Nil(t, state)
	assert.True(t, errors.Is(err, domainerrors.ErrRunInProgress))
	assert.True(t, domainerrors.IsRetryable(err))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, calls)

	run := runs.get("test", "dup")
	assert.Equal(t, entity.RunStatusSucceeded, run.Status)
	assert.Nil(t, run.ClaimedUntil)
}

func TestExecute_ExpiredLeaseIsTakenOver(t *testing.T) {
	runs := newMemoryRuns()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	runner := NewRunner(runs, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return now }),
		WithLease(time.Minute),
	)

	stale, err := runs.GetOrCreate(context.Background(), "test", "takeover")
	require.NoError(t, err)
	require.NoError(t, runs.Claim(context.Background(), stale.ID, "crashed-worker", now.Add(-time.Second), now.Add(-time.Hour)))

	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{{Name: "a", Run: visit("a")}}}

	state, err := Execute(context.Background(), runner, def, "takeover", counterState{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, state.Visited)
	assert.NotEqual(t, "crashed-worker", runs.get("test", "takeover").ClaimToken)
}

func TestExecute_StaleOwnerCannotCheckpoint(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "a", Run: func(ctx context.Context, s *counterState) error {
			// Another worker takes the lease while this step runs.
			run := runs.get("test", "stale")
			err := runs.Claim(ctx, run.ID, "other-worker", time.Now().Add(time.Hour), time.Now().Add(time.Hour))
			require.NoError(t, err)

			return visit("a")(ctx, s)
		}},
	}}

	_, err := Execute(context.Background(), runner, def, "stale", counterState{})

	assert.True(t, errors.Is(err, domainerrors.ErrRunInProgress))
	assert.Empty(t, runs.get("test", "stale").Steps)
}

func TestExecute_RetriesTransientErrors(t *testing.T) {
	runs := newMemoryRuns()
	var sleeps []time.Duration
	runner := newTestRunner(runs, &sleeps)
	attempts := 0
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{
			Name:  "flaky",
			Retry: RetryPolicy{MaxAttempts: 3, MinBackoff: 100 * time.Millisecond, MaxBackoff: time.Second},
			Run: func(_ context.Context, s *counterState) error {
				attempts++
				if attempts < 3 {
					return errors.New("connection reset")
				}
				s.Value = attempts

				return nil
			},
		},
	}}

	state, err := Execute(context.Background(), runner, def, "retry", counterState{})

	require.NoError(t, err)
	assert.Equal(t, 3, state.Value)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, sleeps)
	assert.Equal(t, 3, runs.get("test", "retry").Step("flaky").Attempts)
}

func TestExecute_PermanentErrorIsNotRetried(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	attempts := 0
	reachedNext := false
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{
			Name:  "missing",
			Retry: RetryPolicy{MaxAttempts: 5},
			Run: func(context.Context, *counterState) error {
				attempts++

				return domainerrors.ErrWorkoutPlanNotFound
			},
		},
		{Name: "next", Run: func(context.Context, *counterState) error {
			reachedNext = true

			return nil
		}},
	}}

	_, err := Execute(context.Background(), runner, def, "perm", counterState{})

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "missing", stepErr.Step)
	assert.Equal(t, 1, stepErr.Attempts)
	assert.True(t, errors.Is(err, domainerrors.ErrWorkoutPlanNotFound))
	assert.Equal(t, 1, attempts)
	assert.False(t, reachedNext)

	stored := runs.get("test", "perm")
	assert.Equal(t, entity.RunStatusFailed, stored.Status)
	assert.Equal(t, entity.StepStatusFailed, stored.Step("missing").Status)
	assert.NotEmpty(t, stored.Error)
}

func TestExecute_OptionalStepFailureContinues(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "a", Run: visit("a")},
		{Name: "summary", Optional: true, Run: func(context.Context, *counterState) error {
			return domainerrors.ErrValidationFailed
		}},
		{Name: "c", Run: visit("c")},
	}}

	state, err := Execute(context.Background(), runner, def, "opt", counterState{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, state.Visited)
	stored := runs.get("test", "opt")
	assert.Equal(t, entity.RunStatusSucceeded, stored.Status)
	assert.Equal(t, entity.StepStatusFailed, stored.Step("summary").Status)
}

func TestExecute_RecoversPanics(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	attempts := 0
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "boom", Retry: RetryPolicy{MaxAttempts: 3}, Run: func(context.Context, *counterState) error {
			attempts++
			panic("nil map")
		}},
	}}

	_, err := Execute(context.Background(), runner, def, "panic", counterState{})

	var panicErr *PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "boom", panicErr.Step)
	assert.Equal(t, 1, attempts)
}

func TestExecute_StepTimeout(t *testing.T) {
	runs := newMemoryRuns()
	runner := newTestRunner(runs, nil)
	def := Definition[counterState]{Name: "test", Steps: []Step[counterState]{
		{Name: "slow", Timeout: 10 * time.Millisecond, Run: func(ctx context.Context, _ *counterState) error {
			<-ctx.Done()

			return ctx.Err()
		}},
	}}

	_, err := Execute(context.Background(), runner, def, "timeout", counterState{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRetryPolicy_Backoff(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, MinBackoff: time.Second, MaxBackoff: 5 * time.Second, JitterFrac: 0.2}
	half := func() float64 { return 0.5 }

	assert.Equal(t, time.Second, policy.Backoff(1, half))
	assert.Equal(t, 2*time.Second, policy.Backoff(2, half))
	assert.Equal(t, 4*time.Second, policy.Backoff(3, half))
	assert.Equal(t, 5*time.Second, policy.Backoff(4, half))

	low := policy.Backoff(1, func() float64 { return 0 })
	high := policy.Backoff(1, func() float64 { return 0.999999 })
	assert.InDelta(t, float64(800*time.Millisecond), float64(low), float64(time.Millisecond))
	assert.InDelta(t, float64(1200*time.Millisecond), float64(high), float64(time.Millisecond))

	assert.Equal(t, 1, RetryPolicy{}.Attempts())
}
