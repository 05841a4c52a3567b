package repository

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkflowRunRepository stores workflow checkpoints.
type WorkflowRunRepository interface {
	// GetOrCreate returns the run for (workflow, runKey), creating a running one when absent.
	GetOrCreate(ctx context.Context, workflow, runKey string) (*entity.WorkflowRun, error)

	// Claim leases the run to token until the given time. It succeeds when the
	// run is unclaimed, its lease expired before now, or token already holds it.
	// Otherwise it returns ErrRunInProgress.
	Claim(ctx context.Context, id uuid.UUID, token string, until, now time.Time) error

	// Save persists status, step checkpoints, state, error and lease of the run.
	// It returns ErrRunInProgress when run.ClaimToken no longer holds the lease.
	Save(ctx context.Context, run *entity.WorkflowRun) error
}
