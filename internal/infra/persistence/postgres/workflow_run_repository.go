package postgres

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// workflowRunRepository implements the repository.WorkflowRunRepository interface.
// It writes through the pool directly, outside of domain transactions, so a
// checkpoint survives the rollback of a failed step.
type workflowRunRepository struct {
	db *gorm.DB
}

// NewWorkflowRunRepository is the constructor for workflowRunRepository.
func NewWorkflowRunRepository(db *gorm.DB) repository.WorkflowRunRepository {
	return &workflowRunRepository{db: db}
}

// GetOrCreate inserts a running row with ON CONFLICT DO NOTHING and reads it back,
// so two concurrent deliveries of the same event converge on one row.
func (repo *workflowRunRepository) GetOrCreate(ctx context.Context, workflow, runKey string) (*entity.WorkflowRun, error) {
	db := repo.db.WithContext(ctx)

	runM := &model.WorkflowRunModel{
		ID:       newID(),
		Workflow: workflow,
		RunKey:   runKey,
		Status:   string(entity.RunStatusRunning),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workflow"}, {Name: "run_key"}},
		DoNothing: true,
	}).Create(runM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create workflow run")
	}

	var stored model.WorkflowRunModel
	if err := db.Where("workflow = ? AND run_key = ?", workflow, runKey).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWorkflowRunNotFound
		}

		return nil, errors.Wrap(err, "failed to load workflow run")
	}

	return toWorkflowRunDomain(&stored), nil
}

// Claim is a conditional UPDATE, so of two workers racing for an expired
// lease exactly one sees a row affected.
func (repo *workflowRunRepository) Claim(ctx context.Context, id uuid.UUID, token string, until, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkflowRunModel{}).
		Where("id = ?", id).
		Where("claim_token = ? OR claimed_until IS NULL OR claimed_until < ?", token, now).
		Updates(map[string]any{
			"claim_token":   token,
			"claimed_until": until,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim workflow run")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrRunInProgress
	}

	return nil
}

// Save only writes while the run's token still holds the lease. A worker whose
// lease was taken over must not overwrite the new owner's checkpoints.
func (repo *workflowRunRepository) Save(ctx context.Context, run *entity.WorkflowRun) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkflowRunModel{}).
		Where("id = ? AND claim_token = ?", run.ID, run.ClaimToken).
		Updates(map[string]any{
			"status":        string(run.Status),
			"steps":         datatypes.JSONSlice[entity.StepState](run.Steps),
			"state":         datatypes.JSON(run.State),
			"error":         run.Error,
			"claimed_until": run.ClaimedUntil,
			"finished_at":   run.FinishedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save workflow run")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrRunInProgress
	}

	return nil
}

func toWorkflowRunDomain(data *model.WorkflowRunModel) *entity.WorkflowRun {
	return &entity.WorkflowRun{
		ID:           data.ID,
		Workflow:     data.Workflow,
		RunKey:       data.RunKey,
		Status:       entity.RunStatus(data.Status),
		Steps:        []entity.StepState(data.Steps),
		State:        []byte(data.State),
		Error:        data.Error,
		ClaimToken:   data.ClaimToken,
		ClaimedUntil: data.ClaimedUntil,
		FinishedAt:   data.FinishedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
