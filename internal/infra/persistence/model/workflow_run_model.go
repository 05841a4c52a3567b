package model

import (
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkflowRunModel mirrors the 'workflow_runs' table.
type WorkflowRunModel struct {
	ID           uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Workflow     string                                `gorm:"type:varchar(64);not null;uniqueIndex:idx_workflow_runs_key"`
	RunKey       string                                `gorm:"type:varchar(255);not null;uniqueIndex:idx_workflow_runs_key"`
	Status       string                                `gorm:"type:varchar(16);not null"`
	Steps        datatypes.JSONSlice[entity.StepState] `gorm:"type:jsonb"`
	State        datatypes.JSON                        `gorm:"type:jsonb"`
	Error        string                                `gorm:"type:text"`
	ClaimToken   string                                `gorm:"type:varchar(64);not null;default:''"`
	ClaimedUntil *time.Time
	FinishedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkflowRunModel) TableName() string {
	return "workflow_runs"
}
