package repository

import (
	"context"

	"fitplan/internal/domain/entity"
)

// ProjectRepository defines the persistence operations for projects and their messages.
type ProjectRepository interface {
	// Create inserts the project together with its messages. A preset ID is
	// kept; inserting it twice yields ErrDuplicateRecord.
	Create(ctx context.Context, project *entity.Project) error

	// FindLatestByNameContains returns the newest project of the user whose name contains marker.
	FindLatestByNameContains(ctx context.Context, userID, marker string) (*entity.Project, error)

	// FindByUser lists projects without messages, newest first.
	FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Project, error)
}
