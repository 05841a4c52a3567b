package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	assignID(&project.ID)
	for _, message := range project.Messages {
		assignID(&message.ID)
		message.ProjectID = project.ID
	}

	projectM := fromProjectDomain(project)
	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord.WithDetails("project already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) FindLatestByNameContains(ctx context.Context, userID, marker string) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ? AND name LIKE ?", userID, "%"+escapeLike(marker)+"%").
		Order("created_at DESC").
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	project := &entity.Project{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Messages:  make([]*entity.Message, 0, len(data.Messages)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, messageM := range data.Messages {
		project.Messages = append(project.Messages, &entity.Message{
			ID:        messageM.ID,
			ProjectID: messageM.ProjectID,
			Role:      messageM.Role,
			Content:   messageM.Content,
			CreatedAt: messageM.CreatedAt,
		})
	}

	return project
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	projectM := &model.ProjectModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Messages:  make([]*model.MessageModel, 0, len(data.Messages)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, message := range data.Messages {
		projectM.Messages = append(projectM.Messages, &model.MessageModel{
			ID:        message.ID,
			ProjectID: message.ProjectID,
			Role:      message.Role,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}

	return projectM
}
