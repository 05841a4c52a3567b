package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fitnessProfileRepository implements the repository.FitnessProfileRepository interface.
type fitnessProfileRepository struct {
	db *gorm.DB
}

// NewFitnessProfileRepository is the constructor for fitnessProfileRepository.
func NewFitnessProfileRepository(db *gorm.DB) repository.FitnessProfileRepository {
	return &fitnessProfileRepository{db: db}
}

func (repo *fitnessProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.FitnessProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *fitnessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *fitnessProfileRepository) findOne(ctx context.Context, query string, arg any) (*entity.FitnessProfile, error) {
	var profileM model.FitnessProfileModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find fitness profile")
	}

	return toFitnessProfileDomain(&profileM), nil
}

// Create inserts a profile. A concurrent insert for the same user yields ErrDuplicateRecord.
func (repo *fitnessProfileRepository) Create(ctx context.Context, profile *entity.FitnessProfile) error {
	assignID(&profile.ID)
	profileM := fromFitnessProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("userId", "unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fitness profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SetCurrentPlan performs a compare-and-swap on the version column.
func (repo *fitnessProfileRepository) SetCurrentPlan(ctx context.Context, profileID, planID uuid.UUID, expectedVersion int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FitnessProfileModel{}).
		Where("id = ? AND version = ?", profileID, expectedVersion).
		Updates(map[string]any{
			"current_plan_id": planID,
			"version":         gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set current plan")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrVersionConflict
	}

	return nil
}

// --- Mapper Functions ---

func toFitnessProfileDomain(data *model.FitnessProfileModel) *entity.FitnessProfile {
	if data == nil {
		return nil
	}

	return &entity.FitnessProfile{
		ID:                     data.ID,
		UserID:                 data.UserID,
		Age:                    data.Age,
		Gender:                 data.Gender,
		HeightCm:               data.HeightCm,
		WeightKg:               data.WeightKg,
		TargetWeightKg:         data.TargetWeightKg,
		FitnessGoal:            entity.FitnessGoal(data.FitnessGoal),
		ActivityLevel:          entity.ActivityLevel(data.ActivityLevel),
		ExperienceLevel:        entity.ExperienceLevel(data.ExperienceLevel),
		AvailableDays:          []string(data.AvailableDays),
		Equipment:              []string(data.Equipment),
		WorkoutDurationMinutes: data.WorkoutDurationMinutes,
		MealPlanningEnabled:    data.MealPlanningEnabled,
		DietaryRestrictions:    []string(data.DietaryRestrictions),
		Allergies:              []string(data.Allergies),
		CurrentPlanID:          data.CurrentPlanID,
		Version:                data.Version,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromFitnessProfileDomain(data *entity.FitnessProfile) *model.FitnessProfileModel {
	if data == nil {
		return nil
	}

	return &model.FitnessProfileModel{
		ID:                     data.ID,
		UserID:                 data.UserID,
		Age:                    data.Age,
		Gender:                 data.Gender,
		HeightCm:               data.HeightCm,
		WeightKg:               data.WeightKg,
		TargetWeightKg:         data.TargetWeightKg,
		FitnessGoal:            string(data.FitnessGoal),
		ActivityLevel:          string(data.ActivityLevel),
		ExperienceLevel:        string(data.ExperienceLevel),
		AvailableDays:          datatypes.JSONSlice[string](data.AvailableDays),
		Equipment:              datatypes.JSONSlice[string](data.Equipment),
		WorkoutDurationMinutes: data.WorkoutDurationMinutes,
		MealPlanningEnabled:    data.MealPlanningEnabled,
		DietaryRestrictions:    datatypes.JSONSlice[string](data.DietaryRestrictions),
		Allergies:              datatypes.JSONSlice[string](data.Allergies),
		CurrentPlanID:          data.CurrentPlanID,
		Version:                data.Version,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
