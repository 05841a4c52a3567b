package postgres

import (
	"context"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutPlanRepository implements the repository.WorkoutPlanRepository interface.
type workoutPlanRepository struct {
	db *gorm.DB
}

// NewWorkoutPlanRepository is the constructor for workoutPlanRepository.
func NewWorkoutPlanRepository(db *gorm.DB) repository.WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

func (repo *workoutPlanRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	assignID(&plan.ID)
	planM := fromWorkoutPlanDomain(plan)
	planM.Workouts = nil

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("profileId", "unknown fitness profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout plan")
	}

	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

func (repo *workoutPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	var planM model.WorkoutPlanModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWorkoutPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout plan by id")
	}

	return toWorkoutPlanDomain(&planM), nil
}

func (repo *workoutPlanRepository) FindByIDWithWorkouts(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	var planM model.WorkoutPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Workouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("week ASC, position ASC")
		}).
		Preload("Workouts.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWorkoutPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout plan with workouts")
	}

	return toWorkoutPlanDomain(&planM), nil
}

// FindLatestByProfile returns the newest plan of the profile with its workouts.
func (repo *workoutPlanRepository) FindLatestByProfile(ctx context.Context, profileID uuid.UUID) (*entity.WorkoutPlan, error) {
	var planM model.WorkoutPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Workouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("week ASC, position ASC")
		}).
		Preload("Workouts.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrWorkoutPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest workout plan")
	}

	return toWorkoutPlanDomain(&planM), nil
}

func (repo *workoutPlanRepository) FindPublic(ctx context.Context, limit int) ([]*entity.WorkoutPlan, error) {
	var planModels []*model.WorkoutPlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_public = ? AND status = ?", true, string(entity.PlanStatusReady)).
		Order("created_at DESC").
		Limit(limit).
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list public workout plans")
	}

	plans := make([]*entity.WorkoutPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toWorkoutPlanDomain(planM))
	}

	return plans, nil
}

func (repo *workoutPlanRepository) UpdateNarrative(ctx context.Context, id uuid.UUID, name, description, body string) error {
	return repo.update(ctx, id, map[string]any{
		"name":        name,
		"description": description,
		"body":        body,
	}, "failed to update workout plan narrative")
}

func (repo *workoutPlanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PlanStatus) error {
	return repo.update(ctx, id, map[string]any{"status": string(status)}, "failed to update workout plan status")
}

func (repo *workoutPlanRepository) update(ctx context.Context, id uuid.UUID, values map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkoutPlanModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrWorkoutPlanNotFound
	}

	return nil
}

func (repo *workoutPlanRepository) CountWorkouts(ctx context.Context, planID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count workouts")
	}

	return int(count), nil
}

// ReplaceWorkouts must run inside a transaction; it deletes before inserting.
func (repo *workoutPlanRepository) ReplaceWorkouts(ctx context.Context, planID uuid.UUID, workouts []*entity.Workout) error {
	db := repo.db.WithContext(ctx)

	existing := db.Model(&model.WorkoutModel{}).Select("id").Where("plan_id = ?", planID)
	if err := db.Where("workout_id IN (?)", existing).Delete(&model.ExerciseModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete exercises")
	}
	if err := db.Where("plan_id = ?", planID).Delete(&model.WorkoutModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete workouts")
	}

	if len(workouts) == 0 {
		return nil
	}

	workoutModels := make([]*model.WorkoutModel, 0, len(workouts))
	for _, workout := range workouts {
		workout.PlanID = planID
		assignID(&workout.ID)
		for _, exercise := range workout.Exercises {
			exercise.WorkoutID = workout.ID
			assignID(&exercise.ID)
		}
		workoutModels = append(workoutModels, fromWorkoutDomain(workout))
	}

	if err := db.Create(workoutModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWorkoutPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert workouts")
	}

	return nil
}

// Activate must run inside a transaction together with the profile pointer swap.
func (repo *workoutPlanRepository) Activate(ctx context.Context, profileID, planID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.WorkoutPlanModel{}).
		Where("profile_id = ? AND id <> ? AND is_active = ?", profileID, planID, true).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate workout plans")
	}

	result := db.Model(&model.WorkoutPlanModel{}).
		Where("id = ? AND profile_id = ?", planID, profileID).
		Updates(map[string]any{
			"is_active": true,
			"status":    string(entity.PlanStatusReady),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to activate workout plan")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrWorkoutPlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWorkoutPlanDomain(data *model.WorkoutPlanModel) *entity.WorkoutPlan {
	if data == nil {
		return nil
	}

	plan := &entity.WorkoutPlan{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Description:   data.Description,
		Body:          data.Body,
		DurationWeeks: data.DurationWeeks,
		Difficulty:    entity.ExperienceLevel(data.Difficulty),
		Status:        entity.PlanStatus(data.Status),
		IsActive:      data.IsActive,
		IsPublic:      data.IsPublic,
		Workouts:      make([]*entity.Workout, 0, len(data.Workouts)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	for _, workoutM := range data.Workouts {
		plan.Workouts = append(plan.Workouts, toWorkoutDomain(workoutM))
	}

	return plan
}

func fromWorkoutPlanDomain(data *entity.WorkoutPlan) *model.WorkoutPlanModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutPlanModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Description:   data.Description,
		Body:          data.Body,
		DurationWeeks: data.DurationWeeks,
		Difficulty:    string(data.Difficulty),
		Status:        string(data.Status),
		IsActive:      data.IsActive,
		IsPublic:      data.IsPublic,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	workout := &entity.Workout{
		ID:        data.ID,
		PlanID:    data.PlanID,
		Week:      data.Week,
		Day:       data.Day,
		Name:      data.Name,
		Focus:     data.Focus,
		Position:  data.Position,
		Exercises: make([]*entity.Exercise, 0, len(data.Exercises)),
	}

	for _, exerciseM := range data.Exercises {
		workout.Exercises = append(workout.Exercises, &entity.Exercise{
			ID:              exerciseM.ID,
			WorkoutID:       exerciseM.WorkoutID,
			Name:            exerciseM.Name,
			EnglishName:     exerciseM.EnglishName,
			Sets:            exerciseM.Sets,
			Reps:            exerciseM.Reps,
			RestSeconds:     exerciseM.RestSeconds,
			DurationSeconds: exerciseM.DurationSeconds,
			YoutubeURL:      exerciseM.YoutubeURL,
			Position:        exerciseM.Position,
		})
	}

	return workout
}

func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	workoutM := &model.WorkoutModel{
		ID:        data.ID,
		PlanID:    data.PlanID,
		Week:      data.Week,
		Day:       data.Day,
		Name:      data.Name,
		Focus:     data.Focus,
		Position:  data.Position,
		Exercises: make([]*model.ExerciseModel, 0, len(data.Exercises)),
	}

	for _, exercise := range data.Exercises {
		workoutM.Exercises = append(workoutM.Exercises, &model.ExerciseModel{
			ID:              exercise.ID,
			WorkoutID:       exercise.WorkoutID,
			Name:            exercise.Name,
			EnglishName:     exercise.EnglishName,
			Sets:            exercise.Sets,
			Reps:            exercise.Reps,
			RestSeconds:     exercise.RestSeconds,
			DurationSeconds: exercise.DurationSeconds,
			YoutubeURL:      exercise.YoutubeURL,
			Position:        exercise.Position,
		})
	}

	return workoutM
}
