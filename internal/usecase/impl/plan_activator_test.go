package impl

import (
	"context"
	"testing"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	mockRepo "fitplan/internal/mocks/repository"
	mockService "fitplan/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activatorFixtures struct {
	activator *planActivator
	txManager *mockRepo.MockTransactionManager
	locker    *mockService.MockProfileLocker
	unlocked  *int
}

func createTestActivator(t *testing.T) activatorFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locker := mockService.NewMockProfileLocker(t)
	unlocked := 0

	locker.EXPECT().Lock(mock.Anything, mock.Anything).
		Return(service.UnlockFunc(func(context.Context) error {
			unlocked++

			return nil
		}), nil).Maybe()

	return activatorFixtures{
		activator: &planActivator{txManager: txManager, locker: locker, logger: newDiscardLogger()},
		txManager: txManager,
		locker:    locker,
		unlocked:  &unlocked,
	}
}

// onExecute runs fn against a fresh mock factory inside the transaction.
func (f activatorFixtures) onExecute(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestPlanActivator_Activate(t *testing.T) {
	fx := createTestActivator(t)
	ctx := context.Background()
	profileID, planID, mealID := uuid.New(), uuid.New(), uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		profiles := mockRepo.NewMockFitnessProfileRepository(t)
		plans := mockRepo.NewMockWorkoutPlanRepository(t)
		meals := mockRepo.NewMockMealPlanRepository(t)

		factory.EXPECT().NewFitnessProfileRepository().Return(profiles)
		factory.EXPECT().NewWorkoutPlanRepository().Return(plans)
		factory.EXPECT().NewMealPlanRepository().Return(meals)

		profiles.EXPECT().FindByID(ctx, profileID).Return(&entity.FitnessProfile{ID: profileID, Version: 3}, nil)
		plans.EXPECT().Activate(ctx, profileID, planID).Return(nil)
		meals.EXPECT().Activate(ctx, profileID, mealID).Return(nil)
		profiles.EXPECT().SetCurrentPlan(ctx, profileID, planID, 3).Return(nil)
	})

	err := fx.activator.Activate(ctx, profileID, planID, &mealID)

	require.NoError(t, err)
	assert.Equal(t, 1, *fx.unlocked)
}

func TestPlanActivator_Activate_AlreadyCurrent(t *testing.T) {
	fx := createTestActivator(t)
	ctx := context.Background()
	profileID, planID := uuid.New(), uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		profiles := mockRepo.NewMockFitnessProfileRepository(t)
		plans := mockRepo.NewMockWorkoutPlanRepository(t)

		factory.EXPECT().NewFitnessProfileRepository().Return(profiles)
		factory.EXPECT().NewWorkoutPlanRepository().Return(plans)

		profiles.EXPECT().FindByID(ctx, profileID).
			Return(&entity.FitnessProfile{ID: profileID, CurrentPlanID: &planID, Version: 5}, nil)
		plans.EXPECT().Activate(ctx, profileID, planID).Return(nil)
	})

	require.NoError(t, fx.activator.Activate(ctx, profileID, planID, nil))
}

func TestPlanActivator_Activate_VersionConflict(t *testing.T) {
	fx := createTestActivator(t)
	ctx := context.Background()
	profileID, planID := uuid.New(), uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		profiles := mockRepo.NewMockFitnessProfileRepository(t)
		plans := mockRepo.NewMockWorkoutPlanRepository(t)

		factory.EXPECT().NewFitnessProfileRepository().Return(profiles)
		factory.EXPECT().NewWorkoutPlanRepository().Return(plans)

		profiles.EXPECT().FindByID(ctx, profileID).Return(&entity.FitnessProfile{ID: profileID, Version: 1}, nil)
		plans.EXPECT().Activate(ctx, profileID, planID).Return(nil)
		profiles.EXPECT().SetCurrentPlan(ctx, profileID, planID, 1).Return(domainerrors.ErrVersionConflict)
	})

	err := fx.activator.Activate(ctx, profileID, planID, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVersionConflict))
	assert.Equal(t, 1, *fx.unlocked)
}

func TestPlanActivator_Activate_ProfileMissing(t *testing.T) {
	fx := createTestActivator(t)
	ctx := context.Background()
	profileID := uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		profiles := mockRepo.NewMockFitnessProfileRepository(t)
		factory.EXPECT().NewFitnessProfileRepository().Return(profiles)
		profiles.EXPECT().FindByID(ctx, profileID).Return(nil, domainerrors.ErrProfileNotFound)
	})

	err := fx.activator.Activate(ctx, profileID, uuid.New(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestPlanActivator_LockNotAcquired(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	locker := mockService.NewMockProfileLocker(t)
	locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLockNotAcquired)

	activator := &planActivator{txManager: txManager, locker: locker, logger: newDiscardLogger()}

	err := activator.ActivateMealPlan(context.Background(), uuid.New(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrLockNotAcquired))
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPlanActivator_ActivateMealPlan_ReleasesLockOnFailure(t *testing.T) {
	fx := createTestActivator(t)
	ctx := context.Background()
	profileID, mealID := uuid.New(), uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		meals := mockRepo.NewMockMealPlanRepository(t)
		factory.EXPECT().NewMealPlanRepository().Return(meals)
		meals.EXPECT().Activate(ctx, profileID, mealID).Return(domainerrors.ErrMealPlanNotFound)
	})

	err := fx.activator.ActivateMealPlan(ctx, profileID, mealID)

	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
	assert.Equal(t, 1, *fx.unlocked)
}
