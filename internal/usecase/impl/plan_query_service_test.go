package impl

import (
	"context"
	"encoding/json"
	"testing"

	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/mocks/memory"
	mockService "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPlanQueryService(t *testing.T) (usecase.PlanQueryUsecase, *memory.Store, *mockService.MockEventPublisher) {
	t.Helper()

	store := memory.NewStore()
	publisher := mockService.NewMockEventPublisher(t)

	return NewPlanQueryService(PlanQueryServiceParams{
		TxManager: store,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}), store, publisher
}

func storePlan(t *testing.T, store *memory.Store, plan *entity.WorkoutPlan) *entity.WorkoutPlan {
	t.Helper()
	require.NoError(t, store.NewWorkoutPlanRepository().Create(context.Background(), plan))

	return plan
}

func TestPlanQuery_CurrentPlan(t *testing.T) {
	svc, store, _ := createTestPlanQueryService(t)
	profile := seedProfile(store, "user_1", entity.AssessmentData{})

	older := storePlan(t, store, &entity.WorkoutPlan{ProfileID: profile.ID, Name: "Starý", Status: entity.PlanStatusReady,
		Workouts: []*entity.Workout{{Name: "Trénink A"}}})
	newer := storePlan(t, store, &entity.WorkoutPlan{ProfileID: profile.ID, Name: entity.PlaceholderPlanName, Status: entity.PlanStatusGenerating})

	// Nothing activated yet: the newest plan is returned, still without workouts.
	plan, err := svc.CurrentPlan(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, plan.ID)
	assert.NotNil(t, plan.Workouts)
	assert.Empty(t, plan.Workouts)

	store.Profiles[profile.ID].CurrentPlanID = &older.ID

	plan, err = svc.CurrentPlan(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Starý", plan.Name)
	assert.Len(t, plan.Workouts, 1)
}

func TestPlanQuery_CurrentPlanWithoutProfile(t *testing.T) {
	svc, _, _ := createTestPlanQueryService(t)

	_, err := svc.CurrentPlan(context.Background(), "user_1")
	assert.ErrorIs(t, err, domainerrors.ErrWorkoutPlanNotFound)

	_, err = svc.CurrentMealPlan(context.Background(), "user_1")
	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}

func TestPlanQuery_PlanByID(t *testing.T) {
	svc, store, _ := createTestPlanQueryService(t)
	owner := seedProfile(store, "user_1", entity.AssessmentData{})
	seedProfile(store, "user_2", entity.AssessmentData{})

	private := storePlan(t, store, &entity.WorkoutPlan{ProfileID: owner.ID, Name: "Soukromý", Status: entity.PlanStatusReady})
	public := storePlan(t, store, &entity.WorkoutPlan{ProfileID: owner.ID, Name: "Veřejný", Status: entity.PlanStatusReady, IsPublic: true})

	tests := []struct {
		name    string
		userID  string
		planID  uuid.UUID
		wantErr error
	}{
		{name: "owner sees private plan", userID: "user_1", planID: private.ID},
		{name: "other user cannot see private plan", userID: "user_2", planID: private.ID, wantErr: domainerrors.ErrWorkoutPlanNotFound},
		{name: "user without profile cannot see private plan", userID: "user_3", planID: private.ID, wantErr: domainerrors.ErrWorkoutPlanNotFound},
		{name: "anyone sees public plan", userID: "user_2", planID: public.ID},
		{name: "unknown plan", userID: "user_1", planID: uuid.New(), wantErr: domainerrors.ErrWorkoutPlanNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.PlanByID(context.Background(), tt.userID, tt.planID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.planID, plan.ID)
		})
	}
}

func TestPlanQuery_PublicPlans(t *testing.T) {
	svc, store, _ := createTestPlanQueryService(t)
	profile := seedProfile(store, "user_1", entity.AssessmentData{})

	for range 3 {
		storePlan(t, store, &entity.WorkoutPlan{ProfileID: profile.ID, Status: entity.PlanStatusReady, IsPublic: true})
	}
	storePlan(t, store, &entity.WorkoutPlan{ProfileID: profile.ID, Status: entity.PlanStatusGenerating, IsPublic: true})
	storePlan(t, store, &entity.WorkoutPlan{ProfileID: profile.ID, Status: entity.PlanStatusReady})

	plans, err := svc.PublicPlans(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, plans, 3)

	plans, err = svc.PublicPlans(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestPlanQuery_RequestMealPlanRegeneration(t *testing.T) {
	svc, store, publisher := createTestPlanQueryService(t)
	seedProfile(store, "user_1", entity.AssessmentData{})

	var published *service.Event
	publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.Event) { published = event }).
		Return(nil).Once()

	eventID, err := svc.RequestMealPlanRegeneration(context.Background(), "user_1", entity.AssessmentData{Weight: 70})
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, published.ID, eventID)
	assert.Equal(t, constants.EventMealPlanRegenerate, published.Name)

	var input usecase.MealPlanRegenerationInput
	require.NoError(t, json.Unmarshal(published.Data, &input))
	assert.Equal(t, "user_1", input.UserID)
	assert.InDelta(t, 70.0, input.AssessmentData.Weight, 0.001)
}

func TestPlanQuery_RequestMealPlanRegenerationWithoutProfile(t *testing.T) {
	svc, _, _ := createTestPlanQueryService(t)

	_, err := svc.RequestMealPlanRegeneration(context.Background(), "user_1", entity.AssessmentData{})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
