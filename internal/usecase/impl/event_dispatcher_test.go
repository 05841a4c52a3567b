package impl

import (
	"context"
	"encoding/json"
	"testing"

	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"
	"fitplan/internal/workflow"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanGeneration struct {
	runKey string
	input  *usecase.PlanGenerationInput
	err    error
}

func (f *fakePlanGeneration) Generate(_ context.Context, runKey string, input *usecase.PlanGenerationInput) (*usecase.PlanGenerationOutput, error) {
	f.runKey, f.input = runKey, input
	if f.err != nil {
		return nil, f.err
	}

	return &usecase.PlanGenerationOutput{}, nil
}

type fakeMealPlans struct{ runKey string }

func (f *fakeMealPlans) Regenerate(_ context.Context, runKey string, _ *usecase.MealPlanRegenerationInput) (*usecase.MealPlanRegenerationOutput, error) {
	f.runKey = runKey

	return &usecase.MealPlanRegenerationOutput{}, nil
}

type fakeShoppingLists struct {
	usecase.ShoppingListUsecase
	input *usecase.ShoppingListInput
}

func (f *fakeShoppingLists) Generate(_ context.Context, _ string, input *usecase.ShoppingListInput) (*usecase.ShoppingListOutput, error) {
	f.input = input

	return &usecase.ShoppingListOutput{}, nil
}

type fakeIdentity struct {
	usecase.IdentityUsecase
	data *usecase.IdentityUserData
}

func (f *fakeIdentity) ProvisionUser(_ context.Context, _ string, data *usecase.IdentityUserData) (*entity.User, error) {
	f.data = data

	return &entity.User{ID: data.ID}, nil
}

type dispatcherFixture struct {
	dispatcher usecase.EventDispatcher
	plans      *fakePlanGeneration
	meals      *fakeMealPlans
	lists      *fakeShoppingLists
	identity   *fakeIdentity
}

func createTestDispatcher() *dispatcherFixture {
	f := &dispatcherFixture{
		plans:    &fakePlanGeneration{},
		meals:    &fakeMealPlans{},
		lists:    &fakeShoppingLists{},
		identity: &fakeIdentity{},
	}
	f.dispatcher = NewEventDispatcher(EventDispatcherParams{
		PlanGeneration: f.plans,
		MealPlans:      f.meals,
		ShoppingLists:  f.lists,
		Identity:       f.identity,
		Logger:         newDiscardLogger(),
	})

	return f
}

func newTestEvent(t *testing.T, id, name string, data any) *service.Event {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return &service.Event{ID: id, Name: name, Data: raw}
}

func TestDispatch_RoutesByName(t *testing.T) {
	f := createTestDispatcher()
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Dispatch(ctx, newTestEvent(t, "pi-pi_1", constants.EventFitnessPlanGenerate,
		usecase.PlanGenerationInput{UserID: "user_1", PlanName: "Plán"})))
	require.NoError(t, f.dispatcher.Dispatch(ctx, newTestEvent(t, "evt-2", constants.EventMealPlanRegenerate,
		usecase.MealPlanRegenerationInput{UserID: "user_1"})))
	require.NoError(t, f.dispatcher.Dispatch(ctx, newTestEvent(t, "evt-3", constants.EventShoppingListGenerate,
		usecase.ShoppingListInput{UserID: "user_1", WeekNumber: 2})))
	require.NoError(t, f.dispatcher.Dispatch(ctx, newTestEvent(t, "user-created-user_1", constants.EventUserCreated,
		usecase.IdentityUserData{ID: "user_1"})))

	assert.Equal(t, "pi-pi_1", f.plans.runKey)
	assert.Equal(t, "Plán", f.plans.input.PlanName)
	assert.Equal(t, "evt-2", f.meals.runKey)
	assert.Equal(t, 2, f.lists.input.WeekNumber)
	assert.Equal(t, "user_1", f.identity.data.ID)
}

func TestDispatch_UnknownEventIsAcked(t *testing.T) {
	f := createTestDispatcher()

	err := f.dispatcher.Dispatch(context.Background(), &service.Event{ID: "evt-1", Name: "plan.deleted"})

	assert.NoError(t, err)
}

func TestDispatch_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "exhausted step is acked", err: errors.Wrap(&workflow.StepError{
			Workflow: constants.WorkflowPlanGeneration, Step: stepGenerateMealPlan, Attempts: 4,
			Err: domainerrors.NewUpstreamError("llm", errors.New("timeout")),
		}, "plan generation failed")},
		{name: "transient failure is redelivered", err: domainerrors.ErrVersionConflict, wantErr: true},
		{name: "unknown failure is redelivered", err: errors.New("connection reset"), wantErr: true},
		{name: "run held by another worker is redelivered", err: errors.Wrap(domainerrors.ErrRunInProgress, "plan generation failed"), wantErr: true},
		{name: "permanent failure is acked", err: domainerrors.NewValidationError("userId", "is required")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDispatcher()
			f.plans.err = tt.err

			err := f.dispatcher.Dispatch(context.Background(),
				newTestEvent(t, "evt-1", constants.EventFitnessPlanGenerate, usecase.PlanGenerationInput{UserID: "user_1"}))

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDispatch_MalformedDataIsAcked(t *testing.T) {
	f := createTestDispatcher()

	err := f.dispatcher.Dispatch(context.Background(), &service.Event{
		ID:   "evt-1",
		Name: constants.EventFitnessPlanGenerate,
		Data: json.RawMessage(`"not an object"`),
	})

	assert.NoError(t, err)
	assert.Empty(t, f.plans.runKey)
}
