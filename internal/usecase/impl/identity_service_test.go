package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"fitplan/config"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/mocks/memory"
	mockService "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityFixture struct {
	service   usecase.IdentityUsecase
	store     *memory.Store
	verifier  *mockService.MockIdentityWebhookVerifier
	publisher *mockService.MockEventPublisher
	mailer    *mockService.MockMailer
}

func createTestIdentityService(t *testing.T) *identityFixture {
	t.Helper()

	store := memory.NewStore()
	f := &identityFixture{
		store:     store,
		verifier:  mockService.NewMockIdentityWebhookVerifier(t),
		publisher: mockService.NewMockEventPublisher(t),
		mailer:    mockService.NewMockMailer(t),
	}
	f.service = NewIdentityService(IdentityServiceParams{
		Runner:    newTestRunner(store),
		TxManager: store,
		Verifier:  f.verifier,
		Publisher: f.publisher,
		Mailer:    f.mailer,
		Config:    &config.Config{Mail: &config.MailConfig{AppURL: "https://app.fitplan.cz"}},
		Logger:    newDiscardLogger(),
	})

	return f
}

func janaData() *usecase.IdentityUserData {
	return &usecase.IdentityUserData{
		ID:                    "user_1",
		FirstName:             "Jana",
		LastName:              "Nováková",
		PrimaryEmailAddressID: "idn_2",
		EmailAddresses: []usecase.IdentityEmailAddress{
			{ID: "idn_1", EmailAddress: "old@example.com"},
			{ID: "idn_2", EmailAddress: "jana@example.com"},
		},
	}
}

func TestPrimaryEmail(t *testing.T) {
	tests := []struct {
		name string
		data usecase.IdentityUserData
		want string
	}{
		{name: "primary id wins", data: *janaData(), want: "jana@example.com"},
		{
			name: "unknown primary falls back to first",
			data: usecase.IdentityUserData{
				PrimaryEmailAddressID: "idn_9",
				EmailAddresses:        []usecase.IdentityEmailAddress{{ID: "idn_1", EmailAddress: "a@example.com"}},
			},
			want: "a@example.com",
		},
		{name: "no addresses", data: usecase.IdentityUserData{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, primaryEmail(tt.data))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		data usecase.IdentityUserData
		want string
	}{
		{name: "full name", data: *janaData(), want: "Jana Nováková"},
		{name: "first name only", data: usecase.IdentityUserData{FirstName: " Jana "}, want: "Jana"},
		{
			name: "first email address",
			data: usecase.IdentityUserData{EmailAddresses: []usecase.IdentityEmailAddress{{EmailAddress: "a@example.com"}}},
			want: "a@example.com",
		},
		{name: "default", data: usecase.IdentityUserData{LastName: "Nováková"}, want: entity.DefaultUserName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.data))
		})
	}
}

func TestIdentity_ProvisionUser(t *testing.T) {
	f := createTestIdentityService(t)

	f.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(email service.Email) bool {
		return email.ToEmail == "jana@example.com" &&
			email.ToName == "Jana Nováková" &&
			strings.Contains(email.HTML, "https://app.fitplan.cz")
	})).Return(nil).Once()

	user, err := f.service.ProvisionUser(context.Background(), "user-created-user_1", janaData())
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)
	assert.Equal(t, "jana@example.com", f.store.Users["user_1"].Email)
	assert.Equal(t, "Jana Nováková", f.store.Users["user_1"].Name)

	// A redelivery finds the succeeded run and sends nothing.
	again, err := f.service.ProvisionUser(context.Background(), "user-created-user_1", janaData())
	require.NoError(t, err)
	assert.Equal(t, "user_1", again.ID)

	run := f.store.Run(constants.WorkflowIdentity, "user-created-user_1")
	require.NotNil(t, run)
	assert.Equal(t, entity.RunStatusSucceeded, run.Status)
}

func TestIdentity_ProvisionKeepsExistingUser(t *testing.T) {
	f := createTestIdentityService(t)
	f.store.Users["user_1"] = &entity.User{ID: "user_1", Email: "kept@example.com", Name: "Kept"}

	f.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(email service.Email) bool {
		return email.ToEmail == "kept@example.com"
	})).Return(nil).Once()

	user, err := f.service.ProvisionUser(context.Background(), "run-1", janaData())
	require.NoError(t, err)
	assert.Equal(t, "Kept", user.Name)
}

func TestIdentity_WelcomeFailureDoesNotFailRun(t *testing.T) {
	f := createTestIdentityService(t)

	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("sendgrid unavailable")).Times(4)

	user, err := f.service.ProvisionUser(context.Background(), "run-1", janaData())
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)
	assert.Contains(t, f.store.Users, "user_1")
}

func TestIdentity_ProvisionWithoutEmail(t *testing.T) {
	f := createTestIdentityService(t)

	user, err := f.service.ProvisionUser(context.Background(), "run-1", &usecase.IdentityUserData{ID: "user_2"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultUserName, user.Name)
}

func TestIdentity_ProvisionRequiresID(t *testing.T) {
	f := createTestIdentityService(t)

	_, err := f.service.ProvisionUser(context.Background(), "run-1", &usecase.IdentityUserData{})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}

func TestIdentity_HandleWebhook(t *testing.T) {
	f := createTestIdentityService(t)

	raw, err := json.Marshal(janaData())
	require.NoError(t, err)
	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(&service.IdentityWebhook{Type: "user.created", Data: raw}, nil).Once()

	var published *service.Event
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.Event) { published = event }).
		Return(nil).Once()

	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), http.Header{}))

	require.NotNil(t, published)
	assert.Equal(t, "user-created-user_1", published.ID)
	assert.Equal(t, constants.EventUserCreated, published.Name)

	var data usecase.IdentityUserData
	require.NoError(t, json.Unmarshal(published.Data, &data))
	assert.Equal(t, "Jana", data.FirstName)
}

func TestIdentity_HandleWebhookIgnoresOthers(t *testing.T) {
	f := createTestIdentityService(t)

	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(&service.IdentityWebhook{Type: "user.updated", Data: json.RawMessage(`{"id":"user_1"}`)}, nil).Once()
	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(&service.IdentityWebhook{Type: "user.created", Data: json.RawMessage(`{"first_name":"Jana"}`)}, nil).Once()

	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), http.Header{}))
	require.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), http.Header{}))
}

func TestIdentity_HandleWebhookInvalidSignature(t *testing.T) {
	f := createTestIdentityService(t)

	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSignature).Once()

	err := f.service.HandleWebhook(context.Background(), []byte(`{}`), http.Header{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
}

func TestIdentity_HandleWebhookPublishFailureIsAcked(t *testing.T) {
	f := createTestIdentityService(t)

	raw, err := json.Marshal(janaData())
	require.NoError(t, err)
	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(&service.IdentityWebhook{Type: "user.created", Data: raw}, nil).Once()
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

	assert.NoError(t, f.service.HandleWebhook(context.Background(), []byte(`{}`), http.Header{}))
}
