package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"
	"fitplan/internal/workflow"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Identity workflow steps
const (
	stepSendWelcome = "send-welcome"
)

const (
	identityEventUserCreated = "user.created"
	userCreatedEventPrefix   = "user-created-"
)

type identityState struct {
	Data        usecase.IdentityUserData `json:"data"`
	User        *entity.User             `json:"user,omitempty"`
	WelcomeSent bool                     `json:"welcomeSent"`
}

type identityService struct {
	runner    *workflow.Runner
	txManager repository.TransactionManager
	verifier  service.IdentityWebhookVerifier
	publisher service.EventPublisher
	mailer    service.Mailer
	appURL    string
	policies  stepPolicies
	logger    *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Runner    *workflow.Runner
	TxManager repository.TransactionManager
	Verifier  service.IdentityWebhookVerifier
	Publisher service.EventPublisher
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	appURL := ""
	if params.Config != nil && params.Config.Mail != nil {
		appURL = params.Config.Mail.AppURL
	}

	return &identityService{
		runner:    params.Runner,
		txManager: params.TxManager,
		verifier:  params.Verifier,
		publisher: params.Publisher,
		mailer:    params.Mailer,
		appURL:    appURL,
		policies:  newStepPolicies(params.Config),
		logger:    params.Logger,
	}
}

// HandleWebhook verifies an identity webhook and publishes user.created.
// Other webhook types are acknowledged without action.
func (srv *identityService) HandleWebhook(ctx context.Context, payload []byte, header http.Header) error {
	hook, err := srv.verifier.Verify(payload, header)
	if err != nil {
		return err
	}

	logger := requestLogger(ctx, srv.logger).With(slog.String("type", hook.Type))
	if hook.Type != identityEventUserCreated {
		logger.Debug("Ignoring identity webhook")

		return nil
	}

	var data usecase.IdentityUserData
	if err := json.Unmarshal(hook.Data, &data); err != nil || data.ID == "" {
		logger.WarnContext(ctx, "Identity webhook without a usable user", slog.Any("error", err))

		return nil
	}

	event, err := service.NewEvent(constants.EventUserCreated, data, deliverycontext.GetRequestIDFromContext(ctx))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build user created event", slog.Any("error", err))

		return nil
	}
	event.ID = userCreatedEventPrefix + data.ID

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user created event",
			slog.String("user_id", data.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

func (srv *identityService) definition() workflow.Definition[identityState] {
	p := srv.policies

	return workflow.Definition[identityState]{
		Name: constants.WorkflowIdentity,
		Steps: []workflow.Step[identityState]{
			dbStep(p, stepEnsureUser, srv.ensureUser),
			optional(llmStep(p, stepSendWelcome, srv.sendWelcome)),
		},
	}
}

// ProvisionUser runs the identity workflow for runKey.
func (srv *identityService) ProvisionUser(ctx context.Context, runKey string, data *usecase.IdentityUserData) (*entity.User, error) {
	if data == nil || strings.TrimSpace(data.ID) == "" {
		return nil, domainerrors.NewValidationError("id", "is required")
	}

	state, err := workflow.Execute(ctx, srv.runner, srv.definition(), runKey, identityState{Data: *data})
	if err != nil {
		return nil, errors.Wrap(err, "user provisioning failed")
	}

	return state.User, nil
}

func (srv *identityService) ensureUser(ctx context.Context, state *identityState) error {
	email := primaryEmail(state.Data)
	user := &entity.User{
		ID:    state.Data.ID,
		Email: email,
		Name:  displayName(state.Data),
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		created, err := userRepo.Upsert(ctx, user)
		if err != nil {
			return err
		}

		stored := user
		if !created {
			if stored, err = userRepo.FindByID(ctx, user.ID); err != nil {
				return err
			}
		}
		state.User = stored

		requestLogger(ctx, srv.logger).Info("User provisioned",
			slog.String("user_id", stored.ID),
			slog.Bool("created", created),
		)

		return nil
	})
}

func (srv *identityService) sendWelcome(ctx context.Context, state *identityState) error {
	if state.User == nil || state.User.Email == "" {
		requestLogger(ctx, srv.logger).Info("No email address, skipping welcome mail")

		return nil
	}

	subject, text, htmlBody := buildWelcomeEmail(state.User, srv.appURL)
	if err := srv.mailer.Send(ctx, service.Email{
		ToEmail: state.User.Email,
		ToName:  state.User.Name,
		Subject: subject,
		Text:    text,
		HTML:    htmlBody,
	}); err != nil {
		return err
	}
	state.WelcomeSent = true

	return nil
}

// primaryEmail returns the address matching the primary id, else the first one.
func primaryEmail(data usecase.IdentityUserData) string {
	for _, addr := range data.EmailAddresses {
		if addr.ID == data.PrimaryEmailAddressID && addr.EmailAddress != "" {
			return addr.EmailAddress
		}
	}
	for _, addr := range data.EmailAddresses {
		if addr.EmailAddress != "" {
			return addr.EmailAddress
		}
	}

	return ""
}

// displayName picks full name, first name, the first email address, then the default.
func displayName(data usecase.IdentityUserData) string {
	first := strings.TrimSpace(data.FirstName)
	last := strings.TrimSpace(data.LastName)

	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case len(data.EmailAddresses) > 0 && data.EmailAddresses[0].EmailAddress != "":
		return data.EmailAddresses[0].EmailAddress
	default:
		return entity.DefaultUserName
	}
}
