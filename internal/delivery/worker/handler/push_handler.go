package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/infra/pubsub"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type TokenValidator func(ctx context.Context, token, audience string) error

func validateGoogleToken(ctx context.Context, token, audience string) error {
	_, err := idtoken.Validate(ctx, token, audience)

	return errors.WithStack(err)
}

// PushHandler receives queue deliveries and runs the matching workflow.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	dispatcher     usecase.EventDispatcher
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher usecase.EventDispatcher
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	verifyPushAuth := cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop

	audience := ""
	if cfg.PubSub != nil {
		audience = cfg.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  validateGoogleToken,
		dispatcher:     params.Dispatcher,
		logger:         params.Logger,
	}
}

// HandlePush answers 200 to acknowledge and 503 to have the message redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify the Pub/Sub OIDC token outside local development
	if h.verifyPushAuth {
		if err := h.verifyToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Malformed deliveries never succeed on redelivery, so they get 400
	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Malformed push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// The event carries the request id of the API call that published it.
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	// Dispatch only returns errors worth retrying; permanent failures are
	// logged and acknowledged there.
	if err := h.dispatcher.Dispatch(ctx, event); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) verifyToken(ctx context.Context, req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := req.Header.Get(echo.HeaderXForwardedProto)
		if scheme == "" {
			scheme = "https"
			if req.TLS == nil {
				scheme = "http"
			}
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	return h.validateToken(ctx, token, audience)
}
