package handler

import (
	"io"
	"log/slog"
	"net/http"

	"fitplan/internal/delivery/api/response"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler receives identity provider webhooks.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// ClerkWebhook verifies the Svix signature and forwards user.created.
func (h *IdentityHandler) ClerkWebhook(c echo.Context) error {
	// Svix signs the raw body
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read webhook body")
	}

	ctx := c.Request().Context()
	if err := h.identityUC.HandleWebhook(ctx, payload, c.Request().Header); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "Identity webhook rejected", slog.Any("error", err))

		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
