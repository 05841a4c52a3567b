package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/response"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// BillingHandler serves checkout, invoices and the payment webhook.
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// PaymentIntentRequest carries the assessment answers collected before checkout.
type PaymentIntentRequest struct {
	PlanName       string                `json:"planName"`
	Email          string                `json:"email" validate:"omitempty,email"`
	AssessmentData entity.AssessmentData `json:"assessmentData"`
}

type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// CreatePaymentIntent starts a checkout for the signed-in user.
func (h *BillingHandler) CreatePaymentIntent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// Fall back to the address on the session token
	email := req.Email
	if email == "" {
		email = middleware.GetEmail(c)
	}

	out, err := h.billingUC.CreatePaymentIntent(c.Request().Context(), &usecase.CreatePaymentIntentInput{
		UserID:         userID,
		Email:          email,
		PlanName:       req.PlanName,
		AssessmentData: req.AssessmentData,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, PaymentIntentResponse{
		PaymentIntentID: out.PaymentIntentID,
		ClientSecret:    out.ClientSecret,
		Amount:          out.Amount,
		Currency:        out.Currency,
	})
}

// ListInvoices returns the invoices of the signed-in user.
func (h *BillingHandler) ListInvoices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invoices, err := h.billingUC.ListInvoices(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	views := make([]InvoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		views = append(views, newInvoiceView(invoice))
	}

	return response.Success(c, http.StatusOK, views)
}

// DownloadInvoice streams the invoice PDF and records the download.
func (h *BillingHandler) DownloadInvoice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError("id", "must be a UUID")
	}

	invoice, err := h.billingUC.DownloadInvoice(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return err
	}

	// Czech file name, as printed on the invoice
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "faktura-"+invoice.Number+".pdf"))

	return c.Blob(http.StatusOK, "application/pdf", invoice.PDF)
}

// StripeWebhook verifies and handles a payment provider event. Anything
// after signature verification is acknowledged with 200.
func (h *BillingHandler) StripeWebhook(c echo.Context) error {
	// The signature covers the raw bytes, so the body is read before any binding
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read webhook body")
	}

	ctx := c.Request().Context()
	if err := h.billingUC.HandlePaymentWebhook(ctx, payload, c.Request().Header); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "Payment webhook rejected", slog.Any("error", err))

		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
