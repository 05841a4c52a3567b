package handler

import (
	"net/http"
	"strconv"

	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/response"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShoppingListHandlerParams holds dependencies for ShoppingListHandler, injected by Fx.
type ShoppingListHandlerParams struct {
	fx.In

	ShoppingListUC usecase.ShoppingListUsecase
}

// ShoppingListHandler requests and returns weekly shopping lists.
type ShoppingListHandler struct {
	shoppingListUC usecase.ShoppingListUsecase
}

// NewShoppingListHandler is the constructor for ShoppingListHandler
func NewShoppingListHandler(params ShoppingListHandlerParams) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingListUC: params.ShoppingListUC}
}

// CreateShoppingListRequest represents the request body for a new shopping list
type CreateShoppingListRequest struct {
	WeekNumber int `json:"weekNumber" validate:"required,min=1"`
}

// CreateShoppingList queues the list for a week of the active meal plan.
func (h *ShoppingListHandler) CreateShoppingList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateShoppingListRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shopping list input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	eventID, err := h.shoppingListUC.RequestShoppingList(c.Request().Context(), userID, req.WeekNumber)
	if err != nil {
		return err
	}

	return response.Accepted(c, eventID)
}

// GetShoppingList returns the latest list generated for the week.
func (h *ShoppingListHandler) GetShoppingList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 {
		return domainerrors.NewValidationError("week", "must be a positive number")
	}

	project, err := h.shoppingListUC.LatestShoppingList(c.Request().Context(), userID, week)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newShoppingListView(project))
}
