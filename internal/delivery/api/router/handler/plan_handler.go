package handler

import (
	"net/http"
	"strconv"

	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanQueryUC usecase.PlanQueryUsecase
}

// PlanHandler serves workout and meal plans of the signed-in user.
type PlanHandler struct {
	planQueryUC usecase.PlanQueryUsecase
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{planQueryUC: params.PlanQueryUC}
}

// RegenerateMealPlanRequest optionally overrides assessment values for the new targets.
type RegenerateMealPlanRequest struct {
	AssessmentData entity.AssessmentData `json:"assessmentData"`
}

// GetCurrentPlan returns the current plan. While it is generating the
// workout list is empty.
func (h *PlanHandler) GetCurrentPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plan, err := h.planQueryUC.CurrentPlan(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newWorkoutPlanView(plan, true))
}

// GetPlan returns a plan owned by the user or a public one.
func (h *PlanHandler) GetPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError("id", "must be a UUID")
	}

	plan, err := h.planQueryUC.PlanByID(c.Request().Context(), userID, planID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newWorkoutPlanView(plan, true))
}

// ListPublicPlans returns demo plans, newest first.
func (h *PlanHandler) ListPublicPlans(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.NewValidationError("limit", "must be a number")
		}
		limit = parsed
	}

	plans, err := h.planQueryUC.PublicPlans(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	views := make([]WorkoutPlanView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, newWorkoutPlanView(plan, false))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetCurrentMealPlan returns the active meal plan.
func (h *PlanHandler) GetCurrentMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	mealPlan, err := h.planQueryUC.CurrentMealPlan(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newMealPlanView(mealPlan))
}

// RegenerateMealPlan queues a new meal plan for the current profile.
func (h *PlanHandler) RegenerateMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	// An empty body keeps the stored assessment
	var req RegenerateMealPlanRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid meal plan input")
		}
	}

	eventID, err := h.planQueryUC.RequestMealPlanRegeneration(c.Request().Context(), userID, req.AssessmentData)
	if err != nil {
		return err
	}

	return response.Accepted(c, eventID)
}
