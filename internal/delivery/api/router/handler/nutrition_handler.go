package handler

import (
	"net/http"

	"fitplan/internal/delivery/api/response"
	"fitplan/internal/domain/nutrition"

	"github.com/labstack/echo/v4"
)

// NutritionHandler exposes the daily target calculator.
type NutritionHandler struct{}

// NewNutritionHandler is the constructor for NutritionHandler
func NewNutritionHandler() *NutritionHandler {
	return &NutritionHandler{}
}

// TargetsRequest is the assessment subset the calculator needs.
type TargetsRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	FitnessGoal   string  `json:"fitnessGoal"`
	ActivityLevel string  `json:"activityLevel"`
}

// TargetsResponse holds daily energy and macro targets.
type TargetsResponse struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
}

// CalculateTargets computes the daily targets. Invalid input yields 400.
func (h *NutritionHandler) CalculateTargets(c echo.Context) error {
	var req TargetsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid nutrition input")
	}

	targets, err := nutrition.CalculateTargets(nutrition.Input{
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.Height,
		WeightKg:      req.Weight,
		FitnessGoal:   req.FitnessGoal,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, TargetsResponse{
		BMR:      targets.BMR,
		TDEE:     targets.TDEE,
		Calories: targets.Calories,
		Protein:  targets.Protein,
		Carbs:    targets.Carbs,
		Fat:      targets.Fat,
	})
}
