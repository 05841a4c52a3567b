// Package nutrition holds the pure nutrition math used by meal planning:
// daily targets, ingredient based macro recomputation and snack top-ups.
package nutrition

import (
	"math"
	"strings"

	domainerrors "fitplan/internal/domain/errors"
)

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
	fatShareOfCalories = 0.25

	defaultActivityMultiplier = 1.2
)

// Input is the subset of the assessment needed for daily targets.
type Input struct {
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	FitnessGoal   string
	ActivityLevel string
}

// Targets are daily energy and macro goals. Grams are rounded, BMR and TDEE are not.
type Targets struct {
	BMR       float64
	TDEE      float64
	Calories  int
	Protein   int
	Carbs     int
	Fat       int
	Anomalies []Anomaly
}

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"sedavý":            1.2,
	"sedavy":            1.2,
	"lightly active":    1.375,
	"lehce aktivní":     1.375,
	"lehce aktivni":     1.375,
	"moderately active": 1.55,
	"středně aktivní":   1.55,
	"stredne aktivni":   1.55,
	"very active":       1.725,
	"velmi aktivní":     1.725,
	"velmi aktivni":     1.725,
	"extremely active":  1.9,
	"extrémně aktivní":  1.9,
	"extremne aktivni":  1.9,
}

var goalCalorieDelta = map[string]float64{
	"WEIGHT_LOSS": -400,
	"MUSCLE_GAIN": 300,
	"ENDURANCE":   150,
	"STRENGTH":    200,
}

// CalculateTargets computes BMR (Mifflin-St Jeor), TDEE, calories and macro grams.
func CalculateTargets(in Input) (Targets, error) {
	if err := validateInput(in); err != nil {
		return Targets{}, err
	}

	var targets Targets

	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if isMale(in.Gender) {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := ActivityMultiplier(in.ActivityLevel)
	if !ok {
		targets.Anomalies = append(targets.Anomalies, Anomaly{
			Kind:   AnomalyUnknownActivity,
			Detail: in.ActivityLevel,
		})
	}

	tdee := bmr * multiplier
	goal := strings.ToUpper(strings.TrimSpace(in.FitnessGoal))
	calories := math.Round(tdee + goalCalorieDelta[goal])

	protein := in.WeightKg * proteinPerKg(goal)
	fatKcal := calories * fatShareOfCalories
	carbsKcal := calories - protein*kcalPerGramProtein - fatKcal
	if carbsKcal < 0 {
		targets.Anomalies = append(targets.Anomalies, Anomaly{
			Kind:   AnomalyNegativeCarbs,
			Detail: "protein and fat exceed total calories",
		})
		carbsKcal = 0
	}

	targets.BMR = bmr
	targets.TDEE = tdee
	targets.Calories = int(calories)
	targets.Protein = int(math.Round(protein))
	targets.Fat = int(math.Round(fatKcal / kcalPerGramFat))
	targets.Carbs = int(math.Round(carbsKcal / kcalPerGramCarbs))

	return targets, nil
}

// ActivityMultiplier resolves an English enum or Czech label. Unknown labels
// return the sedentary multiplier and false.
func ActivityMultiplier(level string) (float64, bool) {
	key := strings.ToLower(strings.TrimSpace(level))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	if m, ok := activityMultipliers[key]; ok {
		return m, true
	}

	return defaultActivityMultiplier, false
}

func validateInput(in Input) error {
	switch {
	case in.Age <= 0:
		return domainerrors.NewValidationError("age", "must be a positive number")
	case in.HeightCm <= 0:
		return domainerrors.NewValidationError("height", "must be a positive number")
	case in.WeightKg <= 0:
		return domainerrors.NewValidationError("weight", "must be a positive number")
	case strings.TrimSpace(in.FitnessGoal) == "":
		return domainerrors.NewValidationError("fitnessGoal", "is required")
	case strings.TrimSpace(in.ActivityLevel) == "":
		return domainerrors.NewValidationError("activityLevel", "is required")
	}

	return nil
}

func isMale(gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "man", "muž", "muz":
		return true
	}

	return false
}

func proteinPerKg(goal string) float64 {
	switch goal {
	case "WEIGHT_LOSS":
		return 1.8
	case "MUSCLE_GAIN":
		return 2.0
	}

	return 1.6
}
