package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFitnessProfileDefaults(t *testing.T) {
	p := NewFitnessProfile("user_1", AssessmentData{})

	assert.Equal(t, "user_1", p.UserID)
	assert.Equal(t, ExperienceBeginner, p.ExperienceLevel)
	assert.Equal(t, ActivityModeratelyActive, p.ActivityLevel)
	assert.Equal(t, GoalGeneralFitness, p.FitnessGoal)
	assert.Equal(t, []string{Monday, Wednesday, Friday}, p.AvailableDays)
	assert.Empty(t, p.Equipment)
	assert.True(t, p.MealPlanningEnabled)
	assert.Equal(t, "", p.Gender)
	assert.Equal(t, DefaultAge, p.Age)
	assert.Equal(t, DefaultHeightCm, p.HeightCm)
	assert.Equal(t, DefaultWeightKg, p.WeightKg)
}

func TestNewFitnessProfileKeepsAnswers(t *testing.T) {
	disabled := false
	p := NewFitnessProfile("user_2", AssessmentData{
		Age:                 41,
		Gender:              " Female ",
		Height:              168,
		Weight:              64.5,
		FitnessGoal:         "weight loss",
		ActivityLevel:       "lehce aktivní",
		ExperienceLevel:     "advanced",
		AvailableDays:       StringList{"friday", "Pondělí", "FRIDAY", "holiday"},
		Equipment:           StringList{"Činky", "none"},
		MealPlanningEnabled: &disabled,
	})

	assert.Equal(t, 41, p.Age)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, GoalWeightLoss, p.FitnessGoal)
	assert.Equal(t, ActivityLevel("lehce aktivní"), p.ActivityLevel)
	assert.Equal(t, ExperienceAdvanced, p.ExperienceLevel)
	assert.Equal(t, []string{Monday, Friday}, p.AvailableDays)
	assert.Equal(t, []string{"činky"}, p.Equipment)
	assert.False(t, p.MealPlanningEnabled)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, GoalMuscleGain, ParseFitnessGoal("muscle-gain"))
	assert.Equal(t, GoalGeneralFitness, ParseFitnessGoal("be happy"))
	assert.Equal(t, ActivityVeryActive, ParseActivityLevel("very active"))
	assert.Equal(t, ActivityModeratelyActive, ParseActivityLevel("  "))
	assert.Equal(t, ExperienceBeginner, ParseExperienceLevel(""))
	assert.Equal(t, []string{Monday, Wednesday, Friday}, NormalizeWeekdays(nil))
}
