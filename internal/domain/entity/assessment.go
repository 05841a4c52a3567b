package entity

import (
	"encoding/json"
	"strings"
)

// AssessmentData is the questionnaire payload supplied at checkout or on regeneration.
// Every field is optional; missing values are defaulted when a profile is built.
type AssessmentData struct {
	Name                string     `json:"name,omitempty"`
	Age                 int        `json:"age,omitempty"`
	Gender              string     `json:"gender,omitempty"`
	Height              float64    `json:"height,omitempty"`
	Weight              float64    `json:"weight,omitempty"`
	TargetWeight        *float64   `json:"targetWeight,omitempty"`
	FitnessGoal         string     `json:"fitnessGoal,omitempty"`
	ActivityLevel       string     `json:"activityLevel,omitempty"`
	ExperienceLevel     string     `json:"experienceLevel,omitempty"`
	AvailableDays       StringList `json:"availableDays,omitempty"`
	Equipment           StringList `json:"equipment,omitempty"`
	WorkoutDuration     int        `json:"workoutDuration,omitempty"`
	MealPlanningEnabled *bool      `json:"mealPlanningEnabled,omitempty"`
	DietaryRestrictions StringList `json:"dietaryRestrictions,omitempty"`
	Allergies           StringList `json:"allergies,omitempty"`
}

// StringList decodes a list that clients send either as a JSON array, as a
// JSON array serialized into a string, or as a comma separated string.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = cleanList(items)

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &items); err == nil {
			*l = cleanList(items)

			return nil
		}
	}

	*l = cleanList(strings.Split(text, ","))

	return nil
}

func cleanList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
