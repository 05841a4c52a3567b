package entity

import "strings"

// Profile defaults applied when the assessment leaves a field out.
const (
	DefaultAge                    = 30
	DefaultHeightCm               = 175.0
	DefaultWeightKg               = 75.0
	DefaultWorkoutDurationMinutes = 45
	DefaultExperienceLevel        = ExperienceBeginner
	DefaultActivityLevel          = ActivityModeratelyActive
	DefaultFitnessGoal            = GoalGeneralFitness
)

// DefaultAvailableDays is used when no valid training day was given.
var DefaultAvailableDays = []string{Monday, Wednesday, Friday}

var weekdayOrder = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayAliases = map[string]string{
	"pondělí": Monday,
	"pondeli": Monday,
	"úterý":   Tuesday,
	"utery":   Tuesday,
	"středa":  Wednesday,
	"streda":  Wednesday,
	"čtvrtek": Thursday,
	"ctvrtek": Thursday,
	"pátek":   Friday,
	"patek":   Friday,
	"sobota":  Saturday,
	"neděle":  Sunday,
	"nedele":  Sunday,
}

// NewFitnessProfile builds a profile from assessment answers, filling every
// missing or unrecognised field with its default.
func NewFitnessProfile(userID string, a AssessmentData) *FitnessProfile {
	p := &FitnessProfile{
		UserID:                 userID,
		Age:                    a.Age,
		Gender:                 strings.ToLower(strings.TrimSpace(a.Gender)),
		HeightCm:               a.Height,
		WeightKg:               a.Weight,
		TargetWeightKg:         a.TargetWeight,
		FitnessGoal:            ParseFitnessGoal(a.FitnessGoal),
		ActivityLevel:          ParseActivityLevel(a.ActivityLevel),
		ExperienceLevel:        ParseExperienceLevel(a.ExperienceLevel),
		AvailableDays:          NormalizeWeekdays(a.AvailableDays),
		Equipment:              lowerAll(a.Equipment),
		WorkoutDurationMinutes: a.WorkoutDuration,
		MealPlanningEnabled:    a.MealPlanningEnabled == nil || *a.MealPlanningEnabled,
		DietaryRestrictions:    []string(a.DietaryRestrictions),
		Allergies:              []string(a.Allergies),
	}

	if p.Age <= 0 {
		p.Age = DefaultAge
	}
	if p.HeightCm <= 0 {
		p.HeightCm = DefaultHeightCm
	}
	if p.WeightKg <= 0 {
		p.WeightKg = DefaultWeightKg
	}
	if p.WorkoutDurationMinutes <= 0 {
		p.WorkoutDurationMinutes = DefaultWorkoutDurationMinutes
	}
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}

	return p
}

func enumKey(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))

	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// ParseFitnessGoal maps free text onto a goal, defaulting to GENERAL_FITNESS.
func ParseFitnessGoal(s string) FitnessGoal {
	g := FitnessGoal(enumKey(s))
	if g.Valid() {
		return g
	}

	return DefaultFitnessGoal
}

// ParseActivityLevel normalises the English enum spelling. Any other
// non-empty label (e.g. a localized one) is kept as given so the
// nutrition calculator can still match it.
func ParseActivityLevel(s string) ActivityLevel {
	if strings.TrimSpace(s) == "" {
		return DefaultActivityLevel
	}

	switch l := ActivityLevel(enumKey(s)); l {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive:
		return l
	}

	return ActivityLevel(strings.TrimSpace(s))
}

// ParseExperienceLevel maps free text onto an experience level, defaulting to BEGINNER.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch l := ExperienceLevel(enumKey(s)); l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return l
	}

	return DefaultExperienceLevel
}

// NormalizeWeekdays returns the recognised days in calendar order without
// duplicates. Czech day names are accepted.
func NormalizeWeekdays(days []string) []string {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		key := strings.ToLower(strings.TrimSpace(d))
		if alias, ok := weekdayAliases[key]; ok {
			seen[alias] = true

			continue
		}
		seen[strings.ToUpper(key)] = true
	}

	out := make([]string, 0, len(seen))
	for _, d := range weekdayOrder {
		if seen[d] {
			out = append(out, d)
		}
	}

	if len(out) == 0 {
		return append([]string(nil), DefaultAvailableDays...)
	}

	return out
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" && item != "none" && item != "žádné" {
			out = append(out, item)
		}
	}

	return out
}
