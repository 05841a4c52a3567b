package training

import (
	"fmt"
	"strings"

	"fitplan/internal/domain/entity"
)

// session is one workout shape: a Czech focus label and its category slots.
type session struct {
	Focus string
	Slots []Category
}

//nolint:gochecknoglobals
var goalSessions = map[entity.FitnessGoal][]session{
	entity.GoalWeightLoss: {
		{Focus: "Kardio a kruhový trénink", Slots: []Category{CategoryCardio, CategoryLower, CategoryPush, CategoryCardio, CategoryCore}},
		{Focus: "Celé tělo v kruhu", Slots: []Category{CategoryLower, CategoryPull, CategoryCardio, CategoryCore, CategoryCardio}},
	},
	entity.GoalMuscleGain: {
		{Focus: "Tlaky: hrudník, ramena, triceps", Slots: []Category{CategoryPush, CategoryPush, CategoryPush, CategoryCore}},
		{Focus: "Tahy: záda a biceps", Slots: []Category{CategoryPull, CategoryPull, CategoryPull, CategoryCore}},
		{Focus: "Nohy a hýždě", Slots: []Category{CategoryLower, CategoryLower, CategoryLower, CategoryCore}},
	},
	entity.GoalStrength: {
		{Focus: "Síla: dřep", Slots: []Category{CategoryHeavyLower, CategoryLower, CategoryPush, CategoryCore}},
		{Focus: "Síla: tlak", Slots: []Category{CategoryHeavyPush, CategoryPush, CategoryPull, CategoryCore}},
		{Focus: "Síla: tah", Slots: []Category{CategoryHeavyPull, CategoryPull, CategoryLower, CategoryCore}},
	},
	entity.GoalEndurance: {
		{Focus: "Vytrvalost", Slots: []Category{CategoryCardio, CategoryCardio, CategoryLower, CategoryCore}},
		{Focus: "Intervaly", Slots: []Category{CategoryCardio, CategoryLower, CategoryPush, CategoryCardio}},
	},
	entity.GoalFlexibility: {
		{Focus: "Mobilita", Slots: []Category{CategoryMobility, CategoryMobility, CategoryMobility, CategoryCore}},
		{Focus: "Protažení a stabilita", Slots: []Category{CategoryMobility, CategoryMobility, CategoryCore, CategoryLower}},
	},
	entity.GoalGeneralFitness: {
		{Focus: "Celé tělo A", Slots: []Category{CategoryLower, CategoryPush, CategoryPull, CategoryCore}},
		{Focus: "Celé tělo B", Slots: []Category{CategoryLower, CategoryPull, CategoryPush, CategoryCardio}},
	},
}

//nolint:gochecknoglobals
var planNames = map[entity.FitnessGoal]string{
	entity.GoalWeightLoss:     "Plán hubnutí",
	entity.GoalMuscleGain:     "Plán nabírání svalové hmoty",
	entity.GoalEndurance:      "Plán vytrvalosti",
	entity.GoalStrength:       "Silový plán",
	entity.GoalFlexibility:    "Plán flexibility a mobility",
	entity.GoalGeneralFitness: "Plán celkové kondice",
}

//nolint:gochecknoglobals
var czechWeekdays = map[string]string{
	entity.Monday:    "pondělí",
	entity.Tuesday:   "úterý",
	entity.Wednesday: "středa",
	entity.Thursday:  "čtvrtek",
	entity.Friday:    "pátek",
	entity.Saturday:  "sobota",
	entity.Sunday:    "neděle",
}

// PlanName returns the localized plan name for a goal.
func PlanName(goal entity.FitnessGoal) string {
	if name, ok := planNames[goal]; ok {
		return name
	}

	return planNames[entity.GoalGeneralFitness]
}

// GenerateWorkouts returns len(profile.AvailableDays) workouts for each of
// the entity.PlanDurationWeeks weeks. The same profile always produces the same program.
func GenerateWorkouts(profile *entity.FitnessProfile) []*entity.Workout {
	sessions, ok := goalSessions[profile.FitnessGoal]
	if !ok {
		sessions = goalSessions[entity.GoalGeneralFitness]
	}

	days := profile.AvailableDays
	if len(days) == 0 {
		days = entity.DefaultAvailableDays
	}

	pool := availableExercises(profile.Equipment)
	workouts := make([]*entity.Workout, 0, len(days)*entity.PlanDurationWeeks)

	sequence := 0
	for week := 1; week <= entity.PlanDurationWeeks; week++ {
		for dayIdx, day := range days {
			s := sessions[sequence%len(sessions)]
			workout := &entity.Workout{
				Week:     week,
				Day:      day,
				Name:     fmt.Sprintf("Týden %d, %s: %s", week, czechWeekdays[day], s.Focus),
				Focus:    s.Focus,
				Position: dayIdx + 1,
			}
			workout.Exercises = pickExercises(pool, s, profile, week, sequence)
			workouts = append(workouts, workout)
			sequence++
		}
	}

	return workouts
}

func pickExercises(pool map[Category][]ExerciseTemplate, s session, profile *entity.FitnessProfile, week, sequence int) []*entity.Exercise {
	used := make(map[string]bool, len(s.Slots))
	exercises := make([]*entity.Exercise, 0, len(s.Slots))

	for slot, category := range s.Slots {
		candidates := pool[category]
		if len(candidates) == 0 {
			candidates = pool[fallbackCategory[category]]
		}
		if len(candidates) == 0 {
			continue
		}

		// rotate weekly so the program varies, skip repeats inside one workout
		start := (sequence/len(profileDays(profile)) + slot + week) % len(candidates)
		for i := 0; i < len(candidates); i++ {
			tpl := candidates[(start+i)%len(candidates)]
			if used[tpl.EnglishName] {
				continue
			}
			used[tpl.EnglishName] = true
			exercises = append(exercises, prescribe(tpl, profile, week, len(exercises)+1))

			break
		}
	}

	return exercises
}

func profileDays(profile *entity.FitnessProfile) []string {
	if len(profile.AvailableDays) == 0 {
		return entity.DefaultAvailableDays
	}

	return profile.AvailableDays
}

// availableExercises indexes the library by category, keeping bodyweight
// exercises and those whose equipment the profile lists.
func availableExercises(equipment []string) map[Category][]ExerciseTemplate {
	owned := ownedEquipment(equipment)
	pool := make(map[Category][]ExerciseTemplate)
	for _, tpl := range library {
		if tpl.Equipment != "" && !owned[tpl.Equipment] {
			continue
		}
		pool[tpl.Category] = append(pool[tpl.Category], tpl)
	}

	return pool
}

func ownedEquipment(equipment []string) map[string]bool {
	owned := make(map[string]bool)
	for _, item := range equipment {
		item = strings.ToLower(item)
		for _, word := range fullGym {
			if strings.Contains(item, word) {
				for tag := range equipmentSynonyms {
					owned[tag] = true
				}
			}
		}
		for tag, words := range equipmentSynonyms {
			for _, word := range words {
				if strings.Contains(item, word) {
					owned[tag] = true
				}
			}
		}
	}

	return owned
}
