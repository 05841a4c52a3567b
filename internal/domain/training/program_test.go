package training

import (
	"testing"

	"fitplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(goal entity.FitnessGoal, days []string, equipment []string) *entity.FitnessProfile {
	return &entity.FitnessProfile{
		FitnessGoal:     goal,
		ExperienceLevel: entity.ExperienceIntermediate,
		AvailableDays:   days,
		Equipment:       equipment,
	}
}

func TestGenerateWorkoutsCount(t *testing.T) {
	for _, days := range [][]string{
		{entity.Monday},
		{entity.Monday, entity.Wednesday, entity.Friday},
		{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday},
	} {
		workouts := GenerateWorkouts(testProfile(entity.GoalGeneralFitness, days, nil))
		assert.Len(t, workouts, len(days)*entity.PlanDurationWeeks)
	}
}

func TestGenerateWorkoutsIsDeterministic(t *testing.T) {
	profile := testProfile(entity.GoalMuscleGain, []string{entity.Tuesday, entity.Thursday}, []string{"činky"})

	a := GenerateWorkouts(profile)
	b := GenerateWorkouts(profile)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		require.Equal(t, len(a[i].Exercises), len(b[i].Exercises))
		for j := range a[i].Exercises {
			assert.Equal(t, a[i].Exercises[j].EnglishName, b[i].Exercises[j].EnglishName)
		}
	}
}

func TestGenerateWorkoutsTagsWeekAndDay(t *testing.T) {
	workouts := GenerateWorkouts(testProfile(entity.GoalWeightLoss, []string{entity.Monday, entity.Friday}, nil))

	assert.Equal(t, 1, workouts[0].Week)
	assert.Equal(t, entity.Monday, workouts[0].Day)
	assert.Equal(t, 1, workouts[0].Position)
	assert.Equal(t, entity.Friday, workouts[1].Day)
	assert.Equal(t, 2, workouts[1].Position)
	assert.Equal(t, 8, workouts[len(workouts)-1].Week)

	for _, w := range workouts {
		assert.NotEmpty(t, w.Exercises)
		seen := map[string]bool{}
		for _, ex := range w.Exercises {
			assert.NotEmpty(t, ex.Name)
			assert.NotEmpty(t, ex.EnglishName)
			assert.False(t, seen[ex.EnglishName], "duplicate exercise in %s", w.Name)
			seen[ex.EnglishName] = true
		}
	}
}

func TestGenerateWorkoutsRespectsEquipment(t *testing.T) {
	workouts := GenerateWorkouts(testProfile(entity.GoalStrength, []string{entity.Monday, entity.Wednesday, entity.Friday}, nil))

	bodyweight := map[string]bool{}
	for _, tpl := range library {
		if tpl.Equipment == "" {
			bodyweight[tpl.EnglishName] = true
		}
	}

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			assert.True(t, bodyweight[ex.EnglishName], "%s needs equipment", ex.EnglishName)
		}
	}

	withBarbell := GenerateWorkouts(testProfile(entity.GoalStrength, []string{entity.Monday}, []string{"posilovna"}))
	assert.Equal(t, "Barbell", withBarbell[0].Exercises[0].EnglishName[:7])
}

func TestPrescribeProgression(t *testing.T) {
	profile := testProfile(entity.GoalStrength, nil, nil)
	squat := ExerciseTemplate{Name: "Dřep s činkou", EnglishName: "Barbell Back Squat", Category: CategoryHeavyLower}

	w1 := prescribe(squat, profile, 1, 1)
	w8 := prescribe(squat, profile, 8, 1)
	assert.Equal(t, 4, w1.Sets)
	assert.Equal(t, 6, w1.Reps)
	assert.Equal(t, 180, w1.RestSeconds)
	assert.Equal(t, 5, w8.Sets)
	assert.Equal(t, 4, w8.Reps)
	assert.Equal(t, 210, w8.RestSeconds)

	plank := ExerciseTemplate{Name: "Prkno", EnglishName: "Plank", Category: CategoryCore, TimeBased: true}
	hold := prescribe(plank, profile, 3, 2)
	assert.Equal(t, 0, hold.Reps)
	assert.Equal(t, 40, hold.DurationSeconds)
	assert.Equal(t, 2, hold.Position)
}

func TestPlanName(t *testing.T) {
	assert.Equal(t, "Plán hubnutí", PlanName(entity.GoalWeightLoss))
	assert.Equal(t, "Plán celkové kondice", PlanName(entity.FitnessGoal("unknown")))
}
