package training

import "fitplan/internal/domain/entity"

type prescription struct {
	Sets int
	Reps int
	Rest int
}

//nolint:gochecknoglobals
var goalBase = map[entity.FitnessGoal]prescription{
	entity.GoalWeightLoss:     {Sets: 3, Reps: 15, Rest: 45},
	entity.GoalMuscleGain:     {Sets: 3, Reps: 12, Rest: 90},
	entity.GoalStrength:       {Sets: 4, Reps: 6, Rest: 180},
	entity.GoalEndurance:      {Sets: 3, Reps: 15, Rest: 45},
	entity.GoalFlexibility:    {Sets: 2, Reps: 10, Rest: 30},
	entity.GoalGeneralFitness: {Sets: 3, Reps: 12, Rest: 60},
}

const maxSets = 5

// prescribe applies the weekly progression: one extra set every three weeks,
// fewer reps and longer rest for strength and hypertrophy, more reps and
// shorter rest for conditioning goals, longer holds for timed work.
func prescribe(tpl ExerciseTemplate, profile *entity.FitnessProfile, week, position int) *entity.Exercise {
	base, ok := goalBase[profile.FitnessGoal]
	if !ok {
		base = goalBase[entity.GoalGeneralFitness]
	}

	block := (week - 1) / 3 // 0 for weeks 1-3, 1 for 4-6, 2 for 7-8
	sets := base.Sets + block
	switch profile.ExperienceLevel {
	case entity.ExperienceBeginner:
		sets--
	case entity.ExperienceAdvanced:
		sets++
	}
	sets = max(2, min(maxSets, sets))

	reps := base.Reps
	rest := base.Rest
	switch profile.FitnessGoal {
	case entity.GoalStrength:
		reps = max(3, reps-block)
		rest += 15 * block
	case entity.GoalMuscleGain:
		reps = max(8, reps-2*block)
		rest += 15 * block
	case entity.GoalWeightLoss, entity.GoalEndurance:
		reps += 2 * block
		rest = max(20, rest-10*block)
	default:
		reps += block
	}

	exercise := &entity.Exercise{
		Name:        tpl.Name,
		EnglishName: tpl.EnglishName,
		Sets:        sets,
		Reps:        reps,
		RestSeconds: rest,
		Position:    position,
	}

	if tpl.TimeBased {
		exercise.Reps = 0
		seconds := 30 + 5*(week-1)
		if tpl.Category == CategoryCardio {
			seconds = 40 + 5*(week-1)
		}
		exercise.DurationSeconds = seconds
	}

	return exercise
}
