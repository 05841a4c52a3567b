package video

import (
	"sort"
	"strings"
)

// czechExerciseNames maps common Czech exercise names to the English terms
// that return the best tutorial results.
var czechExerciseNames = map[string]string{
	"dřep":                   "squat",
	"dřepy":                  "squats",
	"dřep s činkou":          "barbell squat",
	"goblet dřep":            "goblet squat",
	"bulharský dřep":         "bulgarian split squat",
	"výpad":                  "lunge",
	"výpady":                 "lunges",
	"kliky":                  "push-ups",
	"klik":                   "push-up",
	"kliky na kolenou":       "knee push-ups",
	"shyby":                  "pull-ups",
	"přítahy v předklonu":    "bent over row",
	"přítahy jednoruč":       "one arm dumbbell row",
	"mrtvý tah":              "deadlift",
	"rumunský mrtvý tah":     "romanian deadlift",
	"tlak na lavici":         "bench press",
	"benchpress":             "bench press",
	"tlak nad hlavu":         "overhead press",
	"tlaky s jednoručkami":   "dumbbell shoulder press",
	"upažování":              "lateral raise",
	"bicepsový zdvih":        "bicep curl",
	"bicepsové zdvihy":       "bicep curls",
	"francouzský tlak":       "skull crushers",
	"kliky na bradlech":      "dips",
	"prkno":                  "plank",
	"boční prkno":            "side plank",
	"sklapovačky":            "crunches",
	"zkracovačky":            "crunches",
	"ruský twist":            "russian twist",
	"horolezec":              "mountain climbers",
	"horolezci":              "mountain climbers",
	"angličáky":              "burpees",
	"burpees":                "burpees",
	"skákací panák":          "jumping jacks",
	"most":                   "glute bridge",
	"hýžďový most":           "glute bridge",
	"výpony na lýtka":        "calf raises",
	"superman":               "superman exercise",
	"kočka kráva":            "cat cow stretch",
	"pozice dítěte":          "child's pose",
	"pes hlavou dolů":        "downward dog",
	"protažení hamstringů":   "hamstring stretch",
	"švihadlo":               "jump rope",
	"běh":                    "running",
	"veslování":              "rowing machine",
	"jízda na kole":          "cycling",
	"kettlebell švihy":       "kettlebell swing",
	"farmářská chůze":        "farmer's walk",
	"stahování kladky":       "lat pulldown",
	"legpress":               "leg press",
	"předkopávání":           "leg extension",
	"zakopávání":             "leg curl",
	"výstupy na bednu":       "box step-ups",
	"skoky na bednu":         "box jumps",
	"plavání":                "swimming",
	"chůze":                  "brisk walking",
	"dřepy s výskokem":       "jump squats",
	"výpady s jednoručkami":  "dumbbell lunges",
	"přítahy na hrazdě":      "inverted rows",
	"tlak na šikmé lavici":   "incline bench press",
	"rozpažování":            "dumbbell flyes",
	"zvedání nohou ve visu":  "hanging leg raises",
	"zvedání nohou vleže":    "lying leg raises",
	"protahování kyčlí":      "hip flexor stretch",
	"protažení ramen":        "shoulder stretch",
	"mobilita hrudní páteře": "thoracic spine mobility",
}

// dictionaryKeys is sorted longest first so the most specific phrase wins.
var dictionaryKeys = func() []string {
	keys := make([]string, 0, len(czechExerciseNames))
	for k := range czechExerciseNames {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	return keys
}()

// TranslateExerciseName returns the English term for a Czech exercise name,
// or "" when the dictionary knows no phrase in it.
func TranslateExerciseName(name string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if normalized == "" {
		return ""
	}

	if english, ok := czechExerciseNames[normalized]; ok {
		return english
	}

	for _, key := range dictionaryKeys {
		if strings.Contains(normalized, key) {
			return czechExerciseNames[key]
		}
	}

	return ""
}
