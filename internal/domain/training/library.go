// Package training builds deterministic workout programs from a fitness profile.
package training

// Category groups exercises that can fill the same slot of a session.
type Category string

const (
	CategoryLower        Category = "lower"
	CategoryPush         Category = "push"
	CategoryPull         Category = "pull"
	CategoryCore         Category = "core"
	CategoryCardio       Category = "cardio"
	CategoryMobility     Category = "mobility"
	CategoryHeavyLower   Category = "heavy_lower"
	CategoryHeavyPush    Category = "heavy_push"
	CategoryHeavyPull    Category = "heavy_pull"
)

// Equipment tags. An empty tag means bodyweight.
const (
	EquipDumbbell   = "dumbbell"
	EquipBarbell    = "barbell"
	EquipKettlebell = "kettlebell"
	EquipPullUpBar  = "pullup_bar"
	EquipMachine    = "machine"
	EquipBand       = "band"
)

// ExerciseTemplate is a library entry. TimeBased exercises are prescribed in seconds.
type ExerciseTemplate struct {
	Name        string
	EnglishName string
	Category    Category
	Equipment   string
	TimeBased   bool
}

//nolint:gochecknoglobals
var library = []ExerciseTemplate{
	// lower body
	{Name: "Dřepy", EnglishName: "Bodyweight Squat", Category: CategoryLower},
	{Name: "Výpady", EnglishName: "Lunges", Category: CategoryLower},
	{Name: "Hýžďový most", EnglishName: "Glute Bridge", Category: CategoryLower},
	{Name: "Bulharský dřep", EnglishName: "Bulgarian Split Squat", Category: CategoryLower},
	{Name: "Výpony na lýtka", EnglishName: "Calf Raises", Category: CategoryLower},
	{Name: "Goblet dřep", EnglishName: "Goblet Squat", Category: CategoryLower, Equipment: EquipDumbbell},
	{Name: "Rumunský mrtvý tah s jednoručkami", EnglishName: "Dumbbell Romanian Deadlift", Category: CategoryLower, Equipment: EquipDumbbell},
	{Name: "Legpress", EnglishName: "Leg Press", Category: CategoryLower, Equipment: EquipMachine},

	// upper push
	{Name: "Kliky", EnglishName: "Push-Up", Category: CategoryPush},
	{Name: "Kliky na kolenou", EnglishName: "Knee Push-Up", Category: CategoryPush},
	{Name: "Pike kliky", EnglishName: "Pike Push-Up", Category: CategoryPush},
	{Name: "Dipy na židli", EnglishName: "Bench Dips", Category: CategoryPush},
	{Name: "Tlaky s jednoručkami nad hlavu", EnglishName: "Dumbbell Shoulder Press", Category: CategoryPush, Equipment: EquipDumbbell},
	{Name: "Tlak s jednoručkami na lavici", EnglishName: "Dumbbell Bench Press", Category: CategoryPush, Equipment: EquipDumbbell},
	{Name: "Upažování s jednoručkami", EnglishName: "Dumbbell Lateral Raise", Category: CategoryPush, Equipment: EquipDumbbell},

	// upper pull
	{Name: "Přítahy ručníku ve dveřích", EnglishName: "Towel Door Row", Category: CategoryPull},
	{Name: "Superman", EnglishName: "Superman Exercise", Category: CategoryPull},
	{Name: "Přítahy jednoruč", EnglishName: "One Arm Dumbbell Row", Category: CategoryPull, Equipment: EquipDumbbell},
	{Name: "Bicepsový zdvih", EnglishName: "Dumbbell Bicep Curl", Category: CategoryPull, Equipment: EquipDumbbell},
	{Name: "Shyby", EnglishName: "Pull-Up", Category: CategoryPull, Equipment: EquipPullUpBar},
	{Name: "Přítahy gumy k hrudi", EnglishName: "Resistance Band Row", Category: CategoryPull, Equipment: EquipBand},
	{Name: "Stahování kladky", EnglishName: "Lat Pulldown", Category: CategoryPull, Equipment: EquipMachine},

	// core
	{Name: "Prkno", EnglishName: "Plank", Category: CategoryCore, TimeBased: true},
	{Name: "Boční prkno", EnglishName: "Side Plank", Category: CategoryCore, TimeBased: true},
	{Name: "Sklapovačky", EnglishName: "Crunches", Category: CategoryCore},
	{Name: "Ruský twist", EnglishName: "Russian Twist", Category: CategoryCore},
	{Name: "Mrtvý brouk", EnglishName: "Dead Bug", Category: CategoryCore},
	{Name: "Zvedání nohou vleže", EnglishName: "Lying Leg Raises", Category: CategoryCore},

	// cardio
	{Name: "Skákací panák", EnglishName: "Jumping Jacks", Category: CategoryCardio, TimeBased: true},
	{Name: "Horolezec", EnglishName: "Mountain Climbers", Category: CategoryCardio, TimeBased: true},
	{Name: "Angličáky", EnglishName: "Burpees", Category: CategoryCardio, TimeBased: true},
	{Name: "Skipping", EnglishName: "High Knees", Category: CategoryCardio, TimeBased: true},
	{Name: "Dřepy s výskokem", EnglishName: "Jump Squats", Category: CategoryCardio, TimeBased: true},
	{Name: "Kettlebell švihy", EnglishName: "Kettlebell Swing", Category: CategoryCardio, Equipment: EquipKettlebell, TimeBased: true},

	// mobility
	{Name: "Kočka kráva", EnglishName: "Cat Cow Stretch", Category: CategoryMobility, TimeBased: true},
	{Name: "Pes hlavou dolů", EnglishName: "Downward Dog", Category: CategoryMobility, TimeBased: true},
	{Name: "Protažení hamstringů", EnglishName: "Hamstring Stretch", Category: CategoryMobility, TimeBased: true},
	{Name: "Protahování kyčlí", EnglishName: "Hip Flexor Stretch", Category: CategoryMobility, TimeBased: true},
	{Name: "Mobilita hrudní páteře", EnglishName: "Thoracic Spine Rotation", Category: CategoryMobility, TimeBased: true},
	{Name: "Pozice dítěte", EnglishName: "Child's Pose", Category: CategoryMobility, TimeBased: true},

	// heavy compounds, bodyweight fallbacks come from the lighter categories
	{Name: "Dřep s činkou", EnglishName: "Barbell Back Squat", Category: CategoryHeavyLower, Equipment: EquipBarbell},
	{Name: "Mrtvý tah", EnglishName: "Barbell Deadlift", Category: CategoryHeavyPull, Equipment: EquipBarbell},
	{Name: "Tlak na lavici", EnglishName: "Barbell Bench Press", Category: CategoryHeavyPush, Equipment: EquipBarbell},
	{Name: "Tlak nad hlavu s činkou", EnglishName: "Barbell Overhead Press", Category: CategoryHeavyPush, Equipment: EquipBarbell},
	{Name: "Přítahy v předklonu", EnglishName: "Barbell Bent Over Row", Category: CategoryHeavyPull, Equipment: EquipBarbell},
	{Name: "Čelní dřep", EnglishName: "Barbell Front Squat", Category: CategoryHeavyLower, Equipment: EquipBarbell},
}

// fallbackCategory is used when the profile has no equipment for a heavy slot.
//
//nolint:gochecknoglobals
var fallbackCategory = map[Category]Category{
	CategoryHeavyLower: CategoryLower,
	CategoryHeavyPush:  CategoryPush,
	CategoryHeavyPull:  CategoryPull,
}

// equipmentSynonyms maps equipment tags to words users type in the assessment.
//
//nolint:gochecknoglobals
var equipmentSynonyms = map[string][]string{
	EquipDumbbell:   {"dumbbell", "jednoru", "činky", "cinky"},
	EquipBarbell:    {"barbell", "velká činka", "osa", "olympijská"},
	EquipKettlebell: {"kettlebell"},
	EquipPullUpBar:  {"pull-up", "pullup", "hrazd"},
	EquipBand:       {"band", "guma", "gumy", "odporov"},
	EquipMachine:    {"machine", "stroj"},
}

// fullGym lists words that imply every piece of equipment is available.
//
//nolint:gochecknoglobals
var fullGym = []string{"gym", "posilovn", "fitness centrum", "fitko"}

// Library returns a copy of the exercise library.
func Library() []ExerciseTemplate {
	return append([]ExerciseTemplate(nil), library...)
}
