package nutrition

// Anomaly kinds. Anomalies are logged, never returned as errors.
const (
	AnomalyUnknownActivity   = "unknown_activity_level"
	AnomalyNegativeCarbs     = "negative_carbs"
	AnomalyUnknownIngredient = "unknown_ingredient"
	AnomalyUnsupportedUnit   = "unsupported_unit"
	AnomalyNoSnackFoods      = "no_snack_foods"
)

// Anomaly is a data integrity problem that was clamped or defaulted.
type Anomaly struct {
	Kind   string
	Detail string
}
