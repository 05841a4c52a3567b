package model

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&FitnessProfileModel{},
		&WorkoutPlanModel{},
		&WorkoutModel{},
		&ExerciseModel{},
		&MealPlanModel{},
		&MealModel{},
		&RecipeModel{},
		&NutritionFoodModel{},
		&PaymentSessionModel{},
		&InvoiceModel{},
		&ProjectModel{},
		&MessageModel{},
		&WorkflowRunModel{},
	}
}
