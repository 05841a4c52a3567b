package handler

import (
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// JSON views of the entities. Entities carry no JSON tags of their own.

type ExerciseView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	EnglishName     string    `json:"englishName"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	RestSeconds     int       `json:"restSeconds"`
	DurationSeconds int       `json:"durationSeconds,omitempty"`
	YoutubeURL      *string   `json:"youtubeUrl"`
}

type WorkoutView struct {
	ID        uuid.UUID      `json:"id"`
	Week      int            `json:"week"`
	Day       string         `json:"day"`
	Name      string         `json:"name"`
	Focus     string         `json:"focus"`
	Exercises []ExerciseView `json:"exercises"`
}

type WorkoutPlanView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Body          string         `json:"body,omitempty"`
	DurationWeeks int            `json:"durationWeeks"`
	Difficulty    string         `json:"difficulty"`
	Status        string         `json:"status"`
	IsActive      bool           `json:"isActive"`
	IsPublic      bool           `json:"isPublic"`
	Workouts      *[]WorkoutView `json:"workouts,omitempty"` // nil in listings
	CreatedAt     time.Time      `json:"createdAt"`
}

func newWorkoutPlanView(plan *entity.WorkoutPlan, withWorkouts bool) WorkoutPlanView {
	view := WorkoutPlanView{
		ID:            plan.ID,
		Name:          plan.Name,
		Description:   plan.Description,
		DurationWeeks: plan.DurationWeeks,
		Difficulty:    string(plan.Difficulty),
		Status:        string(plan.Status),
		IsActive:      plan.IsActive,
		IsPublic:      plan.IsPublic,
		CreatedAt:     plan.CreatedAt,
	}
	if !withWorkouts {
		return view
	}

	view.Body = plan.Body
	workouts := make([]WorkoutView, 0, len(plan.Workouts))
	for _, w := range plan.Workouts {
		wv := WorkoutView{
			ID:        w.ID,
			Week:      w.Week,
			Day:       w.Day,
			Name:      w.Name,
			Focus:     w.Focus,
			Exercises: make([]ExerciseView, 0, len(w.Exercises)),
		}
		for _, e := range w.Exercises {
			wv.Exercises = append(wv.Exercises, ExerciseView{
				ID:              e.ID,
				Name:            e.Name,
				EnglishName:     e.EnglishName,
				Sets:            e.Sets,
				Reps:            e.Reps,
				RestSeconds:     e.RestSeconds,
				DurationSeconds: e.DurationSeconds,
				YoutubeURL:      e.YoutubeURL,
			})
		}
		workouts = append(workouts, wv)
	}
	view.Workouts = &workouts

	return view
}

type RecipeView struct {
	Name         string              `json:"name"`
	Instructions string              `json:"instructions"`
	PrepMinutes  int                 `json:"prepMinutes"`
	Ingredients  []entity.Ingredient `json:"ingredients"`
	Macros       entity.Macros       `json:"macros"`
}

type MealView struct {
	Week    int           `json:"week"`
	Day     int           `json:"day"`
	Type    string        `json:"type"`
	Name    string        `json:"name"`
	Macros  entity.Macros `json:"macros"`
	Recipes []RecipeView  `json:"recipes"`
}

type MealPlanView struct {
	ID             uuid.UUID  `json:"id"`
	WorkoutPlanID  *uuid.UUID `json:"workoutPlanId,omitempty"`
	WeekNumber     int        `json:"weekNumber"`
	TargetCalories int        `json:"targetCalories"`
	TargetProtein  int        `json:"targetProtein"`
	TargetCarbs    int        `json:"targetCarbs"`
	TargetFat      int        `json:"targetFat"`
	Meals          []MealView `json:"meals"`
}

func newMealPlanView(plan *entity.MealPlan) MealPlanView {
	view := MealPlanView{
		ID:             plan.ID,
		WorkoutPlanID:  plan.WorkoutPlanID,
		WeekNumber:     plan.WeekNumber,
		TargetCalories: plan.TargetCalories,
		TargetProtein:  plan.TargetProtein,
		TargetCarbs:    plan.TargetCarbs,
		TargetFat:      plan.TargetFat,
		Meals:          make([]MealView, 0, len(plan.Meals)),
	}
	for _, m := range plan.Meals {
		mv := MealView{
			Week:    m.Week,
			Day:     m.Day,
			Type:    string(m.Type),
			Name:    m.Name,
			Macros:  m.Macros,
			Recipes: make([]RecipeView, 0, len(m.Recipes)),
		}
		for _, r := range m.Recipes {
			ingredients := r.Ingredients
			if ingredients == nil {
				ingredients = []entity.Ingredient{}
			}
			mv.Recipes = append(mv.Recipes, RecipeView{
				Name:         r.Name,
				Instructions: r.Instructions,
				PrepMinutes:  r.PrepMinutes,
				Ingredients:  ingredients,
				Macros:       r.Macros,
			})
		}
		view.Meals = append(view.Meals, mv)
	}

	return view
}

type ShoppingListView struct {
	ProjectID uuid.UUID `json:"projectId"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func newShoppingListView(project *entity.Project) ShoppingListView {
	view := ShoppingListView{
		ProjectID: project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
	}
	for _, msg := range project.Messages {
		if msg.Role == entity.RoleAssistant {
			view.Content = msg.Content
		}
	}

	return view
}

type InvoiceView struct {
	ID            uuid.UUID  `json:"id"`
	Number        string     `json:"number"`
	Subtotal      int64      `json:"subtotal"`
	VAT           int64      `json:"vat"`
	Total         int64      `json:"total"`
	Currency      string     `json:"currency"`
	IssuedAt      time.Time  `json:"issuedAt"`
	DownloadedAt  *time.Time `json:"downloadedAt,omitempty"`
	DownloadCount int        `json:"downloadCount"`
}

func newInvoiceView(invoice *entity.Invoice) InvoiceView {
	return InvoiceView{
		ID:            invoice.ID,
		Number:        invoice.Number,
		Subtotal:      invoice.Subtotal,
		VAT:           invoice.VAT,
		Total:         invoice.Total,
		Currency:      invoice.Currency,
		IssuedAt:      invoice.IssuedAt,
		DownloadedAt:  invoice.DownloadedAt,
		DownloadCount: invoice.DownloadCount,
	}
}
