package impl

import (
	"fmt"
	"html"
	"strings"

	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/nutrition"
)

const narrativeSystemPrompt = `Jsi zkušený trenér a píšeš česky. Připravuješ přehled osmitýdenního tréninkového programu.
Nepopisuj jednotlivé cviky, série ani opakování. Ty generuje aplikace zvlášť.
Odpověz pouze JSON objektem ve tvaru {"description": "...", "body": "..."}.`

const mealPlanSystemPrompt = `Jsi nutriční specialista. Sestavuješ jídelníček výhradně ze surovin z dodaného katalogu.
Odpovídáš pouze platným JSON dokumentem bez komentářů.`

const shoppingListSystemPrompt = `Jsi asistent, který z podkladů sestavuje přehledný nákupní seznam v češtině.`

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}

	return strings.Join(items, ", ")
}

func buildNarrativePrompt(profile *entity.FitnessProfile, planName string) string {
	var b strings.Builder

	b.WriteString("PROFIL KLIENTA:\n")
	fmt.Fprintf(&b, "- Cíl: %s\n", profile.FitnessGoal)
	fmt.Fprintf(&b, "- Zkušenosti: %s\n", profile.ExperienceLevel)
	fmt.Fprintf(&b, "- Aktivita: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&b, "- Věk: %d, výška %.0f cm, váha %.1f kg\n", profile.Age, profile.HeightCm, profile.WeightKg)
	fmt.Fprintf(&b, "- Tréninkové dny: %s\n", joinOrDash(profile.AvailableDays))
	fmt.Fprintf(&b, "- Vybavení: %s\n", joinOrDash(profile.Equipment))
	fmt.Fprintf(&b, "- Délka tréninku: %d minut\n\n", profile.WorkoutDurationMinutes)

	b.WriteString("ÚKOL:\n")
	fmt.Fprintf(&b, "Napiš přehled programu \"%s\" na %d týdnů.\n", planName, entity.PlanDurationWeeks)
	b.WriteString("- description: jedna až dvě věty shrnutí\n")
	b.WriteString("- body: fáze programu po týdnech, principy progrese, regenerace a motivace\n\n")

	b.WriteString("PRAVIDLA:\n")
	b.WriteString("1. Žádné konkrétní cviky ani počty sérií.\n")
	b.WriteString("2. Přizpůsob tón a náročnost úrovni zkušeností.\n")
	b.WriteString("3. Body formátuj jako Markdown s nadpisy.\n")

	return b.String()
}

func buildMealPlanPrompt(profile *entity.FitnessProfile, targets nutrition.Targets, catalogText string, days int) string {
	var b strings.Builder

	b.WriteString("PROFIL KLIENTA:\n")
	fmt.Fprintf(&b, "- Cíl: %s\n", profile.FitnessGoal)
	fmt.Fprintf(&b, "- Dietní omezení: %s\n", joinOrDash(profile.DietaryRestrictions))
	fmt.Fprintf(&b, "- Alergie: %s\n\n", joinOrDash(profile.Allergies))

	b.WriteString("DENNÍ CÍLE:\n")
	fmt.Fprintf(&b, "- Energie: %d kcal\n", targets.Calories)
	fmt.Fprintf(&b, "- Bílkoviny: %d g\n", targets.Protein)
	fmt.Fprintf(&b, "- Sacharidy: %d g\n", targets.Carbs)
	fmt.Fprintf(&b, "- Tuky: %d g\n\n", targets.Fat)

	b.WriteString("KATALOG SUROVIN (hodnoty na 100 g):\n")
	b.WriteString(catalogText)
	b.WriteString("\n")

	b.WriteString("ÚKOL:\n")
	fmt.Fprintf(&b, "Sestav jídelníček na %d dní. Každý den má přesně 3 jídla: BREAKFAST, LUNCH, DINNER.\n\n", days)

	b.WriteString("PRAVIDLA:\n")
	b.WriteString("1. Názvy surovin přepiš z katalogu doslova, jiné suroviny nepoužívej.\n")
	b.WriteString("2. Hlavní suroviny se mezi dny neopakují.\n")
	b.WriteString("3. Svačiny negeneruj, doplní je aplikace.\n")
	b.WriteString("4. Množství uváděj v g nebo ml.\n")
	b.WriteString("5. Nutriční hodnoty nepočítej, spočítá je aplikace.\n\n")

	b.WriteString("FORMÁT ODPOVĚDI:\n")
	b.WriteString(`{"days":[{"day":1,"meals":[{"type":"BREAKFAST","name":"...","recipes":[{"name":"...","instructions":"...","prepMinutes":10,"ingredients":[{"name":"...","amount":60,"unit":"g"}]}]}]}]}`)
	b.WriteString("\n")

	return b.String()
}

func buildShoppingListPrompt(weekNumber int, itemsText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SUROVINY NA TÝDEN %d (součty ze všech receptů):\n", weekNumber)
	b.WriteString(itemsText)
	b.WriteString("\n")

	b.WriteString("ÚKOL:\n")
	b.WriteString("Vytvoř nákupní seznam pro jednu osobu.\n\n")

	b.WriteString("PRAVIDLA:\n")
	b.WriteString("1. Množství jsou už sečtená. Nenásob je počtem receptů, číslo v závorce je jen informace.\n")
	b.WriteString("2. Převeď množství na běžná balení v obchodě, používej pouze metrické jednotky.\n")
	b.WriteString("3. Seskup položky podle kategorií (ovoce a zelenina, maso a ryby, mléčné výrobky, pečivo, trvanlivé, ostatní).\n")
	b.WriteString("4. Na konec přidej sekci se základními surovinami, které se často zapomínají (sůl, olej, koření).\n")
	b.WriteString("5. Výstup formátuj jako Markdown se zaškrtávacími položkami.\n")

	return b.String()
}

func buildPlanSummary(plan *entity.WorkoutPlan, workouts int, mealPlan *entity.MealPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Váš plán \"%s\" je připraven.\n\n", plan.Name)
	if plan.Description != "" {
		b.WriteString(plan.Description)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "- Délka: %d týdnů\n", entity.PlanDurationWeeks)
	fmt.Fprintf(&b, "- Počet tréninků: %d\n", workouts)
	if mealPlan != nil {
		fmt.Fprintf(&b, "- Jídelníček: %d kcal denně (B %d g, S %d g, T %d g)\n",
			mealPlan.TargetCalories, mealPlan.TargetProtein, mealPlan.TargetCarbs, mealPlan.TargetFat)
	}

	return b.String()
}

func buildMealPlanSummary(mealPlan *entity.MealPlan) string {
	return fmt.Sprintf("Nový jídelníček je připraven: %d jídel, cíl %d kcal denně (B %d g, S %d g, T %d g).",
		len(mealPlan.Meals), mealPlan.TargetCalories, mealPlan.TargetProtein, mealPlan.TargetCarbs, mealPlan.TargetFat)
}

func buildWelcomeEmail(user *entity.User, appURL string) (subject, text, htmlBody string) {
	subject = "Vítejte ve FitPlanu"
	text = fmt.Sprintf("Dobrý den, %s,\n\nděkujeme za registraci. Svůj osobní plán si vytvoříte na %s.\n\nTým FitPlan", user.Name, appURL)
	htmlBody = fmt.Sprintf("<p>Dobrý den, %s,</p><p>děkujeme za registraci. Svůj osobní plán si vytvoříte <a href=\"%s\">zde</a>.</p><p>Tým FitPlan</p>",
		html.EscapeString(user.Name), html.EscapeString(appURL))

	return subject, text, htmlBody
}
