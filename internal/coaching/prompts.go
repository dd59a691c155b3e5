package coaching

import (
	"fmt"
	"strings"
)

const coachPersona = "You are a warm, direct nutrition coach for a meal-tracking app. " +
	"Speak to the member by name, vary your phrasing between messages, and never " +
	"repeat the member's numbers back as a list. Use at most one emoji. Do not " +
	"use markdown."

func buildPrompt(typ NotificationType, mc *MemberContext) string {
	var prompt strings.Builder

	switch typ {
	case TypeMorning:
		fmt.Fprintf(&prompt, "Write a short morning check-in for %s (max 150 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "Daily targets: %d kcal, %dg protein. ", mc.Targets.Calories, mc.Targets.Protein)
		fmt.Fprintf(&prompt, "Yesterday they ate %d kcal. ", mc.Yesterday.Calories)
		writeStreakHint(&prompt, mc)
		prompt.WriteString("Encourage them to log breakfast.")
	case TypeLunch:
		fmt.Fprintf(&prompt, "Write a short lunch suggestion for %s (max 250 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "So far today: %d of %d kcal, %d of %dg protein; %d kcal and %dg protein remain. ",
			mc.Today.Calories, mc.Targets.Calories, mc.Today.Protein, mc.Targets.Protein,
			mc.RemainingCalories(), mc.RemainingProtein())
		writeStockHint(&prompt, mc)
		prompt.WriteString("Recommend what to eat for lunch.")
	case TypeDinner:
		fmt.Fprintf(&prompt, "Write a short dinner suggestion for %s (max 250 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "Today so far: %d of %d kcal, %d of %dg protein; %d kcal remain. ",
			mc.Today.Calories, mc.Targets.Calories, mc.Today.Protein, mc.Targets.Protein, mc.RemainingCalories())
		writeStockHint(&prompt, mc)
		prompt.WriteString("Recommend a dinner that closes the gap without overshooting.")
	case TypeEvening:
		fmt.Fprintf(&prompt, "Write an end-of-day summary for %s (max 250 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "Intake: %d of %d kcal, %d of %dg protein, %dg carbs, %dg fat. ",
			mc.Today.Calories, mc.Targets.Calories, mc.Today.Protein, mc.Targets.Protein,
			mc.Today.Carbs, mc.Today.Fat)
		fmt.Fprintf(&prompt, "Water: %d of %d ml. ", mc.WaterTodayML, mc.WaterTargetML)
		if mc.ExerciseToday != nil {
			fmt.Fprintf(&prompt, "Exercise: %s, %d minutes. ", mc.ExerciseToday.Name, mc.ExerciseToday.DurationMinutes)
		} else {
			prompt.WriteString("No exercise logged today. ")
		}
		prompt.WriteString("Give one concrete thing to do better tomorrow.")
	case TypeWater:
		fmt.Fprintf(&prompt, "Write a quick hydration nudge for %s (max 100 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "They have drunk %d of %d ml today, %d ml behind pace. ",
			mc.WaterTodayML, mc.WaterTargetML, mc.RemainingWaterML())
		prompt.WriteString("Keep it light.")
	case TypeWeekly:
		fmt.Fprintf(&prompt, "Write a weekly progress insight for %s (max 250 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "Goal: %s, current weight %.1f kg, target %.1f kg. ",
			mc.Goal.Type, mc.Goal.CurrentWeight, mc.Goal.TargetWeight)
		if mc.WeightChangeKG != nil {
			fmt.Fprintf(&prompt, "Weight change this week: %+.1f kg. ", *mc.WeightChangeKG)
		}
		writeStreakHint(&prompt, mc)
		prompt.WriteString("Celebrate what went well and name one focus for next week.")
	case TypePhoto:
		fmt.Fprintf(&prompt, "Write a friendly reminder for %s to take a weekly progress photo (max 150 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "Goal: %s. ", mc.Goal.Type)
		prompt.WriteString("Frame it as a way to see changes the scale misses.")
	case TypeExercise:
		fmt.Fprintf(&prompt, "Write a short movement nudge for %s (max 150 characters). ", promptName(mc))
		if mc.ExerciseToday != nil {
			fmt.Fprintf(&prompt, "They already did %s for %d minutes today, so acknowledge it. ",
				mc.ExerciseToday.Name, mc.ExerciseToday.DurationMinutes)
		} else {
			prompt.WriteString("They have not logged exercise today. ")
		}
		prompt.WriteString("Suggest something small and doable.")
	case TypeMilestone:
		fmt.Fprintf(&prompt, "Write a congratulation for %s (max 150 characters). ", promptName(mc))
		fmt.Fprintf(&prompt, "They have logged meals %d days in a row. ", mc.StreakDays)
		prompt.WriteString("Make the streak feel like momentum, not pressure.")
	case TypeInactive:
		fmt.Fprintf(&prompt, "Write a gentle welcome-back message for %s who has not logged anything in a few days (max 150 characters). ", promptName(mc))
		prompt.WriteString("No guilt, just an easy way to restart: log the next meal.")
	default:
		fmt.Fprintf(&prompt, "Write a short encouraging coaching message for %s (max 150 characters).", promptName(mc))
	}

	return prompt.String()
}

func promptName(mc *MemberContext) string {
	name := strings.TrimSpace(mc.DisplayName)
	if name == "" {
		return "the member"
	}
	return name
}

func writeStreakHint(prompt *strings.Builder, mc *MemberContext) {
	if mc.StreakDays > 1 {
		fmt.Fprintf(prompt, "They are on a %d-day logging streak. ", mc.StreakDays)
	}
}

func writeStockHint(prompt *strings.Builder, mc *MemberContext) {
	if len(mc.Stock) == 0 {
		return
	}
	prompt.WriteString("Meals on hand from their orders: ")
	for index, item := range mc.Stock {
		if index > 0 {
			prompt.WriteString(", ")
		}
		fmt.Fprintf(prompt, "%s (%d kcal, %dg protein)", item.Name, item.Calories, item.Protein)
	}
	prompt.WriteString(". Prefer suggesting one of these. ")
}
