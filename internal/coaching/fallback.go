package coaching

import "fmt"

// fallbackMessage returns the fixed templated string for a type. It never
// fails: absent numeric fields read as zero and an empty display name gets a
// neutral salutation.
func fallbackMessage(typ NotificationType, mc *MemberContext) string {
	if mc == nil {
		mc = &MemberContext{}
	}
	name := fallbackName(mc)

	switch typ {
	case TypeMorning:
		return fmt.Sprintf("Good morning, %s! A new day, a fresh %d kcal budget. Start strong: log your breakfast. 🌅", name, mc.Targets.Calories)
	case TypeLunch:
		return fmt.Sprintf("Lunchtime, %s! You still have %d kcal and %dg protein to work with today. Pick something good and log it.", name, mc.RemainingCalories(), mc.RemainingProtein())
	case TypeDinner:
		return fmt.Sprintf("Dinner check-in, %s: %d kcal left for today. A balanced plate now sets up tomorrow. Don't forget to log it.", name, mc.RemainingCalories())
	case TypeEvening:
		return fmt.Sprintf("That's a wrap, %s: %d of %d kcal and %dg protein today. Rest well — tomorrow is another chance to hit your targets.", name, mc.Today.Calories, mc.Targets.Calories, mc.Today.Protein)
	case TypeWater:
		return fmt.Sprintf("Hydration nudge, %s: %d ml to go today. A glass now gets you back on pace. 💧", name, mc.RemainingWaterML())
	case TypeWeekly:
		return fmt.Sprintf("Weekly check-in, %s! Another week of showing up. Open the app for your full progress summary.", name)
	case TypePhoto:
		return fmt.Sprintf("Progress photo day, %s! One quick photo a week shows changes the scale can't. Same spot, same light.", name)
	case TypeExercise:
		return fmt.Sprintf("Time to move, %s! Even 20 minutes counts — log it when you're done.", name)
	case TypeMilestone:
		return fmt.Sprintf("%d days in a row, %s! 🔥 That consistency is what gets results. Keep the streak alive.", mc.StreakDays, name)
	case TypeInactive:
		return fmt.Sprintf("We miss you, %s! No catching up needed — just log your next meal and you're back on track.", name)
	default:
		return fmt.Sprintf("Keep going, %s — every logged meal counts.", name)
	}
}

func fallbackName(mc *MemberContext) string {
	if mc == nil || mc.DisplayName == "" {
		return "there"
	}
	return mc.DisplayName
}
