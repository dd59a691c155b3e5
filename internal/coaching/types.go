package coaching

import "fmt"

// NotificationType is the shared vocabulary for requesting a coaching send.
type NotificationType string

const (
	TypeMorning   NotificationType = "morning"
	TypeLunch     NotificationType = "lunch"
	TypeDinner    NotificationType = "dinner"
	TypeEvening   NotificationType = "evening"
	TypeWater     NotificationType = "water"
	TypeWeekly    NotificationType = "weekly"
	TypePhoto     NotificationType = "photo"
	TypeExercise  NotificationType = "exercise"
	TypeMilestone NotificationType = "milestone"
	TypeInactive  NotificationType = "inactive"
)

func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeMorning, TypeLunch, TypeDinner, TypeEvening, TypeWater,
		TypeWeekly, TypePhoto, TypeExercise, TypeMilestone, TypeInactive,
	}
}

func ParseNotificationType(raw string) (NotificationType, error) {
	for _, typ := range AllNotificationTypes() {
		if string(typ) == raw {
			return typ, nil
		}
	}
	return "", fmt.Errorf("unknown notification type %q", raw)
}

type NutritionTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type StockItem struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
}

type ExerciseSummary struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
}

type GoalSummary struct {
	Type          string  `json:"type"`
	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
}

type CoachStatus struct {
	IsActive      bool `json:"is_active"`
	IsUnlimited   bool `json:"is_unlimited"`
	DaysRemaining int  `json:"days_remaining"`
}

// MemberContext is the point-in-time snapshot the composer works from. It is
// built fresh on every invocation and never persisted.
type MemberContext struct {
	MemberID    uint   `json:"member_id"`
	DisplayName string `json:"display_name"`

	Today     NutritionTotals  `json:"today"`
	Yesterday NutritionTotals  `json:"yesterday"`
	Targets   NutritionTargets `json:"targets"`

	WaterTodayML  int `json:"water_today_ml"`
	WaterTargetML int `json:"water_target_ml"`

	Stock []StockItem `json:"stock"`

	WeightChangeKG *float64         `json:"weight_change_kg"`
	ExerciseToday  *ExerciseSummary `json:"exercise_today"`

	StreakDays int         `json:"streak_days"`
	Goal       GoalSummary `json:"goal"`
	Coach      CoachStatus `json:"coach"`
}

func (mc *MemberContext) RemainingCalories() int {
	remaining := mc.Targets.Calories - mc.Today.Calories
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (mc *MemberContext) RemainingProtein() int {
	remaining := mc.Targets.Protein - mc.Today.Protein
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (mc *MemberContext) RemainingWaterML() int {
	remaining := mc.WaterTargetML - mc.WaterTodayML
	if remaining < 0 {
		return 0
	}
	return remaining
}
