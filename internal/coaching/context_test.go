package coaching

import (
	"fmt"
	"testing"
	"time"

	"github.com/kinwise-app/kinwise/internal/models"
)

func TestGatherReturnsNilForUnknownMember(t *testing.T) {
	store := newStubStore()
	aggregator := NewAggregator(store, store, store, time.UTC)

	mc, err := aggregator.GatherAt(42, time.Now())
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc != nil {
		t.Fatal("expected nil context for an unknown member")
	}
}

func TestGatherSumsTodayAndYesterdaySeparately(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	store := newStubStore()
	member := baseMember(1, unlimitedType())
	member.DailyCalorieTarget = 2000
	member.DailyProteinTarget = 120
	store.addMember(member)

	store.mealLogs = []models.MealLog{
		{MemberID: 1, Name: "Breakfast", Calories: 400.4, Protein: 20.2, Carbs: 50, Fat: 10, LoggedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
		{MemberID: 1, Name: "Lunch", Calories: 600.3, Protein: 35.3, Carbs: 60, Fat: 15, LoggedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
		{MemberID: 1, Name: "Dinner yesterday", Calories: 700, Protein: 40, Carbs: 70, Fat: 20, LoggedAt: time.Date(2026, 3, 9, 19, 0, 0, 0, time.UTC)},
		{MemberID: 1, Name: "Two days ago", Calories: 999, Protein: 99, LoggedAt: time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)},
	}

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if mc.Today.Calories != 1001 {
		t.Fatalf("expected today's calories rounded to 1001, got %d", mc.Today.Calories)
	}
	if mc.Today.Protein != 56 {
		t.Fatalf("expected today's protein rounded to 56, got %d", mc.Today.Protein)
	}
	if mc.Yesterday.Calories != 700 {
		t.Fatalf("expected yesterday's calories 700, got %d", mc.Yesterday.Calories)
	}
	if mc.Targets.Calories != 2000 || mc.Targets.Protein != 120 {
		t.Fatalf("unexpected targets %+v", mc.Targets)
	}
	if mc.RemainingCalories() != 999 {
		t.Fatalf("expected 999 kcal remaining, got %d", mc.RemainingCalories())
	}
}

func TestGatherAppliesDefaultTargets(t *testing.T) {
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if mc.Targets.Calories != models.DefaultCalorieTarget {
		t.Fatalf("expected default calorie target, got %d", mc.Targets.Calories)
	}
	if mc.WaterTargetML != models.DefaultWaterTargetML {
		t.Fatalf("expected default water target, got %d", mc.WaterTargetML)
	}
}

func TestGatherStockCapsOrdersAndItems(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))

	// Five active orders with four items each; only the three newest orders
	// contribute, and the flattened list stops at ten items.
	for orderIndex := 0; orderIndex < 5; orderIndex++ {
		order := models.Order{
			ID:        uint(orderIndex + 1),
			MemberID:  1,
			Status:    models.OrderStatusDelivered,
			CreatedAt: now.Add(-time.Duration(orderIndex) * time.Hour),
		}
		for itemIndex := 0; itemIndex < 4; itemIndex++ {
			order.Items = append(order.Items, models.OrderItem{
				Name:     fmt.Sprintf("order%d-item%d", orderIndex, itemIndex),
				Calories: 350,
				Protein:  30,
			})
		}
		store.orders = append(store.orders, order)
	}
	store.orders = append(store.orders, models.Order{
		ID:        99,
		MemberID:  1,
		Status:    models.OrderStatusCancelled,
		CreatedAt: now,
		Items:     []models.OrderItem{{Name: "cancelled-item"}},
	})

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if len(mc.Stock) != 10 {
		t.Fatalf("expected stock capped at 10 items, got %d", len(mc.Stock))
	}
	for _, item := range mc.Stock {
		if item.Name == "cancelled-item" {
			t.Fatal("cancelled order items must not appear as stock")
		}
		if item.Name[:6] == "order3" || item.Name[:6] == "order4" {
			t.Fatalf("item from an older-than-third order leaked in: %s", item.Name)
		}
	}
}

func TestGatherWeightChange(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))

	aggregator := NewAggregator(store, store, store, time.UTC)

	// Fewer than two samples in the window: no change reported.
	store.weights = []models.WeightLog{
		{MemberID: 1, WeightKG: 72.0, LoggedAt: now.AddDate(0, 0, -1)},
		{MemberID: 1, WeightKG: 75.0, LoggedAt: now.AddDate(0, 0, -20)},
	}
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.WeightChangeKG != nil {
		t.Fatalf("expected nil weight change with one in-window sample, got %v", *mc.WeightChangeKG)
	}

	store.weights = append(store.weights, models.WeightLog{MemberID: 1, WeightKG: 72.8, LoggedAt: now.AddDate(0, 0, -4)})
	mc, err = aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.WeightChangeKG == nil {
		t.Fatal("expected a weight change with two in-window samples")
	}
	if diff := *mc.WeightChangeKG - (-0.8); diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected -0.8 kg change, got %v", *mc.WeightChangeKG)
	}
}

func TestGatherStreakStopsAtFirstGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))

	// Meals today, yesterday, and the day before; nothing on day -3.
	for day := 0; day < 3; day++ {
		store.mealLogs = append(store.mealLogs, models.MealLog{
			MemberID: 1,
			Name:     "meal",
			LoggedAt: now.AddDate(0, 0, -day),
		})
	}
	store.mealLogs = append(store.mealLogs, models.MealLog{
		MemberID: 1,
		Name:     "before the gap",
		LoggedAt: now.AddDate(0, 0, -5),
	})

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.StreakDays != 3 {
		t.Fatalf("expected a 3-day streak, got %d", mc.StreakDays)
	}
}

func TestGatherStreakZeroWithoutTodayLog(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))
	store.mealLogs = append(store.mealLogs, models.MealLog{
		MemberID: 1,
		Name:     "yesterday only",
		LoggedAt: now.AddDate(0, 0, -1),
	})

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.StreakDays != 0 {
		t.Fatalf("expected streak 0 without a log today, got %d", mc.StreakDays)
	}
}

func TestGatherStreakIsCapped(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))
	for day := 0; day < 60; day++ {
		store.mealLogs = append(store.mealLogs, models.MealLog{
			MemberID: 1,
			Name:     "meal",
			LoggedAt: now.AddDate(0, 0, -day),
		})
	}

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.StreakDays != streakWalkLimit {
		t.Fatalf("expected streak capped at %d, got %d", streakWalkLimit, mc.StreakDays)
	}
}

func TestGatherCoachStatusBlock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newStubStore()

	unlimited := baseMember(1, unlimitedType())
	store.addMember(unlimited)

	finite := baseMember(2, courseType(30))
	expire := now.Add(5 * 24 * time.Hour)
	finite.AICoachExpireDate = &expire
	store.addMember(finite)

	aggregator := NewAggregator(store, store, store, time.UTC)

	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather unlimited: %v", err)
	}
	if !mc.Coach.IsActive || !mc.Coach.IsUnlimited || mc.Coach.DaysRemaining != 0 {
		t.Fatalf("unexpected unlimited coach status %+v", mc.Coach)
	}

	mc, err = aggregator.GatherAt(2, now)
	if err != nil {
		t.Fatalf("gather finite: %v", err)
	}
	if !mc.Coach.IsActive || mc.Coach.IsUnlimited || mc.Coach.DaysRemaining != 5 {
		t.Fatalf("unexpected finite coach status %+v", mc.Coach)
	}
}

func TestGatherExerciseToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	store := newStubStore()
	store.addMember(baseMember(1, unlimitedType()))
	store.exercise = []models.ExerciseLog{
		{MemberID: 1, Name: "Morning run", DurationMinutes: 25, CaloriesBurned: 240.6, LoggedAt: time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)},
		{MemberID: 1, Name: "Evening walk", DurationMinutes: 40, CaloriesBurned: 180, LoggedAt: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)},
		{MemberID: 1, Name: "Old session", DurationMinutes: 60, CaloriesBurned: 500, LoggedAt: time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)},
	}

	aggregator := NewAggregator(store, store, store, time.UTC)
	mc, err := aggregator.GatherAt(1, now)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if mc.ExerciseToday == nil {
		t.Fatal("expected today's exercise to be present")
	}
	if mc.ExerciseToday.Name != "Evening walk" || mc.ExerciseToday.DurationMinutes != 40 {
		t.Fatalf("expected the most recent session today, got %+v", mc.ExerciseToday)
	}
}
