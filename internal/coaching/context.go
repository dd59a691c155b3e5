package coaching

import (
	"math"
	"time"

	"github.com/kinwise-app/kinwise/internal/models"
)

const (
	stockOrderLimit  = 3
	stockItemLimit   = 10
	streakWalkLimit  = 30
	weightWindowDays = 7
)

type ContextLogReader interface {
	ListMealLogs(memberID uint, from time.Time, to time.Time) ([]models.MealLog, error)
	CountMealLogs(memberID uint, from time.Time, to time.Time) (int64, error)
	SumWaterML(memberID uint, from time.Time, to time.Time) (int, error)
	LatestExerciseLog(memberID uint, from time.Time, to time.Time) (models.ExerciseLog, bool, error)
	ListRecentWeightLogs(memberID uint, since time.Time, limit int) ([]models.WeightLog, error)
}

type ContextOrderReader interface {
	ListRecentActive(memberID uint, limit int) ([]models.Order, error)
}

type Aggregator struct {
	members  MemberReader
	logs     ContextLogReader
	orders   ContextOrderReader
	location *time.Location
}

func NewAggregator(members MemberReader, logs ContextLogReader, orders ContextOrderReader, location *time.Location) *Aggregator {
	if location == nil {
		location = time.UTC
	}
	return &Aggregator{members: members, logs: logs, orders: orders, location: location}
}

// Gather builds a fresh snapshot of the member's nutritional and behavioral
// state. It returns nil (and no error) when the member does not exist;
// callers skip such members instead of failing the batch.
func (aggregator *Aggregator) Gather(memberID uint) (*MemberContext, error) {
	return aggregator.GatherAt(memberID, time.Now())
}

func (aggregator *Aggregator) GatherAt(memberID uint, now time.Time) (*MemberContext, error) {
	member, found, err := aggregator.members.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return aggregator.GatherForMember(&member, now)
}

func (aggregator *Aggregator) GatherForMember(member *models.Member, now time.Time) (*MemberContext, error) {
	todayStart, todayEnd := DayRange(now, aggregator.location)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	today, err := aggregator.sumMealTotals(member.ID, todayStart, now)
	if err != nil {
		return nil, err
	}
	yesterday, err := aggregator.sumMealTotals(member.ID, yesterdayStart, todayStart)
	if err != nil {
		return nil, err
	}

	waterToday, err := aggregator.logs.SumWaterML(member.ID, todayStart, now)
	if err != nil {
		return nil, err
	}

	stock, err := aggregator.gatherStock(member.ID)
	if err != nil {
		return nil, err
	}

	weightChange, err := aggregator.weightChange(member.ID, now)
	if err != nil {
		return nil, err
	}

	var exerciseToday *ExerciseSummary
	exercise, found, err := aggregator.logs.LatestExerciseLog(member.ID, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	if found {
		exerciseToday = &ExerciseSummary{
			Name:            exercise.Name,
			DurationMinutes: exercise.DurationMinutes,
			CaloriesBurned:  int(math.Round(exercise.CaloriesBurned)),
		}
	}

	streak, err := aggregator.calculateStreak(member.ID, now)
	if err != nil {
		return nil, err
	}

	return &MemberContext{
		MemberID:    member.ID,
		DisplayName: member.DisplayName,
		Today:       today,
		Yesterday:   yesterday,
		Targets: NutritionTargets{
			Calories: member.CalorieTarget(),
			Protein:  member.ProteinTarget(),
			Carbs:    member.DailyCarbTarget,
			Fat:      member.DailyFatTarget,
		},
		WaterTodayML:   waterToday,
		WaterTargetML:  member.WaterTargetML(),
		Stock:          stock,
		WeightChangeKG: weightChange,
		ExerciseToday:  exerciseToday,
		StreakDays:     streak,
		Goal: GoalSummary{
			Type:          member.GoalType,
			CurrentWeight: member.CurrentWeight,
			TargetWeight:  member.TargetWeight,
		},
		Coach: CoachStatus{
			IsActive:      IsAICoachActive(member, now),
			IsUnlimited:   member.MemberType != nil && member.MemberType.CourseDuration == 0,
			DaysRemaining: DaysRemaining(member, now),
		},
	}, nil
}

func (aggregator *Aggregator) sumMealTotals(memberID uint, from time.Time, to time.Time) (NutritionTotals, error) {
	logs, err := aggregator.logs.ListMealLogs(memberID, from, to)
	if err != nil {
		return NutritionTotals{}, err
	}

	var calories, protein, carbs, fat float64
	for _, entry := range logs {
		calories += entry.Calories
		protein += entry.Protein
		carbs += entry.Carbs
		fat += entry.Fat
	}
	return NutritionTotals{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(protein)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
	}, nil
}

// gatherStock flattens items from the most recent active orders into the
// on-hand inventory used for meal suggestions.
func (aggregator *Aggregator) gatherStock(memberID uint) ([]StockItem, error) {
	orders, err := aggregator.orders.ListRecentActive(memberID, stockOrderLimit)
	if err != nil {
		return nil, err
	}

	stock := make([]StockItem, 0, stockItemLimit)
	for _, order := range orders {
		for _, item := range order.Items {
			if len(stock) >= stockItemLimit {
				return stock, nil
			}
			stock = append(stock, StockItem{
				Name:     item.Name,
				Calories: int(math.Round(item.Calories)),
				Protein:  int(math.Round(item.Protein)),
			})
		}
	}
	return stock, nil
}

// weightChange is latest minus previous across the two most recent weight
// logs of the last seven days, or nil with fewer than two samples.
func (aggregator *Aggregator) weightChange(memberID uint, now time.Time) (*float64, error) {
	since := now.AddDate(0, 0, -weightWindowDays)
	logs, err := aggregator.logs.ListRecentWeightLogs(memberID, since, 2)
	if err != nil {
		return nil, err
	}
	if len(logs) < 2 {
		return nil, nil
	}
	change := logs[0].WeightKG - logs[1].WeightKG
	return &change, nil
}

// calculateStreak counts consecutive calendar days with at least one meal
// log, walking backward from today and stopping at the first gap. The walk
// is capped to bound query cost.
func (aggregator *Aggregator) calculateStreak(memberID uint, now time.Time) (int, error) {
	streak := 0
	dayStart, dayEnd := DayRange(now, aggregator.location)
	for day := 0; day < streakWalkLimit; day++ {
		count, err := aggregator.logs.CountMealLogs(memberID, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		if count == 0 {
			break
		}
		streak++
		dayEnd = dayStart
		dayStart = dayStart.AddDate(0, 0, -1)
	}
	return streak, nil
}
