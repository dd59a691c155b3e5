package coaching

import (
	"context"
	"errors"
	"time"

	"github.com/kinwise-app/kinwise/internal/line"
	"github.com/kinwise-app/kinwise/internal/models"
)

type stubStore struct {
	members   map[uint]models.Member
	mealLogs  []models.MealLog
	waterLogs []models.WaterLog
	exercise  []models.ExerciseLog
	weights   []models.WeightLog
	orders    []models.Order

	memberErr error
	listErr   error
	logErr    error
}

func newStubStore() *stubStore {
	return &stubStore{members: make(map[uint]models.Member)}
}

func (store *stubStore) addMember(member models.Member) {
	store.members[member.ID] = member
}

func (store *stubStore) FindByID(memberID uint) (models.Member, bool, error) {
	if store.memberErr != nil {
		return models.Member{}, false, store.memberErr
	}
	member, ok := store.members[memberID]
	return member, ok, nil
}

func (store *stubStore) ListNotifiable() ([]models.Member, error) {
	if store.listErr != nil {
		return nil, store.listErr
	}
	members := make([]models.Member, 0, len(store.members))
	for id := uint(1); id <= uint(len(store.members))+100; id++ {
		member, ok := store.members[id]
		if !ok {
			continue
		}
		if member.IsActive && member.MemberTypeID != nil {
			members = append(members, member)
		}
	}
	return members, nil
}

func (store *stubStore) ListMealLogs(memberID uint, from time.Time, to time.Time) ([]models.MealLog, error) {
	if store.logErr != nil {
		return nil, store.logErr
	}
	logs := make([]models.MealLog, 0)
	for _, entry := range store.mealLogs {
		if entry.MemberID == memberID && !entry.LoggedAt.Before(from) && entry.LoggedAt.Before(to) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (store *stubStore) CountMealLogs(memberID uint, from time.Time, to time.Time) (int64, error) {
	logs, err := store.ListMealLogs(memberID, from, to)
	if err != nil {
		return 0, err
	}
	return int64(len(logs)), nil
}

func (store *stubStore) SumWaterML(memberID uint, from time.Time, to time.Time) (int, error) {
	if store.logErr != nil {
		return 0, store.logErr
	}
	total := 0
	for _, entry := range store.waterLogs {
		if entry.MemberID == memberID && !entry.LoggedAt.Before(from) && entry.LoggedAt.Before(to) {
			total += entry.AmountML
		}
	}
	return total, nil
}

func (store *stubStore) LatestExerciseLog(memberID uint, from time.Time, to time.Time) (models.ExerciseLog, bool, error) {
	if store.logErr != nil {
		return models.ExerciseLog{}, false, store.logErr
	}
	var latest models.ExerciseLog
	found := false
	for _, entry := range store.exercise {
		if entry.MemberID != memberID || entry.LoggedAt.Before(from) || !entry.LoggedAt.Before(to) {
			continue
		}
		if !found || entry.LoggedAt.After(latest.LoggedAt) {
			latest = entry
			found = true
		}
	}
	return latest, found, nil
}

func (store *stubStore) ListRecentWeightLogs(memberID uint, since time.Time, limit int) ([]models.WeightLog, error) {
	if store.logErr != nil {
		return nil, store.logErr
	}
	logs := make([]models.WeightLog, 0)
	for _, entry := range store.weights {
		if entry.MemberID == memberID && !entry.LoggedAt.Before(since) {
			logs = append(logs, entry)
		}
	}
	for i := 0; i < len(logs); i++ {
		for j := i + 1; j < len(logs); j++ {
			if logs[j].LoggedAt.After(logs[i].LoggedAt) {
				logs[i], logs[j] = logs[j], logs[i]
			}
		}
	}
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (store *stubStore) ListRecentActive(memberID uint, limit int) ([]models.Order, error) {
	if store.logErr != nil {
		return nil, store.logErr
	}
	active := map[string]bool{}
	for _, status := range models.ActiveOrderStatuses() {
		active[status] = true
	}
	orders := make([]models.Order, 0)
	for _, order := range store.orders {
		if order.MemberID == memberID && active[order.Status] {
			orders = append(orders, order)
		}
	}
	for i := 0; i < len(orders); i++ {
		for j := i + 1; j < len(orders); j++ {
			if orders[j].CreatedAt.After(orders[i].CreatedAt) {
				orders[i], orders[j] = orders[j], orders[i]
			}
		}
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

type recordingSender struct {
	pushes []recordedPush
	err    error
	// failFor makes Push fail only for one recipient, to exercise
	// per-member failure isolation.
	failFor string
}

type recordedPush struct {
	To       string
	Messages []line.Message
}

func (sender *recordingSender) Push(ctx context.Context, to string, messages []line.Message) error {
	if sender.err != nil {
		return sender.err
	}
	if sender.failFor != "" && sender.failFor == to {
		return errors.New("push rejected")
	}
	sender.pushes = append(sender.pushes, recordedPush{To: to, Messages: messages})
	return nil
}

type stubCompleter struct {
	text  string
	err   error
	calls int
	// lastSystem and lastPrompt capture what the composer sent.
	lastSystem string
	lastPrompt string
}

func (completer *stubCompleter) Complete(ctx context.Context, system string, prompt string) (string, error) {
	completer.calls++
	completer.lastSystem = system
	completer.lastPrompt = prompt
	return completer.text, completer.err
}

func unlimitedType() *models.MemberType {
	return &models.MemberType{ID: 1, Name: "Unlimited", CourseDuration: 0}
}

func courseType(days int) *models.MemberType {
	return &models.MemberType{ID: 2, Name: "Course", CourseDuration: days}
}

func baseMember(id uint, memberType *models.MemberType) models.Member {
	typeID := memberType.ID
	return models.Member{
		ID:                     id,
		LineUserID:             "U" + string(rune('0'+id)),
		DisplayName:            "Mika",
		MemberTypeID:           &typeID,
		MemberType:             memberType,
		IsActive:               true,
		NotifyMorningCoach:     true,
		NotifyLunchCoach:       true,
		NotifyDinnerCoach:      true,
		NotifyEveningSummary:   true,
		NotifyWaterReminder:    true,
		NotifyWeeklyInsights:   true,
		NotifyProgressPhoto:    true,
		NotifyExerciseReminder: true,
		GoalType:               models.GoalLoseWeight,
		CreatedAt:              time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:              time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}
