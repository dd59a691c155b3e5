package coaching

import (
	"time"

	"github.com/kinwise-app/kinwise/internal/models"
)

type SkipReason string

const (
	SkipNone               SkipReason = ""
	SkipMemberNotFound     SkipReason = "member_not_found"
	SkipCoachInactive      SkipReason = "coach_inactive"
	SkipPaused             SkipReason = "paused"
	SkipPreferenceOff      SkipReason = "preference_off"
	SkipWaterOnPace        SkipReason = "water_on_pace"
	SkipMealAlreadyLogged  SkipReason = "meal_already_logged"
	SkipNotWeeklyMilestone SkipReason = "not_weekly_milestone"
)

// Decision is the derived eligibility state for one (member, type) pair,
// computed once per evaluation so "why was member X skipped" reads off a
// single value instead of raw nullable fields.
type Decision struct {
	Eligible bool       `json:"eligible"`
	Reason   SkipReason `json:"reason,omitempty"`
}

func eligible() Decision {
	return Decision{Eligible: true}
}

func skipped(reason SkipReason) Decision {
	return Decision{Eligible: false, Reason: reason}
}

type MemberReader interface {
	FindByID(memberID uint) (models.Member, bool, error)
}

type EligibilityLogReader interface {
	CountMealLogs(memberID uint, from time.Time, to time.Time) (int64, error)
	SumWaterML(memberID uint, from time.Time, to time.Time) (int, error)
}

type Evaluator struct {
	members  MemberReader
	logs     EligibilityLogReader
	location *time.Location
}

func NewEvaluator(members MemberReader, logs EligibilityLogReader, location *time.Location) *Evaluator {
	if location == nil {
		location = time.UTC
	}
	return &Evaluator{members: members, logs: logs, location: location}
}

// IsAICoachActive reports whether the member's AI-coach subscription is live
// at the given instant. A zero course duration means unlimited; otherwise the
// expiry must be set and strictly in the future.
func IsAICoachActive(member *models.Member, now time.Time) bool {
	if member.MemberType == nil {
		return false
	}
	if member.MemberType.CourseDuration == 0 {
		return true
	}
	return member.AICoachExpireDate != nil && member.AICoachExpireDate.After(now)
}

// DaysRemaining is ceil((expiry - now) / 1 day) for active finite
// subscriptions, and 0 for unlimited or inactive ones.
func DaysRemaining(member *models.Member, now time.Time) int {
	if !IsAICoachActive(member, now) || member.MemberType.CourseDuration == 0 {
		return 0
	}
	remaining := member.AICoachExpireDate.Sub(now)
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func preferenceEnabled(member *models.Member, typ NotificationType) bool {
	switch typ {
	case TypeMorning:
		return member.NotifyMorningCoach
	case TypeLunch:
		return member.NotifyLunchCoach
	case TypeDinner:
		return member.NotifyDinnerCoach
	case TypeEvening:
		return member.NotifyEveningSummary
	case TypeWater:
		return member.NotifyWaterReminder
	case TypeWeekly:
		return member.NotifyWeeklyInsights
	case TypePhoto:
		return member.NotifyProgressPhoto
	case TypeExercise:
		return member.NotifyExerciseReminder
	case TypeMilestone, TypeInactive:
		// No user-facing toggle exists for these.
		return true
	default:
		return false
	}
}

// ShouldNotify runs the full short-circuit eligibility chain for one member
// and one notification type at the current instant.
func (evaluator *Evaluator) ShouldNotify(memberID uint, typ NotificationType) (bool, error) {
	decision, err := evaluator.Decide(memberID, typ, time.Now())
	if err != nil {
		return false, err
	}
	return decision.Eligible, nil
}

func (evaluator *Evaluator) Decide(memberID uint, typ NotificationType, now time.Time) (Decision, error) {
	member, found, err := evaluator.members.FindByID(memberID)
	if err != nil {
		return Decision{}, err
	}
	if !found {
		return skipped(SkipMemberNotFound), nil
	}
	return evaluator.DecideForMember(&member, typ, now)
}

// DecideForMember evaluates an already-loaded member (subscription type
// joined). Only the type-specific suppression checks touch the store.
func (evaluator *Evaluator) DecideForMember(member *models.Member, typ NotificationType, now time.Time) (Decision, error) {
	if !IsAICoachActive(member, now) {
		return skipped(SkipCoachInactive), nil
	}

	// A future pause suppresses every type, regardless of per-type flags.
	if member.NotificationsPausedUntil != nil && member.NotificationsPausedUntil.After(now) {
		return skipped(SkipPaused), nil
	}

	if !preferenceEnabled(member, typ) {
		return skipped(SkipPreferenceOff), nil
	}

	switch typ {
	case TypeWater:
		return evaluator.decideWater(member, now)
	case TypeLunch, TypeDinner:
		return evaluator.decideMealReminder(member, typ, now)
	case TypeWeekly, TypePhoto:
		if !IsWeeklyMilestone(member.CreatedAt, now) {
			return skipped(SkipNotWeeklyMilestone), nil
		}
		return eligible(), nil
	default:
		return eligible(), nil
	}
}

// decideWater skips members who are on pace or ahead of pace for the day, so
// the reminder only fires when intake lags the active-window expectation.
func (evaluator *Evaluator) decideWater(member *models.Member, now time.Time) (Decision, error) {
	expected := ExpectedWaterByNow(now.In(evaluator.location).Hour(), member.WaterTargetML())
	dayStart := DateAtLocation(now, evaluator.location)
	actual, err := evaluator.logs.SumWaterML(member.ID, dayStart, now)
	if err != nil {
		return Decision{}, err
	}
	if actual >= expected {
		return skipped(SkipWaterOnPace), nil
	}
	return eligible(), nil
}

func (evaluator *Evaluator) decideMealReminder(member *models.Member, typ NotificationType, now time.Time) (Decision, error) {
	window, ok := MealWindowForType(typ)
	if !ok {
		return eligible(), nil
	}
	from, to := window.Range(now, evaluator.location)
	count, err := evaluator.logs.CountMealLogs(member.ID, from, to)
	if err != nil {
		return Decision{}, err
	}
	if count > 0 {
		return skipped(SkipMealAlreadyLogged), nil
	}
	return eligible(), nil
}
