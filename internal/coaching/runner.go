package coaching

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kinwise-app/kinwise/internal/models"
)

// Slot names the periodic entry points the external scheduler triggers. Most
// slots fire a single notification type; the weekly slot fires the weekly
// insight and the progress-photo reminder together.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotEvening   Slot = "evening"
	SlotWater     Slot = "water"
	SlotWeekly    Slot = "weekly"
	SlotExercise  Slot = "exercise"
	SlotMilestone Slot = "milestone"
	SlotInactive  Slot = "inactive"
)

func AllSlots() []Slot {
	return []Slot{
		SlotMorning, SlotLunch, SlotDinner, SlotEvening, SlotWater,
		SlotWeekly, SlotExercise, SlotMilestone, SlotInactive,
	}
}

func ParseSlot(raw string) (Slot, error) {
	for _, slot := range AllSlots() {
		if string(slot) == raw {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown coaching slot %q", raw)
}

func (slot Slot) Types() []NotificationType {
	switch slot {
	case SlotWeekly:
		return []NotificationType{TypeWeekly, TypePhoto}
	default:
		return []NotificationType{NotificationType(slot)}
	}
}

type OutcomeStatus string

const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// Outcome is the immutable per-(member, type) result of one pipeline pass.
type Outcome struct {
	MemberID uint             `json:"member_id"`
	Type     NotificationType `json:"type"`
	Status   OutcomeStatus    `json:"status"`
	Reason   string           `json:"reason,omitempty"`
}

type Report struct {
	Slot     Slot      `json:"slot"`
	Sent     int       `json:"sent"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Outcomes []Outcome `json:"outcomes"`
}

func buildReport(slot Slot, outcomes []Outcome) Report {
	report := Report{Slot: slot, Outcomes: outcomes}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case OutcomeSent:
			report.Sent++
		case OutcomeSkipped:
			report.Skipped++
		case OutcomeFailed:
			report.Failed++
		}
	}
	return report
}

const (
	defaultSendDelay      = 300 * time.Millisecond
	inactiveThresholdDays = 3
)

// streakMilestones are the streak lengths worth a congratulation.
var streakMilestones = map[int]bool{3: true, 7: true, 14: true, 21: true, 30: true, 50: true, 100: true}

type CandidateSource interface {
	MemberReader
	ListNotifiable() ([]models.Member, error)
}

type Runner struct {
	members    CandidateSource
	evaluator  *Evaluator
	aggregator *Aggregator
	composer   *Composer
	dispatcher *Dispatcher
	location   *time.Location
	sendDelay  time.Duration
}

func NewRunner(members CandidateSource, evaluator *Evaluator, aggregator *Aggregator, composer *Composer, dispatcher *Dispatcher, location *time.Location) *Runner {
	if location == nil {
		location = time.UTC
	}
	return &Runner{
		members:    members,
		evaluator:  evaluator,
		aggregator: aggregator,
		composer:   composer,
		dispatcher: dispatcher,
		location:   location,
		sendDelay:  defaultSendDelay,
	}
}

// SetSendDelay overrides the inter-send pause; tests set it to zero.
func (runner *Runner) SetSendDelay(delay time.Duration) {
	runner.sendDelay = delay
}

// RunSlot processes every candidate member sequentially for the slot's
// notification types. One member's failure never aborts the run; only a
// failed candidate enumeration does.
func (runner *Runner) RunSlot(ctx context.Context, slot Slot) (Report, error) {
	candidates, err := runner.members.ListNotifiable()
	if err != nil {
		return Report{}, fmt.Errorf("enumerate candidates: %w", err)
	}

	outcomes := make([]Outcome, 0, len(candidates))
	for index := range candidates {
		member := &candidates[index]
		for _, typ := range slot.Types() {
			outcome := runner.processMember(ctx, member, typ, time.Now())
			outcomes = append(outcomes, outcome)
			if outcome.Status == OutcomeFailed {
				log.Printf("coaching: member %d type %s failed: %s", outcome.MemberID, typ, outcome.Reason)
			}
			if outcome.Status == OutcomeSent {
				if err := sleepContext(ctx, runner.sendDelay); err != nil {
					report := buildReport(slot, outcomes)
					return report, err
				}
			}
		}
	}

	report := buildReport(slot, outcomes)
	log.Printf("coaching: slot %s done: sent=%d skipped=%d failed=%d of %d members",
		slot, report.Sent, report.Skipped, report.Failed, len(candidates))
	return report, nil
}

// RunSingle drives the full pipeline for one member and one type, used by
// the manual trigger endpoint. Preferred-time matching is bypassed;
// eligibility is not.
func (runner *Runner) RunSingle(ctx context.Context, memberID uint, typ NotificationType) Outcome {
	member, found, err := runner.members.FindByID(memberID)
	if err != nil {
		return Outcome{MemberID: memberID, Type: typ, Status: OutcomeFailed, Reason: err.Error()}
	}
	if !found {
		return Outcome{MemberID: memberID, Type: typ, Status: OutcomeSkipped, Reason: string(SkipMemberNotFound)}
	}
	return runner.runPipeline(ctx, &member, typ, time.Now())
}

// processMember applies the slot-level preconditions, then the shared
// pipeline. Panics from malformed data are contained here so the batch
// continues.
func (runner *Runner) processMember(ctx context.Context, member *models.Member, typ NotificationType, now time.Time) (outcome Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = Outcome{
				MemberID: member.ID,
				Type:     typ,
				Status:   OutcomeFailed,
				Reason:   fmt.Sprintf("panic: %v", recovered),
			}
		}
	}()

	if configured, ok := runner.preferredTime(member, typ); ok {
		if !MatchesPreferredTime(configured, now, runner.location) {
			return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeSkipped, Reason: "outside_preferred_time"}
		}
	}

	if typ == TypeInactive {
		threshold := now.AddDate(0, 0, -inactiveThresholdDays)
		if member.UpdatedAt.After(threshold) {
			return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeSkipped, Reason: "recently_active"}
		}
	}

	return runner.runPipeline(ctx, member, typ, now)
}

func (runner *Runner) runPipeline(ctx context.Context, member *models.Member, typ NotificationType, now time.Time) Outcome {
	decision, err := runner.evaluator.DecideForMember(member, typ, now)
	if err != nil {
		return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeFailed, Reason: err.Error()}
	}
	if !decision.Eligible {
		return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeSkipped, Reason: string(decision.Reason)}
	}

	mc, err := runner.aggregator.GatherForMember(member, now)
	if err != nil {
		return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeFailed, Reason: err.Error()}
	}

	if typ == TypeMilestone && !streakMilestones[mc.StreakDays] {
		return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeSkipped, Reason: "no_streak_milestone"}
	}

	message := runner.composer.Compose(ctx, typ, mc)
	if err := runner.dispatcher.Dispatch(ctx, member.ID, typ, message, mc); err != nil {
		return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeFailed, Reason: err.Error()}
	}
	return Outcome{MemberID: member.ID, Type: typ, Status: OutcomeSent}
}

func (runner *Runner) preferredTime(member *models.Member, typ NotificationType) (string, bool) {
	switch typ {
	case TypeMorning:
		return member.MorningCoachTime, true
	case TypeLunch:
		return member.LunchCoachTime, true
	case TypeDinner:
		return member.DinnerCoachTime, true
	case TypeEvening:
		return member.EveningSummaryTime, true
	default:
		return "", false
	}
}

func sleepContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
