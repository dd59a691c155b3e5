package coaching

import (
	"context"
	"time"
)

// Preview is the debug view of one member's pipeline: the eligibility
// decision, the snapshot, and the text that would be sent. Nothing is
// dispatched.
type Preview struct {
	MemberID uint             `json:"member_id"`
	Type     NotificationType `json:"type"`
	Decision Decision         `json:"decision"`
	Context  *MemberContext   `json:"context,omitempty"`
	Message  string           `json:"message,omitempty"`
}

func (runner *Runner) Preview(ctx context.Context, memberID uint, typ NotificationType) (Preview, error) {
	now := time.Now()
	preview := Preview{MemberID: memberID, Type: typ}

	member, found, err := runner.members.FindByID(memberID)
	if err != nil {
		return Preview{}, err
	}
	if !found {
		preview.Decision = skipped(SkipMemberNotFound)
		return preview, nil
	}

	decision, err := runner.evaluator.DecideForMember(&member, typ, now)
	if err != nil {
		return Preview{}, err
	}
	preview.Decision = decision

	// The snapshot and message are built even for ineligible members so the
	// debug surface shows what an eventual send would contain.
	mc, err := runner.aggregator.GatherForMember(&member, now)
	if err != nil {
		return Preview{}, err
	}
	preview.Context = mc
	preview.Message = runner.composer.Compose(ctx, typ, mc)
	return preview, nil
}
