package coaching

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinwise-app/kinwise/internal/line"
)

var ErrNoChannelIdentity = errors.New("coaching: member has no channel identity")

// MessageSender is the outbound messaging capability boundary.
type MessageSender interface {
	Push(ctx context.Context, to string, messages []line.Message) error
}

type Dispatcher struct {
	members MemberReader
	sender  MessageSender
	appURL  string
}

func NewDispatcher(members MemberReader, sender MessageSender, appURL string) *Dispatcher {
	return &Dispatcher{members: members, sender: sender, appURL: appURL}
}

// Dispatch wraps composed text in the rich-card envelope and pushes it to
// the member's channel identity. No internal retries; the result is reported
// to the caller as-is.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, memberID uint, typ NotificationType, message string, mc *MemberContext) error {
	member, found, err := dispatcher.members.FindByID(memberID)
	if err != nil {
		return fmt.Errorf("resolve channel identity: %w", err)
	}
	if !found || member.LineUserID == "" {
		return ErrNoChannelIdentity
	}

	status := CoachStatus{}
	if mc != nil {
		status = mc.Coach
	}
	card := buildCoachCard(typ, message, status, dispatcher.appURL)
	return dispatcher.sender.Push(ctx, member.LineUserID, []line.Message{card})
}
