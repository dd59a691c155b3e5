package coaching

import (
	"context"
	"log"
	"strings"
)

// Completer is the text-completion capability boundary. Absence of a
// configured provider is a valid state: callers pass a nil Completer and the
// composer goes straight to the deterministic fallback.
type Completer interface {
	Complete(ctx context.Context, system string, prompt string) (string, error)
}

type Composer struct {
	completer Completer
}

func NewComposer(completer Completer) *Composer {
	return &Composer{completer: completer}
}

// Compose turns a (type, context) pair into message text. The AI path is
// best-effort: any provider error or empty completion degrades to the
// fallback template, so delivery is never blocked by a provider outage.
func (composer *Composer) Compose(ctx context.Context, typ NotificationType, mc *MemberContext) string {
	if mc == nil {
		mc = &MemberContext{}
	}
	if composer.completer == nil {
		return fallbackMessage(typ, mc)
	}

	text, err := composer.completer.Complete(ctx, coachPersona, buildPrompt(typ, mc))
	if err != nil {
		log.Printf("coaching: completion failed for type %s: %v", typ, err)
		return fallbackMessage(typ, mc)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackMessage(typ, mc)
	}
	return text
}
