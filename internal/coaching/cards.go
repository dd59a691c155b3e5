package coaching

import (
	"fmt"

	"github.com/kinwise-app/kinwise/internal/line"
)

type cardMeta struct {
	Icon  string
	Title string
}

func cardMetaForType(typ NotificationType) cardMeta {
	switch typ {
	case TypeMorning:
		return cardMeta{Icon: "🌅", Title: "Morning Coach"}
	case TypeLunch:
		return cardMeta{Icon: "🍱", Title: "Lunch Coach"}
	case TypeDinner:
		return cardMeta{Icon: "🍲", Title: "Dinner Coach"}
	case TypeEvening:
		return cardMeta{Icon: "🌙", Title: "Daily Summary"}
	case TypeWater:
		return cardMeta{Icon: "💧", Title: "Hydration Reminder"}
	case TypeWeekly:
		return cardMeta{Icon: "📊", Title: "Weekly Insights"}
	case TypePhoto:
		return cardMeta{Icon: "📸", Title: "Progress Photo"}
	case TypeExercise:
		return cardMeta{Icon: "🏃", Title: "Move Reminder"}
	case TypeMilestone:
		return cardMeta{Icon: "🔥", Title: "Streak Milestone"}
	case TypeInactive:
		return cardMeta{Icon: "👋", Title: "We Miss You"}
	default:
		return cardMeta{Icon: "🥗", Title: "Your Coach"}
	}
}

func coachStatusLine(status CoachStatus) string {
	if status.IsUnlimited {
		return "AI Coach · unlimited"
	}
	if status.DaysRemaining == 1 {
		return "AI Coach · 1 day left"
	}
	return fmt.Sprintf("AI Coach · %d days left", status.DaysRemaining)
}

// buildCoachCard wraps composed text into the flex-bubble envelope every
// coaching notification ships in: icon + title, subscription status box,
// separator, body, and a single button back into the app.
func buildCoachCard(typ NotificationType, message string, status CoachStatus, appURL string) line.FlexMessage {
	meta := cardMetaForType(typ)

	body := []any{
		map[string]any{
			"type":   "box",
			"layout": "horizontal",
			"contents": []any{
				map[string]any{
					"type": "text",
					"text": meta.Icon,
					"flex": 0,
					"size": "lg",
				},
				map[string]any{
					"type":   "text",
					"text":   meta.Title,
					"weight": "bold",
					"size":   "md",
					"margin": "sm",
					"color":  "#1A1A1A",
				},
			},
		},
		map[string]any{
			"type":            "box",
			"layout":          "vertical",
			"margin":          "md",
			"paddingAll":      "8px",
			"backgroundColor": "#F4F6F4",
			"cornerRadius":    "6px",
			"contents": []any{
				map[string]any{
					"type":  "text",
					"text":  coachStatusLine(status),
					"size":  "xs",
					"color": "#6B7B6E",
				},
			},
		},
		map[string]any{
			"type":   "separator",
			"margin": "md",
		},
		map[string]any{
			"type":   "text",
			"text":   message,
			"wrap":   true,
			"margin": "md",
			"size":   "sm",
			"color":  "#333333",
		},
	}

	contents := map[string]any{
		"type": "bubble",
		"body": map[string]any{
			"type":     "box",
			"layout":   "vertical",
			"contents": body,
		},
		"footer": map[string]any{
			"type":   "box",
			"layout": "vertical",
			"contents": []any{
				map[string]any{
					"type":   "button",
					"style":  "primary",
					"color":  "#4C8C4A",
					"height": "sm",
					"action": map[string]any{
						"type":  "uri",
						"label": "Open Kinwise",
						"uri":   appURL,
					},
				},
			},
		},
	}

	altText := fmt.Sprintf("%s %s", meta.Icon, meta.Title)
	return line.NewFlexMessage(altText, contents)
}
