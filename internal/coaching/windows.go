package coaching

import (
	"fmt"
	"time"
)

const (
	breakfastWindowStartHour = 5
	breakfastWindowEndHour   = 10
	lunchWindowStartHour     = 10
	lunchWindowEndHour       = 15
	dinnerWindowStartHour    = 15
	dinnerWindowEndHour      = 22
)

const (
	waterActiveStartHour = 7
	waterActiveHours     = 14
)

const minutesPerDay = 24 * 60

// preferredTimeToleranceMinutes absorbs scheduler invocation jitter when
// matching a member's configured HH:MM send time.
const preferredTimeToleranceMinutes = 30

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// MealWindow is a same-day [start, end) hour span in local time.
type MealWindow struct {
	StartHour int
	EndHour   int
}

func (window MealWindow) Range(day time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(day, location)
	return start.Add(time.Duration(window.StartHour) * time.Hour),
		start.Add(time.Duration(window.EndHour) * time.Hour)
}

// MealWindowForType maps lunch/dinner reminders (and morning, for symmetry
// with the breakfast window) to the window whose logged meals suppress them.
func MealWindowForType(typ NotificationType) (MealWindow, bool) {
	switch typ {
	case TypeMorning:
		return MealWindow{StartHour: breakfastWindowStartHour, EndHour: breakfastWindowEndHour}, true
	case TypeLunch:
		return MealWindow{StartHour: lunchWindowStartHour, EndHour: lunchWindowEndHour}, true
	case TypeDinner:
		return MealWindow{StartHour: dinnerWindowStartHour, EndHour: dinnerWindowEndHour}, true
	default:
		return MealWindow{}, false
	}
}

// IsWeeklyMilestone reports whether now falls on a positive multiple of 7
// whole days since enrollment. Day 0 never qualifies.
func IsWeeklyMilestone(createdAt time.Time, now time.Time) bool {
	if now.Before(createdAt) {
		return false
	}
	days := int(now.Sub(createdAt).Hours() / 24)
	return days > 0 && days%7 == 0
}

// MinuteOfDayDistance is the circular distance between two minutes-of-day,
// so 23:50 and 00:10 are 20 minutes apart.
func MinuteOfDayDistance(a int, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if wrapped := minutesPerDay - diff; wrapped < diff {
		return wrapped
	}
	return diff
}

func parseClockMinutes(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", value, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MatchesPreferredTime reports whether now (in the given location) is within
// the tolerance window of the member's configured HH:MM send time. An empty
// or malformed configured time matches unconditionally so members fall back
// to the slot's own schedule.
func MatchesPreferredTime(configured string, now time.Time, location *time.Location) bool {
	if configured == "" {
		return true
	}
	target, err := parseClockMinutes(configured)
	if err != nil {
		return true
	}
	localized := now.In(location)
	current := localized.Hour()*60 + localized.Minute()
	return MinuteOfDayDistance(current, target) <= preferredTimeToleranceMinutes
}

// ExpectedWaterByNow models an active hydration window of 07:00-21:00: the
// share of the daily target a member should have drunk by the given hour.
func ExpectedWaterByNow(hour int, dailyTargetML int) int {
	activeHours := hour - waterActiveStartHour
	if activeHours < 0 {
		activeHours = 0
	}
	if activeHours > waterActiveHours {
		activeHours = waterActiveHours
	}
	return activeHours * dailyTargetML / waterActiveHours
}
