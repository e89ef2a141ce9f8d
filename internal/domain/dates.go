package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CurrentTimeProvider supplies the clock the mood calendar is computed against.
type CurrentTimeProvider interface {
	Now() time.Time
}

// Weekdays are the sticker labels of a week, starting on Monday.
var Weekdays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// ParseWeekStart resolves raw into the Monday of the week it falls in.
// A blank value means the current week. Relative phrases such as
// "last week" are resolved against ref.
func ParseWeekStart(raw string, ref time.Time, loc *time.Location) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if day, ok := resolveRelativeWeek(token, ref, loc); ok {
		return WeekStart(day), nil
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, NewValidationErr("week_start must be a valid date")
	}
	return WeekStart(t), nil
}

func resolveRelativeWeek(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = DateOnly(ref.In(loc))

	switch token {
	case "", "today", "this week":
		return ref, true
	case "last week":
		return ref.AddDate(0, 0, -7), true
	case "next week":
		return ref.AddDate(0, 0, 7), true
	}
	return time.Time{}, false
}

// WeekStart returns midnight of the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	day := DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate reads the calendar date of t and places it at midnight in loc
// without converting the instant. Selected dates are calendar days, not instants.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
