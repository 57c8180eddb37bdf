package streak

import "time"

// calendarDay returns midnight UTC of the calendar date of t in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from one date to a later one.
func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

type transition int

const (
	transitionNew transition = iota
	transitionAlreadyLogged
	transitionContinued
	transitionBroken
)

// advance returns the record after the user studied today.
// For transitionAlreadyLogged the previous record is returned unchanged.
func advance(prev *Record, userID string, today time.Time) (Record, transition) {
	if prev == nil {
		return Record{
			UserID:         userID,
			CurrentStreak:  1,
			LongestStreak:  1,
			LastActiveDate: today,
			StreakHistory:  History{}.Append(HistoryEntry{Date: today.Format(DateLayout), Streak: 1}),
		}, transitionNew
	}

	next := *prev
	var kind transition
	switch diff := daysBetween(prev.LastActiveDate, today); {
	case diff <= 0:
		return next, transitionAlreadyLogged
	case diff == 1:
		next.CurrentStreak = prev.CurrentStreak + 1
		next.LongestStreak = max(prev.LongestStreak, next.CurrentStreak)
		kind = transitionContinued
	default:
		next.CurrentStreak = 1
		kind = transitionBroken
	}
	next.LastActiveDate = today
	next.StreakHistory = prev.StreakHistory.Append(HistoryEntry{Date: today.Format(DateLayout), Streak: next.CurrentStreak})
	return next, kind
}
