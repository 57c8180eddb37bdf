// Package streak counts consecutive study days per user.
package streak

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// HistoryLimit is the number of most recent days kept in a record's history.
const HistoryLimit = 30

// DateLayout is the layout of calendar dates in records and responses.
const DateLayout = "2006-01-02"

const (
	startMessage = "🌟 Start your study streak today! Every journey begins with a single step."
	resetMessage = "😊 Your streak reset, but that's okay! Start fresh today."
)

// HistoryEntry is the streak length reached on a day.
type HistoryEntry struct {
	Date   string `json:"date" yaml:"date"`
	Streak int    `json:"streak" yaml:"streak"`
}

// History is stored as a JSON array in chronological order.
type History []HistoryEntry

// Append adds an entry and drops the oldest ones beyond HistoryLimit.
func (h History) Append(entry HistoryEntry) History {
	next := make(History, 0, min(len(h)+1, HistoryLimit))
	if overflow := len(h) + 1 - HistoryLimit; overflow > 0 {
		h = h[overflow:]
	}
	next = append(next, h...)
	return append(next, entry)
}

// Value implements driver.Valuer.
func (h History) Value() (driver.Value, error) {
	if h == nil {
		h = History{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(history) > %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *History) Scan(src any) error {
	*h = History{}
	var b []byte
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		b = s
	case string:
		b = []byte(s)
	default:
		return fmt.Errorf("unsupported history column type %T", src)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, h); err != nil {
		return fmt.Errorf("json.Unmarshal(history) > %w", err)
	}
	return nil
}

// Record is the stored streak of a user.
type Record struct {
	UserID         string    `db:"user_id"`
	CurrentStreak  int       `db:"current_streak"`
	LongestStreak  int       `db:"longest_streak"`
	LastActiveDate time.Time `db:"last_active_date"`
	TodayMessage   string    `db:"today_message"`
	StreakHistory  History   `db:"streak_history"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Status is the streak reported to a client.
type Status struct {
	CurrentStreak  int     `json:"currentStreak" yaml:"current_streak"`
	LongestStreak  int     `json:"longestStreak" yaml:"longest_streak"`
	LastActiveDate string  `json:"lastActiveDate,omitempty" yaml:"last_active_date,omitempty"`
	Message        string  `json:"message" yaml:"message"`
	StreakHistory  History `json:"streakHistory" yaml:"streak_history"`
	AlreadyLogged  bool    `json:"alreadyLogged,omitempty" yaml:"already_logged,omitempty"`
	IsNewStreak    bool    `json:"isNewStreak,omitempty" yaml:"is_new_streak,omitempty"`
	StreakBroken   bool    `json:"streakBroken,omitempty" yaml:"streak_broken,omitempty"`
	StudiedToday   bool    `json:"studiedToday,omitempty" yaml:"studied_today,omitempty"`
}

func (r *Record) status() *Status {
	history := r.StreakHistory
	if history == nil {
		history = History{}
	}
	return &Status{
		CurrentStreak:  r.CurrentStreak,
		LongestStreak:  r.LongestStreak,
		LastActiveDate: r.LastActiveDate.Format(DateLayout),
		Message:        r.TodayMessage,
		StreakHistory:  history,
	}
}

// MessageContext is what a motivational message is written about.
type MessageContext struct {
	CurrentStreak int
	LongestStreak int
	ExamName      string
	// DaysToExam is nil when the user has no exam date.
	DaysToExam *int
	UserName   string
}
