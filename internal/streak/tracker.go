package streak

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/user"
)

const defaultSaveAttempts = 3

// MessageGenerator writes the motivational message stored with a streak.
// It must not fail; implementations fall back to canned text.
type MessageGenerator interface {
	Generate(ctx context.Context, msgCtx MessageContext) string
}

// ProfileFinder looks up the exam profile used to personalize messages.
type ProfileFinder interface {
	Get(ctx context.Context, userID string) (*user.Profile, error)
}

// Tracker maintains daily study streaks.
type Tracker struct {
	repo     Repository
	profiles ProfileFinder
	messages MessageGenerator
	location *time.Location
	logger   *zap.Logger

	now          func() time.Time
	saveAttempts uint
}

// NewTracker creates a new Tracker. Calendar days are counted in location.
func NewTracker(repo Repository, profiles ProfileFinder, messages MessageGenerator, location *time.Location, logger *zap.Logger) *Tracker {
	if location == nil {
		location = time.UTC
	}
	return &Tracker{
		repo:         repo,
		profiles:     profiles,
		messages:     messages,
		location:     location,
		logger:       logger,
		now:          time.Now,
		saveAttempts: defaultSaveAttempts,
	}
}

func (t *Tracker) today() time.Time {
	return calendarDay(t.now(), t.location)
}

// Update records that the user studied today. Only the first call of a day changes the streak.
func (t *Tracker) Update(ctx context.Context, userID string) (*Status, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Validation("userId required")
	}

	var (
		status  *Status
		pending pendingMessage
	)
	err := retry.Do(
		func() error {
			s, err := t.update(ctx, userID, &pending)
			if err != nil {
				return err
			}
			status = s
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(t.saveAttempts),
		retry.Delay(10*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			t.logger.Debug("streak changed concurrently, retrying", zap.String("user_id", userID), zap.Uint("attempt", n+1))
		}),
	)
	if errors.Is(err, ErrConflict) {
		return nil, apperr.Unavailable("update streak", err)
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

// pendingMessage holds the message generated by an earlier save attempt of the same Update.
type pendingMessage struct {
	currentStreak int
	longestStreak int
	text          string
	ok            bool
}

func (p *pendingMessage) matches(next *Record) bool {
	return p.ok && p.currentStreak == next.CurrentStreak && p.longestStreak == next.LongestStreak
}

func (t *Tracker) update(ctx context.Context, userID string, pending *pendingMessage) (*Status, error) {
	prev, err := t.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := t.today()
	next, kind := advance(prev, userID, today)
	if kind == transitionAlreadyLogged {
		status := prev.status()
		status.AlreadyLogged = true
		return status, nil
	}

	if !pending.matches(&next) {
		text, err := t.generateMessage(ctx, userID, &next, today)
		if err != nil {
			return nil, err
		}
		*pending = pendingMessage{
			currentStreak: next.CurrentStreak,
			longestStreak: next.LongestStreak,
			text:          text,
			ok:            true,
		}
	}
	next.TodayMessage = pending.text

	var expected *time.Time
	if prev != nil {
		expected = &prev.LastActiveDate
	}
	if err := t.repo.Save(ctx, &next, expected); err != nil {
		return nil, err
	}

	status := next.status()
	status.IsNewStreak = kind == transitionNew
	status.StreakBroken = kind == transitionBroken
	return status, nil
}

func (t *Tracker) generateMessage(ctx context.Context, userID string, next *Record, today time.Time) (string, error) {
	profile, err := t.profiles.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	msgCtx := MessageContext{
		CurrentStreak: next.CurrentStreak,
		LongestStreak: next.LongestStreak,
	}
	if profile != nil {
		msgCtx.ExamName = profile.ExamName
		msgCtx.UserName = profile.DisplayName
		msgCtx.DaysToExam = profile.DaysToExam(today)
	}
	return t.messages.Generate(ctx, msgCtx), nil
}

// Get reports the streak without changing it. A streak whose last day is before yesterday is
// reported as 0 until the next Update resets it.
func (t *Tracker) Get(ctx context.Context, userID string) (*Status, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Validation("userId required")
	}

	record, err := t.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &Status{
			Message:       startMessage,
			StreakHistory: History{},
		}, nil
	}

	status := record.status()
	diff := daysBetween(record.LastActiveDate, t.today())
	if diff > 1 {
		return &Status{
			CurrentStreak: 0,
			LongestStreak: record.LongestStreak,
			Message:       resetMessage,
			StreakHistory: status.StreakHistory,
			StreakBroken:  true,
		}, nil
	}
	status.StudiedToday = diff <= 0
	return status, nil
}
