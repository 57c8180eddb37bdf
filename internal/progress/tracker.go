package progress

import (
	"context"
	"strings"
	"time"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/strength"
)

// Tracker updates topic metrics and keeps their strength score current.
type Tracker struct {
	repo   Repository
	scorer *strength.Scorer
	now    func() time.Time
}

// NewTracker creates a new Tracker.
func NewTracker(repo Repository, scorer *strength.Scorer) *Tracker {
	return &Tracker{
		repo:   repo,
		scorer: scorer,
		now:    time.Now,
	}
}

// TrackTimeSpent adds minutes to the time spent on a topic.
func (t *Tracker) TrackTimeSpent(ctx context.Context, userID, subject, topic string, minutes int) (*TimeResult, error) {
	key := NewKey(userID, subject, topic)
	if err := key.validate(); err != nil {
		return nil, err
	}
	if minutes <= 0 {
		return nil, apperr.Validation("minutes must be positive, got %d", minutes)
	}

	p, err := t.mutate(ctx, key, func(p *TopicProgress) {
		now := t.now().UTC()
		p.TimeSpentMinutes += minutes
		p.LastStudied = &now
	})
	if err != nil {
		return nil, err
	}
	return &TimeResult{
		TimeSpentMinutes: p.TimeSpentMinutes,
		StrengthScore:    p.StrengthScore,
	}, nil
}

// TrackNoteSaved counts one more saved note for a topic.
func (t *Tracker) TrackNoteSaved(ctx context.Context, userID, subject, topic string) (*NoteResult, error) {
	key := NewKey(userID, subject, topic)
	if err := key.validate(); err != nil {
		return nil, err
	}

	p, err := t.mutate(ctx, key, func(p *TopicProgress) {
		now := t.now().UTC()
		p.NotesCount++
		p.LastNoteSaved = &now
	})
	if err != nil {
		return nil, err
	}
	return &NoteResult{
		NotesCount:    p.NotesCount,
		StrengthScore: p.StrengthScore,
	}, nil
}

// UpdateConfidence overwrites the self rating of a topic.
// Ratings outside [1, 5] are clamped, not rejected.
func (t *Tracker) UpdateConfidence(ctx context.Context, userID, subject, topic string, confidence int) (*ConfidenceResult, error) {
	key := NewKey(userID, subject, topic)
	if err := key.validate(); err != nil {
		return nil, err
	}
	confidence = strength.ClampConfidence(confidence)

	p, err := t.mutate(ctx, key, func(p *TopicProgress) {
		p.Confidence = &confidence
	})
	if err != nil {
		return nil, err
	}
	return &ConfidenceResult{
		Confidence:    confidence,
		StrengthScore: p.StrengthScore,
		StrengthLabel: p.Label(),
	}, nil
}

// mutate applies one metric update and rescores the record in the same write.
func (t *Tracker) mutate(ctx context.Context, key Key, update func(p *TopicProgress)) (*TopicProgress, error) {
	return t.repo.Mutate(ctx, key, func(p *TopicProgress) error {
		update(p)
		p.applyScore(t.scorer.Compute(p.Metrics()))
		return nil
	})
}

// TopicProgress returns the topics of a user grouped by label.
func (t *Tracker) TopicProgress(ctx context.Context, userID, subject string) (*Overview, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Validation("userId required")
	}

	topics, err := t.repo.FindByUser(ctx, userID, strings.TrimSpace(subject))
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []TopicProgress{}
	}
	return &Overview{
		Topics:  topics,
		Grouped: group(topics),
	}, nil
}

// RecentTopics returns up to limit topics the user touched most recently.
func (t *Tracker) RecentTopics(ctx context.Context, userID string, limit int) ([]TopicProgress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || limit <= 0 {
		return nil, nil
	}
	return t.repo.FindRecent(ctx, userID, limit)
}

func group(topics []TopicProgress) Grouped {
	grouped := Grouped{
		Strong: []TopicProgress{},
		Medium: []TopicProgress{},
		Weak:   []TopicProgress{},
	}
	for _, topic := range topics {
		switch topic.Label() {
		case strength.LabelStrong:
			grouped.Strong = append(grouped.Strong, topic)
		case strength.LabelMedium:
			grouped.Medium = append(grouped.Medium, topic)
		default:
			grouped.Weak = append(grouped.Weak, topic)
		}
	}
	return grouped
}
